package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Port != "8080" {
		t.Errorf("port = %q, want 8080", cfg.Port)
	}
	if cfg.Variant != "retention" {
		t.Errorf("variant = %q, want retention", cfg.Variant)
	}
	if cfg.TrustedProxy || cfg.StaticDir != "" {
		t.Errorf("forwarded headers and disk assets should be opt-in: %+v", cfg)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.ReadTimeout != 15*time.Second || cfg.InstanceName != "lbe-1" {
		t.Errorf("unexpected config %+v", cfg)
	}
}

func TestLoadFileThenEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lbe.yml")
	doc := "port: \"9000\"\nvariant: system\nread_timeout: 5s\ncontact_burst: 7\n"
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("LBE_VARIANT", "reviews")
	t.Setenv("LBE_SECURE_COOKIES", "true")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != "9000" {
		t.Errorf("port = %q, want 9000", cfg.Port)
	}
	if cfg.Variant != "reviews" {
		t.Errorf("variant = %q, env should win over file", cfg.Variant)
	}
	if cfg.ReadTimeout != 5*time.Second {
		t.Errorf("read_timeout = %v, want 5s", cfg.ReadTimeout)
	}
	if cfg.ContactBurst != 7 {
		t.Errorf("contact_burst = %d, want 7", cfg.ContactBurst)
	}
	if !cfg.SecureCookies {
		t.Error("secure_cookies should be set from env")
	}
	// Untouched keys keep their defaults.
	if cfg.IdleTimeout != 60*time.Second {
		t.Errorf("idle_timeout = %v, want default", cfg.IdleTimeout)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"empty port", func(c *Config) { c.Port = "" }, "port"},
		{"empty variant", func(c *Config) { c.Variant = "" }, "variant"},
		{"watch without dir", func(c *Config) { c.WatchContent = true }, "content_dir"},
		{"short csrf key", func(c *Config) { c.CSRFKey = "short" }, "32 bytes"},
		{"zero rate", func(c *Config) { c.ContactRate = 0 }, "contact_rate"},
		{"zero burst", func(c *Config) { c.ContactBurst = 0 }, "contact_burst"},
		{"zero timeout", func(c *Config) { c.WriteTimeout = 0 }, "write_timeout"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Validate() = %v, want error mentioning %q", err, tt.want)
			}
		})
	}
}
