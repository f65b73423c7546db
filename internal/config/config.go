package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix marks environment overrides, e.g. LBE_PORT=9000.
const EnvPrefix = "LBE_"

type Config struct {
	Port            string        `koanf:"port"`
	ReadTimeout     time.Duration `koanf:"read_timeout"`
	WriteTimeout    time.Duration `koanf:"write_timeout"`
	IdleTimeout     time.Duration `koanf:"idle_timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
	InstanceName    string        `koanf:"instance_name"`
	LogLevel        string        `koanf:"log_level"`

	// Variant selects which copy of the page is served.
	Variant string `koanf:"variant"`
	// ContentDir replaces the built-in variants with *.yaml files on disk.
	ContentDir   string `koanf:"content_dir"`
	WatchContent bool   `koanf:"watch_content"`
	// StaticDir serves /static from disk instead of the embedded assets.
	StaticDir string `koanf:"static_dir"`

	// CSRFKey is the 32-byte key for contact form tokens. Empty generates a
	// random key per process.
	CSRFKey       string `koanf:"csrf_key"`
	SecureCookies bool   `koanf:"secure_cookies"`
	// TrustedProxy takes the client address from X-Forwarded-For/X-Real-IP.
	// Leave off unless a proxy in front overwrites those headers.
	TrustedProxy bool    `koanf:"trusted_proxy"`
	ContactRate  float64 `koanf:"contact_rate"`
	ContactBurst int     `koanf:"contact_burst"`
}

// Default returns the configuration used when nothing overrides it.
func Default() *Config {
	return &Config{
		Port:            "8080",
		ReadTimeout:     15 * time.Second,
		WriteTimeout:    15 * time.Second,
		IdleTimeout:     60 * time.Second,
		ShutdownTimeout: 10 * time.Second,
		InstanceName:    "lbe-1",
		LogLevel:        "info",
		Variant:         "retention",
		ContactRate:     0.2,
		ContactBurst:    3,
	}
}

// Load starts from Default, applies the YAML file at path if it exists, then
// LBE_* environment variables.
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	cfg := Default()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
				return nil, fmt.Errorf("reading config %s: %w", path, err)
			}
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("accessing config %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}
	return cfg, nil
}

// Validate checks values that would otherwise fail later at startup.
func (c *Config) Validate() error {
	if c.Port == "" {
		return errors.New("port is required")
	}
	if c.Variant == "" {
		return errors.New("variant is required")
	}
	if c.WatchContent && c.ContentDir == "" {
		return errors.New("watch_content requires content_dir")
	}
	if c.CSRFKey != "" && len(c.CSRFKey) != 32 {
		return fmt.Errorf("csrf_key must be 32 bytes, got %d", len(c.CSRFKey))
	}
	if c.ContactRate <= 0 {
		return errors.New("contact_rate must be positive")
	}
	if c.ContactBurst < 1 {
		return errors.New("contact_burst must be at least 1")
	}
	for name, d := range map[string]time.Duration{
		"read_timeout":     c.ReadTimeout,
		"write_timeout":    c.WriteTimeout,
		"idle_timeout":     c.IdleTimeout,
		"shutdown_timeout": c.ShutdownTimeout,
	} {
		if d <= 0 {
			return fmt.Errorf("%s must be positive", name)
		}
	}
	return nil
}
