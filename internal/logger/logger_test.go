package logger

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"go.uber.org/zap"
)

func TestJSONEntry(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(Options{Instance: "lbe-test", Output: &buf})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	log.Info("serving", zap.String("port", "8080"))

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("unmarshal %q: %v", buf.String(), err)
	}
	for key, want := range map[string]string{
		"level":    "info",
		"instance": "lbe-test",
		"message":  "serving",
		"port":     "8080",
	} {
		if entry[key] != want {
			t.Errorf("%s = %v, want %q", key, entry[key], want)
		}
	}
	if _, ok := entry["timestamp"]; !ok {
		t.Error("missing timestamp")
	}
}

func TestLevelFilter(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(Options{Instance: "x", Level: "warn", Output: &buf})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	log.Info("dropped")
	log.Warn("kept")
	if strings.Contains(buf.String(), "dropped") || !strings.Contains(buf.String(), "kept") {
		t.Errorf("unexpected output %q", buf.String())
	}
}

func TestBadLevel(t *testing.T) {
	if _, err := New(Options{Level: "loud"}); err == nil {
		t.Error("expected error for unknown level")
	}
}
