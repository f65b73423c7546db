package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRenderCommand(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "index.html")

	var stdout bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetArgs([]string{
		"render",
		"--config", filepath.Join(dir, "missing.yml"),
		"--variant", "system",
		"--theme", "dark",
		"--faq", "0",
		"--out", out,
	})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("render: %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	page := string(data)
	if !strings.Contains(page, `<html lang="en" data-theme="dark">`) {
		t.Error("expected dark theme")
	}
	if strings.Count(page, `aria-expanded="true"`) != 1 {
		t.Error("expected exactly one expanded FAQ entry")
	}
	if strings.Contains(page, `class="contact-form`) {
		t.Error("static render must not include the contact form")
	}
	if !strings.Contains(stdout.String(), "variant system") {
		t.Errorf("unexpected output %q", stdout.String())
	}
}
