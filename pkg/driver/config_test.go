package driver

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), DefaultConfigFile)
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
prompt: ">> "
color: false
startup:
  - "double = func (x) { x * 2 }"
  - "limit = 100"
`)
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Prompt != ">> " {
		t.Fatalf("unexpected prompt %q", cfg.Prompt)
	}
	if cfg.Color {
		t.Fatalf("expected color disabled")
	}
	if len(cfg.Startup) != 2 {
		t.Fatalf("unexpected startup lines %v", cfg.Startup)
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	path := writeConfig(t, "startup:\n  - \"x = 1\"\n")
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Prompt != "=> " {
		t.Fatalf("expected default prompt, got %q", cfg.Prompt)
	}
	if !cfg.Color {
		t.Fatalf("expected color enabled by default")
	}
}

func TestLoadConfigEmptyFile(t *testing.T) {
	path := writeConfig(t, "")
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Prompt != DefaultConfig().Prompt {
		t.Fatalf("expected defaults for empty file")
	}
}

func TestLoadConfigRejectsUnknownFields(t *testing.T) {
	path := writeConfig(t, "promt: \">> \"\n")
	if _, err := LoadConfig(path); err == nil {
		t.Fatalf("expected unknown field to fail strict decoding")
	}
}

func TestLoadConfigValidation(t *testing.T) {
	path := writeConfig(t, "prompt: \"a\\nb\"\nstartup:\n  - \"   \"\n")
	_, err := LoadConfig(path)
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if len(verr.Issues) != 2 {
		t.Fatalf("expected two issues, got %v", verr.Issues)
	}
	if !strings.Contains(verr.Error(), "prompt must not contain newlines") {
		t.Fatalf("unexpected error text %q", verr.Error())
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yml")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}
