package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestParseDefaults(t *testing.T) {
	t.Setenv("GUESS_LOG_LEVEL", "")
	t.Setenv("GUESS_LOCALE", "")
	os.Unsetenv("GUESS_LOG_LEVEL")
	os.Unsetenv("GUESS_LOCALE")

	cfg, err := Parse()
	if err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if cfg.LogLevel != "warn" {
		t.Fatalf("expected default log level warn, got %q", cfg.LogLevel)
	}
	if cfg.Locale != "en-US" {
		t.Fatalf("expected default locale en-US, got %q", cfg.Locale)
	}
}

func TestParseReadsEnv(t *testing.T) {
	t.Setenv("GUESS_LOG_LEVEL", "debug")
	t.Setenv("GUESS_LOCALE", "pt-BR")

	cfg, err := Parse()
	if err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if cfg.LogLevel != "debug" || cfg.Locale != "pt-BR" {
		t.Fatalf("unexpected config %+v", cfg)
	}
}

func TestLoadReadsDotEnv(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte("GUESS_LOCALE=it-IT\n"), 0o644); err != nil {
		t.Fatalf("write .env: %v", err)
	}
	t.Chdir(dir)

	t.Setenv("GUESS_LOCALE", "")
	os.Unsetenv("GUESS_LOCALE")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Locale != "it-IT" {
		t.Fatalf("expected locale from .env, got %q", cfg.Locale)
	}
}
