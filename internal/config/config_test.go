package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestFromEnvDefaults(t *testing.T) {
	t.Setenv(EnvAPIKey, "abc123")
	t.Setenv(EnvModel, "")

	cfg := FromEnv()
	if cfg.APIKey != "abc123" {
		t.Fatalf("apikey not read from env: %q", cfg.APIKey)
	}
	if cfg.Model != DefaultModel {
		t.Fatalf("expected default model %q, got %q", DefaultModel, cfg.Model)
	}
}

func TestFromEnvModelOverride(t *testing.T) {
	t.Setenv(EnvAPIKey, "abc123")
	t.Setenv(EnvModel, "gemini-2.5-flash")

	cfg := FromEnv()
	if cfg.Model != "gemini-2.5-flash" {
		t.Fatalf("model override not applied: %q", cfg.Model)
	}
}

func TestValidateMissingKey(t *testing.T) {
	cfg := Config{APIKey: "", Model: DefaultModel}
	err := cfg.Validate()
	if !errors.Is(err, ErrMissingAPIKey) {
		t.Fatalf("expected ErrMissingAPIKey, got %v", err)
	}
}

func TestValidateOK(t *testing.T) {
	cfg := Config{APIKey: "abc123", Model: DefaultModel}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestRemediation(t *testing.T) {
	hint := Remediation(ErrMissingAPIKey)
	if !strings.Contains(hint, "export "+EnvAPIKey) {
		t.Fatalf("remediation missing export instructions: %q", hint)
	}
	if Remediation(errors.New("other")) != "" {
		t.Fatalf("expected no remediation for unrelated error")
	}
}

func TestLoadDotenvReadsFile(t *testing.T) {
	const key = "GEMPROBE_DOTENV_TEST"
	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte(key+"=from-file\n"), 0o644); err != nil {
		t.Fatalf("write .env: %v", err)
	}
	os.Unsetenv(key)
	t.Cleanup(func() { os.Unsetenv(key) })

	if err := LoadDotenv(path); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := os.Getenv(key); got != "from-file" {
		t.Fatalf("dotenv value not loaded: %q", got)
	}
}

func TestLoadDotenvMissingFileIgnored(t *testing.T) {
	if err := LoadDotenv(filepath.Join(t.TempDir(), "absent.env")); err != nil {
		t.Fatalf("missing .env should be ignored: %v", err)
	}
}

func TestLoadDotenvEmptyPathIgnored(t *testing.T) {
	if err := LoadDotenv(""); err != nil {
		t.Fatalf("empty path should be ignored: %v", err)
	}
}
