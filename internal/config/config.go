// Package config resolves gemprobe configuration from the environment.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

const (
	// EnvAPIKey names the required credential variable.
	EnvAPIKey = "GEMINI_API_KEY"
	// EnvModel names the optional model-selector override variable.
	EnvModel = "GEMINI_MODEL"

	// DefaultModel is the model selector used when no override is present.
	DefaultModel = "gemini-2.5-pro"
)

// ErrMissingAPIKey signals that the credential variable is unset or empty.
var ErrMissingAPIKey = errors.New(EnvAPIKey + " environment variable not set")

// Config holds resolved values after merging env and flags.
// The API key is read once at startup and never persisted or logged.
type Config struct {
	APIKey string
	Model  string
}

// LoadDotenv loads environment variables from path. A missing file is not an
// error so .env files stay optional. Variables already present in the
// environment are never overridden.
func LoadDotenv(path string) error {
	if path == "" {
		return nil
	}
	err := godotenv.Load(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}

// FromEnv reads the credential and model selector from the environment.
func FromEnv() Config {
	cfg := Config{
		APIKey: os.Getenv(EnvAPIKey),
		Model:  DefaultModel,
	}
	if v, ok := os.LookupEnv(EnvModel); ok && v != "" {
		cfg.Model = v
	}
	return cfg
}

// Validate checks that the configuration is usable before any network activity.
func (c Config) Validate() error {
	if c.APIKey == "" {
		return ErrMissingAPIKey
	}
	if c.Model == "" {
		return errors.New("model selector is empty")
	}
	return nil
}

// Remediation returns user-facing instructions for err, or "" when none apply.
func Remediation(err error) string {
	if errors.Is(err, ErrMissingAPIKey) {
		return fmt.Sprintf("Set it with: export %s='your-api-key-here'", EnvAPIKey)
	}
	return ""
}
