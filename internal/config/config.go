// ABOUTME: Environment-driven configuration for the gymsheet pipeline.
// ABOUTME: Built once at startup and passed explicitly to each component.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

// ErrMissingConfig marks a fatal configuration gap detected before any I/O.
var ErrMissingConfig = errors.New("missing configuration")

// Config stores gymsheet configuration, populated from the environment.
type Config struct {
	// SheetID identifies the Google spreadsheet holding the three
	// input worksheets (Session_Info, Exercises, Workout_Input).
	SheetID string `env:"SHEET_ID"`

	// CredentialsFile is a path to a service-account JSON key file.
	CredentialsFile string `env:"GOOGLE_CREDENTIALS_FILE"`

	// CredentialsJSON is the service-account key itself, either raw
	// JSON or base64-encoded. Takes precedence over CredentialsFile.
	CredentialsJSON string `env:"GOOGLE_CREDENTIALS_JSON"`

	// DBPath is the SQLite database location. Supports ~ expansion.
	// Defaults to the XDG data directory when empty.
	DBPath string `env:"GYMSHEET_DB_PATH"`
}

// Load reads configuration from a .env file (if present) and the
// process environment.
func Load() (*Config, error) {
	// Missing .env is fine; the environment alone is enough.
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}
	return cfg, nil
}

// ValidateSource checks the settings the spreadsheet source needs.
// Called before any remote I/O so a misconfigured run aborts early.
func (c *Config) ValidateSource() error {
	if c.SheetID == "" {
		return fmt.Errorf("%w: SHEET_ID is not set", ErrMissingConfig)
	}
	if c.CredentialsFile == "" && c.CredentialsJSON == "" {
		return fmt.Errorf("%w: set GOOGLE_CREDENTIALS_FILE or GOOGLE_CREDENTIALS_JSON", ErrMissingConfig)
	}
	return nil
}

// GetDBPath returns the configured database path with ~ expanded,
// or the empty string when the caller should fall back to the default.
func (c *Config) GetDBPath() string {
	return ExpandPath(c.DBPath)
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(path string) string {
	if path == "" {
		return ""
	}
	if path == "~" {
		home, _ := os.UserHomeDir()
		return home
	}
	if strings.HasPrefix(path, "~/") {
		home, _ := os.UserHomeDir()
		return filepath.Join(home, path[2:])
	}
	return path
}
