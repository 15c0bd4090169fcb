// Package config loads runtime settings from the environment.
package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds the settings the CLI and recorder read at startup.
// Every field can be overridden by a CUBESIGHT_* environment variable;
// flags take precedence over both.
type Config struct {
	// DBPath is the SQLite database file. Empty means the per-user
	// default under ~/.cubesight.
	DBPath string `env:"CUBESIGHT_DB"`

	// StatePath is the JSON state file tracking the active solve.
	StatePath string `env:"CUBESIGHT_STATE"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `env:"CUBESIGHT_LOG_LEVEL" envDefault:"info"`

	// ScrambleLength is the default number of moves per scramble.
	ScrambleLength int `env:"CUBESIGHT_SCRAMBLE_LENGTH" envDefault:"25"`
}

// Load reads a .env file when one exists in the working directory,
// then parses the environment into a Config.
func Load() (Config, error) {
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(); err != nil {
			return Config{}, fmt.Errorf("load .env: %w", err)
		}
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
