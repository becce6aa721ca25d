// Package config loads process settings from the environment.
//
// Settings only affect diagnostics and wording; game rules are fixed.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds the GUESS_* environment settings.
type Config struct {
	LogLevel string `env:"GUESS_LOG_LEVEL" envDefault:"warn"`
	Locale   string `env:"GUESS_LOCALE" envDefault:"en-US"`
}

// Load reads an optional .env file and parses the environment into a Config.
func Load() (Config, error) {
	_ = godotenv.Load()
	return Parse()
}

// Parse parses the current environment into a Config.
func Parse() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
