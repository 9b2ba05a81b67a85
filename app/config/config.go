package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Config holds the process settings read from the environment.
type Config struct {
	Port      string `validate:"required,numeric"`
	DBDriver  string `validate:"required,oneof=postgres pgx mysql sqlite"`
	DBDSN     string `validate:"required"`
	LogLevel  string `validate:"required,oneof=trace debug info warn error"`
	LogPretty bool
}

// Load reads .env (when present) and the environment into a Config.
func Load() (Config, error) {
	// A missing .env is fine; the environment may already carry everything.
	_ = godotenv.Load()

	cfg := Config{
		Port:     getenv("APP_PORT", "8080"),
		DBDriver: getenv("DB_DRIVER", "sqlite"),
		DBDSN:    getenv("DB_DSN", "catalog.db"),
		LogLevel: getenv("LOG_LEVEL", "info"),
	}

	if raw := os.Getenv("LOG_PRETTY"); raw != "" {
		pretty, err := strconv.ParseBool(raw)
		if err != nil {
			return Config{}, fmt.Errorf("LOG_PRETTY: %w", err)
		}
		cfg.LogPretty = pretty
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// Addr is the listen address for the HTTP server.
func (c Config) Addr() string {
	return ":" + c.Port
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
