package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Source kinds
const (
	SourceJSON     = "json"
	SourcePostgres = "postgres"
)

// Config holds the runtime settings. Every field has a default, so an empty
// environment reads angajati.json and reports against today's date.
type Config struct {
	Source   string `env:"FIRMA_SOURCE" envDefault:"json"`
	DataFile string `env:"FIRMA_DATA_FILE" envDefault:"angajati.json"`

	DBHost     string `env:"FIRMA_DB_HOST" envDefault:"127.0.0.1"`
	DBPort     int    `env:"FIRMA_DB_PORT" envDefault:"5432"`
	DBUser     string `env:"FIRMA_DB_USER" envDefault:"postgres"`
	DBPassword string `env:"FIRMA_DB_PASSWORD"`
	DBName     string `env:"FIRMA_DB_NAME" envDefault:"postgres"`
	DBTable    string `env:"FIRMA_DB_TABLE" envDefault:"angajati"`

	// ReferenceDate overrides "today" when set (YYYY-MM-DD)
	ReferenceDate string `env:"FIRMA_REFERENCE_DATE"`
}

// Load reads an optional .env file and then parses the environment
func Load(envFiles ...string) (Config, error) {
	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Printf("[WARN] Could not load .env file: %v", err)
	}
	return Parse()
}

// Parse loads configuration from environment variables only
func Parse() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks values the environment parser cannot
func (c Config) Validate() error {
	switch c.Source {
	case SourceJSON, SourcePostgres:
	default:
		return fmt.Errorf("unknown source %q (want %q or %q)", c.Source, SourceJSON, SourcePostgres)
	}

	if c.ReferenceDate != "" {
		if _, err := time.Parse("2006-01-02", c.ReferenceDate); err != nil {
			return fmt.Errorf("invalid FIRMA_REFERENCE_DATE %q: %w", c.ReferenceDate, err)
		}
	}

	return nil
}

// Today returns the configured reference date, or now when none is set
func (c Config) Today(now time.Time) time.Time {
	if c.ReferenceDate == "" {
		return now
	}
	t, err := time.Parse("2006-01-02", c.ReferenceDate)
	if err != nil {
		return now
	}
	return t
}
