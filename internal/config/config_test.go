package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

var envKeys = []string{
	"FIRMA_SOURCE", "FIRMA_DATA_FILE", "FIRMA_DB_HOST", "FIRMA_DB_PORT", "FIRMA_DB_USER",
	"FIRMA_DB_PASSWORD", "FIRMA_DB_NAME", "FIRMA_DB_TABLE", "FIRMA_REFERENCE_DATE",
}

// clearEnv unsets every FIRMA_ variable for the duration of the test
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range envKeys {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestParse_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Parse()
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	expected := Config{
		Source:   SourceJSON,
		DataFile: "angajati.json",
		DBHost:   "127.0.0.1",
		DBPort:   5432,
		DBUser:   "postgres",
		DBName:   "postgres",
		DBTable:  "angajati",
	}
	if cfg != expected {
		t.Errorf("Parse() = %+v, want %+v", cfg, expected)
	}
}

func TestParse_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("FIRMA_SOURCE", "postgres")
	t.Setenv("FIRMA_DB_PORT", "5433")
	t.Setenv("FIRMA_DB_TABLE", "hr.angajati")
	t.Setenv("FIRMA_REFERENCE_DATE", "2024-01-31")

	cfg, err := Parse()
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if cfg.Source != SourcePostgres {
		t.Errorf("Source = %q, want %q", cfg.Source, SourcePostgres)
	}
	if cfg.DBPort != 5433 {
		t.Errorf("DBPort = %d, want 5433", cfg.DBPort)
	}
	if cfg.DBTable != "hr.angajati" {
		t.Errorf("DBTable = %q, want hr.angajati", cfg.DBTable)
	}
	if cfg.ReferenceDate != "2024-01-31" {
		t.Errorf("ReferenceDate = %q, want 2024-01-31", cfg.ReferenceDate)
	}
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"unknown source", "FIRMA_SOURCE", "csv"},
		{"port not a number", "FIRMA_DB_PORT", "abc"},
		{"bad reference date", "FIRMA_REFERENCE_DATE", "31.01.2024"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.value)

			if _, err := Parse(); err == nil {
				t.Errorf("Expected error for %s=%q, got nil", tt.key, tt.value)
			}
		})
	}
}

func TestLoad_DotEnvFile(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), ".env")
	content := "FIRMA_DATA_FILE=/data/personal.json\nFIRMA_REFERENCE_DATE=2025-12-31\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write .env: %v", err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if cfg.DataFile != "/data/personal.json" {
		t.Errorf("DataFile = %q, want /data/personal.json", cfg.DataFile)
	}
	if cfg.ReferenceDate != "2025-12-31" {
		t.Errorf("ReferenceDate = %q, want 2025-12-31", cfg.ReferenceDate)
	}
}

func TestLoad_MissingDotEnvIsNotAnError(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if cfg.Source != SourceJSON {
		t.Errorf("Source = %q, want %q", cfg.Source, SourceJSON)
	}
}

func TestLoad_EnvironmentWinsOverDotEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("FIRMA_DATA_FILE", "from-env.json")

	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte("FIRMA_DATA_FILE=from-file.json\n"), 0o644); err != nil {
		t.Fatalf("Failed to write .env: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if cfg.DataFile != "from-env.json" {
		t.Errorf("DataFile = %q, want from-env.json", cfg.DataFile)
	}
}

func TestConfig_Today(t *testing.T) {
	now := time.Date(2026, time.October, 19, 8, 30, 0, 0, time.UTC)

	if got := (Config{}).Today(now); !got.Equal(now) {
		t.Errorf("Today() without override = %v, want %v", got, now)
	}

	cfg := Config{ReferenceDate: "2024-06-01"}
	if got := cfg.Today(now); got.Year() != 2024 || got.Month() != time.June || got.Day() != 1 {
		t.Errorf("Today() with override = %v, want 2024-06-01", got)
	}
}
