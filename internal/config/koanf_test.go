// Venuelens - Booking Transaction Analytics Dashboards
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/venuelens

package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"
)

// TestDefaultConfig verifies that defaultConfig() returns proper defaults
func TestDefaultConfig(t *testing.T) {
	cfg := defaultConfig()

	if cfg.Warehouse.Driver != DriverDuckDB {
		t.Errorf("Warehouse.Driver = %q, want duckdb", cfg.Warehouse.Driver)
	}
	if cfg.Warehouse.QueryTimeout != 5*time.Minute {
		t.Errorf("Warehouse.QueryTimeout = %v, want 5m", cfg.Warehouse.QueryTimeout)
	}
	if cfg.Warehouse.SeedDemoData {
		t.Error("Warehouse.SeedDemoData should be false by default")
	}
	if cfg.Server.Port != 3858 {
		t.Errorf("Server.Port = %d, want 3858", cfg.Server.Port)
	}
	if cfg.Session.CookieName != "venuelens_session" {
		t.Errorf("Session.CookieName = %q, want venuelens_session", cfg.Session.CookieName)
	}
	if cfg.Session.IdleTimeout != 8*time.Hour {
		t.Errorf("Session.IdleTimeout = %v, want 8h", cfg.Session.IdleTimeout)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("Logging.Level = %q, want info", cfg.Logging.Level)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate, got %v", err)
	}
}

// TestEnvTransformFunc tests the environment variable to koanf path transformation
func TestEnvTransformFunc(t *testing.T) {
	tests := []struct {
		envVar   string
		expected string
	}{
		{"DUCKDB_PATH", "warehouse.path"},
		{"WAREHOUSE_PATH", "warehouse.path"},
		{"WAREHOUSE_DRIVER", "warehouse.driver"},
		{"WAREHOUSE_DSN", "warehouse.dsn"},
		{"WAREHOUSE_QUERY_TIMEOUT", "warehouse.query_timeout"},
		{"HTTP_PORT", "server.port"},
		{"ENVIRONMENT", "server.environment"},
		{"CORS_ORIGINS", "security.cors_origins"},
		{"DISABLE_RATE_LIMIT", "security.rate_limit_disabled"},
		{"SESSION_IDLE_TIMEOUT", "session.idle_timeout"},
		{"LOG_LEVEL", "logging.level"},
		{"log_format", "logging.format"},
		{"PATH", ""},
		{"HOME", ""},
	}

	for _, tt := range tests {
		t.Run(tt.envVar, func(t *testing.T) {
			if got := envTransformFunc(tt.envVar); got != tt.expected {
				t.Errorf("envTransformFunc(%q) = %q, want %q", tt.envVar, got, tt.expected)
			}
		})
	}
}

// TestFindConfigFile tests config file discovery
func TestFindConfigFile(t *testing.T) {
	tmpDir := t.TempDir()
	customPath := filepath.Join(tmpDir, "custom.yaml")
	if err := os.WriteFile(customPath, []byte("server:\n  port: 9000\n"), 0o600); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	t.Run("env var path", func(t *testing.T) {
		t.Setenv(ConfigPathEnvVar, customPath)
		if got := findConfigFile(); got != customPath {
			t.Errorf("findConfigFile() = %q, want %q", got, customPath)
		}
	})

	t.Run("missing env var path", func(t *testing.T) {
		t.Setenv(ConfigPathEnvVar, "/non/existent/config.yaml")
		if got := findConfigFile(); got != "" {
			t.Errorf("findConfigFile() = %q, want empty", got)
		}
	})
}

// TestLoadWithKoanfEnvVars tests loading configuration from environment variables
func TestLoadWithKoanfEnvVars(t *testing.T) {
	t.Setenv(ConfigPathEnvVar, "/non/existent/config.yaml")
	t.Setenv("DUCKDB_PATH", ":memory:")
	t.Setenv("HTTP_PORT", "9000")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("WAREHOUSE_QUERY_TIMEOUT", "90s")
	t.Setenv("SESSION_IDLE_TIMEOUT", "2h")
	t.Setenv("CORS_ORIGINS", "https://a.example, https://b.example")

	cfg, err := LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf() error = %v", err)
	}

	if cfg.Warehouse.Path != ":memory:" {
		t.Errorf("Warehouse.Path = %q, want :memory:", cfg.Warehouse.Path)
	}
	if cfg.Server.Port != 9000 {
		t.Errorf("Server.Port = %d, want 9000", cfg.Server.Port)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, want debug", cfg.Logging.Level)
	}
	if cfg.Warehouse.QueryTimeout != 90*time.Second {
		t.Errorf("Warehouse.QueryTimeout = %v, want 90s", cfg.Warehouse.QueryTimeout)
	}
	if cfg.Session.IdleTimeout != 2*time.Hour {
		t.Errorf("Session.IdleTimeout = %v, want 2h", cfg.Session.IdleTimeout)
	}
	wantOrigins := []string{"https://a.example", "https://b.example"}
	if !reflect.DeepEqual(cfg.Security.CORSOrigins, wantOrigins) {
		t.Errorf("Security.CORSOrigins = %v, want %v", cfg.Security.CORSOrigins, wantOrigins)
	}

	// Defaults are still applied for unset values
	if cfg.Server.Host != "0.0.0.0" {
		t.Errorf("Server.Host = %q, want 0.0.0.0 (default)", cfg.Server.Host)
	}
	if cfg.Warehouse.MaxMemory != "2GB" {
		t.Errorf("Warehouse.MaxMemory = %q, want 2GB (default)", cfg.Warehouse.MaxMemory)
	}
}

// TestLoadWithKoanfConfigFile tests loading configuration from a YAML file
func TestLoadWithKoanfConfigFile(t *testing.T) {
	configContent := `
warehouse:
  driver: mysql
  dsn: "bi:secret@tcp(db:3306)/edw"
server:
  port: 8080
  host: "127.0.0.1"
security:
  cors_origins:
    - https://dash.example
session:
  idle_timeout: 30m
logging:
  level: warn
  format: console
`
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(configPath, []byte(configContent), 0o600); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}
	t.Setenv(ConfigPathEnvVar, configPath)

	cfg, err := LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf() error = %v", err)
	}

	if cfg.Warehouse.Driver != DriverMySQL {
		t.Errorf("Warehouse.Driver = %q, want mysql", cfg.Warehouse.Driver)
	}
	if cfg.Warehouse.DSN != "bi:secret@tcp(db:3306)/edw" {
		t.Errorf("Warehouse.DSN = %q", cfg.Warehouse.DSN)
	}
	if cfg.Server.Addr() != "127.0.0.1:8080" {
		t.Errorf("Server.Addr() = %q, want 127.0.0.1:8080", cfg.Server.Addr())
	}
	if len(cfg.Security.CORSOrigins) != 1 || cfg.Security.CORSOrigins[0] != "https://dash.example" {
		t.Errorf("Security.CORSOrigins = %v", cfg.Security.CORSOrigins)
	}
	if cfg.Session.IdleTimeout != 30*time.Minute {
		t.Errorf("Session.IdleTimeout = %v, want 30m", cfg.Session.IdleTimeout)
	}
	if cfg.Logging.Format != "console" {
		t.Errorf("Logging.Format = %q, want console", cfg.Logging.Format)
	}
}

// TestLoadWithKoanfEnvOverridesFile tests that env vars override config file
func TestLoadWithKoanfEnvOverridesFile(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(configPath, []byte("server:\n  port: 8080\nlogging:\n  level: warn\n"), 0o600); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}
	t.Setenv(ConfigPathEnvVar, configPath)
	t.Setenv("HTTP_PORT", "9999")

	cfg, err := LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf() error = %v", err)
	}

	if cfg.Server.Port != 9999 {
		t.Errorf("Server.Port = %d, want 9999 (env override)", cfg.Server.Port)
	}
	if cfg.Logging.Level != "warn" {
		t.Errorf("Logging.Level = %q, want warn (from file)", cfg.Logging.Level)
	}
}

func TestLoadWithKoanfValidationFailure(t *testing.T) {
	t.Setenv(ConfigPathEnvVar, "/non/existent/config.yaml")
	t.Setenv("WAREHOUSE_DRIVER", "snowflake")

	if _, err := LoadWithKoanf(); err == nil {
		t.Fatal("expected validation error for unsupported driver")
	}
}
