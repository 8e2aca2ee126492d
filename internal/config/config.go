// Venuelens - Booking Transaction Analytics Dashboards
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/venuelens

package config

import (
	"fmt"
	"time"
)

// Config holds all application configuration loaded from defaults, an
// optional YAML file and environment variables (see LoadWithKoanf).
//
// Sections:
//   - Warehouse: query executor driver and connection (DuckDB or MySQL)
//   - Server: HTTP listener
//   - Security: CORS and rate limiting
//   - Session: dashboard session cookie and idle expiry
//   - Logging: log level and output format
//
// Config is immutable after Load() and safe for concurrent reads.
type Config struct {
	Warehouse WarehouseConfig `koanf:"warehouse"`
	Server    ServerConfig    `koanf:"server"`
	Security  SecurityConfig  `koanf:"security"`
	Session   SessionConfig   `koanf:"session"`
	Logging   LoggingConfig   `koanf:"logging"`
}

// WarehouseConfig configures the query executor.
//
// With Driver "duckdb" (default) Path names a DuckDB database file holding the
// fact_book_trans, dim_visit, dim_venue and dim_item tables; ":memory:" starts
// an empty in-process warehouse, which is only useful with SeedDemoData.
// With Driver "mysql" DSN is a go-sql-driver/mysql data source name.
//
// Environment Variables:
//   - WAREHOUSE_DRIVER: duckdb or mysql (default: duckdb)
//   - WAREHOUSE_PATH / DUCKDB_PATH: DuckDB file path
//   - WAREHOUSE_DSN: MySQL DSN, e.g. user:pass@tcp(host:3306)/edw?parseTime=false
//   - DUCKDB_MAX_MEMORY, DUCKDB_THREADS
//   - WAREHOUSE_QUERY_TIMEOUT: per-query deadline (default: 5m)
//   - SEED_DEMO_DATA: populate an empty DuckDB warehouse with demo rows
type WarehouseConfig struct {
	Driver       string        `koanf:"driver"`
	Path         string        `koanf:"path"`
	DSN          string        `koanf:"dsn"`
	MaxMemory    string        `koanf:"max_memory"`
	Threads      int           `koanf:"threads"`
	QueryTimeout time.Duration `koanf:"query_timeout"`
	SeedDemoData bool          `koanf:"seed_demo_data"`
	SeedRows     int           `koanf:"seed_rows"`
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Port        int           `koanf:"port"`
	Host        string        `koanf:"host"`
	Timeout     time.Duration `koanf:"timeout"`
	Environment string        `koanf:"environment"`
}

// Addr returns the listen address.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// IsProduction reports whether production checks apply.
func (s ServerConfig) IsProduction() bool {
	return s.Environment == "production"
}

// SecurityConfig holds CORS and rate limiting settings.
type SecurityConfig struct {
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
	CORSOrigins       []string      `koanf:"cors_origins"`
}

// SessionConfig controls dashboard sessions. A session holds the filter
// selections restored on every page render and ends after IdleTimeout
// without activity.
type SessionConfig struct {
	CookieName   string        `koanf:"cookie_name"`
	CookieSecure bool          `koanf:"cookie_secure"`
	IdleTimeout  time.Duration `koanf:"idle_timeout"`
}

// LoggingConfig holds logging settings
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// Load reads configuration using the layered koanf loader.
func Load() (*Config, error) {
	return LoadWithKoanf()
}
