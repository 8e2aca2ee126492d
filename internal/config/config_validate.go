// Venuelens - Booking Transaction Analytics Dashboards
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/venuelens

package config

import (
	"fmt"
	"time"
)

// Supported warehouse drivers.
const (
	DriverDuckDB = "duckdb"
	DriverMySQL  = "mysql"
)

// Validate checks the configuration and returns the first problem found.
func (c *Config) Validate() error {
	if err := c.validateWarehouse(); err != nil {
		return err
	}

	if err := c.validateServer(); err != nil {
		return err
	}

	if err := c.validateSecurity(); err != nil {
		return err
	}

	if err := c.validateSession(); err != nil {
		return err
	}

	return c.validateLogging()
}

func (c *Config) validateWarehouse() error {
	switch c.Warehouse.Driver {
	case DriverDuckDB:
		if c.Warehouse.Path == "" {
			return fmt.Errorf("WAREHOUSE_PATH is required for the duckdb driver")
		}
		if c.Warehouse.Threads < 0 {
			return fmt.Errorf("DUCKDB_THREADS must be >= 0, got %d", c.Warehouse.Threads)
		}
	case DriverMySQL:
		if c.Warehouse.DSN == "" {
			return fmt.Errorf("WAREHOUSE_DSN is required for the mysql driver")
		}
		if c.Warehouse.SeedDemoData {
			return fmt.Errorf("SEED_DEMO_DATA is only supported with the duckdb driver")
		}
	default:
		return fmt.Errorf("WAREHOUSE_DRIVER must be one of: duckdb, mysql (got %q)", c.Warehouse.Driver)
	}

	if c.Warehouse.QueryTimeout < 0 {
		return fmt.Errorf("WAREHOUSE_QUERY_TIMEOUT must not be negative")
	}
	if c.Warehouse.SeedDemoData && c.Warehouse.SeedRows <= 0 {
		return fmt.Errorf("SEED_ROWS must be positive when SEED_DEMO_DATA is enabled")
	}
	return nil
}

func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("HTTP_PORT must be between 1 and 65535")
	}
	if c.Server.Timeout <= 0 {
		return fmt.Errorf("HTTP_TIMEOUT must be positive")
	}
	return nil
}

func (c *Config) validateSecurity() error {
	if len(c.Security.CORSOrigins) == 0 {
		return fmt.Errorf("CORS_ORIGINS must list at least one origin")
	}
	return c.validateRateLimits()
}

// Rate limit bounds
const (
	minRateLimitReqs   = 1
	maxRateLimitReqs   = 100000
	minRateLimitWindow = time.Second
	maxRateLimitWindow = time.Hour
)

func (c *Config) validateRateLimits() error {
	if c.Security.RateLimitDisabled {
		return nil
	}

	if c.Security.RateLimitReqs < minRateLimitReqs || c.Security.RateLimitReqs > maxRateLimitReqs {
		return fmt.Errorf("RATE_LIMIT_REQUESTS must be between %d and %d, got %d",
			minRateLimitReqs, maxRateLimitReqs, c.Security.RateLimitReqs)
	}
	if c.Security.RateLimitWindow < minRateLimitWindow || c.Security.RateLimitWindow > maxRateLimitWindow {
		return fmt.Errorf("RATE_LIMIT_WINDOW must be between %v and %v, got %v",
			minRateLimitWindow, maxRateLimitWindow, c.Security.RateLimitWindow)
	}
	return nil
}

func (c *Config) validateSession() error {
	if c.Session.CookieName == "" {
		return fmt.Errorf("SESSION_COOKIE_NAME must not be empty")
	}
	if c.Session.IdleTimeout < time.Minute {
		return fmt.Errorf("SESSION_IDLE_TIMEOUT must be at least 1m, got %v", c.Session.IdleTimeout)
	}
	if c.Server.IsProduction() && !c.Session.CookieSecure {
		return fmt.Errorf("SESSION_COOKIE_SECURE must be true when ENVIRONMENT=production")
	}
	return nil
}

// validLogLevels defines the allowed log levels
var validLogLevels = map[string]bool{
	"trace": true,
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// validLogFormats defines the allowed log formats
var validLogFormats = map[string]bool{
	"json":    true,
	"console": true,
}

func (c *Config) validateLogging() error {
	if !validLogLevels[c.Logging.Level] {
		return fmt.Errorf("LOG_LEVEL must be one of: trace, debug, info, warn, error")
	}
	if c.Logging.Format != "" && !validLogFormats[c.Logging.Format] {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console")
	}
	return nil
}
