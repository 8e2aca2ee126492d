// Venuelens - Booking Transaction Analytics Dashboards
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/venuelens

// Package main is the entry point for venuelens-server.
//
// Venuelens serves booking transaction dashboards (transactions over time,
// repeat bookings, day of week and seasonal trends) over a JSON API. Every
// page runs one static booking query against the warehouse, normalizes the
// result once and then filters and aggregates it in memory per request.
//
// # Startup
//
//  1. Configuration: koanf layers (defaults, config.yaml, environment)
//  2. Logging: zerolog, JSON in production
//  3. Warehouse: DuckDB file or MySQL; an empty DuckDB warehouse is seeded
//     with demo rows when SEED_DEMO_DATA=true
//  4. Dashboard service, caches and session store
//  5. Supervisor tree: HTTP server and the SIGHUP cache reset
//
// If the warehouse cannot be opened the server still starts; pages then
// answer 503 SOURCE_UNINITIALIZED and /api/v1/health reports degraded.
//
// # Signal Handling
//
//   - SIGINT, SIGTERM: graceful shutdown
//   - SIGHUP: clear the dataset and page caches so the next render queries
//     the warehouse again
//
// # Example Usage
//
// Local demo:
//
//	export WAREHOUSE_PATH=./warehouse.duckdb
//	export SEED_DEMO_DATA=true
//	export LOG_FORMAT=console
//	./venuelens-server
//
// MySQL-compatible warehouse:
//
//	export WAREHOUSE_DRIVER=mysql
//	export WAREHOUSE_DSN='analyst:secret@tcp(edw:3306)/edw'
//	./venuelens-server
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/tomtom215/venuelens/internal/api"
	"github.com/tomtom215/venuelens/internal/cache"
	"github.com/tomtom215/venuelens/internal/config"
	"github.com/tomtom215/venuelens/internal/dashboard"
	"github.com/tomtom215/venuelens/internal/dataset"
	"github.com/tomtom215/venuelens/internal/logging"
	"github.com/tomtom215/venuelens/internal/metrics"
	"github.com/tomtom215/venuelens/internal/session"
	"github.com/tomtom215/venuelens/internal/supervisor"
	"github.com/tomtom215/venuelens/internal/supervisor/services"
	"github.com/tomtom215/venuelens/internal/warehouse"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	if err := logging.Init(logging.Options{
		Level:   cfg.Logging.Level,
		Format:  cfg.Logging.Format,
		Caller:  cfg.Logging.Caller,
		Version: version,
		Output:  os.Stderr,
	}); err != nil {
		logging.Fatal().Err(err).Msg("Invalid logging configuration")
	}
	metrics.AppInfo.WithLabelValues(version, runtime.Version()).Set(1)

	logging.Info().
		Str("version", version).
		Str("driver", cfg.Warehouse.Driver).
		Str("environment", cfg.Server.Environment).
		Msg("Starting Venuelens")

	// The warehouse may be down at boot; the lazy executor retries on each
	// use and reconnects after a cache clear.
	lazy := warehouse.NewLazyExecutor(cfg.Warehouse.Driver, func() (*warehouse.SQLExecutor, error) {
		exec, err := warehouse.Open(&cfg.Warehouse)
		if err != nil {
			return nil, err
		}
		seedIfEmpty(cfg, exec)
		return exec, nil
	})
	defer func() {
		if err := lazy.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing warehouse")
		}
	}()
	if _, err := lazy.Executor(); err != nil {
		logging.Warn().Err(err).Msg("Warehouse unavailable, will retry on first request")
	}

	datasets := cache.New("dataset", 0)
	results := cache.New("page", 0)
	sessions := session.NewStore(cfg.Session.IdleTimeout)
	defer datasets.Close()
	defer results.Close()
	defer sessions.Close()

	service := dashboard.NewService(
		dataset.NewLoader(lazy, datasets),
		datasets,
		results,
		warehouse.BookingQuery,
		dashboard.DefaultPages(),
	)

	handler := api.NewHandler(service, sessions, lazy, version)
	chiMW := api.NewChiMiddlewareFromSecurity(
		cfg.Security.CORSOrigins,
		cfg.Security.RateLimitReqs,
		cfg.Security.RateLimitWindow,
		cfg.Security.RateLimitDisabled,
	)
	router := api.NewRouter(handler, chiMW, session.Cookies{
		Name:   cfg.Session.CookieName,
		Secure: cfg.Session.CookieSecure,
		MaxAge: cfg.Session.IdleTimeout,
	})

	server := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           router.SetupChi(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       cfg.Server.Timeout,
		WriteTimeout:      cfg.Server.Timeout,
		IdleTimeout:       2 * cfg.Server.Timeout,
	}

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.DefaultTreeConfig())
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create supervisor tree")
	}

	hup := make(chan os.Signal, 1)
	signal.Notify(hup, syscall.SIGHUP)
	defer signal.Stop(hup)

	tree.AddAPIService(services.NewHTTPServerService(server, server.Addr, 10*time.Second))
	tree.AddOpsService(services.NewCacheResetService(hup, service))

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	logging.Info().Str("addr", server.Addr).Msg("Starting supervisor tree")
	if err := tree.Serve(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logging.Error().Err(err).Msg("Supervisor tree error")
	}

	unstopped, _ := tree.UnstoppedServiceReport()
	for _, svc := range unstopped {
		logging.Warn().Str("service", svc.Name).Msg("Service failed to stop")
	}

	logging.Info().Msg("Venuelens stopped")
}

// seedIfEmpty fills an empty DuckDB warehouse with demo rows when enabled.
// A seeding failure is logged; the server still starts.
func seedIfEmpty(cfg *config.Config, exec *warehouse.SQLExecutor) {
	if !cfg.Warehouse.SeedDemoData || cfg.Warehouse.Driver != config.DriverDuckDB {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	// A missing fact table counts as empty; Seed creates the schema.
	if n, err := warehouse.FactRowCount(ctx, exec.DB()); err == nil && n > 0 {
		logging.Info().Int("fact_rows", n).Msg("Warehouse already populated, skipping demo seed")
		return
	}

	sum, err := warehouse.Seed(ctx, exec.DB(), warehouse.SeedOptions{Rows: cfg.Warehouse.SeedRows, Seed: 1})
	if err != nil {
		logging.Error().Err(err).Msg("Failed to seed demo data")
		return
	}
	logging.Info().
		Int("fact_rows", sum.FactRows).
		Int("visits", sum.Visits).
		Int("venues", sum.Venues).
		Msg("Demo data seeded")
}
