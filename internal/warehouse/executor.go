// Venuelens - Booking Transaction Analytics Dashboards
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/venuelens

package warehouse

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"time"

	_ "github.com/duckdb/duckdb-go/v2"
	_ "github.com/go-sql-driver/mysql"

	"github.com/tomtom215/venuelens/internal/config"
	"github.com/tomtom215/venuelens/internal/logging"
	"github.com/tomtom215/venuelens/internal/metrics"
)

// BookingQuery is the static booking transaction query shared by every
// dashboard page.
//
//go:embed sql/booking_transactions.sql
var BookingQuery string

// Executor runs SQL text against the warehouse and returns the rows.
type Executor interface {
	Query(ctx context.Context, query string) ([]RawRecord, error)
}

// SQLExecutor is an Executor over database/sql. It bounds every query by
// the configured timeout and routes it through a circuit breaker.
type SQLExecutor struct {
	db      *sql.DB
	driver  string
	timeout time.Duration
	breaker *breaker
}

var _ Executor = (*SQLExecutor)(nil)

// Open connects to the warehouse described by cfg and verifies the
// connection with a ping.
func Open(cfg *config.WarehouseConfig) (*SQLExecutor, error) {
	driverName, dsn, err := dataSource(cfg)
	if err != nil {
		return nil, err
	}

	db, err := sql.Open(driverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s warehouse: %w", driverName, err)
	}

	pingCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		closeQuietly(db)
		return nil, fmt.Errorf("failed to connect to %s warehouse: %w", driverName, err)
	}

	configurePool(db)

	logging.Info().
		Str("driver", driverName).
		Dur("query_timeout", cfg.QueryTimeout).
		Msg("Warehouse connection established")

	return NewSQLExecutor(db, driverName, cfg.QueryTimeout), nil
}

// NewSQLExecutor wraps an already opened database handle.
func NewSQLExecutor(db *sql.DB, driver string, timeout time.Duration) *SQLExecutor {
	return &SQLExecutor{
		db:      db,
		driver:  driver,
		timeout: timeout,
		breaker: newBreaker("warehouse-" + driver),
	}
}

// dataSource builds the driver name and DSN for cfg.
func dataSource(cfg *config.WarehouseConfig) (string, string, error) {
	switch cfg.Driver {
	case config.DriverDuckDB:
		threads := cfg.Threads
		if threads <= 0 {
			threads = runtime.NumCPU()
		}
		if cfg.Path != ":memory:" {
			// Use 0750 permissions (owner: rwx, group: rx, other: none) per gosec G301
			if dir := filepath.Dir(cfg.Path); dir != "" && dir != "." {
				if err := os.MkdirAll(dir, 0o750); err != nil {
					return "", "", fmt.Errorf("failed to create warehouse directory %s: %w", dir, err)
				}
			}
		}
		dsn := fmt.Sprintf("%s?threads=%d&autoinstall_known_extensions=false&autoload_known_extensions=false",
			cfg.Path, threads)
		// DuckDB rejects an empty max_memory; leave it to the engine default.
		if cfg.MaxMemory != "" {
			dsn += "&max_memory=" + cfg.MaxMemory
		}
		return config.DriverDuckDB, dsn, nil
	case config.DriverMySQL:
		return config.DriverMySQL, cfg.DSN, nil
	default:
		return "", "", fmt.Errorf("unsupported warehouse driver %q", cfg.Driver)
	}
}

// configurePool sets connection pool parameters
func configurePool(db *sql.DB) {
	db.SetMaxOpenConns(runtime.NumCPU())
	db.SetMaxIdleConns(2)
	db.SetConnMaxLifetime(time.Hour)
	db.SetConnMaxIdleTime(5 * time.Minute)
}

// Query runs query and scans every row into a RawRecord. The result must
// select the 58 booking columns in BookingQuery order.
func (e *SQLExecutor) Query(ctx context.Context, query string) ([]RawRecord, error) {
	start := time.Now()
	rows, err := e.breaker.execute(func() ([]RawRecord, error) {
		return e.query(ctx, query)
	})
	metrics.RecordWarehouseQuery(e.driver, time.Since(start), len(rows), err)
	if err != nil {
		logging.Ctx(ctx).Error().Err(err).Str("driver", e.driver).Msg("Warehouse query failed")
		return nil, fmt.Errorf("%w: %w", ErrQueryFailed, err)
	}

	logging.Ctx(ctx).Debug().
		Str("driver", e.driver).
		Int("rows", len(rows)).
		Dur("duration", time.Since(start)).
		Msg("Warehouse query completed")
	return rows, nil
}

func (e *SQLExecutor) query(ctx context.Context, query string) ([]RawRecord, error) {
	if e.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.timeout)
		defer cancel()
	}

	rows, err := e.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer closeQuietly(rows)

	cols, err := rows.Columns()
	if err != nil {
		return nil, err
	}
	if len(cols) != columnCount {
		return nil, fmt.Errorf("expected %d columns, got %d", columnCount, len(cols))
	}

	var out []RawRecord
	for rows.Next() {
		var rec RawRecord
		if err := rows.Scan(rec.scanTargets()...); err != nil {
			return nil, fmt.Errorf("scan row %d: %w", len(out)+1, err)
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Ping checks warehouse connectivity.
func (e *SQLExecutor) Ping(ctx context.Context) error {
	return e.db.PingContext(ctx)
}

// Driver returns the database/sql driver name.
func (e *SQLExecutor) Driver() string {
	return e.driver
}

// CircuitState reports the breaker state: closed, half-open or open.
func (e *SQLExecutor) CircuitState() string {
	return stateToString(e.breaker.cb.State())
}

// DB exposes the underlying handle for schema setup and seeding.
func (e *SQLExecutor) DB() *sql.DB {
	return e.db
}

// Close closes the database handle.
func (e *SQLExecutor) Close() error {
	return e.db.Close()
}
