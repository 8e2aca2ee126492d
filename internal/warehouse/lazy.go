// Venuelens - Booking Transaction Analytics Dashboards
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/venuelens

package warehouse

import (
	"context"
	"fmt"
	"sync"

	"github.com/tomtom215/venuelens/internal/logging"
)

// OpenFunc opens a warehouse connection.
type OpenFunc func() (*SQLExecutor, error)

// LazyExecutor opens the warehouse on first use and keeps retrying on later
// calls until a connection succeeds. Reset closes the connection so the
// next call opens a fresh one.
type LazyExecutor struct {
	driver string
	open   OpenFunc

	mu   sync.Mutex
	exec *SQLExecutor
}

var _ Executor = (*LazyExecutor)(nil)

// NewLazyExecutor creates a LazyExecutor for driver. Nothing is opened
// until the first call.
func NewLazyExecutor(driver string, open OpenFunc) *LazyExecutor {
	return &LazyExecutor{driver: driver, open: open}
}

// Executor returns the open connection, opening it if needed. Open
// failures wrap ErrSourceUninitialized.
func (l *LazyExecutor) Executor() (*SQLExecutor, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.exec != nil {
		return l.exec, nil
	}
	exec, err := l.open()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSourceUninitialized, err)
	}
	l.exec = exec
	return exec, nil
}

// Query runs query on the current connection.
func (l *LazyExecutor) Query(ctx context.Context, query string) ([]RawRecord, error) {
	exec, err := l.Executor()
	if err != nil {
		return nil, err
	}
	return exec.Query(ctx, query)
}

// Ping opens the connection if needed and checks it.
func (l *LazyExecutor) Ping(ctx context.Context) error {
	exec, err := l.Executor()
	if err != nil {
		return err
	}
	return exec.Ping(ctx)
}

// Driver returns the configured driver name, open or not.
func (l *LazyExecutor) Driver() string {
	return l.driver
}

// CircuitState reports the breaker state, or "unavailable" while no
// connection is open.
func (l *LazyExecutor) CircuitState() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.exec == nil {
		return "unavailable"
	}
	return l.exec.CircuitState()
}

// Reset closes the current connection, if any. Queries already running on
// it fail; the next call opens a new one.
func (l *LazyExecutor) Reset() error {
	l.mu.Lock()
	exec := l.exec
	l.exec = nil
	l.mu.Unlock()

	if exec == nil {
		return nil
	}
	logging.Info().Str("driver", l.driver).Msg("Warehouse connection reset")
	return exec.Close()
}

// Close releases the connection.
func (l *LazyExecutor) Close() error {
	return l.Reset()
}
