// Venuelens - Booking Transaction Analytics Dashboards
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/venuelens

package warehouse

import (
	"errors"
	"io"
)

var (
	// ErrQueryFailed wraps any failure to execute the booking query or read
	// its rows, including a rejection by the open circuit breaker.
	ErrQueryFailed = errors.New("query failed")

	// ErrSourceUninitialized is returned when no executor is configured.
	ErrSourceUninitialized = errors.New("warehouse source not initialized")
)

// closeQuietly closes a resource and explicitly ignores any error
// Use this for cleanup operations in error paths where Close() errors are not actionable
func closeQuietly(closer io.Closer) {
	if closer != nil {
		_ = closer.Close() // Explicitly ignore error - cleanup is best-effort
	}
}
