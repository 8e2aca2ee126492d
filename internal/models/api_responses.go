// Venuelens - Booking Transaction Analytics Dashboards
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/venuelens

package models

import (
	"time"
)

// APIResponse represents a standardized API response wrapper used by all HTTP endpoints.
// It provides consistent structure for both successful and error responses, with metadata
// for observability and caching information.
//
// Status field values:
//   - "success": Request completed successfully, see Data field
//   - "error": Request failed, see Error field for details
//
// Example successful response:
//
//	{
//	  "status": "success",
//	  "data": {"page": "seasonal", "no_data": false, "charts": [...]},
//	  "metadata": {
//	    "timestamp": "2026-03-02T12:00:00Z",
//	    "query_time_ms": 45
//	  }
//	}
//
// Example error response:
//
//	{
//	  "status": "error",
//	  "error": {
//	    "code": "QUERY_FAILED",
//	    "message": "Failed to execute query or process data: warehouse unavailable"
//	  },
//	  "metadata": {"timestamp": "2026-03-02T12:00:00Z"}
//	}
type APIResponse struct {
	Status   string      `json:"status"`
	Data     interface{} `json:"data"`
	Metadata Metadata    `json:"metadata"`
	Error    *APIError   `json:"error,omitempty"`
}

// Metadata contains response metadata for observability.
//
// Fields:
//   - Timestamp: Server time when response was generated (RFC3339 format)
//   - QueryTimeMS: Render time in milliseconds, including any warehouse query
//   - Cached: Whether the page result was served from the memo cache
type Metadata struct {
	Timestamp   time.Time `json:"timestamp"`
	QueryTimeMS int64     `json:"query_time_ms,omitempty"`
	Cached      bool      `json:"cached,omitempty"`
}

// APIError represents an error response with structured error details.
//
// Error codes:
//   - VALIDATION_ERROR: Invalid query parameters (Details holds per-field messages)
//   - NOT_FOUND: Unknown dashboard page
//   - QUERY_FAILED: Warehouse query failed or the circuit breaker is open
//   - SOURCE_UNINITIALIZED: No query executor is configured
//   - RATE_LIMIT_EXCEEDED: Too many requests
//   - INTERNAL_ERROR: Unexpected failure
type APIError struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// HealthStatus represents the health check response
type HealthStatus struct {
	Status             string  `json:"status"`
	Version            string  `json:"version"`
	WarehouseDriver    string  `json:"warehouse_driver"`
	WarehouseConnected bool    `json:"warehouse_connected"`
	CircuitState       string  `json:"circuit_state,omitempty"`
	Uptime             float64 `json:"uptime_seconds"`
}

// CacheClearResult is returned by the cache clear endpoint.
type CacheClearResult struct {
	Message        string `json:"message"`
	EntriesRemoved int    `json:"entries_removed"`
	SessionReset   bool   `json:"session_reset"`
}
