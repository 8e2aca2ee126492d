// Venuelens - Booking Transaction Analytics Dashboards
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/venuelens

/*
Package metrics provides Prometheus metrics collection and export for observability.

All collectors are registered with the default registry through promauto and
exposed at /metrics in Prometheus text format:

	curl http://localhost:3858/metrics

# Available Metrics

Warehouse:
  - warehouse_query_duration_seconds (histogram, labels: driver)
  - warehouse_query_errors_total (counter, labels: driver, error_type)
  - warehouse_rows_returned (histogram, labels: driver)

Dataset:
  - dataset_loads_total (counter)
  - dataset_rows (gauge, labels: outcome)

Dashboard:
  - dashboard_page_renders_total (counter, labels: page, outcome)
  - dashboard_page_render_duration_seconds (histogram, labels: page)

API:
  - api_requests_total, api_request_duration_seconds, api_active_requests

Cache:
  - cache_hits_total, cache_misses_total, cache_entries,
    cache_invalidations_total, cache_evictions_total (labels: cache_type)

Circuit breaker:
  - circuit_breaker_state, circuit_breaker_requests_total,
    circuit_breaker_state_transitions_total

# Usage

	start := time.Now()
	rows, err := exec.Query(ctx, sql)
	metrics.RecordWarehouseQuery("duckdb", time.Since(start), len(rows), err)
*/
package metrics
