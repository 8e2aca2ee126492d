// Venuelens - Booking Transaction Analytics Dashboards
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/venuelens

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Prometheus instrumentation for:
// - Warehouse query performance
// - Dataset normalization
// - Dashboard page renders
// - API endpoint latency and throughput
// - Cache efficiency
// - Circuit breaker state

var (
	// Warehouse Metrics
	WarehouseQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "warehouse_query_duration_seconds",
			Help:    "Duration of warehouse queries in seconds",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30, 60}, // Warehouse scans are slow
		},
		[]string{"driver"},
	)

	WarehouseQueryErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "warehouse_query_errors_total",
			Help: "Total number of warehouse query errors",
		},
		[]string{"driver", "error_type"},
	)

	WarehouseRowsReturned = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "warehouse_rows_returned",
			Help:    "Number of raw rows returned per warehouse query",
			Buckets: prometheus.ExponentialBuckets(10, 4, 10),
		},
		[]string{"driver"},
	)

	// Dataset Metrics
	DatasetRows = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "dataset_rows",
			Help: "Rows in the most recently normalized dataset by outcome",
		},
		[]string{"outcome"}, // "kept", "duplicate", "unparseable"
	)

	DatasetLoads = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "dataset_loads_total",
			Help: "Total number of datasets fetched from the warehouse",
		},
	)

	// Dashboard Metrics
	PageRenders = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dashboard_page_renders_total",
			Help: "Total number of dashboard page renders by outcome",
		},
		[]string{"page", "outcome"}, // outcome: "ok", "no_data", "error"
	)

	PageRenderDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "dashboard_page_render_duration_seconds",
			Help:    "Time spent filtering and aggregating a dashboard page",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		},
		[]string{"page"},
	)

	// API Endpoint Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	// Cache Metrics
	CacheHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_hits_total",
			Help: "Total number of cache hits",
		},
		[]string{"cache_type"}, // "dataset", "page", "session"
	)

	CacheMisses = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_misses_total",
			Help: "Total number of cache misses",
		},
		[]string{"cache_type"},
	)

	CacheSize = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "cache_entries",
			Help: "Current number of cached entries",
		},
		[]string{"cache_type"},
	)

	CacheInvalidations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_invalidations_total",
			Help: "Total number of full cache invalidations",
		},
		[]string{"cache_type"},
	)

	CacheEvictions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_evictions_total",
			Help: "Total number of cache evictions (TTL expiry)",
		},
		[]string{"cache_type"},
	)

	// Circuit Breaker Metrics
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	CircuitBreakerRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_requests_total",
			Help: "Total number of requests through circuit breaker",
		},
		[]string{"name", "result"}, // result: "success", "failure", "rejected"
	)

	CircuitBreakerTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_state_transitions_total",
			Help: "Total number of circuit breaker state transitions",
		},
		[]string{"name", "from_state", "to_state"},
	)

	// Application Metrics
	AppInfo = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "app_info",
			Help: "Application build information",
		},
		[]string{"version", "go_version"},
	)
)

// RecordWarehouseQuery records a warehouse query metric
func RecordWarehouseQuery(driver string, duration time.Duration, rows int, err error) {
	WarehouseQueryDuration.WithLabelValues(driver).Observe(duration.Seconds())
	if err != nil {
		errorType := err.Error()
		// Truncate long error messages
		if len(errorType) > 50 {
			errorType = errorType[:50]
		}
		WarehouseQueryErrors.WithLabelValues(driver, errorType).Inc()
		return
	}
	WarehouseRowsReturned.WithLabelValues(driver).Observe(float64(rows))
}

// RecordDatasetLoad records the outcome of normalizing one warehouse result
func RecordDatasetLoad(kept, duplicates, unparseable int) {
	DatasetLoads.Inc()
	DatasetRows.WithLabelValues("kept").Set(float64(kept))
	DatasetRows.WithLabelValues("duplicate").Set(float64(duplicates))
	DatasetRows.WithLabelValues("unparseable").Set(float64(unparseable))
}

// RecordPageRender records a dashboard page render
func RecordPageRender(page, outcome string, duration time.Duration) {
	PageRenders.WithLabelValues(page, outcome).Inc()
	PageRenderDuration.WithLabelValues(page).Observe(duration.Seconds())
}

// RecordAPIRequest records an API request metric
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest tracks active API requests
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}
