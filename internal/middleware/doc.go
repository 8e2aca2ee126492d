// Venuelens - Booking Transaction Analytics Dashboards
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/venuelens

/*
Package middleware provides HTTP middleware components for the API.

Key Components:

  - Request ID: reuse or generate X-Request-ID and put it in the logging context
  - Prometheus Metrics: request count, duration and in-flight gauge per route
  - Compression: gzip for clients that accept it

All three are plain func(http.Handler) http.Handler and mount directly with
chi's r.Use:

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Route("/api/v1", func(r chi.Router) {
	    r.Use(middleware.PrometheusMetrics)
	    r.Use(middleware.Compression)
	    r.Get("/pages/{page}", h.Page)
	})

Metrics are labelled by route pattern, so register PrometheusMetrics inside
a chi router; outside one the raw path is used.
*/
package middleware
