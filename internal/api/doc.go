// Venuelens - Booking Transaction Analytics Dashboards
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/venuelens

/*
Package api provides the HTTP REST API layer for Venuelens.

Endpoints:

  - GET  /api/v1/health, /health/live, /health/ready: liveness, readiness
    and warehouse connectivity
  - GET  /api/v1/pages: page catalog with filter descriptors
  - GET  /api/v1/pages/{page}: render a page for the caller's session
  - GET  /api/v1/pages/{page}/options: cascade options only
  - POST /api/v1/cache/clear: drop cached datasets and pages, reset the session
  - GET  /metrics: Prometheus

Every JSON response uses the models.APIResponse envelope. Errors map to:

	400 VALIDATION_ERROR      invalid query parameters
	404 NOT_FOUND             unknown page
	429 RATE_LIMIT_EXCEEDED   per-IP limit hit
	502 QUERY_FAILED          warehouse query failed or circuit open
	503 SOURCE_UNINITIALIZED  no warehouse configured

"No data" is not an error: the page renders with no_data set and the
message asking for different filters.

Sessions:

The dashboard endpoints run behind the session cookie middleware. Each
render reads the stored filter state, merges the request's parameters into
it and stores the pruned state the cascade produced. A parameter that is
absent keeps the stored value; a parameter present with an empty value
clears it.

Usage Example:

	handler := api.NewHandler(service, sessions, exec, version)
	chiMW := api.NewChiMiddlewareFromSecurity(origins, 100, time.Minute, false)
	router := api.NewRouter(handler, chiMW, session.Cookies{Name: "venuelens_session"})
	http.ListenAndServe(":3858", router.SetupChi())
*/
package api
