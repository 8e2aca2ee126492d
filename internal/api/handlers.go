// Venuelens - Booking Transaction Analytics Dashboards
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/venuelens

package api

import (
	"context"
	"time"

	"github.com/tomtom215/venuelens/internal/dashboard"
	"github.com/tomtom215/venuelens/internal/logging"
	"github.com/tomtom215/venuelens/internal/session"
)

// WarehouseStatus is the part of the query executor the health endpoints
// report on. *warehouse.SQLExecutor satisfies it.
type WarehouseStatus interface {
	Ping(ctx context.Context) error
	Driver() string
	CircuitState() string
}

// Handler contains dependencies for API handlers
//
// Handler methods are split across files:
//   - handlers.go: Handler struct and constructor (this file)
//   - handlers_helpers.go: response and validation helpers
//   - handlers_health.go: health and probe endpoints
//   - handlers_pages.go: page catalog, render, options and cache clear
type Handler struct {
	service   *dashboard.Service
	sessions  *session.Store
	warehouse WarehouseStatus // nil when no executor is configured
	version   string
	startTime time.Time

	sessionEvents *logging.SessionLogger
}

// NewHandler creates the API handler. warehouse may be nil; the pages then
// answer 503 SOURCE_UNINITIALIZED and health reports degraded.
//
// Example:
//
//	handler := api.NewHandler(service, sessions, exec, version)
//	router := api.NewRouter(handler, chiMW, cookies)
//	http.ListenAndServe(":3858", router.SetupChi())
func NewHandler(service *dashboard.Service, sessions *session.Store, warehouse WarehouseStatus, version string) *Handler {
	return &Handler{
		service:   service,
		sessions:  sessions,
		warehouse: warehouse,
		version:   version,
		startTime: time.Now(),

		sessionEvents: logging.NewSessionLogger(),
	}
}
