// Venuelens - Booking Transaction Analytics Dashboards
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/venuelens

package api

import (
	"context"
	"net/http"
	"time"

	"github.com/tomtom215/venuelens/internal/models"
)

// pingTimeout bounds the warehouse ping of a health request.
const pingTimeout = 3 * time.Second

// pingWarehouse reports whether the warehouse answers a ping.
func (h *Handler) pingWarehouse(ctx context.Context) bool {
	if h.warehouse == nil {
		return false
	}
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	return h.warehouse.Ping(ctx) == nil
}

// Health handles health check requests
//
// @Summary Get system health status
// @Description Returns version, uptime, warehouse connectivity and circuit breaker state
// @Tags Core
// @Produce json
// @Success 200 {object} models.APIResponse{data=models.HealthStatus}
// @Router /health [get]
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	connected := h.pingWarehouse(r.Context())

	health := models.HealthStatus{
		Status:             "healthy",
		Version:            h.version,
		WarehouseConnected: connected,
		Uptime:             time.Since(h.startTime).Seconds(),
	}
	if h.warehouse != nil {
		health.WarehouseDriver = h.warehouse.Driver()
		health.CircuitState = h.warehouse.CircuitState()
	}
	if !connected {
		health.Status = "degraded"
	}

	respondSuccess(w, health, metadataNow())
}

// HealthLive handles liveness probe requests. It answers 200 while the
// process is up, regardless of the warehouse.
//
// @Summary Liveness probe
// @Tags Core
// @Produce json
// @Success 200 {object} models.APIResponse
// @Router /health/live [get]
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	respondSuccess(w, map[string]interface{}{
		"alive":  true,
		"uptime": time.Since(h.startTime).Seconds(),
	}, metadataNow())
}

// HealthReady handles readiness probe requests: 200 only when the
// warehouse answers.
//
// @Summary Readiness probe
// @Tags Core
// @Produce json
// @Success 200 {object} models.APIResponse "Service is ready"
// @Failure 503 {object} models.APIResponse "Service is not ready"
// @Router /health/ready [get]
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	ready := h.pingWarehouse(r.Context())

	statusCode := http.StatusOK
	status := "ready"
	if !ready {
		statusCode = http.StatusServiceUnavailable
		status = "not_ready"
	}

	respondJSON(w, statusCode, &models.APIResponse{
		Status: status,
		Data: map[string]interface{}{
			"warehouse_connected": ready,
			"ready_to_serve":      ready,
			"uptime":              time.Since(h.startTime).Seconds(),
		},
		Metadata: metadataNow(),
	})
}
