// Venuelens - Booking Transaction Analytics Dashboards
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/venuelens

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tomtom215/venuelens/internal/middleware"
	"github.com/tomtom215/venuelens/internal/models"
	"github.com/tomtom215/venuelens/internal/session"
)

// Router wires handlers and middleware into a Chi mux.
type Router struct {
	handler       *Handler
	chiMiddleware *ChiMiddleware
	cookies       session.Cookies
}

// NewRouter creates a Router. A nil chiMW uses DefaultChiMiddlewareConfig.
func NewRouter(handler *Handler, chiMW *ChiMiddleware, cookies session.Cookies) *Router {
	if chiMW == nil {
		chiMW = NewChiMiddleware(nil)
	}
	return &Router{
		handler:       handler,
		chiMiddleware: chiMW,
		cookies:       cookies,
	}
}

// SetupChi configures all HTTP routes.
func (router *Router) SetupChi() http.Handler {
	r := chi.NewRouter()

	// ========================
	// Global Middleware Stack
	// ========================
	r.Use(middleware.RequestID)        // X-Request-ID and logging context
	r.Use(chimiddleware.RealIP)        // Extract real IP from X-Forwarded-For
	r.Use(chimiddleware.Recoverer)     // Recover from panics
	r.Use(router.chiMiddleware.CORS()) // CORS must be global to handle OPTIONS preflight

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		respondError(w, r, http.StatusNotFound, CodeNotFound, "Not found", nil)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusMethodNotAllowed, &models.APIResponse{
			Status:   "error",
			Error:    &models.APIError{Code: "METHOD_NOT_ALLOWED", Message: "Method not allowed"},
			Metadata: metadataNow(),
		})
	})

	// ========================
	// Health Endpoints
	// ========================
	r.Route("/api/v1/health", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimitHealth())
		r.Use(APISecurityHeaders())
		r.Use(middleware.PrometheusMetrics)
		r.Get("/", router.handler.Health)
		r.Get("/live", router.handler.HealthLive)
		r.Get("/ready", router.handler.HealthReady)
	})

	// ========================
	// Dashboard Endpoints
	// ========================
	r.Group(func(r chi.Router) {
		r.Use(APISecurityHeaders())
		r.Use(middleware.PrometheusMetrics)
		r.Use(middleware.Compression)
		r.Use(router.cookies.Middleware)

		r.Route("/api/v1/pages", func(r chi.Router) {
			r.Use(router.chiMiddleware.RateLimit())
			r.Get("/", router.handler.Pages)
			r.Get("/{page}", router.handler.Page)
			r.Get("/{page}/options", router.handler.PageOptions)
		})

		r.With(router.chiMiddleware.RateLimitCacheClear()).
			Post("/api/v1/cache/clear", router.handler.ClearCache)
	})

	// ========================
	// Metrics
	// ========================
	r.Handle("/metrics", promhttp.Handler())

	return r
}
