// Venuelens - Booking Transaction Analytics Dashboards
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/venuelens

package middleware

import (
	"compress/gzip"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/tomtom215/venuelens/internal/logging"
	"github.com/tomtom215/venuelens/internal/metrics"
)

func TestRequestID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		incoming string
		keep     bool
	}{
		{"generated", "", false},
		{"upstream", "proxy-123", true},
		{"oversized", strings.Repeat("x", maxRequestIDLen+1), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var seen string
			h := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				seen = logging.RequestIDFromContext(r.Context())
			}))

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.incoming != "" {
				req.Header.Set(RequestIDHeader, tt.incoming)
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			if seen == "" || rec.Header().Get(RequestIDHeader) != seen {
				t.Fatalf("context ID %q, header %q", seen, rec.Header().Get(RequestIDHeader))
			}
			if tt.keep != (seen == tt.incoming) {
				t.Errorf("ID = %q, incoming %q, keep %v", seen, tt.incoming, tt.keep)
			}
		})
	}
}

func TestPrometheusMetricsUsesRoutePattern(t *testing.T) {
	t.Parallel()

	r := chi.NewRouter()
	r.Use(PrometheusMetrics)
	r.Get("/pages/{page}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	counter := metrics.APIRequestsTotal.WithLabelValues(http.MethodGet, "/pages/{page}", "418")
	before := testutil.ToFloat64(counter)

	for _, slug := range []string{"seasonal", "day-of-week"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/pages/"+slug, nil))
	}

	if got := testutil.ToFloat64(counter) - before; got != 2 {
		t.Errorf("requests recorded under the route pattern = %v, want 2", got)
	}
}

func TestMetricsResponseWriter(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	w := &metricsResponseWriter{ResponseWriter: rec, statusCode: http.StatusOK}
	w.WriteHeader(http.StatusBadGateway)

	if w.statusCode != http.StatusBadGateway || rec.Code != http.StatusBadGateway {
		t.Errorf("status = %d / %d", w.statusCode, rec.Code)
	}
}

func TestCompression(t *testing.T) {
	t.Parallel()

	body := strings.Repeat("CHARGE_AMOUNT ", 200)
	h := Compression(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, body)
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Accept-Encoding", "gzip, deflate")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Header().Get("Content-Encoding") != "gzip" {
		t.Fatalf("Content-Encoding = %q", rec.Header().Get("Content-Encoding"))
	}
	zr, err := gzip.NewReader(rec.Body)
	if err != nil {
		t.Fatalf("gzip.NewReader() error = %v", err)
	}
	got, err := io.ReadAll(zr)
	if err != nil {
		t.Fatalf("read gzip body: %v", err)
	}
	if string(got) != body {
		t.Error("decompressed body differs")
	}

	plain := httptest.NewRecorder()
	h.ServeHTTP(plain, httptest.NewRequest(http.MethodGet, "/", nil))
	if plain.Header().Get("Content-Encoding") != "" || plain.Body.String() != body {
		t.Error("responses without Accept-Encoding should pass through")
	}
}
