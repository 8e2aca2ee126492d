// Venuelens - Booking Transaction Analytics Dashboards
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/venuelens

package logging

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Context keys for logging.
type contextKey string

const (
	requestIDKey contextKey = "request_id"
	sessionIDKey contextKey = "session_id"
)

// GenerateRequestID creates a new unique request ID.
func GenerateRequestID() string {
	return uuid.New().String()
}

// ContextWithRequestID returns a new context with the given request ID.
func ContextWithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromContext retrieves the request ID from context.
// Returns empty string if not present.
func RequestIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(requestIDKey).(string); ok {
		return id
	}
	return ""
}

// ContextWithSessionID returns a new context carrying the dashboard session ID.
func ContextWithSessionID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, sessionIDKey, id)
}

// SessionIDFromContext retrieves the dashboard session ID from context.
func SessionIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(sessionIDKey).(string); ok {
		return id
	}
	return ""
}

// Ctx returns a logger with context values (request_id, session_id) added.
// This is the recommended way to log in handlers and services.
//
//	logging.Ctx(ctx).Info().Str("page", slug).Msg("Page rendered")
func Ctx(ctx context.Context) *zerolog.Logger {
	logCtx := Logger().With()

	if requestID := RequestIDFromContext(ctx); requestID != "" {
		logCtx = logCtx.Str("request_id", requestID)
	}
	if sessionID := SessionIDFromContext(ctx); sessionID != "" {
		logCtx = logCtx.Str("session_id", SanitizeSessionID(sessionID))
	}

	l := logCtx.Logger()
	return &l
}

// WithComponent creates a child logger with a component field.
//
//	wl := logging.WithComponent("warehouse")
//	wl.Info().Msg("Connected")
func WithComponent(component string) zerolog.Logger {
	return With().Str("component", component).Logger()
}
