// Venuelens - Booking Transaction Analytics Dashboards
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/venuelens

package logging

import (
	"github.com/rs/zerolog"
)

// Session lifecycle events.
const (
	SessionEventIssued = "session_issued"
	SessionEventReset  = "session_reset"
)

// SessionEvent describes a change to a dashboard session.
type SessionEvent struct {
	// Event is one of the SessionEvent* constants.
	Event string
	// SessionID is masked before it is written.
	SessionID string
	IPAddress string
	// UserAgent is truncated to 100 bytes.
	UserAgent string
	// Reason says why the event happened, e.g. "missing" or "invalid" for
	// an issued cookie.
	Reason string
}

// SessionLogger writes session lifecycle events. Session IDs never reach the
// log unmasked.
type SessionLogger struct {
	logger zerolog.Logger
}

// NewSessionLogger creates a session logger on the global logger.
func NewSessionLogger() *SessionLogger {
	return &SessionLogger{
		logger: WithComponent("session"),
	}
}

// NewSessionLoggerWithLogger creates a session logger with a custom zerolog logger.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func NewSessionLoggerWithLogger(logger zerolog.Logger) *SessionLogger {
	return &SessionLogger{
		logger: logger.With().Str("component", "session").Logger(),
	}
}

// LogEvent logs event at debug level.
func (l *SessionLogger) LogEvent(event *SessionEvent) {
	e := l.logger.Debug().Str("event", event.Event)

	if event.SessionID != "" {
		e = e.Str("session_id", SanitizeSessionID(event.SessionID))
	}
	if event.IPAddress != "" {
		e = e.Str("ip", event.IPAddress)
	}
	if event.UserAgent != "" {
		e = e.Str("user_agent", truncateString(event.UserAgent, 100))
	}
	if event.Reason != "" {
		e = e.Str("reason", event.Reason)
	}

	e.Msg("")
}

// LogSessionIssued records a new session cookie.
func (l *SessionLogger) LogSessionIssued(sessionID, ip, userAgent, reason string) {
	l.LogEvent(&SessionEvent{
		Event:     SessionEventIssued,
		SessionID: sessionID,
		IPAddress: ip,
		UserAgent: userAgent,
		Reason:    reason,
	})
}

// LogSessionReset records a session whose filter state was discarded.
func (l *SessionLogger) LogSessionReset(sessionID, ip string) {
	l.LogEvent(&SessionEvent{
		Event:     SessionEventReset,
		SessionID: sessionID,
		IPAddress: ip,
	})
}

// SanitizeSessionID masks a session ID.
// Example: "abc123def456" -> "abc1...f456"
func SanitizeSessionID(sessionID string) string {
	if sessionID == "" {
		return ""
	}
	if len(sessionID) <= 12 {
		return "***"
	}
	return sessionID[:4] + "..." + sessionID[len(sessionID)-4:]
}

func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
