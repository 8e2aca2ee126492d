// Venuelens - Booking Transaction Analytics Dashboards
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/venuelens

package session

import (
	"net/http"
	"time"

	"github.com/tomtom215/venuelens/internal/logging"
)

// Cookies issues and reads the session cookie.
type Cookies struct {
	Name   string
	Secure bool
	MaxAge time.Duration
}

// Middleware attaches the session ID to the request context, issuing a new
// cookie when the request carries none or an invalid one.
func (c Cookies) Middleware(next http.Handler) http.Handler {
	events := logging.NewSessionLogger()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, reason := "", "missing"
		if ck, err := r.Cookie(c.Name); err == nil {
			if ValidID(ck.Value) {
				id = ck.Value
			} else {
				reason = "invalid"
			}
		}
		if id == "" {
			id = NewID()
			events.LogSessionIssued(id, r.RemoteAddr, r.UserAgent(), reason)
		}

		// Refresh on every response so the browser expiry tracks activity.
		http.SetCookie(w, &http.Cookie{
			Name:     c.Name,
			Value:    id,
			Path:     "/",
			MaxAge:   int(c.MaxAge.Seconds()),
			HttpOnly: true,
			Secure:   c.Secure,
			SameSite: http.SameSiteLaxMode,
		})

		next.ServeHTTP(w, r.WithContext(logging.ContextWithSessionID(r.Context(), id)))
	})
}
