// Venuelens - Booking Transaction Analytics Dashboards
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/venuelens

package api

import (
	"errors"
	"net/http"

	"github.com/tomtom215/venuelens/internal/dashboard"
	"github.com/tomtom215/venuelens/internal/warehouse"
)

// Error codes carried in models.APIError.Code.
const (
	CodeValidation          = "VALIDATION_ERROR"
	CodeNotFound            = "NOT_FOUND"
	CodeQueryFailed         = "QUERY_FAILED"
	CodeSourceUninitialized = "SOURCE_UNINITIALIZED"
	CodeRateLimited         = "RATE_LIMIT_EXCEEDED"
	CodeInternal            = "INTERNAL_ERROR"
)

// apiFailure is the HTTP rendering of an error.
type apiFailure struct {
	status  int
	code    string
	message string
}

// classifyError maps service errors onto status, code and the message shown
// to the dashboard user.
func classifyError(err error) apiFailure {
	switch {
	case errors.Is(err, dashboard.ErrUnknownPage):
		return apiFailure{http.StatusNotFound, CodeNotFound, "Page not found"}
	case errors.Is(err, warehouse.ErrSourceUninitialized):
		return apiFailure{http.StatusServiceUnavailable, CodeSourceUninitialized, dashboard.MsgUninitialized}
	case errors.Is(err, warehouse.ErrQueryFailed):
		return apiFailure{http.StatusBadGateway, CodeQueryFailed, dashboard.MsgQueryFailed + ": " + err.Error()}
	default:
		return apiFailure{http.StatusInternalServerError, CodeInternal, dashboard.MsgRetrieveFailed}
	}
}
