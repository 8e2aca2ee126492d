// Venuelens - Booking Transaction Analytics Dashboards
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/venuelens

// Package validation provides struct validation using go-playground/validator v10.
//
// This package wraps the go-playground/validator library to provide a thread-safe
// singleton validator instance with custom validators and user-friendly error
// messages. It integrates with the API's VALIDATION_ERROR format.
//
// # Quick Start
//
//	type PageRequest struct {
//	    StartDate  string   `query:"start_date" validate:"omitempty,datetime=2006-01-02"`
//	    DateColumn string   `query:"date_column" validate:"omitempty,oneof=transaction_date event_date"`
//	    Venues     []string `query:"venue" validate:"max=500,dive,printable"`
//	}
//
//	if verr := validation.ValidateStruct(&req); verr != nil {
//	    apiErr := verr.ToAPIError()
//	    respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, nil)
//	    return
//	}
//
// # Field Names
//
// Errors name the field by its `query` struct tag when present, so clients see
// the parameter they sent ("start_date") rather than the Go field name.
//
// # Custom Validators
//
//   - printable: string contains no control characters
//
// # Error Format
//
// A single failure produces:
//
//	{
//	    "code": "VALIDATION_ERROR",
//	    "message": "date_column must be one of: transaction_date event_date",
//	    "details": {"field": "date_column", "tag": "oneof", "value": "booked"}
//	}
//
// Several failures join their messages with "; " and list every field under
// details.fields.
//
// # Thread Safety
//
// The validator is created once and is safe for concurrent use; it caches
// struct metadata after the first validation of each type.
package validation
