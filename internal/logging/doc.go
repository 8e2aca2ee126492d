// Venuelens - Booking Transaction Analytics Dashboards
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/venuelens

// Package logging provides centralized zerolog-based logging for Venuelens.
//
// It offers:
//
//   - Zero-allocation structured logging
//   - JSON output for production, console output for development
//   - Context-aware logging with request and session ID propagation
//   - An slog adapter for libraries that log through log/slog (sutureslog)
//
// # Quick Start
//
//	if err := logging.Init(logging.Options{Level: "info", Version: version}); err != nil {
//	    logging.Fatal().Err(err).Msg("Invalid logging configuration")
//	}
//
//	logging.Info().Msg("Server starting")
//	logging.Error().Err(err).Msg("Operation failed")
//
//	// With context (request and session IDs)
//	logging.Ctx(ctx).Info().Str("page", slug).Msg("Page rendered")
//
// # Configuration
//
// Environment Variables (via package config):
//   - LOG_LEVEL: trace, debug, info, warn, error (default: info)
//   - LOG_FORMAT: json, console (default: json)
//   - LOG_CALLER: true/false - include caller info (default: false)
//
// # Best Practices
//
// Always terminate log chains with .Msg() or .Send():
//
//	logging.Info().Str("key", "value").Msg("message")  // Correct
//	logging.Info().Str("key", "value")                 // WRONG - log not emitted
package logging
