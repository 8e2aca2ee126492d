// Venuelens - Booking Transaction Analytics Dashboards
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/venuelens

// Package main is venuelens-seed, which generates a DuckDB demo warehouse.
//
// The generated tables match the ones BookingQuery reads. The rows include
// exact duplicates, unparseable service dates and rows from other source
// systems, so every normalization path is exercised locally.
//
//	venuelens-seed --path ./warehouse.duckdb --rows 20000 --months 36
package main

import (
	"os"

	"github.com/tomtom215/venuelens/internal/logging"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		logging.Error().Err(err).Msg("Seed failed")
		os.Exit(1)
	}
}
