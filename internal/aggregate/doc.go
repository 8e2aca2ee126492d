// Venuelens - Booking Transaction Analytics Dashboards
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/venuelens

// Package aggregate groups filtered records into time buckets keyed off the
// service timestamp and sums their metrics with exact decimal arithmetic.
// Only buckets with at least one record are returned; gaps are not filled.
package aggregate
