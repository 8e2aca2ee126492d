// Venuelens - Booking Transaction Analytics Dashboards
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/venuelens

/*
Package models defines data structures shared across Venuelens.

Key Components:

  - Record: one booking transaction joined with visit, venue and item dimensions
  - APIResponse, APIError, Metadata: the standard HTTP response envelope
  - Chart, ChartSeries, ChartPoint: line chart view models
  - Table: tabular view of aggregated buckets
  - FilterWidget, PageInfo: cascade widgets and the page catalog

Money columns use github.com/shopspring/decimal so that bucket sums are exact
and serialize as strings.

Example response envelope:

	resp := models.APIResponse{
	    Status: "success",
	    Data:   result,
	    Metadata: models.Metadata{Timestamp: time.Now()},
	}
*/
package models
