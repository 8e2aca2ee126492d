// Venuelens - Booking Transaction Analytics Dashboards
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/venuelens

package models

// ChartPoint is one x/y sample of a line series. X is a bucket label
// (YYYY-MM-DD, YYYY-MM or "YYYY Season") and Y is the metric value,
// rendered as a decimal string so money sums stay exact.
type ChartPoint struct {
	X string `json:"x"`
	Y string `json:"y"`
}

// ChartSeries is a named line in a chart.
type ChartSeries struct {
	Name   string       `json:"name"`
	Points []ChartPoint `json:"points"`
}

// Chart is a line chart view model. Any line-chart library can draw it by
// plotting each series against the shared categorical X axis.
type Chart struct {
	Title  string        `json:"title"`
	XLabel string        `json:"x_label,omitempty"`
	YLabel string        `json:"y_label,omitempty"`
	Series []ChartSeries `json:"series"`
}

// Table is a tabular view of aggregated buckets. Tables shown together
// under one heading share a Section.
type Table struct {
	Section string     `json:"section,omitempty"`
	Title   string     `json:"title"`
	Columns []string   `json:"columns"`
	Rows    [][]string `json:"rows"`
}

// FilterWidget describes one cascade step as shown to the client: the
// options computed for it and the selection that survived pruning. Date
// range widgets carry their bounds as YYYY-MM-DD in Selected.
type FilterWidget struct {
	Key        string   `json:"key"`
	Label      string   `json:"label"`
	Kind       string   `json:"kind"`
	DateColumn string   `json:"date_column,omitempty"`
	Pinned     bool     `json:"pinned,omitempty"`
	Options    []string `json:"options,omitempty"`
	Selected   []string `json:"selected"`
}

// PageInfo is one entry of the page catalog.
type PageInfo struct {
	Slug     string         `json:"slug"`
	Title    string         `json:"title"`
	Subtitle string         `json:"subtitle"`
	Filters  []FilterWidget `json:"filters"`
	Views    []string       `json:"views,omitempty"`
}
