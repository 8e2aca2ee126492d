// Venuelens - Booking Transaction Analytics Dashboards
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/venuelens

package dashboard

import (
	"github.com/tomtom215/venuelens/internal/filter"
	"github.com/tomtom215/venuelens/internal/models"
)

// User-facing messages.
const (
	MsgNoData         = "No data available with the current filters. Please select different filters."
	MsgQueryFailed    = "Failed to execute query or process data"
	MsgUninitialized  = "Session is not initialized."
	MsgCacheCleared   = "Cache cleared successfully!"
	MsgRetrieveFailed = "Failed to retrieve data."
)

// View selects the time grouping of the transactions page.
type View string

const (
	ViewDaily   View = "daily"
	ViewMonthly View = "monthly"
	ViewBoth    View = "both"
)

// Valid reports whether v is a known view.
func (v View) Valid() bool {
	return v == ViewDaily || v == ViewMonthly || v == ViewBoth
}

// Inputs are page-specific inputs that are not filters.
type Inputs struct {
	View View `json:"view,omitempty"`
}

// RenderContext is everything a page render reads.
type RenderContext struct {
	State  filter.State
	Inputs Inputs
}

// PageResult is a rendered page: the filter sidebar, the state to store
// for the session and, unless NoData, the charts and tables.
type PageResult struct {
	Page            string                `json:"page"`
	Title           string                `json:"title"`
	Subtitle        string                `json:"subtitle"`
	Filters         []models.FilterWidget `json:"filters"`
	State           filter.State          `json:"state"`
	View            View                  `json:"view,omitempty"`
	Rows            int                   `json:"rows"`
	NoData          bool                  `json:"no_data"`
	Message         string                `json:"message,omitempty"`
	FiltersSelected bool                  `json:"filters_selected"`
	Charts          []models.Chart        `json:"charts,omitempty"`
	Tables          []models.Table        `json:"tables,omitempty"`
}

// renderFunc turns filtered rows into charts and tables. rows is never
// empty.
type renderFunc func(rows []*models.Record, in Inputs) ([]models.Chart, []models.Table)

// Page is one dashboard: its literal filter cascade and its rendering.
type Page struct {
	Slug     string
	Title    string
	Subtitle string
	Cascade  filter.Cascade
	Views    []View

	render renderFunc
}

// Info returns the catalog entry of p with empty option lists.
func (p *Page) Info() models.PageInfo {
	widgets := make([]models.FilterWidget, len(p.Cascade))
	for i, pred := range p.Cascade {
		widgets[i] = filter.Step{Predicate: pred, Column: pinnedOr(pred, filter.TransactionDate)}.Widget()
	}
	views := make([]string, len(p.Views))
	for i, v := range p.Views {
		views[i] = string(v)
	}
	return models.PageInfo{
		Slug:     p.Slug,
		Title:    p.Title,
		Subtitle: p.Subtitle,
		Filters:  widgets,
		Views:    views,
	}
}

func pinnedOr(p filter.Predicate, col filter.DateColumn) filter.DateColumn {
	if p.PinnedColumn != "" {
		return p.PinnedColumn
	}
	return col
}

// inputs fills in defaults for in.
func (p *Page) inputs(in Inputs) Inputs {
	if len(p.Views) == 0 {
		return Inputs{}
	}
	if !in.View.Valid() {
		in.View = p.Views[len(p.Views)-1]
	}
	return in
}

// Filter runs the cascade only.
func (p *Page) Filter(records []*models.Record, st filter.State) (filter.Result, PageResult) {
	res := p.Cascade.Run(records, st)
	out := PageResult{
		Page:            p.Slug,
		Title:           p.Title,
		Subtitle:        p.Subtitle,
		Filters:         res.Widgets(),
		State:           res.State,
		Rows:            len(res.Rows),
		NoData:          res.NoData(),
		FiltersSelected: res.FiltersSelected,
	}
	if out.NoData {
		out.Message = MsgNoData
	}
	return res, out
}

// Render runs the cascade and, when rows remain, the page's aggregations.
// It reads nothing but records and rc.
func (p *Page) Render(records []*models.Record, rc RenderContext) PageResult {
	res, out := p.Filter(records, rc.State)
	in := p.inputs(rc.Inputs)
	out.View = in.View
	if out.NoData {
		return out
	}
	out.Charts, out.Tables = p.render(res.Rows, in)
	return out
}
