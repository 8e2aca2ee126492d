// Venuelens - Booking Transaction Analytics Dashboards
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/venuelens

package api

import (
	"net/http"
	"net/url"
	"time"

	"github.com/tomtom215/venuelens/internal/dashboard"
	"github.com/tomtom215/venuelens/internal/filter"
)

// Query parameter names that are not membership keys.
const (
	paramStartDate  = "start_date"
	paramEndDate    = "end_date"
	paramDateColumn = "date_column"
	paramView       = "view"
)

// PageRequest holds the query parameters of a page render or options call.
//
// Every membership filter accepts either a comma-separated list
// (venue=A,B) or repeated parameters (venue=A&venue=B); the repeated form
// is needed for values that contain commas.
//
// A parameter that is absent leaves the session's value untouched. A
// parameter that is present but empty clears that filter. The date range
// filters only with both bounds; a lone start_date or end_date clears it.
type PageRequest struct {
	StartDate  string `query:"start_date" validate:"omitempty,datetime=2006-01-02"`
	EndDate    string `query:"end_date" validate:"omitempty,datetime=2006-01-02,date_gtefield=StartDate"`
	DateColumn string `query:"date_column" validate:"omitempty,oneof=transaction_date event_date"`
	View       string `query:"view" validate:"omitempty,oneof=daily monthly both"`

	CorporateEntity  []string `query:"corporate_entity" validate:"max=500,dive,printable,max=256"`
	ManagementEntity []string `query:"management_entity" validate:"max=500,dive,printable,max=256"`
	VenueType        []string `query:"venue_type" validate:"max=500,dive,printable,max=256"`
	GlobalType       []string `query:"global_type" validate:"max=500,dive,printable,max=256"`
	PayType          []string `query:"pay_type" validate:"max=500,dive,printable,max=256"`
	Venue            []string `query:"venue" validate:"max=500,dive,printable,max=256"`
	PayStatus        []string `query:"pay_status" validate:"max=500,dive,printable,max=256"`

	present map[string]bool
}

// parsePageRequest reads a PageRequest from the URL query without
// validating it.
func parsePageRequest(r *http.Request) *PageRequest {
	q := r.URL.Query()
	req := &PageRequest{
		StartDate:  q.Get(paramStartDate),
		EndDate:    q.Get(paramEndDate),
		DateColumn: q.Get(paramDateColumn),
		View:       q.Get(paramView),
		present:    make(map[string]bool),
	}
	for _, name := range []string{paramStartDate, paramEndDate, paramDateColumn, paramView} {
		if q.Has(name) {
			req.present[name] = true
		}
	}
	for _, k := range filter.MembershipKeys {
		if !q.Has(string(k)) {
			continue
		}
		req.present[string(k)] = true
		*req.selection(k) = membershipValues(q, string(k))
	}
	return req
}

// membershipValues reads one membership parameter. A single value is split
// on commas; repeated values are taken literally.
func membershipValues(q url.Values, name string) []string {
	vals := q[name]
	if len(vals) == 1 {
		return parseCommaSeparated(vals[0])
	}
	out := make([]string, 0, len(vals))
	for _, v := range vals {
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}

// selection returns the field that holds membership key k.
func (p *PageRequest) selection(k filter.Key) *[]string {
	switch k {
	case filter.KeyCorporateEntity:
		return &p.CorporateEntity
	case filter.KeyManagementEntity:
		return &p.ManagementEntity
	case filter.KeyVenueType:
		return &p.VenueType
	case filter.KeyGlobalType:
		return &p.GlobalType
	case filter.KeyPayType:
		return &p.PayType
	case filter.KeyVenue:
		return &p.Venue
	case filter.KeyPayStatus:
		return &p.PayStatus
	}
	panic("api: no request field for filter key " + string(k))
}

// Has reports whether the request carried the named parameter.
func (p *PageRequest) Has(name string) bool {
	return p.present[name]
}

// Merge applies the request to the stored session state and returns the
// state to render with. stored is not modified. The request must have
// passed validation.
func (p *PageRequest) Merge(stored filter.State) filter.State {
	st := stored.Clone()

	if p.Has(paramStartDate) || p.Has(paramEndDate) {
		st.DateRange = nil
		if p.StartDate != "" && p.EndDate != "" {
			start, errStart := time.Parse(filter.DateLayout, p.StartDate)
			end, errEnd := time.Parse(filter.DateLayout, p.EndDate)
			if errStart == nil && errEnd == nil {
				st.DateRange = []time.Time{start, end}
			}
		}
	}

	if p.Has(paramDateColumn) {
		st.DateColumn = filter.DateColumn(p.DateColumn)
	}

	for _, k := range filter.MembershipKeys {
		if p.Has(string(k)) {
			st = st.WithSelection(k, *p.selection(k))
		}
	}
	return st
}

// Inputs returns the page inputs named by the request. An absent view
// leaves the page default in place.
func (p *PageRequest) Inputs() dashboard.Inputs {
	return dashboard.Inputs{View: dashboard.View(p.View)}
}
