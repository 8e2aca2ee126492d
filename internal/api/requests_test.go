// Venuelens - Booking Transaction Analytics Dashboards
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/venuelens

package api

import (
	"net/http/httptest"
	"reflect"
	"testing"
	"time"

	"github.com/tomtom215/venuelens/internal/dashboard"
	"github.com/tomtom215/venuelens/internal/filter"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestPageRequestMerge(t *testing.T) {
	t.Parallel()

	stored := filter.State{
		DateRange:  []time.Time{day(2024, 1, 1), day(2024, 1, 31)},
		DateColumn: filter.EventDate,
		Selected: map[filter.Key][]string{
			filter.KeyVenue:     {"Pier 9"},
			filter.KeyPayStatus: {"Paid"},
		},
	}

	tests := []struct {
		name  string
		query string
		check func(t *testing.T, st filter.State)
	}{
		{
			name:  "absent keeps everything",
			query: "",
			check: func(t *testing.T, st filter.State) {
				if !reflect.DeepEqual(st, stored) {
					t.Errorf("state = %+v, want stored", st)
				}
			},
		},
		{
			name:  "comma list replaces one key",
			query: "venue=Pier%209,Loft",
			check: func(t *testing.T, st filter.State) {
				if got := st.Selection(filter.KeyVenue); !reflect.DeepEqual(got, []string{"Pier 9", "Loft"}) {
					t.Errorf("venue = %v", got)
				}
				if got := st.Selection(filter.KeyPayStatus); len(got) != 1 {
					t.Errorf("pay_status should be kept, got %v", got)
				}
			},
		},
		{
			name:  "repeated params keep commas",
			query: "venue=Smith%2C%20Jones%20Hall&venue=Loft",
			check: func(t *testing.T, st filter.State) {
				want := []string{"Smith, Jones Hall", "Loft"}
				if got := st.Selection(filter.KeyVenue); !reflect.DeepEqual(got, want) {
					t.Errorf("venue = %v, want %v", got, want)
				}
			},
		},
		{
			name:  "empty clears one key",
			query: "venue=",
			check: func(t *testing.T, st filter.State) {
				if got := st.Selection(filter.KeyVenue); got != nil {
					t.Errorf("venue = %v, want cleared", got)
				}
				if len(st.Selected) != 1 {
					t.Errorf("selected = %v", st.Selected)
				}
			},
		},
		{
			name:  "new range",
			query: "start_date=2024-02-01&end_date=2024-02-29",
			check: func(t *testing.T, st filter.State) {
				start, end, ok := st.Range()
				if !ok || !start.Equal(day(2024, 2, 1)) || !end.Equal(day(2024, 2, 29)) {
					t.Errorf("range = %v..%v (%v)", start, end, ok)
				}
			},
		},
		{
			name:  "empty range clears",
			query: "start_date=&end_date=",
			check: func(t *testing.T, st filter.State) {
				if _, _, ok := st.Range(); ok {
					t.Error("range should be cleared")
				}
			},
		},
		{
			name:  "lone start date clears",
			query: "start_date=2024-02-01",
			check: func(t *testing.T, st filter.State) {
				if _, _, ok := st.Range(); ok {
					t.Error("a partial range should not filter")
				}
			},
		},
		{
			name:  "lone end date clears",
			query: "end_date=2024-02-01",
			check: func(t *testing.T, st filter.State) {
				if _, _, ok := st.Range(); ok {
					t.Error("a partial range should not filter")
				}
			},
		},
		{
			name:  "date column",
			query: "date_column=transaction_date",
			check: func(t *testing.T, st filter.State) {
				if st.Column() != filter.TransactionDate {
					t.Errorf("column = %s", st.Column())
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req := parsePageRequest(httptest.NewRequest("GET", "/api/v1/pages/seasonal?"+tt.query, nil))
			if apiErr := validateRequest(req); apiErr != nil {
				t.Fatalf("validateRequest() = %+v", apiErr)
			}
			tt.check(t, req.Merge(stored))
		})
	}

	if got := stored.Selection(filter.KeyVenue); !reflect.DeepEqual(got, []string{"Pier 9"}) {
		t.Errorf("Merge modified the stored state: %v", got)
	}
}

func TestPageRequestValidation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		query     string
		wantField string
	}{
		{"start_date=2024-02-30&end_date=2024-03-01", "start_date"},
		{"start_date=2024-03-02&end_date=2024-03-01", "end_date"},
		{"view=yearly", "view"},
		{"date_column=posted", "date_column"},
		{"pay_type=%07bell", "pay_type[0]"},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			t.Parallel()

			req := parsePageRequest(httptest.NewRequest("GET", "/x?"+tt.query, nil))
			apiErr := validateRequest(req)
			if apiErr == nil {
				t.Fatal("validateRequest() = nil, want error")
			}
			if apiErr.Code != CodeValidation {
				t.Errorf("code = %s", apiErr.Code)
			}
			if _, ok := apiErr.Details[tt.wantField]; !ok && apiErr.Details["field"] != tt.wantField {
				t.Errorf("details = %v, want field %s", apiErr.Details, tt.wantField)
			}
		})
	}
}

func TestPageRequestInputs(t *testing.T) {
	t.Parallel()

	req := parsePageRequest(httptest.NewRequest("GET", "/x?view=monthly", nil))
	if req.Inputs().View != dashboard.ViewMonthly {
		t.Errorf("view = %q", req.Inputs().View)
	}
	req = parsePageRequest(httptest.NewRequest("GET", "/x", nil))
	if req.Inputs().View != "" {
		t.Errorf("absent view = %q, want page default", req.Inputs().View)
	}
}
