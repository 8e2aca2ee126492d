// Venuelens - Booking Transaction Analytics Dashboards
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/venuelens

package filter

import (
	"slices"
	"time"

	"github.com/samber/lo"

	"github.com/tomtom215/venuelens/internal/models"
)

// Apply narrows records by the date range and then by every membership
// selection in canonical order. Empty selections are no-ops; records is
// never modified.
func Apply(records []*models.Record, st State) []*models.Record {
	out := records
	if start, end, ok := st.Range(); ok {
		out = ByDateRange(out, st.Column(), start, end)
	}
	for _, k := range MembershipKeys {
		out = ByMembership(out, k, st.Selection(k))
	}
	return out
}

// ByDateRange keeps records whose column falls between start and end,
// both inclusive, compared by UTC calendar day.
func ByDateRange(records []*models.Record, col DateColumn, start, end time.Time) []*models.Record {
	from, until := dayStart(start), dayStart(end).AddDate(0, 0, 1)
	out := make([]*models.Record, 0, len(records))
	for _, r := range records {
		t := col.Value(r)
		if !t.Before(from) && t.Before(until) {
			out = append(out, r)
		}
	}
	return out
}

// ByMembership keeps records whose value for k is one of values. An empty
// values returns records unchanged.
func ByMembership(records []*models.Record, k Key, values []string) []*models.Record {
	if len(values) == 0 {
		return records
	}
	set := lo.SliceToMap(values, func(v string) (string, struct{}) {
		return v, struct{}{}
	})
	return lo.Filter(records, func(r *models.Record, _ int) bool {
		_, ok := set[k.Value(r)]
		return ok
	})
}

// OptionsFor returns the distinct non-empty values of k in records, sorted
// ascending.
func OptionsFor(k Key, records []*models.Record) []string {
	opts := lo.Uniq(lo.FilterMap(records, func(r *models.Record, _ int) (string, bool) {
		v := k.Value(r)
		return v, v != ""
	}))
	slices.Sort(opts)
	return opts
}

func dayStart(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
