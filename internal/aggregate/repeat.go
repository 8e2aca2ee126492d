// Venuelens - Booking Transaction Analytics Dashboards
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/venuelens

package aggregate

import (
	"sort"

	"github.com/samber/lo"

	"github.com/tomtom215/venuelens/internal/models"
)

// RepeatCustomers returns the emails that booked more than one distinct
// visit. Empty emails and empty visit IDs are ignored.
func RepeatCustomers(records []*models.Record) map[string]struct{} {
	byEmail := lo.GroupBy(
		lo.Filter(records, func(r *models.Record, _ int) bool {
			return r.Email != "" && r.VisitID != ""
		}),
		func(r *models.Record) string { return r.Email },
	)

	out := make(map[string]struct{})
	for email, rs := range byEmail {
		visits := lo.UniqBy(rs, func(r *models.Record) string { return r.VisitID })
		if len(visits) > 1 {
			out[email] = struct{}{}
		}
	}
	return out
}

// RepeatBookings counts distinct visit IDs per service month, considering
// only records of repeat customers. Buckets carry Visits and Count; the
// metric sums are left zero.
func RepeatBookings(records []*models.Record) []Bucket {
	repeat := RepeatCustomers(records)

	visits := make(map[int64]map[string]struct{})
	rows := make(map[int64]int)
	periods := make(map[int64]string)
	for _, r := range records {
		if _, ok := repeat[r.Email]; !ok || r.VisitID == "" {
			continue
		}
		t := r.ServiceTimestamp
		month := ordinal(t.Year(), int(t.Month()), 0)
		if visits[month] == nil {
			visits[month] = make(map[string]struct{})
			periods[month] = t.Format("2006-01")
		}
		visits[month][r.VisitID] = struct{}{}
		rows[month]++
	}

	out := lo.MapToSlice(visits, func(month int64, ids map[string]struct{}) Bucket {
		return Bucket{Period: periods[month], Visits: len(ids), Count: rows[month], order: month}
	})
	sort.Slice(out, func(a, b int) bool { return out[a].order < out[b].order })
	return out
}
