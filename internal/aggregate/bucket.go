// Venuelens - Booking Transaction Analytics Dashboards
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/venuelens

package aggregate

import (
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tomtom215/venuelens/internal/models"
)

// Metric names a summed column.
type Metric string

const (
	ChargeAmount      Metric = "CHARGE_AMOUNT"
	SpendAgreeAmount  Metric = "SPENDAGREE_AMOUNT"
	SubtotalAmount    Metric = "SUBTOTAL_AMOUNT"
	PlannedGuestCount Metric = "PLANNED_GUEST_COUNT"
)

// Metrics lists the summed metrics in display order.
var Metrics = []Metric{ChargeAmount, SpendAgreeAmount, SubtotalAmount, PlannedGuestCount}

// Bucket is one group of records sharing a time key.
type Bucket struct {
	// Period is YYYY-MM-DD, YYYY-MM or "YYYY Season".
	Period string
	// Weekday is set on weekday x month buckets only.
	Weekday string

	Charge     decimal.Decimal
	SpendAgree decimal.Decimal
	Subtotal   decimal.Decimal
	Guests     int64
	Count      int
	// Visits is the distinct visit count of repeat-booking buckets.
	Visits int

	order int64
}

// Value returns the sum of m.
func (b Bucket) Value(m Metric) decimal.Decimal {
	switch m {
	case ChargeAmount:
		return b.Charge
	case SpendAgreeAmount:
		return b.SpendAgree
	case SubtotalAmount:
		return b.Subtotal
	case PlannedGuestCount:
		return decimal.NewFromInt(b.Guests)
	}
	return decimal.Zero
}

func (b *Bucket) add(r *models.Record) {
	b.Charge = b.Charge.Add(r.ChargeAmount)
	b.SpendAgree = b.SpendAgree.Add(r.SpendAgreeAmount)
	b.Subtotal = b.Subtotal.Add(r.SubtotalAmount)
	b.Guests += r.PlannedGuestCount
	b.Count++
}

// bucketKey derives the time key of a record and its position in time.
type bucketKey func(t time.Time) (period, weekday string, order int64)

// ordinal packs a year and two sub-year positions below 100 into one
// number that orders numerically for any year.
func ordinal(year, major, minor int) int64 {
	return int64(year)*10000 + int64(major)*100 + int64(minor)
}

// group sums records into buckets by key and returns them in time order.
// Only non-empty buckets are produced.
func group(records []*models.Record, key bucketKey) []Bucket {
	idx := make(map[int64]int)
	var out []Bucket
	for _, r := range records {
		period, weekday, ord := key(r.ServiceTimestamp)
		i, ok := idx[ord]
		if !ok {
			i = len(out)
			idx[ord] = i
			out = append(out, Bucket{
				Period:     period,
				Weekday:    weekday,
				Charge:     decimal.Zero,
				SpendAgree: decimal.Zero,
				Subtotal:   decimal.Zero,
				order:      ord,
			})
		}
		out[i].add(r)
	}
	sort.Slice(out, func(a, b int) bool { return out[a].order < out[b].order })
	return out
}

// ByDay buckets by calendar day of the service timestamp.
func ByDay(records []*models.Record) []Bucket {
	return group(records, func(t time.Time) (string, string, int64) {
		return t.Format("2006-01-02"), "", ordinal(t.Year(), int(t.Month()), t.Day())
	})
}

// ByMonth buckets by calendar month (YYYY-MM).
func ByMonth(records []*models.Record) []Bucket {
	return group(records, func(t time.Time) (string, string, int64) {
		return t.Format("2006-01"), "", ordinal(t.Year(), int(t.Month()), 0)
	})
}

// Weekdays lists weekday names in display order.
var Weekdays = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

// WeekdayIndex returns 0 for Monday through 6 for Sunday.
func WeekdayIndex(d time.Weekday) int {
	return (int(d) + 6) % 7
}

// ByWeekdayMonth buckets by (month, weekday), ordered by month and then
// Monday through Sunday.
func ByWeekdayMonth(records []*models.Record) []Bucket {
	return group(records, func(t time.Time) (string, string, int64) {
		i := WeekdayIndex(t.Weekday())
		return t.Format("2006-01"), Weekdays[i], ordinal(t.Year(), int(t.Month()), i)
	})
}

// Seasons lists season names in within-year order.
var Seasons = []string{"Winter", "Spring", "Summer", "Fall"}

// SeasonIndex maps a month to its position in Seasons. December belongs to
// the Winter of its own calendar year.
func SeasonIndex(m time.Month) int {
	switch m {
	case time.December, time.January, time.February:
		return 0
	case time.March, time.April, time.May:
		return 1
	case time.June, time.July, time.August:
		return 2
	default:
		return 3
	}
}

// SeasonLabel returns "YYYY Season" for t.
func SeasonLabel(t time.Time) string {
	return fmt.Sprintf("%d %s", t.Year(), Seasons[SeasonIndex(t.Month())])
}

// BySeason buckets by (year, season), ordered by year and then Winter,
// Spring, Summer, Fall.
func BySeason(records []*models.Record) []Bucket {
	return group(records, func(t time.Time) (string, string, int64) {
		return SeasonLabel(t), "", ordinal(t.Year(), SeasonIndex(t.Month()), 0)
	})
}
