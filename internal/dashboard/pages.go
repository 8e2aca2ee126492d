// Venuelens - Booking Transaction Analytics Dashboards
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/venuelens

package dashboard

import (
	"strconv"

	"github.com/tomtom215/venuelens/internal/aggregate"
	"github.com/tomtom215/venuelens/internal/filter"
	"github.com/tomtom215/venuelens/internal/models"
)

// Page slugs.
const (
	SlugTransactions   = "transactions-over-time"
	SlugRepeatBookings = "repeat-bookings"
	SlugDayOfWeek      = "day-of-week"
	SlugSeasonal       = "seasonal"
)

// standardCascade is shared by the transactions and day of week pages.
func standardCascade() filter.Cascade {
	return filter.Cascade{
		filter.DateRangeStep(),
		filter.MembershipStep(filter.KeyCorporateEntity),
		filter.MembershipStep(filter.KeyManagementEntity),
		filter.MembershipStep(filter.KeyVenueType),
		filter.MembershipStep(filter.KeyGlobalType),
		filter.MembershipStep(filter.KeyPayType),
		filter.MembershipStep(filter.KeyVenue),
		filter.MembershipStep(filter.KeyPayStatus),
	}
}

// DefaultPages returns the four dashboards in menu order.
func DefaultPages() []*Page {
	return []*Page{
		{
			Slug:     SlugTransactions,
			Title:    "Transaction Analysis",
			Subtitle: "Transaction Value Analysis Over Time",
			Cascade:  standardCascade(),
			Views:    []View{ViewDaily, ViewMonthly, ViewBoth},
			render:   renderTransactions,
		},
		{
			Slug:     SlugRepeatBookings,
			Title:    "Repeat Booking Analysis",
			Subtitle: "Repeat Booking Analysis Over Time",
			Cascade: filter.Cascade{
				filter.MembershipStep(filter.KeyCorporateEntity),
				filter.PinnedDateRangeStep(filter.EventDate),
				filter.MembershipStep(filter.KeyManagementEntity),
				filter.MembershipStep(filter.KeyVenueType),
				filter.MembershipStep(filter.KeyGlobalType),
				filter.MembershipStep(filter.KeyVenue),
			},
			render: renderRepeatBookings,
		},
		{
			Slug:     SlugDayOfWeek,
			Title:    "Day of the Week Transaction Trend",
			Subtitle: "Day of the Week Transaction Analysis",
			Cascade:  standardCascade(),
			render:   renderDayOfWeek,
		},
		{
			Slug:     SlugSeasonal,
			Title:    "Seasonal Transaction Trend Analysis",
			Subtitle: "Seasonal Transaction Analysis Over Time",
			Cascade: filter.Cascade{
				filter.MembershipStep(filter.KeyCorporateEntity),
				filter.DateRangeStep(),
				filter.MembershipStep(filter.KeyManagementEntity),
				filter.MembershipStep(filter.KeyVenueType),
				filter.MembershipStep(filter.KeyGlobalType),
				filter.MembershipStep(filter.KeyPayType),
				filter.MembershipStep(filter.KeyVenue),
				filter.MembershipStep(filter.KeyPayStatus),
			},
			render: renderSeasonal,
		},
	}
}

func renderTransactions(rows []*models.Record, in Inputs) ([]models.Chart, []models.Table) {
	var daily, monthly []aggregate.Bucket
	if in.View != ViewMonthly {
		daily = aggregate.ByDay(rows)
	}
	if in.View != ViewDaily {
		monthly = aggregate.ByMonth(rows)
	}

	charts := make([]models.Chart, 0, len(aggregate.Metrics))
	for _, m := range aggregate.Metrics {
		c := models.Chart{Title: string(m) + " Over Time", XLabel: "Date", YLabel: string(m)}
		if daily != nil {
			c.Series = append(c.Series, series("Daily "+string(m), daily, m))
		}
		if monthly != nil {
			c.Series = append(c.Series, series("Monthly "+string(m), monthly, m))
		}
		charts = append(charts, c)
	}

	var tables []models.Table
	switch in.View {
	case ViewDaily:
		tables = append(tables, metricTable("Transaction Value Data - Daily View", "Date", daily))
	case ViewMonthly:
		tables = append(tables, metricTable("Transaction Value Data - Monthly View", "YearMonth", monthly))
	default:
		d := metricTable("Daily Data", "Date", daily)
		mo := metricTable("Monthly Data", "YearMonth", monthly)
		d.Section = "Transaction Value Data - Daily and Monthly View"
		mo.Section = d.Section
		tables = append(tables, d, mo)
	}
	return charts, tables
}

func renderRepeatBookings(rows []*models.Record, _ Inputs) ([]models.Chart, []models.Table) {
	buckets := aggregate.RepeatBookings(rows)

	points := make([]models.ChartPoint, len(buckets))
	table := models.Table{
		Title:   "Repeat Booking Data - Monthly View",
		Columns: []string{"YearMonth", "Repeat_Bookings"},
		Rows:    make([][]string, len(buckets)),
	}
	for i, b := range buckets {
		n := strconv.Itoa(b.Visits)
		points[i] = models.ChartPoint{X: b.Period, Y: n}
		table.Rows[i] = []string{b.Period, n}
	}

	chart := models.Chart{
		Title:  "Monthly Repeat Bookings Over Time",
		XLabel: "Month",
		YLabel: "Number of Repeat Bookings",
		Series: []models.ChartSeries{{Name: "Repeat_Bookings", Points: points}},
	}
	return []models.Chart{chart}, []models.Table{table}
}

func renderDayOfWeek(rows []*models.Record, _ Inputs) ([]models.Chart, []models.Table) {
	buckets := aggregate.ByWeekdayMonth(rows)

	charts := make([]models.Chart, 0, len(aggregate.Metrics))
	for _, m := range aggregate.Metrics {
		c := models.Chart{Title: string(m) + " by Day of the Week Over Time", XLabel: "YearMonth", YLabel: string(m)}
		for _, day := range aggregate.Weekdays {
			var s models.ChartSeries
			s.Name = day
			for _, b := range buckets {
				if b.Weekday == day {
					s.Points = append(s.Points, models.ChartPoint{X: b.Period, Y: b.Value(m).String()})
				}
			}
			if len(s.Points) > 0 {
				c.Series = append(c.Series, s)
			}
		}
		charts = append(charts, c)
	}

	table := models.Table{
		Title:   "Transaction Data by Day of the Week Over Time",
		Columns: append([]string{"DayOfWeek", "YearMonth"}, metricColumns()...),
		Rows:    make([][]string, len(buckets)),
	}
	for i, b := range buckets {
		table.Rows[i] = append([]string{b.Weekday, b.Period}, metricCells(b)...)
	}
	return charts, []models.Table{table}
}

func renderSeasonal(rows []*models.Record, _ Inputs) ([]models.Chart, []models.Table) {
	buckets := aggregate.BySeason(rows)

	charts := make([]models.Chart, 0, len(aggregate.Metrics))
	for _, m := range aggregate.Metrics {
		charts = append(charts, models.Chart{
			Title:  string(m) + " by Season Over Time",
			XLabel: "Season",
			YLabel: "Transaction Value",
			Series: []models.ChartSeries{series(string(m), buckets, m)},
		})
	}
	return charts, []models.Table{metricTable("Transaction Data by Season Over Time", "YearSeason", buckets)}
}

func series(name string, buckets []aggregate.Bucket, m aggregate.Metric) models.ChartSeries {
	s := models.ChartSeries{Name: name, Points: make([]models.ChartPoint, len(buckets))}
	for i, b := range buckets {
		s.Points[i] = models.ChartPoint{X: b.Period, Y: b.Value(m).String()}
	}
	return s
}

func metricColumns() []string {
	cols := make([]string, len(aggregate.Metrics))
	for i, m := range aggregate.Metrics {
		cols[i] = "FB_" + string(m)
	}
	return cols
}

func metricCells(b aggregate.Bucket) []string {
	cells := make([]string, len(aggregate.Metrics))
	for i, m := range aggregate.Metrics {
		cells[i] = b.Value(m).String()
	}
	return cells
}

func metricTable(title, keyColumn string, buckets []aggregate.Bucket) models.Table {
	t := models.Table{
		Title:   title,
		Columns: append([]string{keyColumn}, metricColumns()...),
		Rows:    make([][]string, len(buckets)),
	}
	for i, b := range buckets {
		t.Rows[i] = append([]string{b.Period}, metricCells(b)...)
	}
	return t
}
