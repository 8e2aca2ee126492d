// Venuelens - Booking Transaction Analytics Dashboards
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/venuelens

package filter

import (
	"slices"
	"testing"
	"time"

	"github.com/tomtom215/venuelens/internal/models"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func rec(id, corp, venue, payType string, created, event time.Time) *models.Record {
	return &models.Record{
		VisitID:              id,
		CorporateEntityName:  corp,
		ManagementEntityName: corp + " Mgmt",
		VenueName:            venue,
		VenueTypeName:        "Ballroom",
		GlobalTypeDesc:       "Event",
		PayTypeDesc:          payType,
		PayActionDesc:        "Paid",
		ServiceTimestamp:     created,
		EventDate:            event,
	}
}

func fixture() []*models.Record {
	return []*models.Record{
		rec("1", "Acme", "Hall A", "Card", day(2024, 1, 1).Add(9*time.Hour), day(2024, 2, 1)),
		rec("2", "Acme", "Hall B", "Cash", day(2024, 1, 15).Add(23*time.Hour), day(2024, 2, 15)),
		rec("3", "Beta", "Hall C", "Card", day(2024, 1, 31).Add(time.Hour), day(2024, 3, 1)),
		rec("4", "Beta", "Hall C", "Card", day(2024, 2, 10), day(2024, 3, 10)),
		rec("5", "", "Hall D", "", day(2024, 3, 1), day(2024, 4, 1)),
	}
}

func ids(records []*models.Record) []string {
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = r.VisitID
	}
	return out
}

func TestApplyEmptyStateIsIdentity(t *testing.T) {
	t.Parallel()

	data := fixture()
	got := Apply(data, State{})
	if !slices.Equal(ids(got), ids(data)) {
		t.Errorf("Apply(empty) = %v, want %v", ids(got), ids(data))
	}
}

func TestApplySubsetAndIdempotent(t *testing.T) {
	t.Parallel()

	data := fixture()
	states := []State{
		{Selected: map[Key][]string{KeyCorporateEntity: {"Acme"}}},
		{Selected: map[Key][]string{KeyPayType: {"Card"}, KeyVenue: {"Hall C", "Hall A"}}},
		{DateRange: []time.Time{day(2024, 1, 10), day(2024, 2, 1)}},
		{DateRange: []time.Time{day(2024, 3, 1), day(2024, 3, 1)}, DateColumn: EventDate},
		{Selected: map[Key][]string{KeyCorporateEntity: {"Nobody"}}},
	}

	all := make(map[*models.Record]bool, len(data))
	for _, r := range data {
		all[r] = true
	}

	for _, st := range states {
		once := Apply(data, st)
		for _, r := range once {
			if !all[r] {
				t.Errorf("Apply(%+v) returned a record outside the dataset", st)
			}
		}
		twice := Apply(once, st)
		if !slices.Equal(ids(once), ids(twice)) {
			t.Errorf("Apply not idempotent for %+v: %v then %v", st, ids(once), ids(twice))
		}
	}
}

func TestApplyMembershipOrderIndependent(t *testing.T) {
	t.Parallel()

	data := fixture()
	st := State{Selected: map[Key][]string{
		KeyCorporateEntity: {"Beta", "Acme"},
		KeyPayType:         {"Card"},
	}}

	want := Apply(data, st)

	byPay := ByMembership(data, KeyPayType, []string{"Card"})
	byBoth := ByMembership(byPay, KeyCorporateEntity, []string{"Beta", "Acme"})

	if !slices.Equal(ids(want), ids(byBoth)) {
		t.Errorf("order matters: %v vs %v", ids(want), ids(byBoth))
	}
	if !slices.Equal(ids(want), []string{"1", "3", "4"}) {
		t.Errorf("Apply() = %v, want [1 3 4]", ids(want))
	}
}

func TestByDateRangeInclusiveDays(t *testing.T) {
	t.Parallel()

	data := fixture()
	tests := []struct {
		name       string
		col        DateColumn
		start, end time.Time
		want       []string
	}{
		{"single day includes late hours", TransactionDate, day(2024, 1, 15), day(2024, 1, 15), []string{"2"}},
		{"bounds inclusive", TransactionDate, day(2024, 1, 1), day(2024, 1, 31), []string{"1", "2", "3"}},
		{"event date column", EventDate, day(2024, 3, 1), day(2024, 3, 10), []string{"3", "4"}},
		{"bounds with time of day", TransactionDate, day(2024, 1, 31).Add(20 * time.Hour), day(2024, 2, 10).Add(time.Minute), []string{"3", "4"}},
		{"reversed range is empty", TransactionDate, day(2024, 2, 1), day(2024, 1, 1), []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := ids(ByDateRange(data, tt.col, tt.start, tt.end))
			if !slices.Equal(got, tt.want) {
				t.Errorf("ByDateRange() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestApplyNeedsTwoDates(t *testing.T) {
	t.Parallel()

	data := fixture()
	got := Apply(data, State{DateRange: []time.Time{day(2030, 1, 1)}})
	if len(got) != len(data) {
		t.Errorf("one date should not filter: got %d rows", len(got))
	}
}

func TestOptionsFor(t *testing.T) {
	t.Parallel()

	got := OptionsFor(KeyCorporateEntity, fixture())
	if !slices.Equal(got, []string{"Acme", "Beta"}) {
		t.Errorf("OptionsFor(corp) = %v", got)
	}
	got = OptionsFor(KeyVenue, fixture())
	if !slices.Equal(got, []string{"Hall A", "Hall B", "Hall C", "Hall D"}) {
		t.Errorf("OptionsFor(venue) = %v", got)
	}
	if got := OptionsFor(KeyPayType, nil); len(got) != 0 {
		t.Errorf("OptionsFor(nil) = %v", got)
	}
}

func TestCascadeRunNarrowsOptions(t *testing.T) {
	t.Parallel()

	c := Cascade{
		MembershipStep(KeyCorporateEntity),
		DateRangeStep(),
		MembershipStep(KeyVenue),
		MembershipStep(KeyPayType),
	}
	st := State{Selected: map[Key][]string{KeyCorporateEntity: {"Beta"}}}

	res := c.Run(fixture(), st)

	if !slices.Equal(res.Steps[0].Options, []string{"Acme", "Beta"}) {
		t.Errorf("corp options = %v", res.Steps[0].Options)
	}
	if !slices.Equal(res.Steps[2].Options, []string{"Hall C"}) {
		t.Errorf("venue options = %v, want only Beta venues", res.Steps[2].Options)
	}
	if !slices.Equal(ids(res.Rows), []string{"3", "4"}) {
		t.Errorf("rows = %v", ids(res.Rows))
	}
	if !res.FiltersSelected {
		t.Error("FiltersSelected should be true")
	}
	if res.Steps[1].Column != TransactionDate {
		t.Errorf("date step column = %q", res.Steps[1].Column)
	}
}

func TestCascadeRunPrunesStaleSelections(t *testing.T) {
	t.Parallel()

	c := Cascade{
		MembershipStep(KeyCorporateEntity),
		MembershipStep(KeyVenue),
	}
	st := State{Selected: map[Key][]string{
		KeyCorporateEntity: {"Beta", "Gone"},
		KeyVenue:           {"Hall A", "Hall C", "Hall C"},
		KeyPayStatus:       {"Refunded"},
	}}

	res := c.Run(fixture(), st)

	if got := res.State.Selection(KeyCorporateEntity); !slices.Equal(got, []string{"Beta"}) {
		t.Errorf("corp selection = %v", got)
	}
	if got := res.State.Selection(KeyVenue); !slices.Equal(got, []string{"Hall C"}) {
		t.Errorf("venue selection = %v, Hall A belongs to Acme", got)
	}
	if got := res.State.Selection(KeyPayStatus); !slices.Equal(got, []string{"Refunded"}) {
		t.Errorf("keys outside the cascade should survive untouched, got %v", got)
	}
	if got := st.Selection(KeyCorporateEntity); len(got) != 2 {
		t.Errorf("input state was modified: %v", got)
	}
}

func TestCascadeRunPinnedDateColumn(t *testing.T) {
	t.Parallel()

	c := Cascade{PinnedDateRangeStep(EventDate)}
	st := State{
		DateRange:  []time.Time{day(2024, 3, 1), day(2024, 3, 31)},
		DateColumn: TransactionDate,
	}

	res := c.Run(fixture(), st)

	if !slices.Equal(ids(res.Rows), []string{"3", "4"}) {
		t.Errorf("rows = %v, want event-date matches", ids(res.Rows))
	}
	if res.State.DateColumn != TransactionDate {
		t.Errorf("pinned step should not rewrite the stored column, got %q", res.State.DateColumn)
	}
	if res.FiltersSelected {
		t.Error("a date range alone should not set FiltersSelected")
	}

	w := res.Steps[0].Widget()
	if !w.Pinned || w.DateColumn != string(EventDate) || w.Label != "Select Event Date Range" {
		t.Errorf("widget = %+v", w)
	}
	if !slices.Equal(w.Selected, []string{"2024-03-01", "2024-03-31"}) {
		t.Errorf("widget selected = %v", w.Selected)
	}
}

func TestCascadeRunNoData(t *testing.T) {
	t.Parallel()

	c := Cascade{DateRangeStep(), MembershipStep(KeyCorporateEntity)}
	st := State{DateRange: []time.Time{day(2020, 1, 1), day(2020, 12, 31)}}

	res := c.Run(fixture(), st)
	if !res.NoData() {
		t.Fatalf("expected no data, got %v", ids(res.Rows))
	}
	if len(res.Steps[1].Options) != 0 {
		t.Errorf("options = %v, want none", res.Steps[1].Options)
	}
	if w := res.Widgets(); len(w) != 2 || w[1].Selected == nil {
		t.Errorf("widgets = %+v", w)
	}
}

func TestStateCloneIsDeep(t *testing.T) {
	t.Parallel()

	st := State{
		DateRange: []time.Time{day(2024, 1, 1), day(2024, 1, 2)},
		Selected:  map[Key][]string{KeyVenue: {"Hall A"}},
	}
	cp := st.Clone()
	cp.Selected[KeyVenue][0] = "changed"
	cp.DateRange[0] = day(1999, 1, 1)

	if st.Selected[KeyVenue][0] != "Hall A" || !st.DateRange[0].Equal(day(2024, 1, 1)) {
		t.Error("Clone() shares memory with the original")
	}

	cleared := st.WithSelection(KeyVenue, nil)
	if cleared.Selected != nil {
		t.Errorf("WithSelection(nil) = %+v, want no selections", cleared.Selected)
	}
	if st.Column() != TransactionDate {
		t.Errorf("default Column() = %q", st.Column())
	}
}
