// Venuelens - Booking Transaction Analytics Dashboards
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/venuelens

package filter

import (
	"github.com/samber/lo"

	"github.com/tomtom215/venuelens/internal/models"
)

// DateLayout is the wire format of date range bounds.
const DateLayout = "2006-01-02"

// Kind is the shape of a cascade step.
type Kind string

const (
	KindDateRange  Kind = "date_range"
	KindMembership Kind = "membership"
)

// Predicate describes one cascade step.
type Predicate struct {
	Key   Key
	Label string
	Kind  Kind
	// PinnedColumn fixes the column of a date range step regardless of the
	// state's DateColumn. Empty means the state decides.
	PinnedColumn DateColumn
}

// DateRangeStep returns a date range predicate that follows the state's
// date column.
func DateRangeStep() Predicate {
	return Predicate{Key: KeyDateRange, Label: "Select Date Range", Kind: KindDateRange}
}

// PinnedDateRangeStep returns a date range predicate fixed to col.
func PinnedDateRangeStep(col DateColumn) Predicate {
	return Predicate{
		Key:          KeyDateRange,
		Label:        "Select " + col.Label() + " Range",
		Kind:         KindDateRange,
		PinnedColumn: col,
	}
}

// MembershipStep returns the membership predicate for k.
func MembershipStep(k Key) Predicate {
	return Predicate{Key: k, Label: membershipLabels[k], Kind: KindMembership}
}

var membershipLabels = map[Key]string{
	KeyCorporateEntity:  "Select Corporate Entity",
	KeyManagementEntity: "Select Management Entity",
	KeyVenue:            "Select Venue",
	KeyVenueType:        "Select Venue Type",
	KeyGlobalType:       "Select Global Type",
	KeyPayType:          "Select Pay Type",
	KeyPayStatus:        "Select Pay Status",
}

// Cascade is an ordered list of predicates. Each membership step offers the
// values left after all earlier steps.
type Cascade []Predicate

// Keys returns the membership keys in cascade order.
func (c Cascade) Keys() []Key {
	return lo.FilterMap(c, func(p Predicate, _ int) (Key, bool) {
		return p.Key, p.Kind == KindMembership
	})
}

// Step is the outcome of one cascade predicate.
type Step struct {
	Predicate
	// Column is the date column the step used; date range steps only.
	Column DateColumn
	// Options are the values offered; membership steps only.
	Options  []string
	Selected []string
}

// Widget returns the client view of s.
func (s Step) Widget() models.FilterWidget {
	w := models.FilterWidget{
		Key:      string(s.Key),
		Label:    s.Label,
		Kind:     string(s.Kind),
		Options:  s.Options,
		Selected: s.Selected,
	}
	if s.Kind == KindDateRange {
		w.DateColumn = string(s.Column)
		w.Pinned = s.PinnedColumn != ""
		if s.PinnedColumn == "" {
			w.Label = "Select " + s.Column.Label() + " Range"
		}
	}
	if w.Selected == nil {
		w.Selected = []string{}
	}
	return w
}

// Result is the outcome of Cascade.Run.
type Result struct {
	Steps []Step
	// State is the input state with selections that were not offered
	// removed.
	State State
	Rows  []*models.Record
	// FiltersSelected is true when any membership step restricted rows.
	FiltersSelected bool
}

// NoData reports whether the cascade left nothing to aggregate.
func (r Result) NoData() bool {
	return len(r.Rows) == 0
}

// Widgets returns the client view of every step.
func (r Result) Widgets() []models.FilterWidget {
	return lo.Map(r.Steps, func(s Step, _ int) models.FilterWidget {
		return s.Widget()
	})
}

// Run walks the cascade over records. Membership selections outside the
// options offered at their step are pruned; keys the cascade does not name
// are neither applied nor pruned.
func (c Cascade) Run(records []*models.Record, st State) Result {
	next := st.Clone()
	rows := records
	res := Result{Steps: make([]Step, 0, len(c))}

	for _, p := range c {
		step := Step{Predicate: p}

		switch p.Kind {
		case KindDateRange:
			col := p.PinnedColumn
			if col == "" {
				col = next.Column()
			}
			step.Column = col
			if start, end, ok := next.Range(); ok {
				rows = ByDateRange(rows, col, start, end)
				step.Selected = []string{start.UTC().Format(DateLayout), end.UTC().Format(DateLayout)}
			}

		case KindMembership:
			step.Options = OptionsFor(p.Key, rows)
			offered := lo.SliceToMap(step.Options, func(v string) (string, struct{}) {
				return v, struct{}{}
			})
			kept := lo.Uniq(lo.Filter(next.Selection(p.Key), func(v string, _ int) bool {
				_, ok := offered[v]
				return ok
			}))
			next.setSelection(p.Key, kept)
			if len(kept) > 0 {
				step.Selected = kept
				rows = ByMembership(rows, p.Key, kept)
				res.FiltersSelected = true
			}
		}

		res.Steps = append(res.Steps, step)
	}

	res.State = next
	res.Rows = rows
	return res
}
