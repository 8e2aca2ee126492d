// Venuelens - Booking Transaction Analytics Dashboards
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/venuelens

package filter

import (
	"time"

	"github.com/tomtom215/venuelens/internal/models"
)

// Key identifies one filter.
type Key string

// Filter keys. KeyDateRange is the only date-range filter; the rest are
// membership filters over a single column.
const (
	KeyDateRange        Key = "date_range"
	KeyCorporateEntity  Key = "corporate_entity"
	KeyManagementEntity Key = "management_entity"
	KeyVenue            Key = "venue"
	KeyVenueType        Key = "venue_type"
	KeyGlobalType       Key = "global_type"
	KeyPayType          Key = "pay_type"
	KeyPayStatus        Key = "pay_status"
)

// MembershipKeys lists the membership filters in canonical order.
var MembershipKeys = []Key{
	KeyCorporateEntity,
	KeyManagementEntity,
	KeyVenueType,
	KeyGlobalType,
	KeyPayType,
	KeyVenue,
	KeyPayStatus,
}

// IsMembership reports whether k is a membership filter key.
func (k Key) IsMembership() bool {
	switch k {
	case KeyCorporateEntity, KeyManagementEntity, KeyVenue, KeyVenueType,
		KeyGlobalType, KeyPayType, KeyPayStatus:
		return true
	}
	return false
}

// Column returns the record column a membership key filters on, or "".
func (k Key) Column() string {
	switch k {
	case KeyCorporateEntity:
		return "VN_CORPORATE_ENTITY_NAME"
	case KeyManagementEntity:
		return "VN_MANAGEMENT_ENTITY_NAME"
	case KeyVenue:
		return "VN_VENUE_NAME"
	case KeyVenueType:
		return "VN_VENUE_TYPE_NAME"
	case KeyGlobalType:
		return "FB_GLOBALTYPE_DESC"
	case KeyPayType:
		return "FB_PAYTYPE_DESC"
	case KeyPayStatus:
		return "FB_PAYACTION_DESC"
	}
	return ""
}

// Value returns r's value for a membership key.
func (k Key) Value(r *models.Record) string {
	switch k {
	case KeyCorporateEntity:
		return r.CorporateEntityName
	case KeyManagementEntity:
		return r.ManagementEntityName
	case KeyVenue:
		return r.VenueName
	case KeyVenueType:
		return r.VenueTypeName
	case KeyGlobalType:
		return r.GlobalTypeDesc
	case KeyPayType:
		return r.PayTypeDesc
	case KeyPayStatus:
		return r.PayActionDesc
	}
	return ""
}

// DateColumn selects which record date the date range applies to.
type DateColumn string

const (
	// TransactionDate filters on FB_CREATESERVICETSTAMP.
	TransactionDate DateColumn = "transaction_date"
	// EventDate filters on FB_SERVICE_DATE.
	EventDate DateColumn = "event_date"
)

// Valid reports whether c is a known date column.
func (c DateColumn) Valid() bool {
	return c == TransactionDate || c == EventDate
}

// Column returns the warehouse column name.
func (c DateColumn) Column() string {
	if c == EventDate {
		return "FB_SERVICE_DATE"
	}
	return "FB_CREATESERVICETSTAMP"
}

// Label returns the display name used in the filter sidebar.
func (c DateColumn) Label() string {
	if c == EventDate {
		return "Event Date"
	}
	return "Transaction Date"
}

// Value returns r's date for column c.
func (c DateColumn) Value(r *models.Record) time.Time {
	if c == EventDate {
		return r.EventDate
	}
	return r.ServiceTimestamp
}

// State is the filter selection of one session. The zero value selects
// everything.
type State struct {
	// DateRange activates only with exactly two dates.
	DateRange  []time.Time `json:"date_range,omitempty"`
	DateColumn DateColumn  `json:"date_column,omitempty"`
	// Selected maps membership keys to their selected values.
	Selected map[Key][]string `json:"selected,omitempty"`
}

// Column returns the effective date column, defaulting to TransactionDate.
func (s State) Column() DateColumn {
	if s.DateColumn.Valid() {
		return s.DateColumn
	}
	return TransactionDate
}

// Range returns the active date bounds.
func (s State) Range() (start, end time.Time, ok bool) {
	if len(s.DateRange) != 2 {
		return time.Time{}, time.Time{}, false
	}
	return s.DateRange[0], s.DateRange[1], true
}

// Selection returns the selected values for k.
func (s State) Selection(k Key) []string {
	return s.Selected[k]
}

// Clone returns a deep copy of s.
func (s State) Clone() State {
	out := State{DateColumn: s.DateColumn}
	if s.DateRange != nil {
		out.DateRange = append([]time.Time(nil), s.DateRange...)
	}
	if len(s.Selected) > 0 {
		out.Selected = make(map[Key][]string, len(s.Selected))
		for k, v := range s.Selected {
			out.Selected[k] = append([]string(nil), v...)
		}
	}
	return out
}

// WithSelection returns a copy of s with k set to values. An empty values
// clears the filter.
func (s State) WithSelection(k Key, values []string) State {
	out := s.Clone()
	out.setSelection(k, values)
	return out
}

func (s *State) setSelection(k Key, values []string) {
	if len(values) == 0 {
		delete(s.Selected, k)
		if len(s.Selected) == 0 {
			s.Selected = nil
		}
		return
	}
	if s.Selected == nil {
		s.Selected = make(map[Key][]string)
	}
	s.Selected[k] = values
}
