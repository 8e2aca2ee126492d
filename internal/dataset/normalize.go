// Venuelens - Booking Transaction Analytics Dashboards
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/venuelens

package dataset

import (
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tomtom215/venuelens/internal/models"
	"github.com/tomtom215/venuelens/internal/warehouse"
)

// ServiceDateLayout is the FB_SERVICE_DATE export format (MM/DD/YYYY). Single
// digit months and days are accepted as well.
const ServiceDateLayout = "1/2/2006"

// Epoch seconds representable as a nanosecond instant; anything outside is
// treated as unparseable.
const (
	minEpochSeconds = -9223372036
	maxEpochSeconds = 9223372036
)

// Stats counts what Normalize did with a raw result.
type Stats struct {
	Raw         int `json:"raw"`
	Duplicates  int `json:"duplicates"`
	Unparseable int `json:"unparseable"`
	Kept        int `json:"kept"`
}

// Normalize removes exact duplicate rows, parses the two date columns and
// drops every row where either parse fails. Survivors keep first-seen order.
func Normalize(raw []warehouse.RawRecord) ([]*models.Record, Stats) {
	stats := Stats{Raw: len(raw)}
	seen := make(map[warehouse.RawRecord]struct{}, len(raw))
	out := make([]*models.Record, 0, len(raw))

	for _, r := range raw {
		if _, dup := seen[r]; dup {
			stats.Duplicates++
			continue
		}
		seen[r] = struct{}{}

		rec, ok := toRecord(r)
		if !ok {
			stats.Unparseable++
			continue
		}
		out = append(out, &rec)
	}

	stats.Kept = len(out)
	return out, stats
}

// ParseEpochSeconds parses Unix epoch seconds given as integer or decimal
// text into a UTC instant.
func ParseEpochSeconds(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}

	if sec, err := strconv.ParseInt(s, 10, 64); err == nil {
		if sec < minEpochSeconds || sec > maxEpochSeconds {
			return time.Time{}, false
		}
		return time.Unix(sec, 0).UTC(), true
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return time.Time{}, false
	}
	sec := d.IntPart()
	if d.LessThan(decimal.NewFromInt(minEpochSeconds)) || d.GreaterThan(decimal.NewFromInt(maxEpochSeconds)) {
		return time.Time{}, false
	}
	nanos := d.Sub(decimal.NewFromInt(sec)).Shift(9).IntPart()
	return time.Unix(sec, nanos).UTC(), true
}

// ParseServiceDate parses an MM/DD/YYYY date into UTC midnight.
func ParseServiceDate(s string) (time.Time, bool) {
	t, err := time.Parse(ServiceDateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// amount parses a money column; missing or malformed values count as zero.
func amount(v warehouse.NullText) decimal.Decimal {
	if !v.Valid {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(strings.TrimSpace(v.String))
	if err != nil {
		return decimal.Zero
	}
	return d
}

// count parses an integer column such as the planned guest count. Decimal
// text is truncated; anything else counts as zero.
func count(v warehouse.NullText) int64 {
	if !v.Valid {
		return 0
	}
	s := strings.TrimSpace(v.String)
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return n
	}
	if d, err := decimal.NewFromString(s); err == nil {
		return d.IntPart()
	}
	return 0
}

func toRecord(r warehouse.RawRecord) (models.Record, bool) {
	if !r.FBCreateServiceTstamp.Valid || !r.FBServiceDate.Valid {
		return models.Record{}, false
	}
	created, ok := ParseEpochSeconds(r.FBCreateServiceTstamp.String)
	if !ok {
		return models.Record{}, false
	}
	eventDate, ok := ParseServiceDate(r.FBServiceDate.String)
	if !ok {
		return models.Record{}, false
	}

	return models.Record{
		BookTransWID:        r.FBBookTransWID.String,
		BookTransID:         r.FBBookTransID.String,
		VisitID:             r.FBVisitID.String,
		CorporateEntityID:   r.FBCorporateEntityID.String,
		ManagementEntityID:  r.FBManagementEntityID.String,
		VenueID:             r.FBVenueID.String,
		SourceSystems:       r.FBSourceSystems.String,
		ServiceID:           r.FBServiceID.String,
		ServiceTimestamp:    created,
		ModServiceTimestamp: r.FBModServiceTstamp.String,
		EventDate:           eventDate,
		TransTixRef:         r.FBTransTixRef.String,
		BilledName:          r.FBBilledName.String,
		CartID:              r.FBCartID.String,
		ChargeAmount:        amount(r.FBChargeAmount),
		City:                r.FBCity.String,
		CountryCode:         r.FBCountryCode.String,
		Email:               r.FBEmail.String,
		EventID:             r.FBEventID.String,
		GlobalTypeDesc:      r.FBGlobalTypeDesc.String,
		ItemName:            r.FBItemName.String,
		MasterItemID:        r.FBMasterItemID.String,
		PartyID:             r.FBPartyID.String,
		PayActionDesc:       r.FBPayActionDesc.String,
		PayTypeDesc:         r.FBPayTypeDesc.String,
		PlannedGuestCount:   count(r.FBPlannedGuestCount),
		PresaleTransID:      r.FBPresaleTransID.String,
		ProvinceCode:        r.FBProvinceCode.String,
		SpendAgreeAmount:    amount(r.FBSpendAgreeAmount),
		SubtotalAmount:      amount(r.FBSubtotalAmount),
		TixID:               r.FBTixID.String,
		TransTixID:          r.FBTransTixID.String,
		Zip:                 r.FBZip.String,

		VisitWID:              r.VSVisitWID.String,
		VisitCurrentState:     r.VSCurrentStateDesc.String,
		VisitCompAgreeAmount:  amount(r.VSCompAgreeAmount),
		VisitOriginatorID:     r.VSOriginatorID.String,
		VisitOwnerID:          r.VSOwnerID.String,
		VisitSpendAgreeAmount: amount(r.VSSpendAgreeAmount),
		VisitSourceCode:       r.VSSourceCode.String,
		VisitCancelState:      r.VSCancelStateDesc.String,
		VisitSourceLoc:        r.VSSourceLoc.String,

		VenueRecordStatus:    r.VNVenueRecordStatus.String,
		CorporateEntityName:  r.VNCorporateEntityName.String,
		ManagementEntityName: r.VNManagementEntityName.String,
		VenueName:            r.VNVenueName.String,
		VenueMarketAreaName:  r.VNVenueMarketAreaName.String,
		VenueTypeName:        r.VNVenueTypeName.String,
		VenueCity:            r.VNVenueCity.String,
		VenueProvince:        r.VNVenueProvince.String,
		VenueCountry:         r.VNVenueCountry.String,

		ItemID:             r.ITItemID.String,
		ItemGlobalTypeCode: r.ITItemGlobalTypeCode.String,
		ItemPrefab:         r.ITItemPrefab.String,
		ItemPricings:       r.ITItemPricings.String,
		ItemPublicName:     r.ITItemPublicName.String,
		ItemBookTypeName:   r.ITItemBookTypeName.String,
		ItemTypeCodeName:   r.ITItemTypeCodeName.String,
	}, true
}
