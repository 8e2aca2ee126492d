// Venuelens - Booking Transaction Analytics Dashboards
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/venuelens

package warehouse

import (
	"fmt"
	"strconv"
	"time"
)

// NullText is a nullable column value rendered as text. It scans any value
// the DuckDB or MySQL drivers hand back, so a RawRecord can hold every
// column without knowing the warehouse's physical types.
type NullText struct {
	String string
	Valid  bool
}

// Text returns a NullText holding s.
func Text(s string) NullText {
	return NullText{String: s, Valid: true}
}

// Scan implements sql.Scanner.
func (n *NullText) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		n.String, n.Valid = "", false
		return nil
	case string:
		n.String = v
	case []byte:
		n.String = string(v)
	case int64:
		n.String = strconv.FormatInt(v, 10)
	case int32:
		n.String = strconv.FormatInt(int64(v), 10)
	case uint64:
		n.String = strconv.FormatUint(v, 10)
	case float64:
		n.String = strconv.FormatFloat(v, 'f', -1, 64)
	case float32:
		n.String = strconv.FormatFloat(float64(v), 'f', -1, 32)
	case bool:
		n.String = strconv.FormatBool(v)
	case time.Time:
		n.String = v.UTC().Format(time.RFC3339Nano)
	case fmt.Stringer:
		n.String = v.String()
	default:
		n.String = fmt.Sprint(v)
	}
	n.Valid = true
	return nil
}

// RawRecord is one result row of the booking query before normalization.
// All fields are comparable, so a RawRecord can key a map directly when
// removing exact duplicates.
type RawRecord struct {
	FBBookTransWID        NullText
	FBBookTransID         NullText
	FBVisitID             NullText
	FBCorporateEntityID   NullText
	FBManagementEntityID  NullText
	FBVenueID             NullText
	FBSourceSystems       NullText
	FBServiceID           NullText
	FBCreateServiceTstamp NullText
	FBModServiceTstamp    NullText
	FBServiceDate         NullText
	FBTransTixRef         NullText
	FBBilledName          NullText
	FBCartID              NullText
	FBChargeAmount        NullText
	FBCity                NullText
	FBCountryCode         NullText
	FBEmail               NullText
	FBEventID             NullText
	FBGlobalTypeDesc      NullText
	FBItemName            NullText
	FBMasterItemID        NullText
	FBPartyID             NullText
	FBPayActionDesc       NullText
	FBPayTypeDesc         NullText
	FBPlannedGuestCount   NullText
	FBPresaleTransID      NullText
	FBProvinceCode        NullText
	FBSpendAgreeAmount    NullText
	FBSubtotalAmount      NullText
	FBTixID               NullText
	FBTransTixID          NullText
	FBZip                 NullText

	VSVisitWID         NullText
	VSCurrentStateDesc NullText
	VSCompAgreeAmount  NullText
	VSOriginatorID     NullText
	VSOwnerID          NullText
	VSSpendAgreeAmount NullText
	VSSourceCode       NullText
	VSCancelStateDesc  NullText
	VSSourceLoc        NullText

	VNVenueRecordStatus    NullText
	VNCorporateEntityName  NullText
	VNManagementEntityName NullText
	VNVenueName            NullText
	VNVenueMarketAreaName  NullText
	VNVenueTypeName        NullText
	VNVenueCity            NullText
	VNVenueProvince        NullText
	VNVenueCountry         NullText

	ITItemID             NullText
	ITItemGlobalTypeCode NullText
	ITItemPrefab         NullText
	ITItemPricings       NullText
	ITItemPublicName     NullText
	ITItemBookTypeName   NullText
	ITItemTypeCodeName   NullText
}

// columnCount is the number of columns selected by BookingQuery.
const columnCount = 58

// scanTargets returns pointers to every field in SELECT order.
func (r *RawRecord) scanTargets() []any {
	return []any{
		&r.FBBookTransWID, &r.FBBookTransID, &r.FBVisitID, &r.FBCorporateEntityID,
		&r.FBManagementEntityID, &r.FBVenueID, &r.FBSourceSystems, &r.FBServiceID,
		&r.FBCreateServiceTstamp, &r.FBModServiceTstamp, &r.FBServiceDate, &r.FBTransTixRef,
		&r.FBBilledName, &r.FBCartID, &r.FBChargeAmount, &r.FBCity,
		&r.FBCountryCode, &r.FBEmail, &r.FBEventID, &r.FBGlobalTypeDesc,
		&r.FBItemName, &r.FBMasterItemID, &r.FBPartyID, &r.FBPayActionDesc,
		&r.FBPayTypeDesc, &r.FBPlannedGuestCount, &r.FBPresaleTransID, &r.FBProvinceCode,
		&r.FBSpendAgreeAmount, &r.FBSubtotalAmount, &r.FBTixID, &r.FBTransTixID,
		&r.FBZip,

		&r.VSVisitWID, &r.VSCurrentStateDesc, &r.VSCompAgreeAmount, &r.VSOriginatorID,
		&r.VSOwnerID, &r.VSSpendAgreeAmount, &r.VSSourceCode, &r.VSCancelStateDesc,
		&r.VSSourceLoc,

		&r.VNVenueRecordStatus, &r.VNCorporateEntityName, &r.VNManagementEntityName, &r.VNVenueName,
		&r.VNVenueMarketAreaName, &r.VNVenueTypeName, &r.VNVenueCity, &r.VNVenueProvince,
		&r.VNVenueCountry,

		&r.ITItemID, &r.ITItemGlobalTypeCode, &r.ITItemPrefab, &r.ITItemPricings,
		&r.ITItemPublicName, &r.ITItemBookTypeName, &r.ITItemTypeCodeName,
	}
}
