// Venuelens - Booking Transaction Analytics Dashboards
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/venuelens

package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Record is one booking transaction joined with its visit, venue and item
// dimensions. JSON names follow the warehouse column aliases.
//
// ServiceTimestamp is FB_CREATESERVICETSTAMP (epoch seconds, stored as UTC)
// and EventDate is FB_SERVICE_DATE at UTC midnight. Both are always set on
// records that reach a Dataset. Missing text columns are empty strings and
// missing amounts are zero.
type Record struct {
	// Fact: fact_book_trans
	BookTransWID        string          `json:"FB_BOOK_TRANS_WID"`
	BookTransID         string          `json:"FB_BOOK_TRANS_ID"`
	VisitID             string          `json:"FB_VISIT_ID"`
	CorporateEntityID   string          `json:"FB_CORPORATE_ENTITY_ID"`
	ManagementEntityID  string          `json:"FB_MANAGEMENT_ENTITY_ID"`
	VenueID             string          `json:"FB_VENUE_ID"`
	SourceSystems       string          `json:"FB_SOURCE_SYSTEMS"`
	ServiceID           string          `json:"FB_SERVICE_ID"`
	ServiceTimestamp    time.Time       `json:"FB_CREATESERVICETSTAMP"`
	ModServiceTimestamp string          `json:"FB_MODSERVICETSTAMP"`
	EventDate           time.Time       `json:"FB_SERVICE_DATE"`
	TransTixRef         string          `json:"FB_TRANSTIXREF"`
	BilledName          string          `json:"FB_BILLED_NAME"`
	CartID              string          `json:"FB_CART_ID"`
	ChargeAmount        decimal.Decimal `json:"FB_CHARGE_AMOUNT"`
	City                string          `json:"FB_CITY"`
	CountryCode         string          `json:"FB_COUNTRY_CODE"`
	Email               string          `json:"FB_EMAIL"`
	EventID             string          `json:"FB_EVENT_ID"`
	GlobalTypeDesc      string          `json:"FB_GLOBALTYPE_DESC"`
	ItemName            string          `json:"FB_ITEM_NAME"`
	MasterItemID        string          `json:"FB_MASTERITEM_ID"`
	PartyID             string          `json:"FB_PARTY_ID"`
	PayActionDesc       string          `json:"FB_PAYACTION_DESC"`
	PayTypeDesc         string          `json:"FB_PAYTYPE_DESC"`
	PlannedGuestCount   int64           `json:"FB_PLANNED_GUEST_COUNT"`
	PresaleTransID      string          `json:"FB_PRESALE_TRANS_ID"`
	ProvinceCode        string          `json:"FB_PROVINCE_CODE"`
	SpendAgreeAmount    decimal.Decimal `json:"FB_SPENDAGREE_AMOUNT"`
	SubtotalAmount      decimal.Decimal `json:"FB_SUBTOTAL_AMOUNT"`
	TixID               string          `json:"FB_TIXID"`
	TransTixID          string          `json:"FB_TRANSTIXID"`
	Zip                 string          `json:"FB_ZIP"`

	// Visit: dim_visit
	VisitWID              string          `json:"VS_VISIT_WID"`
	VisitCurrentState     string          `json:"VS_CURRENTSTATE_DESC"`
	VisitCompAgreeAmount  decimal.Decimal `json:"VS_COMPAGREE_AMOUNT"`
	VisitOriginatorID     string          `json:"VS_ORIGINATOR_ID"`
	VisitOwnerID          string          `json:"VS_OWNER_ID"`
	VisitSpendAgreeAmount decimal.Decimal `json:"VS_SPENDAGREE_AMOUNT"`
	VisitSourceCode       string          `json:"VS_SOURCE_CODE"`
	VisitCancelState      string          `json:"VS_CANCELSTATE_DESC"`
	VisitSourceLoc        string          `json:"VS_SOURCE_LOC"`

	// Venue: dim_venue
	VenueRecordStatus    string `json:"VN_VENUE_RECORD_STATUS"`
	CorporateEntityName  string `json:"VN_CORPORATE_ENTITY_NAME"`
	ManagementEntityName string `json:"VN_MANAGEMENT_ENTITY_NAME"`
	VenueName            string `json:"VN_VENUE_NAME"`
	VenueMarketAreaName  string `json:"VN_VENUE_MARKET_AREA_NAME"`
	VenueTypeName        string `json:"VN_VENUE_TYPE_NAME"`
	VenueCity            string `json:"VN_VENUE_CITY"`
	VenueProvince        string `json:"VN_VENUE_PROVINCE"`
	VenueCountry         string `json:"VN_VENUE_COUNTRY"`

	// Item: dim_item
	ItemID             string `json:"IT_ITEM_ID"`
	ItemGlobalTypeCode string `json:"IT_ITEM_GLOBALTYPE_CODE"`
	ItemPrefab         string `json:"IT_ITEM_PREFAB"`
	ItemPricings       string `json:"IT_ITEM_PRICINGS"`
	ItemPublicName     string `json:"IT_ITEM_PUBLICNAME"`
	ItemBookTypeName   string `json:"IT_ITEM_BOOKTYPE_NAME"`
	ItemTypeCodeName   string `json:"IT_ITEM_TYPE_CODE_NAME"`
}
