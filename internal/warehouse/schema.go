// Venuelens - Booking Transaction Analytics Dashboards
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/venuelens

package warehouse

import (
	"context"
	"database/sql"
	"fmt"
)

// schemaStatements create the demo warehouse tables read by BookingQuery.
// Epoch timestamps are BIGINT and FB_SERVICE_DATE is MM/DD/YYYY text, the
// way the source system exports them.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS dim_venue (
		VENUE_ID VARCHAR PRIMARY KEY,
		VENUE_RECORD_STATUS VARCHAR,
		CORPORATE_ENTITY_NAME VARCHAR,
		MANAGEMENT_ENTITY_NAME VARCHAR,
		VENUE_NAME VARCHAR,
		VENUE_MARKET_AREA_NAME VARCHAR,
		VENUE_TYPE_NAME VARCHAR,
		VENUE_CITY VARCHAR,
		VENUE_PROVINCE VARCHAR,
		VENUE_COUNTRY VARCHAR
	)`,
	`CREATE TABLE IF NOT EXISTS dim_item (
		ITEM_ID VARCHAR PRIMARY KEY,
		ITEM_GLOBALTYPE_CODE VARCHAR,
		ITEM_PREFAB VARCHAR,
		ITEM_PRICINGS VARCHAR,
		ITEM_PUBLICNAME VARCHAR,
		ITEM_BOOKTYPE_NAME VARCHAR,
		ITEM_TYPE_CODE_NAME VARCHAR
	)`,
	`CREATE TABLE IF NOT EXISTS dim_visit (
		VISIT_ID VARCHAR PRIMARY KEY,
		VISIT_WID VARCHAR,
		VENUE_ID VARCHAR,
		CURRENTSTATE_DESC VARCHAR,
		COMPAGREE_AMOUNT DOUBLE,
		ORIGINATOR_ID VARCHAR,
		OWNER_ID VARCHAR,
		SPENDAGREE_AMOUNT DOUBLE,
		SOURCE_CODE VARCHAR,
		CANCELSTATE_DESC VARCHAR,
		SOURCE_LOC VARCHAR
	)`,
	`CREATE TABLE IF NOT EXISTS fact_book_trans (
		BOOK_TRANS_WID VARCHAR,
		BOOK_TRANS_ID VARCHAR,
		VISIT_ID VARCHAR,
		CORPORATE_ENTITY_ID VARCHAR,
		MANAGEMENT_ENTITY_ID VARCHAR,
		VENUE_ID VARCHAR,
		SOURCE_SYSTEMS VARCHAR,
		SERVICE_ID VARCHAR,
		CREATESERVICETSTAMP BIGINT,
		MODSERVICETSTAMP BIGINT,
		SERVICE_DATE VARCHAR,
		TRANSTIXREF VARCHAR,
		BILLED_NAME VARCHAR,
		CART_ID VARCHAR,
		CHARGE_AMOUNT DOUBLE,
		CITY VARCHAR,
		COUNTRY_CODE VARCHAR,
		EMAIL VARCHAR,
		EVENT_ID VARCHAR,
		GLOBALTYPE_DESC VARCHAR,
		ITEM_NAME VARCHAR,
		MASTERITEM_ID VARCHAR,
		PARTY_ID VARCHAR,
		PAYACTION_DESC VARCHAR,
		PAYTYPE_DESC VARCHAR,
		PLANNED_GUEST_COUNT INTEGER,
		PRESALE_TRANS_ID VARCHAR,
		PROVINCE_CODE VARCHAR,
		SPENDAGREE_AMOUNT DOUBLE,
		SUBTOTAL_AMOUNT DOUBLE,
		TIXID VARCHAR,
		TRANSTIXID VARCHAR,
		ZIP VARCHAR
	)`,
}

// CreateSchema creates the warehouse tables if they do not exist.
func CreateSchema(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schemaStatements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to create warehouse schema: %w", err)
		}
	}
	return nil
}

// FactRowCount returns the number of rows in fact_book_trans.
func FactRowCount(ctx context.Context, db *sql.DB) (int, error) {
	var n int
	if err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM fact_book_trans").Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count fact rows: %w", err)
	}
	return n, nil
}
