// Venuelens - Booking Transaction Analytics Dashboards
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/venuelens

/*
Package warehouse runs the booking query against the data warehouse.

The Executor interface is the only boundary the rest of Venuelens sees: SQL
text in, RawRecord rows out. SQLExecutor implements it over database/sql
with two drivers:

  - duckdb (github.com/duckdb/duckdb-go/v2): default, a local DuckDB file
  - mysql (github.com/go-sql-driver/mysql): a MySQL-compatible warehouse

Every query runs under the configured timeout and through a sony/gobreaker
circuit breaker that opens after consecutive failures. Failures are wrapped
with ErrQueryFailed and are never retried.

BookingQuery is embedded from sql/booking_transactions.sql. It joins
fact_book_trans with dim_visit, dim_venue and dim_item and keeps the PAY and
urcheckout source systems.

Demo data:

	exec, err := warehouse.Open(&cfg.Warehouse)
	if err != nil {
	    return err
	}
	_, err = warehouse.Seed(ctx, exec.DB(), warehouse.SeedOptions{Rows: 5000, Seed: 1})

Metrics: warehouse query duration, errors and row counts, plus circuit
breaker state and transitions (see internal/metrics).
*/
package warehouse
