// Venuelens - Booking Transaction Analytics Dashboards
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/venuelens

/*
Package config loads and validates Venuelens configuration.

Configuration is layered with Koanf v2: struct defaults, then an optional
YAML file (CONFIG_PATH, ./config.yaml or /etc/venuelens/config.yaml), then
explicitly mapped environment variables.

Example config.yaml:

	warehouse:
	  driver: duckdb
	  path: /data/warehouse.duckdb
	  query_timeout: 2m
	server:
	  port: 3858
	session:
	  idle_timeout: 4h
	logging:
	  level: debug
	  format: console

Example - the equivalent environment:

	WAREHOUSE_DRIVER=duckdb DUCKDB_PATH=/data/warehouse.duckdb \
	WAREHOUSE_QUERY_TIMEOUT=2m HTTP_PORT=3858 SESSION_IDLE_TIMEOUT=4h \
	LOG_LEVEL=debug LOG_FORMAT=console venuelens-server

Switching the warehouse to MySQL:

	WAREHOUSE_DRIVER=mysql WAREHOUSE_DSN='bi:secret@tcp(db:3306)/edw'
*/
package config
