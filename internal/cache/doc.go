// Venuelens - Booking Transaction Analytics Dashboards
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/venuelens

/*
Package cache provides a thread-safe, content-addressed in-memory store.

# Overview

Keys are produced by GenerateKey, which hashes the JSON encoding of the
arguments, so identical query text or identical filter arguments always
address the same entry. Two modes are used:

  - Memo (ttl == 0): no expiry, no size bound, no eviction. Entries live until
    InvalidateAll. Used for normalized datasets and rendered pages.
  - Idle TTL (ttl > 0): each Set pushes the expiry forward. Used for
    per-session filter state, where expiry marks the end of a session.

# Usage

	datasets := cache.New("dataset", 0)
	ds, err := cache.Memo(datasets, cache.GenerateKey("dataset", query), fetch)

	// Operator clear-cache action
	datasets.InvalidateAll()

# Metrics

Hits, misses, size, evictions and invalidations are exported to Prometheus
labelled with the cache name (see package metrics).
*/
package cache
