// Venuelens - Booking Transaction Analytics Dashboards
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/venuelens

/*
Package dataset normalizes warehouse rows into an immutable Dataset and
memoizes it by query text.

Normalize:

  - removes exact duplicate rows (all 58 columns equal)
  - parses FB_CREATESERVICETSTAMP as Unix epoch seconds into UTC
  - parses FB_SERVICE_DATE as MM/DD/YYYY
  - drops rows where either parse fails

Amounts that do not parse count as zero. Nothing else is validated.

Loader.Load runs the query on a cache miss, collapsing concurrent misses for
the same query into one warehouse call (golang.org/x/sync/singleflight). The
result stays cached until the dataset cache is invalidated; errors are never
cached.
*/
package dataset
