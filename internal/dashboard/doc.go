// Venuelens - Booking Transaction Analytics Dashboards
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/venuelens

/*
Package dashboard defines the four analytics pages and renders them.

Each Page declares its literal filter cascade and a render function from
filtered rows to charts and tables:

  - transactions-over-time: daily and/or monthly metric sums
  - repeat-bookings: distinct repeat visits per month, event date range
  - day-of-week: monthly metric sums split by weekday
  - seasonal: metric sums per year and season

A render reads only its RenderContext (the session's filter state plus
page inputs) and returns a PageResult carrying the pruned state the caller
stores back. When the cascade leaves no rows the result is NoData with the
filters still populated and no charts.

Service ties pages to the dataset loader and memoizes results by page,
dataset key and RenderContext until ClearCaches.
*/
package dashboard
