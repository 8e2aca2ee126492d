// Venuelens - Booking Transaction Analytics Dashboards
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/venuelens

/*
Package filter implements the cascading filter engine.

A State holds the date range, the date column it applies to and a set of
selected values per membership key. Apply narrows a dataset by a State in
canonical order:

	date range -> corporate entity -> management entity -> venue type ->
	global type -> pay type -> venue -> pay status

Membership filters commute, so the canonical order only matters for
Cascade, which recomputes the options of each step from the rows left by
the steps before it:

	res := filter.Cascade{
		filter.MembershipStep(filter.KeyCorporateEntity),
		filter.PinnedDateRangeStep(filter.EventDate),
		filter.MembershipStep(filter.KeyVenue),
	}.Run(ds.Records, st)

Run prunes selections that are no longer offered and returns the pruned
State alongside the rows, so a change upstream invalidates stale
downstream choices on the next render.
*/
package filter
