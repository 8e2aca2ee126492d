// Venuelens - Booking Transaction Analytics Dashboards
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/venuelens

/*
Package services provides suture.Service wrappers for Venuelens components.

Each wrapper translates a component's lifecycle into suture's context-aware
Serve pattern and implements fmt.Stringer so supervisor logs name it.

  - HTTPServerService: runs *http.Server and shuts it down gracefully when
    the tree stops
  - CacheResetService: clears the dashboard caches each time a trigger
    (SIGHUP in venuelens-server) fires
*/
package services
