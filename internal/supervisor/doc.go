// Venuelens - Booking Transaction Analytics Dashboards
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/venuelens

/*
Package supervisor provides process supervision for Venuelens using suture v4.

# Overview

	RootSupervisor ("venuelens")
	├── OpsSupervisor ("ops-layer")
	│   └── CacheResetService (SIGHUP clears the dataset and page caches)
	└── APISupervisor ("api-layer")
	    └── HTTPServerService

Crashed services are restarted with suture's backoff; failures are counted
per layer, so a misbehaving ops hook never restarts the HTTP server.
Supervisor events are logged through sutureslog into the zerolog-backed
slog adapter from internal/logging.

# Usage Example

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.DefaultTreeConfig())
	if err != nil {
	    return err
	}
	tree.AddAPIService(services.NewHTTPServerService(server, 10*time.Second))
	tree.AddOpsService(services.NewCacheResetService(hup, service))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := tree.Serve(ctx); err != nil && !errors.Is(err, context.Canceled) {
	    return err
	}
*/
package supervisor
