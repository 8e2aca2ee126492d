// Venuelens - Booking Transaction Analytics Dashboards
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/venuelens

package services

import (
	"context"
	"os"

	"github.com/tomtom215/venuelens/internal/logging"
)

// CacheClearer drops cached datasets and pages. *dashboard.Service
// satisfies it.
type CacheClearer interface {
	ClearCaches() int
}

// CacheResetService clears the caches each time trigger fires, so an
// operator can force a warehouse reload without restarting the process.
type CacheResetService struct {
	trigger <-chan os.Signal
	caches  CacheClearer
}

// NewCacheResetService creates the service. trigger is usually a channel
// registered with signal.Notify for SIGHUP.
func NewCacheResetService(trigger <-chan os.Signal, caches CacheClearer) *CacheResetService {
	return &CacheResetService{trigger: trigger, caches: caches}
}

// Serve implements suture.Service.
func (s *CacheResetService) Serve(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case sig, ok := <-s.trigger:
			if !ok {
				<-ctx.Done()
				return ctx.Err()
			}
			removed := s.caches.ClearCaches()
			logging.Info().
				Str("signal", sig.String()).
				Int("entries_removed", removed).
				Msg("Caches cleared")
		}
	}
}

// String implements fmt.Stringer for supervisor logs.
func (s *CacheResetService) String() string {
	return "cache-reset"
}
