// Venuelens - Booking Transaction Analytics Dashboards
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/venuelens

// Package session keeps each dashboard session's filter state and hands out
// the session cookie that identifies it.
package session

import (
	"time"

	"github.com/google/uuid"

	"github.com/tomtom215/venuelens/internal/cache"
	"github.com/tomtom215/venuelens/internal/filter"
)

// Store holds filter state per session ID. Sessions expire after the idle
// timeout; both Get and Set count as activity.
type Store struct {
	cache *cache.Cache
}

// NewStore creates a store whose sessions end after idle without activity.
func NewStore(idle time.Duration) *Store {
	return &Store{cache: cache.New("session", idle)}
}

// NewID returns a fresh session ID.
func NewID() string {
	return uuid.New().String()
}

// ValidID reports whether id looks like an ID issued by NewID.
func ValidID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

func key(id string) string {
	return "session:" + id
}

// Get returns a copy of the session's state. Unknown and expired sessions
// get the zero State.
func (s *Store) Get(id string) filter.State {
	v, ok := s.cache.Get(key(id))
	if !ok {
		return filter.State{}
	}
	st, _ := v.(filter.State)
	s.cache.Set(key(id), st)
	return st.Clone()
}

// Set replaces the session's state.
func (s *Store) Set(id string, st filter.State) {
	s.cache.Set(key(id), st.Clone())
}

// Reset forgets the session's state.
func (s *Store) Reset(id string) {
	s.cache.Delete(key(id))
}

// Len returns the number of live sessions.
func (s *Store) Len() int {
	return s.cache.Len()
}

// Close stops the expiry sweep.
func (s *Store) Close() {
	s.cache.Close()
}
