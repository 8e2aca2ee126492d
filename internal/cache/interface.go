// Venuelens - Booking Transaction Analytics Dashboards
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/venuelens

package cache

import "fmt"

// Cacher defines the interface the dataset loader, page memoization and
// session store depend on.
type Cacher interface {
	// Get retrieves a value from the cache.
	// Returns the value and true if found and not expired.
	Get(key string) (interface{}, bool)

	// Set stores a value in the cache.
	Set(key string, value interface{})

	// Delete removes a value from the cache.
	Delete(key string)

	// InvalidateAll removes all entries from the cache and starts a new
	// generation.
	InvalidateAll()

	// Generation returns the current invalidation generation.
	Generation() uint64

	// SetIfGeneration stores a value only while gen is still current.
	SetIfGeneration(gen uint64, key string, value interface{}) bool

	// GetStats returns cache statistics.
	GetStats() Stats

	// HitRate returns the cache hit rate as a percentage.
	HitRate() float64
}

var _ Cacher = (*Cache)(nil)

// Memo returns the value cached under key, computing and storing it on a miss.
// Errors from compute are returned as-is and nothing is stored, so a failed
// computation is retried on the next call rather than memoized. A value whose
// computation overlapped an InvalidateAll is returned but not stored.
//
//	ds, err := cache.Memo(c, cache.GenerateKey("dataset", query), func() (dataset.Dataset, error) {
//	    return loader.fetch(ctx, query)
//	})
func Memo[T any](c Cacher, key string, compute func() (T, error)) (T, error) {
	return MemoAt(c, c.Generation(), key, compute)
}

// MemoAt is Memo for callers whose inputs were read before the cache
// lookup. gen must be read before those inputs; if the cache was
// invalidated since, the result is returned but not stored.
func MemoAt[T any](c Cacher, gen uint64, key string, compute func() (T, error)) (T, error) {
	if v, ok := c.Get(key); ok {
		if typed, ok := v.(T); ok {
			return typed, nil
		}
		var zero T
		return zero, fmt.Errorf("cache entry %s holds %T", key, v)
	}

	v, err := compute()
	if err != nil {
		return v, err
	}
	c.SetIfGeneration(gen, key, v)
	return v, nil
}
