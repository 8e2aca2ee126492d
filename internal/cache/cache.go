// Venuelens - Booking Transaction Analytics Dashboards
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/venuelens

package cache

import (
	"crypto/sha256"
	"fmt"
	"sync"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/venuelens/internal/metrics"
)

// Entry represents a cached item. A zero ExpiresAt never expires.
type Entry struct {
	Data      interface{}
	ExpiresAt time.Time
}

func (e Entry) expired(now time.Time) bool {
	return !e.ExpiresAt.IsZero() && now.After(e.ExpiresAt)
}

// Cache provides a thread-safe in-memory content-addressed store.
//
// With a ttl of zero the cache is a pure memo: entries live until
// InvalidateAll and there is no background goroutine. With a positive ttl
// entries expire after ttl since their last Set and a cleanup loop removes
// them every sweep interval until Close is called.
//
// Every InvalidateAll starts a new generation. SetIfGeneration refuses
// values computed in an earlier one, so a load that straddles a clear
// cannot repopulate the cache with pre-clear data.
type Cache struct {
	name    string
	mu      sync.RWMutex
	entries map[string]Entry
	gen     uint64
	ttl     time.Duration
	statsMu sync.RWMutex
	stats   Stats
	stop    chan struct{}
	once    sync.Once
}

// Stats tracks cache performance metrics
type Stats struct {
	Hits          int64
	Misses        int64
	Evictions     int64
	Invalidations int64
	TotalKeys     int64
	LastCleanup   time.Time
}

// New creates a cache named for metrics labelling.
//
// Example:
//
//	datasets := cache.New("dataset", 0)               // memo, no expiry
//	sessions := cache.New("session", 30*time.Minute)  // idle expiry
//	datasets.Set(cache.GenerateKey("dataset", query), ds)
//	if data, ok := datasets.Get(key); ok {
//	    // Use cached data
//	}
func New(name string, ttl time.Duration) *Cache {
	c := &Cache{
		name:    name,
		entries: make(map[string]Entry),
		ttl:     ttl,
		stop:    make(chan struct{}),
		stats: Stats{
			LastCleanup: time.Now(),
		},
	}

	if ttl > 0 {
		go c.cleanupLoop(sweepInterval(ttl))
	}

	return c
}

// sweepInterval caps the cleanup cadence at five minutes
func sweepInterval(ttl time.Duration) time.Duration {
	if ttl < 5*time.Minute {
		return ttl
	}
	return 5 * time.Minute
}

// Name returns the metrics label of the cache.
func (c *Cache) Name() string {
	return c.name
}

// Get retrieves a value from the cache by key.
//
// Returns (nil, false) if the key doesn't exist or has expired; expired
// entries are removed and counted as evictions.
func (c *Cache) Get(key string) (interface{}, bool) {
	c.mu.RLock()
	entry, exists := c.entries[key]
	c.mu.RUnlock()

	if !exists {
		c.recordMiss()
		return nil, false
	}

	if entry.expired(time.Now()) {
		c.mu.Lock()
		delete(c.entries, key)
		c.mu.Unlock()
		c.recordMiss()
		c.recordEviction()
		return nil, false
	}

	c.recordHit()
	return entry.Data, true
}

// Set stores a value, overwriting any existing entry with the same key.
// For TTL caches the expiry is reset, which makes the TTL an idle timeout.
func (c *Cache) Set(key string, value interface{}) {
	entry := Entry{Data: value}
	if c.ttl > 0 {
		entry.ExpiresAt = time.Now().Add(c.ttl)
	}

	c.mu.Lock()
	c.entries[key] = entry
	size := len(c.entries)
	c.mu.Unlock()

	c.recordSize(size)
}

// Generation returns the current invalidation generation.
func (c *Cache) Generation() uint64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.gen
}

// SetIfGeneration stores value only if no InvalidateAll happened since gen
// was read. It reports whether the value was stored.
func (c *Cache) SetIfGeneration(gen uint64, key string, value interface{}) bool {
	entry := Entry{Data: value}
	if c.ttl > 0 {
		entry.ExpiresAt = time.Now().Add(c.ttl)
	}

	c.mu.Lock()
	if c.gen != gen {
		c.mu.Unlock()
		return false
	}
	c.entries[key] = entry
	size := len(c.entries)
	c.mu.Unlock()

	c.recordSize(size)
	return true
}

// Delete removes a specific cache entry by key.
func (c *Cache) Delete(key string) {
	c.mu.Lock()
	delete(c.entries, key)
	size := len(c.entries)
	c.mu.Unlock()

	c.recordSize(size)
}

// InvalidateAll removes every entry in a single atomic operation.
//
// This is the only invalidation the memo caches support: the operator's
// clear-cache action forces a full re-fetch and recomputation on next access.
func (c *Cache) InvalidateAll() {
	c.mu.Lock()
	c.entries = make(map[string]Entry)
	c.gen++
	c.mu.Unlock()

	c.statsMu.Lock()
	c.stats.Invalidations++
	c.stats.TotalKeys = 0
	c.statsMu.Unlock()

	metrics.CacheInvalidations.WithLabelValues(c.name).Inc()
	metrics.CacheSize.WithLabelValues(c.name).Set(0)
}

// Len returns the number of entries, including expired ones not yet swept.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// GetStats returns a snapshot of current cache performance statistics.
func (c *Cache) GetStats() Stats {
	c.statsMu.RLock()
	defer c.statsMu.RUnlock()

	return c.stats
}

// HitRate returns the cache hit rate as a percentage
func (c *Cache) HitRate() float64 {
	stats := c.GetStats()
	total := stats.Hits + stats.Misses
	if total == 0 {
		return 0.0
	}
	return float64(stats.Hits) / float64(total) * 100.0
}

// Close stops the cleanup loop. Safe to call more than once.
func (c *Cache) Close() {
	c.once.Do(func() { close(c.stop) })
}

func (c *Cache) cleanupLoop(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			c.cleanup()
		case <-c.stop:
			return
		}
	}
}

// cleanup removes all expired entries
func (c *Cache) cleanup() {
	now := time.Now()
	c.mu.Lock()
	evictions := int64(0)
	for key, entry := range c.entries {
		if entry.expired(now) {
			delete(c.entries, key)
			evictions++
		}
	}
	size := len(c.entries)
	c.mu.Unlock()

	c.statsMu.Lock()
	c.stats.Evictions += evictions
	c.stats.TotalKeys = int64(size)
	c.stats.LastCleanup = now
	c.statsMu.Unlock()

	metrics.CacheEvictions.WithLabelValues(c.name).Add(float64(evictions))
	metrics.CacheSize.WithLabelValues(c.name).Set(float64(size))
}

func (c *Cache) recordHit() {
	c.statsMu.Lock()
	c.stats.Hits++
	c.statsMu.Unlock()
	metrics.CacheHits.WithLabelValues(c.name).Inc()
}

func (c *Cache) recordMiss() {
	c.statsMu.Lock()
	c.stats.Misses++
	c.statsMu.Unlock()
	metrics.CacheMisses.WithLabelValues(c.name).Inc()
}

func (c *Cache) recordEviction() {
	c.statsMu.Lock()
	c.stats.Evictions++
	c.statsMu.Unlock()
	metrics.CacheEvictions.WithLabelValues(c.name).Inc()
}

func (c *Cache) recordSize(size int) {
	c.statsMu.Lock()
	c.stats.TotalKeys = int64(size)
	c.statsMu.Unlock()
	metrics.CacheSize.WithLabelValues(c.name).Set(float64(size))
}

// GenerateKey creates a content-addressed key from a prefix and the
// JSON encoding of params. Equal params always produce equal keys.
func GenerateKey(prefix string, params interface{}) string {
	data, err := json.Marshal(params)
	if err != nil {
		// Fallback to simple string key
		return fmt.Sprintf("%s:%v", prefix, params)
	}

	hash := sha256.Sum256(data)
	return fmt.Sprintf("%s:%x", prefix, hash[:16])
}
