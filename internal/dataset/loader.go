// Venuelens - Booking Transaction Analytics Dashboards
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/venuelens

package dataset

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/tomtom215/venuelens/internal/cache"
	"github.com/tomtom215/venuelens/internal/logging"
	"github.com/tomtom215/venuelens/internal/metrics"
	"github.com/tomtom215/venuelens/internal/models"
	"github.com/tomtom215/venuelens/internal/warehouse"
)

// Dataset is the normalized, deduplicated result of one query text. It is
// shared between requests; neither the slice nor the records it points to
// may be modified.
type Dataset struct {
	Key      string
	Records  []*models.Record
	Stats    Stats
	LoadedAt time.Time
}

// Len returns the number of records.
func (d *Dataset) Len() int {
	return len(d.Records)
}

// Loader turns query text into a Dataset, memoizing by query text until the
// cache is invalidated.
type Loader struct {
	exec  warehouse.Executor
	cache cache.Cacher
	group singleflight.Group
}

// NewLoader creates a Loader. exec may be nil, in which case every Load
// fails with warehouse.ErrSourceUninitialized.
func NewLoader(exec warehouse.Executor, c cache.Cacher) *Loader {
	return &Loader{exec: exec, cache: c}
}

// Key returns the content-addressed cache key for query.
func Key(query string) string {
	return cache.GenerateKey("dataset", query)
}

// Load returns the Dataset for query. On a miss the query runs once, even
// when several requests miss concurrently; failures are not cached.
func (l *Loader) Load(ctx context.Context, query string) (*Dataset, error) {
	if l.exec == nil {
		return nil, warehouse.ErrSourceUninitialized
	}

	key := Key(query)
	gen := l.cache.Generation()

	// The shared query outlives any single caller; the executor's own
	// timeout still bounds it. Calls only join a load started in the same
	// cache generation, so nobody arriving after a clear gets its result.
	shared := context.WithoutCancel(ctx)
	v, err, _ := l.group.Do(fmt.Sprintf("%s@%d", key, gen), func() (interface{}, error) {
		return cache.MemoAt(l.cache, gen, key, func() (*Dataset, error) {
			return l.fetch(shared, key, query)
		})
	})
	if err != nil {
		return nil, err
	}
	return v.(*Dataset), nil
}

// Reset asks the executor to drop its connection so the next Load
// reconnects. Executors without a connection to drop are left alone.
func (l *Loader) Reset() {
	r, ok := l.exec.(interface{ Reset() error })
	if !ok {
		return
	}
	if err := r.Reset(); err != nil {
		logging.Warn().Err(err).Msg("Warehouse reset failed")
	}
}

func (l *Loader) fetch(ctx context.Context, key, query string) (*Dataset, error) {
	raw, err := l.exec.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("load dataset: %w", err)
	}

	records, stats := Normalize(raw)
	metrics.RecordDatasetLoad(stats.Kept, stats.Duplicates, stats.Unparseable)

	logging.Ctx(ctx).Debug().
		Int("raw", stats.Raw).
		Int("duplicates", stats.Duplicates).
		Int("unparseable", stats.Unparseable).
		Int("kept", stats.Kept).
		Msg("Dataset normalized")

	return &Dataset{
		Key:      key,
		Records:  records,
		Stats:    stats,
		LoadedAt: time.Now(),
	}, nil
}
