// Venuelens - Booking Transaction Analytics Dashboards
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/venuelens

package dashboard

import (
	"context"
	"errors"
	"time"

	"github.com/tomtom215/venuelens/internal/cache"
	"github.com/tomtom215/venuelens/internal/dataset"
	"github.com/tomtom215/venuelens/internal/filter"
	"github.com/tomtom215/venuelens/internal/logging"
	"github.com/tomtom215/venuelens/internal/metrics"
)

// ErrUnknownPage is returned for a slug no page answers to.
var ErrUnknownPage = errors.New("unknown page")

// Render outcomes for metrics.
const (
	outcomeOK     = "ok"
	outcomeNoData = "no_data"
	outcomeError  = "error"
)

// Service renders pages over the dataset of one query text.
type Service struct {
	loader   *dataset.Loader
	datasets cache.Cacher
	results  cache.Cacher
	query    string
	pages    []*Page
	bySlug   map[string]*Page
}

// NewService creates a Service. datasets must be the cache the loader
// writes to; results memoizes rendered pages.
func NewService(loader *dataset.Loader, datasets, results cache.Cacher, query string, pages []*Page) *Service {
	bySlug := make(map[string]*Page, len(pages))
	for _, p := range pages {
		bySlug[p.Slug] = p
	}
	return &Service{
		loader:   loader,
		datasets: datasets,
		results:  results,
		query:    query,
		pages:    pages,
		bySlug:   bySlug,
	}
}

// Pages returns the pages in menu order.
func (s *Service) Pages() []*Page {
	return s.pages
}

// Page looks up a page by slug.
func (s *Service) Page(slug string) (*Page, bool) {
	p, ok := s.bySlug[slug]
	return p, ok
}

type resultKey struct {
	Page    string       `json:"page"`
	Dataset string       `json:"dataset"`
	State   filter.State `json:"state"`
	Inputs  Inputs       `json:"inputs"`
}

// Render loads the dataset and renders slug for rc. Results are memoized
// by page, dataset and context until ClearCaches. The returned result is
// shared and must not be modified.
func (s *Service) Render(ctx context.Context, slug string, rc RenderContext) (*PageResult, error) {
	p, ok := s.bySlug[slug]
	if !ok {
		return nil, ErrUnknownPage
	}

	start := time.Now()
	// Read before loading so a render over a dataset loaded ahead of a
	// ClearCaches is not memoized.
	gen := s.results.Generation()
	ds, err := s.loader.Load(ctx, s.query)
	if err != nil {
		metrics.RecordPageRender(slug, outcomeError, time.Since(start))
		logging.Ctx(ctx).Error().Err(err).Str("page", slug).Msg("Page render failed")
		return nil, err
	}

	in := p.inputs(rc.Inputs)
	key := cache.GenerateKey("page", resultKey{Page: slug, Dataset: ds.Key, State: rc.State, Inputs: in})
	res, err := cache.MemoAt(s.results, gen, key, func() (*PageResult, error) {
		r := p.Render(ds.Records, RenderContext{State: rc.State, Inputs: in})
		return &r, nil
	})
	if err != nil {
		metrics.RecordPageRender(slug, outcomeError, time.Since(start))
		return nil, err
	}

	outcome := outcomeOK
	if res.NoData {
		outcome = outcomeNoData
	}
	metrics.RecordPageRender(slug, outcome, time.Since(start))

	logging.Ctx(ctx).Debug().
		Str("page", slug).
		Int("rows", res.Rows).
		Bool("no_data", res.NoData).
		Dur("duration", time.Since(start)).
		Msg("Page rendered")
	return res, nil
}

// Options runs only the cascade of slug, returning option lists and the
// pruned state without aggregating.
func (s *Service) Options(ctx context.Context, slug string, st filter.State) (*PageResult, error) {
	p, ok := s.bySlug[slug]
	if !ok {
		return nil, ErrUnknownPage
	}
	ds, err := s.loader.Load(ctx, s.query)
	if err != nil {
		return nil, err
	}
	_, res := p.Filter(ds.Records, st)
	return &res, nil
}

// ClearCaches drops every cached dataset and rendered page so the next
// render queries the warehouse again over a fresh connection. It returns
// the number of entries removed.
func (s *Service) ClearCaches() int {
	removed := s.datasets.GetStats().TotalKeys + s.results.GetStats().TotalKeys
	s.datasets.InvalidateAll()
	s.results.InvalidateAll()
	s.loader.Reset()
	return int(removed)
}
