// Venuelens - Booking Transaction Analytics Dashboards
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/venuelens

package dashboard

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/tomtom215/venuelens/internal/cache"
	"github.com/tomtom215/venuelens/internal/dataset"
	"github.com/tomtom215/venuelens/internal/filter"
	"github.com/tomtom215/venuelens/internal/metrics"
	"github.com/tomtom215/venuelens/internal/warehouse"
)

type stubExecutor struct {
	rows   []warehouse.RawRecord
	err    error
	delay  time.Duration
	calls  atomic.Int32
	resets atomic.Int32
}

func (s *stubExecutor) Query(context.Context, string) ([]warehouse.RawRecord, error) {
	s.calls.Add(1)
	if s.delay > 0 {
		time.Sleep(s.delay)
	}
	return s.rows, s.err
}

func (s *stubExecutor) Reset() error {
	s.resets.Add(1)
	return nil
}

func rawBooking(visit, email, corp, epoch, serviceDate, charge string) warehouse.RawRecord {
	return warehouse.RawRecord{
		FBVisitID:             warehouse.Text(visit),
		FBEmail:               warehouse.Text(email),
		FBCreateServiceTstamp: warehouse.Text(epoch),
		FBServiceDate:         warehouse.Text(serviceDate),
		FBChargeAmount:        warehouse.Text(charge),
		VNCorporateEntityName: warehouse.Text(corp),
		VNVenueName:           warehouse.Text("Pier 9"),
	}
}

func newTestService(exec warehouse.Executor) *Service {
	datasets := cache.New("dataset-test", 0)
	results := cache.New("page-test", 0)
	return NewService(dataset.NewLoader(exec, datasets), datasets, results, "SELECT 1", DefaultPages())
}

func stubRows() []warehouse.RawRecord {
	return []warehouse.RawRecord{
		rawBooking("V1", "ann@example.com", "Harborview", "1704103200", "02/01/2024", "100"), // 2024-01-01 10:00
		rawBooking("V2", "ann@example.com", "Harborview", "1707127200", "03/05/2024", "50"),  // 2024-02-05 10:00
		rawBooking("V3", "bob@example.com", "Summit", "1707213600", "03/06/2024", "25"),      // 2024-02-06 10:00
	}
}

func TestServiceRenderMemoizes(t *testing.T) {
	t.Parallel()

	exec := &stubExecutor{rows: stubRows()}
	svc := newTestService(exec)
	ctx := context.Background()

	first, err := svc.Render(ctx, SlugTransactions, RenderContext{})
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if first.Rows != 3 || first.NoData {
		t.Fatalf("Render() = %d rows, no_data %v", first.Rows, first.NoData)
	}

	second, err := svc.Render(ctx, SlugTransactions, RenderContext{Inputs: Inputs{View: ViewBoth}})
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if second != first {
		t.Error("equal render contexts should share the memoized result")
	}

	other, err := svc.Render(ctx, SlugSeasonal, RenderContext{})
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if other == first {
		t.Error("different pages must not share results")
	}
	if got := exec.calls.Load(); got != 1 {
		t.Errorf("warehouse queried %d times, want 1", got)
	}

	if removed := svc.ClearCaches(); removed != 3 {
		t.Errorf("ClearCaches() removed %d entries, want 3", removed)
	}
	if _, err := svc.Render(ctx, SlugTransactions, RenderContext{}); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if got := exec.calls.Load(); got != 2 {
		t.Errorf("after ClearCaches warehouse queried %d times, want 2", got)
	}
}

func TestServiceClearDuringRenderIsNotLost(t *testing.T) {
	t.Parallel()

	exec := &stubExecutor{rows: stubRows(), delay: 200 * time.Millisecond}
	svc := newTestService(exec)
	ctx := context.Background()

	done := make(chan error, 1)
	go func() {
		_, err := svc.Render(ctx, SlugTransactions, RenderContext{})
		done <- err
	}()
	time.Sleep(50 * time.Millisecond)
	svc.ClearCaches()
	if err := <-done; err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	// The render straddled the clear, so neither its dataset nor its page
	// may be served afterwards.
	if _, err := svc.Render(ctx, SlugTransactions, RenderContext{}); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if got := exec.calls.Load(); got != 2 {
		t.Errorf("warehouse queried %d times after clear, want 2", got)
	}
	if _, err := svc.Render(ctx, SlugTransactions, RenderContext{}); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if got := exec.calls.Load(); got != 2 {
		t.Errorf("post-clear result was not memoized: %d queries, want 2", got)
	}
}

func TestServiceClearCachesResetsExecutor(t *testing.T) {
	t.Parallel()

	exec := &stubExecutor{rows: stubRows()}
	svc := newTestService(exec)

	svc.ClearCaches()
	svc.ClearCaches()
	if got := exec.resets.Load(); got != 2 {
		t.Errorf("executor reset %d times, want 2", got)
	}
}

func TestServiceRenderNoDataMetric(t *testing.T) {
	t.Parallel()

	svc := newTestService(&stubExecutor{rows: stubRows()})
	before := testutil.ToFloat64(metrics.PageRenders.WithLabelValues(SlugDayOfWeek, outcomeNoData))

	st := filter.State{}.WithSelection(filter.KeyCorporateEntity, []string{"Nobody"})
	res, err := svc.Render(context.Background(), SlugDayOfWeek, RenderContext{State: st})
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	// The unknown selection is pruned, so the page renders everything.
	if res.NoData || res.Rows != 3 || res.FiltersSelected {
		t.Errorf("Render() = %+v", res)
	}

	st = filter.State{DateRange: []time.Time{ts(2030, 1, 1), ts(2030, 2, 1)}}
	res, err = svc.Render(context.Background(), SlugDayOfWeek, RenderContext{State: st})
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if !res.NoData {
		t.Error("expected no data")
	}
	after := testutil.ToFloat64(metrics.PageRenders.WithLabelValues(SlugDayOfWeek, outcomeNoData))
	if after-before < 1 {
		t.Errorf("no_data renders = %v, want at least one more than %v", after, before)
	}
}

func TestServiceErrors(t *testing.T) {
	t.Parallel()

	svc := newTestService(&stubExecutor{err: warehouse.ErrQueryFailed})
	if _, err := svc.Render(context.Background(), "nope", RenderContext{}); !errors.Is(err, ErrUnknownPage) {
		t.Errorf("unknown page error = %v", err)
	}
	if _, err := svc.Render(context.Background(), SlugSeasonal, RenderContext{}); !errors.Is(err, warehouse.ErrQueryFailed) {
		t.Errorf("query error = %v, want ErrQueryFailed", err)
	}
	if _, err := svc.Options(context.Background(), SlugSeasonal, filter.State{}); !errors.Is(err, warehouse.ErrQueryFailed) {
		t.Errorf("Options() error = %v, want ErrQueryFailed", err)
	}

	uninit := newTestService(nil)
	if _, err := uninit.Render(context.Background(), SlugSeasonal, RenderContext{}); !errors.Is(err, warehouse.ErrSourceUninitialized) {
		t.Errorf("nil executor error = %v", err)
	}
}

func TestServiceOptions(t *testing.T) {
	t.Parallel()

	svc := newTestService(&stubExecutor{rows: stubRows()})
	st := filter.State{}.WithSelection(filter.KeyCorporateEntity, []string{"Summit"})

	res, err := svc.Options(context.Background(), SlugRepeatBookings, st)
	if err != nil {
		t.Fatalf("Options() error = %v", err)
	}
	if len(res.Charts) != 0 {
		t.Error("Options() should not aggregate")
	}
	corp := res.Filters[0]
	if corp.Key != "corporate_entity" || len(corp.Options) != 2 || corp.Selected[0] != "Summit" {
		t.Errorf("corporate widget = %+v", corp)
	}
	if res.Rows != 1 {
		t.Errorf("rows = %d, want 1", res.Rows)
	}
}
