// Venuelens - Booking Transaction Analytics Dashboards
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/venuelens

package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/venuelens/internal/cache"
	"github.com/tomtom215/venuelens/internal/dashboard"
	"github.com/tomtom215/venuelens/internal/dataset"
	"github.com/tomtom215/venuelens/internal/filter"
	"github.com/tomtom215/venuelens/internal/models"
	"github.com/tomtom215/venuelens/internal/session"
	"github.com/tomtom215/venuelens/internal/warehouse"
)

const testCookie = "venuelens_test"

type stubExecutor struct {
	rows  []warehouse.RawRecord
	err   error
	calls atomic.Int32
}

func (s *stubExecutor) Query(context.Context, string) ([]warehouse.RawRecord, error) {
	s.calls.Add(1)
	return s.rows, s.err
}

type stubWarehouse struct {
	pingErr error
}

func (s stubWarehouse) Ping(context.Context) error { return s.pingErr }
func (s stubWarehouse) Driver() string             { return "duckdb" }
func (s stubWarehouse) CircuitState() string       { return "closed" }

func booking(visit, corp, epoch, serviceDate, charge string) warehouse.RawRecord {
	return warehouse.RawRecord{
		FBVisitID:             warehouse.Text(visit),
		FBEmail:               warehouse.Text(visit + "@example.com"),
		FBCreateServiceTstamp: warehouse.Text(epoch),
		FBServiceDate:         warehouse.Text(serviceDate),
		FBChargeAmount:        warehouse.Text(charge),
		VNCorporateEntityName: warehouse.Text(corp),
		VNVenueName:           warehouse.Text("Pier 9"),
	}
}

func stubRows() []warehouse.RawRecord {
	return []warehouse.RawRecord{
		booking("V1", "Harborview", "1704103200", "02/01/2024", "100"), // 2024-01-01
		booking("V2", "Harborview", "1707127200", "03/05/2024", "50"),  // 2024-02-05
		booking("V3", "Summit", "1707213600", "03/06/2024", "25"),      // 2024-02-06
	}
}

type testServer struct {
	handler  http.Handler
	sessions *session.Store
}

func newTestServer(t *testing.T, exec warehouse.Executor, wh WarehouseStatus) *testServer {
	t.Helper()

	datasets := cache.New("dataset-api-test", 0)
	results := cache.New("page-api-test", 0)
	sessions := session.NewStore(time.Hour)
	t.Cleanup(func() {
		datasets.Close()
		results.Close()
		sessions.Close()
	})

	svc := dashboard.NewService(dataset.NewLoader(exec, datasets), datasets, results, "SELECT 1", dashboard.DefaultPages())
	chiMW := NewChiMiddlewareFromSecurity(nil, 100, time.Minute, true)
	router := NewRouter(NewHandler(svc, sessions, wh, "test"), chiMW, session.Cookies{Name: testCookie, MaxAge: time.Hour})
	return &testServer{handler: router.SetupChi(), sessions: sessions}
}

// do performs a request, sending cookie when non-nil, and returns the
// recorder together with the session cookie the response carried.
func (s *testServer) do(t *testing.T, method, target string, cookie *http.Cookie) (*httptest.ResponseRecorder, *http.Cookie) {
	t.Helper()
	req := httptest.NewRequest(method, target, nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)

	for _, c := range rec.Result().Cookies() {
		if c.Name == testCookie {
			return rec, c
		}
	}
	return rec, nil
}

type envelope[T any] struct {
	Status string           `json:"status"`
	Data   T                `json:"data"`
	Error  *models.APIError `json:"error"`
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) envelope[T] {
	t.Helper()
	var env envelope[T]
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode response: %v\nbody: %s", err, rec.Body.String())
	}
	return env
}

func TestPagesCatalog(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t, &stubExecutor{rows: stubRows()}, nil)
	rec, cookie := srv.do(t, http.MethodGet, "/api/v1/pages", nil)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if cookie == nil || !session.ValidID(cookie.Value) {
		t.Errorf("expected a session cookie, got %v", cookie)
	}
	env := decode[[]models.PageInfo](t, rec)
	if len(env.Data) != 4 || env.Data[0].Slug != dashboard.SlugTransactions {
		t.Errorf("catalog = %+v", env.Data)
	}
	if rec.Header().Get("X-Content-Type-Options") != "nosniff" {
		t.Error("security headers missing")
	}
}

func TestPageRenderAndSessionState(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t, &stubExecutor{rows: stubRows()}, nil)
	base := "/api/v1/pages/" + dashboard.SlugTransactions

	rec, cookie := srv.do(t, http.MethodGet, base+"?corporate_entity=Harborview", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	env := decode[dashboard.PageResult](t, rec)
	if env.Data.Rows != 2 || !env.Data.FiltersSelected {
		t.Fatalf("filtered render = %d rows, filters_selected %v", env.Data.Rows, env.Data.FiltersSelected)
	}

	// Absent parameters keep the stored selection.
	rec, _ = srv.do(t, http.MethodGet, base, cookie)
	if got := decode[dashboard.PageResult](t, rec).Data.Rows; got != 2 {
		t.Errorf("render without params = %d rows, want stored filter (2)", got)
	}

	// The selection carries across pages of the same session.
	rec, _ = srv.do(t, http.MethodGet, "/api/v1/pages/"+dashboard.SlugSeasonal, cookie)
	if got := decode[dashboard.PageResult](t, rec).Data.Rows; got != 2 {
		t.Errorf("other page = %d rows, want 2", got)
	}

	// An explicit empty parameter clears it.
	rec, _ = srv.do(t, http.MethodGet, base+"?corporate_entity=", cookie)
	if got := decode[dashboard.PageResult](t, rec).Data.Rows; got != 3 {
		t.Errorf("cleared filter = %d rows, want 3", got)
	}

	// A fresh session starts unfiltered.
	rec, _ = srv.do(t, http.MethodGet, base, nil)
	if got := decode[dashboard.PageResult](t, rec).Data.Rows; got != 3 {
		t.Errorf("new session = %d rows, want 3", got)
	}
}

func TestPageDateRangeAndNoData(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t, &stubExecutor{rows: stubRows()}, nil)
	base := "/api/v1/pages/" + dashboard.SlugTransactions

	rec, cookie := srv.do(t, http.MethodGet, base+"?start_date=2024-02-01&end_date=2024-02-05", nil)
	env := decode[dashboard.PageResult](t, rec)
	if env.Data.Rows != 1 {
		t.Errorf("inclusive range = %d rows, want 1", env.Data.Rows)
	}
	if env.Data.FiltersSelected {
		t.Error("a date range alone should not set filters_selected")
	}

	rec, _ = srv.do(t, http.MethodGet, base+"?start_date=2030-01-01&end_date=2030-12-31", cookie)
	env = decode[dashboard.PageResult](t, rec)
	if rec.Code != http.StatusOK || !env.Data.NoData || env.Data.Message != dashboard.MsgNoData {
		t.Errorf("no-data render = %d %+v", rec.Code, env.Data)
	}
	if len(env.Data.Charts) != 0 {
		t.Error("no-data render should not carry charts")
	}

	rec, _ = srv.do(t, http.MethodGet, base+"?start_date=&end_date=", cookie)
	if got := decode[dashboard.PageResult](t, rec).Data.Rows; got != 3 {
		t.Errorf("cleared range = %d rows, want 3", got)
	}

	// A single bound is a partial selection and leaves the data unfiltered.
	srv.do(t, http.MethodGet, base+"?start_date=2024-02-01&end_date=2024-02-05", cookie)
	rec, _ = srv.do(t, http.MethodGet, base+"?start_date=2024-02-01", cookie)
	if rec.Code != http.StatusOK {
		t.Fatalf("partial range status = %d, want 200", rec.Code)
	}
	if got := decode[dashboard.PageResult](t, rec).Data.Rows; got != 3 {
		t.Errorf("partial range = %d rows, want 3", got)
	}
}

func TestPageErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		exec       warehouse.Executor
		target     string
		wantStatus int
		wantCode   string
		wantMsg    string
	}{
		{
			name:       "unknown page",
			exec:       &stubExecutor{rows: stubRows()},
			target:     "/api/v1/pages/nope",
			wantStatus: http.StatusNotFound,
			wantCode:   CodeNotFound,
		},
		{
			name:       "bad date",
			exec:       &stubExecutor{rows: stubRows()},
			target:     "/api/v1/pages/seasonal?start_date=2024-13-01&end_date=2024-12-31",
			wantStatus: http.StatusBadRequest,
			wantCode:   CodeValidation,
		},
		{
			name:       "bad view",
			exec:       &stubExecutor{rows: stubRows()},
			target:     "/api/v1/pages/transactions-over-time?view=weekly",
			wantStatus: http.StatusBadRequest,
			wantCode:   CodeValidation,
		},
		{
			name:       "bad date column",
			exec:       &stubExecutor{rows: stubRows()},
			target:     "/api/v1/pages/seasonal?date_column=created_at",
			wantStatus: http.StatusBadRequest,
			wantCode:   CodeValidation,
		},
		{
			name:       "query failed",
			exec:       &stubExecutor{err: fmt.Errorf("%w: connection reset", warehouse.ErrQueryFailed)},
			target:     "/api/v1/pages/seasonal",
			wantStatus: http.StatusBadGateway,
			wantCode:   CodeQueryFailed,
			wantMsg:    dashboard.MsgQueryFailed + ": ",
		},
		{
			name:       "no executor",
			exec:       nil,
			target:     "/api/v1/pages/seasonal",
			wantStatus: http.StatusServiceUnavailable,
			wantCode:   CodeSourceUninitialized,
			wantMsg:    "Session is not initialized.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			srv := newTestServer(t, tt.exec, nil)
			rec, _ := srv.do(t, http.MethodGet, tt.target, nil)
			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d; body %s", rec.Code, tt.wantStatus, rec.Body.String())
			}
			env := decode[json.RawMessage](t, rec)
			if env.Status != "error" || env.Error == nil || env.Error.Code != tt.wantCode {
				t.Fatalf("error = %+v, want code %s", env.Error, tt.wantCode)
			}
			if tt.wantMsg != "" && !strings.HasPrefix(env.Error.Message, tt.wantMsg) {
				t.Errorf("message = %q, want prefix %q", env.Error.Message, tt.wantMsg)
			}
		})
	}
}

func TestValidationErrorKeepsSession(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t, &stubExecutor{rows: stubRows()}, nil)
	base := "/api/v1/pages/" + dashboard.SlugTransactions

	_, cookie := srv.do(t, http.MethodGet, base+"?corporate_entity=Summit", nil)
	rec, _ := srv.do(t, http.MethodGet, base+"?view=weekly&corporate_entity=", cookie)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}

	st := srv.sessions.Get(cookie.Value)
	if got := st.Selection(filter.KeyCorporateEntity); len(got) != 1 || got[0] != "Summit" {
		t.Errorf("rejected request changed the session: %v", got)
	}
}

func TestPageOptionsDoesNotStoreState(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t, &stubExecutor{rows: stubRows()}, nil)
	rec, cookie := srv.do(t, http.MethodGet, "/api/v1/pages/seasonal/options?corporate_entity=Summit", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	env := decode[dashboard.PageResult](t, rec)
	if len(env.Data.Charts) != 0 || len(env.Data.Tables) != 0 {
		t.Error("options should not aggregate")
	}
	if len(env.Data.Filters) == 0 || env.Data.Filters[0].Key != string(filter.KeyCorporateEntity) {
		t.Fatalf("filters = %+v", env.Data.Filters)
	}
	if got := env.Data.Filters[0].Options; len(got) != 2 {
		t.Errorf("corporate options = %v, want both entities", got)
	}
	if sel := srv.sessions.Get(cookie.Value).Selected; len(sel) != 0 {
		t.Errorf("options stored session state %v", sel)
	}
}

func TestClearCache(t *testing.T) {
	t.Parallel()

	exec := &stubExecutor{rows: stubRows()}
	srv := newTestServer(t, exec, nil)
	page := "/api/v1/pages/" + dashboard.SlugTransactions

	_, cookie := srv.do(t, http.MethodGet, page+"?corporate_entity=Summit", nil)
	srv.do(t, http.MethodGet, page, cookie)
	if got := exec.calls.Load(); got != 1 {
		t.Fatalf("warehouse queried %d times before clear, want 1", got)
	}

	rec, _ := srv.do(t, http.MethodPost, "/api/v1/cache/clear", cookie)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	env := decode[models.CacheClearResult](t, rec)
	if env.Data.Message != "Cache cleared successfully!" || env.Data.EntriesRemoved < 2 || !env.Data.SessionReset {
		t.Errorf("clear result = %+v", env.Data)
	}

	rec, _ = srv.do(t, http.MethodGet, page, cookie)
	if got := exec.calls.Load(); got != 2 {
		t.Errorf("warehouse queried %d times after clear, want 2", got)
	}
	if got := decode[dashboard.PageResult](t, rec).Data.Rows; got != 3 {
		t.Errorf("render after clear = %d rows, want session reset to all 3", got)
	}
}

func TestClearCacheRejectsGet(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t, &stubExecutor{}, nil)
	rec, _ := srv.do(t, http.MethodGet, "/api/v1/cache/clear", nil)
	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want 405", rec.Code)
	}
}

func TestHealth(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		wh            WarehouseStatus
		wantStatus    string
		wantConnected bool
		wantReady     int
	}{
		{"connected", stubWarehouse{}, "healthy", true, http.StatusOK},
		{"ping fails", stubWarehouse{pingErr: errors.New("down")}, "degraded", false, http.StatusServiceUnavailable},
		{"no warehouse", nil, "degraded", false, http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			srv := newTestServer(t, &stubExecutor{}, tt.wh)

			rec, _ := srv.do(t, http.MethodGet, "/api/v1/health", nil)
			if rec.Code != http.StatusOK {
				t.Fatalf("health status = %d", rec.Code)
			}
			env := decode[models.HealthStatus](t, rec)
			if env.Data.Status != tt.wantStatus || env.Data.WarehouseConnected != tt.wantConnected {
				t.Errorf("health = %+v", env.Data)
			}
			if env.Data.Version != "test" {
				t.Errorf("version = %q", env.Data.Version)
			}

			rec, _ = srv.do(t, http.MethodGet, "/api/v1/health/ready", nil)
			if rec.Code != tt.wantReady {
				t.Errorf("ready status = %d, want %d", rec.Code, tt.wantReady)
			}

			rec, _ = srv.do(t, http.MethodGet, "/api/v1/health/live", nil)
			if rec.Code != http.StatusOK {
				t.Errorf("live status = %d", rec.Code)
			}
		})
	}
}

func TestMetricsEndpoint(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t, &stubExecutor{rows: stubRows()}, nil)
	srv.do(t, http.MethodGet, "/api/v1/pages", nil)

	rec, _ := srv.do(t, http.MethodGet, "/metrics", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "api_requests_total") {
		t.Error("metrics output missing API request counter")
	}
}

func TestCompressionNegotiated(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t, &stubExecutor{rows: stubRows()}, nil)
	req := httptest.NewRequest(http.MethodGet, "/api/v1/pages", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rec := httptest.NewRecorder()
	srv.handler.ServeHTTP(rec, req)

	if rec.Header().Get("Content-Encoding") != "gzip" {
		t.Error("expected gzip response")
	}
}
