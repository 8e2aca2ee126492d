// Venuelens - Booking Transaction Analytics Dashboards
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/venuelens

package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/venuelens/internal/dashboard"
	"github.com/tomtom215/venuelens/internal/filter"
	"github.com/tomtom215/venuelens/internal/logging"
	"github.com/tomtom215/venuelens/internal/models"
)

// Pages returns the page catalog in menu order.
//
// @Summary List dashboard pages
// @Tags Pages
// @Produce json
// @Success 200 {object} models.APIResponse{data=[]models.PageInfo}
// @Router /pages [get]
func (h *Handler) Pages(w http.ResponseWriter, r *http.Request) {
	pages := h.service.Pages()
	infos := make([]models.PageInfo, 0, len(pages))
	for _, p := range pages {
		infos = append(infos, p.Info())
	}
	respondSuccess(w, infos, metadataNow())
}

// pageState resolves the page slug and the filter state a request asks
// for: the session's stored state with the request's parameters merged in.
// It writes the error response and returns ok=false on failure.
func (h *Handler) pageState(w http.ResponseWriter, r *http.Request) (slug string, req *PageRequest, st filter.State, ok bool) {
	slug = chi.URLParam(r, "page")
	if _, found := h.service.Page(slug); !found {
		respondServiceError(w, r, dashboard.ErrUnknownPage)
		return "", nil, filter.State{}, false
	}

	req = parsePageRequest(r)
	if apiErr := validateRequest(req); apiErr != nil {
		respondValidationError(w, apiErr)
		return "", nil, filter.State{}, false
	}

	stored := h.sessions.Get(logging.SessionIDFromContext(r.Context()))
	return slug, req, req.Merge(stored), true
}

// Page renders one dashboard page for the caller's session and stores the
// pruned filter state back into it.
//
// @Summary Render a dashboard page
// @Description Absent parameters keep the session's filters; an empty parameter clears that filter.
// @Tags Pages
// @Produce json
// @Param page path string true "Page slug"
// @Param start_date query string false "Range start (YYYY-MM-DD)"
// @Param end_date query string false "Range end (YYYY-MM-DD)"
// @Param date_column query string false "transaction_date or event_date"
// @Param view query string false "daily, monthly or both"
// @Success 200 {object} models.APIResponse{data=dashboard.PageResult}
// @Failure 400 {object} models.APIResponse "Invalid parameters"
// @Failure 404 {object} models.APIResponse "Unknown page"
// @Failure 502 {object} models.APIResponse "Warehouse query failed"
// @Failure 503 {object} models.APIResponse "No warehouse configured"
// @Router /pages/{page} [get]
func (h *Handler) Page(w http.ResponseWriter, r *http.Request) {
	slug, req, st, ok := h.pageState(w, r)
	if !ok {
		return
	}

	start := time.Now()
	res, err := h.service.Render(r.Context(), slug, dashboard.RenderContext{
		State:  st,
		Inputs: req.Inputs(),
	})
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	if sid := logging.SessionIDFromContext(r.Context()); sid != "" {
		h.sessions.Set(sid, res.State)
	}

	respondSuccess(w, res, models.Metadata{
		Timestamp:   time.Now(),
		QueryTimeMS: time.Since(start).Milliseconds(),
	})
}

// PageOptions returns the cascade of one page (option lists and surviving
// selections) without aggregating. The session is not updated.
//
// @Summary Filter options of a dashboard page
// @Tags Pages
// @Produce json
// @Param page path string true "Page slug"
// @Success 200 {object} models.APIResponse{data=dashboard.PageResult}
// @Router /pages/{page}/options [get]
func (h *Handler) PageOptions(w http.ResponseWriter, r *http.Request) {
	slug, _, st, ok := h.pageState(w, r)
	if !ok {
		return
	}

	res, err := h.service.Options(r.Context(), slug, st)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondSuccess(w, res, metadataNow())
}

// ClearCache drops the cached datasets and rendered pages and resets the
// caller's filter state, forcing the next render to query the warehouse.
//
// @Summary Clear caches
// @Tags Pages
// @Produce json
// @Success 200 {object} models.APIResponse{data=models.CacheClearResult}
// @Router /cache/clear [post]
func (h *Handler) ClearCache(w http.ResponseWriter, r *http.Request) {
	removed := h.service.ClearCaches()

	sid := logging.SessionIDFromContext(r.Context())
	if sid != "" {
		h.sessions.Reset(sid)
		h.sessionEvents.LogSessionReset(sid, r.RemoteAddr)
	}

	logging.Ctx(r.Context()).Info().Int("entries_removed", removed).Msg("Caches cleared")

	respondSuccess(w, models.CacheClearResult{
		Message:        dashboard.MsgCacheCleared,
		EntriesRemoved: removed,
		SessionReset:   sid != "",
	}, metadataNow())
}
