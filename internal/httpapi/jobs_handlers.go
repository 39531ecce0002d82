package httpapi

import (
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"sync/atomic"

	"jobtrack-engine/internal/config"
	"jobtrack-engine/internal/domain"
	"jobtrack-engine/internal/events"
	"jobtrack-engine/internal/extract"
	"jobtrack-engine/internal/store"
)

type JobsHandler struct {
	DB     *sql.DB
	Hub    *events.Hub
	Schema domain.Schema
	Build  func(ctx context.Context, url string) domain.JobRecord
	CfgVal *atomic.Value
}

type addJobRequest struct {
	URL   string `json:"url"`
	Notes string `json:"notes"`
}

type addJobResponse struct {
	Saved    bool             `json:"saved"`
	Reason   string           `json:"reason,omitempty"`
	Warnings []string         `json:"warnings,omitempty"`
	Record   domain.JobRecord `json:"record"`
	Total    int              `json:"total"`
}

func (h JobsHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	jobs, err := store.ListJobs(r.Context(), h.DB, h.Schema, store.ListOpts{
		Search:   strings.TrimSpace(q.Get("search")),
		Statuses: q["status"],
	})
	if err != nil {
		WriteError(w, r, http.StatusInternalServerError, "list_failed", err.Error())
		return
	}
	if jobs == nil {
		jobs = []store.StoredJob{}
	}
	writeJSON(w, jobs)
}

// Create runs the extraction pipeline for a submitted URL and persists the
// result. A duplicate is a 409 with the store's reason; a fetch failure is
// still a save (the record carries the explanatory note).
func (h JobsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req addJobRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, r, http.StatusBadRequest, "bad_json", "invalid JSON: "+err.Error())
		return
	}
	req.URL = strings.TrimSpace(req.URL)
	if req.URL == "" {
		WriteError(w, r, http.StatusBadRequest, "missing_url", "url is required")
		return
	}

	rec := h.Build(r.Context(), req.URL)

	if notes := strings.TrimSpace(req.Notes); notes != "" {
		if rec.Notes != "" {
			rec.Notes = rec.Notes + "\n" + notes
		} else {
			rec.Notes = notes
		}
	}

	warnings := extract.ValidateRecord(rec)

	cfg := h.CfgVal.Load().(config.Config)
	rec = extract.Sanitize(rec, h.Schema, extract.Limits{
		NotesMax: cfg.Limits.NotesMaxLen,
		FieldMax: cfg.Limits.FieldMaxLen,
	})

	inserted, reason, err := store.InsertJob(r.Context(), h.DB, h.Schema, rec)
	if err != nil {
		WriteError(w, r, http.StatusInternalServerError, "insert_failed", err.Error())
		return
	}

	total, _ := store.TotalRows(r.Context(), h.DB)
	resp := addJobResponse{
		Saved:    inserted,
		Reason:   reason,
		Warnings: warnings,
		Record:   rec,
		Total:    total,
	}

	if !inserted {
		status := http.StatusUnprocessableEntity
		if reason == store.ReasonDuplicateURL {
			status = http.StatusConflict
		}
		WriteJSON(w, status, resp)
		return
	}

	reqID := RequestIDFrom(r.Context())
	h.Hub.Publish(events.MakeEvent(reqID, events.TypeJobSaved, map[string]any{"url": rec.URL}))
	WriteJSON(w, http.StatusCreated, resp)
}

func (h JobsHandler) DeleteByPath(w http.ResponseWriter, r *http.Request) {
	idStr := strings.TrimPrefix(r.URL.Path, "/jobs/")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil || id <= 0 {
		WriteError(w, r, http.StatusBadRequest, "bad_id", "invalid id")
		return
	}

	deleted, reason, err := store.DeleteJob(r.Context(), h.DB, id)
	if err != nil {
		WriteError(w, r, http.StatusInternalServerError, "delete_failed", err.Error())
		return
	}
	if !deleted {
		WriteError(w, r, http.StatusNotFound, "not_found", reason)
		return
	}

	reqID := RequestIDFrom(r.Context())
	h.Hub.Publish(events.MakeEvent(reqID, events.TypeJobDeleted, map[string]any{"id": id}))
	writeJSON(w, map[string]any{"ok": true, "id": id})
}
