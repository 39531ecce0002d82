package httpapi

import (
	"database/sql"
	"encoding/csv"
	"net/http"
	"strconv"
	"strings"

	"jobtrack-engine/internal/domain"
	"jobtrack-engine/internal/store"
)

type ExportHandler struct {
	DB     *sql.DB
	Schema domain.Schema
}

// ExportCSV streams the (optionally filtered) job list as CSV, same query
// params as the list endpoint.
func (h ExportHandler) ExportCSV(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	jobs, err := store.ListJobs(r.Context(), h.DB, h.Schema, store.ListOpts{
		Search:   strings.TrimSpace(q.Get("search")),
		Statuses: q["status"],
	})
	if err != nil {
		WriteError(w, r, http.StatusInternalServerError, "list_failed", err.Error())
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="jobs.csv"`)

	cw := csv.NewWriter(w)
	header := append([]string{"id", "created_at"}, h.Schema.Fields...)
	_ = cw.Write(header)
	for _, j := range jobs {
		row := append([]string{strconv.FormatInt(j.ID, 10), j.CreatedAt}, j.Values(h.Schema.Fields)...)
		_ = cw.Write(row)
	}
	cw.Flush()
}
