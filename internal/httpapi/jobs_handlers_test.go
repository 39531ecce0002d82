package httpapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strconv"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobtrack-engine/internal/config"
	"jobtrack-engine/internal/domain"
	"jobtrack-engine/internal/events"
	"jobtrack-engine/internal/store"
)

func newTestMux(t *testing.T, build func(ctx context.Context, url string) domain.JobRecord) *http.ServeMux {
	t.Helper()

	db, err := store.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	schema := domain.DefaultSchema()
	require.NoError(t, store.Migrate(db.Pool, schema))

	cfg, _ := config.NormalizeAndValidate(config.Config{})
	var cfgVal atomic.Value
	cfgVal.Store(cfg)

	return NewMux(Deps{
		DB:     db.Pool,
		Hub:    events.NewHub(),
		Schema: schema,
		Build:  build,
		CfgVal: &cfgVal,
	})
}

func stubBuild(ctx context.Context, url string) domain.JobRecord {
	return domain.JobRecord{
		Source:  "URL",
		URL:     url,
		Company: "Acme",
		Title:   "Engineer",
		Status:  "Saved",
	}
}

func postJob(t *testing.T, mux *http.ServeMux, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/jobs", strings.NewReader(body))
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)
	return w
}

func TestCreateJob(t *testing.T) {
	mux := newTestMux(t, stubBuild)

	w := postJob(t, mux, `{"url":"https://example.com/1","notes":"looks good"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		Saved  bool             `json:"saved"`
		Record domain.JobRecord `json:"record"`
		Total  int              `json:"total"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Saved)
	assert.Equal(t, "Acme", resp.Record.Company)
	assert.Equal(t, "looks good", resp.Record.Notes)
	assert.Equal(t, 1, resp.Total)
}

func TestCreateJobDuplicate(t *testing.T) {
	mux := newTestMux(t, stubBuild)

	require.Equal(t, http.StatusCreated, postJob(t, mux, `{"url":"https://example.com/1"}`).Code)

	w := postJob(t, mux, `{"url":"https://example.com/1"}`)
	require.Equal(t, http.StatusConflict, w.Code)

	var resp struct {
		Saved  bool   `json:"saved"`
		Reason string `json:"reason"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Saved)
	assert.Equal(t, store.ReasonDuplicateURL, resp.Reason)
}

func TestCreateJobMissingURL(t *testing.T) {
	mux := newTestMux(t, stubBuild)
	assert.Equal(t, http.StatusBadRequest, postJob(t, mux, `{"notes":"no url"}`).Code)
	assert.Equal(t, http.StatusBadRequest, postJob(t, mux, `{{{`).Code)
}

func TestCreateJobFetchFailureStillSaves(t *testing.T) {
	failed := func(ctx context.Context, url string) domain.JobRecord {
		return domain.JobRecord{
			Source: "URL",
			URL:    url,
			Notes:  "Fetch error: request failed: connection refused",
			Status: "Saved",
		}
	}
	mux := newTestMux(t, failed)

	w := postJob(t, mux, `{"url":"https://unreachable.test/job"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		Saved  bool             `json:"saved"`
		Record domain.JobRecord `json:"record"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Saved, "best-effort record is saved despite the fetch failure")
	assert.True(t, strings.HasPrefix(resp.Record.Notes, "Fetch error:"))
}

func TestListAndDeleteJob(t *testing.T) {
	mux := newTestMux(t, stubBuild)
	require.Equal(t, http.StatusCreated, postJob(t, mux, `{"url":"https://example.com/1"}`).Code)

	w := httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/jobs", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var jobs []store.StoredJob
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &jobs))
	require.Len(t, jobs, 1)

	w = httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/jobs/"+strconv.FormatInt(jobs[0].ID, 10), nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/jobs/"+strconv.FormatInt(jobs[0].ID, 10), nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListJobsFilters(t *testing.T) {
	mux := newTestMux(t, stubBuild)
	require.Equal(t, http.StatusCreated, postJob(t, mux, `{"url":"https://example.com/1"}`).Code)
	require.Equal(t, http.StatusCreated, postJob(t, mux, `{"url":"https://other.test/2"}`).Code)

	w := httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/jobs?search=other.test", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var jobs []store.StoredJob
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &jobs))
	require.Len(t, jobs, 1)
	assert.Equal(t, "https://other.test/2", jobs[0].URL)

	w = httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/jobs?status=Applied", nil))
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &jobs))
	assert.Empty(t, jobs)
}

func TestExportCSV(t *testing.T) {
	mux := newTestMux(t, stubBuild)
	require.Equal(t, http.StatusCreated, postJob(t, mux, `{"url":"https://example.com/1"}`).Code)

	w := httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/jobs.csv", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/csv")

	lines := strings.Split(strings.TrimSpace(w.Body.String()), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "id,created_at,source,url,company,title"))
	assert.Contains(t, lines[1], "https://example.com/1")
}

func TestMethodNotAllowed(t *testing.T) {
	mux := newTestMux(t, stubBuild)
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest(http.MethodPut, "/jobs", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}
