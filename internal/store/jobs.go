package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"jobtrack-engine/internal/domain"
)

// ReasonDuplicateURL is reported when an insert was ignored because a row
// with the same url already exists. Callers render this distinctly from
// other rejection reasons.
const ReasonDuplicateURL = "duplicate url"

// StoredJob is a persisted record plus its row identity.
type StoredJob struct {
	ID        int64  `json:"id"`
	CreatedAt string `json:"created_at"`
	domain.JobRecord
}

type ListOpts struct {
	Search   string   // matches company, title, or url
	Statuses []string // empty means all
}

// InsertJob saves one record, with url as the uniqueness key. A duplicate
// submission is not an error: it reports inserted=false with a duplicate
// reason and leaves the stored row untouched.
func InsertJob(ctx context.Context, db *sql.DB, schema domain.Schema, rec domain.JobRecord) (inserted bool, reason string, err error) {
	cols := strings.Join(schema.Fields, ", ")
	marks := strings.TrimSuffix(strings.Repeat("?,", len(schema.Fields)), ",")

	vals := make([]any, 0, len(schema.Fields))
	for _, v := range rec.Values(schema.Fields) {
		vals = append(vals, v)
	}

	res, err := db.ExecContext(ctx,
		fmt.Sprintf(`INSERT OR IGNORE INTO jobs (%s) VALUES (%s);`, cols, marks),
		vals...,
	)
	if err != nil {
		return false, "", fmt.Errorf("insert job: %w", err)
	}

	n, _ := res.RowsAffected()
	if n > 0 {
		return true, "", nil
	}

	var one int
	derr := db.QueryRowContext(ctx, `SELECT 1 FROM jobs WHERE url = ? LIMIT 1;`, rec.URL).Scan(&one)
	if derr == nil {
		return false, ReasonDuplicateURL, nil
	}
	return false, "ignored by constraint", nil
}

// DeleteJob removes one row by id.
func DeleteJob(ctx context.Context, db *sql.DB, id int64) (deleted bool, reason string, err error) {
	res, err := db.ExecContext(ctx, `DELETE FROM jobs WHERE id = ?;`, id)
	if err != nil {
		return false, "", fmt.Errorf("delete job: %w", err)
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return false, "id not found", nil
	}
	return true, "", nil
}

// ListJobs returns saved postings most-recent-first, optionally narrowed by
// a free-text search and a status set.
func ListJobs(ctx context.Context, db *sql.DB, schema domain.Schema, opts ListOpts) ([]StoredJob, error) {
	q := fmt.Sprintf(`SELECT id, created_at, %s FROM jobs WHERE 1=1`,
		strings.Join(schema.Fields, ", "))
	var params []any

	if opts.Search != "" {
		q += ` AND (company LIKE ? OR title LIKE ? OR url LIKE ?)`
		s := "%" + opts.Search + "%"
		params = append(params, s, s, s)
	}
	if len(opts.Statuses) > 0 {
		marks := strings.TrimSuffix(strings.Repeat("?,", len(opts.Statuses)), ",")
		q += fmt.Sprintf(` AND status IN (%s)`, marks)
		for _, st := range opts.Statuses {
			params = append(params, st)
		}
	}
	q += ` ORDER BY created_at DESC, id DESC;`

	rows, err := db.QueryContext(ctx, q, params...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []StoredJob
	for rows.Next() {
		var j StoredJob
		dests := make([]any, 0, len(schema.Fields)+2)
		dests = append(dests, &j.ID, &j.CreatedAt)
		fieldVals := make([]string, len(schema.Fields))
		for i := range fieldVals {
			dests = append(dests, &fieldVals[i])
		}
		if err := rows.Scan(dests...); err != nil {
			return nil, err
		}
		for i, f := range schema.Fields {
			j.SetValue(f, fieldVals[i])
		}
		out = append(out, j)
	}
	return out, rows.Err()
}

func TotalRows(ctx context.Context, db *sql.DB) (int, error) {
	var n int
	err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM jobs;`).Scan(&n)
	return n, err
}
