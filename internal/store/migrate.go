package store

import (
	"database/sql"

	"jobtrack-engine/internal/domain"
)

// Migrate brings the database to schema v1: the jobs table (DDL supplied by
// the caller's Schema) plus indexes. Idempotent via PRAGMA user_version.
func Migrate(db *sql.DB, schema domain.Schema) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	var v int
	if err := tx.QueryRow(`PRAGMA user_version;`).Scan(&v); err != nil {
		return err
	}
	if v >= 1 {
		return tx.Commit()
	}

	if _, err := tx.Exec(schema.CreateTable); err != nil {
		return err
	}

	if _, err := tx.Exec(`
CREATE INDEX IF NOT EXISTS idx_jobs_created_at
ON jobs(created_at);
`); err != nil {
		return err
	}

	if _, err := tx.Exec(`
CREATE INDEX IF NOT EXISTS idx_jobs_status
ON jobs(status);
`); err != nil {
		return err
	}

	if _, err := tx.Exec(`PRAGMA user_version = 1;`); err != nil {
		return err
	}

	return tx.Commit()
}
