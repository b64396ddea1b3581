package repositories

import (
	"database/sql"
	"errors"
	"fmt"
)

// Initialize the SQLite database schema.
func InitSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createSolvesQuery := `
	CREATE TABLE IF NOT EXISTS solves (
		id TEXT PRIMARY KEY,
		created_at TIMESTAMP NOT NULL,
		status_code INTEGER NOT NULL,
		message TEXT NOT NULL,
		request BLOB NOT NULL,
		response BLOB NOT NULL
	);
	`

	createSolutionCacheQuery := `
	CREATE TABLE IF NOT EXISTS solution_cache (
        request_digest TEXT PRIMARY KEY,
        response BLOB NOT NULL
    );
	`

	createIndexQuery := `
	CREATE INDEX IF NOT EXISTS idx_solves_created_at
    ON solves(created_at);
	`

	statements := []string{
		createSolvesQuery,
		createSolutionCacheQuery,
		createIndexQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}
