package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"vrpsolver-service/internal/ports"
)

// Postgres-backed implementation of the SolveArchive port. Uses positional
// placeholders and ON CONFLICT, so it is not interchangeable with the
// SQLite queries.
type SQLSolveArchive struct{ DB *sql.DB }

func NewSQLSolveArchive(db *sql.DB) *SQLSolveArchive {
	return &SQLSolveArchive{DB: db}
}

// Initialize the Postgres schema for the solve archive.
func (s *SQLSolveArchive) InitSchema(ctx context.Context) error {
	if s.DB == nil {
		return errors.New("sql solve archive: DB is nil")
	}

	query := `
	CREATE TABLE IF NOT EXISTS solves (
		id TEXT PRIMARY KEY,
		created_at TIMESTAMPTZ NOT NULL,
		status_code INTEGER NOT NULL,
		message TEXT NOT NULL,
		request BYTEA NOT NULL,
		response BYTEA NOT NULL
	);
	`
	if _, err := s.DB.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("init schema: create solves table: %w", err)
	}
	return nil
}

// Persist one solve record.
func (s *SQLSolveArchive) Save(ctx context.Context, rec ports.SolveRecord) error {
	if s.DB == nil {
		return errors.New("sql solve archive: DB is nil")
	}
	if rec.ID == "" {
		return errors.New("save solve: id must not be empty")
	}

	query := `
	INSERT INTO solves (
		id,
		created_at,
		status_code,
		message,
		request,
		response
	)
	VALUES ($1, $2, $3, $4, $5, $6)
	ON CONFLICT (id) DO UPDATE SET
		created_at = EXCLUDED.created_at,
		status_code = EXCLUDED.status_code,
		message = EXCLUDED.message,
		request = EXCLUDED.request,
		response = EXCLUDED.response;
	`
	_, err := s.DB.ExecContext(ctx, query,
		rec.ID, rec.CreatedAt, rec.StatusCode, rec.Message, rec.Request, rec.Response)
	if err != nil {
		return fmt.Errorf("save solve id=%s: %w", rec.ID, err)
	}
	return nil
}

// Return all solve records, most recent first.
func (s *SQLSolveArchive) List(ctx context.Context) ([]ports.SolveRecord, error) {
	if s.DB == nil {
		return nil, errors.New("sql solve archive: DB is nil")
	}

	query := `
	SELECT
		id,
		created_at,
		status_code,
		message,
		request,
		response
	FROM solves
	ORDER BY created_at DESC;
	`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list solves: query solves table: %w", err)
	}
	defer rows.Close()

	records := make([]ports.SolveRecord, 0, 64)
	for rows.Next() {
		var rec ports.SolveRecord
		err := rows.Scan(&rec.ID, &rec.CreatedAt, &rec.StatusCode, &rec.Message, &rec.Request, &rec.Response)
		if err != nil {
			return nil, fmt.Errorf("list solves: scan row: %w", err)
		}
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list solves: row iteration: %w", err)
	}

	return records, nil
}
