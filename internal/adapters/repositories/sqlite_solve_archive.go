package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"vrpsolver-service/internal/ports"
)

// SQLite-backed implementation of the SolveArchive port.
type SqliteSolveArchive struct{ DB *sql.DB }

func NewSqliteSolveArchive(db *sql.DB) *SqliteSolveArchive {
	return &SqliteSolveArchive{DB: db}
}

// Persist one solve record.
func (s *SqliteSolveArchive) Save(ctx context.Context, rec ports.SolveRecord) error {
	if s.DB == nil {
		return errors.New("sqlite solve archive: DB is nil")
	}
	if rec.ID == "" {
		return errors.New("save solve: id must not be empty")
	}

	query := `
	INSERT OR REPLACE INTO solves (
		id,
		created_at,
		status_code,
		message,
		request,
		response
	)
	VALUES (?, ?, ?, ?, ?, ?);
	`
	_, err := s.DB.ExecContext(ctx, query,
		rec.ID, rec.CreatedAt, rec.StatusCode, rec.Message, rec.Request, rec.Response)
	if err != nil {
		return fmt.Errorf("save solve id=%s: %w", rec.ID, err)
	}
	return nil
}

// Return all solve records, most recent first.
func (s *SqliteSolveArchive) List(ctx context.Context) ([]ports.SolveRecord, error) {
	if s.DB == nil {
		return nil, errors.New("sqlite solve archive: DB is nil")
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
