package cache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// SQLite backed cache of engine responses keyed by request digest, for
// deployments without a Redis. Keys are expected to be stable digests
// computed by the caller.
type SqliteSolutionCache struct {
	DB *sql.DB
}

func NewSqliteSolutionCache(db *sql.DB) *SqliteSolutionCache {
	return &SqliteSolutionCache{DB: db}
}

// Look up a cached engine response for one request digest.
func (s *SqliteSolutionCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	if s.DB == nil {
		return nil, false, errors.New("solution cache: db is nil")
	}
	if key == "" {
		return nil, false, errors.New("get solution cache: key must not be empty")
	}

	query := `
	SELECT response
	FROM solution_cache
	WHERE request_digest = ?;
	`
	var response []byte
	err := s.DB.QueryRowContext(ctx, query, key).Scan(&response)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get solution cache: query solution_cache table: %w", err)
	}
	return response, true, nil
}

// Store an engine response under one request digest.
func (s *SqliteSolutionCache) Put(ctx context.Context, key string, response []byte) error {
	if s.DB == nil {
		return errors.New("solution cache: db is nil")
	}
	if key == "" {
		return errors.New("insert solution cache: key must not be empty")
	}

	query := `
	INSERT OR REPLACE INTO solution_cache (
		request_digest,
		response
	)
	VALUES (?, ?);
	`
	if _, err := s.DB.ExecContext(ctx, query, key, response); err != nil {
		return fmt.Errorf("insert solution cache: %w", err)
	}
	return nil
}
