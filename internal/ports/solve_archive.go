package ports

import (
	"context"
	"time"
)

// A solve and its outcome, as kept in the archive.
type SolveRecord struct {
	ID         string
	CreatedAt  time.Time
	StatusCode int
	Message    string
	Request    []byte
	Response   []byte
}

// Port: durable storage of past solves for later inspection.
type SolveArchive interface {
	// Persist one solve record.
	Save(ctx context.Context, rec SolveRecord) error
	// Retrieve all records, most recent first.
	List(ctx context.Context) ([]SolveRecord, error)
}
