package db

import (
	"database/sql"
	"fmt"
	"time"
)

// Open connects to the postgres archive database and verifies the
// connection before returning it.
func Open(databaseURL string) (*sql.DB, error) {
	db, err := sql.Open("pgx", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("open archive database: %w", err)
	}

	// The archive is write-mostly; a handful of connections is plenty and
	// idle ones beyond that are released.
	db.SetMaxOpenConns(8)
	db.SetMaxIdleConns(4)
	db.SetConnMaxLifetime(30 * time.Minute)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("verify archive database connection: %w", err)
	}

	return db, nil
}
