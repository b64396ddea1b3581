// dbtool copies the solve archive from the local SQLite database into
// Postgres, for promoting a workstation's history to shared storage.
package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"strings"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	_ "modernc.org/sqlite"

	"vrpsolver-service/internal/adapters/repositories"
	"vrpsolver-service/internal/platform/db"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	databaseURL := os.Getenv("DATABASE_URL")
	if strings.TrimSpace(databaseURL) == "" {
		log.Fatal("DATABASE_URL is required")
	}
	dbPath := getEnv("DB_PATH", "data/solves.db")

	ctx := context.Background()

	src, err := openSqlite(dbPath)
	if err != nil {
		log.Fatal(err)
	}
	defer src.Close()

	dst, err := db.Open(databaseURL)
	if err != nil {
		log.Fatal(err)
	}
	defer dst.Close()

	if err := copyArchive(ctx, src, dst); err != nil {
		log.Fatal(err)
	}
}

func copyArchive(ctx context.Context, src, dst *sql.DB) error {
	local := repositories.NewSqliteSolveArchive(src)
	remote := repositories.NewSQLSolveArchive(dst)

	log.Println("Initializing Postgres schema...")
	if err := remote.InitSchema(ctx); err != nil {
		return fmt.Errorf("copy archive: %w", err)
	}

	records, err := local.List(ctx)
	if err != nil {
		return fmt.Errorf("copy archive: %w", err)
	}
	log.Printf("Copying %d solve records...", len(records))

	for _, rec := range records {
		if err := remote.Save(ctx, rec); err != nil {
			return fmt.Errorf("copy archive: record %s: %w", rec.ID, err)
		}
	}
	log.Println("Copy complete.")

	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func openSqlite(dbPath string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("openSqlite: open sqlite database %q: %w", dbPath, err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("openSqlite: verify sqlite connection to %q: %w", dbPath, err)
	}

	return db, nil
}
