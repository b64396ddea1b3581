package main

import (
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	_ "modernc.org/sqlite"

	"vrpsolver-service/internal/adapters/cache"
	"vrpsolver-service/internal/adapters/engine"
	"vrpsolver-service/internal/adapters/repositories"
	"vrpsolver-service/internal/api"
	"vrpsolver-service/internal/ports"
	"vrpsolver-service/internal/services"
)

// main is the application composition root.
// It wires concrete adapters (native engine, SQLite, Redis) behind ports and
// starts the HTTP server.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	dbPath := getEnv("DB_PATH", "data/solves.db")
	port := getEnv("PORT", "8080")
	libDir := os.Getenv("ENGINE_LIB_DIR")
	cplexPath := os.Getenv("CPLEX_PATH")
	redisAddr := os.Getenv("REDIS_ADDR")
	cacheTTL := getEnv("CACHE_TTL", "24h")

	// The engine loads before anything else: on Linux a missing loader path
	// re-execs the process, and any state built before that would be lost.
	eng, err := engine.Load(engine.Config{LibDir: libDir, CplexPath: cplexPath})
	if err != nil {
		log.Fatal(err)
	}

	db, err := openDB(dbPath)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	if err := repositories.InitSchema(db); err != nil {
		log.Fatal(err)
	}
	archive := repositories.NewSqliteSolveArchive(db)

	// Redis when configured, otherwise the responses are cached in the same
	// SQLite database as the archive.
	var solutionCache ports.SolutionCache
	if redisAddr != "" {
		ttl, err := time.ParseDuration(cacheTTL)
		if err != nil {
			log.Fatalf("invalid CACHE_TTL %q: %v", cacheTTL, err)
		}
		client := redis.NewClient(&redis.Options{Addr: redisAddr})
		solutionCache = cache.NewRedisSolutionCache(client, ttl)
		log.Printf("Solution cache backend=redis addr=%s ttl=%s", redisAddr, ttl)
	} else {
		solutionCache = cache.NewSqliteSolutionCache(db)
		log.Print("Solution cache backend=sqlite")
	}

	svc := &services.SolveService{
		Engine:  eng,
		Cache:   solutionCache,
		Archive: archive,
	}
	router := api.NewRouter(svc, archive)

	// The write timeout covers a full engine run, bounded by the request's
	// own solve time limit.
	log.Printf("Server listening addr=:%s", port)
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      600 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func openDB(dbPath string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("openDB: open sqlite database %q: %w", dbPath, err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("openDB: verify sqlite connection to %q: %w", dbPath, err)
	}

	return db, nil
}
