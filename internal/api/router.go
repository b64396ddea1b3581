package api

import (
	"net/http"

	"vrpsolver-service/internal/api/handlers"
	"vrpsolver-service/internal/ports"
	"vrpsolver-service/internal/services"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(svc *services.SolveService, archive ports.SolveArchive) http.Handler {
	mux := http.NewServeMux()

	solveHandler := &handlers.SolveHandler{Service: svc}
	archiveHandler := &handlers.SolveArchiveHandler{Archive: archive}

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/solve", solveHandler.Solve)
	mux.HandleFunc("/solves", archiveHandler.List)

	return loggingMiddleware(mux)
}
