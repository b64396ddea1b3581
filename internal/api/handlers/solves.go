package handlers

import (
	"log"
	"net/http"

	"vrpsolver-service/internal/api/dto"
	"vrpsolver-service/internal/ports"
)

type SolveArchiveHandler struct {
	Archive ports.SolveArchive
}

// List returns the archived solves, most recent first, without the request
// and response payloads.
func (h *SolveArchiveHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	records, err := h.Archive.List(r.Context())
	if err != nil {
		log.Printf("list solves failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.ListSolveRecordResponse{Solves: make([]dto.SolveRecordResponse, 0, len(records))}
	for _, rec := range records {
		res.Solves = append(res.Solves, dto.SolveRecordResponse{
			ID:         rec.ID,
			CreatedAt:  rec.CreatedAt,
			StatusCode: rec.StatusCode,
			Message:    rec.Message,
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}
