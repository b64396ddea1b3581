package handlers

import (
	"errors"
	"io"
	"log"
	"net/http"

	"vrpsolver-service/internal/api/dto"
	"vrpsolver-service/internal/domain"
	"vrpsolver-service/internal/services"
	"vrpsolver-service/internal/solution"
)

type SolveHandler struct {
	Service *services.SolveService
}

// Solve accepts a request document, rebuilds a validated model from it and
// runs it through the engine. Validation and model-consistency failures map
// to 400; everything else is internal.
func (h *SolveHandler) Solve(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, 16<<20))
	defer r.Body.Close()
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "unreadable body")
		return
	}

	model, err := domain.ParseModel(body)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	sol, err := h.Service.Solve(r.Context(), model)
	if err != nil {
		var verr *domain.ValidationError
		var merr *domain.ModelError
		if errors.As(err, &verr) || errors.As(err, &merr) {
			writeError(w, r, http.StatusBadRequest, err.Error())
			return
		}
		log.Printf("solve failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, http.StatusOK, solveResponse(sol))
}

func solveResponse(sol *solution.Solution) dto.SolveResponse {
	res := dto.SolveResponse{
		Status: dto.StatusResponse{
			Code:    sol.Status.Code,
			Message: sol.Status.Message,
		},
		Routes: make([]dto.RouteResponse, 0, len(sol.Routes)),
	}
	if sol.HasStatistics() {
		res.Statistics = &dto.StatisticsResponse{
			SolutionTime:  sol.Statistics.SolutionTime,
			SolutionValue: sol.Statistics.SolutionValue,
			BestLB:        sol.Statistics.BestLB,
			RootLB:        sol.Statistics.RootLB,
			RootTime:      sol.Statistics.RootTime,
			NbNodes:       sol.Statistics.NbNodes,
		}
	}
	for _, route := range sol.Routes {
		rr := dto.RouteResponse{
			VehicleTypeID: route.VehicleTypeID,
			Cost:          route.Cost,
			Visits:        make([]dto.VisitResponse, 0, len(route.PointIDs)),
		}
		for i := range route.PointIDs {
			rr.Visits = append(rr.Visits, dto.VisitResponse{
				PointID:         route.PointIDs[i],
				PointName:       route.PointNames[i],
				Load:            route.CapConsumption[i],
				Time:            route.TimeConsumption[i],
				IncomingArcName: route.IncomingArcNames[i],
			})
		}
		res.Routes = append(res.Routes, rr)
	}
	return res
}
