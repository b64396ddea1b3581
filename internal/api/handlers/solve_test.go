package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"vrpsolver-service/internal/services"
)

type stubEngine struct{ response string }

func (s *stubEngine) Solve(ctx context.Context, request []byte) ([]byte, error) {
	return []byte(s.response), nil
}

const requestDoc = `{
 "Points": [{"id": 0}, {"id": 1, "idCustomer": 1, "demandOrCapacity": 4}],
 "VehicleTypes": [{"id": 1, "startPointId": 0, "endPointId": 0, "capacity": 10, "maxNumber": 1}],
 "Links": [{"name": "L0", "startPointId": 0, "endPointId": 1, "distance": 5}],
 "Parameters": {"timeLimit": 30}
}`

func TestSolveHandlerOK(t *testing.T) {
	eng := &stubEngine{response: `{"Status":{"code":3,"message":"optimal"},` +
		`"Statistics":{"solutionValue":10},` +
		`"Solution":[{"vehicleTypeId":1,"routeCost":10,"visitedPoints":[{"pointId":0},{"pointId":1},{"pointId":0}]}]}`}
	h := &SolveHandler{Service: &services.SolveService{Engine: eng}}

	req := httptest.NewRequest(http.MethodPost, "/solve", strings.NewReader(requestDoc))
	rec := httptest.NewRecorder()
	h.Solve(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body)
	}

	var res struct {
		Status struct {
			Code int `json:"code"`
		} `json:"status"`
		Statistics *struct {
			SolutionValue float64 `json:"solution_value"`
		} `json:"statistics"`
		Routes []struct {
			Visits []struct {
				PointID int `json:"point_id"`
			} `json:"visits"`
		} `json:"routes"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("response does not parse: %v", err)
	}
	if res.Status.Code != 3 {
		t.Fatalf("status code = %d, want 3", res.Status.Code)
	}
	if res.Statistics == nil || res.Statistics.SolutionValue != 10 {
		t.Fatalf("statistics = %+v", res.Statistics)
	}
	if len(res.Routes) != 1 || len(res.Routes[0].Visits) != 3 {
		t.Fatalf("routes = %+v", res.Routes)
	}
}

func TestSolveHandlerInvalidModel(t *testing.T) {
	h := &SolveHandler{Service: &services.SolveService{Engine: &stubEngine{}}}

	body := `{"Points":[{"id":1,"idCustomer":5000}],"VehicleTypes":[],"Links":[]}`
	req := httptest.NewRequest(http.MethodPost, "/solve", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Solve(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

// Structural misuses surface as 400 even though they are only detected at
// serialization time.
func TestSolveHandlerEmptySections(t *testing.T) {
	h := &SolveHandler{Service: &services.SolveService{Engine: &stubEngine{}}}

	body := `{"Points":[{"id":0}],"VehicleTypes":[],"Links":[]}`
	req := httptest.NewRequest(http.MethodPost, "/solve", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Solve(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestSolveHandlerMethodNotAllowed(t *testing.T) {
	h := &SolveHandler{Service: &services.SolveService{Engine: &stubEngine{}}}

	req := httptest.NewRequest(http.MethodGet, "/solve", nil)
	rec := httptest.NewRecorder()
	h.Solve(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d, want 405", rec.Code)
	}
	if rec.Header().Get("Allow") != http.MethodPost {
		t.Fatalf("Allow = %q, want POST", rec.Header().Get("Allow"))
	}
}
