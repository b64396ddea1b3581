// Package solution parses and exposes the engine's response documents.
package solution

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
)

// Status codes with contractual meaning. Codes 3 to 5 are the solved range:
// the engine found bounds and at least a feasible solution. Code 8 reports
// the result of a route enumeration run. All other codes carry only their
// message.
const (
	statusSolvedMin = 3
	statusSolvedMax = 5

	// StatusEnumerated is returned by the enumerate-all-feasible-routes
	// action; it comes with routes but no search statistics.
	StatusEnumerated = 8
)

// Status is the engine's verdict on a solve.
type Status struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Statistics are the search metrics the engine reports alongside a usable
// solution.
type Statistics struct {
	SolutionTime  float64 `json:"solutionTime"`
	SolutionValue float64 `json:"solutionValue"`
	BestLB        float64 `json:"bestLB"`
	RootLB        float64 `json:"rootLB"`
	RootTime      float64 `json:"rootTime"`
	NbNodes       int     `json:"nbBranchAndBoundNodes"`
}

// Route is one vehicle's trip. The per-stop slices are parallel: index i of
// each describes the i-th visited point.
type Route struct {
	VehicleTypeID    int
	Cost             float64
	PointIDs         []int
	PointNames       []string
	CapConsumption   []float64
	TimeConsumption  []float64
	IncomingArcNames []string
}

// Solution is a parsed engine response. Statistics and Routes are populated
// only when the status says the engine produced them.
type Solution struct {
	Status     Status
	Statistics Statistics
	Routes     []Route

	raw []byte
}

type responseDoc struct {
	Status     Status     `json:"Status"`
	Statistics Statistics `json:"Statistics"`
	Solution   []routeDoc `json:"Solution"`
}

type routeDoc struct {
	VehicleTypeID int        `json:"vehicleTypeId"`
	RouteCost     float64    `json:"routeCost"`
	VisitedPoints []visitDoc `json:"visitedPoints"`
}

type visitDoc struct {
	PointID         int     `json:"pointId"`
	PointName       string  `json:"pointName"`
	Load            float64 `json:"load"`
	Time            float64 `json:"time"`
	IncomingArcName string  `json:"incomingArcName"`
}

// Parse decodes an engine response. The status is always read; statistics
// are kept only for statuses 3 to 5, and routes for statuses 3 to 5 and 8,
// regardless of what else the document carries.
func Parse(data []byte) (*Solution, error) {
	var doc responseDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse response: %w", err)
	}
	s := &Solution{
		Status: doc.Status,
		raw:    append([]byte(nil), data...),
	}
	if hasStatistics(doc.Status.Code) {
		s.Statistics = doc.Statistics
	}
	if hasRoutes(doc.Status.Code) {
		s.Routes = make([]Route, 0, len(doc.Solution))
		for _, rd := range doc.Solution {
			r := Route{
				VehicleTypeID:    rd.VehicleTypeID,
				Cost:             rd.RouteCost,
				PointIDs:         make([]int, 0, len(rd.VisitedPoints)),
				PointNames:       make([]string, 0, len(rd.VisitedPoints)),
				CapConsumption:   make([]float64, 0, len(rd.VisitedPoints)),
				TimeConsumption:  make([]float64, 0, len(rd.VisitedPoints)),
				IncomingArcNames: make([]string, 0, len(rd.VisitedPoints)),
			}
			for _, vd := range rd.VisitedPoints {
				r.PointIDs = append(r.PointIDs, vd.PointID)
				r.PointNames = append(r.PointNames, vd.PointName)
				r.CapConsumption = append(r.CapConsumption, vd.Load)
				r.TimeConsumption = append(r.TimeConsumption, vd.Time)
				r.IncomingArcNames = append(r.IncomingArcNames, vd.IncomingArcName)
			}
			s.Routes = append(s.Routes, r)
		}
	}
	return s, nil
}

func hasStatistics(code int) bool {
	return code >= statusSolvedMin && code <= statusSolvedMax
}

func hasRoutes(code int) bool {
	return hasStatistics(code) || code == StatusEnumerated
}

// HasSolution reports whether the engine returned at least one route.
func (s *Solution) HasSolution() bool { return len(s.Routes) > 0 }

// HasStatistics reports whether the status code implies populated search
// statistics.
func (s *Solution) HasStatistics() bool { return hasStatistics(s.Status.Code) }

// Value is the objective value of the returned solution, zero when no
// statistics were reported.
func (s *Solution) Value() float64 { return s.Statistics.SolutionValue }

// Export writes the raw response, re-indented, to <name>.json.
func (s *Solution) Export(name string) error {
	var buf bytes.Buffer
	if err := json.Indent(&buf, s.raw, "", " "); err != nil {
		return fmt.Errorf("export solution: %w", err)
	}
	path := name + ".json"
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("export solution: %w", err)
	}
	return nil
}

func (s *Solution) String() string {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "status %d: %s\n", s.Status.Code, s.Status.Message)
	if hasStatistics(s.Status.Code) {
		fmt.Fprintf(&buf, "value %.2f (best lower bound %.2f) in %.2fs over %d nodes\n",
			s.Statistics.SolutionValue, s.Statistics.BestLB,
			s.Statistics.SolutionTime, s.Statistics.NbNodes)
	}
	for i, r := range s.Routes {
		fmt.Fprintf(&buf, "route %d (vehicle type %d, cost %.2f):", i, r.VehicleTypeID, r.Cost)
		for _, id := range r.PointIDs {
			fmt.Fprintf(&buf, " %d", id)
		}
		buf.WriteByte('\n')
	}
	return buf.String()
}
