package dto

import "time"

type StatusResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type StatisticsResponse struct {
	SolutionTime  float64 `json:"solution_time"`
	SolutionValue float64 `json:"solution_value"`
	BestLB        float64 `json:"best_lb"`
	RootLB        float64 `json:"root_lb"`
	RootTime      float64 `json:"root_time"`
	NbNodes       int     `json:"nb_branch_and_bound_nodes"`
}

type VisitResponse struct {
	PointID         int     `json:"point_id"`
	PointName       string  `json:"point_name"`
	Load            float64 `json:"load"`
	Time            float64 `json:"time"`
	IncomingArcName string  `json:"incoming_arc_name"`
}

type RouteResponse struct {
	VehicleTypeID int             `json:"vehicle_type_id"`
	Cost          float64         `json:"cost"`
	Visits        []VisitResponse `json:"visits"`
}

type SolveResponse struct {
	Status     StatusResponse      `json:"status"`
	Statistics *StatisticsResponse `json:"statistics,omitempty"`
	Routes     []RouteResponse     `json:"routes"`
}

type SolveRecordResponse struct {
	ID         string    `json:"id"`
	CreatedAt  time.Time `json:"created_at"`
	StatusCode int       `json:"status_code"`
	Message    string    `json:"message"`
}

type ListSolveRecordResponse struct {
	Solves []SolveRecordResponse `json:"solves"`
}
