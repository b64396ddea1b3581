package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Wire document shapes for decoding. Optional parameter fields are pointers
// so an absent field falls back to its default rather than to the zero value.
type modelDoc struct {
	Points       []pointDoc       `json:"Points"`
	VehicleTypes []vehicleTypeDoc `json:"VehicleTypes"`
	Links        []linkDoc        `json:"Links"`
	Parameters   *parametersDoc   `json:"Parameters"`
}

type pointDoc struct {
	ID                   int     `json:"id"`
	Name                 string  `json:"name"`
	IDCustomer           int     `json:"idCustomer"`
	ServiceTime          float64 `json:"serviceTime"`
	TWBegin              float64 `json:"twBegin"`
	TWEnd                float64 `json:"twEnd"`
	PenaltyOrCost        float64 `json:"penaltyOrCost"`
	DemandOrCapacity     int     `json:"demandOrCapacity"`
	IncompatibleVehicles []int   `json:"incompatibleVehicles"`
}

type vehicleTypeDoc struct {
	ID           int     `json:"id"`
	StartPointID int     `json:"startPointId"`
	EndPointID   int     `json:"endPointId"`
	Name         string  `json:"name"`
	Capacity     int     `json:"capacity"`
	FixedCost    float64 `json:"fixedCost"`
	VarCostDist  float64 `json:"varCostDist"`
	VarCostTime  float64 `json:"varCostTime"`
	MaxNumber    *int    `json:"maxNumber"`
	TWBegin      float64 `json:"twBegin"`
	TWEnd        float64 `json:"twEnd"`
}

type linkDoc struct {
	Name         string  `json:"name"`
	IsDirected   bool    `json:"isDirected"`
	StartPointID int     `json:"startPointId"`
	EndPointID   int     `json:"endPointId"`
	Distance     float64 `json:"distance"`
	Time         float64 `json:"time"`
	FixedCost    float64 `json:"fixedCost"`
}

type parametersDoc struct {
	TimeLimit          *float64 `json:"timeLimit"`
	UpperBound         *float64 `json:"upperBound"`
	HeuristicUsed      *bool    `json:"heuristicUsed"`
	TimeLimitHeuristic *float64 `json:"timeLimitHeuristic"`
	ConfigFile         *string  `json:"configFile"`
	SolverName         *string  `json:"solverName"`
	PrintLevel         *int     `json:"printLevel"`
	Action             *string  `json:"action"`
}

// ParseModel rebuilds a Model from a request document. Every entity passes
// through the same validation as when it is added by hand, so a document
// that decodes is also a document the engine would accept structurally.
func ParseModel(data []byte) (*Model, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	var doc modelDoc
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode model: %w", err)
	}

	m := NewModel()
	for _, pd := range doc.Points {
		if _, err := m.AddPoint(PointSpec{
			ID:                   pd.ID,
			Name:                 pd.Name,
			IDCustomer:           pd.IDCustomer,
			ServiceTime:          pd.ServiceTime,
			TWBegin:              pd.TWBegin,
			TWEnd:                pd.TWEnd,
			PenaltyOrCost:        pd.PenaltyOrCost,
			DemandOrCapacity:     pd.DemandOrCapacity,
			IncompatibleVehicles: pd.IncompatibleVehicles,
		}); err != nil {
			return nil, fmt.Errorf("decode model: point %d: %w", pd.ID, err)
		}
	}
	for _, vd := range doc.VehicleTypes {
		v, err := m.AddVehicleType(VehicleTypeSpec{
			ID:           vd.ID,
			StartPointID: vd.StartPointID,
			EndPointID:   vd.EndPointID,
			Name:         vd.Name,
			Capacity:     vd.Capacity,
			FixedCost:    vd.FixedCost,
			VarCostDist:  vd.VarCostDist,
			VarCostTime:  vd.VarCostTime,
			TWBegin:      vd.TWBegin,
			TWEnd:        vd.TWEnd,
		})
		if err != nil {
			return nil, fmt.Errorf("decode model: vehicle type %d: %w", vd.ID, err)
		}
		if vd.MaxNumber != nil {
			if err := v.SetMaxNumber(*vd.MaxNumber); err != nil {
				return nil, fmt.Errorf("decode model: vehicle type %d: %w", vd.ID, err)
			}
		}
	}
	for _, ld := range doc.Links {
		if _, err := m.AddLink(LinkSpec{
			Name:         ld.Name,
			IsDirected:   ld.IsDirected,
			StartPointID: ld.StartPointID,
			EndPointID:   ld.EndPointID,
			Distance:     ld.Distance,
			Time:         ld.Time,
			FixedCost:    ld.FixedCost,
		}); err != nil {
			return nil, fmt.Errorf("decode model: link %q: %w", ld.Name, err)
		}
	}
	if doc.Parameters != nil {
		params := DefaultParameters()
		pd := doc.Parameters
		if pd.TimeLimit != nil {
			if err := params.SetTimeLimit(*pd.TimeLimit); err != nil {
				return nil, fmt.Errorf("decode model: parameters: %w", err)
			}
		}
		if pd.UpperBound != nil {
			params.SetUpperBound(*pd.UpperBound)
		}
		if pd.HeuristicUsed != nil {
			params.SetHeuristicUsed(*pd.HeuristicUsed)
		}
		if pd.TimeLimitHeuristic != nil {
			if err := params.SetTimeLimitHeuristic(*pd.TimeLimitHeuristic); err != nil {
				return nil, fmt.Errorf("decode model: parameters: %w", err)
			}
		}
		if pd.ConfigFile != nil {
			params.SetConfigFile(*pd.ConfigFile)
		}
		if pd.SolverName != nil {
			if err := params.SetSolverName(*pd.SolverName); err != nil {
				return nil, fmt.Errorf("decode model: parameters: %w", err)
			}
		}
		if pd.PrintLevel != nil {
			if err := params.SetPrintLevel(*pd.PrintLevel); err != nil {
				return nil, fmt.Errorf("decode model: parameters: %w", err)
			}
		}
		if pd.Action != nil {
			if err := params.SetAction(*pd.Action); err != nil {
				return nil, fmt.Errorf("decode model: parameters: %w", err)
			}
		}
		m.SetParameters(params)
	}
	return m, nil
}
