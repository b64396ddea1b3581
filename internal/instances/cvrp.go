// Package instances reads routing instances from literature file formats
// and turns them into solvable models.
package instances

import (
	"bufio"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"vrpsolver-service/internal/domain"
)

// CVRPInstance is a capacitated instance in CVRPLIB form: one depot, a
// homogeneous fleet and integer euclidean distances.
type CVRPInstance struct {
	Name      string
	Dimension int
	Capacity  int
	Points    []CVRPPoint
	DepotID   int
}

// CVRPPoint is one node of the instance. IDs follow the file, shifted to
// start at 0.
type CVRPPoint struct {
	ID     int
	X      float64
	Y      float64
	Demand int
}

// ReadCVRP parses a CVRPLIB .vrp file. Only EUC_2D instances with a single
// depot are supported.
func ReadCVRP(path string) (*CVRPInstance, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("read cvrp: %w", err)
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	sc.Split(bufio.ScanWords)
	next := func() (string, error) {
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return "", fmt.Errorf("read cvrp: %w", err)
			}
			return "", fmt.Errorf("read cvrp: unexpected end of file")
		}
		return sc.Text(), nil
	}
	nextInt := func() (int, error) {
		tok, err := next()
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(tok)
		if err != nil {
			return 0, fmt.Errorf("read cvrp: expected integer, got %q", tok)
		}
		return n, nil
	}
	// Header fields are "KEY : VALUE"; skip the separator token.
	skipColon := func() error {
		tok, err := next()
		if err != nil {
			return err
		}
		if tok != ":" {
			return fmt.Errorf("read cvrp: expected %q, got %q", ":", tok)
		}
		return nil
	}

	inst := &CVRPInstance{Name: nameFromPath(path), Dimension: -1, Capacity: -1}
	for {
		tok, err := next()
		if err != nil {
			return nil, err
		}
		switch tok {
		case "DIMENSION":
			if err := skipColon(); err != nil {
				return nil, err
			}
			if inst.Dimension, err = nextInt(); err != nil {
				return nil, err
			}
		case "CAPACITY":
			if err := skipColon(); err != nil {
				return nil, err
			}
			if inst.Capacity, err = nextInt(); err != nil {
				return nil, err
			}
		case "EDGE_WEIGHT_TYPE":
			if err := skipColon(); err != nil {
				return nil, err
			}
			wt, err := next()
			if err != nil {
				return nil, err
			}
			if wt != "EUC_2D" {
				return nil, fmt.Errorf("read cvrp: edge weight type %s not supported (only EUC_2D)", wt)
			}
		case "NODE_COORD_SECTION":
			return readCVRPBody(inst, next, nextInt)
		}
	}
}

func readCVRPBody(inst *CVRPInstance, next func() (string, error), nextInt func() (int, error)) (*CVRPInstance, error) {
	if inst.Dimension <= 0 {
		return nil, fmt.Errorf("read cvrp: missing DIMENSION")
	}
	if inst.Capacity <= 0 {
		return nil, fmt.Errorf("read cvrp: missing CAPACITY")
	}

	inst.Points = make([]CVRPPoint, 0, inst.Dimension)
	for n := 0; n < inst.Dimension; n++ {
		id, err := nextInt()
		if err != nil {
			return nil, err
		}
		if id != n+1 {
			return nil, fmt.Errorf("read cvrp: unexpected node index %d, want %d", id, n+1)
		}
		x, err := nextInt()
		if err != nil {
			return nil, err
		}
		y, err := nextInt()
		if err != nil {
			return nil, err
		}
		inst.Points = append(inst.Points, CVRPPoint{ID: n, X: float64(x), Y: float64(y)})
	}

	tok, err := next()
	if err != nil {
		return nil, err
	}
	if tok != "DEMAND_SECTION" {
		return nil, fmt.Errorf("read cvrp: expected DEMAND_SECTION, got %q", tok)
	}
	for n := 0; n < inst.Dimension; n++ {
		id, err := nextInt()
		if err != nil {
			return nil, err
		}
		if id != n+1 {
			return nil, fmt.Errorf("read cvrp: unexpected demand index %d, want %d", id, n+1)
		}
		if inst.Points[n].Demand, err = nextInt(); err != nil {
			return nil, err
		}
	}

	tok, err = next()
	if err != nil {
		return nil, err
	}
	if tok != "DEPOT_SECTION" {
		return nil, fmt.Errorf("read cvrp: expected DEPOT_SECTION, got %q", tok)
	}
	depot, err := nextInt()
	if err != nil {
		return nil, err
	}
	inst.DepotID = depot - 1
	end, err := nextInt()
	if err != nil {
		return nil, err
	}
	if end != -1 {
		return nil, fmt.Errorf("read cvrp: expected a single depot")
	}
	return inst, nil
}

// BuildModel turns the instance into a solvable model: one vehicle type
// with unit distance cost, the depot, one customer per remaining node and
// an undirected link per node pair with the rounded euclidean distance.
func (inst *CVRPInstance) BuildModel() (*domain.Model, error) {
	m := domain.NewModel()

	if _, err := m.AddVehicleType(domain.VehicleTypeSpec{
		ID:           1,
		StartPointID: inst.DepotID,
		EndPointID:   inst.DepotID,
		Capacity:     inst.Capacity,
		MaxNumber:    inst.Dimension,
		VarCostDist:  1,
	}); err != nil {
		return nil, fmt.Errorf("build model: %w", err)
	}

	for _, p := range inst.Points {
		if p.ID == inst.DepotID {
			if _, err := m.AddDepot(domain.DepotSpec{ID: p.ID}); err != nil {
				return nil, fmt.Errorf("build model: depot %d: %w", p.ID, err)
			}
			continue
		}
		if _, err := m.AddCustomer(domain.CustomerSpec{ID: p.ID, Demand: p.Demand}); err != nil {
			return nil, fmt.Errorf("build model: customer %d: %w", p.ID, err)
		}
	}

	nbLink := 0
	for i := range inst.Points {
		for j := i + 1; j < len(inst.Points); j++ {
			dist := euclideanDistance(inst.Points[i].X, inst.Points[i].Y, inst.Points[j].X, inst.Points[j].Y)
			if _, err := m.AddLink(domain.LinkSpec{
				Name:         "L" + strconv.Itoa(nbLink),
				StartPointID: inst.Points[i].ID,
				EndPointID:   inst.Points[j].ID,
				Distance:     dist,
			}); err != nil {
				return nil, fmt.Errorf("build model: link %d-%d: %w", inst.Points[i].ID, inst.Points[j].ID, err)
			}
			nbLink++
		}
	}

	return m, nil
}

// euclideanDistance rounds to the nearest integer, per the CVRPLIB
// convention for EUC_2D instances.
func euclideanDistance(xi, yi, xj, yj float64) float64 {
	return math.Floor(math.Sqrt((xi-xj)*(xi-xj)+(yi-yj)*(yi-yj)) + 0.5)
}

func nameFromPath(path string) string {
	base := path
	if i := strings.LastIndexAny(base, `/\`); i >= 0 {
		base = base[i+1:]
	}
	if i := strings.LastIndex(base, "."); i > 0 {
		base = base[:i]
	}
	return base
}
