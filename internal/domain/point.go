package domain

// Engine-side limits on the point table.
const (
	maxPointID    = 10000
	maxCustomerID = 1022
	maxPoints     = 1022
)

// PointSpec carries the constructor arguments for a raw point. Most callers
// want NewCustomer or NewDepot instead, which fix the customer id handling.
type PointSpec struct {
	ID                   int
	Name                 string
	IDCustomer           int
	ServiceTime          float64
	TWBegin              float64
	TWEnd                float64
	PenaltyOrCost        float64
	DemandOrCapacity     int
	IncompatibleVehicles []int
}

// CustomerSpec carries the constructor arguments for a customer point.
// IDCustomer 0 reuses ID as the customer id.
type CustomerSpec struct {
	ID                   int
	Name                 string
	IDCustomer           int
	ServiceTime          float64
	Penalty              float64
	TWBegin              float64
	TWEnd                float64
	Demand               int
	IncompatibleVehicles []int
}

// DepotSpec carries the constructor arguments for a depot point.
type DepotSpec struct {
	ID                   int
	Name                 string
	ServiceTime          float64
	Cost                 float64
	TWBegin              float64
	TWEnd                float64
	Capacity             int
	IncompatibleVehicles []int
}

// Point is a location of the routing graph. A customer id of 0 marks a
// depot; any other customer id marks a customer that must be visited.
// The penaltyOrCost and demandOrCapacity fields are read as penalty and
// demand on customers and as cost and capacity on depots.
type Point struct {
	id                   int
	name                 string
	idCustomer           int
	serviceTime          float64
	twBegin              float64
	twEnd                float64
	penaltyOrCost        float64
	demandOrCapacity     int
	incompatibleVehicles []int
}

func NewPoint(spec PointSpec) (*Point, error) {
	p := &Point{}
	if err := p.SetID(spec.ID); err != nil {
		return nil, err
	}
	if err := p.SetIDCustomer(spec.IDCustomer); err != nil {
		return nil, err
	}
	if err := p.SetDemand(spec.DemandOrCapacity); err != nil {
		return nil, err
	}
	p.SetName(spec.Name)
	p.SetServiceTime(spec.ServiceTime)
	p.SetTimeWindow(spec.TWBegin, spec.TWEnd)
	p.SetPenalty(spec.PenaltyOrCost)
	p.SetIncompatibleVehicles(spec.IncompatibleVehicles)
	return p, nil
}

// NewCustomer builds a customer point. When the spec leaves IDCustomer at 0
// the point id doubles as the customer id, which is the common case for
// instances where every point is a customer.
func NewCustomer(spec CustomerSpec) (*Point, error) {
	idCustomer := spec.IDCustomer
	if idCustomer == 0 {
		idCustomer = spec.ID
	}
	return NewPoint(PointSpec{
		ID:                   spec.ID,
		Name:                 spec.Name,
		IDCustomer:           idCustomer,
		ServiceTime:          spec.ServiceTime,
		TWBegin:              spec.TWBegin,
		TWEnd:                spec.TWEnd,
		PenaltyOrCost:        spec.Penalty,
		DemandOrCapacity:     spec.Demand,
		IncompatibleVehicles: spec.IncompatibleVehicles,
	})
}

// NewDepot builds a depot point. Depots always carry customer id 0.
func NewDepot(spec DepotSpec) (*Point, error) {
	return NewPoint(PointSpec{
		ID:                   spec.ID,
		Name:                 spec.Name,
		ServiceTime:          spec.ServiceTime,
		TWBegin:              spec.TWBegin,
		TWEnd:                spec.TWEnd,
		PenaltyOrCost:        spec.Cost,
		DemandOrCapacity:     spec.Capacity,
		IncompatibleVehicles: spec.IncompatibleVehicles,
	})
}

func (p *Point) ID() int              { return p.id }
func (p *Point) Name() string         { return p.name }
func (p *Point) IDCustomer() int      { return p.idCustomer }
func (p *Point) ServiceTime() float64 { return p.serviceTime }
func (p *Point) TWBegin() float64     { return p.twBegin }
func (p *Point) TWEnd() float64       { return p.twEnd }

// IsDepot reports whether the point is a depot rather than a customer.
func (p *Point) IsDepot() bool { return p.idCustomer == 0 }

// Penalty is the cost of leaving a customer unvisited.
func (p *Point) Penalty() float64 { return p.penaltyOrCost }

// Cost is the fixed cost of using a depot.
func (p *Point) Cost() float64 { return p.penaltyOrCost }

// Demand is the quantity a customer requests.
func (p *Point) Demand() int { return p.demandOrCapacity }

// Capacity is the quantity a depot can supply.
func (p *Point) Capacity() int { return p.demandOrCapacity }

func (p *Point) IncompatibleVehicles() []int { return p.incompatibleVehicles }

func (p *Point) SetID(id int) error {
	if id < 0 {
		return errNonNegative(wireID)
	}
	if id > maxPointID {
		return &ValidationError{Field: wireID, Constraint: ConstraintMaxPointID}
	}
	p.id = id
	return nil
}

// SetIDCustomer assigns the customer id. The engine indexes customers into a
// fixed table, so ids above 1022 are rejected here rather than at solve time.
func (p *Point) SetIDCustomer(id int) error {
	if id < 0 {
		return errNonNegative(wireIDCustomer)
	}
	if id > maxCustomerID {
		return &ValidationError{Field: wireIDCustomer, Constraint: ConstraintMaxCustomerID}
	}
	p.idCustomer = id
	return nil
}

func (p *Point) SetDemand(demand int) error {
	if demand < 0 {
		return errNonNegative(wireDemandOrCapacity)
	}
	p.demandOrCapacity = demand
	return nil
}

// SetCapacity assigns the depot capacity. Demand and capacity share a wire
// field, so this is SetDemand under the depot reading.
func (p *Point) SetCapacity(capacity int) error { return p.SetDemand(capacity) }

func (p *Point) SetName(name string)        { p.name = name }
func (p *Point) SetServiceTime(t float64)   { p.serviceTime = t }
func (p *Point) SetPenalty(penalty float64) { p.penaltyOrCost = penalty }
func (p *Point) SetCost(cost float64)       { p.penaltyOrCost = cost }

func (p *Point) SetTimeWindow(begin, end float64) {
	p.twBegin = begin
	p.twEnd = end
}

// SetIncompatibleVehicles records the vehicle type ids that may not visit
// this point. The slice is copied so later caller mutations are not observed.
func (p *Point) SetIncompatibleVehicles(ids []int) {
	if len(ids) == 0 {
		p.incompatibleVehicles = nil
		return
	}
	p.incompatibleVehicles = append([]int(nil), ids...)
}

// Encode returns the wire fields of the point, omitting fields equal to
// their defaults unless debug requests the full set.
func (p *Point) Encode(debug bool) map[string]any {
	doc := map[string]any{
		wireID: p.id,
	}
	if p.name != "" || debug {
		doc[wireName] = p.name
	}
	if p.idCustomer != 0 || debug {
		doc[wireIDCustomer] = p.idCustomer
	}
	if p.serviceTime != 0 || debug {
		doc[wireServiceTime] = p.serviceTime
	}
	if p.twBegin != 0 || debug {
		doc[wireTWBegin] = p.twBegin
	}
	if p.twEnd != 0 || debug {
		doc[wireTWEnd] = p.twEnd
	}
	if p.penaltyOrCost != 0 || debug {
		doc[wirePenaltyOrCost] = p.penaltyOrCost
	}
	if p.demandOrCapacity != 0 || debug {
		doc[wireDemandOrCapacity] = p.demandOrCapacity
	}
	if len(p.incompatibleVehicles) > 0 || debug {
		doc[wireIncompatibleVehicles] = p.incompatibleVehicles
	}
	return doc
}
