package domain

// VehicleTypeSpec carries the constructor arguments for a vehicle type.
// MaxNumber 0 selects the default fleet bound of one vehicle; use
// SetMaxNumber on the constructed value to force an explicit zero.
type VehicleTypeSpec struct {
	ID           int
	StartPointID int
	EndPointID   int
	Name         string
	Capacity     int
	FixedCost    float64
	VarCostDist  float64
	VarCostTime  float64
	MaxNumber    int
	TWBegin      float64
	TWEnd        float64
}

// VehicleType describes one class of vehicle available to the solver.
// Every mutation validates before committing, so a VehicleType observable
// by other components is always in a valid state.
type VehicleType struct {
	id           int
	startPointID int
	endPointID   int
	name         string
	capacity     int
	fixedCost    float64
	varCostDist  float64
	varCostTime  float64
	maxNumber    int
	twBegin      float64
	twEnd        float64
}

func NewVehicleType(spec VehicleTypeSpec) (*VehicleType, error) {
	v := &VehicleType{maxNumber: 1}
	if err := v.SetID(spec.ID); err != nil {
		return nil, err
	}
	if err := v.SetStartPointID(spec.StartPointID); err != nil {
		return nil, err
	}
	if err := v.SetEndPointID(spec.EndPointID); err != nil {
		return nil, err
	}
	if err := v.SetCapacity(spec.Capacity); err != nil {
		return nil, err
	}
	if spec.MaxNumber != 0 {
		if err := v.SetMaxNumber(spec.MaxNumber); err != nil {
			return nil, err
		}
	}
	v.SetName(spec.Name)
	v.SetFixedCost(spec.FixedCost)
	v.SetVarCostDist(spec.VarCostDist)
	v.SetVarCostTime(spec.VarCostTime)
	v.SetTimeWindow(spec.TWBegin, spec.TWEnd)
	return v, nil
}

func (v *VehicleType) ID() int              { return v.id }
func (v *VehicleType) StartPointID() int    { return v.startPointID }
func (v *VehicleType) EndPointID() int      { return v.endPointID }
func (v *VehicleType) Name() string         { return v.name }
func (v *VehicleType) Capacity() int        { return v.capacity }
func (v *VehicleType) FixedCost() float64   { return v.fixedCost }
func (v *VehicleType) VarCostDist() float64 { return v.varCostDist }
func (v *VehicleType) VarCostTime() float64 { return v.varCostTime }
func (v *VehicleType) MaxNumber() int       { return v.maxNumber }
func (v *VehicleType) TWBegin() float64     { return v.twBegin }
func (v *VehicleType) TWEnd() float64       { return v.twEnd }

// SetID rejects ids below 1; id 0 is reserved by the engine.
func (v *VehicleType) SetID(id int) error {
	if id < 1 {
		return &ValidationError{Field: wireID, Constraint: ConstraintPositive}
	}
	v.id = id
	return nil
}

func (v *VehicleType) SetStartPointID(id int) error {
	if id < 0 {
		return errNonNegative(wireStartPointID)
	}
	v.startPointID = id
	return nil
}

func (v *VehicleType) SetEndPointID(id int) error {
	if id < 0 {
		return errNonNegative(wireEndPointID)
	}
	v.endPointID = id
	return nil
}

func (v *VehicleType) SetCapacity(capacity int) error {
	if capacity < 0 {
		return errNonNegative(wireCapacity)
	}
	v.capacity = capacity
	return nil
}

// SetMaxNumber bounds the number of vehicles of this type the solver may use.
func (v *VehicleType) SetMaxNumber(n int) error {
	if n < 0 {
		return errNonNegative(wireMaxNumber)
	}
	v.maxNumber = n
	return nil
}

func (v *VehicleType) SetName(name string)      { v.name = name }
func (v *VehicleType) SetFixedCost(c float64)   { v.fixedCost = c }
func (v *VehicleType) SetVarCostDist(c float64) { v.varCostDist = c }
func (v *VehicleType) SetVarCostTime(c float64) { v.varCostTime = c }
func (v *VehicleType) SetTimeWindow(begin, end float64) {
	v.twBegin = begin
	v.twEnd = end
}

// Encode returns the wire fields of the vehicle type, omitting fields equal
// to their defaults unless debug requests the full set.
func (v *VehicleType) Encode(debug bool) map[string]any {
	doc := map[string]any{
		wireID:           v.id,
		wireStartPointID: v.startPointID,
		wireEndPointID:   v.endPointID,
	}
	if v.name != "" || debug {
		doc[wireName] = v.name
	}
	if v.capacity != 0 || debug {
		doc[wireCapacity] = v.capacity
	}
	if v.fixedCost != 0 || debug {
		doc[wireFixedCost] = v.fixedCost
	}
	if v.varCostDist != 0 || debug {
		doc[wireVarCostDist] = v.varCostDist
	}
	if v.varCostTime != 0 || debug {
		doc[wireVarCostTime] = v.varCostTime
	}
	if v.maxNumber != 0 || debug {
		doc[wireMaxNumber] = v.maxNumber
	}
	if v.twBegin != 0 || debug {
		doc[wireTWBegin] = v.twBegin
	}
	if v.twEnd != 0 || debug {
		doc[wireTWEnd] = v.twEnd
	}
	return doc
}
