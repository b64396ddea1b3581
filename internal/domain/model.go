package domain

import (
	"encoding/json"
	"fmt"
	"os"
)

// Model is a complete routing problem: the fleet, the points, the links
// between them and the solve parameters. Entities are added through the
// Add methods, which validate before committing, so a Model can always be
// serialized once each section is non-empty.
//
// A Model is not safe for concurrent mutation; guard it externally or give
// each goroutine its own.
type Model struct {
	vehicleTypes *registry[int, *VehicleType]
	points       *registry[int, *Point]
	links        *registry[string, *Link]
	parameters   Parameters
}

func NewModel() *Model {
	return &Model{
		vehicleTypes: newRegistry(func(v *VehicleType) int { return v.ID() }, 0, wireID,
			ErrVehicleTypeExists, ErrVehicleTypeNotFound, ErrNoVehicleTypes),
		points: newRegistry(func(p *Point) int { return p.ID() }, maxPoints, wireID,
			ErrPointExists, ErrPointNotFound, ErrNoPoints),
		links: newRegistry(func(l *Link) string { return l.Name() }, 0, wireName,
			ErrLinkExists, ErrLinkNotFound, ErrNoLinks),
		parameters: DefaultParameters(),
	}
}

// AddVehicleType validates the spec and registers the vehicle type under
// its id.
func (m *Model) AddVehicleType(spec VehicleTypeSpec) (*VehicleType, error) {
	v, err := NewVehicleType(spec)
	if err != nil {
		return nil, err
	}
	if err := m.vehicleTypes.insert(v.ID(), v); err != nil {
		return nil, err
	}
	return v, nil
}

// AddPoint validates the spec and registers the point under its id.
func (m *Model) AddPoint(spec PointSpec) (*Point, error) {
	p, err := NewPoint(spec)
	if err != nil {
		return nil, err
	}
	if err := m.points.insert(p.ID(), p); err != nil {
		return nil, err
	}
	return p, nil
}

// AddCustomer registers a customer point.
func (m *Model) AddCustomer(spec CustomerSpec) (*Point, error) {
	p, err := NewCustomer(spec)
	if err != nil {
		return nil, err
	}
	if err := m.points.insert(p.ID(), p); err != nil {
		return nil, err
	}
	return p, nil
}

// AddDepot registers a depot point.
func (m *Model) AddDepot(spec DepotSpec) (*Point, error) {
	p, err := NewDepot(spec)
	if err != nil {
		return nil, err
	}
	if err := m.points.insert(p.ID(), p); err != nil {
		return nil, err
	}
	return p, nil
}

// AddLink validates the spec and registers the link under its name.
func (m *Model) AddLink(spec LinkSpec) (*Link, error) {
	l, err := NewLink(spec)
	if err != nil {
		return nil, err
	}
	if err := m.links.insert(l.Name(), l); err != nil {
		return nil, err
	}
	return l, nil
}

func (m *Model) DeleteVehicleType(id int) error { return m.vehicleTypes.remove(id) }
func (m *Model) DeletePoint(id int) error       { return m.points.remove(id) }
func (m *Model) DeleteCustomer(id int) error    { return m.points.remove(id) }
func (m *Model) DeleteDepot(id int) error       { return m.points.remove(id) }
func (m *Model) DeleteLink(name string) error   { return m.links.remove(name) }

func (m *Model) VehicleType(id int) (*VehicleType, bool) { return m.vehicleTypes.get(id) }
func (m *Model) Point(id int) (*Point, bool)             { return m.points.get(id) }
func (m *Model) Link(name string) (*Link, bool)          { return m.links.get(name) }

func (m *Model) NumVehicleTypes() int { return m.vehicleTypes.size() }
func (m *Model) NumPoints() int       { return m.points.size() }
func (m *Model) NumLinks() int        { return m.links.size() }

func (m *Model) Parameters() Parameters     { return m.parameters }
func (m *Model) SetParameters(p Parameters) { m.parameters = p }

// MarshalRequest serializes the model into the engine's request document.
// With debug false each entity emits only the fields that differ from their
// defaults; with debug true every field is present.
func (m *Model) MarshalRequest(debug bool) ([]byte, error) {
	points, err := m.points.encodeAll(debug)
	if err != nil {
		return nil, err
	}
	vehicleTypes, err := m.vehicleTypes.encodeAll(debug)
	if err != nil {
		return nil, err
	}
	links, err := m.links.encodeAll(debug)
	if err != nil {
		return nil, err
	}
	doc := map[string]any{
		wirePoints:       points,
		wireVehicleTypes: vehicleTypes,
		wireLinks:        links,
		wireParameters:   m.parameters.Encode(debug),
	}
	data, err := json.MarshalIndent(doc, "", " ")
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}
	return data, nil
}

// Export writes the full request document, including default-valued fields,
// to <name>.json. The export is for sharing and debugging; requests sent to
// the engine stay compact.
func (m *Model) Export(name string) error {
	data, err := m.MarshalRequest(true)
	if err != nil {
		return err
	}
	path := name + ".json"
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("export model: %w", err)
	}
	return nil
}

// String renders the full request document, including default-valued
// fields, for inspection.
func (m *Model) String() string {
	data, err := m.MarshalRequest(true)
	if err != nil {
		return fmt.Sprintf("model (unserializable: %v)", err)
	}
	return string(data)
}
