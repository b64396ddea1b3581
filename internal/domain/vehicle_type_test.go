package domain

import (
	"errors"
	"testing"
)

func TestNewVehicleTypeDefaults(t *testing.T) {
	v, err := NewVehicleType(VehicleTypeSpec{ID: 1, StartPointID: 0, EndPointID: 0})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.MaxNumber() != 1 {
		t.Fatalf("MaxNumber = %d, want default 1", v.MaxNumber())
	}

	// Only the key fields survive compaction at defaults.
	doc := v.Encode(false)
	want := map[string]bool{"id": true, "startPointId": true, "endPointId": true, "maxNumber": true}
	for field := range doc {
		if !want[field] {
			t.Errorf("compacted doc carries default field %q", field)
		}
	}
	for field := range want {
		if _, ok := doc[field]; !ok {
			t.Errorf("compacted doc missing field %q", field)
		}
	}
}

func TestNewVehicleTypeInvalid(t *testing.T) {
	cases := []struct {
		name  string
		spec  VehicleTypeSpec
		field string
	}{
		{"zero id", VehicleTypeSpec{ID: 0}, "id"},
		{"negative id", VehicleTypeSpec{ID: -1}, "id"},
		{"negative start point", VehicleTypeSpec{ID: 1, StartPointID: -1}, "startPointId"},
		{"negative end point", VehicleTypeSpec{ID: 1, EndPointID: -2}, "endPointId"},
		{"negative capacity", VehicleTypeSpec{ID: 1, Capacity: -5}, "capacity"},
		{"negative max number", VehicleTypeSpec{ID: 1, MaxNumber: -3}, "maxNumber"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewVehicleType(tc.spec)
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if verr.Field != tc.field {
				t.Fatalf("error names field %q, want %q", verr.Field, tc.field)
			}
		})
	}
}

func TestVehicleTypeExplicitZeroMaxNumber(t *testing.T) {
	v, err := NewVehicleType(VehicleTypeSpec{ID: 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := v.SetMaxNumber(0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.MaxNumber() != 0 {
		t.Fatalf("MaxNumber = %d, want 0", v.MaxNumber())
	}
	if _, ok := v.Encode(false)["maxNumber"]; ok {
		t.Fatal("compacted doc carries maxNumber at zero")
	}
}

func TestVehicleTypeEncodeDebug(t *testing.T) {
	v, err := NewVehicleType(VehicleTypeSpec{ID: 2, StartPointID: 0, EndPointID: 0, Capacity: 100})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	doc := v.Encode(true)
	fields := []string{
		"id", "startPointId", "endPointId", "name", "capacity", "fixedCost",
		"varCostDist", "varCostTime", "maxNumber", "twBegin", "twEnd",
	}
	for _, field := range fields {
		if _, ok := doc[field]; !ok {
			t.Errorf("debug doc missing field %q", field)
		}
	}
}
