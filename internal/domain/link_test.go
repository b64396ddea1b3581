package domain

import (
	"errors"
	"testing"
)

func TestNewLink(t *testing.T) {
	l, err := NewLink(LinkSpec{Name: "L0", StartPointID: 0, EndPointID: 1, Distance: 12})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	doc := l.Encode(false)
	if doc["name"] != "L0" {
		t.Fatalf("name = %v, want L0", doc["name"])
	}
	if doc["distance"] != 12.0 {
		t.Fatalf("distance = %v, want 12", doc["distance"])
	}
	for _, absent := range []string{"isDirected", "time", "fixedCost"} {
		if _, ok := doc[absent]; ok {
			t.Errorf("compacted doc carries default field %q", absent)
		}
	}
}

func TestNewLinkInvalid(t *testing.T) {
	cases := []struct {
		name  string
		spec  LinkSpec
		field string
	}{
		{"negative start point", LinkSpec{StartPointID: -1}, "startPointId"},
		{"negative end point", LinkSpec{EndPointID: -1}, "endPointId"},
		{"negative distance", LinkSpec{Distance: -1}, "distance"},
		{"negative time", LinkSpec{Time: -0.5}, "time"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewLink(tc.spec)
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

func TestLinkDirectedEmitted(t *testing.T) {
	l, err := NewLink(LinkSpec{Name: "arc", IsDirected: true, StartPointID: 1, EndPointID: 2})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if dir, ok := l.Encode(false)["isDirected"]; !ok || dir != true {
		t.Fatalf("isDirected = %v, want true", dir)
	}
}
