package domain

import (
	"fmt"
	"strings"
)

// Constraint is the category of a violated field constraint.
type Constraint string

const (
	ConstraintNonNegative   Constraint = "must be greater than or equal to 0"
	ConstraintPositive      Constraint = "must be greater than or equal to 1"
	ConstraintMaxPointID    Constraint = "must be less than or equal to 10000"
	ConstraintMaxCustomerID Constraint = "must be less than or equal to 1022"
	ConstraintMaxPoints     Constraint = "cannot hold more than 1022 points"
	ConstraintEnum          Constraint = "must be one of"
	ConstraintKeyMatch      Constraint = "key must equal the entry's own key"
)

// ValidationError is returned when a field assignment or a collection
// insertion violates a domain constraint. It is raised at the mutating call,
// never deferred to serialization time.
type ValidationError struct {
	Field      string
	Constraint Constraint
	Allowed    []string // legal values, populated for enum violations
}

func (e *ValidationError) Error() string {
	if len(e.Allowed) > 0 {
		return fmt.Sprintf("%s: %s [%s]", e.Field, e.Constraint, strings.Join(e.Allowed, ", "))
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Constraint)
}

func errNonNegative(field string) error {
	return &ValidationError{Field: field, Constraint: ConstraintNonNegative}
}

func errEnum(field string, allowed ...string) error {
	return &ValidationError{Field: field, Constraint: ConstraintEnum, Allowed: allowed}
}

// ModelError is returned for model-level misuse: duplicate adds, deletes of
// absent keys, and serialization of an empty registry.
type ModelError struct{ msg string }

func (e *ModelError) Error() string { return e.msg }

var (
	ErrVehicleTypeExists   = &ModelError{"a vehicle type with this id is already in the model"}
	ErrVehicleTypeNotFound = &ModelError{"no vehicle type with this id is in the model"}
	ErrPointExists         = &ModelError{"a point with this id is already in the model"}
	ErrPointNotFound       = &ModelError{"no point with this id is in the model"}
	ErrLinkExists          = &ModelError{"a link with this name is already in the model"}
	ErrLinkNotFound        = &ModelError{"no link with this name is in the model"}
	ErrNoVehicleTypes      = &ModelError{"the model must contain at least one vehicle type"}
	ErrNoPoints            = &ModelError{"the model must contain at least one point"}
	ErrNoLinks             = &ModelError{"the model must contain at least one link"}
)
