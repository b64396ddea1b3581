package engine

import (
	"errors"
	"testing"
)

func TestPrepareEnvironmentEmptyLibDir(t *testing.T) {
	if err := prepareEnvironment(""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

// A dependency that cannot be opened is reported to the caller, who can fix
// the configuration and load again.
func TestPrepareEnvironmentMissingDependency(t *testing.T) {
	err := prepareEnvironment(t.TempDir())
	if !errors.Is(err, ErrDependencyLoad) {
		t.Fatalf("expected ErrDependencyLoad, got %v", err)
	}
}
