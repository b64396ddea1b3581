package engine

import (
	"os"
	"testing"
)

func TestPrepareEnvironmentEmptyLibDir(t *testing.T) {
	if err := prepareEnvironment(""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

// When the dependency root is already on LD_LIBRARY_PATH the process keeps
// running as-is; no restart happens.
func TestPrepareEnvironmentAlreadyOnPath(t *testing.T) {
	libDir := t.TempDir()
	t.Setenv("LD_LIBRARY_PATH", "/usr/lib"+string(os.PathListSeparator)+libDir)
	if err := prepareEnvironment(libDir); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
