package engine

import (
	"fmt"
	"path/filepath"
)

// The engine's third-party solver dependencies, lowest level first. Each
// depends on the ones before it, so the load order is fixed.
var darwinPreloads = []string{
	"libCoinUtils.0.dylib",
	"libClp.0.dylib",
	"libOsi.0.dylib",
	"libOsiClp.0.dylib",
}

// prepareEnvironment loads the engine's dependencies explicitly. The macOS
// loader has no search-path variable the process could amend and re-exec
// under, so each dependency is opened by path before the engine library.
func prepareEnvironment(libDir string) error {
	if libDir == "" {
		return nil
	}
	dir := filepath.Join(libDir, platformDirName("darwin"))
	for _, name := range darwinPreloads {
		path := filepath.Join(dir, name)
		if _, err := openLibrary(path); err != nil {
			return fmt.Errorf("%w: %s: %v", ErrDependencyLoad, path, err)
		}
	}
	return nil
}
