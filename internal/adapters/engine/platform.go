package engine

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

var (
	// ErrUnsupportedPlatform means the host OS has no engine build.
	ErrUnsupportedPlatform = errors.New("engine: unsupported platform")
	// ErrLibraryNotFound means no candidate location yielded the engine
	// library.
	ErrLibraryNotFound = errors.New("engine: library not found")
	// ErrBackendLoad means a configured alternate solver backend failed to
	// load.
	ErrBackendLoad = errors.New("engine: backend load failed")
	// ErrDependencyLoad means a third-party dependency library of the
	// engine failed to preload.
	ErrDependencyLoad = errors.New("engine: dependency preload failed")
	// ErrSolveFailed wraps a crash or boundary error inside a native solve
	// call.
	ErrSolveFailed = errors.New("engine: solve call failed")
)

// libraryName maps a GOOS value to the engine library's filename.
func libraryName(goos string) (string, error) {
	switch goos {
	case "windows":
		return "bapcod-shared.dll", nil
	case "linux":
		return "libbapcod-shared.so", nil
	case "darwin":
		return "libbapcod-shared.dylib", nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedPlatform, goos)
	}
}

// platformDirName is the per-OS subdirectory of the dependency-library root
// that holds the engine build for this platform.
func platformDirName(goos string) string {
	switch goos {
	case "windows":
		return "Windows"
	case "darwin":
		return "Darwin"
	default:
		return "Linux"
	}
}

// libraryCandidates lists the locations to try for the engine library, in
// order: next to the running executable, under the platform subdirectory of
// the dependency root, then the bare name left to the system loader.
func libraryCandidates(goos, libDir string) ([]string, error) {
	name, err := libraryName(goos)
	if err != nil {
		return nil, err
	}
	var candidates []string
	if exe, err := os.Executable(); err == nil {
		candidates = append(candidates, filepath.Join(filepath.Dir(exe), name))
	}
	if libDir != "" {
		candidates = append(candidates, filepath.Join(libDir, platformDirName(goos), name))
	}
	candidates = append(candidates, name)
	return candidates, nil
}
