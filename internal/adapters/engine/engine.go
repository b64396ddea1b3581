// Package engine binds the native optimization library into the process and
// exposes it behind the ports.Engine interface.
package engine

import (
	"context"
	"fmt"
	"log"
	"runtime"
	"unsafe"

	"github.com/ebitengine/purego"
)

// Config locates the native library and its dependencies on the host.
type Config struct {
	// LibDir is the dependency-library root. Its platform-named
	// subdirectory is one of the engine search locations, and on Linux and
	// macOS it is where third-party solver dependencies are found.
	LibDir string
	// CplexPath optionally points at a CPLEX shared library to load before
	// the engine. A configured path that fails to load is fatal.
	CplexPath string
}

// Engine is a loaded native solver. It is safe for concurrent Solve calls;
// the library handle is read-only after Load and is never unloaded.
type Engine struct {
	solveModel func(request string) uintptr
	freeMemory func(response uintptr)
}

// Load resolves the platform, prepares the loader environment, loads the
// optional CPLEX backend and then the engine library from the first
// candidate location that succeeds.
//
// On Linux, when LibDir is missing from LD_LIBRARY_PATH, Load appends it and
// re-execs the process so the system loader picks it up; in that case Load
// never returns. Call Load during startup, before building any state that a
// restart would discard.
func Load(cfg Config) (*Engine, error) {
	candidates, err := libraryCandidates(runtime.GOOS, cfg.LibDir)
	if err != nil {
		return nil, err
	}
	if err := prepareEnvironment(cfg.LibDir); err != nil {
		return nil, err
	}

	if cfg.CplexPath != "" {
		if _, err := openLibrary(cfg.CplexPath); err != nil {
			return nil, fmt.Errorf("%w: cplex %s: %v", ErrBackendLoad, cfg.CplexPath, err)
		}
	}

	var handle uintptr
	for _, path := range candidates {
		h, err := openLibrary(path)
		if err == nil {
			handle = h
			log.Printf("op=engine_load lib=%s", path)
			break
		}
	}
	if handle == 0 {
		return nil, fmt.Errorf("%w: tried %v", ErrLibraryNotFound, candidates)
	}

	e := &Engine{}
	purego.RegisterLibFunc(&e.solveModel, handle, "solveModel")
	purego.RegisterLibFunc(&e.freeMemory, handle, "freeMemory")
	return e, nil
}

// Solve passes the request document across the native boundary and copies
// the response out. The native response buffer is released on every path
// once it has been acquired.
func (e *Engine) Solve(ctx context.Context, request []byte) (response []byte, err error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out, err := e.call(string(request))
	if err != nil {
		return nil, err
	}
	if out == 0 {
		return nil, fmt.Errorf("%w: nil response", ErrSolveFailed)
	}
	defer e.freeMemory(out)
	return copyCString(out), nil
}

// call shields the caller from a crash inside the native entry point.
func (e *Engine) call(request string) (out uintptr, err error) {
	defer func() {
		if r := recover(); r != nil {
			out = 0
			err = fmt.Errorf("%w: %v", ErrSolveFailed, r)
		}
	}()
	return e.solveModel(request), nil
}

// copyCString dereferences a char** and copies the NUL-terminated buffer it
// points at. The copy must complete before the native side releases the
// buffer.
func copyCString(pp uintptr) []byte {
	p := *(*uintptr)(unsafe.Pointer(pp))
	if p == 0 {
		return nil
	}
	var out []byte
	for i := uintptr(0); ; i++ {
		b := *(*byte)(unsafe.Pointer(p + i))
		if b == 0 {
			return out
		}
		out = append(out, b)
	}
}
