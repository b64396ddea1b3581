//go:build linux || darwin

package engine

import "github.com/ebitengine/purego"

// openLibrary loads a shared library. RTLD_GLOBAL exposes its symbols to
// libraries loaded afterwards, which the engine needs to find its
// preloaded dependencies.
func openLibrary(path string) (uintptr, error) {
	return purego.Dlopen(path, purego.RTLD_NOW|purego.RTLD_GLOBAL)
}
