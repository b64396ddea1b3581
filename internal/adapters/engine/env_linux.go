package engine

import (
	"log"
	"os"
	"path/filepath"
	"syscall"
)

// prepareEnvironment makes sure the dependency-library root is on
// LD_LIBRARY_PATH. The system loader reads the variable only at process
// start, so when the variable has to change the process re-execs itself
// with the same arguments. The membership check keeps the relaunched
// process from re-execing again.
func prepareEnvironment(libDir string) error {
	if libDir == "" {
		return nil
	}
	current := os.Getenv("LD_LIBRARY_PATH")
	for _, dir := range filepath.SplitList(current) {
		if dir == libDir {
			return nil
		}
	}
	updated := libDir
	if current != "" {
		updated = current + string(os.PathListSeparator) + libDir
	}
	os.Setenv("LD_LIBRARY_PATH", updated)

	exe, err := os.Executable()
	if err != nil {
		log.Printf("op=engine_restart err=%v", err)
		os.Exit(1)
	}
	log.Printf("op=engine_restart ld_library_path=%s", updated)
	if err := syscall.Exec(exe, os.Args, os.Environ()); err != nil {
		log.Printf("op=engine_restart err=%v", err)
		os.Exit(1)
	}
	return nil
}
