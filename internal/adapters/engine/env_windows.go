package engine

// prepareEnvironment is a no-op on Windows: the loader already searches the
// executable's directory, and the engine build bundles its dependencies
// there.
func prepareEnvironment(libDir string) error { return nil }
