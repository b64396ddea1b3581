package ports

import "context"

// Port: a cache of engine responses keyed by request digest, so repeated
// solves of an identical model skip the engine.
type SolutionCache interface {
	// Look up a cached response. The second return reports whether the key
	// was present.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Store a response under the key.
	Put(ctx context.Context, key string, response []byte) error
}
