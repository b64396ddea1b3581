package ports

import "context"

// Port: the native optimization engine. Solve takes a serialized request
// document and returns the engine's response document.
type Engine interface {
	Solve(ctx context.Context, request []byte) ([]byte, error)
}
