package engine

import "errors"

var (
	// ErrSurfaceClosed means the host surface went away. It is the normal
	// shutdown path.
	ErrSurfaceClosed = errors.New("engine: surface closed")
	// ErrTickPanic wraps a panic recovered inside a tick. Ticks are not
	// retried after one.
	ErrTickPanic = errors.New("engine: tick panicked")
)
