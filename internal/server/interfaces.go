package server

import "context"

// Server defines the lifecycle contract of the inspection server.
//
// RunServer blocks until ctx is cancelled, a termination signal arrives or
// the listener fails. Shutdown may be called from another goroutine to stop
// a running server early.
type Server interface {
	// RunServer starts serving requests and blocks until the server stops.
	RunServer(ctx context.Context) error

	// Shutdown gracefully stops the server, waiting for in-flight requests
	// until ctx expires.
	Shutdown(ctx context.Context) error

	// Addr reports the address the listener is bound to.
	Addr() string
}
