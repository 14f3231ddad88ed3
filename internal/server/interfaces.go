package server

import (
	"context"
	"net"
)

// Server defines the common lifecycle contract for transport servers managed
// by this package.
//
// Implementations are expected to block in [RunServer] until shutdown is
// requested and to release resources in [Shutdown].
type Server interface {
	// RunServer starts serving requests and blocks until the server stops.
	RunServer()

	// Shutdown gracefully stops the server and frees associated resources.
	Shutdown()
}

// transport is one listening server.
type transport interface {
	name() string
	addr() net.Addr
	serve() error
	shutdown(ctx context.Context)
}
