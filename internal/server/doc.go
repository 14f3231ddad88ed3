// Package server runs the REST and gRPC transports of the backend.
//
// Listeners are bound when the server is created so a busy port fails at
// startup. [Server.RunServer] serves every transport in one errgroup and
// shuts all of them down when a signal arrives or any transport fails.
package server
