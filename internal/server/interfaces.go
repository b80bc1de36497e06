// Package server owns the listeners of the notes service.
//
// Addresses are bound when the server is built, so a port conflict is
// reported before any request is accepted. RunServer serves until SIGTERM,
// SIGINT or SIGQUIT and then drains both transports within
// the configured shutdown timeout.
package server

// Server runs the HTTP API and the gRPC health endpoint together.
type Server interface {
	// RunServer blocks until a termination signal arrives.
	RunServer()
	Shutdown()
}
