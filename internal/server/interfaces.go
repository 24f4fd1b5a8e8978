package server

// Server defines the lifecycle contract of the application server.
//
// Implementations block in [RunServer] until shutdown is requested and
// release resources in [Shutdown].
type Server interface {
	// RunServer starts serving requests and blocks until shutdown is
	// requested or the HTTP server fails to serve.
	RunServer()

	// Shutdown gracefully stops the server and frees associated resources.
	Shutdown()
}
