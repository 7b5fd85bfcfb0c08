package server

// Server runs the brand-snap HTTP API.
type Server interface {
	// RunServer serves requests until the process receives a termination
	// signal, then shuts down gracefully.
	RunServer()

	// Shutdown stops accepting requests and waits for in-flight ones,
	// including pending image generations, to finish.
	Shutdown()
}
