// Package server runs the HTTP server of the application, including signal
// handling and graceful shutdown.
package server
