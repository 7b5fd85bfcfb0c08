// Package http implements the REST API of the brand-snap server.
//
// It exposes route wiring, request handlers, and middleware. Cross-cutting
// concerns such as request tracing, access logging, response compression,
// anti-forgery checks and bearer authentication are handled in this package
// before requests are delegated to the service layer.
package http
