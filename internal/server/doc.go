// Package server runs the delivery board HTTP server.
//
// It owns the server lifecycle: startup, signal handling, and graceful
// shutdown.
package server
