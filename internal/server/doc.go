// Package server wires and runs the vault HTTP API server.
//
// It owns the server lifecycle: binding the listener, serving until a stop
// signal arrives, and a graceful shutdown bounded by the configured timeout.
package server
