// Package server wires and runs the webhook service's HTTP transport.
//
// It owns the server lifecycle: startup, stopping on context cancellation
// and graceful shutdown, which also waits for fire-and-forget deliveries
// that are still in flight.
package server
