// Package server runs the configuration inspection HTTP server.
//
// It owns the listener lifecycle: startup, signal handling and graceful
// shutdown bounded by the configured request timeout.
package server
