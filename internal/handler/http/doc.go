// Package http implements the inspection API that publishes the active
// client configuration.
//
// It exposes route wiring, request handlers, and middleware. Cross-cutting
// concerns such as request tracing, access logging, and response compression
// are handled in this package before the configuration is read from the
// [ConfigProvider].
package http
