// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client side of the configuration inspection
// API.
//
// [ConfigAdapter] decouples callers (the fetch command) from the transport.
// The package ships an HTTP/REST implementation ([NewHTTPConfigAdapter]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] (e.g. [ErrUnavailable]
// for 503 when the server has no active configuration).
package adapter

import (
	"context"

	"github.com/MKhiriev/altair-config/internal/config"
)

// ConfigAdapter reads the active configuration published by a running
// inspection server.
type ConfigAdapter interface {
	// FetchConfig returns the server's active configuration, static fields
	// included.
	FetchConfig(ctx context.Context) (*config.Config, error)

	// FetchInitialData returns only the resolved initial data.
	FetchInitialData(ctx context.Context) (*config.InitialData, error)

	// FetchVersion returns the build version reported by the server.
	FetchVersion(ctx context.Context) (string, error)
}
