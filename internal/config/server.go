// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// Default inspection server settings.
const (
	DefaultServerAddress  = "localhost:8085"
	DefaultRequestTimeout = 10 * time.Second
)

// Server holds network and timeout settings of the inspection server that
// publishes the active configuration.
type Server struct {
	// HTTPAddress is the TCP address the server listens on, in "host:port"
	// format (e.g. "127.0.0.1:8085").
	// Env: ALTAIR_SERVER_ADDRESS
	HTTPAddress string `env:"ALTAIR_SERVER_ADDRESS"`

	// RequestTimeout bounds reading a request and writing its response
	// (e.g. "5s", "1m").
	// Env: ALTAIR_SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"ALTAIR_SERVER_REQUEST_TIMEOUT"`
}

// GetServerConfig loads the inspection server settings from the environment
// and fills unset fields with [DefaultServerAddress] and
// [DefaultRequestTimeout].
func GetServerConfig() (*Server, error) {
	cfg := &Server{}
	if err := parseEnv(cfg); err != nil {
		return nil, fmt.Errorf("error loading server config: %w", err)
	}

	if cfg.HTTPAddress == "" {
		cfg.HTTPAddress = DefaultServerAddress
	}
	if cfg.RequestTimeout == 0 {
		cfg.RequestTimeout = DefaultRequestTimeout
	}

	return cfg, nil
}
