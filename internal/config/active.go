// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "sync/atomic"

var active atomic.Pointer[Config]

func init() {
	active.Store(New(nil, nil))
}

// SetActive replaces the process-wide active configuration. The value is
// stored as given, without validation or merging; the last call wins.
func SetActive(cfg *Config) {
	active.Store(cfg)
}

// Active returns the process-wide active configuration. The returned value is
// shared, not copied (treat as read-only).
func Active() *Config {
	return active.Load()
}

// ActiveProvider exposes [Active] to components that take the configuration
// through an interface.
type ActiveProvider struct{}

// Config returns the current active configuration.
func (ActiveProvider) Config() *Config {
	return Active()
}
