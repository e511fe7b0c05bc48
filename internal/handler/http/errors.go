// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

var (
	// ErrNoActiveConfig is returned when the provider has no configuration
	// to publish.
	ErrNoActiveConfig = errors.New("no active configuration")
)
