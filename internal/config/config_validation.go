// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// Validate checks the inspection server settings before the server starts.
// [Config] itself is never validated: every field has a default and values
// are carried through as supplied.
func (cfg *Server) Validate() error {
	if cfg.HTTPAddress == "" || cfg.RequestTimeout <= 0 {
		return ErrInvalidServerConfigs
	}

	return nil
}
