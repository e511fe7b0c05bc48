package config

import "errors"

var (
	// ErrInvalidServerConfigs indicates invalid inspection server settings
	// (for example, missing listen address or non-positive request timeout).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrOptionsFile is returned by [LoadOptions] when the options file cannot
	// be read or decoded.
	ErrOptionsFile = errors.New("invalid options file")
)
