package config

import (
	"errors"
	"fmt"
)

type hostBuilder struct {
	layers []*HostOverrides
	err    error
}

func newHostBuilder() *hostBuilder {
	return &hostBuilder{
		layers: make([]*HostOverrides, 0, 2),
	}
}

func (b *hostBuilder) build() (*HostOverrides, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occured during loading host overrides: %w", b.err)
	}

	return mergeLayers(b.layers...)
}

func (b *hostBuilder) withEnv() *hostBuilder {
	envHost := &HostOverrides{}
	if err := parseEnv(envHost); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.layers = append(b.layers, envHost)
	return b
}

func (b *hostBuilder) withJSON() *hostBuilder {
	var jsonPath string

	for _, layer := range b.layers {
		if layer.JSONFilePath != "" {
			jsonPath = layer.JSONFilePath
		}
	}

	if jsonPath != "" {
		jsonHost, err := parseHostJSON(jsonPath)
		if err != nil {
			b.err = errors.Join(b.err, err)
			return b
		}
		b.layers = append(b.layers, jsonHost)
	}

	return b
}

// LoadHostOverrides reads the host overrides from the environment and, when
// ALTAIR_HOST_CONFIG names one, from a JSON host file. Environment values win
// over the file; an empty environment variable counts as unset.
func LoadHostOverrides() (*HostOverrides, error) {
	return newHostBuilder().
		withEnv().
		withJSON().
		build()
}
