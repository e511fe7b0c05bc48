package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

func parseHostJSON(jsonFilePath string) (*HostOverrides, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var host HostOverrides
	if err := json.NewDecoder(jsonFile).Decode(&host); err != nil {
		return nil, fmt.Errorf("error decoding json host overrides: %w", err)
	}

	return &host, nil
}

// LoadOptions reads an [Options] file. Files ending in .yaml or .yml are
// decoded as YAML, anything else as JSON. Keys use the option names of the
// client (endpointURL, initialHeaders, preserveState, ...).
func LoadOptions(path string) (*Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrOptionsFile, err)
	}

	opts := &Options{}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, opts)
	default:
		err = json.Unmarshal(data, opts)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: decode %s: %w", ErrOptionsFile, path, err)
	}

	return opts, nil
}
