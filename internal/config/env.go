// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/caarlos0/env/v11"
)

var envParsers = map[reflect.Type]env.ParserFunc{
	reflect.TypeOf((*Headers)(nil)).Elem(): parseHeaders,
}

// parseEnv populates cfg from environment variables using the caarlos0/env
// library. Struct fields are mapped via their `env` tags defined on
// [HostOverrides] and [Server].
//
// Returns a wrapped error if env.Parse fails (e.g. a value cannot be
// converted to the target type).
func parseEnv(cfg any) error {
	err := env.ParseWithOptions(cfg, env.Options{FuncMap: envParsers})
	if err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}

// parseHeaders reads "name:value,name2:value2". Values stay strings; only the
// first colon splits, so values may contain colons themselves.
func parseHeaders(v string) (any, error) {
	headers := Headers{}
	for _, pair := range strings.Split(v, ",") {
		name, value, ok := strings.Cut(pair, ":")
		if !ok {
			return nil, fmt.Errorf("invalid header %q: want name:value", pair)
		}
		headers[strings.TrimSpace(name)] = value
	}
	return headers, nil
}
