// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// HostOverrides holds the values an embedding host injects before a [Config]
// is built. Override values win over the matching [Options] field whenever
// they are present; a nil pointer or nil map means "not set".
//
// Struct tags:
//   - env: environment variable read by [LoadHostOverrides] (caarlos0/env).
//   - json: key in the optional host file.
type HostOverrides struct {
	// TranslateMode switches the default language to the in-context
	// translation pseudo-locale.
	// Env: ALTAIR_TRANSLATE
	TranslateMode bool `env:"ALTAIR_TRANSLATE" json:"translate_mode,omitempty"`

	// WebApp reports that the client runs as the hosted web app.
	// Env: ALTAIR_WEB_APP
	WebApp bool `env:"ALTAIR_WEB_APP" json:"web_app,omitempty"`

	// Desktop reports that the client runs inside a desktop shell, which
	// raises the window and history limits.
	// Env: ALTAIR_DESKTOP
	Desktop bool `env:"ALTAIR_DESKTOP" json:"desktop,omitempty"`

	// Env: ALTAIR_ENDPOINT_URL
	EndpointURL *string `env:"ALTAIR_ENDPOINT_URL" json:"endpoint_url,omitempty"`

	// Env: ALTAIR_SUBSCRIPTIONS_ENDPOINT
	SubscriptionsEndpoint *string `env:"ALTAIR_SUBSCRIPTIONS_ENDPOINT" json:"subscriptions_endpoint,omitempty"`

	// Env: ALTAIR_INITIAL_QUERY
	InitialQuery *string `env:"ALTAIR_INITIAL_QUERY" json:"initial_query,omitempty"`

	// Env: ALTAIR_INITIAL_VARIABLES
	InitialVariables *string `env:"ALTAIR_INITIAL_VARIABLES" json:"initial_variables,omitempty"`

	// InitialHeaders is read from the environment as "name:value,name2:value2".
	// Env: ALTAIR_INITIAL_HEADERS
	InitialHeaders Headers `env:"ALTAIR_INITIAL_HEADERS" json:"initial_headers,omitempty"`

	// Env: ALTAIR_INITIAL_PRE_REQUEST_SCRIPT
	InitialPreRequestScript *string `env:"ALTAIR_INITIAL_PRE_REQUEST_SCRIPT" json:"initial_pre_request_script,omitempty"`

	// Env: ALTAIR_INSTANCE_STORAGE_NAMESPACE
	InstanceStorageNamespace *string `env:"ALTAIR_INSTANCE_STORAGE_NAMESPACE" json:"instance_storage_namespace,omitempty"`

	// JSONFilePath is the optional path to a JSON host file. Values from the
	// environment win over the file.
	// Env: ALTAIR_HOST_CONFIG
	JSONFilePath string `env:"ALTAIR_HOST_CONFIG" json:"-"`
}

// options projects the host values onto the [Options] fields they override.
// Fields without a host counterpart (environments, post-request script,
// settings, subscriptions provider and payload, HTTP method, preserve-state,
// windows, disable-account) stay nil, so they always resolve from the caller
// options or the literal default.
func (h *HostOverrides) options() *Options {
	if h == nil {
		return &Options{}
	}

	return &Options{
		WindowOptions: WindowOptions{
			EndpointURL:             h.EndpointURL,
			SubscriptionsEndpoint:   h.SubscriptionsEndpoint,
			InitialQuery:            h.InitialQuery,
			InitialVariables:        h.InitialVariables,
			InitialHeaders:          h.InitialHeaders,
			InitialPreRequestScript: h.InitialPreRequestScript,
		},
		InstanceStorageNamespace: h.InstanceStorageNamespace,
	}
}
