// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// HTTPVerb is the HTTP method used by the client to send GraphQL requests.
type HTTPVerb string

// HTTP methods accepted by the request-execution engine.
const (
	HTTPVerbPost   HTTPVerb = "POST"
	HTTPVerbGet    HTTPVerb = "GET"
	HTTPVerbPut    HTTPVerb = "PUT"
	HTTPVerbDelete HTTPVerb = "DELETE"
)

// SubscriptionProviderID identifies the transport used for GraphQL
// subscriptions. Values are passed through without validation.
type SubscriptionProviderID string

// Known subscription providers.
const (
	WebsocketProviderID   SubscriptionProviderID = "websocket"
	GraphQLWSProviderID   SubscriptionProviderID = "graphql-ws"
	AppSyncProviderID     SubscriptionProviderID = "app-sync"
	ActionCableProviderID SubscriptionProviderID = "action-cable"
	GraphQLSSEProviderID  SubscriptionProviderID = "graphql-sse"
)

// Headers maps request header names to values
// (e.g. {"X-GraphQL-Token": "asd7-237s-2bdk-nsdk4"}). Values are kept as
// decoded, so a numeric or null value reaches the client unchanged.
type Headers map[string]any

// Dictionary is an untyped key-value mapping, used for subscription
// connection params.
type Dictionary map[string]any

// Settings is a partial set of application settings. Its shape belongs to the
// settings store; this package only carries it through.
type Settings map[string]any

// EnvironmentState is a single named set of environment variables.
type EnvironmentState struct {
	Title     string     `json:"title,omitempty" yaml:"title,omitempty"`
	Variables Dictionary `json:"variables,omitempty" yaml:"variables,omitempty"`
}

// InitialEnvironments is the base environment plus its sub-environments.
type InitialEnvironments struct {
	Base            *EnvironmentState  `json:"base,omitempty" yaml:"base,omitempty"`
	SubEnvironments []EnvironmentState `json:"subEnvironments,omitempty" yaml:"subEnvironments,omitempty"`
}

// WindowOptions holds the options of a single query window. A nil field means
// the option was not supplied.
type WindowOptions struct {
	// InitialName is the initial name of the window.
	InitialName *string `json:"initialName,omitempty" yaml:"initialName,omitempty"`

	// EndpointURL is the URL of the GraphQL server endpoint.
	EndpointURL *string `json:"endpointURL,omitempty" yaml:"endpointURL,omitempty"`

	// SubscriptionsEndpoint is the subscriptions URL, relative or absolute.
	SubscriptionsEndpoint *string `json:"subscriptionsEndpoint,omitempty" yaml:"subscriptionsEndpoint,omitempty"`

	// SubscriptionsProtocol is used when SubscriptionsEndpoint is relative
	// (e.g. "wss").
	SubscriptionsProtocol *string `json:"subscriptionsProtocol,omitempty" yaml:"subscriptionsProtocol,omitempty"`

	InitialQuery             *string `json:"initialQuery,omitempty" yaml:"initialQuery,omitempty"`
	InitialVariables         *string `json:"initialVariables,omitempty" yaml:"initialVariables,omitempty"`
	InitialPreRequestScript  *string `json:"initialPreRequestScript,omitempty" yaml:"initialPreRequestScript,omitempty"`
	InitialPostRequestScript *string `json:"initialPostRequestScript,omitempty" yaml:"initialPostRequestScript,omitempty"`

	InitialHeaders Headers `json:"initialHeaders,omitempty" yaml:"initialHeaders,omitempty"`

	// InitialSubscriptionsProvider defaults to [WebsocketProviderID].
	InitialSubscriptionsProvider *SubscriptionProviderID `json:"initialSubscriptionsProvider,omitempty" yaml:"initialSubscriptionsProvider,omitempty"`

	// InitialSubscriptionsPayload holds the subscription connection params.
	InitialSubscriptionsPayload Dictionary `json:"initialSubscriptionsPayload,omitempty" yaml:"initialSubscriptionsPayload,omitempty"`

	// InitialHTTPMethod defaults to [HTTPVerbPost].
	InitialHTTPMethod *HTTPVerb `json:"initialHttpMethod,omitempty" yaml:"initialHttpMethod,omitempty"`
}

// Options is the caller-supplied partial configuration accepted by [New].
// Every field is optional.
type Options struct {
	WindowOptions `yaml:",inline"`

	// InitialEnvironments are the environments added on first load.
	InitialEnvironments *InitialEnvironments `json:"initialEnvironments,omitempty" yaml:"initialEnvironments,omitempty"`

	// InstanceStorageNamespace separates the stored data of several instances
	// running on the same domain (e.g. "altair_dev_").
	InstanceStorageNamespace *string `json:"instanceStorageNamespace,omitempty" yaml:"instanceStorageNamespace,omitempty"`

	InitialSettings Settings `json:"initialSettings,omitempty" yaml:"initialSettings,omitempty"`

	// PreserveState reports whether state survives subsequent app loads.
	// Defaults to true.
	PreserveState *bool `json:"preserveState,omitempty" yaml:"preserveState,omitempty"`

	// InitialWindows lists the windows to open on load.
	InitialWindows []WindowOptions `json:"initialWindows,omitempty" yaml:"initialWindows,omitempty"`

	// PersistedSettings are merged with the app settings by the settings store.
	PersistedSettings Settings `json:"persistedSettings,omitempty" yaml:"persistedSettings,omitempty"`

	// DisableAccount turns off the account and remote syncing functionality.
	DisableAccount *bool `json:"disableAccount,omitempty" yaml:"disableAccount,omitempty"`
}

// Ptr returns a pointer to v. It is a convenience for filling optional fields.
func Ptr[T any](v T) *T {
	return &v
}
