// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"maps"
	"slices"
)

// Product-wide constants shared by every [Config].
const (
	DonationURL                  = "https://opencollective.com/altair/donate"
	DonationActionCountThreshold = 50
	AnalyticsID                  = "UA-41432833-6"
	AddQueryDepthLimit           = 3
	TabSize                      = 2
	DefaultTheme                 = "system"
	DefaultLanguage              = "en-US"
	TranslateModeLanguage        = "ach-UG"
	DefaultStorageNamespace      = "altair_"

	desktopMaxWindows        = 50
	webMaxWindows            = 15
	desktopQueryHistoryDepth = 100
	webQueryHistoryDepth     = 15
)

var (
	languages = map[string]string{
		"en-US": "English",
		"fr-FR": "French",
		"es-ES": "Español",
		"cs-CZ": "Czech",
		"de-DE": "German",
		"pt-BR": "Brazilian",
		"ru-RU": "Russian",
		"uk-UA": "Ukrainian",
		"zh-CN": "Chinese Simplified",
		"ja-JP": "Japanese",
		"sr-SP": "Serbian",
		"it-IT": "Italian",
		"pl-PL": "Polish",
		"ko-KR": "Korean",
		"ro-RO": "Romanian",
		"vi-VN": "Vietnamese",
	}

	themes = []string{"light", "dark", "dracula", "system"}
)

// Languages returns a copy of the supported UI languages keyed by locale.
func Languages() map[string]string {
	return maps.Clone(languages)
}

// Themes returns a copy of the built-in theme names.
func Themes() []string {
	return slices.Clone(themes)
}

// Donation describes the donation prompt.
type Donation struct {
	URL                  string `json:"url"`
	ActionCountThreshold int    `json:"action_count_threshold"`
}

// Config is the resolved client configuration. It is built once by [New] and
// must be treated as read-only afterwards; callers that need to change a
// nested map should copy it first.
type Config struct {
	Donation           Donation          `json:"donation"`
	GA                 string            `json:"ga"`
	AddQueryDepthLimit int               `json:"add_query_depth_limit"`
	TabSize            int               `json:"tab_size"`
	MaxWindows         int               `json:"max_windows"`
	DefaultLanguage    string            `json:"default_language"`
	Languages          map[string]string `json:"languages"`
	QueryHistoryDepth  int               `json:"query_history_depth"`
	DisableLineNumbers bool              `json:"disableLineNumbers"`
	DefaultTheme       string            `json:"defaultTheme"`
	Themes             []string          `json:"themes"`
	IsTranslateMode    bool              `json:"isTranslateMode"`
	IsWebApp           bool              `json:"isWebApp"`

	// InitialData is the merged snapshot consumed by the rest of the client.
	InitialData InitialData `json:"initialData"`
}

// InitialData holds the resolved per-field values. See [New] for the
// resolution order.
type InitialData struct {
	URL                          string                 `json:"url"`
	SubscriptionsEndpoint        string                 `json:"subscriptionsEndpoint"`
	SubscriptionsProtocol        string                 `json:"subscriptionsProtocol"`
	Query                        string                 `json:"query"`
	Variables                    string                 `json:"variables"`
	Headers                      Headers                `json:"headers"`
	Environments                 InitialEnvironments    `json:"environments"`
	PreRequestScript             string                 `json:"preRequestScript"`
	PostRequestScript            string                 `json:"postRequestScript"`
	InstanceStorageNamespace     string                 `json:"instanceStorageNamespace"`
	Settings                     Settings               `json:"settings,omitempty"`
	PersistedSettings            Settings               `json:"persistedSettings,omitempty"`
	InitialSubscriptionsProvider SubscriptionProviderID `json:"initialSubscriptionsProvider"`
	InitialSubscriptionsPayload  Dictionary             `json:"initialSubscriptionsPayload"`
	InitialHTTPMethod            HTTPVerb               `json:"initialHttpMethod"`
	PreserveState                bool                   `json:"preserveState"`
	Windows                      []WindowOptions        `json:"windows"`
	DisableAccount               bool                   `json:"disableAccount"`
}

// New builds a [Config] from the caller options and the host overrides. Both
// arguments may be nil.
//
// Every field of [InitialData] is resolved in this order:
//  1. the host override, for fields that have one, when it is set;
//  2. the matching field of opts, when it is set;
//  3. the literal default of the field.
//
// New never fails and performs no validation: values are carried through as
// supplied.
func New(opts *Options, host *HostOverrides) *Config {
	if host == nil {
		host = &HostOverrides{}
	}

	cfg := &Config{
		Donation: Donation{
			URL:                  DonationURL,
			ActionCountThreshold: DonationActionCountThreshold,
		},
		GA:                 AnalyticsID,
		AddQueryDepthLimit: AddQueryDepthLimit,
		TabSize:            TabSize,
		MaxWindows:         webMaxWindows,
		DefaultLanguage:    DefaultLanguage,
		Languages:          Languages(),
		QueryHistoryDepth:  webQueryHistoryDepth,
		DefaultTheme:       DefaultTheme,
		Themes:             Themes(),
		IsTranslateMode:    host.TranslateMode,
		IsWebApp:           host.WebApp,
	}

	if host.Desktop {
		cfg.MaxWindows = desktopMaxWindows
		cfg.QueryHistoryDepth = desktopQueryHistoryDepth
	}
	if host.TranslateMode {
		cfg.DefaultLanguage = TranslateModeLanguage
	}

	cfg.InitialData = resolveInitialData(host.options(), opts)

	return cfg
}

// defaultOptions returns the literal default of every field that has one.
// Settings and persisted settings have none and stay nil.
func defaultOptions() *Options {
	return &Options{
		WindowOptions: WindowOptions{
			EndpointURL:                  Ptr(""),
			SubscriptionsEndpoint:        Ptr(""),
			SubscriptionsProtocol:        Ptr(""),
			InitialQuery:                 Ptr(""),
			InitialVariables:             Ptr(""),
			InitialPreRequestScript:      Ptr(""),
			InitialPostRequestScript:     Ptr(""),
			InitialHeaders:               Headers{},
			InitialSubscriptionsProvider: Ptr(WebsocketProviderID),
			InitialSubscriptionsPayload:  Dictionary{},
			InitialHTTPMethod:            Ptr(HTTPVerbPost),
		},
		InitialEnvironments:      &InitialEnvironments{},
		InstanceStorageNamespace: Ptr(DefaultStorageNamespace),
		PreserveState:            Ptr(true),
		InitialWindows:           []WindowOptions{},
		DisableAccount:           Ptr(false),
	}
}

func resolveInitialData(host, opts *Options) InitialData {
	layers := []*Options{host}
	if opts != nil {
		layers = append(layers, opts)
	}
	layers = append(layers, defaultOptions())

	// mergo only fails on mismatched or non-struct arguments, which
	// same-typed Options layers rule out.
	merged, _ := mergeLayers(layers...)

	data := InitialData{
		URL:                          *merged.EndpointURL,
		SubscriptionsEndpoint:        *merged.SubscriptionsEndpoint,
		SubscriptionsProtocol:        *merged.SubscriptionsProtocol,
		Query:                        *merged.InitialQuery,
		Variables:                    *merged.InitialVariables,
		Headers:                      merged.InitialHeaders,
		Environments:                 *merged.InitialEnvironments,
		PreRequestScript:             *merged.InitialPreRequestScript,
		PostRequestScript:            *merged.InitialPostRequestScript,
		InstanceStorageNamespace:     *merged.InstanceStorageNamespace,
		Settings:                     merged.InitialSettings,
		PersistedSettings:            merged.PersistedSettings,
		InitialSubscriptionsProvider: *merged.InitialSubscriptionsProvider,
		InitialSubscriptionsPayload:  merged.InitialSubscriptionsPayload,
		InitialHTTPMethod:            *merged.InitialHTTPMethod,
		PreserveState:                *merged.PreserveState,
		Windows:                      merged.InitialWindows,
		DisableAccount:               *merged.DisableAccount,
	}

	// mergo leaves a nil slice in place when every layer is empty.
	if data.Windows == nil {
		data.Windows = []WindowOptions{}
	}

	return data
}
