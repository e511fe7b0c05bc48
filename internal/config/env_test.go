// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setEnvVars(t *testing.T, envVars map[string]string) {
	t.Helper()
	for k, v := range envVars {
		t.Setenv(k, v)
	}
}

func TestParseEnv_AllHostFields(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"ALTAIR_HOST_CONFIG": "/path/to/host.json",

		"ALTAIR_TRANSLATE": "true",
		"ALTAIR_WEB_APP":   "true",
		"ALTAIR_DESKTOP":   "false",

		"ALTAIR_ENDPOINT_URL":               "https://example.com/graphql",
		"ALTAIR_SUBSCRIPTIONS_ENDPOINT":     "wss://example.com/subscriptions",
		"ALTAIR_INITIAL_QUERY":              "{ hello }",
		"ALTAIR_INITIAL_VARIABLES":          `{"id":1}`,
		"ALTAIR_INITIAL_HEADERS":            "X-GraphQL-Token:asd7,X-Trace:on",
		"ALTAIR_INITIAL_PRE_REQUEST_SCRIPT": "pre()",
		"ALTAIR_INSTANCE_STORAGE_NAMESPACE": "altair_dev_",
	}
	setEnvVars(t, envVars)

	// Act
	host := &HostOverrides{}
	err := parseEnv(host)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "/path/to/host.json", host.JSONFilePath)
	assert.True(t, host.TranslateMode)
	assert.True(t, host.WebApp)
	assert.False(t, host.Desktop)

	assert.Equal(t, Ptr("https://example.com/graphql"), host.EndpointURL)
	assert.Equal(t, Ptr("wss://example.com/subscriptions"), host.SubscriptionsEndpoint)
	assert.Equal(t, Ptr("{ hello }"), host.InitialQuery)
	assert.Equal(t, Ptr(`{"id":1}`), host.InitialVariables)
	assert.Equal(t, Headers{"X-GraphQL-Token": "asd7", "X-Trace": "on"}, host.InitialHeaders)
	assert.Equal(t, Ptr("pre()"), host.InitialPreRequestScript)
	assert.Equal(t, Ptr("altair_dev_"), host.InstanceStorageNamespace)
}

func TestParseEnv_UnsetFieldsStayNil(t *testing.T) {
	// Arrange
	setEnvVars(t, map[string]string{
		"ALTAIR_INITIAL_QUERY": "{ hello }",
		"ALTAIR_ENDPOINT_URL":  "",
	})

	// Act
	host := &HostOverrides{}
	err := parseEnv(host)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, Ptr("{ hello }"), host.InitialQuery)
	assert.Nil(t, host.EndpointURL, "empty variable counts as unset")
	assert.Nil(t, host.SubscriptionsEndpoint)
	assert.Nil(t, host.InitialHeaders)
	assert.Nil(t, host.InstanceStorageNamespace)
	assert.False(t, host.TranslateMode)
}

func TestParseEnv_InvalidBool(t *testing.T) {
	setEnvVars(t, map[string]string{"ALTAIR_WEB_APP": "maybe"})

	err := parseEnv(&HostOverrides{})
	assert.Error(t, err)
}

func TestParseEnv_ServerFields(t *testing.T) {
	setEnvVars(t, map[string]string{
		"ALTAIR_SERVER_ADDRESS":         "127.0.0.1:9000",
		"ALTAIR_SERVER_REQUEST_TIMEOUT": "30s",
	})

	cfg := &Server{}
	require.NoError(t, parseEnv(cfg))

	assert.Equal(t, "127.0.0.1:9000", cfg.HTTPAddress)
	assert.Equal(t, 30*time.Second, cfg.RequestTimeout)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	setEnvVars(t, map[string]string{"ALTAIR_SERVER_REQUEST_TIMEOUT": "soon"})

	err := parseEnv(&Server{})
	assert.Error(t, err)
}

func TestParseEnv_HeaderValueWithColon(t *testing.T) {
	setEnvVars(t, map[string]string{"ALTAIR_INITIAL_HEADERS": "Origin:https://altair.test,X-A:1"})

	host := &HostOverrides{}
	require.NoError(t, parseEnv(host))

	assert.Equal(t, Headers{"Origin": "https://altair.test", "X-A": "1"}, host.InitialHeaders)
}

func TestParseEnv_InvalidHeader(t *testing.T) {
	setEnvVars(t, map[string]string{"ALTAIR_INITIAL_HEADERS": "X-A:1,broken"})

	err := parseEnv(&HostOverrides{})
	assert.Error(t, err)
}
