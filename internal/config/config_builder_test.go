package config

import (
	"encoding/json"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "host-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

// ── newHostBuilder ────────────────────────────────────────────────────────────

// TestNewHostBuilder_InitialState verifies that a freshly created builder
// has no error and no layers.
func TestNewHostBuilder_InitialState(t *testing.T) {
	b := newHostBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.layers)
}

// ── build ─────────────────────────────────────────────────────────────────────

// TestBuild_EmptyBuilder verifies that building with no layers returns empty
// host overrides.
func TestBuild_EmptyBuilder(t *testing.T) {
	host, err := newHostBuilder().build()
	require.NoError(t, err)
	assert.Equal(t, &HostOverrides{}, host)
}

// TestBuild_PropagatesBuilderError verifies that a pre-set b.err is wrapped
// and returned, with nil overrides.
func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newHostBuilder()
	b.err = assert.AnError

	host, err := b.build()
	assert.Nil(t, host)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_FirstLayerWins verifies that earlier layers take precedence and
// later layers only fill unset fields.
func TestBuild_FirstLayerWins(t *testing.T) {
	b := newHostBuilder()
	b.layers = append(b.layers,
		&HostOverrides{EndpointURL: Ptr("https://env.test")},
		&HostOverrides{EndpointURL: Ptr("https://file.test"), InitialQuery: Ptr("{ file }")},
	)

	host, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "https://env.test", *host.EndpointURL)
	assert.Equal(t, "{ file }", *host.InitialQuery)
}

// ── withEnv ───────────────────────────────────────────────────────────────────

// TestWithEnv_ReturnsBuilder verifies the fluent interface.
func TestWithEnv_ReturnsBuilder(t *testing.T) {
	b := newHostBuilder()
	assert.Same(t, b, b.withEnv())
}

// TestWithEnv_ReadsEnvVars verifies that environment variables are picked up.
func TestWithEnv_ReadsEnvVars(t *testing.T) {
	t.Setenv("ALTAIR_ENDPOINT_URL", "https://env.test/graphql")
	t.Setenv("ALTAIR_DESKTOP", "true")

	b := newHostBuilder()
	b.withEnv()

	require.NoError(t, b.err)
	require.Len(t, b.layers, 1)
	require.NotNil(t, b.layers[0].EndpointURL)
	assert.Equal(t, "https://env.test/graphql", *b.layers[0].EndpointURL)
	assert.True(t, b.layers[0].Desktop)
}

// TestWithEnv_SetsErrorOnBadValue verifies that an unparsable value is
// recorded and no layer is appended.
func TestWithEnv_SetsErrorOnBadValue(t *testing.T) {
	t.Setenv("ALTAIR_TRANSLATE", "not-a-bool")

	b := newHostBuilder()
	b.withEnv()

	assert.Error(t, b.err)
	assert.Empty(t, b.layers)
}

// ── withJSON ──────────────────────────────────────────────────────────────────

// TestWithJSON_NoOp_WhenNoPathSet verifies that withJSON does nothing when
// no layer names a host file.
func TestWithJSON_NoOp_WhenNoPathSet(t *testing.T) {
	b := newHostBuilder()
	b.layers = append(b.layers, &HostOverrides{})
	assert.Same(t, b, b.withJSON())

	assert.Len(t, b.layers, 1)
	assert.NoError(t, b.err)
}

// TestWithJSON_AppendsLayer_WhenValidFile verifies that a valid host file is
// parsed and appended.
func TestWithJSON_AppendsLayer_WhenValidFile(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"endpoint_url":    "https://file.test",
		"initial_headers": map[string]string{"X-File": "1"},
		"web_app":         true,
	})

	b := newHostBuilder()
	b.layers = append(b.layers, &HostOverrides{JSONFilePath: path})
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.layers, 2)
	assert.Equal(t, "https://file.test", *b.layers[1].EndpointURL)
	assert.Equal(t, Headers{"X-File": "1"}, b.layers[1].InitialHeaders)
	assert.True(t, b.layers[1].WebApp)
}

// TestWithJSON_SetsError_WhenFileNotFound verifies that a missing file path
// sets b.err.
func TestWithJSON_SetsError_WhenFileNotFound(t *testing.T) {
	b := newHostBuilder()
	b.layers = append(b.layers, &HostOverrides{JSONFilePath: "/nonexistent/host.json"})
	b.withJSON()

	assert.Error(t, b.err)
}

// TestWithJSON_SetsError_WhenMalformedJSON verifies that invalid JSON content
// sets b.err.
func TestWithJSON_SetsError_WhenMalformedJSON(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "bad-*.json")
	require.NoError(t, err)
	_, err = f.WriteString("{not valid json")
	require.NoError(t, err)
	require.NoError(t, f.Close())

	b := newHostBuilder()
	b.layers = append(b.layers, &HostOverrides{JSONFilePath: f.Name()})
	b.withJSON()

	assert.Error(t, b.err)
}

// ── LoadHostOverrides ─────────────────────────────────────────────────────────

// TestLoadHostOverrides_EnvWinsOverFile verifies the env > file priority and
// that the file still fills fields the environment leaves unset.
func TestLoadHostOverrides_EnvWinsOverFile(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"endpoint_url":               "https://file.test",
		"initial_query":              "{ file }",
		"instance_storage_namespace": "",
	})
	t.Setenv("ALTAIR_HOST_CONFIG", path)
	t.Setenv("ALTAIR_ENDPOINT_URL", "https://env.test")

	host, err := LoadHostOverrides()
	require.NoError(t, err)

	assert.Equal(t, "https://env.test", *host.EndpointURL)
	assert.Equal(t, "{ file }", *host.InitialQuery)
	require.NotNil(t, host.InstanceStorageNamespace, "explicit empty value in the file is kept")
	assert.Equal(t, "", *host.InstanceStorageNamespace)
	assert.Nil(t, host.InitialVariables)
}

// TestLoadHostOverrides_MissingFile verifies that a bad host file path is
// reported.
func TestLoadHostOverrides_MissingFile(t *testing.T) {
	t.Setenv("ALTAIR_HOST_CONFIG", "/nonexistent/host.json")

	host, err := LoadHostOverrides()
	assert.Nil(t, host)
	assert.Error(t, err)
}
