package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHTTPClient_Configured(t *testing.T) {
	client := NewHTTPClient("http://localhost:8085", 3*time.Second)

	require.NotNil(t, client)
	require.NotNil(t, client.Client)
	assert.Equal(t, "http://localhost:8085", client.BaseURL)
	assert.Equal(t, "application/json", client.Header.Get("Accept"))
}

func TestNewHTTPClient_Independence(t *testing.T) {
	client1 := NewHTTPClient("http://a.test", 0)
	client2 := NewHTTPClient("http://b.test", 0)

	assert.NotSame(t, client1.Client, client2.Client)
}

func TestNewHTTPClient_SendsAcceptHeader(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		assert.Equal(t, "/api/version/", r.URL.Path)
		w.Write([]byte("v1"))
	}))
	defer srv.Close()

	resp, err := NewHTTPClient(srv.URL, time.Second).R().Get("/api/version/")

	require.NoError(t, err)
	assert.Equal(t, "v1", resp.String())
}
