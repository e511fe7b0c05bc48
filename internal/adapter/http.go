package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/MKhiriev/altair-config/internal/config"
	"github.com/MKhiriev/altair-config/internal/logger"
	"github.com/MKhiriev/altair-config/internal/utils"
)

type httpConfigAdapter struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPConfigAdapter constructs an HTTP/REST implementation of
// [ConfigAdapter]. address may omit the scheme, in which case http is
// assumed; a trailing slash is dropped.
//
// Returns an error if address is empty or cannot be parsed as a URL with a
// host.
func NewHTTPConfigAdapter(address string, timeout time.Duration, logger *logger.Logger) (ConfigAdapter, error) {
	baseURL, err := normalizeBaseURL(address)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	return &httpConfigAdapter{client: utils.NewHTTPClient(baseURL, timeout), logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// FetchConfig implements [ConfigAdapter] via GET /api/config. Returns
// [ErrUnavailable] (wrapped) when the server has nothing active.
func (h *httpConfigAdapter) FetchConfig(ctx context.Context) (*config.Config, error) {
	var cfg config.Config
	if err := h.getJSON(ctx, "/api/config", &cfg); err != nil {
		return nil, fmt.Errorf("fetch config: %w", err)
	}
	return &cfg, nil
}

// FetchInitialData implements [ConfigAdapter] via
// GET /api/config/initial-data.
func (h *httpConfigAdapter) FetchInitialData(ctx context.Context) (*config.InitialData, error) {
	var data config.InitialData
	if err := h.getJSON(ctx, "/api/config/initial-data", &data); err != nil {
		return nil, fmt.Errorf("fetch initial data: %w", err)
	}
	return &data, nil
}

// FetchVersion implements [ConfigAdapter] via GET /api/version/.
func (h *httpConfigAdapter) FetchVersion(ctx context.Context) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Accept", "text/plain").
		Get("/api/version/")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(resp.String()), nil
}

func (h *httpConfigAdapter) getJSON(ctx context.Context, path string, dst any) error {
	resp, err := h.client.R().
		SetContext(ctx).
		Get(path)
	if err != nil {
		return fmt.Errorf("request %s: %w", path, err)
	}

	h.logger.Debug().
		Str("path", path).
		Int("status", resp.StatusCode()).
		Str("trace_id", resp.Header().Get("X-Trace-ID")).
		Msg("inspection response")

	if err = mapHTTPError(resp); err != nil {
		return err
	}

	if err = json.Unmarshal(resp.Body(), dst); err != nil {
		return fmt.Errorf("decode %s response: %w", path, err)
	}
	return nil
}
