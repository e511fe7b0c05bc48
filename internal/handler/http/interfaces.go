package http

import "github.com/MKhiriev/altair-config/internal/config"

//go:generate mockgen -source=interfaces.go -destination=../../mock/config_provider_mock.go -package=mock

// ConfigProvider returns the configuration currently in effect. It may return
// nil when no configuration has been published.
type ConfigProvider interface {
	Config() *config.Config
}
