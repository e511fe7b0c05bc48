package http

import (
	"github.com/MKhiriev/altair-config/internal/logger"
	"github.com/MKhiriev/altair-config/internal/utils"
)

// Handler serves the read-only inspection API over the active configuration.
type Handler struct {
	provider ConfigProvider
	version  string
	traceIDs *utils.UUIDGenerator

	logger *logger.Logger
}

func NewHandler(provider ConfigProvider, version string, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		provider: provider,
		version:  version,
		traceIDs: utils.NewUUIDGenerator(),
		logger:   logger,
	}
}
