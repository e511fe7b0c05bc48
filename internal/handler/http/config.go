// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/altair-config/internal/logger"
	"github.com/MKhiriev/altair-config/internal/utils"
)

// getActiveConfig writes the whole active configuration, static fields
// included, using the key names the client reads.
func (h *Handler) getActiveConfig(w http.ResponseWriter, r *http.Request) {
	cfg := h.provider.Config()
	if cfg == nil {
		writeError(w, r, ErrNoActiveConfig)
		return
	}

	writeJSON(w, r, cfg)
}

// getInitialData writes only the resolved initial data of the active
// configuration.
func (h *Handler) getInitialData(w http.ResponseWriter, r *http.Request) {
	cfg := h.provider.Config()
	if cfg == nil {
		writeError(w, r, ErrNoActiveConfig)
		return
	}

	writeJSON(w, r, cfg.InitialData)
}

func writeJSON(w http.ResponseWriter, r *http.Request, v any) {
	if _, err := utils.WriteJSON(w, v, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Msg("error encoding response")
	}
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFromError(err)
	logger.FromRequest(r).Warn().Err(err).Int("status", status).Msg("request failed")
	http.Error(w, err.Error(), status)
}
