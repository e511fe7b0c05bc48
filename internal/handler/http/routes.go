package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging, withGZip)

	router.Get("/api/config", h.getActiveConfig)
	router.Get("/api/config/initial-data", h.getInitialData)
	router.Get("/api/version/", h.getVersion)

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
