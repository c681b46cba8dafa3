// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-location-info/internal/metrics"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID, h.withLogging, withMetrics, middleware.Recoverer, withGZip)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/", h.index)
		r.Post("/register", h.register)
		r.Post("/login", h.login)
		r.Post("/shutdown", h.shutdownServer)
		r.Method(http.MethodGet, "/metrics", metrics.Handler())
	})

	// routes with authorization
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/location/search", h.searchLocation)

		r.Get("/weather", h.weather)
		r.Get("/forecast", h.forecast)
		r.Get("/air-quality", h.airQuality)
		r.Get("/news", h.news)

		r.Get("/favorites", h.listFavorites)
		r.Post("/favorites", h.addFavorite)
		r.Delete("/favorites/{id}", h.removeFavorite)

		r.Get("/history", h.history)
	})

	router.NotFound(notFound)
	router.MethodNotAllowed(methodNotAllowed(router))

	return router
}
