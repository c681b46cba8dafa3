// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"embed"
	"html/template"

	"github.com/MKhiriev/go-location-info/internal/config"
	"github.com/MKhiriev/go-location-info/internal/logger"
	"github.com/MKhiriev/go-location-info/internal/service"
)

//go:embed templates/index.html
var templatesFS embed.FS

var indexTemplate = template.Must(template.ParseFS(templatesFS, "templates/index.html"))

type Handler struct {
	services *service.Services

	// allowShutdown enables POST /shutdown; shutdown is what it calls.
	allowShutdown bool
	shutdown      func()

	logger *logger.Logger
}

// NewHandler returns the HTTP handler. shutdown may be nil, in which case
// POST /shutdown always refuses.
func NewHandler(services *service.Services, cfg config.Server, shutdown func(), logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:      services,
		allowShutdown: cfg.AllowShutdown && shutdown != nil,
		shutdown:      shutdown,
		logger:        logger,
	}
}
