// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"net/http"

	"github.com/MKhiriev/go-location-info/internal/logger"
	"github.com/MKhiriev/go-location-info/internal/utils"
	"github.com/MKhiriev/go-location-info/models"
)

type coordinatesCall func(context.Context, models.Coordinates) (models.UpstreamResponse, error)

func (h *Handler) weather(w http.ResponseWriter, r *http.Request) {
	h.relayCoordinates(w, r, h.services.InfoService.Weather)
}

func (h *Handler) forecast(w http.ResponseWriter, r *http.Request) {
	h.relayCoordinates(w, r, h.services.InfoService.Forecast)
}

func (h *Handler) airQuality(w http.ResponseWriter, r *http.Request) {
	h.relayCoordinates(w, r, h.services.InfoService.AirQuality)
}

func (h *Handler) news(w http.ResponseWriter, r *http.Request) {
	resp, err := h.services.InfoService.News(r.Context(), r.URL.Query().Get("location"))
	if err != nil {
		status := statusFromError(err)
		logger.FromRequest(r).Err(err).Str("func", "*Handler.news").Int("status", status).Send()
		writeError(w, messageFromError(err, http.StatusText(status)), status)
		return
	}

	utils.WriteRaw(w, resp.Body, resp.ContentType, resp.StatusCode)
}

// relayCoordinates writes the upstream status and body unchanged.
func (h *Handler) relayCoordinates(w http.ResponseWriter, r *http.Request, call coordinatesCall) {
	query := r.URL.Query()
	coords := models.Coordinates{Lat: query.Get("lat"), Lon: query.Get("lon")}

	resp, err := call(r.Context(), coords)
	if err != nil {
		status := statusFromError(err)
		logger.FromRequest(r).Err(err).Str("path", r.URL.Path).Int("status", status).Send()
		writeError(w, messageFromError(err, http.StatusText(status)), status)
		return
	}

	utils.WriteRaw(w, resp.Body, resp.ContentType, resp.StatusCode)
}
