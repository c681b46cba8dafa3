// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"net/http"

	"github.com/MKhiriev/go-location-info/internal/app"
	"github.com/MKhiriev/go-location-info/internal/logger"
)

type indexPage struct {
	Version string
}

func (h *Handler) index(w http.ResponseWriter, r *http.Request) {
	page := indexPage{Version: h.services.AppInfoService.GetAppVersion(r.Context())}

	var buf bytes.Buffer
	if err := indexTemplate.Execute(&buf, page); err != nil {
		logger.FromRequest(r).Err(err).Msg("rendering index page failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}

func (h *Handler) shutdownServer(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	if !h.allowShutdown {
		log.Warn().Msg("shutdown requested but not enabled")
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(app.MsgShutdownDisabled))
		return
	}

	log.Info().Msg("shutdown requested")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(app.MsgServerShutdown))

	// the server drains in-flight requests, this one included
	h.shutdown()
}
