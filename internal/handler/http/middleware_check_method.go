// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"slices"
	"strings"

	"github.com/MKhiriev/go-location-info/internal/app"
	"github.com/go-chi/chi/v5"
)

// methodNotAllowed returns the router's MethodNotAllowed handler. It answers
// 405 with a JSON body and an Allow header listing the methods registered
// for the requested path.
func methodNotAllowed(router *chi.Mux) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var allowed []string
		for _, method := range []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete} {
			if router.Match(chi.NewRouteContext(), method, r.URL.Path) {
				allowed = append(allowed, method)
			}
		}
		slices.Sort(allowed)

		if len(allowed) > 0 {
			w.Header().Set("Allow", strings.Join(allowed, ", "))
		}
		writeMessage(w, app.MsgMethodNotAllowed, http.StatusMethodNotAllowed)
	}
}

// notFound answers unknown paths with a JSON 404.
func notFound(w http.ResponseWriter, r *http.Request) {
	writeMessage(w, app.MsgNotFound, http.StatusNotFound)
}
