// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-location-info/internal/adapter"
	"github.com/MKhiriev/go-location-info/internal/app"
	"github.com/MKhiriev/go-location-info/internal/service"
	"github.com/MKhiriev/go-location-info/internal/store"
	"github.com/MKhiriev/go-location-info/internal/utils"
	"github.com/MKhiriev/go-location-info/internal/validators"
	"github.com/MKhiriev/go-location-info/models"
)

var errorStatusMap = map[error]int{
	service.ErrValidation:              http.StatusBadRequest,
	service.ErrInvalidCredentials:      http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrLocationNotFound:        http.StatusNotFound,
	service.ErrNewsAPIKeyMissing:       http.StatusInternalServerError,
	service.ErrUpstreamRequestFailed:   http.StatusInternalServerError,
	service.ErrUpstreamReportedError:   http.StatusBadRequest,

	store.ErrEmailAlreadyExists: http.StatusBadRequest,
	store.ErrFavoriteNotFound:   http.StatusNotFound,

	store.ErrBuildingSQLQuery:     http.StatusInternalServerError,
	store.ErrExecutingQuery:       http.StatusInternalServerError,
	store.ErrBeginningTransaction: http.StatusInternalServerError,
	store.ErrCommitingTransaction: http.StatusInternalServerError,
	store.ErrScanningRow:          http.StatusInternalServerError,
	store.ErrScanningRows:         http.StatusInternalServerError,

	adapter.ErrUpstreamUnavailable: http.StatusInternalServerError,
	adapter.ErrInvalidUpstreamBody: http.StatusInternalServerError,
}

// errorMessages is checked in order; the first match wins.
var errorMessages = []struct {
	err     error
	message string
}{
	{store.ErrEmailAlreadyExists, app.MsgEmailAlreadyExists},
	{service.ErrInvalidCredentials, app.MsgInvalidCredentials},
	{service.ErrTokenIsExpiredOrInvalid, app.MsgTokenIsExpiredOrInvalid},
	{service.ErrLocationNotFound, app.MsgLocationNotFound},
	{store.ErrFavoriteNotFound, app.MsgFavoriteNotFound},
	{service.ErrNewsAPIKeyMissing, app.MsgNewsAPIKeyMissing},
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// messageFromError returns the client-facing text for err, or fallback
// when err carries none.
func messageFromError(err error, fallback string) string {
	if message, ok := validators.PublicMessage(err); ok {
		return message
	}

	var upstreamErr *service.UpstreamError
	if errors.As(err, &upstreamErr) {
		return upstreamErr.Message
	}

	for _, m := range errorMessages {
		if errors.Is(err, m.err) {
			return m.message
		}
	}

	return fallback
}

// writeMessage writes a {"message": ...} body.
func writeMessage(w http.ResponseWriter, message string, status int) {
	utils.WriteJSON(w, models.MessageResponse{Message: message}, status)
}

// writeError writes an {"error": ...} body.
func writeError(w http.ResponseWriter, message string, status int) {
	utils.WriteJSON(w, models.ErrorResponse{Error: message}, status)
}
