// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-location-info/internal/app"
	"github.com/MKhiriev/go-location-info/internal/logger"
	"github.com/MKhiriev/go-location-info/internal/utils"
	"github.com/MKhiriev/go-location-info/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var credentials models.Credentials
	if err := json.NewDecoder(r.Body).Decode(&credentials); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeMessage(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	registeredUser, err := h.services.AuthService.RegisterUser(ctx, credentials)
	if err != nil {
		// every registration failure, storage ones included, is a 400
		status := statusFromError(err)
		if status >= http.StatusInternalServerError {
			status = http.StatusBadRequest
		}
		log.Err(err).Int("status", status).Msg("user registration failed")
		writeMessage(w, messageFromError(err, app.MsgRegistrationFailed), status)
		return
	}

	log.Info().Int64("id", registeredUser.UserID).Msg("user registered")
	writeMessage(w, app.MsgUserRegistered, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var credentials models.Credentials
	if err := json.NewDecoder(r.Body).Decode(&credentials); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeMessage(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	foundUser, err := h.services.AuthService.Login(ctx, credentials)
	if err != nil {
		status := statusFromError(err)
		log.Err(err).Int("status", status).Msg("user login failed")
		writeMessage(w, messageFromError(err, http.StatusText(status)), status)
		return
	}

	token, err := h.services.AuthService.CreateToken(ctx, foundUser)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		writeMessage(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	log.Debug().Int64("id", foundUser.UserID).Msg("user successfully logged in")
	utils.WriteJSON(w, models.TokenResponse{AccessToken: token.SignedString}, http.StatusOK)
}
