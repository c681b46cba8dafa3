// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-location-info/internal/app"
	"github.com/MKhiriev/go-location-info/internal/logger"
	"github.com/MKhiriev/go-location-info/internal/utils"
	"github.com/MKhiriev/go-location-info/internal/validators"
	"github.com/MKhiriev/go-location-info/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) searchLocation(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	result, err := h.services.LocationService.Search(r.Context(), userID, r.URL.Query().Get("q"))
	if err != nil {
		status := statusFromError(err)
		log.Err(err).Str("func", "*Handler.searchLocation").Int("status", status).Send()
		writeError(w, messageFromError(err, http.StatusText(status)), status)
		return
	}

	utils.WriteJSON(w, result, http.StatusOK)
}

func (h *Handler) listFavorites(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	favorites, err := h.services.LocationService.ListFavorites(r.Context(), userID)
	if err != nil {
		status := statusFromError(err)
		log.Err(err).Str("func", "*Handler.listFavorites").Send()
		writeMessage(w, messageFromError(err, http.StatusText(status)), status)
		return
	}

	utils.WriteJSON(w, favorites, http.StatusOK)
}

func (h *Handler) addFavorite(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	var request models.FavoriteRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Str("func", "*Handler.addFavorite").Msg("Invalid JSON was passed")
		writeMessage(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	id, err := h.services.LocationService.AddFavorite(r.Context(), userID, request)
	if err != nil {
		status := statusFromError(err)
		log.Err(err).Str("func", "*Handler.addFavorite").Int("status", status).Send()
		writeMessage(w, messageFromError(err, http.StatusText(status)), status)
		return
	}

	utils.WriteJSON(w, models.FavoriteCreatedResponse{Message: app.MsgFavoriteAdded, ID: id}, http.StatusCreated)
}

func (h *Handler) removeFavorite(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	favoriteID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		log.Err(err).Str("func", "*Handler.removeFavorite").Msg("bad favorite id")
		message, _ := validators.PublicMessage(validators.ErrInvalidFavoriteID)
		writeMessage(w, message, http.StatusBadRequest)
		return
	}

	if err = h.services.LocationService.RemoveFavorite(r.Context(), userID, favoriteID); err != nil {
		status := statusFromError(err)
		log.Err(err).Str("func", "*Handler.removeFavorite").Int("status", status).Send()
		writeMessage(w, messageFromError(err, http.StatusText(status)), status)
		return
	}

	writeMessage(w, app.MsgFavoriteRemoved, http.StatusOK)
}

func (h *Handler) history(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	entries, err := h.services.LocationService.History(r.Context(), userID)
	if err != nil {
		status := statusFromError(err)
		log.Err(err).Str("func", "*Handler.history").Send()
		writeMessage(w, messageFromError(err, http.StatusText(status)), status)
		return
	}

	utils.WriteJSON(w, entries, http.StatusOK)
}

// userID reads the id stored by the auth middleware and answers 401 itself
// when it is missing.
func (h *Handler) userID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		logger.FromRequest(r).Err(ErrNoUserInContext).Send()
		writeMessage(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
	}
	return userID, ok
}
