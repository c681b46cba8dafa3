// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// MessageResponse is the generic `{"message": ...}` body used by the
// account and favorites endpoints.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the `{"error": ...}` body used by the search and
// upstream proxy endpoints.
type ErrorResponse struct {
	Error string `json:"error"`
}

// TokenResponse is returned by a successful login.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
}

// FavoriteCreatedResponse is returned by POST /favorites.
type FavoriteCreatedResponse struct {
	Message string `json:"message"`
	ID      int64  `json:"id"`
}
