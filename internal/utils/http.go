// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
)

const (
	contentTypeHeader = "Content-Type"
	contentTypeJSON   = "application/json"
)

// WriteJSON serializes data to JSON and writes it with statusCode and an
// "application/json" content type.
//
// If marshaling fails the client receives 500 and the error is returned.
//
//	utils.WriteJSON(w, models.MessageResponse{Message: "Favorite added"}, http.StatusCreated)
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set(contentTypeHeader, contentTypeJSON)
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}

// WriteRaw writes an already encoded body verbatim. An empty contentType
// falls back to "application/json", which is what every relayed upstream
// API returns.
func WriteRaw(w http.ResponseWriter, body []byte, contentType string, statusCode int) (int, error) {
	if contentType == "" {
		contentType = contentTypeJSON
	}

	w.Header().Set(contentTypeHeader, contentType)
	w.WriteHeader(statusCode)

	return w.Write(body)
}
