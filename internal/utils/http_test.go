// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─── WriteJSON ────────────────────────────────────────────────────────────────

func TestWriteJSON(t *testing.T) {
	tests := []struct {
		name     string
		data     any
		status   int
		wantBody string
	}{
		{"map", map[string]string{"message": "ok"}, http.StatusOK, `{"message":"ok"}`},
		{"created", map[string]any{"id": 7}, http.StatusCreated, `{"id":7}`},
		{"nil", nil, http.StatusOK, `null`},
		{"empty struct", struct{}{}, http.StatusOK, `{}`},
		{"slice", []int{1, 2, 3}, http.StatusOK, `[1,2,3]`},
		{"empty slice", []string{}, http.StatusOK, `[]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()

			n, err := WriteJSON(w, tt.data, tt.status)
			require.NoError(t, err)

			assert.Equal(t, len(tt.wantBody), n)
			assert.Equal(t, tt.status, w.Code)
			assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
			assert.Equal(t, tt.wantBody, w.Body.String())
		})
	}
}

func TestWriteJSON_InvalidData(t *testing.T) {
	w := httptest.NewRecorder()

	// channels cannot be marshaled to JSON
	_, err := WriteJSON(w, make(chan int), http.StatusOK)

	require.Error(t, err)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

// ─── WriteRaw ─────────────────────────────────────────────────────────────────

func TestWriteRaw(t *testing.T) {
	t.Run("keeps upstream content type", func(t *testing.T) {
		w := httptest.NewRecorder()

		_, err := WriteRaw(w, []byte(`{"cod":401}`), "application/json; charset=utf-8", http.StatusUnauthorized)
		require.NoError(t, err)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "application/json; charset=utf-8", w.Header().Get("Content-Type"))
		assert.Equal(t, `{"cod":401}`, w.Body.String())
	})

	t.Run("defaults to json", func(t *testing.T) {
		w := httptest.NewRecorder()

		_, err := WriteRaw(w, []byte(`{}`), "", http.StatusOK)
		require.NoError(t, err)

		assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	})
}
