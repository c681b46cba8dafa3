// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/MKhiriev/go-location-info/internal/adapter"
	"github.com/MKhiriev/go-location-info/internal/config"
	"github.com/MKhiriev/go-location-info/internal/logger"
	"github.com/MKhiriev/go-location-info/internal/service"
	"github.com/MKhiriev/go-location-info/internal/store"
	"github.com/MKhiriev/go-location-info/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newUpstreams fakes Nominatim, OpenWeather and NewsAPI on one server.
func newUpstreams(t *testing.T) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/search", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if r.URL.Query().Get("q") == "Atlantis" {
			fmt.Fprint(w, `[]`)
			return
		}
		fmt.Fprintf(w, `[{"display_name":%q,"lat":"48.8566","lon":"2.3522"}]`, r.URL.Query().Get("q"))
	})
	mux.HandleFunc("/data/2.5/weather", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `{"name":"Paris","lat":%q}`, r.URL.Query().Get("lat"))
	})
	mux.HandleFunc("/v2/everything", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"status":"error","code":"apiKeyInvalid","message":"Your API key is invalid."}`)
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

// newIntegrationHandler wires real services to a fresh SQLite file and the
// fake upstreams.
func newIntegrationHandler(t *testing.T) (*Handler, *store.Storages) {
	t.Helper()

	upstreams := newUpstreams(t)
	log := logger.Nop()

	cfg := config.StructuredConfig{
		App: config.App{
			Env:           config.EnvDevelopment,
			TokenSignKey:  "integration-secret",
			TokenIssuer:   "location-info",
			TokenDuration: time.Hour,
			Version:       "9.9.9",
		},
		Storage: config.Storage{DB: config.DB{
			Driver: config.DriverSQLite,
			DSN:    filepath.Join(t.TempDir(), "app.db"),
		}},
		Adapter: config.Adapter{
			RequestTimeout: 2 * time.Second,
			Geocoding:      config.Geocoding{BaseURL: upstreams.URL, UserAgent: "LocationInfoApp/1.0"},
			Weather:        config.Weather{BaseURL: upstreams.URL, APIKey: "weather-key"},
			News:           config.News{BaseURL: upstreams.URL, APIKey: "news-key", PageSize: 5},
		},
	}

	storages, err := store.NewStorages(context.Background(), cfg.Storage, log)
	require.NoError(t, err)
	t.Cleanup(func() { storages.Close() })

	adapters, err := adapter.NewAdapters(cfg.Adapter, log)
	require.NoError(t, err)

	services, err := service.NewServices(storages, adapters, cfg, log)
	require.NoError(t, err)

	return NewHandler(services, cfg.Server, nil, log), storages
}

func loginAs(t *testing.T, h *Handler, email string) map[string]string {
	t.Helper()

	creds := fmt.Sprintf(`{"email":%q,"password":"s3cret"}`, email)

	rr := serve(t, h, http.MethodPost, "/register", creds, nil)
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())

	rr = serve(t, h, http.MethodPost, "/login", creds, nil)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	token := decodeBody[models.TokenResponse](t, rr)
	require.NotEmpty(t, token.AccessToken)

	return map[string]string{"Authorization": "Bearer " + token.AccessToken}
}

func TestRoutes_EndToEnd(t *testing.T) {
	h, _ := newIntegrationHandler(t)
	alice := loginAs(t, h, "alice@example.com")

	// duplicate registration
	rr := serve(t, h, http.MethodPost, "/register", `{"email":"alice@example.com","password":"x"}`, nil)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.JSONEq(t, `{"message":"Email already registered"}`, rr.Body.String())

	// wrong password
	rr = serve(t, h, http.MethodPost, "/login", `{"email":"alice@example.com","password":"nope"}`, nil)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.JSONEq(t, `{"message":"Invalid credentials"}`, rr.Body.String())

	// search, then a miss: both land in history
	rr = serve(t, h, http.MethodGet, "/location/search?q=Paris", "", alice)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	assert.JSONEq(t,
		`{"results":[{"formatted_address":"Paris","geometry":{"location":{"lat":48.8566,"lng":2.3522}}}]}`,
		rr.Body.String())

	rr = serve(t, h, http.MethodGet, "/location/search?q=Atlantis", "", alice)
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.JSONEq(t, `{"error":"Location not found"}`, rr.Body.String())

	rr = serve(t, h, http.MethodGet, "/history", "", alice)
	require.Equal(t, http.StatusOK, rr.Code)
	history := decodeBody[[]models.SearchHistoryEntry](t, rr)
	require.Len(t, history, 2)
	assert.Equal(t, "Atlantis", history[0].Query)
	assert.Equal(t, "Paris", history[1].Query)

	// favorites
	rr = serve(t, h, http.MethodPost, "/favorites", `{"name":"Eiffel","lat":48.858,"lon":2.294}`, alice)
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	created := decodeBody[models.FavoriteCreatedResponse](t, rr)
	assert.Equal(t, "Favorite added", created.Message)

	rr = serve(t, h, http.MethodGet, "/favorites", "", alice)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t,
		fmt.Sprintf(`[{"id":%d,"name":"Eiffel","lat":48.858,"lon":2.294}]`, created.ID),
		rr.Body.String())

	// another user can neither see nor delete alice's favorite
	bob := loginAs(t, h, "bob@example.com")

	rr = serve(t, h, http.MethodGet, "/favorites", "", bob)
	assert.JSONEq(t, `[]`, rr.Body.String())

	rr = serve(t, h, http.MethodGet, "/history", "", bob)
	assert.JSONEq(t, `[]`, rr.Body.String())

	favoritePath := fmt.Sprintf("/favorites/%d", created.ID)
	rr = serve(t, h, http.MethodDelete, favoritePath, "", bob)
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.JSONEq(t, `{"message":"Favorite not found"}`, rr.Body.String())

	rr = serve(t, h, http.MethodDelete, favoritePath, "", alice)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"message":"Favorite removed"}`, rr.Body.String())

	rr = serve(t, h, http.MethodDelete, favoritePath, "", alice)
	assert.Equal(t, http.StatusNotFound, rr.Code)

	// proxies
	rr = serve(t, h, http.MethodGet, "/weather?lat=48.85&lon=2.35", "", alice)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"name":"Paris","lat":"48.85"}`, rr.Body.String())

	rr = serve(t, h, http.MethodGet, "/weather?lat=north&lon=2.35", "", alice)
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	rr = serve(t, h, http.MethodGet, "/news?location=Paris", "", alice)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.JSONEq(t, `{"error":"Your API key is invalid."}`, rr.Body.String())
}

func TestRoutes_HistoryIsCappedAtTen(t *testing.T) {
	h, _ := newIntegrationHandler(t)
	auth := loginAs(t, h, "carol@example.com")

	for i := range 12 {
		rr := serve(t, h, http.MethodGet, fmt.Sprintf("/location/search?q=town-%02d", i), "", auth)
		require.Equal(t, http.StatusOK, rr.Code)
	}

	rr := serve(t, h, http.MethodGet, "/history", "", auth)
	history := decodeBody[[]models.SearchHistoryEntry](t, rr)

	require.Len(t, history, models.DefaultHistoryLimit)
	assert.Equal(t, "town-11", history[0].Query)
	assert.Equal(t, "town-02", history[9].Query)
}

func TestRoutes_UnauthenticatedNeverTouchesStore(t *testing.T) {
	h, storages := newIntegrationHandler(t)

	for _, path := range []string{"/history", "/favorites", "/location/search?q=Paris"} {
		rr := serve(t, h, http.MethodGet, path, "", nil)
		assert.Equal(t, http.StatusUnauthorized, rr.Code, path)
	}

	_, err := storages.UserRepository.FindUserByEmail(context.Background(), "nobody@example.com")
	assert.ErrorIs(t, err, store.ErrNoUserWasFound)

	entries, err := storages.LocationRepository.RecentHistory(context.Background(), 1, 10)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
