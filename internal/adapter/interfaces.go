// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter wraps the third-party HTTP APIs the server proxies:
// Nominatim for geocoding, OpenWeather for weather, forecast and air
// quality, and NewsAPI for news.
//
// Every implementation uses the shared resty-based [utils.HTTPClient].
// Transport failures are reported as [ErrUpstreamUnavailable]; upstream
// statuses are either relayed as-is ([models.UpstreamResponse]) or mapped to
// the sentinel values in errors.go by mapHTTPError.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-location-info/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// GeocodingAdapter resolves free-text place names to coordinates.
type GeocodingAdapter interface {
	// Search returns the best match for query. Returns [ErrLocationNotFound]
	// (wrapped) when the provider answers non-200 or has no match.
	Search(ctx context.Context, query string) (models.GeocodeResponse, error)
}

// WeatherAdapter relays OpenWeather responses for a coordinate pair.
// The coordinate strings are forwarded untouched.
type WeatherAdapter interface {
	// CurrentWeather calls /data/2.5/weather in metric units.
	CurrentWeather(ctx context.Context, coords models.Coordinates) (models.UpstreamResponse, error)

	// Forecast calls /data/2.5/forecast in metric units.
	Forecast(ctx context.Context, coords models.Coordinates) (models.UpstreamResponse, error)

	// AirQuality calls /data/2.5/air_pollution.
	AirQuality(ctx context.Context, coords models.Coordinates) (models.UpstreamResponse, error)
}

// NewsAdapter fetches news articles about a location.
type NewsAdapter interface {
	// Everything calls NewsAPI /v2/everything for location and returns the
	// raw reply whatever its status. Returns [ErrAPIKeyNotConfigured] without
	// any network call when no key is configured.
	Everything(ctx context.Context, location string) (models.UpstreamResponse, error)
}
