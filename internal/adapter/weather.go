// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-location-info/internal/logger"
	"github.com/MKhiriev/go-location-info/internal/utils"
	"github.com/MKhiriev/go-location-info/models"
)

const (
	openWeatherCurrentPath  = "/data/2.5/weather"
	openWeatherForecastPath = "/data/2.5/forecast"
	openWeatherAirPath      = "/data/2.5/air_pollution"
)

// openWeatherAdapter is the OpenWeather [WeatherAdapter].
type openWeatherAdapter struct {
	client *utils.HTTPClient
	apiKey string
	logger *logger.Logger
}

// NewOpenWeatherAdapter returns a [WeatherAdapter] for the OpenWeather API
// at baseURL. An empty apiKey is still sent, so OpenWeather answers 401 and
// that reply is relayed.
func NewOpenWeatherAdapter(client *utils.HTTPClient, baseURL, apiKey string, log *logger.Logger) (WeatherAdapter, error) {
	base, err := normalizeBaseURL(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid weather base url: %w", err)
	}
	client.SetBaseURL(base)
	instrument(client, upstreamOpenWeather)

	return &openWeatherAdapter{client: client, apiKey: apiKey, logger: log}, nil
}

// CurrentWeather implements [WeatherAdapter].
func (o *openWeatherAdapter) CurrentWeather(ctx context.Context, coords models.Coordinates) (models.UpstreamResponse, error) {
	return o.relay(ctx, openWeatherCurrentPath, coords, true)
}

// Forecast implements [WeatherAdapter].
func (o *openWeatherAdapter) Forecast(ctx context.Context, coords models.Coordinates) (models.UpstreamResponse, error) {
	return o.relay(ctx, openWeatherForecastPath, coords, true)
}

// AirQuality implements [WeatherAdapter]. The air pollution endpoint has
// no units parameter.
func (o *openWeatherAdapter) AirQuality(ctx context.Context, coords models.Coordinates) (models.UpstreamResponse, error) {
	return o.relay(ctx, openWeatherAirPath, coords, false)
}

func (o *openWeatherAdapter) relay(ctx context.Context, path string, coords models.Coordinates, metric bool) (models.UpstreamResponse, error) {
	log := logger.FromContext(ctx)

	params := map[string]string{
		"lat":   coords.Lat,
		"lon":   coords.Lon,
		"appid": o.apiKey,
	}
	if metric {
		params["units"] = "metric"
	}

	resp, err := o.client.R().
		SetContext(ctx).
		SetQueryParams(params).
		Get(path)
	if err != nil {
		log.Err(err).Str("func", "openWeatherAdapter.relay").Str("path", path).Msg("weather request failed")
		return models.UpstreamResponse{}, fmt.Errorf("%w: weather request: %w", ErrUpstreamUnavailable, err)
	}

	if mapped := mapHTTPError(resp); mapped != nil {
		// relayed anyway; logged for operators
		log.Warn().Err(mapped).Str("func", "openWeatherAdapter.relay").Str("path", path).Msg("weather provider returned an error status")
	}

	return toUpstreamResponse(resp), nil
}
