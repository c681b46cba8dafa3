// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-location-info/internal/adapter"
	"github.com/MKhiriev/go-location-info/internal/logger"
	"github.com/MKhiriev/go-location-info/models"
	"github.com/tidwall/gjson"
)

const newsStatusOK = "ok"

// UpstreamError is a third-party failure with a message meant for the
// client. Kind is ErrUpstreamRequestFailed or ErrUpstreamReportedError.
type UpstreamError struct {
	Kind    error
	Message string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%v: %s", e.Kind, e.Message)
}

func (e *UpstreamError) Unwrap() error {
	return e.Kind
}

// infoService relays weather and news lookups to their providers.
type infoService struct {
	weather adapter.WeatherAdapter
	news    adapter.NewsAdapter

	logger *logger.Logger
}

func NewInfoService(weather adapter.WeatherAdapter, news adapter.NewsAdapter, logger *logger.Logger) InfoService {
	return &infoService{
		weather: weather,
		news:    news,
		logger:  logger,
	}
}

// Weather returns the provider reply unchanged, whatever its status.
func (s *infoService) Weather(ctx context.Context, coords models.Coordinates) (models.UpstreamResponse, error) {
	return s.relay(ctx, "weather", coords, s.weather.CurrentWeather)
}

func (s *infoService) Forecast(ctx context.Context, coords models.Coordinates) (models.UpstreamResponse, error) {
	return s.relay(ctx, "forecast", coords, s.weather.Forecast)
}

func (s *infoService) AirQuality(ctx context.Context, coords models.Coordinates) (models.UpstreamResponse, error) {
	return s.relay(ctx, "air quality", coords, s.weather.AirQuality)
}

// News returns the NewsAPI body only when the request succeeded and the
// body reports status "ok".
func (s *infoService) News(ctx context.Context, location string) (models.UpstreamResponse, error) {
	log := logger.FromContext(ctx)

	resp, err := s.news.Everything(ctx, location)
	if errors.Is(err, adapter.ErrAPIKeyNotConfigured) {
		log.Error().Str("func", "infoService.News").Msg("news API key is not configured")
		return models.UpstreamResponse{}, ErrNewsAPIKeyMissing
	}
	if err != nil {
		log.Err(err).Str("func", "infoService.News").Str("location", location).Msg("news request failed")
		return models.UpstreamResponse{}, fmt.Errorf("news request failed: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		log.Warn().Int("status", resp.StatusCode).Str("location", location).Msg("news provider returned non-200")
		return models.UpstreamResponse{}, &UpstreamError{
			Kind:    ErrUpstreamRequestFailed,
			Message: fmt.Sprintf("News API request failed with status %d", resp.StatusCode),
		}
	}

	if !gjson.ValidBytes(resp.Body) {
		log.Error().Str("func", "infoService.News").Msg("news provider returned invalid JSON")
		return models.UpstreamResponse{}, fmt.Errorf("%w: news body is not JSON", adapter.ErrInvalidUpstreamBody)
	}

	envelope := gjson.GetManyBytes(resp.Body, "status", "code", "message")
	if status := envelope[0].String(); status != newsStatusOK {
		message := envelope[2].String()
		if message == "" {
			message = "News API error"
		}
		log.Warn().Str("status", status).Str("code", envelope[1].String()).Msg("news provider reported an error")
		return models.UpstreamResponse{}, &UpstreamError{Kind: ErrUpstreamReportedError, Message: message}
	}

	return resp, nil
}

func (s *infoService) relay(ctx context.Context, what string, coords models.Coordinates,
	call func(context.Context, models.Coordinates) (models.UpstreamResponse, error)) (models.UpstreamResponse, error) {
	resp, err := call(ctx, coords)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "infoService.relay").
			Str("lat", coords.Lat).
			Str("lon", coords.Lon).
			Msgf("%s request failed", what)
		return models.UpstreamResponse{}, fmt.Errorf("%s request failed: %w", what, err)
	}

	return resp, nil
}
