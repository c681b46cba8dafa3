// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"github.com/MKhiriev/go-location-info/internal/config"
	"github.com/MKhiriev/go-location-info/internal/logger"
	"github.com/MKhiriev/go-location-info/internal/utils"
)

// Adapters groups the upstream API clients. Each one owns its own HTTP
// client so base URLs and headers never leak between providers.
type Adapters struct {
	Geocoding GeocodingAdapter
	Weather   WeatherAdapter
	News      NewsAdapter
}

// NewAdapters builds every adapter from cfg.
func NewAdapters(cfg config.Adapter, log *logger.Logger) (*Adapters, error) {
	geocoding, err := NewNominatimAdapter(
		utils.NewHTTPClient(cfg.RequestTimeout, cfg.Geocoding.UserAgent),
		cfg.Geocoding.BaseURL,
		log,
	)
	if err != nil {
		return nil, err
	}

	weather, err := NewOpenWeatherAdapter(
		utils.NewHTTPClient(cfg.RequestTimeout, ""),
		cfg.Weather.BaseURL,
		cfg.Weather.APIKey,
		log,
	)
	if err != nil {
		return nil, err
	}

	news, err := NewNewsAPIAdapter(
		utils.NewHTTPClient(cfg.RequestTimeout, cfg.Geocoding.UserAgent),
		cfg.News.BaseURL,
		cfg.News.APIKey,
		cfg.News.PageSize,
		log,
	)
	if err != nil {
		return nil, err
	}

	log.Debug().Msg("upstream adapters created")

	return &Adapters{
		Geocoding: geocoding,
		Weather:   weather,
		News:      news,
	}, nil
}
