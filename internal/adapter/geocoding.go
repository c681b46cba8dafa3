// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-location-info/internal/logger"
	"github.com/MKhiriev/go-location-info/internal/utils"
	"github.com/MKhiriev/go-location-info/models"
)

const nominatimSearchPath = "/search"

// nominatimAdapter is the Nominatim (OpenStreetMap) [GeocodingAdapter].
type nominatimAdapter struct {
	client *utils.HTTPClient
	logger *logger.Logger
}

// NewNominatimAdapter returns a [GeocodingAdapter] for the Nominatim
// instance at baseURL. Nominatim's usage policy requires an identifying
// User-Agent, which client is expected to carry.
func NewNominatimAdapter(client *utils.HTTPClient, baseURL string, log *logger.Logger) (GeocodingAdapter, error) {
	base, err := normalizeBaseURL(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid geocoding base url: %w", err)
	}
	client.SetBaseURL(base)
	instrument(client, upstreamNominatim)

	return &nominatimAdapter{client: client, logger: log}, nil
}

// Search implements [GeocodingAdapter]. Only the first hit is used.
func (n *nominatimAdapter) Search(ctx context.Context, query string) (models.GeocodeResponse, error) {
	log := logger.FromContext(ctx)

	resp, err := n.client.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json").
		SetQueryParams(map[string]string{
			"q":      query,
			"format": "json",
			"limit":  "1",
		}).
		Get(nominatimSearchPath)
	if err != nil {
		log.Err(err).Str("func", "nominatimAdapter.Search").Msg("geocoding request failed")
		return models.GeocodeResponse{}, fmt.Errorf("%w: geocoding request: %w", ErrUpstreamUnavailable, err)
	}

	if resp.StatusCode() != http.StatusOK {
		log.Warn().
			Str("func", "nominatimAdapter.Search").
			Int("status", resp.StatusCode()).
			Msg("geocoding provider returned non-200")
		return models.GeocodeResponse{}, fmt.Errorf("%w: %w", ErrLocationNotFound, mapHTTPError(resp))
	}

	var places []models.NominatimPlace
	if err = json.Unmarshal(resp.Body(), &places); err != nil {
		return models.GeocodeResponse{}, fmt.Errorf("%w: %w", ErrInvalidUpstreamBody, err)
	}
	if len(places) == 0 {
		return models.GeocodeResponse{}, ErrLocationNotFound
	}

	result, err := toGeocodeResult(places[0])
	if err != nil {
		return models.GeocodeResponse{}, err
	}

	return models.GeocodeResponse{Results: []models.GeocodeResult{result}}, nil
}

func toGeocodeResult(place models.NominatimPlace) (models.GeocodeResult, error) {
	lat, err := strconv.ParseFloat(place.Lat, 64)
	if err != nil {
		return models.GeocodeResult{}, fmt.Errorf("%w: lat %q", ErrInvalidUpstreamBody, place.Lat)
	}
	lng, err := strconv.ParseFloat(place.Lon, 64)
	if err != nil {
		return models.GeocodeResult{}, fmt.Errorf("%w: lon %q", ErrInvalidUpstreamBody, place.Lon)
	}

	return models.GeocodeResult{
		FormattedAddress: place.DisplayName,
		Geometry: models.Geometry{
			Location: models.LatLng{Lat: lat, Lng: lng},
		},
	}, nil
}
