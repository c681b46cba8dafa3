// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-location-info/internal/adapter"
	"github.com/MKhiriev/go-location-info/internal/logger"
	"github.com/MKhiriev/go-location-info/internal/store"
	"github.com/MKhiriev/go-location-info/models"
)

// locationService combines the LocationRepository with the geocoding
// provider. It performs no input checks; see LocationValidationService.
type locationService struct {
	locations store.LocationRepository
	geocoding adapter.GeocodingAdapter

	historyLimit int

	logger *logger.Logger
}

func NewLocationService(locations store.LocationRepository, geocoding adapter.GeocodingAdapter, logger *logger.Logger) LocationService {
	return &locationService{
		locations:    locations,
		geocoding:    geocoding,
		historyLimit: models.DefaultHistoryLimit,
		logger:       logger,
	}
}

// Search stores the history entry before calling the provider, so a lookup
// that finds nothing is still recorded.
func (s *locationService) Search(ctx context.Context, userID int64, query string) (models.GeocodeResponse, error) {
	log := logger.FromContext(ctx)

	if err := s.locations.RecordSearch(ctx, userID, query); err != nil {
		log.Err(err).Str("func", "locationService.Search").Int64("user_id", userID).Msg("recording search failed")
		return models.GeocodeResponse{}, fmt.Errorf("recording search failed: %w", err)
	}

	result, err := s.geocoding.Search(ctx, query)
	if errors.Is(err, adapter.ErrLocationNotFound) {
		log.Info().Str("query", query).Msg("location not found")
		return models.GeocodeResponse{}, fmt.Errorf("%w: %w", ErrLocationNotFound, err)
	}
	if err != nil {
		log.Err(err).Str("func", "locationService.Search").Str("query", query).Msg("geocoding failed")
		return models.GeocodeResponse{}, fmt.Errorf("geocoding failed: %w", err)
	}

	return result, nil
}

func (s *locationService) AddFavorite(ctx context.Context, userID int64, request models.FavoriteRequest) (int64, error) {
	favorite := models.Favorite{
		UserID:     userID,
		Name:       request.Name,
		IsFavorite: true,
	}
	if request.Lat != nil {
		favorite.Lat = *request.Lat
	}
	if request.Lon != nil {
		favorite.Lon = *request.Lon
	}

	id, err := s.locations.AddFavorite(ctx, favorite)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "locationService.AddFavorite").Int64("user_id", userID).Msg("adding favorite failed")
		return 0, fmt.Errorf("adding favorite failed: %w", err)
	}

	return id, nil
}

func (s *locationService) ListFavorites(ctx context.Context, userID int64) ([]models.Favorite, error) {
	favorites, err := s.locations.ListFavorites(ctx, userID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "locationService.ListFavorites").Int64("user_id", userID).Msg("listing favorites failed")
		return nil, fmt.Errorf("listing favorites failed: %w", err)
	}
	if favorites == nil {
		favorites = []models.Favorite{}
	}

	return favorites, nil
}

func (s *locationService) RemoveFavorite(ctx context.Context, userID, favoriteID int64) error {
	if err := s.locations.RemoveFavorite(ctx, userID, favoriteID); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "locationService.RemoveFavorite").
			Int64("user_id", userID).
			Int64("favorite_id", favoriteID).
			Msg("removing favorite failed")
		return fmt.Errorf("removing favorite failed: %w", err)
	}

	return nil
}

func (s *locationService) History(ctx context.Context, userID int64) ([]models.SearchHistoryEntry, error) {
	entries, err := s.locations.RecentHistory(ctx, userID, s.historyLimit)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "locationService.History").Int64("user_id", userID).Msg("reading history failed")
		return nil, fmt.Errorf("reading history failed: %w", err)
	}
	if entries == nil {
		entries = []models.SearchHistoryEntry{}
	}

	return entries, nil
}
