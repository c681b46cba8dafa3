// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-location-info/internal/logger"
	"github.com/MKhiriev/go-location-info/models"
)

// locationRepository is the SQL implementation of [LocationRepository] over
// the "locations" and "search_history" tables.
type locationRepository struct {
	*DB
	logger *logger.Logger
	now    func() time.Time
}

// NewLocationRepository constructs a [LocationRepository] backed by db.
func NewLocationRepository(db *DB, logger *logger.Logger) LocationRepository {
	logger.Debug().Msg("creating location repository")
	return &locationRepository{
		DB:     db,
		logger: logger,
		now:    time.Now,
	}
}

// RecordSearch appends a search history entry for userID.
func (l *locationRepository) RecordSearch(ctx context.Context, userID int64, query string) error {
	log := logger.FromContext(ctx)

	sqlQuery, args, err := buildInsertSearchQuery(l.builder, userID, query, l.now().UTC())
	if err != nil {
		return err
	}

	if _, err = l.ExecContext(ctx, sqlQuery, args...); err != nil {
		log.Err(err).
			Str("func", "locationRepository.RecordSearch").
			Int64("user_id", userID).
			Msg("failed to record search")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

// AddFavorite inserts favorite with is_favorite set and returns the new id.
func (l *locationRepository) AddFavorite(ctx context.Context, favorite models.Favorite) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertFavoriteQuery(l.builder, favorite)
	if err != nil {
		return 0, err
	}

	var id int64
	if err = l.QueryRowContext(ctx, query, args...).Scan(&id); err != nil {
		log.Err(err).
			Str("func", "locationRepository.AddFavorite").
			Int64("user_id", favorite.UserID).
			Msg("failed to insert favorite")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	log.Debug().
		Str("func", "locationRepository.AddFavorite").
		Int64("user_id", favorite.UserID).
		Int64("favorite_id", id).
		Msg("favorite added")

	return id, nil
}

// ListFavorites returns the user's favorites ordered by id.
func (l *locationRepository) ListFavorites(ctx context.Context, userID int64) ([]models.Favorite, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectFavoritesQuery(l.builder, userID)
	if err != nil {
		return nil, err
	}

	rows, err := l.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "locationRepository.ListFavorites").
			Int64("user_id", userID).
			Msg("failed to execute query for listing favorites")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	favorites := make([]models.Favorite, 0)
	for rows.Next() {
		var f models.Favorite
		if err = rows.Scan(&f.ID, &f.UserID, &f.Name, &f.Lat, &f.Lon, &f.IsFavorite); err != nil {
			log.Err(err).
				Str("func", "locationRepository.ListFavorites").
				Int64("user_id", userID).
				Msg("failed to scan favorite row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		favorites = append(favorites, f)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return favorites, nil
}

// RemoveFavorite deletes a favorite only if userID owns it.
func (l *locationRepository) RemoveFavorite(ctx context.Context, userID, favoriteID int64) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteFavoriteQuery(l.builder, userID, favoriteID)
	if err != nil {
		return err
	}

	result, err := l.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "locationRepository.RemoveFavorite").
			Int64("user_id", userID).
			Int64("favorite_id", favoriteID).
			Msg("failed to delete favorite")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		log.Warn().
			Str("func", "locationRepository.RemoveFavorite").
			Int64("user_id", userID).
			Int64("favorite_id", favoriteID).
			Msg("favorite not found")
		return ErrFavoriteNotFound
	}

	return nil
}

// RecentHistory returns the newest entries first, at most limit of them.
// A non-positive limit means [models.DefaultHistoryLimit].
func (l *locationRepository) RecentHistory(ctx context.Context, userID int64, limit int) ([]models.SearchHistoryEntry, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectRecentHistoryQuery(l.builder, userID, limit)
	if err != nil {
		return nil, err
	}

	rows, err := l.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "locationRepository.RecentHistory").
			Int64("user_id", userID).
			Msg("failed to execute query for search history")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	entries := make([]models.SearchHistoryEntry, 0, models.DefaultHistoryLimit)
	for rows.Next() {
		var e models.SearchHistoryEntry
		if err = rows.Scan(&e.ID, &e.UserID, &e.Query, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		e.CreatedAt = e.CreatedAt.UTC()
		entries = append(entries, e)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return entries, nil
}
