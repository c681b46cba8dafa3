// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"
	"database/sql"

	"github.com/MKhiriev/go-location-info/models"
)

// UserRepository persists user accounts.
type UserRepository interface {
	// CreateUser inserts user and returns it with UserID and CreatedAt set.
	// Returns [ErrEmailAlreadyExists] if the email is taken.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByEmail returns the user with exactly this email, or
	// [ErrNoUserWasFound].
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
}

// LocationRepository persists favorites and the search history.
type LocationRepository interface {
	// RecordSearch appends a history entry stamped with the current UTC time.
	RecordSearch(ctx context.Context, userID int64, query string) error

	// AddFavorite inserts a favorite and returns its id.
	AddFavorite(ctx context.Context, favorite models.Favorite) (int64, error)

	// ListFavorites returns the user's favorites in insertion order.
	ListFavorites(ctx context.Context, userID int64) ([]models.Favorite, error)

	// RemoveFavorite deletes the user's favorite or returns [ErrFavoriteNotFound].
	RemoveFavorite(ctx context.Context, userID, favoriteID int64) error

	// RecentHistory returns at most limit entries, newest first.
	RecentHistory(ctx context.Context, userID int64, limit int) ([]models.SearchHistoryEntry, error)
}

// Querier is the subset of [sql.DB] and [sql.Tx] used by repositories, so
// the same query code runs inside or outside a transaction.
type Querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}
