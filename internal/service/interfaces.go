// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service holds the business operations behind the HTTP routes:
// accounts and tokens, location search with history, favorites and the
// third-party information proxies.
package service

import (
	"context"

	"github.com/MKhiriev/go-location-info/models"
)

type AuthService interface {
	RegisterUser(ctx context.Context, credentials models.Credentials) (models.User, error)
	Login(ctx context.Context, credentials models.Credentials) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

type LocationService interface {
	// Search records query in the user's history, then geocodes it.
	Search(ctx context.Context, userID int64, query string) (models.GeocodeResponse, error)

	AddFavorite(ctx context.Context, userID int64, request models.FavoriteRequest) (int64, error)
	ListFavorites(ctx context.Context, userID int64) ([]models.Favorite, error)
	RemoveFavorite(ctx context.Context, userID, favoriteID int64) error

	// History returns the most recent searches, newest first.
	History(ctx context.Context, userID int64) ([]models.SearchHistoryEntry, error)
}

type InfoService interface {
	Weather(ctx context.Context, coords models.Coordinates) (models.UpstreamResponse, error)
	Forecast(ctx context.Context, coords models.Coordinates) (models.UpstreamResponse, error)
	AirQuality(ctx context.Context, coords models.Coordinates) (models.UpstreamResponse, error)
	News(ctx context.Context, location string) (models.UpstreamResponse, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// LocationServiceWrapper defines middleware composition for LocationService.
// Implementations wrap an existing LocationService to add behavior such as
// logging or validating.
type LocationServiceWrapper interface {
	Wrap(LocationService) LocationService
}

// InfoServiceWrapper is the InfoService counterpart of LocationServiceWrapper.
type InfoServiceWrapper interface {
	Wrap(InfoService) InfoService
}
