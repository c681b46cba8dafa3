// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"
	"time"

	"github.com/MKhiriev/go-location-info/models"
	sq "github.com/Masterminds/squirrel"
)

var (
	userColumns     = []string{"user_id", "email", "password_hash", "preferences", "created_at"}
	favoriteColumns = []string{"location_id", "user_id", "name", "lat", "lon", "is_favorite"}
	historyColumns  = []string{"search_id", "user_id", "search_query", "created_at"}
)

func buildCountUsersByEmailQuery(b sq.StatementBuilderType, email string) (string, []any, error) {
	return wrapBuild(b.Select("COUNT(*)").
		From(models.User{}.TableName()).
		Where(sq.Eq{"email": email}).
		ToSql())
}

func buildInsertUserQuery(b sq.StatementBuilderType, user models.User) (string, []any, error) {
	return wrapBuild(b.Insert(models.User{}.TableName()).
		Columns("email", "password_hash", "preferences", "created_at").
		Values(user.Email, user.PasswordHash, user.Preferences, user.CreatedAt).
		Suffix("RETURNING user_id").
		ToSql())
}

func buildSelectUserByEmailQuery(b sq.StatementBuilderType, email string) (string, []any, error) {
	return wrapBuild(b.Select(userColumns...).
		From(models.User{}.TableName()).
		Where(sq.Eq{"email": email}).
		Limit(1).
		ToSql())
}

func buildInsertSearchQuery(b sq.StatementBuilderType, userID int64, query string, at time.Time) (string, []any, error) {
	return wrapBuild(b.Insert(models.SearchHistoryEntry{}.TableName()).
		Columns("user_id", "search_query", "created_at").
		Values(userID, query, at).
		ToSql())
}

func buildInsertFavoriteQuery(b sq.StatementBuilderType, favorite models.Favorite) (string, []any, error) {
	return wrapBuild(b.Insert(models.Favorite{}.TableName()).
		Columns("user_id", "name", "lat", "lon", "is_favorite").
		Values(favorite.UserID, favorite.Name, favorite.Lat, favorite.Lon, true).
		Suffix("RETURNING location_id").
		ToSql())
}

func buildSelectFavoritesQuery(b sq.StatementBuilderType, userID int64) (string, []any, error) {
	return wrapBuild(b.Select(favoriteColumns...).
		From(models.Favorite{}.TableName()).
		Where(sq.Eq{"user_id": userID, "is_favorite": true}).
		OrderBy("location_id ASC").
		ToSql())
}

func buildDeleteFavoriteQuery(b sq.StatementBuilderType, userID, favoriteID int64) (string, []any, error) {
	return wrapBuild(b.Delete(models.Favorite{}.TableName()).
		Where(sq.Eq{"location_id": favoriteID}).
		Where(sq.Eq{"user_id": userID}).
		Where(sq.Eq{"is_favorite": true}).
		ToSql())
}

func buildSelectRecentHistoryQuery(b sq.StatementBuilderType, userID int64, limit int) (string, []any, error) {
	if limit <= 0 {
		limit = models.DefaultHistoryLimit
	}

	// search_id breaks ties between entries stamped within the same instant
	return wrapBuild(b.Select(historyColumns...).
		From(models.SearchHistoryEntry{}.TableName()).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at DESC", "search_id DESC").
		Limit(uint64(limit)).
		ToSql())
}

func wrapBuild(query string, args []any, err error) (string, []any, error) {
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}
