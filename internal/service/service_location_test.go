// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/go-location-info/internal/adapter"
	"github.com/MKhiriev/go-location-info/internal/logger"
	"github.com/MKhiriev/go-location-info/internal/mock"
	"github.com/MKhiriev/go-location-info/internal/store"
	"github.com/MKhiriev/go-location-info/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestLocationSvc(t *testing.T, ctrl *gomock.Controller) (LocationService, *mock.MockLocationRepository, *mock.MockGeocodingAdapter) {
	t.Helper()
	repo := mock.NewMockLocationRepository(ctrl)
	geo := mock.NewMockGeocodingAdapter(ctrl)

	return NewLocationService(repo, geo, logger.Nop()), repo, geo
}

func ptr[T any](v T) *T { return &v }

// ── Search ───────────────────────────────────────────────────────────────────

func TestLocationService_Search_RecordsThenGeocodes(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo, geo := newTestLocationSvc(t, ctrl)
	ctx := context.Background()

	want := models.GeocodeResponse{Results: []models.GeocodeResult{{
		FormattedAddress: "Paris, France",
		Geometry:         models.Geometry{Location: models.LatLng{Lat: 48.85, Lng: 2.35}},
	}}}

	gomock.InOrder(
		repo.EXPECT().RecordSearch(ctx, int64(5), "Paris").Return(nil),
		geo.EXPECT().Search(ctx, "Paris").Return(want, nil),
	)

	got, err := svc.Search(ctx, 5, "Paris")
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestLocationService_Search_NotFoundStillRecorded(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo, geo := newTestLocationSvc(t, ctrl)

	gomock.InOrder(
		repo.EXPECT().RecordSearch(gomock.Any(), int64(5), "Atlantis").Return(nil),
		geo.EXPECT().Search(gomock.Any(), "Atlantis").Return(models.GeocodeResponse{}, adapter.ErrLocationNotFound),
	)

	_, err := svc.Search(context.Background(), 5, "Atlantis")
	assert.ErrorIs(t, err, ErrLocationNotFound)
}

func TestLocationService_Search_RecordFailureSkipsProvider(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo, _ := newTestLocationSvc(t, ctrl)

	repo.EXPECT().RecordSearch(gomock.Any(), int64(5), "Paris").Return(store.ErrExecutingQuery)

	_, err := svc.Search(context.Background(), 5, "Paris")
	assert.ErrorIs(t, err, store.ErrExecutingQuery)
}

func TestLocationService_Search_ProviderDown(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo, geo := newTestLocationSvc(t, ctrl)

	repo.EXPECT().RecordSearch(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	geo.EXPECT().Search(gomock.Any(), "Paris").Return(models.GeocodeResponse{}, adapter.ErrUpstreamUnavailable)

	_, err := svc.Search(context.Background(), 5, "Paris")
	assert.ErrorIs(t, err, adapter.ErrUpstreamUnavailable)
	assert.NotErrorIs(t, err, ErrLocationNotFound)
}

// ── Favorites ────────────────────────────────────────────────────────────────

func TestLocationService_AddFavorite(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo, _ := newTestLocationSvc(t, ctrl)

	repo.EXPECT().AddFavorite(gomock.Any(), models.Favorite{
		UserID:     9,
		Name:       "Home",
		Lat:        200.5,
		Lon:        -0.1,
		IsFavorite: true,
	}).Return(int64(11), nil)

	id, err := svc.AddFavorite(context.Background(), 9, models.FavoriteRequest{Name: "Home", Lat: ptr(200.5), Lon: ptr(-0.1)})
	require.NoError(t, err)
	assert.Equal(t, int64(11), id)
}

func TestLocationService_AddFavorite_StoreError(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo, _ := newTestLocationSvc(t, ctrl)

	repo.EXPECT().AddFavorite(gomock.Any(), gomock.Any()).Return(int64(0), errors.New("disk full"))

	_, err := svc.AddFavorite(context.Background(), 9, models.FavoriteRequest{Name: "Home", Lat: ptr(1.0), Lon: ptr(2.0)})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
}

func TestLocationService_ListFavorites_EmptyIsNotNil(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo, _ := newTestLocationSvc(t, ctrl)

	repo.EXPECT().ListFavorites(gomock.Any(), int64(9)).Return(nil, nil)

	favorites, err := svc.ListFavorites(context.Background(), 9)
	require.NoError(t, err)
	assert.NotNil(t, favorites)
	assert.Empty(t, favorites)
}

func TestLocationService_RemoveFavorite_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo, _ := newTestLocationSvc(t, ctrl)

	repo.EXPECT().RemoveFavorite(gomock.Any(), int64(9), int64(100)).Return(store.ErrFavoriteNotFound)

	err := svc.RemoveFavorite(context.Background(), 9, 100)
	assert.ErrorIs(t, err, store.ErrFavoriteNotFound)
}

// ── History ──────────────────────────────────────────────────────────────────

func TestLocationService_History_UsesDefaultLimit(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo, _ := newTestLocationSvc(t, ctrl)

	entries := []models.SearchHistoryEntry{
		{Query: "Rome", CreatedAt: time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC)},
		{Query: "Oslo", CreatedAt: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)},
	}
	repo.EXPECT().RecentHistory(gomock.Any(), int64(9), models.DefaultHistoryLimit).Return(entries, nil)

	got, err := svc.History(context.Background(), 9)
	require.NoError(t, err)
	assert.Equal(t, entries, got)
}

func TestLocationService_History_Error(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo, _ := newTestLocationSvc(t, ctrl)

	repo.EXPECT().RecentHistory(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, store.ErrScanningRows)

	_, err := svc.History(context.Background(), 9)
	assert.ErrorIs(t, err, store.ErrScanningRows)
}
