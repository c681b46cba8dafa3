// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-location-info/internal/validators"
	"github.com/MKhiriev/go-location-info/models"
)

// LocationValidationService rejects malformed input before it reaches
// the wrapped LocationService. Every rejection wraps ErrValidation.
type LocationValidationService struct {
	inner     LocationService
	validator validators.Validator
}

func NewLocationValidationService() LocationServiceWrapper {
	return &LocationValidationService{
		validator: validators.NewLocationValidator(),
	}
}

func (v *LocationValidationService) Search(ctx context.Context, userID int64, query string) (models.GeocodeResponse, error) {
	if err := v.validateUser(ctx, userID); err != nil {
		return models.GeocodeResponse{}, err
	}
	if err := v.validator.Validate(ctx, query, validators.FieldQuery); err != nil {
		return models.GeocodeResponse{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	return v.inner.Search(ctx, userID, query)
}

func (v *LocationValidationService) AddFavorite(ctx context.Context, userID int64, request models.FavoriteRequest) (int64, error) {
	if err := v.validateUser(ctx, userID); err != nil {
		return 0, err
	}
	if err := v.validator.Validate(ctx, request); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	return v.inner.AddFavorite(ctx, userID, request)
}

func (v *LocationValidationService) ListFavorites(ctx context.Context, userID int64) ([]models.Favorite, error) {
	if err := v.validateUser(ctx, userID); err != nil {
		return nil, err
	}

	return v.inner.ListFavorites(ctx, userID)
}

func (v *LocationValidationService) RemoveFavorite(ctx context.Context, userID, favoriteID int64) error {
	if err := v.validateUser(ctx, userID); err != nil {
		return err
	}
	if err := v.validator.Validate(ctx, favoriteID, validators.FieldFavoriteID); err != nil {
		return fmt.Errorf("%w: %w", ErrValidation, err)
	}

	return v.inner.RemoveFavorite(ctx, userID, favoriteID)
}

func (v *LocationValidationService) History(ctx context.Context, userID int64) ([]models.SearchHistoryEntry, error) {
	if err := v.validateUser(ctx, userID); err != nil {
		return nil, err
	}

	return v.inner.History(ctx, userID)
}

func (v *LocationValidationService) Wrap(inner LocationService) LocationService {
	v.inner = inner
	return v
}

func (v *LocationValidationService) validateUser(ctx context.Context, userID int64) error {
	if err := v.validator.Validate(ctx, userID, validators.FieldUserID); err != nil {
		return fmt.Errorf("%w: %w", ErrValidation, err)
	}
	return nil
}
