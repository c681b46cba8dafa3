// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-location-info/internal/validators"
	"github.com/MKhiriev/go-location-info/models"
)

// InfoValidationService checks coordinates and locations before they are
// forwarded to a provider.
type InfoValidationService struct {
	inner     InfoService
	validator validators.Validator
}

func NewInfoValidationService() InfoServiceWrapper {
	return &InfoValidationService{
		validator: validators.NewLocationValidator(),
	}
}

func (v *InfoValidationService) Weather(ctx context.Context, coords models.Coordinates) (models.UpstreamResponse, error) {
	if err := v.validateCoords(ctx, coords); err != nil {
		return models.UpstreamResponse{}, err
	}
	return v.inner.Weather(ctx, coords)
}

func (v *InfoValidationService) Forecast(ctx context.Context, coords models.Coordinates) (models.UpstreamResponse, error) {
	if err := v.validateCoords(ctx, coords); err != nil {
		return models.UpstreamResponse{}, err
	}
	return v.inner.Forecast(ctx, coords)
}

func (v *InfoValidationService) AirQuality(ctx context.Context, coords models.Coordinates) (models.UpstreamResponse, error) {
	if err := v.validateCoords(ctx, coords); err != nil {
		return models.UpstreamResponse{}, err
	}
	return v.inner.AirQuality(ctx, coords)
}

func (v *InfoValidationService) News(ctx context.Context, location string) (models.UpstreamResponse, error) {
	if err := v.validator.Validate(ctx, location, validators.FieldLocation); err != nil {
		return models.UpstreamResponse{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}
	return v.inner.News(ctx, location)
}

func (v *InfoValidationService) Wrap(inner InfoService) InfoService {
	v.inner = inner
	return v
}

func (v *InfoValidationService) validateCoords(ctx context.Context, coords models.Coordinates) error {
	if err := v.validator.Validate(ctx, coords); err != nil {
		return fmt.Errorf("%w: %w", ErrValidation, err)
	}
	return nil
}
