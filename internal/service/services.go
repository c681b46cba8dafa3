// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"

	"github.com/MKhiriev/go-location-info/internal/adapter"
	"github.com/MKhiriev/go-location-info/internal/config"
	"github.com/MKhiriev/go-location-info/internal/crypto"
	"github.com/MKhiriev/go-location-info/internal/logger"
	"github.com/MKhiriev/go-location-info/internal/store"
)

type Services struct {
	AppInfoService  AppInfoService
	AuthService     AuthService
	LocationService LocationService
	InfoService     InfoService
}

// NewServices wires the core services to storages and adapters. Location
// and info services are returned wrapped in their validating decorators.
func NewServices(storages *store.Storages, adapters *adapter.Adapters, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	location := NewLocationService(storages.LocationRepository, adapters.Geocoding, logger)
	info := NewInfoService(adapters.Weather, adapters.News, logger)

	return &Services{
		AppInfoService:  appInfo,
		AuthService:     NewAuthService(storages.UserRepository, crypto.NewPasswordHasher(), cfg.App, logger),
		LocationService: NewLocationValidationService().Wrap(location),
		InfoService:     NewInfoValidationService().Wrap(info),
	}, nil
}
