// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

// insecureDevSignKey is only ever applied in development mode.
const insecureDevSignKey = "jwt-secret-key"

const (
	defaultHTTPAddress      = "localhost:5000"
	defaultDBDriver         = DriverSQLite
	defaultDBDSN            = "app.db"
	defaultTokenIssuer      = "location-info"
	defaultTokenDuration    = time.Hour
	defaultGeocodingBaseURL = "https://nominatim.openstreetmap.org"
	defaultGeocodingAgent   = "LocationInfoApp/1.0"
	defaultWeatherBaseURL   = "https://api.openweathermap.org"
	defaultNewsBaseURL      = "https://newsapi.org"
	defaultNewsPageSize     = 10
	defaultLogLevel         = "debug"
)

// defaultConfig returns the lowest-priority configuration source.
// Secrets are intentionally absent; see [StructuredConfig.validate].
func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Env:           EnvDevelopment,
			TokenIssuer:   defaultTokenIssuer,
			TokenDuration: defaultTokenDuration,
			LogLevel:      defaultLogLevel,
		},
		Storage: Storage{
			DB: DB{
				Driver: defaultDBDriver,
				DSN:    defaultDBDSN,
			},
		},
		Server: Server{
			HTTPAddress: defaultHTTPAddress,
		},
		Adapter: Adapter{
			Geocoding: Geocoding{
				BaseURL:   defaultGeocodingBaseURL,
				UserAgent: defaultGeocodingAgent,
			},
			Weather: Weather{
				BaseURL: defaultWeatherBaseURL,
			},
			News: News{
				BaseURL:  defaultNewsBaseURL,
				PageSize: defaultNewsPageSize,
			},
		},
	}
}
