// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// Application run modes. Anything other than [EnvDevelopment] is treated as
// a hardened deployment and must carry explicit secrets.
const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

// Supported database drivers.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// StructuredConfig is the top-level configuration container. It is
// populated by merging environment variables, command-line flags, an
// optional JSON file and finally built-in defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds the run mode, token parameters and logging settings.
	App App `envPrefix:"APP_"`

	// Storage holds the relational database settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds listen addresses for the HTTP and gRPC servers.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds settings for the third-party APIs the server proxies to.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level settings.
type App struct {
	// Env is the run mode: "development" or "production".
	// Env: APP_ENV
	Env string `env:"ENV"`

	// TokenSignKey is the HMAC secret used to sign and verify bearer tokens.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim embedded in and required from every token.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration is how long an issued token stays valid (e.g. "1h").
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// LogLevel is the minimal zerolog level ("debug", "info", ...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`

	// Version is reported on the index page.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// IsDevelopment reports whether the server runs in development mode.
func (a App) IsDevelopment() bool {
	return a.Env == EnvDevelopment
}

// Storage groups the persistence settings.
type Storage struct {
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the relational database backend.
type DB struct {
	// Driver selects the SQL backend: "sqlite" or "postgres".
	// Env: STORAGE_DB_DRIVER
	Driver string `env:"DRIVER"`

	// DSN is the driver-specific data source name: a file path for SQLite
	// (e.g. "app.db") or a PostgreSQL URI.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Server holds network settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the host:port the HTTP API listens on.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// GRPCAddress is the host:port of the optional gRPC health server.
	// Empty disables it.
	// Env: SERVER_GRPC_ADDRESS
	GRPCAddress string `env:"GRPC_ADDRESS"`

	// AllowShutdown enables the POST /shutdown endpoint.
	// Env: SERVER_ALLOW_SHUTDOWN
	AllowShutdown bool `env:"ALLOW_SHUTDOWN"`
}

// Adapter holds settings for the upstream services.
type Adapter struct {
	// RequestTimeout bounds every outbound call. Zero keeps the HTTP
	// client's default (no timeout).
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	Geocoding Geocoding `envPrefix:"GEOCODING_"`
	Weather   Weather   `envPrefix:"WEATHER_"`
	News      News      `envPrefix:"NEWS_"`
}

// Geocoding configures the Nominatim client.
type Geocoding struct {
	// BaseURL of the Nominatim instance.
	// Env: ADAPTER_GEOCODING_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// UserAgent is required by the Nominatim usage policy.
	// Env: ADAPTER_GEOCODING_USER_AGENT
	UserAgent string `env:"USER_AGENT"`
}

// Weather configures the OpenWeather client used for weather, forecast
// and air quality.
type Weather struct {
	// Env: ADAPTER_WEATHER_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// Env: ADAPTER_WEATHER_API_KEY
	APIKey string `env:"API_KEY"`
}

// News configures the NewsAPI client.
type News struct {
	// Env: ADAPTER_NEWS_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// APIKey may be empty in development mode; /news then answers 500.
	// Env: ADAPTER_NEWS_API_KEY
	APIKey string `env:"API_KEY"`

	// PageSize is the number of articles requested.
	// Env: ADAPTER_NEWS_PAGE_SIZE
	PageSize int `env:"PAGE_SIZE"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration. For every field the first non-zero value wins, in order:
//  1. Environment variables (a .env file in the working directory is loaded first)
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		withDefaults().
		build()
}
