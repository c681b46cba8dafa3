// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBuilder(args ...string) *configBuilder {
	b := newConfigBuilder()
	b.flagSet = newTestFlagSet()
	b.args = args
	return b
}

func productionConfig() *StructuredConfig {
	cfg := defaultConfig()
	cfg.App.Env = EnvProduction
	cfg.App.TokenSignKey = "prod-secret"
	cfg.Adapter.Weather.APIKey = "wk"
	cfg.Adapter.News.APIKey = "nk"
	return cfg
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newTestBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_FirstSourceWins verifies that mergo keeps values set by earlier
// sources and only fills zero fields from later ones.
func TestBuild_FirstSourceWins(t *testing.T) {
	b := newTestBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{App: App{TokenIssuer: "from-env"}},
		&StructuredConfig{App: App{TokenIssuer: "from-flags", Version: "1.0.0"}},
	)
	b.withDefaults()

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.App.TokenIssuer)
	assert.Equal(t, "1.0.0", cfg.App.Version)
	assert.Equal(t, defaultTokenDuration, cfg.App.TokenDuration)
}

func TestBuild_DefaultsOnly(t *testing.T) {
	cfg, err := newTestBuilder().withDefaults().build()
	require.NoError(t, err)

	assert.Equal(t, EnvDevelopment, cfg.App.Env)
	assert.Equal(t, DriverSQLite, cfg.Storage.DB.Driver)
	assert.Equal(t, "app.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "localhost:5000", cfg.Server.HTTPAddress)
	assert.Equal(t, time.Hour, cfg.App.TokenDuration)
	assert.Equal(t, "LocationInfoApp/1.0", cfg.Adapter.Geocoding.UserAgent)
	assert.Equal(t, 10, cfg.Adapter.News.PageSize)
	assert.True(t, cfg.UsesInsecureSignKey(), "development mode falls back to the insecure key")
}

func TestBuild_FlagsAndJSON(t *testing.T) {
	p := writeJSONFile(t, `{"app": {"token_issuer": "json-issuer", "version": "9.9.9"}}`)

	cfg, err := newTestBuilder("-token-issuer", "flag-issuer", "-c", p).
		withFlags().
		withJSON().
		withDefaults().
		build()
	require.NoError(t, err)

	assert.Equal(t, "flag-issuer", cfg.App.TokenIssuer)
	assert.Equal(t, "9.9.9", cfg.App.Version)
}

func TestBuild_MissingJSONFile(t *testing.T) {
	_, err := newTestBuilder("-c", "/definitely/missing.json").
		withFlags().
		withJSON().
		withDefaults().
		build()
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *StructuredConfig)
		wantErr error
	}{
		{name: "valid production", mutate: func(*StructuredConfig) {}},
		{
			name:    "unknown driver",
			mutate:  func(cfg *StructuredConfig) { cfg.Storage.DB.Driver = "oracle" },
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name:    "empty dsn",
			mutate:  func(cfg *StructuredConfig) { cfg.Storage.DB.DSN = "" },
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name:    "empty http address",
			mutate:  func(cfg *StructuredConfig) { cfg.Server.HTTPAddress = "" },
			wantErr: ErrInvalidServerConfigs,
		},
		{
			name:    "zero token duration",
			mutate:  func(cfg *StructuredConfig) { cfg.App.TokenDuration = 0 },
			wantErr: ErrInvalidAppConfigs,
		},
		{
			name:    "production without sign key",
			mutate:  func(cfg *StructuredConfig) { cfg.App.TokenSignKey = "" },
			wantErr: ErrInvalidAppConfigs,
		},
		{
			name:    "production with insecure key",
			mutate:  func(cfg *StructuredConfig) { cfg.App.TokenSignKey = insecureDevSignKey },
			wantErr: ErrInvalidAppConfigs,
		},
		{
			name:    "production without weather key",
			mutate:  func(cfg *StructuredConfig) { cfg.Adapter.Weather.APIKey = "" },
			wantErr: ErrInvalidAdapterConfigs,
		},
		{
			name:    "production without news key",
			mutate:  func(cfg *StructuredConfig) { cfg.Adapter.News.APIKey = "" },
			wantErr: ErrInvalidAdapterConfigs,
		},
		{
			name: "development tolerates missing keys",
			mutate: func(cfg *StructuredConfig) {
				cfg.App.Env = EnvDevelopment
				cfg.Adapter.Weather.APIKey = ""
				cfg.Adapter.News.APIKey = ""
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := productionConfig()
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
