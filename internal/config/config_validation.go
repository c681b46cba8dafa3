// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "fmt"

// applyDevelopmentFallbacks fills the token sign key with an insecure
// constant when running in development mode without one.
func (cfg *StructuredConfig) applyDevelopmentFallbacks() {
	if cfg.App.IsDevelopment() && cfg.App.TokenSignKey == "" {
		cfg.App.TokenSignKey = insecureDevSignKey
	}
}

// UsesInsecureSignKey reports whether the development fallback key is in use.
func (cfg *StructuredConfig) UsesInsecureSignKey() bool {
	return cfg.App.TokenSignKey == insecureDevSignKey
}

// validate checks that the final merged [StructuredConfig] can be used at
// startup. Outside development mode every secret must be set explicitly.
func (cfg *StructuredConfig) validate() error {
	switch cfg.Storage.DB.Driver {
	case DriverSQLite, DriverPostgres:
	default:
		return fmt.Errorf("%w: unknown driver %q", ErrInvalidStorageConfigs, cfg.Storage.DB.Driver)
	}

	if cfg.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: empty DSN", ErrInvalidStorageConfigs)
	}

	if cfg.Server.HTTPAddress == "" {
		return fmt.Errorf("%w: empty HTTP address", ErrInvalidServerConfigs)
	}

	if cfg.App.TokenDuration <= 0 || cfg.App.TokenIssuer == "" {
		return fmt.Errorf("%w: token issuer and positive token duration are required", ErrInvalidAppConfigs)
	}

	if cfg.App.IsDevelopment() {
		return nil
	}

	if cfg.App.TokenSignKey == "" || cfg.UsesInsecureSignKey() {
		return fmt.Errorf("%w: token sign key must be set in %q mode", ErrInvalidAppConfigs, cfg.App.Env)
	}

	if cfg.Adapter.Weather.APIKey == "" {
		return fmt.Errorf("%w: weather API key must be set in %q mode", ErrInvalidAdapterConfigs, cfg.App.Env)
	}

	if cfg.Adapter.News.APIKey == "" {
		return fmt.Errorf("%w: news API key must be set in %q mode", ErrInvalidAdapterConfigs, cfg.App.Env)
	}

	return nil
}
