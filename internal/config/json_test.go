// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeJSONFile(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(p, []byte(body), 0o600))
	return p
}

func TestParseJSON_Success(t *testing.T) {
	p := writeJSONFile(t, `{
		"app": {
			"env": "production",
			"token_sign_key": "jwt_secret",
			"token_issuer": "issuer",
			"token_duration": "2h",
			"log_level": "info",
			"version": "0.1.0"
		},
		"storage": { "db": { "driver": "postgres", "dsn": "postgres://localhost/db" } },
		"server": { "http_address": ":8080", "grpc_address": ":9090", "allow_shutdown": true },
		"adapter": {
			"request_timeout": "10s",
			"geocoding": { "base_url": "http://geo", "user_agent": "ua" },
			"weather": { "base_url": "http://weather", "api_key": "wk" },
			"news": { "base_url": "http://news", "api_key": "nk", "page_size": 5 }
		}
	}`)

	cfg, err := parseJSON(p)
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.App.Env)
	assert.Equal(t, "jwt_secret", cfg.App.TokenSignKey)
	assert.Equal(t, "issuer", cfg.App.TokenIssuer)
	assert.Equal(t, 2*time.Hour, cfg.App.TokenDuration)
	assert.Equal(t, "info", cfg.App.LogLevel)
	assert.Equal(t, "0.1.0", cfg.App.Version)
	assert.Equal(t, "postgres", cfg.Storage.DB.Driver)
	assert.Equal(t, "postgres://localhost/db", cfg.Storage.DB.DSN)
	assert.Equal(t, ":8080", cfg.Server.HTTPAddress)
	assert.Equal(t, ":9090", cfg.Server.GRPCAddress)
	assert.True(t, cfg.Server.AllowShutdown)
	assert.Equal(t, 10*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "http://geo", cfg.Adapter.Geocoding.BaseURL)
	assert.Equal(t, "ua", cfg.Adapter.Geocoding.UserAgent)
	assert.Equal(t, "wk", cfg.Adapter.Weather.APIKey)
	assert.Equal(t, "nk", cfg.Adapter.News.APIKey)
	assert.Equal(t, 5, cfg.Adapter.News.PageSize)
	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseJSON_FileNotFound(t *testing.T) {
	_, err := parseJSON(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading a json file")
}

func TestParseJSON_InvalidJSON(t *testing.T) {
	p := writeJSONFile(t, `{"app": `)

	_, err := parseJSON(p)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error decoding json configs")
}

func TestDuration_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Duration
		wantErr bool
	}{
		{name: "string", input: `"90s"`, want: 90 * time.Second},
		{name: "nanoseconds", input: `1000`, want: time.Microsecond},
		{name: "bad string", input: `"soon"`, wantErr: true},
		{name: "bool", input: `true`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Duration
			err := d.UnmarshalJSON([]byte(tt.input))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, time.Duration(d))
		})
	}
}
