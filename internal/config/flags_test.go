// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"flag"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestFlagSet() *flag.FlagSet {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func TestNetAddress_String(t *testing.T) {
	tests := []struct {
		name     string
		addr     NetAddress
		expected string
	}{
		{name: "empty address", addr: NetAddress{}, expected: ""},
		{name: "localhost with port", addr: NetAddress{Host: "localhost", Port: 8080}, expected: "localhost:8080"},
		{name: "only port", addr: NetAddress{Port: 5000}, expected: ":5000"},
		{name: "ipv6", addr: NetAddress{Host: "::1", Port: 9090}, expected: "[::1]:9090"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.addr.String())
		})
	}
}

func TestNetAddress_Set(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantErr  bool
		wantHost string
		wantPort int
	}{
		{name: "localhost", input: "localhost:8080", wantHost: "localhost", wantPort: 8080},
		{name: "ip", input: "127.0.0.1:5000", wantHost: "127.0.0.1", wantPort: 5000},
		{name: "all interfaces", input: ":5000", wantHost: "", wantPort: 5000},
		{name: "missing port", input: "localhost", wantErr: true},
		{name: "port not a number", input: "localhost:http", wantErr: true},
		{name: "port out of range", input: "localhost:70000", wantErr: true},
		{name: "zero port", input: "localhost:0", wantErr: true},
		{name: "hostname not allowed", input: "example.com:80", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var addr NetAddress
			err := addr.Set(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantHost, addr.Host)
			assert.Equal(t, tt.wantPort, addr.Port)
		})
	}
}

func TestParseFlags_AllFlags(t *testing.T) {
	args := []string{
		"-a", "localhost:8081",
		"-grpc-address", "127.0.0.1:9091",
		"-env", "production",
		"-d", "postgres://localhost/app",
		"-db-driver", "postgres",
		"-config", "/etc/app.json",
		"-token-sign-key", "sign",
		"-token-issuer", "issuer",
		"-token-duration", "30m",
		"-log-level", "warn",
		"-allow-shutdown",
		"-weather-api-key", "wk",
		"-news-api-key", "nk",
		"-request-timeout", "3s",
	}

	cfg, err := parseFlags(newTestFlagSet(), args)
	require.NoError(t, err)

	assert.Equal(t, "localhost:8081", cfg.Server.HTTPAddress)
	assert.Equal(t, "127.0.0.1:9091", cfg.Server.GRPCAddress)
	assert.True(t, cfg.Server.AllowShutdown)
	assert.Equal(t, "production", cfg.App.Env)
	assert.Equal(t, "postgres://localhost/app", cfg.Storage.DB.DSN)
	assert.Equal(t, "postgres", cfg.Storage.DB.Driver)
	assert.Equal(t, "/etc/app.json", cfg.JSONFilePath)
	assert.Equal(t, "sign", cfg.App.TokenSignKey)
	assert.Equal(t, "issuer", cfg.App.TokenIssuer)
	assert.Equal(t, 30*time.Minute, cfg.App.TokenDuration)
	assert.Equal(t, "warn", cfg.App.LogLevel)
	assert.Equal(t, "wk", cfg.Adapter.Weather.APIKey)
	assert.Equal(t, "nk", cfg.Adapter.News.APIKey)
	assert.Equal(t, 3*time.Second, cfg.Adapter.RequestTimeout)
}

func TestParseFlags_NoArgs(t *testing.T) {
	cfg, err := parseFlags(newTestFlagSet(), []string{})
	require.NoError(t, err)

	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestParseFlags_InvalidAddress(t *testing.T) {
	_, err := parseFlags(newTestFlagSet(), []string{"-a", "nonsense"})
	require.Error(t, err)
}
