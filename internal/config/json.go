// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk JSON layout of the configuration.
type StructuredJSONConfig struct {
	App struct {
		Env           string   `json:"env"`
		TokenSignKey  string   `json:"token_sign_key"`
		TokenIssuer   string   `json:"token_issuer"`
		TokenDuration Duration `json:"token_duration"`
		LogLevel      string   `json:"log_level"`
		Version       string   `json:"version"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			Driver string `json:"driver"`
			DSN    string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress   string `json:"http_address"`
		GRPCAddress   string `json:"grpc_address"`
		AllowShutdown bool   `json:"allow_shutdown"`
	} `json:"server,omitempty"`

	Adapter struct {
		RequestTimeout Duration `json:"request_timeout"`
		Geocoding      struct {
			BaseURL   string `json:"base_url"`
			UserAgent string `json:"user_agent"`
		} `json:"geocoding,omitempty"`
		Weather struct {
			BaseURL string `json:"base_url"`
			APIKey  string `json:"api_key"`
		} `json:"weather,omitempty"`
		News struct {
			BaseURL  string `json:"base_url"`
			APIKey   string `json:"api_key"`
			PageSize int    `json:"page_size"`
		} `json:"news,omitempty"`
	} `json:"adapter,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			Env:           jsonCfg.App.Env,
			TokenSignKey:  jsonCfg.App.TokenSignKey,
			TokenIssuer:   jsonCfg.App.TokenIssuer,
			TokenDuration: time.Duration(jsonCfg.App.TokenDuration),
			LogLevel:      jsonCfg.App.LogLevel,
			Version:       jsonCfg.App.Version,
		},
		Storage: Storage{
			DB: DB{
				Driver: jsonCfg.Storage.DB.Driver,
				DSN:    jsonCfg.Storage.DB.DSN,
			},
		},
		Server: Server{
			HTTPAddress:   jsonCfg.Server.HTTPAddress,
			GRPCAddress:   jsonCfg.Server.GRPCAddress,
			AllowShutdown: jsonCfg.Server.AllowShutdown,
		},
		Adapter: Adapter{
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
			Geocoding: Geocoding{
				BaseURL:   jsonCfg.Adapter.Geocoding.BaseURL,
				UserAgent: jsonCfg.Adapter.Geocoding.UserAgent,
			},
			Weather: Weather{
				BaseURL: jsonCfg.Adapter.Weather.BaseURL,
				APIKey:  jsonCfg.Adapter.Weather.APIKey,
			},
			News: News{
				BaseURL:  jsonCfg.Adapter.News.BaseURL,
				APIKey:   jsonCfg.Adapter.News.APIKey,
				PageSize: jsonCfg.Adapter.News.PageSize,
			},
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration: %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
