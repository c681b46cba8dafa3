// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"strconv"

	"github.com/MKhiriev/go-location-info/internal/logger"
	"github.com/MKhiriev/go-location-info/internal/utils"
	"github.com/MKhiriev/go-location-info/models"
)

const (
	newsEverythingPath = "/v2/everything"
	defaultPageSize    = 10
)

// newsAPIAdapter is the NewsAPI [NewsAdapter].
type newsAPIAdapter struct {
	client   *utils.HTTPClient
	apiKey   string
	pageSize int
	logger   *logger.Logger
}

// NewNewsAPIAdapter returns a [NewsAdapter] for NewsAPI at baseURL.
// A non-positive pageSize falls back to 10.
func NewNewsAPIAdapter(client *utils.HTTPClient, baseURL, apiKey string, pageSize int, log *logger.Logger) (NewsAdapter, error) {
	base, err := normalizeBaseURL(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid news base url: %w", err)
	}
	client.SetBaseURL(base)
	instrument(client, upstreamNewsAPI)

	if pageSize <= 0 {
		pageSize = defaultPageSize
	}

	return &newsAPIAdapter{client: client, apiKey: apiKey, pageSize: pageSize, logger: log}, nil
}

// Everything implements [NewsAdapter].
func (n *newsAPIAdapter) Everything(ctx context.Context, location string) (models.UpstreamResponse, error) {
	log := logger.FromContext(ctx)

	if n.apiKey == "" {
		return models.UpstreamResponse{}, ErrAPIKeyNotConfigured
	}

	resp, err := n.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"q":        location,
			"apiKey":   n.apiKey,
			"pageSize": strconv.Itoa(n.pageSize),
		}).
		Get(newsEverythingPath)
	if err != nil {
		log.Err(err).Str("func", "newsAPIAdapter.Everything").Msg("news request failed")
		return models.UpstreamResponse{}, fmt.Errorf("%w: news request: %w", ErrUpstreamUnavailable, err)
	}

	return toUpstreamResponse(resp), nil
}
