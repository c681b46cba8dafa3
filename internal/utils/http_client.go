// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient wraps [resty.Client] for calls to third-party APIs.
// All resty methods are available through embedding.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns an independent client with its own connection
// pool. A positive timeout bounds every request end to end; a non-empty
// userAgent is sent on every request.
//
//	client := utils.NewHTTPClient(10*time.Second, "LocationInfoApp/1.0")
//	resp, err := client.R().SetContext(ctx).Get("https://nominatim.openstreetmap.org/search")
func NewHTTPClient(timeout time.Duration, userAgent string) *HTTPClient {
	client := resty.New()
	if timeout > 0 {
		client.SetTimeout(timeout)
	}
	if userAgent != "" {
		client.SetHeader("User-Agent", userAgent)
	}

	return &HTTPClient{Client: client}
}
