// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"strconv"
	"time"

	"github.com/MKhiriev/go-location-info/internal/metrics"
	"github.com/MKhiriev/go-location-info/internal/utils"
	"github.com/go-resty/resty/v2"
)

// Upstream labels used in metrics.
const (
	upstreamNominatim   = "nominatim"
	upstreamOpenWeather = "openweather"
	upstreamNewsAPI     = "newsapi"
)

// instrument counts every call made through client under the upstream label.
func instrument(client *utils.HTTPClient, upstream string) {
	client.OnAfterResponse(func(_ *resty.Client, resp *resty.Response) error {
		metrics.ObserveUpstream(upstream, strconv.Itoa(resp.StatusCode()), resp.Time())
		return nil
	})
	client.OnError(func(req *resty.Request, _ error) {
		metrics.ObserveUpstream(upstream, metrics.StatusError, time.Since(req.Time))
	})
}
