// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import "errors"

var (
	// ErrUpstreamUnavailable is returned when the request could not be
	// completed at the transport level (DNS, connect, timeout, cancel).
	ErrUpstreamUnavailable = errors.New("upstream service unavailable")

	// ErrLocationNotFound is returned by geocoding when nothing matches.
	ErrLocationNotFound = errors.New("location not found")

	// ErrAPIKeyNotConfigured is returned when a provider needs a key that
	// was not configured.
	ErrAPIKeyNotConfigured = errors.New("api key not configured")

	// ErrInvalidUpstreamBody is returned when a 200 response cannot be decoded.
	ErrInvalidUpstreamBody = errors.New("invalid upstream response body")

	// ErrInvalidBaseURL is returned by constructors for a malformed base URL.
	ErrInvalidBaseURL = errors.New("invalid base url")
)

// Errors mapped from upstream HTTP statuses by mapHTTPError.
var (
	ErrBadRequest          = errors.New("upstream bad request")
	ErrUnauthorized        = errors.New("upstream unauthorized")
	ErrForbidden           = errors.New("upstream forbidden")
	ErrNotFound            = errors.New("upstream not found")
	ErrTooManyRequests     = errors.New("upstream rate limited")
	ErrInternalServerError = errors.New("upstream internal server error")
	ErrBadGateway          = errors.New("upstream bad gateway")
)
