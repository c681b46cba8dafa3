// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	// ErrValidation wraps every input rejected by a validator.
	ErrValidation = errors.New("validation failed")

	ErrInvalidCredentials      = errors.New("invalid credentials")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrTokenCreationFailed     = errors.New("token creation failed")

	ErrLocationNotFound = errors.New("location not found")

	ErrNewsAPIKeyMissing     = errors.New("news API key not configured")
	ErrUpstreamRequestFailed = errors.New("upstream request failed")
	ErrUpstreamReportedError = errors.New("upstream reported an error")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
