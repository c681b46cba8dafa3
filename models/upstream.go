// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "encoding/json"

// UpstreamResponse is a third-party response relayed to the client as-is.
type UpstreamResponse struct {
	// StatusCode is the HTTP status returned by the upstream service.
	StatusCode int

	// ContentType is the upstream Content-Type header, if any.
	ContentType string

	// Body is the raw upstream payload.
	Body json.RawMessage
}
