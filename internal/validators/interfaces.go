// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks request input before it reaches the core
// services.
//
// A Validator accepts any supported model plus optional field names that
// restrict which rules run. Services are wrapped by validating decorators,
// so handlers and core services stay free of input checks.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
