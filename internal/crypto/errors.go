// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "errors"

var (
	// ErrEmptyPassword is returned by Hash when the password is empty.
	ErrEmptyPassword = errors.New("empty password")

	// ErrMalformedHash is returned when an encoded hash cannot be parsed.
	ErrMalformedHash = errors.New("malformed password hash")

	// ErrUnsupportedHash is returned for an unknown hash algorithm.
	ErrUnsupportedHash = errors.New("unsupported password hash algorithm")

	// ErrIncompatibleVersion is returned for an Argon2 version other than 0x13.
	ErrIncompatibleVersion = errors.New("incompatible argon2 version")
)
