// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package crypto implements one-way password hashing for stored
// credentials.
package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/password_hasher_mock.go -package=mock

// PasswordHasher turns plaintext passwords into self-describing encoded
// hashes and verifies candidates against them.
//
// Encoded hashes embed the algorithm, its parameters and the salt, so
// hashes produced with older parameters stay verifiable after tuning.
type PasswordHasher interface {
	// Hash returns the encoded salted hash of password.
	Hash(password string) (string, error)

	// Verify reports whether password matches encodedHash. A malformed
	// or unsupported hash yields an error; a plain mismatch yields
	// (false, nil).
	Verify(password, encodedHash string) (bool, error)
}
