// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/sha512"
	"crypto/subtle"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"hash"
	"io"
	"strconv"
	"strings"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/pbkdf2"
)

const (
	argon2idPrefix = "$argon2id$"
	pbkdf2Prefix   = "pbkdf2:"

	// werkzeugDefaultIterations applies to legacy hashes that omit the
	// iteration count.
	werkzeugDefaultIterations = 260000
)

// argon2idHasher is the private implementation of [PasswordHasher].
//
// New hashes are Argon2id PHC strings:
//
//	$argon2id$v=19$m=65536,t=1,p=4$<salt b64>$<key b64>
//
// Verify additionally accepts the Werkzeug format written by the
// previous Flask deployment:
//
//	pbkdf2:sha256:<iterations>$<salt>$<hex digest>
type argon2idHasher struct {
	argonTime    uint32
	argonMemory  uint32
	argonThreads uint8
	argonKeyLen  uint32
	saltLen      int
}

// NewPasswordHasher constructs a [PasswordHasher] with the Argon2id
// parameters recommended by OWASP (2024):
//   - time cost:   1 iteration
//   - memory cost: 64 MiB
//   - parallelism: 4 threads
//   - key length:  32 bytes (256 bits)
func NewPasswordHasher() PasswordHasher {
	return NewPasswordHasherWithParams(1, 64*1024, 4)
}

// NewPasswordHasherWithParams constructs a [PasswordHasher] with custom
// Argon2id cost parameters (memory in KiB).
func NewPasswordHasherWithParams(time, memory uint32, threads uint8) PasswordHasher {
	return &argon2idHasher{
		argonTime:    time,
		argonMemory:  memory,
		argonThreads: threads,
		argonKeyLen:  32,
		saltLen:      16,
	}
}

// Hash implements [PasswordHasher].
func (h *argon2idHasher) Hash(password string) (string, error) {
	if password == "" {
		return "", ErrEmptyPassword
	}

	salt := make([]byte, h.saltLen)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return "", fmt.Errorf("error generating salt: %w", err)
	}

	key := argon2.IDKey([]byte(password), salt, h.argonTime, h.argonMemory, h.argonThreads, h.argonKeyLen)

	return fmt.Sprintf("%sv=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2idPrefix,
		argon2.Version,
		h.argonMemory,
		h.argonTime,
		h.argonThreads,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key),
	), nil
}

// Verify implements [PasswordHasher].
func (h *argon2idHasher) Verify(password, encodedHash string) (bool, error) {
	switch {
	case strings.HasPrefix(encodedHash, argon2idPrefix):
		return verifyArgon2id(password, encodedHash)
	case strings.HasPrefix(encodedHash, pbkdf2Prefix):
		return verifyWerkzeugPBKDF2(password, encodedHash)
	default:
		return false, ErrUnsupportedHash
	}
}

func verifyArgon2id(password, encodedHash string) (bool, error) {
	// "", "argon2id", "v=19", "m=..,t=..,p=..", salt, key
	parts := strings.Split(encodedHash, "$")
	if len(parts) != 6 {
		return false, ErrMalformedHash
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil {
		return false, fmt.Errorf("%w: %w", ErrMalformedHash, err)
	}
	if version != argon2.Version {
		return false, ErrIncompatibleVersion
	}

	var memory, time uint32
	var threads uint8
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &memory, &time, &threads); err != nil {
		return false, fmt.Errorf("%w: %w", ErrMalformedHash, err)
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrMalformedHash, err)
	}

	expected, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil || len(expected) == 0 {
		return false, ErrMalformedHash
	}

	actual := argon2.IDKey([]byte(password), salt, time, memory, threads, uint32(len(expected)))

	return subtle.ConstantTimeCompare(actual, expected) == 1, nil
}

func verifyWerkzeugPBKDF2(password, encodedHash string) (bool, error) {
	// "pbkdf2:sha256:600000", salt, hex digest
	parts := strings.SplitN(encodedHash, "$", 3)
	if len(parts) != 3 {
		return false, ErrMalformedHash
	}

	method := strings.Split(parts[0], ":")
	if len(method) < 2 || len(method) > 3 {
		return false, ErrMalformedHash
	}

	var newHash func() hash.Hash
	switch method[1] {
	case "sha256":
		newHash = sha256.New
	case "sha512":
		newHash = sha512.New
	default:
		return false, ErrUnsupportedHash
	}

	iterations := werkzeugDefaultIterations
	if len(method) == 3 {
		n, err := strconv.Atoi(method[2])
		if err != nil || n < 1 {
			return false, ErrMalformedHash
		}
		iterations = n
	}

	expected, err := hex.DecodeString(parts[2])
	if err != nil || len(expected) == 0 {
		return false, ErrMalformedHash
	}

	actual := pbkdf2.Key([]byte(password), []byte(parts[1]), iterations, len(expected), newHash)

	return subtle.ConstantTimeCompare(actual, expected) == 1, nil
}
