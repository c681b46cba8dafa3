// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// User represents a registered account.
// The password hash never leaves the server: it is excluded from JSON.
type User struct {
	// UserID is the internal unique identifier of the user.
	UserID int64 `json:"id"`

	// Email is the unique login identifier. Compared case-sensitively,
	// exactly as it was stored at registration.
	Email string `json:"email"`

	// PasswordHash stores the encoded salted hash of the user's password
	// (Argon2id PHC string, or a legacy Werkzeug pbkdf2 string).
	PasswordHash string `json:"-"`

	// Preferences is a free-form mapping kept opaque by the server.
	// It defaults to an empty object and is not used by any route.
	Preferences Preferences `json:"preferences"`

	// CreatedAt is the moment the account was created (UTC).
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Preferences is the user's opaque JSON preference object.
type Preferences map[string]any

// Value implements [driver.Valuer]; a nil map is stored as "{}".
func (p Preferences) Value() (driver.Value, error) {
	if p == nil {
		return "{}", nil
	}

	raw, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("error encoding preferences: %w", err)
	}

	return string(raw), nil
}

// Scan implements [sql.Scanner] for TEXT (sqlite) and JSONB (postgres) columns.
func (p *Preferences) Scan(src any) error {
	var raw []byte
	switch v := src.(type) {
	case nil:
		*p = Preferences{}
		return nil
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("unsupported preferences type %T", src)
	}

	prefs := Preferences{}
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &prefs); err != nil {
			return fmt.Errorf("error decoding preferences: %w", err)
		}
	}
	*p = prefs

	return nil
}

// Credentials is the body of the register and login requests.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
