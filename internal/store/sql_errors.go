// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"github.com/jackc/pgerrcode"
	"github.com/mattn/go-sqlite3"
)

// isUniqueViolation reports whether err is a UNIQUE constraint failure from
// either supported driver.
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}

	switch {
	case postgresError(err) == pgerrcode.UniqueViolation:
		return true
	case sqliteError(err) == sqlite3.ErrConstraintUnique,
		sqliteError(err) == sqlite3.ErrConstraintPrimaryKey:
		return true
	}

	return false
}
