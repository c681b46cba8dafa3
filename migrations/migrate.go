// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package migrations embeds the SQL schema for every supported dialect and
// applies it with goose.
package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed sqlite/*.sql postgres/*.sql
var embedMigrations embed.FS

// ErrUnknownDialect is returned for a driver without embedded migrations.
var ErrUnknownDialect = errors.New("no migrations for dialect")

// dialects maps a storage driver name to its goose dialect and the embedded
// directory holding its migrations.
var dialects = map[string]struct {
	goose string
	dir   string
}{
	"sqlite":   {goose: "sqlite3", dir: "sqlite"},
	"postgres": {goose: "pgx", dir: "postgres"},
}

// Migrate applies every pending migration of driver's dialect to db.
func Migrate(db *sql.DB, driver string) error {
	if db == nil {
		return errors.New("migration error: db is nil")
	}

	dialect, ok := dialects[driver]
	if !ok {
		return fmt.Errorf("migration error: %w %q", ErrUnknownDialect, driver)
	}

	goose.SetBaseFS(embedMigrations)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect(dialect.goose); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, dialect.dir); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
