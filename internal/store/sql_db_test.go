// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-location-info/internal/config"
	"github.com/MKhiriev/go-location-info/internal/logger"
	"github.com/jackc/pgerrcode"
	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDB_UnsupportedDriver(t *testing.T) {
	conn, _, err := sqlmock.New()
	require.NoError(t, err)
	defer conn.Close()

	_, err = NewDB(conn, "mysql", logger.Nop())
	assert.ErrorIs(t, err, ErrUnsupportedDriver)
}

func TestNewConnection_UnsupportedDriver(t *testing.T) {
	_, err := NewConnection(context.Background(), config.DB{Driver: "oracle", DSN: "x"}, logger.Nop())
	assert.ErrorIs(t, err, ErrUnsupportedDriver)
}

func TestWithTx(t *testing.T) {
	t.Run("commit", func(t *testing.T) {
		db, mock := newTestDB(t, config.DriverSQLite)
		mock.ExpectBegin()
		mock.ExpectExec("UPDATE").WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		err := db.WithTx(context.Background(), func(q Querier) error {
			_, err := q.ExecContext(context.Background(), "UPDATE x SET y = 1")
			return err
		})
		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rollback keeps callback error", func(t *testing.T) {
		db, mock := newTestDB(t, config.DriverSQLite)
		mock.ExpectBegin()
		mock.ExpectRollback()

		sentinel := errors.New("stop")
		err := db.WithTx(context.Background(), func(Querier) error { return sentinel })

		assert.Same(t, sentinel, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestIsUniqueViolation(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"plain", errors.New("x"), false},
		{"pg unique", pgError(pgerrcode.UniqueViolation), true},
		{"pg fk", pgError(pgerrcode.ForeignKeyViolation), false},
		{"sqlite unique", sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintUnique}, true},
		{"sqlite not null", sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintNotNull}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isUniqueViolation(tt.err))
		})
	}
}

func TestWithForeignKeys(t *testing.T) {
	assert.Equal(t, "app.db?_foreign_keys=on", withForeignKeys("app.db"))
	assert.Equal(t, "file:app.db?cache=shared&_foreign_keys=on", withForeignKeys("file:app.db?cache=shared"))
	assert.Equal(t, "app.db?_fk=1", withForeignKeys("app.db?_fk=1"))
}
