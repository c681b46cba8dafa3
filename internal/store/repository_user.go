// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-location-info/internal/logger"
	"github.com/MKhiriev/go-location-info/models"
)

// userRepository is the SQL implementation of [UserRepository] over the
// "users" table.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by db.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser checks for an existing email and inserts the user inside one
// transaction. A UNIQUE violation raised by a concurrent registration that
// slipped past the check is also reported as [ErrEmailAlreadyExists].
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	if user.Preferences == nil {
		user.Preferences = models.Preferences{}
	}
	user.CreatedAt = time.Now().UTC()

	err := r.db.WithTx(ctx, func(q Querier) error {
		countQuery, countArgs, err := buildCountUsersByEmailQuery(r.db.builder, user.Email)
		if err != nil {
			return err
		}

		var count int
		if err = q.QueryRowContext(ctx, countQuery, countArgs...).Scan(&count); err != nil {
			log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error checking email uniqueness")
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
		if count > 0 {
			return ErrEmailAlreadyExists
		}

		insertQuery, insertArgs, err := buildInsertUserQuery(r.db.builder, user)
		if err != nil {
			return err
		}

		// create user in db
		if err = q.QueryRowContext(ctx, insertQuery, insertArgs...).Scan(&user.UserID); err != nil {
			if isUniqueViolation(err) {
				return ErrEmailAlreadyExists
			}
			log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error inserting user")
			return fmt.Errorf("unexpected DB error: %w", err)
		}

		return nil
	})
	if err != nil {
		return models.User{}, err
	}

	log.Debug().Str("func", "*userRepository.CreateUser").Int64("user_id", user.UserID).Msg("user created")

	return user, nil
}

// FindUserByEmail looks a user up by exact email match.
func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectUserByEmailQuery(r.db.builder, email)
	if err != nil {
		return models.User{}, err
	}

	var foundUser models.User
	row := r.db.QueryRowContext(ctx, query, args...)

	// scan found user from db
	err = row.Scan(&foundUser.UserID, &foundUser.Email, &foundUser.PasswordHash, &foundUser.Preferences, &foundUser.CreatedAt)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.User{}, ErrNoUserWasFound
	case err != nil:
		log.Err(err).Str("func", "*userRepository.FindUserByEmail").Msg("error finding user")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return foundUser, nil
}
