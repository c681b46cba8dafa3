// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/MKhiriev/go-location-info/internal/config"
	"github.com/MKhiriev/go-location-info/internal/logger"
	"github.com/MKhiriev/go-location-info/internal/service"
	"github.com/MKhiriev/go-location-info/internal/store"
	"github.com/MKhiriev/go-location-info/internal/validators"
	"github.com/MKhiriev/go-location-info/models"
	"github.com/stretchr/testify/assert"
)

func newHandlerWithAuth(auth service.AuthService) *Handler {
	return NewHandler(newTestServices(service.Services{AuthService: auth}), config.Server{}, nil, logger.Nop())
}

// ─────────────────────────────────────────────
// POST /register
// ─────────────────────────────────────────────

func TestRegister(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		registerErr error
		wantStatus  int
		wantBody    string
	}{
		{
			name:       "created",
			body:       `{"email":"a@x.io","password":"p"}`,
			wantStatus: http.StatusCreated,
			wantBody:   `{"message":"User registered successfully"}`,
		},
		{
			name:       "invalid json",
			body:       `{"email":`,
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"message":"Invalid JSON was passed"}`,
		},
		{
			name:        "missing fields",
			body:        `{"email":"a@x.io"}`,
			registerErr: fmt.Errorf("%w: %w", service.ErrValidation, validators.ErrCredentialsRequired),
			wantStatus:  http.StatusBadRequest,
			wantBody:    `{"message":"Email and password are required"}`,
		},
		{
			name:        "email taken",
			body:        `{"email":"a@x.io","password":"p"}`,
			registerErr: fmt.Errorf("user creation ended with error: %w", store.ErrEmailAlreadyExists),
			wantStatus:  http.StatusBadRequest,
			wantBody:    `{"message":"Email already registered"}`,
		},
		{
			name:        "store failure is still a 400",
			body:        `{"email":"a@x.io","password":"p"}`,
			registerErr: fmt.Errorf("user creation ended with error: %w", store.ErrCommitingTransaction),
			wantStatus:  http.StatusBadRequest,
			wantBody:    `{"message":"Registration failed"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			auth := &mockAuthService{
				registerUserFn: func(_ context.Context, c models.Credentials) (models.User, error) {
					if tt.registerErr != nil {
						return models.User{}, tt.registerErr
					}
					return models.User{UserID: 1, Email: c.Email}, nil
				},
			}

			rr := serve(t, newHandlerWithAuth(auth), http.MethodPost, "/register", tt.body, nil)

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.JSONEq(t, tt.wantBody, rr.Body.String())
			assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
		})
	}
}

// ─────────────────────────────────────────────
// POST /login
// ─────────────────────────────────────────────

func TestLogin_Success(t *testing.T) {
	auth := &mockAuthService{
		loginFn: func(_ context.Context, c models.Credentials) (models.User, error) {
			assert.Equal(t, models.Credentials{Email: "a@x.io", Password: "p"}, c)
			return models.User{UserID: 5}, nil
		},
		createTokenFn: func(_ context.Context, u models.User) (models.Token, error) {
			assert.Equal(t, int64(5), u.UserID)
			return models.Token{SignedString: "signed.jwt.value"}, nil
		},
	}

	rr := serve(t, newHandlerWithAuth(auth), http.MethodPost, "/login", `{"email":"a@x.io","password":"p"}`, nil)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"access_token":"signed.jwt.value"}`, rr.Body.String())
}

func TestLogin_Failures(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		loginErr   error
		tokenErr   error
		wantStatus int
		wantBody   string
	}{
		{
			name:       "invalid json",
			body:       `nope`,
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"message":"Invalid JSON was passed"}`,
		},
		{
			name:       "wrong credentials",
			body:       `{"email":"a@x.io","password":"bad"}`,
			loginErr:   service.ErrInvalidCredentials,
			wantStatus: http.StatusUnauthorized,
			wantBody:   `{"message":"Invalid credentials"}`,
		},
		{
			name:       "missing password",
			body:       `{"email":"a@x.io"}`,
			loginErr:   fmt.Errorf("%w: %w", service.ErrValidation, validators.ErrCredentialsRequired),
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"message":"Email and password are required"}`,
		},
		{
			name:       "store down",
			body:       `{"email":"a@x.io","password":"p"}`,
			loginErr:   fmt.Errorf("user search by email failed: %w", store.ErrExecutingQuery),
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"message":"Internal Server Error"}`,
		},
		{
			name:       "token creation fails",
			body:       `{"email":"a@x.io","password":"p"}`,
			tokenErr:   service.ErrTokenCreationFailed,
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"message":"Internal Server Error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			auth := &mockAuthService{
				loginFn: func(context.Context, models.Credentials) (models.User, error) {
					return models.User{UserID: 1}, tt.loginErr
				},
				createTokenFn: func(context.Context, models.User) (models.Token, error) {
					return models.Token{}, tt.tokenErr
				},
			}

			rr := serve(t, newHandlerWithAuth(auth), http.MethodPost, "/login", tt.body, nil)

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.JSONEq(t, tt.wantBody, rr.Body.String())
		})
	}
}

func TestLogin_WrongMethod(t *testing.T) {
	rr := serve(t, newHandlerWithAuth(acceptingAuth()), http.MethodGet, "/login", "", nil)

	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
	assert.Equal(t, "POST", rr.Header().Get("Allow"))
	assert.JSONEq(t, `{"message":"Method not allowed"}`, rr.Body.String())
}
