// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app holds the client-facing message strings written into HTTP
// response bodies, so the wording stays the same across handlers and
// middleware.
package app

// Success messages.
const (
	MsgUserRegistered  = "User registered successfully"
	MsgFavoriteAdded   = "Favorite added"
	MsgFavoriteRemoved = "Favorite removed"
	MsgServerShutdown  = "Server shutting down..."
)

// Request errors.
const (
	// MsgInvalidJSON is returned when a request body cannot be decoded.
	MsgInvalidJSON = "Invalid JSON was passed"

	// MsgRegistrationFailed is the fallback for registration failures that
	// carry no more specific message.
	MsgRegistrationFailed = "Registration failed"

	MsgEmailAlreadyExists = "Email already registered"
	MsgInvalidCredentials = "Invalid credentials"

	MsgMissingAuthHeader = "Missing Authorization header"
	MsgInvalidAuthHeader = "Invalid Authorization header"

	// MsgTokenIsExpiredOrInvalid is returned when a bearer token is expired
	// or cannot be verified.
	MsgTokenIsExpiredOrInvalid = "Token is invalid or expired"

	MsgLocationNotFound = "Location not found"
	MsgFavoriteNotFound = "Favorite not found"

	MsgInvalidGzip = "Invalid gzip data"

	MsgNotFound         = "Not found"
	MsgMethodNotAllowed = "Method not allowed"
)

// Server-side failures.
const (
	MsgNewsAPIKeyMissing = "News API key not configured"

	// MsgShutdownDisabled answers POST /shutdown unless it was enabled in
	// the server configuration.
	MsgShutdownDisabled = "Shutdown is not enabled on this server"
)
