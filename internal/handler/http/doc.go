// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http serves the location-info REST API.
//
// Public routes cover registration, login, the index page, metrics and
// shutdown. Everything else (search, favorites, history and the weather and
// news relays) sits behind bearer-token authentication. Tracing, access
// logging, metrics and gzip run as middleware in front of every route.
package http
