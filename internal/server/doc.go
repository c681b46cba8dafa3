// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server runs the HTTP API and the optional gRPC health server.
//
// Both transports stop gracefully once the context passed to RunServer is
// cancelled, either by an OS signal or by POST /shutdown.
package server
