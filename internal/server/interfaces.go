// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "context"

// Server is the lifecycle contract of the transport servers in this package.
type Server interface {
	// RunServer serves until ctx is cancelled or a transport fails, then
	// shuts every transport down. A clean shutdown returns nil.
	RunServer(ctx context.Context) error

	// Shutdown stops serving and waits for in-flight requests until ctx
	// expires.
	Shutdown(ctx context.Context) error
}
