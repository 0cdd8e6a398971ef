// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

var (
	// ErrInvalidPathID is returned when a route parameter that must hold a
	// UUID cannot be parsed.
	ErrInvalidPathID = errors.New("invalid identifier in path")

	// ErrNoPayload is returned when a handler runs without a validated
	// payload in its context, i.e. the route was registered without the
	// validate middleware.
	ErrNoPayload = errors.New("no validated payload in request context")

	// ErrNoPrincipal is returned when a handler that needs the caller's
	// identity runs without one in its context.
	ErrNoPrincipal = errors.New("no principal in request context")
)
