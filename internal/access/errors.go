// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package access

import "errors"

var (
	// ErrUnauthenticated means no valid identity is attached to the request:
	// the credential is missing, malformed, expired or forged, or its subject
	// no longer exists.
	ErrUnauthenticated = errors.New("unauthenticated")

	// ErrForbidden means the request carries a valid identity whose role is
	// not allowed to perform the operation.
	ErrForbidden = errors.New("access denied")
)
