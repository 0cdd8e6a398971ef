// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"time"

	"github.com/google/uuid"
)

// Claims is the verified content of a bearer credential.
//
// Claims are only ever produced by a successful signature and expiry check,
// so a Claims value always names a parseable subject and a role from the
// closed [Role] set.
type Claims struct {
	// SubjectID is the identifier of the user the credential was issued to
	// (the "sub" claim).
	SubjectID uuid.UUID

	// Role is the role the subject held when the credential was issued.
	// In store-confirmed resolution it is advisory only.
	Role Role

	IssuedAt  time.Time
	ExpiresAt time.Time
}

// Token is a freshly issued bearer credential.
type Token struct {
	// SignedString is the compact JWS representation
	// (base64url-encoded header.payload.signature).
	SignedString string `json:"token"`

	// ExpiresAt is the moment the credential stops being accepted.
	ExpiresAt time.Time `json:"expiresAt"`

	Claims Claims `json:"-"`
}

// String returns the compact JWS serialization of the token.
func (t Token) String() string {
	return t.SignedString
}
