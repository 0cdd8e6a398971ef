// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "github.com/google/uuid"

// Principal is the authenticated identity attached to a request.
//
// A Principal is obtained in one of two ways:
//   - claims-derived: built from [Claims] alone, Confirmed is false and only
//     ID and Role are populated;
//   - store-confirmed: built from the current [User] record, Confirmed is
//     true and Role/Status reflect the store, not the credential.
type Principal struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email,omitempty"`
	Role      Role      `json:"role"`
	Status    Status    `json:"status,omitzero"`
	FirstName string    `json:"firstName,omitempty"`
	LastName  string    `json:"lastName,omitempty"`

	// Confirmed reports whether the principal was re-read from the store.
	Confirmed bool `json:"-"`
}

// PrincipalFromClaims builds a claims-derived principal.
func PrincipalFromClaims(c Claims) Principal {
	return Principal{
		ID:   c.SubjectID,
		Role: c.Role,
	}
}

// PrincipalFromUser builds a store-confirmed principal from the canonical
// user record.
func PrincipalFromUser(u User) Principal {
	return Principal{
		ID:        u.ID,
		Email:     u.Email,
		Role:      u.Role,
		Status:    u.Status,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Confirmed: true,
	}
}
