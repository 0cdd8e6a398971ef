// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"time"

	"github.com/google/uuid"
)

// User is the persisted account record and the canonical source of a
// store-confirmed [Principal].
type User struct {
	ID uuid.UUID `json:"id"`

	// Email is unique across all accounts and always stored lowercased.
	Email string `json:"email"`

	// PasswordHash is the bcrypt hash of the account password.
	// It never leaves the server.
	PasswordHash string `json:"-"`

	Role      Role   `json:"role"`
	Status    Status `json:"status"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`

	Phone         *string `json:"phone,omitempty"`
	CompanyName   *string `json:"companyName,omitempty"`
	StreetAddress *string `json:"streetAddress,omitempty"`
	City          *string `json:"city,omitempty"`
	State         *string `json:"state,omitempty"`
	Country       *string `json:"country,omitempty"`
	ZipCode       *string `json:"zipCode,omitempty"`

	// ResetTokenHash is the HMAC digest of the outstanding password reset
	// token, if any.
	ResetTokenHash      *string    `json:"-"`
	ResetTokenExpiresAt *time.Time `json:"-"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// UserUpdate is a partial update of a user record. Only non-nil fields are
// written. For the nullable profile fields a non-nil pointer to nil clears
// the column.
type UserUpdate struct {
	ID uuid.UUID

	Email        *string
	PasswordHash *string
	Role         *Role
	Status       *Status
	FirstName    *string
	LastName     *string

	Phone         **string
	CompanyName   **string
	StreetAddress **string
	City          **string
	State         **string
	Country       **string
	ZipCode       **string
}

// IsEmpty reports whether the update carries no changes.
func (u UserUpdate) IsEmpty() bool {
	return u.Email == nil && u.PasswordHash == nil && u.Role == nil && u.Status == nil &&
		u.FirstName == nil && u.LastName == nil && u.Phone == nil && u.CompanyName == nil &&
		u.StreetAddress == nil && u.City == nil && u.State == nil && u.Country == nil && u.ZipCode == nil
}
