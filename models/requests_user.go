// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// CreateUserRequest is the user-create payload used by administrators.
type CreateUserRequest struct {
	Email     string `json:"email" validate:"required,email,max=255"`
	Password  string `json:"password" validate:"required,min=8,max=128"`
	FirstName string `json:"firstName" validate:"required,max=100"`
	LastName  string `json:"lastName" validate:"required,max=100"`
	Role      string `json:"role" validate:"required,oneof=SUPER_ADMIN SELLER CUSTOMER"`
	Status    string `json:"status" validate:"required,oneof=ACTIVE SUSPENDED DEACTIVATED"`

	Phone         *string `json:"phone,omitempty" validate:"omitnil,max=32"`
	CompanyName   *string `json:"companyName,omitempty" validate:"omitnil,max=255"`
	StreetAddress *string `json:"streetAddress,omitempty" validate:"omitnil,max=255"`
	City          *string `json:"city,omitempty" validate:"omitnil,max=100"`
	State         *string `json:"state,omitempty" validate:"omitnil,max=100"`
	Country       *string `json:"country,omitempty" validate:"omitnil,max=100"`
	ZipCode       *string `json:"zipCode,omitempty" validate:"omitnil,max=20"`
}

// UpdateUserRequest is the user-update payload. It accepts the same fields
// and formats as [CreateUserRequest], all of them optional; profile fields
// may be sent as null to clear them.
type UpdateUserRequest struct {
	Email     *string `json:"email,omitempty" validate:"omitnil,email,max=255"`
	Password  *string `json:"password,omitempty" validate:"omitnil,min=8,max=128"`
	FirstName *string `json:"firstName,omitempty" validate:"omitnil,min=1,max=100"`
	LastName  *string `json:"lastName,omitempty" validate:"omitnil,min=1,max=100"`
	Role      *string `json:"role,omitempty" validate:"omitnil,oneof=SUPER_ADMIN SELLER CUSTOMER"`
	Status    *string `json:"status,omitempty" validate:"omitnil,oneof=ACTIVE SUSPENDED DEACTIVATED"`

	Phone         Nullable[string] `json:"phone,omitzero" validate:"omitempty,max=32"`
	CompanyName   Nullable[string] `json:"companyName,omitzero" validate:"omitempty,max=255"`
	StreetAddress Nullable[string] `json:"streetAddress,omitzero" validate:"omitempty,max=255"`
	City          Nullable[string] `json:"city,omitzero" validate:"omitempty,max=100"`
	State         Nullable[string] `json:"state,omitzero" validate:"omitempty,max=100"`
	Country       Nullable[string] `json:"country,omitzero" validate:"omitempty,max=100"`
	ZipCode       Nullable[string] `json:"zipCode,omitzero" validate:"omitempty,max=20"`
}

// UpdateProfileRequest is the user-profile-update payload. Role, status and
// email are not part of the profile and are dropped if sent.
type UpdateProfileRequest struct {
	FirstName *string `json:"firstName,omitempty" validate:"omitnil,min=1,max=100"`
	LastName  *string `json:"lastName,omitempty" validate:"omitnil,min=1,max=100"`

	Phone         Nullable[string] `json:"phone,omitzero" validate:"omitempty,max=32"`
	CompanyName   Nullable[string] `json:"companyName,omitzero" validate:"omitempty,max=255"`
	StreetAddress Nullable[string] `json:"streetAddress,omitzero" validate:"omitempty,max=255"`
	City          Nullable[string] `json:"city,omitzero" validate:"omitempty,max=100"`
	State         Nullable[string] `json:"state,omitzero" validate:"omitempty,max=100"`
	Country       Nullable[string] `json:"country,omitzero" validate:"omitempty,max=100"`
	ZipCode       Nullable[string] `json:"zipCode,omitzero" validate:"omitempty,max=20"`
}

// ChangePasswordRequest is the user-change-password payload.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" validate:"required,max=128"`
	NewPassword     string `json:"newPassword" validate:"required,min=8,max=128"`
}
