// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Request payloads accepted by the public authentication endpoints.
//
// Struct tags:
//   - json     wire name; also used as the field path in validation errors.
//   - validate structural rules checked by go-playground/validator.

// RegisterRequest is the auth-register payload. Sellers must also provide
// their company name and address.
type RegisterRequest struct {
	Email     string `json:"email" validate:"required,email,max=255"`
	Password  string `json:"password" validate:"required,min=8,max=128"`
	FirstName string `json:"firstName" validate:"required,max=100"`
	LastName  string `json:"lastName" validate:"required,max=100"`

	// Role defaults to CUSTOMER. SUPER_ADMIN accounts cannot self-register.
	Role string `json:"role" validate:"required,oneof=SELLER CUSTOMER"`

	Phone         *string `json:"phone,omitempty" validate:"omitnil,max=32"`
	CompanyName   *string `json:"companyName,omitempty" validate:"omitnil,max=255"`
	StreetAddress *string `json:"streetAddress,omitempty" validate:"omitnil,max=255"`
	City          *string `json:"city,omitempty" validate:"omitnil,max=100"`
	State         *string `json:"state,omitempty" validate:"omitnil,max=100"`
	Country       *string `json:"country,omitempty" validate:"omitnil,max=100"`
	ZipCode       *string `json:"zipCode,omitempty" validate:"omitnil,max=20"`
}

// LoginRequest is the auth-login payload.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,max=128"`
}

// ForgotPasswordRequest is the auth-forgot-password payload.
type ForgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email,max=255"`
}

// ResetPasswordRequest is the auth-reset-password payload.
type ResetPasswordRequest struct {
	Token           string `json:"token" validate:"required,max=256"`
	Password        string `json:"password" validate:"required,min=8,max=128"`
	ConfirmPassword string `json:"confirmPassword" validate:"required,max=128"`
}

// AuthResponse is returned by register and login.
type AuthResponse struct {
	Token Token `json:"token"`
	User  User  `json:"user"`
}
