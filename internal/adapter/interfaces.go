// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides a Go client for the marketplace HTTP API.
//
// [NewHTTPClient] returns a [MarketplaceAPI] backed by resty. The client keeps
// the bearer token issued by Register and Login and attaches it to every
// protected request.
//
// Non-2xx responses are decoded into an [*APIError] that unwraps to one of the
// sentinel values in errors.go, so callers can use [errors.Is] (e.g.
// [ErrConflict] for 409, [ErrUnauthorized] for 401) and [errors.As] to read
// the server message and field-level validation details.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-marketplace/models"
	"github.com/google/uuid"
)

// MarketplaceAPI is the set of operations exposed by the marketplace server.
type MarketplaceAPI interface {
	// SetToken stores the bearer token attached to subsequent protected
	// requests. Register and Login call it on success.
	SetToken(token string)

	// Token returns the stored bearer token, or an empty string.
	Token() string

	Register(ctx context.Context, req models.RegisterRequest) (models.AuthResponse, error)
	Login(ctx context.Context, req models.LoginRequest) (models.AuthResponse, error)
	ForgotPassword(ctx context.Context, req models.ForgotPasswordRequest) error
	ResetPassword(ctx context.Context, req models.ResetPasswordRequest) error

	Me(ctx context.Context) (models.User, error)
	UpdateMe(ctx context.Context, req models.UpdateProfileRequest) (models.User, error)
	ChangePassword(ctx context.Context, req models.ChangePasswordRequest) error

	CreateUser(ctx context.Context, req models.CreateUserRequest) (models.User, error)
	UpdateUser(ctx context.Context, id uuid.UUID, req models.UpdateUserRequest) (models.User, error)

	CreateCategory(ctx context.Context, req models.CreateCategoryRequest) (models.Category, error)
	UpdateCategory(ctx context.Context, id uuid.UUID, req models.UpdateCategoryRequest) (models.Category, error)
	CreateAttribute(ctx context.Context, req models.CreateAttributeRequest) (models.Attribute, error)
	UpdateAttribute(ctx context.Context, id uuid.UUID, req models.UpdateAttributeRequest) (models.Attribute, error)

	// Version returns the plain-text version reported by the server.
	Version(ctx context.Context) (string, error)
}
