package service

import (
	"context"

	"github.com/MKhiriev/go-marketplace/models"
	"github.com/google/uuid"
)

// TokenService issues bearer credentials and verifies the ones presented
// in the Authorization header.
type TokenService interface {
	Issue(ctx context.Context, user models.User) (models.Token, error)

	// Verify extracts the bearer credential from the raw header value and
	// checks its signature, issuer and expiry. Every failure wraps
	// ErrUnauthenticated.
	Verify(ctx context.Context, authorizationHeader string) (models.Claims, error)
}

// IdentityResolver turns verified claims into the principal of a request.
type IdentityResolver interface {
	Resolve(ctx context.Context, claims models.Claims) (models.Principal, error)
}

type AuthService interface {
	Register(ctx context.Context, req models.RegisterRequest) (models.AuthResponse, error)
	Login(ctx context.Context, req models.LoginRequest) (models.AuthResponse, error)

	// ForgotPassword never reveals whether the email is registered.
	ForgotPassword(ctx context.Context, req models.ForgotPasswordRequest) error
	ResetPassword(ctx context.Context, req models.ResetPasswordRequest) error
}

type UserService interface {
	GetUser(ctx context.Context, id uuid.UUID) (models.User, error)
	UpdateProfile(ctx context.Context, id uuid.UUID, req models.UpdateProfileRequest) (models.User, error)
	ChangePassword(ctx context.Context, id uuid.UUID, req models.ChangePasswordRequest) error

	CreateUser(ctx context.Context, req models.CreateUserRequest) (models.User, error)
	UpdateUser(ctx context.Context, id uuid.UUID, req models.UpdateUserRequest) (models.User, error)
}

type CategoryService interface {
	CreateCategory(ctx context.Context, createdBy uuid.UUID, req models.CreateCategoryRequest) (models.Category, error)
	UpdateCategory(ctx context.Context, id uuid.UUID, req models.UpdateCategoryRequest) (models.Category, error)
}

type AttributeService interface {
	CreateAttribute(ctx context.Context, req models.CreateAttributeRequest) (models.Attribute, error)
	UpdateAttribute(ctx context.Context, id uuid.UUID, req models.UpdateAttributeRequest) (models.Attribute, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// ResetNotifier delivers password reset links to account holders.
type ResetNotifier interface {
	NotifyPasswordReset(ctx context.Context, user models.User, link string) error
}

// IDGenerator produces identifiers for new records.
type IDGenerator interface {
	Generate() uuid.UUID
}
