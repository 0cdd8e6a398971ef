package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"
	"time"

	"github.com/MKhiriev/go-marketplace/models"
	"github.com/google/uuid"
)

// UserRepository persists user accounts in the "users" table.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByID(ctx context.Context, id uuid.UUID) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	UpdateUser(ctx context.Context, update models.UserUpdate) (models.User, error)

	// SetResetToken stores the digest of a password reset token together with
	// its expiry. A nil digest clears any outstanding token.
	SetResetToken(ctx context.Context, id uuid.UUID, digest *string, expiresAt *time.Time) error
	FindUserByResetToken(ctx context.Context, digest string) (models.User, error)

	// ClearExpiredResetTokens clears every reset token that expired before
	// the given moment and returns the number of accounts touched.
	ClearExpiredResetTokens(ctx context.Context, before time.Time) (int64, error)
}

// CategoryRepository persists product categories.
type CategoryRepository interface {
	CreateCategory(ctx context.Context, category models.Category) (models.Category, error)
	UpdateCategory(ctx context.Context, update models.CategoryUpdate) (models.Category, error)
	FindCategoryByID(ctx context.Context, id uuid.UUID) (models.Category, error)
}

// AttributeRepository persists category attribute definitions.
type AttributeRepository interface {
	CreateAttribute(ctx context.Context, attribute models.Attribute) (models.Attribute, error)
	UpdateAttribute(ctx context.Context, update models.AttributeUpdate) (models.Attribute, error)
	FindAttributeByID(ctx context.Context, id uuid.UUID) (models.Attribute, error)
}

// ErrorClassificator decides whether a failed database operation may be
// retried.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
