package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-marketplace/internal/logger"
	"github.com/MKhiriev/go-marketplace/models"
	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
)

var userColumns = []string{
	"id", "email", "password_hash", "role", "status", "first_name", "last_name",
	"phone", "company_name", "street_address", "city", "state", "country", "zip_code",
	"reset_token_hash", "reset_token_expires_at", "created_at", "updated_at",
}

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser inserts a new account and returns the stored row.
//
// A unique violation on the email index is reported as [ErrUserAlreadyExists].
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	query, args, err := psql.Insert("users").
		Columns("id", "email", "password_hash", "role", "status", "first_name", "last_name",
			"phone", "company_name", "street_address", "city", "state", "country", "zip_code").
		Values(user.ID, user.Email, user.PasswordHash, user.Role, user.Status, user.FirstName, user.LastName,
			user.Phone, user.CompanyName, user.StreetAddress, user.City, user.State, user.Country, user.ZipCode).
		Suffix(returning(userColumns)).
		ToSql()
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	created, err := scanUser(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		return models.User{}, r.userError(ctx, "*userRepository.CreateUser", err)
	}

	return created, nil
}

func (r *userRepository) FindUserByID(ctx context.Context, id uuid.UUID) (models.User, error) {
	return r.findOne(ctx, "*userRepository.FindUserByID", sq.Eq{"id": id})
}

// FindUserByEmail looks the account up by its lowercased email.
func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	return r.findOne(ctx, "*userRepository.FindUserByEmail", sq.Eq{"email": email})
}

// FindUserByResetToken returns the account holding the given reset token
// digest. Expiry is checked by the caller.
func (r *userRepository) FindUserByResetToken(ctx context.Context, digest string) (models.User, error) {
	return r.findOne(ctx, "*userRepository.FindUserByResetToken", sq.Eq{"reset_token_hash": digest})
}

// UpdateUser writes the non-nil fields of update and returns the row after
// the change. The reset token is always cleared when the password changes.
func (r *userRepository) UpdateUser(ctx context.Context, update models.UserUpdate) (models.User, error) {
	builder := psql.Update("users")

	builder = setIf(builder, "email", update.Email)
	if update.PasswordHash != nil {
		builder = builder.
			Set("password_hash", *update.PasswordHash).
			Set("reset_token_hash", nil).
			Set("reset_token_expires_at", nil)
	}
	builder = setIf(builder, "role", update.Role)
	builder = setIf(builder, "status", update.Status)
	builder = setIf(builder, "first_name", update.FirstName)
	builder = setIf(builder, "last_name", update.LastName)
	builder = setIf(builder, "phone", update.Phone)
	builder = setIf(builder, "company_name", update.CompanyName)
	builder = setIf(builder, "street_address", update.StreetAddress)
	builder = setIf(builder, "city", update.City)
	builder = setIf(builder, "state", update.State)
	builder = setIf(builder, "country", update.Country)
	builder = setIf(builder, "zip_code", update.ZipCode)

	query, args, err := builder.
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": update.ID}).
		Suffix(returning(userColumns)).
		ToSql()
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	updated, err := scanUser(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		return models.User{}, r.userError(ctx, "*userRepository.UpdateUser", err)
	}

	return updated, nil
}

// SetResetToken stores or clears the reset token digest of the account.
func (r *userRepository) SetResetToken(ctx context.Context, id uuid.UUID, digest *string, expiresAt *time.Time) error {
	query, args, err := psql.Update("users").
		Set("reset_token_hash", digest).
		Set("reset_token_expires_at", expiresAt).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return r.userError(ctx, "*userRepository.SetResetToken", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return ErrUserNotFound
	}

	return nil
}

func (r *userRepository) ClearExpiredResetTokens(ctx context.Context, before time.Time) (int64, error) {
	query, args, err := psql.Update("users").
		Set("reset_token_hash", nil).
		Set("reset_token_expires_at", nil).
		Where(sq.Lt{"reset_token_expires_at": before}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, r.userError(ctx, "*userRepository.ClearExpiredResetTokens", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return affected, nil
}

func (r *userRepository) findOne(ctx context.Context, funcName string, where sq.Eq) (models.User, error) {
	query, args, err := psql.Select(userColumns...).From("users").Where(where).Limit(1).ToSql()
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	user, err := scanUser(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		return models.User{}, r.userError(ctx, funcName, err)
	}

	return user, nil
}

// userError maps driver errors to the package sentinels and logs anything
// unexpected.
func (r *userRepository) userError(ctx context.Context, funcName string, err error) error {
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return ErrUserNotFound
	case postgresError(err) == pgerrcode.UniqueViolation:
		return ErrUserAlreadyExists
	}

	logger.FromContext(ctx).Err(err).
		Str("func", funcName).
		Bool("retryable", r.db.retryable(err)).
		Msg("unexpected DB error")
	return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
}

func scanUser(row sq.RowScanner) (models.User, error) {
	var user models.User
	err := row.Scan(
		&user.ID,
		&user.Email,
		&user.PasswordHash,
		&user.Role,
		&user.Status,
		&user.FirstName,
		&user.LastName,
		&user.Phone,
		&user.CompanyName,
		&user.StreetAddress,
		&user.City,
		&user.State,
		&user.Country,
		&user.ZipCode,
		&user.ResetTokenHash,
		&user.ResetTokenExpiresAt,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	return user, err
}
