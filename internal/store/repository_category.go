package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-marketplace/internal/logger"
	"github.com/MKhiriev/go-marketplace/models"
	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
)

const categoryCreatedByFK = "categories_created_by_fkey"

var categoryColumns = []string{
	"id", "name", "slug", "description", "parent_id", "is_active", "sort_order",
	"created_by", "created_at", "updated_at",
}

type categoryRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewCategoryRepository(db *DB, logger *logger.Logger) CategoryRepository {
	logger.Debug().Msg("creating category repository")
	return &categoryRepository{
		db:     db,
		logger: logger,
	}
}

// CreateCategory inserts a category. A taken slug yields
// [ErrCategorySlugExists]; an unknown parent yields
// [ErrCategoryReferenceNotFound].
func (r *categoryRepository) CreateCategory(ctx context.Context, category models.Category) (models.Category, error) {
	query, args, err := psql.Insert("categories").
		Columns("id", "name", "slug", "description", "parent_id", "is_active", "sort_order", "created_by").
		Values(category.ID, category.Name, category.Slug, category.Description, category.ParentID,
			category.IsActive, category.SortOrder, category.CreatedBy).
		Suffix(returning(categoryColumns)).
		ToSql()
	if err != nil {
		return models.Category{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	created, err := scanCategory(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		return models.Category{}, r.categoryError(ctx, "*categoryRepository.CreateCategory", err)
	}

	return created, nil
}

func (r *categoryRepository) UpdateCategory(ctx context.Context, update models.CategoryUpdate) (models.Category, error) {
	builder := psql.Update("categories")
	builder = setIf(builder, "name", update.Name)
	builder = setIf(builder, "slug", update.Slug)
	builder = setIf(builder, "description", update.Description)
	builder = setIf(builder, "parent_id", update.ParentID)
	builder = setIf(builder, "is_active", update.IsActive)
	builder = setIf(builder, "sort_order", update.SortOrder)

	query, args, err := builder.
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": update.ID}).
		Suffix(returning(categoryColumns)).
		ToSql()
	if err != nil {
		return models.Category{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	updated, err := scanCategory(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		return models.Category{}, r.categoryError(ctx, "*categoryRepository.UpdateCategory", err)
	}

	return updated, nil
}

func (r *categoryRepository) FindCategoryByID(ctx context.Context, id uuid.UUID) (models.Category, error) {
	query, args, err := psql.Select(categoryColumns...).From("categories").Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return models.Category{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	category, err := scanCategory(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		return models.Category{}, r.categoryError(ctx, "*categoryRepository.FindCategoryByID", err)
	}

	return category, nil
}

func (r *categoryRepository) categoryError(ctx context.Context, funcName string, err error) error {
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return ErrCategoryNotFound
	case postgresError(err) == pgerrcode.UniqueViolation:
		return ErrCategorySlugExists
	case postgresError(err) == pgerrcode.ForeignKeyViolation:
		if constraintName(err) == categoryCreatedByFK {
			return ErrUserNotFound
		}
		return ErrCategoryReferenceNotFound
	}

	logger.FromContext(ctx).Err(err).
		Str("func", funcName).
		Bool("retryable", r.db.retryable(err)).
		Msg("unexpected DB error")
	return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
}

func scanCategory(row sq.RowScanner) (models.Category, error) {
	var category models.Category
	err := row.Scan(
		&category.ID,
		&category.Name,
		&category.Slug,
		&category.Description,
		&category.ParentID,
		&category.IsActive,
		&category.SortOrder,
		&category.CreatedBy,
		&category.CreatedAt,
		&category.UpdatedAt,
	)
	return category, err
}
