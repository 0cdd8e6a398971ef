package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-marketplace/internal/logger"
	"github.com/MKhiriev/go-marketplace/models"
	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
)

var attributeColumns = []string{
	"id", "name", "type", "category_id", "is_required", "is_filterable", "options",
	"created_at", "updated_at",
}

// attributeRepository stores attribute definitions in the "attributes"
// table. Options are kept in a JSONB array.
type attributeRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewAttributeRepository(db *DB, logger *logger.Logger) AttributeRepository {
	logger.Debug().Msg("creating attribute repository")
	return &attributeRepository{
		db:     db,
		logger: logger,
	}
}

func (r *attributeRepository) CreateAttribute(ctx context.Context, attribute models.Attribute) (models.Attribute, error) {
	options, err := encodeOptions(attribute.Options)
	if err != nil {
		return models.Attribute{}, err
	}

	query, args, err := psql.Insert("attributes").
		Columns("id", "name", "type", "category_id", "is_required", "is_filterable", "options").
		Values(attribute.ID, attribute.Name, attribute.Type, attribute.CategoryID,
			attribute.IsRequired, attribute.IsFilterable, options).
		Suffix(returning(attributeColumns)).
		ToSql()
	if err != nil {
		return models.Attribute{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	created, err := scanAttribute(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		return models.Attribute{}, r.attributeError(ctx, "*attributeRepository.CreateAttribute", err)
	}

	return created, nil
}

func (r *attributeRepository) UpdateAttribute(ctx context.Context, update models.AttributeUpdate) (models.Attribute, error) {
	builder := psql.Update("attributes")
	builder = setIf(builder, "name", update.Name)
	builder = setIf(builder, "type", update.Type)
	builder = setIf(builder, "category_id", update.CategoryID)
	builder = setIf(builder, "is_required", update.IsRequired)
	builder = setIf(builder, "is_filterable", update.IsFilterable)
	if update.Options != nil {
		options, err := encodeOptions(*update.Options)
		if err != nil {
			return models.Attribute{}, err
		}
		builder = builder.Set("options", options)
	}

	query, args, err := builder.
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": update.ID}).
		Suffix(returning(attributeColumns)).
		ToSql()
	if err != nil {
		return models.Attribute{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	updated, err := scanAttribute(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		return models.Attribute{}, r.attributeError(ctx, "*attributeRepository.UpdateAttribute", err)
	}

	return updated, nil
}

func (r *attributeRepository) FindAttributeByID(ctx context.Context, id uuid.UUID) (models.Attribute, error) {
	query, args, err := psql.Select(attributeColumns...).From("attributes").Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return models.Attribute{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	attribute, err := scanAttribute(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		return models.Attribute{}, r.attributeError(ctx, "*attributeRepository.FindAttributeByID", err)
	}

	return attribute, nil
}

func (r *attributeRepository) attributeError(ctx context.Context, funcName string, err error) error {
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return ErrAttributeNotFound
	case postgresError(err) == pgerrcode.ForeignKeyViolation:
		return ErrCategoryReferenceNotFound
	case errors.Is(err, ErrScanningRow):
		return err
	}

	logger.FromContext(ctx).Err(err).
		Str("func", funcName).
		Bool("retryable", r.db.retryable(err)).
		Msg("unexpected DB error")
	return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
}

func encodeOptions(options []string) ([]byte, error) {
	if options == nil {
		options = []string{}
	}
	encoded, err := json.Marshal(options)
	if err != nil {
		return nil, fmt.Errorf("%w: encoding options: %w", ErrBuildingSQLQuery, err)
	}
	return encoded, nil
}

func scanAttribute(row sq.RowScanner) (models.Attribute, error) {
	var (
		attribute models.Attribute
		options   []byte
	)
	err := row.Scan(
		&attribute.ID,
		&attribute.Name,
		&attribute.Type,
		&attribute.CategoryID,
		&attribute.IsRequired,
		&attribute.IsFilterable,
		&options,
		&attribute.CreatedAt,
		&attribute.UpdatedAt,
	)
	if err != nil {
		return models.Attribute{}, err
	}

	if len(options) > 0 {
		if err := json.Unmarshal(options, &attribute.Options); err != nil {
			return models.Attribute{}, fmt.Errorf("%w: decoding options: %w", ErrScanningRow, err)
		}
	}
	if len(attribute.Options) == 0 {
		attribute.Options = nil
	}

	return attribute, nil
}
