package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-marketplace/internal/logger"
	"github.com/MKhiriev/go-marketplace/internal/store"
	"github.com/MKhiriev/go-marketplace/models"
	"github.com/google/uuid"
)

type attributeService struct {
	attributeRepository store.AttributeRepository
	ids                 IDGenerator

	logger *logger.Logger
}

func NewAttributeService(attributeRepository store.AttributeRepository, ids IDGenerator, logger *logger.Logger) AttributeService {
	return &attributeService{
		attributeRepository: attributeRepository,
		ids:                 ids,
		logger:              logger,
	}
}

// CreateAttribute stores a new attribute. Options are kept only for SELECT
// and MULTISELECT attributes.
func (s *attributeService) CreateAttribute(ctx context.Context, req models.CreateAttributeRequest) (models.Attribute, error) {
	categoryID, err := uuid.Parse(req.CategoryID)
	if err != nil {
		return models.Attribute{}, fmt.Errorf("%w: %w", ErrCategoryNotFound, err)
	}

	attribute := models.Attribute{
		ID:         s.ids.Generate(),
		Name:       req.Name,
		Type:       req.Type,
		CategoryID: categoryID,
	}
	if req.IsRequired != nil {
		attribute.IsRequired = *req.IsRequired
	}
	if req.IsFilterable != nil {
		attribute.IsFilterable = *req.IsFilterable
	}
	if models.AttributeTypeHasOptions(req.Type) {
		attribute.Options = req.Options
	}

	created, err := s.attributeRepository.CreateAttribute(ctx, attribute)
	if err != nil {
		return models.Attribute{}, attributeStoreError(err)
	}

	return created, nil
}

// UpdateAttribute applies a partial update. Switching to a type without
// options drops the stored options.
func (s *attributeService) UpdateAttribute(ctx context.Context, id uuid.UUID, req models.UpdateAttributeRequest) (models.Attribute, error) {
	update := models.AttributeUpdate{
		ID:           id,
		Name:         req.Name,
		Type:         req.Type,
		IsRequired:   req.IsRequired,
		IsFilterable: req.IsFilterable,
	}

	if req.CategoryID != nil {
		categoryID, err := uuid.Parse(*req.CategoryID)
		if err != nil {
			return models.Attribute{}, fmt.Errorf("%w: %w", ErrCategoryNotFound, err)
		}
		update.CategoryID = &categoryID
	}

	switch {
	case req.Type != nil && !models.AttributeTypeHasOptions(*req.Type):
		cleared := []string{}
		update.Options = &cleared
	case req.Options != nil:
		options := req.Options
		update.Options = &options
	}

	if update.IsEmpty() {
		return models.Attribute{}, ErrNothingToUpdate
	}

	updated, err := s.attributeRepository.UpdateAttribute(ctx, update)
	if err != nil {
		return models.Attribute{}, attributeStoreError(err)
	}

	return updated, nil
}

func attributeStoreError(err error) error {
	switch {
	case errors.Is(err, store.ErrAttributeNotFound):
		return ErrAttributeNotFound
	case errors.Is(err, store.ErrCategoryReferenceNotFound):
		return ErrCategoryNotFound
	default:
		return fmt.Errorf("attribute storage error: %w", err)
	}
}
