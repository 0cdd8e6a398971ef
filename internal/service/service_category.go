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

type categoryService struct {
	categoryRepository store.CategoryRepository
	ids                IDGenerator

	logger *logger.Logger
}

func NewCategoryService(categoryRepository store.CategoryRepository, ids IDGenerator, logger *logger.Logger) CategoryService {
	return &categoryService{
		categoryRepository: categoryRepository,
		ids:                ids,
		logger:             logger,
	}
}

// CreateCategory stores a new category owned by createdBy. When no slug is
// sent one is derived from the name.
func (s *categoryService) CreateCategory(ctx context.Context, createdBy uuid.UUID, req models.CreateCategoryRequest) (models.Category, error) {
	category := models.Category{
		ID:          s.ids.Generate(),
		Name:        req.Name,
		Description: req.Description.Ptr(),
		IsActive:    true,
		CreatedBy:   createdBy,
	}

	if req.Slug != nil {
		category.Slug = *req.Slug
	} else {
		category.Slug = slugify(req.Name)
	}
	if category.Slug == "" {
		category.Slug = category.ID.String()
	}

	if req.ParentID.IsSet() {
		parentID, err := uuid.Parse(req.ParentID.Value)
		if err != nil {
			return models.Category{}, fmt.Errorf("%w: %w", ErrParentCategoryNotFound, err)
		}
		category.ParentID = &parentID
	}
	if req.IsActive != nil {
		category.IsActive = *req.IsActive
	}
	if req.SortOrder != nil {
		category.SortOrder = *req.SortOrder
	}

	created, err := s.categoryRepository.CreateCategory(ctx, category)
	if err != nil {
		return models.Category{}, categoryStoreError(err)
	}

	logger.FromContext(ctx).Info().
		Str("category_id", created.ID.String()).
		Str("slug", created.Slug).
		Msg("category created")

	return created, nil
}

func (s *categoryService) UpdateCategory(ctx context.Context, id uuid.UUID, req models.UpdateCategoryRequest) (models.Category, error) {
	update := models.CategoryUpdate{
		ID:          id,
		Name:        req.Name,
		Slug:        req.Slug,
		Description: req.Description.Update(),
		IsActive:    req.IsActive,
		SortOrder:   req.SortOrder,
	}

	if req.ParentID.Present {
		var parentID *uuid.UUID
		if req.ParentID.IsSet() {
			parsed, err := uuid.Parse(req.ParentID.Value)
			if err != nil {
				return models.Category{}, fmt.Errorf("%w: %w", ErrParentCategoryNotFound, err)
			}
			if parsed == id {
				return models.Category{}, ErrCategoryIsOwnParent
			}
			parentID = &parsed
		}
		update.ParentID = &parentID
	}

	if update.IsEmpty() {
		return models.Category{}, ErrNothingToUpdate
	}

	updated, err := s.categoryRepository.UpdateCategory(ctx, update)
	if err != nil {
		return models.Category{}, categoryStoreError(err)
	}

	return updated, nil
}

func categoryStoreError(err error) error {
	switch {
	case errors.Is(err, store.ErrCategoryNotFound):
		return ErrCategoryNotFound
	case errors.Is(err, store.ErrCategorySlugExists):
		return ErrSlugTaken
	case errors.Is(err, store.ErrCategoryReferenceNotFound):
		return ErrParentCategoryNotFound
	case errors.Is(err, store.ErrUserNotFound):
		return ErrUserNotFound
	default:
		return fmt.Errorf("category storage error: %w", err)
	}
}
