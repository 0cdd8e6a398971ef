package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-marketplace/internal/logger"
	"github.com/MKhiriev/go-marketplace/internal/mock"
	"github.com/MKhiriev/go-marketplace/internal/store"
	"github.com/MKhiriev/go-marketplace/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestCategoryService(t *testing.T) (CategoryService, *mock.MockCategoryRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	categories := mock.NewMockCategoryRepository(ctrl)
	return NewCategoryService(categories, fixedIDs{id: testNewID}, logger.Nop()), categories
}

func echoCategory(_ context.Context, c models.Category) (models.Category, error) {
	return c, nil
}

func TestCategoryService_CreateCategory_DerivesSlug(t *testing.T) {
	svc, categories := newTestCategoryService(t)
	categories.EXPECT().CreateCategory(gomock.Any(), gomock.Any()).DoAndReturn(echoCategory)

	created, err := svc.CreateCategory(context.Background(), testUserID, models.CreateCategoryRequest{Name: "Home & Garden"})
	require.NoError(t, err)
	assert.Equal(t, testNewID, created.ID)
	assert.Equal(t, "home-garden", created.Slug)
	assert.Equal(t, testUserID, created.CreatedBy)
	assert.True(t, created.IsActive)
	assert.Nil(t, created.ParentID)
	assert.Nil(t, created.Description)
}

func TestCategoryService_CreateCategory_ExplicitFields(t *testing.T) {
	svc, categories := newTestCategoryService(t)
	categories.EXPECT().CreateCategory(gomock.Any(), gomock.Any()).DoAndReturn(echoCategory)

	inactive, order := false, 7
	created, err := svc.CreateCategory(context.Background(), testUserID, models.CreateCategoryRequest{
		Name:        "Laptops",
		Slug:        strPtr("notebooks"),
		Description: models.Of("Portable computers"),
		ParentID:    models.Of(testCategoryID.String()),
		IsActive:    &inactive,
		SortOrder:   &order,
	})
	require.NoError(t, err)
	assert.Equal(t, "notebooks", created.Slug)
	require.NotNil(t, created.ParentID)
	assert.Equal(t, testCategoryID, *created.ParentID)
	assert.Equal(t, "Portable computers", *created.Description)
	assert.False(t, created.IsActive)
	assert.Equal(t, 7, created.SortOrder)
}

func TestCategoryService_CreateCategory_SymbolOnlyNameFallsBackToID(t *testing.T) {
	svc, categories := newTestCategoryService(t)
	categories.EXPECT().CreateCategory(gomock.Any(), gomock.Any()).DoAndReturn(echoCategory)

	created, err := svc.CreateCategory(context.Background(), testUserID, models.CreateCategoryRequest{Name: "***"})
	require.NoError(t, err)
	assert.Equal(t, testNewID.String(), created.Slug)
}

func TestCategoryService_CreateCategory_StoreErrors(t *testing.T) {
	tests := []struct {
		name    string
		repoErr error
		wantErr error
	}{
		{name: "slug taken", repoErr: store.ErrCategorySlugExists, wantErr: ErrSlugTaken},
		{name: "unknown parent", repoErr: store.ErrCategoryReferenceNotFound, wantErr: ErrParentCategoryNotFound},
		{name: "store failure", repoErr: store.ErrExecutingQuery, wantErr: store.ErrExecutingQuery},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, categories := newTestCategoryService(t)
			categories.EXPECT().CreateCategory(gomock.Any(), gomock.Any()).Return(models.Category{}, tt.repoErr)

			_, err := svc.CreateCategory(context.Background(), testUserID, models.CreateCategoryRequest{Name: "Laptops"})
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestCategoryService_UpdateCategory(t *testing.T) {
	svc, categories := newTestCategoryService(t)

	categories.EXPECT().UpdateCategory(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, u models.CategoryUpdate) (models.Category, error) {
			assert.Equal(t, testCategoryID, u.ID)
			require.NotNil(t, u.ParentID)
			assert.Nil(t, *u.ParentID, "null parent moves the category to the root")
			require.NotNil(t, u.Description)
			assert.Equal(t, "New", **u.Description)
			assert.Nil(t, u.Name)
			return models.Category{ID: testCategoryID}, nil
		},
	)

	_, err := svc.UpdateCategory(context.Background(), testCategoryID, models.UpdateCategoryRequest{
		ParentID:    models.Null[string](),
		Description: models.Of("New"),
	})
	require.NoError(t, err)
}

func TestCategoryService_UpdateCategory_Rejections(t *testing.T) {
	tests := []struct {
		name    string
		req     models.UpdateCategoryRequest
		wantErr error
	}{
		{name: "own parent", req: models.UpdateCategoryRequest{ParentID: models.Of(testCategoryID.String())}, wantErr: ErrCategoryIsOwnParent},
		{name: "nothing to update", req: models.UpdateCategoryRequest{}, wantErr: ErrNothingToUpdate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newTestCategoryService(t)

			_, err := svc.UpdateCategory(context.Background(), testCategoryID, tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestCategoryService_UpdateCategory_NotFound(t *testing.T) {
	svc, categories := newTestCategoryService(t)
	categories.EXPECT().UpdateCategory(gomock.Any(), gomock.Any()).Return(models.Category{}, store.ErrCategoryNotFound)

	_, err := svc.UpdateCategory(context.Background(), uuid.New(), models.UpdateCategoryRequest{Name: strPtr("X")})
	assert.ErrorIs(t, err, ErrCategoryNotFound)
}
