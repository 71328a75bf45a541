package usecase_test

import (
	"context"
	"testing"

	infraRepo "backoffice/internal/infra/repository"
	"backoffice/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCategoryUsecase(t *testing.T) *usecase.CategoryUsecase {
	t.Helper()
	return usecase.NewCategoryUsecase(infraRepo.NewCategoryGormRepository(newTestDB(t)))
}

func TestCategoryCreate_GeneratesSlug(t *testing.T) {
	uc := newCategoryUsecase(t)

	created, err := uc.Create(context.Background(), usecase.CategoryInput{Name: "Summer Wear"})
	require.NoError(t, err)
	assert.Equal(t, "summer-wear", created.Slug)
	assert.True(t, created.IsActive)
}

func TestCategoryUpdate_SelfParentRejected(t *testing.T) {
	uc := newCategoryUsecase(t)
	ctx := context.Background()

	created, err := uc.Create(ctx, usecase.CategoryInput{Name: "Summer Wear"})
	require.NoError(t, err)

	_, err = uc.Update(ctx, created.ID, usecase.CategoryInput{
		Name:     created.Name,
		ParentID: &created.ID,
	})
	ve, ok := usecase.AsValidationError(err)
	require.True(t, ok)
	assert.Contains(t, ve.Fields, "parent_id")
}

func TestCategoryUpdate_ParentKeptWhenOmitted(t *testing.T) {
	uc := newCategoryUsecase(t)
	ctx := context.Background()

	parent, err := uc.Create(ctx, usecase.CategoryInput{Name: "Men"})
	require.NoError(t, err)
	child, err := uc.Create(ctx, usecase.CategoryInput{Name: "Shirts", ParentID: &parent.ID})
	require.NoError(t, err)

	// parent_idを送らない改名で親が外れてはいけない
	updated, err := uc.Update(ctx, child.ID, usecase.CategoryInput{Name: "Dress Shirts"})
	require.NoError(t, err)
	require.NotNil(t, updated.ParentID)
	assert.Equal(t, parent.ID, *updated.ParentID)

	got, err := uc.Get(ctx, child.ID)
	require.NoError(t, err)
	require.NotNil(t, got.ParentID)
	assert.Equal(t, parent.ID, *got.ParentID)
}

func TestCategoryCreate_UnknownParentRejected(t *testing.T) {
	uc := newCategoryUsecase(t)

	_, err := uc.Create(context.Background(), usecase.CategoryInput{
		Name:     "Child",
		ParentID: ptr(int64(999)),
	})
	ve, ok := usecase.AsValidationError(err)
	require.True(t, ok)
	assert.Contains(t, ve.Fields, "parent_id")
}

func TestCategoryGet_IncludesChildren(t *testing.T) {
	uc := newCategoryUsecase(t)
	ctx := context.Background()

	parent, err := uc.Create(ctx, usecase.CategoryInput{Name: "Men"})
	require.NoError(t, err)
	_, err = uc.Create(ctx, usecase.CategoryInput{Name: "Shirts", ParentID: &parent.ID})
	require.NoError(t, err)

	got, err := uc.Get(ctx, parent.ID)
	require.NoError(t, err)
	require.Len(t, got.Children, 1)
	assert.Equal(t, "Shirts", got.Children[0].Name)
}
