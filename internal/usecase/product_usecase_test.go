package usecase_test

import (
	"context"
	"net/http"
	"testing"

	"backoffice/internal/domain/model"
	infraRepo "backoffice/internal/infra/repository"
	"backoffice/internal/usecase"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func ptr[T any](v T) *T {
	return &v
}

func newProductUsecase(t *testing.T) (*usecase.ProductUsecase, *gorm.DB) {
	t.Helper()

	gormDB := newTestDB(t)
	uc := usecase.NewProductUsecase(
		infraRepo.NewProductGormRepository(gormDB),
		infraRepo.NewVariantGormRepository(gormDB),
		infraRepo.NewStockMovementGormRepository(gormDB),
		infraRepo.NewTxManagerGorm(gormDB),
	)
	return uc, gormDB
}

func TestProductCreate_GeneratesSlug(t *testing.T) {
	uc, _ := newProductUsecase(t)
	ctx := context.Background()

	created, err := uc.Create(ctx, usecase.ProductInput{
		Name:  "Red Shirt",
		Price: ptr(decimal.NewFromInt(2500)),
	})
	require.NoError(t, err)

	assert.Equal(t, "red-shirt", created.Slug)
	assert.Equal(t, model.ProductStatusDraft, created.Status)
	assert.Equal(t, model.ProductTypeStitched, created.ProductType)
	assert.True(t, created.IsActive)
}

func TestProductCreate_DuplicateSlug(t *testing.T) {
	uc, _ := newProductUsecase(t)
	ctx := context.Background()

	_, err := uc.Create(ctx, usecase.ProductInput{
		Name:  "Red Shirt",
		Price: ptr(decimal.NewFromInt(2500)),
	})
	require.NoError(t, err)

	_, err = uc.Create(ctx, usecase.ProductInput{
		Name:  "Red Shirt",
		Price: ptr(decimal.NewFromInt(3000)),
	})
	ve, ok := usecase.AsValidationError(err)
	require.True(t, ok)
	assert.Equal(t, "The slug has already been taken.", ve.Fields["slug"])
}

func TestProductCreate_Validation(t *testing.T) {
	uc, _ := newProductUsecase(t)
	ctx := context.Background()

	_, err := uc.Create(ctx, usecase.ProductInput{Name: "  "})
	ve, ok := usecase.AsValidationError(err)
	require.True(t, ok)
	assert.Contains(t, ve.Fields, "name")
	assert.Contains(t, ve.Fields, "price")

	_, err = uc.Create(ctx, usecase.ProductInput{
		Name:  "Shirt",
		Price: ptr(decimal.NewFromInt(-1)),
	})
	ve, ok = usecase.AsValidationError(err)
	require.True(t, ok)
	assert.Contains(t, ve.Fields, "price")
}

func TestProductGet_NotFound(t *testing.T) {
	uc, _ := newProductUsecase(t)

	_, err := uc.Get(context.Background(), 999)
	he, ok := usecase.AsHTTPError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusNotFound, he.Status)
}

func TestProductDelete_SoftDeletes(t *testing.T) {
	uc, gormDB := newProductUsecase(t)
	ctx := context.Background()

	created, err := uc.Create(ctx, usecase.ProductInput{
		Name:  "Blue Shirt",
		Price: ptr(decimal.NewFromInt(1000)),
	})
	require.NoError(t, err)

	require.NoError(t, uc.Delete(ctx, created.ID))

	_, err = uc.Get(ctx, created.ID)
	he, ok := usecase.AsHTTPError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusNotFound, he.Status)

	// 行自体は残っている（deleted_atが付くだけ）
	var count int64
	gormDB.Unscoped().Model(&model.Product{}).Where("id = ?", created.ID).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestProductCreate_WithVariants(t *testing.T) {
	uc, _ := newProductUsecase(t)
	ctx := context.Background()

	created, err := uc.Create(ctx, usecase.ProductInput{
		Name:  "Red Shirt",
		Price: ptr(decimal.NewFromInt(2500)),
		Variants: ptr([]usecase.VariantInput{
			{RetailPrice: ptr(decimal.NewFromInt(2500))},
			{RetailPrice: ptr(decimal.NewFromInt(2800))},
		}),
	})
	require.NoError(t, err)
	require.Len(t, created.Variants, 2)

	// SKUは名前3文字+タイプ+連番で自動採番される
	skus := []string{created.Variants[0].SKU, created.Variants[1].SKU}
	assert.Contains(t, skus, "RED-STU-001")
	assert.Contains(t, skus, "RED-STU-002")

	for _, v := range created.Variants {
		assert.Equal(t, 5, v.LowStockThreshold)
		assert.True(t, v.IsActive)
	}
}
