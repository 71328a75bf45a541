package usecase_test

import (
	"context"
	"net/http"
	"testing"

	"backoffice/internal/domain/model"
	"backoffice/internal/usecase"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createProductWithVariants(t *testing.T, uc *usecase.ProductUsecase, name string, count int) model.Product {
	t.Helper()

	variants := make([]usecase.VariantInput, count)
	for i := range variants {
		variants[i] = usecase.VariantInput{RetailPrice: ptr(decimal.NewFromInt(1000))}
	}

	created, err := uc.Create(context.Background(), usecase.ProductInput{
		Name:     name,
		Price:    ptr(decimal.NewFromInt(1000)),
		Variants: &variants,
	})
	require.NoError(t, err)
	require.Len(t, created.Variants, count)
	return created
}

func TestVariantSync_UpdatesOwnedByID(t *testing.T) {
	uc, _ := newProductUsecase(t)
	ctx := context.Background()

	product := createProductWithVariants(t, uc, "Red Shirt", 2)
	keepID := product.Variants[0].ID
	otherID := product.Variants[1].ID

	updated, err := uc.Update(ctx, product.ID, usecase.ProductInput{
		Name:  product.Name,
		Price: ptr(decimal.NewFromInt(1000)),
		Variants: ptr([]usecase.VariantInput{
			{ID: &keepID, RetailPrice: ptr(decimal.NewFromInt(9999))},
			{ID: &otherID},
		}),
	})
	require.NoError(t, err)
	require.Len(t, updated.Variants, 2)

	byID := map[int64]model.ProductVariant{}
	for _, v := range updated.Variants {
		byID[v.ID] = v
	}

	// idで一致した行は作り直しではなく更新
	assert.True(t, byID[keepID].RetailPrice.Equal(decimal.NewFromInt(9999)))
	// 未指定フィールドは保持される
	assert.True(t, byID[otherID].RetailPrice.Equal(decimal.NewFromInt(1000)))
}

func TestVariantSync_DeletesAbsent(t *testing.T) {
	uc, _ := newProductUsecase(t)
	ctx := context.Background()

	product := createProductWithVariants(t, uc, "Red Shirt", 3)
	keepID := product.Variants[0].ID

	updated, err := uc.Update(ctx, product.ID, usecase.ProductInput{
		Name:  product.Name,
		Price: ptr(decimal.NewFromInt(1000)),
		Variants: ptr([]usecase.VariantInput{
			{ID: &keepID},
		}),
	})
	require.NoError(t, err)
	require.Len(t, updated.Variants, 1)
	assert.Equal(t, keepID, updated.Variants[0].ID)
}

func TestVariantSync_ForeignIDCreatesNew(t *testing.T) {
	uc, gormDB := newProductUsecase(t)
	ctx := context.Background()

	other := createProductWithVariants(t, uc, "Blue Shirt", 1)
	foreignID := other.Variants[0].ID

	product := createProductWithVariants(t, uc, "Red Shirt", 0)

	updated, err := uc.Update(ctx, product.ID, usecase.ProductInput{
		Name:  product.Name,
		Price: ptr(decimal.NewFromInt(1000)),
		Variants: ptr([]usecase.VariantInput{
			{ID: &foreignID, RetailPrice: ptr(decimal.NewFromInt(500))},
		}),
	})
	require.NoError(t, err)
	require.Len(t, updated.Variants, 1)

	// 他商品のidは無視して新規行を作る。元の行は無傷。
	assert.NotEqual(t, foreignID, updated.Variants[0].ID)

	var untouched model.ProductVariant
	require.NoError(t, gormDB.First(&untouched, foreignID).Error)
	assert.Equal(t, other.ID, untouched.ProductID)
}

func TestVariantSync_NilVariantsLeavesExisting(t *testing.T) {
	uc, _ := newProductUsecase(t)
	ctx := context.Background()

	product := createProductWithVariants(t, uc, "Red Shirt", 2)

	updated, err := uc.Update(ctx, product.ID, usecase.ProductInput{
		Name:  product.Name,
		Price: ptr(decimal.NewFromInt(1000)),
	})
	require.NoError(t, err)
	assert.Len(t, updated.Variants, 2)
}

func TestVariantImages_IndexKeptForSortOrder(t *testing.T) {
	uc, gormDB := newProductUsecase(t)
	ctx := context.Background()

	product := createProductWithVariants(t, uc, "Red Shirt", 1)
	variantID := product.Variants[0].ID

	_, err := uc.UpdateVariant(ctx, product.ID, variantID, usecase.VariantInput{
		Images: ptr([]string{"https://cdn.example.com/a.jpg", "", "https://cdn.example.com/c.jpg"}),
	})
	require.NoError(t, err)

	var images []model.ProductImage
	require.NoError(t, gormDB.Where("variant_id = ?", variantID).Order("sort_order").Find(&images).Error)
	require.Len(t, images, 2)

	// 空URLは飛ばすがインデックスは詰め直さない
	assert.Equal(t, 0, images[0].SortOrder)
	assert.True(t, images[0].IsPrimary)
	assert.Equal(t, 2, images[1].SortOrder)
	assert.False(t, images[1].IsPrimary)
}

func TestVariantImages_ReplacedOnResync(t *testing.T) {
	uc, gormDB := newProductUsecase(t)
	ctx := context.Background()

	product := createProductWithVariants(t, uc, "Red Shirt", 1)
	variantID := product.Variants[0].ID

	_, err := uc.UpdateVariant(ctx, product.ID, variantID, usecase.VariantInput{
		Images: ptr([]string{"https://cdn.example.com/old.jpg"}),
	})
	require.NoError(t, err)

	_, err = uc.UpdateVariant(ctx, product.ID, variantID, usecase.VariantInput{
		Images: ptr([]string{"https://cdn.example.com/new.jpg"}),
	})
	require.NoError(t, err)

	var images []model.ProductImage
	require.NoError(t, gormDB.Where("variant_id = ?", variantID).Find(&images).Error)
	require.Len(t, images, 1)
	assert.Equal(t, "https://cdn.example.com/new.jpg", images[0].ImageURL)
}

func TestVariantUpdate_WrongProductIs404(t *testing.T) {
	uc, _ := newProductUsecase(t)
	ctx := context.Background()

	a := createProductWithVariants(t, uc, "Red Shirt", 1)
	b := createProductWithVariants(t, uc, "Blue Shirt", 0)

	_, err := uc.UpdateVariant(ctx, b.ID, a.Variants[0].ID, usecase.VariantInput{})
	he, ok := usecase.AsHTTPError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusNotFound, he.Status)
}

func TestVariantDelete_RemovesImages(t *testing.T) {
	uc, gormDB := newProductUsecase(t)
	ctx := context.Background()

	product := createProductWithVariants(t, uc, "Red Shirt", 1)
	variantID := product.Variants[0].ID

	_, err := uc.UpdateVariant(ctx, product.ID, variantID, usecase.VariantInput{
		Images: ptr([]string{"https://cdn.example.com/a.jpg"}),
	})
	require.NoError(t, err)

	require.NoError(t, uc.DeleteVariant(ctx, product.ID, variantID))

	var count int64
	gormDB.Model(&model.ProductVariant{}).Where("id = ?", variantID).Count(&count)
	assert.Equal(t, int64(0), count)
	gormDB.Model(&model.ProductImage{}).Where("variant_id = ?", variantID).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestVariantCreate_ExplicitSKUConflict(t *testing.T) {
	uc, _ := newProductUsecase(t)
	ctx := context.Background()

	product := createProductWithVariants(t, uc, "Red Shirt", 1)
	existingSKU := product.Variants[0].SKU

	_, err := uc.CreateVariant(ctx, product.ID, usecase.VariantInput{
		SKU: &existingSKU,
	})
	ve, ok := usecase.AsValidationError(err)
	require.True(t, ok)
	assert.Equal(t, "The sku has already been taken.", ve.Fields["sku"])
}
