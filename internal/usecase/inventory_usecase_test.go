package usecase_test

import (
	"context"
	"testing"

	"backoffice/internal/domain/model"
	infraRepo "backoffice/internal/infra/repository"
	"backoffice/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type inventoryFixture struct {
	uc        *usecase.InventoryUsecase
	productUC *usecase.ProductUsecase
	db        *gorm.DB
	store     model.Store
	variantID int64
	productID int64
}

func newInventoryFixture(t *testing.T) inventoryFixture {
	t.Helper()

	gormDB := newTestDB(t)
	txm := infraRepo.NewTxManagerGorm(gormDB)
	variantRepo := infraRepo.NewVariantGormRepository(gormDB)
	movementRepo := infraRepo.NewStockMovementGormRepository(gormDB)

	productUC := usecase.NewProductUsecase(
		infraRepo.NewProductGormRepository(gormDB),
		variantRepo,
		movementRepo,
		txm,
	)
	uc := usecase.NewInventoryUsecase(
		infraRepo.NewStoreGormRepository(gormDB),
		variantRepo,
		infraRepo.NewStoreInventoryGormRepository(gormDB),
		movementRepo,
		txm,
	)

	store := model.Store{Name: "Main", Code: "MAIN", IsActive: true, IsDefault: true}
	require.NoError(t, gormDB.Create(&store).Error)

	product := createProductWithVariants(t, productUC, "Red Shirt", 1)

	return inventoryFixture{
		uc:        uc,
		productUC: productUC,
		db:        gormDB,
		store:     store,
		variantID: product.Variants[0].ID,
		productID: product.ID,
	}
}

func TestInventoryAdjust_RecordsMovement(t *testing.T) {
	f := newInventoryFixture(t)
	ctx := context.Background()

	out, err := f.uc.Adjust(ctx, f.store.ID, f.variantID, usecase.AdjustInventoryInput{
		Quantity: ptr(10),
	})
	require.NoError(t, err)

	assert.Equal(t, 10, out.Inventory.Quantity)
	assert.Equal(t, model.MovementAdjustment, out.Movement.Type)
	assert.Equal(t, 0, out.Movement.QuantityBefore)
	assert.Equal(t, 10, out.Movement.QuantityAfter)
	assert.Equal(t, 10, out.Movement.Quantity)

	// 2回目は差分で台帳に残る
	out, err = f.uc.Adjust(ctx, f.store.ID, f.variantID, usecase.AdjustInventoryInput{
		Quantity: ptr(4),
	})
	require.NoError(t, err)
	assert.Equal(t, 10, out.Movement.QuantityBefore)
	assert.Equal(t, 4, out.Movement.QuantityAfter)
	assert.Equal(t, -6, out.Movement.Quantity)

	var count int64
	f.db.Model(&model.StockMovement{}).Where("variant_id = ?", f.variantID).Count(&count)
	assert.Equal(t, int64(2), count)
}

func TestInventoryAdjust_UpdatesVariantAggregate(t *testing.T) {
	f := newInventoryFixture(t)
	ctx := context.Background()

	second := model.Store{Name: "Branch", Code: "BR01", IsActive: true}
	require.NoError(t, f.db.Create(&second).Error)

	_, err := f.uc.Adjust(ctx, f.store.ID, f.variantID, usecase.AdjustInventoryInput{Quantity: ptr(10)})
	require.NoError(t, err)
	_, err = f.uc.Adjust(ctx, second.ID, f.variantID, usecase.AdjustInventoryInput{Quantity: ptr(5)})
	require.NoError(t, err)

	var v model.ProductVariant
	require.NoError(t, f.db.First(&v, f.variantID).Error)
	assert.Equal(t, 15, v.StockQuantity)
}

func TestInventoryAdjust_KeepsReservedQuantity(t *testing.T) {
	f := newInventoryFixture(t)
	ctx := context.Background()

	seed := model.StoreInventory{
		StoreID:          f.store.ID,
		VariantID:        f.variantID,
		Quantity:         10,
		ReservedQuantity: 4,
	}
	require.NoError(t, f.db.Create(&seed).Error)

	out, err := f.uc.Adjust(ctx, f.store.ID, f.variantID, usecase.AdjustInventoryInput{
		Quantity: ptr(12),
	})
	require.NoError(t, err)
	assert.Equal(t, 12, out.Inventory.Quantity)
	assert.Equal(t, 4, out.Inventory.ReservedQuantity)

	var si model.StoreInventory
	require.NoError(t, f.db.
		Where("store_id = ? AND variant_id = ?", f.store.ID, f.variantID).
		First(&si).Error)
	assert.Equal(t, 12, si.Quantity)
	assert.Equal(t, 4, si.ReservedQuantity)
}

func TestInventoryAdjust_Validation(t *testing.T) {
	f := newInventoryFixture(t)
	ctx := context.Background()

	_, err := f.uc.Adjust(ctx, f.store.ID, f.variantID, usecase.AdjustInventoryInput{})
	ve, ok := usecase.AsValidationError(err)
	require.True(t, ok)
	assert.Contains(t, ve.Fields, "quantity")

	_, err = f.uc.Adjust(ctx, f.store.ID, f.variantID, usecase.AdjustInventoryInput{
		Quantity: ptr(1),
		Type:     ptr("bogus"),
	})
	ve, ok = usecase.AsValidationError(err)
	require.True(t, ok)
	assert.Contains(t, ve.Fields, "type")
}

func TestProductMovements_AcrossVariants(t *testing.T) {
	f := newInventoryFixture(t)
	ctx := context.Background()

	_, err := f.uc.Adjust(ctx, f.store.ID, f.variantID, usecase.AdjustInventoryInput{Quantity: ptr(3)})
	require.NoError(t, err)

	movements, total, err := f.productUC.ListMovements(ctx, f.productID, 1, 15)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, movements, 1)
	assert.Equal(t, f.variantID, movements[0].VariantID)
}
