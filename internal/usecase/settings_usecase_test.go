package usecase_test

import (
	"context"
	"testing"

	"backoffice/internal/domain/model"
	infraRepo "backoffice/internal/infra/repository"
	"backoffice/internal/usecase"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newStoreUsecase(t *testing.T) (*usecase.StoreUsecase, *gorm.DB) {
	t.Helper()
	gormDB := newTestDB(t)
	uc := usecase.NewStoreUsecase(
		infraRepo.NewStoreGormRepository(gormDB),
		infraRepo.NewTxManagerGorm(gormDB),
	)
	return uc, gormDB
}

func TestStoreDefault_OnlyOne(t *testing.T) {
	uc, gormDB := newStoreUsecase(t)
	ctx := context.Background()

	first, err := uc.Create(ctx, usecase.StoreInput{
		Name: "Main", Code: "MAIN", IsDefault: ptr(true),
	})
	require.NoError(t, err)

	second, err := uc.Create(ctx, usecase.StoreInput{
		Name: "Branch", Code: "BR01", IsDefault: ptr(true),
	})
	require.NoError(t, err)
	assert.True(t, second.IsDefault)

	// 先のdefaultは落ちている
	var reloaded model.Store
	require.NoError(t, gormDB.First(&reloaded, first.ID).Error)
	assert.False(t, reloaded.IsDefault)

	var count int64
	gormDB.Model(&model.Store{}).Where("is_default = ?", true).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestStoreCreate_DuplicateCode(t *testing.T) {
	uc, _ := newStoreUsecase(t)
	ctx := context.Background()

	_, err := uc.Create(ctx, usecase.StoreInput{Name: "Main", Code: "MAIN"})
	require.NoError(t, err)

	_, err = uc.Create(ctx, usecase.StoreInput{Name: "Other", Code: "MAIN"})
	ve, ok := usecase.AsValidationError(err)
	require.True(t, ok)
	assert.Equal(t, "The code has already been taken.", ve.Fields["code"])
}

func TestTaxClassDefault_OnlyOne(t *testing.T) {
	gormDB := newTestDB(t)
	uc := usecase.NewTaxClassUsecase(
		infraRepo.NewTaxClassGormRepository(gormDB),
		infraRepo.NewTxManagerGorm(gormDB),
	)
	ctx := context.Background()

	first, err := uc.Create(ctx, usecase.TaxClassInput{
		Name: "Standard", Rate: ptr(decimal.NewFromInt(17)), IsDefault: ptr(true),
	})
	require.NoError(t, err)

	_, err = uc.Create(ctx, usecase.TaxClassInput{
		Name: "Reduced", Rate: ptr(decimal.NewFromInt(5)), IsDefault: ptr(true),
	})
	require.NoError(t, err)

	var reloaded model.TaxClass
	require.NoError(t, gormDB.First(&reloaded, first.ID).Error)
	assert.False(t, reloaded.IsDefault)
}

func TestTaxClass_RateValidation(t *testing.T) {
	gormDB := newTestDB(t)
	uc := usecase.NewTaxClassUsecase(
		infraRepo.NewTaxClassGormRepository(gormDB),
		infraRepo.NewTxManagerGorm(gormDB),
	)

	_, err := uc.Create(context.Background(), usecase.TaxClassInput{
		Name: "Bad", Rate: ptr(decimal.NewFromInt(101)),
	})
	ve, ok := usecase.AsValidationError(err)
	require.True(t, ok)
	assert.Contains(t, ve.Fields, "rate")
}
