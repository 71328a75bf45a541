package repository

import (
	"context"
	"errors"

	"backoffice/internal/domain/model"
	repo "backoffice/internal/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type StoreInventoryGormRepository struct {
	db *gorm.DB
}

// DI
func NewStoreInventoryGormRepository(db *gorm.DB) *StoreInventoryGormRepository {
	return &StoreInventoryGormRepository{db: db}
}

func (r *StoreInventoryGormRepository) Find(ctx context.Context, storeID int64, variantID int64) (model.StoreInventory, error) {
	var si model.StoreInventory
	err := r.db.WithContext(ctx).
		Where("store_id = ? AND variant_id = ?", storeID, variantID).
		First(&si).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.StoreInventory{}, repo.ErrNotFound
	}
	if err != nil {
		return model.StoreInventory{}, err
	}
	return si, nil
}

func (r *StoreInventoryGormRepository) ListByVariant(ctx context.Context, variantID int64) ([]model.StoreInventory, error) {
	var rows []model.StoreInventory
	err := r.db.WithContext(ctx).
		Where("variant_id = ?", variantID).
		Order("store_id asc").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// (store_id, variant_id)で一意なのでON CONFLICTで上書きする。
// 触るのはquantityのみ。reserved_quantityは予約側の持ち物なので壊さない。
func (r *StoreInventoryGormRepository) Upsert(ctx context.Context, si model.StoreInventory) (model.StoreInventory, error) {
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "store_id"}, {Name: "variant_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"quantity", "updated_at"}),
	}).Create(&si).Error
	if err != nil {
		return model.StoreInventory{}, err
	}

	// 既存行に衝突したときはDB側の値（reserved_quantityなど）を拾い直す
	var saved model.StoreInventory
	err = r.db.WithContext(ctx).
		Where("store_id = ? AND variant_id = ?", si.StoreID, si.VariantID).
		First(&saved).Error
	if err != nil {
		return model.StoreInventory{}, err
	}
	return saved, nil
}

type StockMovementGormRepository struct {
	db *gorm.DB
}

// DI
func NewStockMovementGormRepository(db *gorm.DB) *StockMovementGormRepository {
	return &StockMovementGormRepository{db: db}
}

// 台帳への追記。更新・削除のAPIは持たない。
func (r *StockMovementGormRepository) Create(ctx context.Context, m model.StockMovement) (model.StockMovement, error) {
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return model.StockMovement{}, err
	}
	return m, nil
}

func (r *StockMovementGormRepository) ListByVariant(ctx context.Context, variantID int64, page int, perPage int) ([]model.StockMovement, int64, error) {
	var movements []model.StockMovement
	var total int64

	tx := r.db.WithContext(ctx).Model(&model.StockMovement{}).
		Where("variant_id = ?", variantID)

	if err := tx.Count(&total).Error; err != nil {
		return []model.StockMovement{}, 0, err
	}

	offset := (page - 1) * perPage
	err := tx.Order("created_at desc").Order("id desc").
		Offset(offset).Limit(perPage).
		Find(&movements).Error
	if err != nil {
		return []model.StockMovement{}, 0, err
	}
	return movements, total, nil
}

func (r *StockMovementGormRepository) ListByProduct(ctx context.Context, productID int64, page int, perPage int) ([]model.StockMovement, int64, error) {
	var movements []model.StockMovement
	var total int64

	tx := r.db.WithContext(ctx).Model(&model.StockMovement{}).
		Where("variant_id IN (?)",
			r.db.Model(&model.ProductVariant{}).Select("id").Where("product_id = ?", productID),
		)

	if err := tx.Count(&total).Error; err != nil {
		return []model.StockMovement{}, 0, err
	}

	offset := (page - 1) * perPage
	err := tx.Order("created_at desc").Order("id desc").
		Offset(offset).Limit(perPage).
		Find(&movements).Error
	if err != nil {
		return []model.StockMovement{}, 0, err
	}
	return movements, total, nil
}
