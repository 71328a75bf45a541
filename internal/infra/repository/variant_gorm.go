package repository

import (
	"context"
	"errors"

	"backoffice/internal/domain/model"
	repo "backoffice/internal/repository"

	"gorm.io/gorm"
)

type VariantGormRepository struct {
	db *gorm.DB
}

// DI
func NewVariantGormRepository(db *gorm.DB) *VariantGormRepository {
	return &VariantGormRepository{db: db}
}

func (r *VariantGormRepository) ListByProduct(ctx context.Context, productID int64) ([]model.ProductVariant, error) {
	var variants []model.ProductVariant
	err := r.db.WithContext(ctx).
		Where("product_id = ?", productID).
		Order("id asc").
		Find(&variants).Error
	if err != nil {
		return nil, err
	}
	return variants, nil
}

func (r *VariantGormRepository) FindByID(ctx context.Context, id int64) (model.ProductVariant, error) {
	var v model.ProductVariant
	err := r.db.WithContext(ctx).First(&v, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.ProductVariant{}, repo.ErrNotFound
	}
	if err != nil {
		return model.ProductVariant{}, err
	}
	return v, nil
}

func (r *VariantGormRepository) CountByProduct(ctx context.Context, productID int64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.ProductVariant{}).
		Where("product_id = ?", productID).
		Count(&count).Error
	return count, err
}

func (r *VariantGormRepository) Create(ctx context.Context, v model.ProductVariant) (model.ProductVariant, error) {
	if err := r.db.WithContext(ctx).Omit("Size", "Color", "Fabric", "Fit", "TaxClass", "Images").Create(&v).Error; err != nil {
		return model.ProductVariant{}, err
	}
	return v, nil
}

func (r *VariantGormRepository) Update(ctx context.Context, v model.ProductVariant) error {
	res := r.db.WithContext(ctx).Model(&model.ProductVariant{}).Where("id = ?", v.ID).Updates(map[string]interface{}{
		"sku":                 v.SKU,
		"barcode":             v.Barcode,
		"size_id":             v.SizeID,
		"color_id":            v.ColorID,
		"fabric_id":           v.FabricID,
		"fit_id":              v.FitID,
		"tax_class_id":        v.TaxClassID,
		"cost_price":          v.CostPrice,
		"retail_price":        v.RetailPrice,
		"sale_price":          v.SalePrice,
		"weight":              v.Weight,
		"is_online":           v.IsOnline,
		"is_pos":              v.IsPos,
		"is_active":           v.IsActive,
		"stock_quantity":      v.StockQuantity,
		"low_stock_threshold": v.LowStockThreshold,
	})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

// バリアント削除（ハードデリート）
func (r *VariantGormRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&model.ProductVariant{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

func (r *VariantGormRepository) SKUExists(ctx context.Context, sku string, excludeID int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.ProductVariant{}).
		Where("sku = ? AND id <> ?", sku, excludeID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *VariantGormRepository) SetStock(ctx context.Context, id int64, quantity int) error {
	res := r.db.WithContext(ctx).Model(&model.ProductVariant{}).
		Where("id = ?", id).
		Update("stock_quantity", quantity)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

type ImageGormRepository struct {
	db *gorm.DB
}

// DI
func NewImageGormRepository(db *gorm.DB) *ImageGormRepository {
	return &ImageGormRepository{db: db}
}

func (r *ImageGormRepository) Create(ctx context.Context, img model.ProductImage) (model.ProductImage, error) {
	if err := r.db.WithContext(ctx).Create(&img).Error; err != nil {
		return model.ProductImage{}, err
	}
	return img, nil
}

// バリアントに紐づく画像の全削除（同期の前半）
func (r *ImageGormRepository) DeleteByVariant(ctx context.Context, variantID int64) error {
	return r.db.WithContext(ctx).
		Where("variant_id = ?", variantID).
		Delete(&model.ProductImage{}).Error
}

// 商品直下（variant_idなし）の画像の全削除
func (r *ImageGormRepository) DeleteProductLevel(ctx context.Context, productID int64) error {
	return r.db.WithContext(ctx).
		Where("product_id = ? AND variant_id IS NULL", productID).
		Delete(&model.ProductImage{}).Error
}
