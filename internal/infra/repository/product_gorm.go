package repository

import (
	"context"
	"errors"
	"strings"

	"backoffice/internal/domain/model"
	repo "backoffice/internal/repository"

	"gorm.io/gorm"
)

type ProductGormRepository struct {
	db *gorm.DB
}

// DI
func NewProductGormRepository(db *gorm.DB) *ProductGormRepository {
	return &ProductGormRepository{db: db}
}

// 商品一覧。検索/カテゴリ/ブランド/状態の絞り込みとページング付き。
func (r *ProductGormRepository) List(ctx context.Context, q repo.ProductListQuery) ([]model.Product, int64, error) {
	var products []model.Product
	var total int64

	tx := r.db.WithContext(ctx).Model(&model.Product{})

	// 名前またはバリアントSKUで検索
	if s := strings.TrimSpace(q.Search); s != "" {
		like := "%" + s + "%"
		tx = tx.Where(
			"name LIKE ? OR id IN (?)",
			like,
			r.db.Model(&model.ProductVariant{}).Select("product_id").Where("sku LIKE ?", like),
		)
	}

	if q.CategoryID != nil {
		tx = tx.Where(
			"id IN (?)",
			r.db.Table("product_categories").Select("product_id").Where("category_id = ?", *q.CategoryID),
		)
	}

	if q.BrandID != nil {
		tx = tx.Where("brand_id = ?", *q.BrandID)
	}

	if q.Status != "" {
		tx = tx.Where("status = ?", q.Status)
	}

	if q.IsActive != nil {
		tx = tx.Where("is_active = ?", *q.IsActive)
	}

	if err := tx.Count(&total).Error; err != nil {
		return []model.Product{}, 0, err
	}

	offset := (q.Page - 1) * q.PerPage
	err := tx.
		Preload("Brand").
		Preload("Categories").
		Preload("Images", func(db *gorm.DB) *gorm.DB { return db.Order("sort_order asc") }).
		Order("created_at desc").Order("id desc").
		Offset(offset).Limit(q.PerPage).
		Find(&products).Error
	if err != nil {
		return []model.Product{}, 0, err
	}

	return products, total, nil
}

// IDで商品を取得（関連は載せない）
func (r *ProductGormRepository) FindByID(ctx context.Context, id int64) (model.Product, error) {
	var p model.Product
	err := r.db.WithContext(ctx).First(&p, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Product{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Product{}, err
	}
	return p, nil
}

// 詳細DTOの組み立て。読む関連をここで明示する。
func (r *ProductGormRepository) FindDetail(ctx context.Context, id int64) (model.Product, error) {
	var p model.Product
	err := r.db.WithContext(ctx).
		Preload("Brand").
		Preload("Categories").
		Preload("AttributeValues").
		Preload("AttributeValues.Attribute").
		Preload("Images", func(db *gorm.DB) *gorm.DB { return db.Order("sort_order asc") }).
		Preload("Variants", func(db *gorm.DB) *gorm.DB { return db.Order("id asc") }).
		Preload("Variants.Size").
		Preload("Variants.Color").
		Preload("Variants.Fabric").
		Preload("Variants.Fit").
		Preload("Variants.TaxClass").
		Preload("Variants.Images", func(db *gorm.DB) *gorm.DB { return db.Order("sort_order asc") }).
		First(&p, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Product{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Product{}, err
	}
	return p, nil
}

// 商品の作成
func (r *ProductGormRepository) Create(ctx context.Context, p model.Product) (model.Product, error) {
	if err := r.db.WithContext(ctx).Omit("Categories", "AttributeValues", "Images", "Variants").Create(&p).Error; err != nil {
		return model.Product{}, err
	}
	return p, nil
}

// 商品の更新
func (r *ProductGormRepository) Update(ctx context.Context, p model.Product) error {
	res := r.db.WithContext(ctx).Model(&model.Product{}).Where("id = ?", p.ID).Updates(map[string]interface{}{
		"name":              p.Name,
		"slug":              p.Slug,
		"description":       p.Description,
		"short_description": p.ShortDescription,
		"product_type":      p.ProductType,
		"brand_id":          p.BrandID,
		"price":             p.Price,
		"sale_price":        p.SalePrice,
		"cost_price":        p.CostPrice,
		"stock_quantity":    p.StockQuantity,
		"status":            p.Status,
		"is_active":         p.IsActive,
		"is_featured":       p.IsFeatured,
		"is_bestseller":     p.IsBestseller,
		"meta_title":        p.MetaTitle,
		"meta_description":  p.MetaDescription,
		"meta_keywords":     p.MetaKeywords,
	})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

// 商品削除（ソフトデリート）
func (r *ProductGormRepository) SoftDelete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&model.Product{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

func (r *ProductGormRepository) SlugExists(ctx context.Context, slug string, excludeID int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Product{}).
		Where("slug = ? AND id <> ?", slug, excludeID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// カテゴリの貼り替え
func (r *ProductGormRepository) ReplaceCategories(ctx context.Context, productID int64, categoryIDs []int64) error {
	categories := make([]model.Category, 0, len(categoryIDs))
	for _, id := range categoryIDs {
		categories = append(categories, model.Category{ID: id})
	}
	return r.db.WithContext(ctx).
		Model(&model.Product{ID: productID}).
		Association("Categories").
		Replace(categories)
}

// 属性値の貼り替え
func (r *ProductGormRepository) ReplaceAttributeValues(ctx context.Context, productID int64, valueIDs []int64) error {
	values := make([]model.AttributeValue, 0, len(valueIDs))
	for _, id := range valueIDs {
		values = append(values, model.AttributeValue{ID: id})
	}
	return r.db.WithContext(ctx).
		Model(&model.Product{ID: productID}).
		Association("AttributeValues").
		Replace(values)
}
