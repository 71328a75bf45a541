package repository

import (
	"context"
	"errors"
	"strings"

	"backoffice/internal/domain/model"
	repo "backoffice/internal/repository"

	"gorm.io/gorm"
)

type CategoryGormRepository struct {
	db *gorm.DB
}

// DI
func NewCategoryGormRepository(db *gorm.DB) *CategoryGormRepository {
	return &CategoryGormRepository{db: db}
}

func (r *CategoryGormRepository) List(ctx context.Context, q repo.ListQuery) ([]model.Category, int64, error) {
	var categories []model.Category
	var total int64

	tx := r.db.WithContext(ctx).Model(&model.Category{})

	if s := strings.TrimSpace(q.Search); s != "" {
		tx = tx.Where("name LIKE ?", "%"+s+"%")
	}
	if q.IsActive != nil {
		tx = tx.Where("is_active = ?", *q.IsActive)
	}

	if err := tx.Count(&total).Error; err != nil {
		return []model.Category{}, 0, err
	}

	offset := (q.Page - 1) * q.PerPage
	err := tx.Preload("Parent").
		Order("name asc").
		Offset(offset).Limit(q.PerPage).
		Find(&categories).Error
	if err != nil {
		return []model.Category{}, 0, err
	}
	return categories, total, nil
}

func (r *CategoryGormRepository) FindByID(ctx context.Context, id int64) (model.Category, error) {
	var c model.Category
	err := r.db.WithContext(ctx).Preload("Parent").First(&c, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Category{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Category{}, err
	}
	return c, nil
}

// 詳細用。親と子を載せる。
func (r *CategoryGormRepository) FindWithChildren(ctx context.Context, id int64) (model.Category, error) {
	var c model.Category
	err := r.db.WithContext(ctx).
		Preload("Parent").
		Preload("Children").
		First(&c, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Category{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Category{}, err
	}
	return c, nil
}

func (r *CategoryGormRepository) Create(ctx context.Context, c model.Category) (model.Category, error) {
	if err := r.db.WithContext(ctx).Omit("Parent", "Children").Create(&c).Error; err != nil {
		return model.Category{}, err
	}
	return c, nil
}

func (r *CategoryGormRepository) Update(ctx context.Context, c model.Category) error {
	res := r.db.WithContext(ctx).Model(&model.Category{}).Where("id = ?", c.ID).Updates(map[string]interface{}{
		"name":        c.Name,
		"slug":        c.Slug,
		"description": c.Description,
		"parent_id":   c.ParentID,
		"is_active":   c.IsActive,
	})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

func (r *CategoryGormRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&model.Category{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

func (r *CategoryGormRepository) SlugExists(ctx context.Context, slug string, excludeID int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Category{}).
		Where("slug = ? AND id <> ?", slug, excludeID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

type BrandGormRepository struct {
	db *gorm.DB
}

// DI
func NewBrandGormRepository(db *gorm.DB) *BrandGormRepository {
	return &BrandGormRepository{db: db}
}

func (r *BrandGormRepository) List(ctx context.Context, q repo.ListQuery) ([]model.Brand, int64, error) {
	var brands []model.Brand
	var total int64

	tx := r.db.WithContext(ctx).Model(&model.Brand{})

	if s := strings.TrimSpace(q.Search); s != "" {
		tx = tx.Where("name LIKE ?", "%"+s+"%")
	}
	if q.IsActive != nil {
		tx = tx.Where("is_active = ?", *q.IsActive)
	}

	if err := tx.Count(&total).Error; err != nil {
		return []model.Brand{}, 0, err
	}

	offset := (q.Page - 1) * q.PerPage
	if err := tx.Order("name asc").Offset(offset).Limit(q.PerPage).Find(&brands).Error; err != nil {
		return []model.Brand{}, 0, err
	}
	return brands, total, nil
}

func (r *BrandGormRepository) FindByID(ctx context.Context, id int64) (model.Brand, error) {
	var b model.Brand
	err := r.db.WithContext(ctx).First(&b, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Brand{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Brand{}, err
	}
	return b, nil
}

func (r *BrandGormRepository) Create(ctx context.Context, b model.Brand) (model.Brand, error) {
	if err := r.db.WithContext(ctx).Create(&b).Error; err != nil {
		return model.Brand{}, err
	}
	return b, nil
}

func (r *BrandGormRepository) Update(ctx context.Context, b model.Brand) error {
	res := r.db.WithContext(ctx).Model(&model.Brand{}).Where("id = ?", b.ID).Updates(map[string]interface{}{
		"name":        b.Name,
		"slug":        b.Slug,
		"description": b.Description,
		"logo_url":    b.LogoURL,
		"is_active":   b.IsActive,
	})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

func (r *BrandGormRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&model.Brand{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

func (r *BrandGormRepository) SlugExists(ctx context.Context, slug string, excludeID int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Brand{}).
		Where("slug = ? AND id <> ?", slug, excludeID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

type AttributeGormRepository struct {
	db *gorm.DB
}

// DI
func NewAttributeGormRepository(db *gorm.DB) *AttributeGormRepository {
	return &AttributeGormRepository{db: db}
}

func (r *AttributeGormRepository) List(ctx context.Context, q repo.ListQuery) ([]model.Attribute, int64, error) {
	var attributes []model.Attribute
	var total int64

	tx := r.db.WithContext(ctx).Model(&model.Attribute{})

	if s := strings.TrimSpace(q.Search); s != "" {
		tx = tx.Where("name LIKE ?", "%"+s+"%")
	}

	if err := tx.Count(&total).Error; err != nil {
		return []model.Attribute{}, 0, err
	}

	offset := (q.Page - 1) * q.PerPage
	err := tx.Preload("Values", func(db *gorm.DB) *gorm.DB { return db.Order("sort_order asc") }).
		Order("name asc").
		Offset(offset).Limit(q.PerPage).
		Find(&attributes).Error
	if err != nil {
		return []model.Attribute{}, 0, err
	}
	return attributes, total, nil
}

func (r *AttributeGormRepository) FindByID(ctx context.Context, id int64) (model.Attribute, error) {
	var a model.Attribute
	err := r.db.WithContext(ctx).
		Preload("Values", func(db *gorm.DB) *gorm.DB { return db.Order("sort_order asc") }).
		First(&a, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Attribute{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Attribute{}, err
	}
	return a, nil
}

func (r *AttributeGormRepository) Create(ctx context.Context, a model.Attribute) (model.Attribute, error) {
	if err := r.db.WithContext(ctx).Omit("Values").Create(&a).Error; err != nil {
		return model.Attribute{}, err
	}
	return a, nil
}

func (r *AttributeGormRepository) Update(ctx context.Context, a model.Attribute) error {
	res := r.db.WithContext(ctx).Model(&model.Attribute{}).Where("id = ?", a.ID).Updates(map[string]interface{}{
		"name": a.Name,
		"slug": a.Slug,
	})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

// 属性削除。値はcascadeで消える。
func (r *AttributeGormRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Select("Values").Delete(&model.Attribute{ID: id})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

func (r *AttributeGormRepository) SlugExists(ctx context.Context, slug string, excludeID int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Attribute{}).
		Where("slug = ? AND id <> ?", slug, excludeID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *AttributeGormRepository) AddValue(ctx context.Context, v model.AttributeValue) (model.AttributeValue, error) {
	if err := r.db.WithContext(ctx).Omit("Attribute").Create(&v).Error; err != nil {
		return model.AttributeValue{}, err
	}
	return v, nil
}

func (r *AttributeGormRepository) FindValue(ctx context.Context, attributeID int64, valueID int64) (model.AttributeValue, error) {
	var v model.AttributeValue
	err := r.db.WithContext(ctx).
		Where("id = ? AND attribute_id = ?", valueID, attributeID).
		First(&v).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.AttributeValue{}, repo.ErrNotFound
	}
	if err != nil {
		return model.AttributeValue{}, err
	}
	return v, nil
}

func (r *AttributeGormRepository) DeleteValue(ctx context.Context, attributeID int64, valueID int64) error {
	res := r.db.WithContext(ctx).
		Where("id = ? AND attribute_id = ?", valueID, attributeID).
		Delete(&model.AttributeValue{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}
