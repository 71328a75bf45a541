package repository

import (
	"context"
	"errors"
	"strings"

	"backoffice/internal/domain/model"
	repo "backoffice/internal/repository"

	"gorm.io/gorm"
)

// Size/Color/Fabric/Fitはどれも同じ形のCRUD。

func optionListScope(db *gorm.DB, q repo.ListQuery) *gorm.DB {
	if s := strings.TrimSpace(q.Search); s != "" {
		db = db.Where("name LIKE ?", "%"+s+"%")
	}
	if q.IsActive != nil {
		db = db.Where("is_active = ?", *q.IsActive)
	}
	return db
}

type SizeGormRepository struct {
	db *gorm.DB
}

// DI
func NewSizeGormRepository(db *gorm.DB) *SizeGormRepository {
	return &SizeGormRepository{db: db}
}

func (r *SizeGormRepository) List(ctx context.Context, q repo.ListQuery) ([]model.Size, int64, error) {
	var items []model.Size
	var total int64

	tx := optionListScope(r.db.WithContext(ctx).Model(&model.Size{}), q)
	if err := tx.Count(&total).Error; err != nil {
		return []model.Size{}, 0, err
	}

	offset := (q.Page - 1) * q.PerPage
	if err := tx.Order("sort_order asc").Order("name asc").Offset(offset).Limit(q.PerPage).Find(&items).Error; err != nil {
		return []model.Size{}, 0, err
	}
	return items, total, nil
}

func (r *SizeGormRepository) FindByID(ctx context.Context, id int64) (model.Size, error) {
	var s model.Size
	err := r.db.WithContext(ctx).First(&s, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Size{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Size{}, err
	}
	return s, nil
}

func (r *SizeGormRepository) Create(ctx context.Context, s model.Size) (model.Size, error) {
	if err := r.db.WithContext(ctx).Create(&s).Error; err != nil {
		return model.Size{}, err
	}
	return s, nil
}

func (r *SizeGormRepository) Update(ctx context.Context, s model.Size) error {
	res := r.db.WithContext(ctx).Model(&model.Size{}).Where("id = ?", s.ID).Updates(map[string]interface{}{
		"name":       s.Name,
		"code":       s.Code,
		"sort_order": s.SortOrder,
		"is_active":  s.IsActive,
	})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

func (r *SizeGormRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&model.Size{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

type ColorGormRepository struct {
	db *gorm.DB
}

// DI
func NewColorGormRepository(db *gorm.DB) *ColorGormRepository {
	return &ColorGormRepository{db: db}
}

func (r *ColorGormRepository) List(ctx context.Context, q repo.ListQuery) ([]model.Color, int64, error) {
	var items []model.Color
	var total int64

	tx := optionListScope(r.db.WithContext(ctx).Model(&model.Color{}), q)
	if err := tx.Count(&total).Error; err != nil {
		return []model.Color{}, 0, err
	}

	offset := (q.Page - 1) * q.PerPage
	if err := tx.Order("sort_order asc").Order("name asc").Offset(offset).Limit(q.PerPage).Find(&items).Error; err != nil {
		return []model.Color{}, 0, err
	}
	return items, total, nil
}

func (r *ColorGormRepository) FindByID(ctx context.Context, id int64) (model.Color, error) {
	var c model.Color
	err := r.db.WithContext(ctx).First(&c, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Color{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Color{}, err
	}
	return c, nil
}

func (r *ColorGormRepository) Create(ctx context.Context, c model.Color) (model.Color, error) {
	if err := r.db.WithContext(ctx).Create(&c).Error; err != nil {
		return model.Color{}, err
	}
	return c, nil
}

func (r *ColorGormRepository) Update(ctx context.Context, c model.Color) error {
	res := r.db.WithContext(ctx).Model(&model.Color{}).Where("id = ?", c.ID).Updates(map[string]interface{}{
		"name":       c.Name,
		"hex_code":   c.HexCode,
		"sort_order": c.SortOrder,
		"is_active":  c.IsActive,
	})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

func (r *ColorGormRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&model.Color{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

type FabricGormRepository struct {
	db *gorm.DB
}

// DI
func NewFabricGormRepository(db *gorm.DB) *FabricGormRepository {
	return &FabricGormRepository{db: db}
}

func (r *FabricGormRepository) List(ctx context.Context, q repo.ListQuery) ([]model.Fabric, int64, error) {
	var items []model.Fabric
	var total int64

	tx := optionListScope(r.db.WithContext(ctx).Model(&model.Fabric{}), q)
	if err := tx.Count(&total).Error; err != nil {
		return []model.Fabric{}, 0, err
	}

	offset := (q.Page - 1) * q.PerPage
	if err := tx.Order("sort_order asc").Order("name asc").Offset(offset).Limit(q.PerPage).Find(&items).Error; err != nil {
		return []model.Fabric{}, 0, err
	}
	return items, total, nil
}

func (r *FabricGormRepository) FindByID(ctx context.Context, id int64) (model.Fabric, error) {
	var f model.Fabric
	err := r.db.WithContext(ctx).First(&f, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Fabric{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Fabric{}, err
	}
	return f, nil
}

func (r *FabricGormRepository) Create(ctx context.Context, f model.Fabric) (model.Fabric, error) {
	if err := r.db.WithContext(ctx).Create(&f).Error; err != nil {
		return model.Fabric{}, err
	}
	return f, nil
}

func (r *FabricGormRepository) Update(ctx context.Context, f model.Fabric) error {
	res := r.db.WithContext(ctx).Model(&model.Fabric{}).Where("id = ?", f.ID).Updates(map[string]interface{}{
		"name":       f.Name,
		"sort_order": f.SortOrder,
		"is_active":  f.IsActive,
	})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

func (r *FabricGormRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&model.Fabric{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

type FitGormRepository struct {
	db *gorm.DB
}

// DI
func NewFitGormRepository(db *gorm.DB) *FitGormRepository {
	return &FitGormRepository{db: db}
}

func (r *FitGormRepository) List(ctx context.Context, q repo.ListQuery) ([]model.Fit, int64, error) {
	var items []model.Fit
	var total int64

	tx := optionListScope(r.db.WithContext(ctx).Model(&model.Fit{}), q)
	if err := tx.Count(&total).Error; err != nil {
		return []model.Fit{}, 0, err
	}

	offset := (q.Page - 1) * q.PerPage
	if err := tx.Order("sort_order asc").Order("name asc").Offset(offset).Limit(q.PerPage).Find(&items).Error; err != nil {
		return []model.Fit{}, 0, err
	}
	return items, total, nil
}

func (r *FitGormRepository) FindByID(ctx context.Context, id int64) (model.Fit, error) {
	var f model.Fit
	err := r.db.WithContext(ctx).First(&f, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Fit{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Fit{}, err
	}
	return f, nil
}

func (r *FitGormRepository) Create(ctx context.Context, f model.Fit) (model.Fit, error) {
	if err := r.db.WithContext(ctx).Create(&f).Error; err != nil {
		return model.Fit{}, err
	}
	return f, nil
}

func (r *FitGormRepository) Update(ctx context.Context, f model.Fit) error {
	res := r.db.WithContext(ctx).Model(&model.Fit{}).Where("id = ?", f.ID).Updates(map[string]interface{}{
		"name":       f.Name,
		"sort_order": f.SortOrder,
		"is_active":  f.IsActive,
	})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

func (r *FitGormRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&model.Fit{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}
