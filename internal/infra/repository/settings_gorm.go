package repository

import (
	"context"
	"errors"
	"strings"

	"backoffice/internal/domain/model"
	repo "backoffice/internal/repository"

	"gorm.io/gorm"
)

type StoreGormRepository struct {
	db *gorm.DB
}

// DI
func NewStoreGormRepository(db *gorm.DB) *StoreGormRepository {
	return &StoreGormRepository{db: db}
}

func (r *StoreGormRepository) List(ctx context.Context, q repo.ListQuery) ([]model.Store, int64, error) {
	var stores []model.Store
	var total int64

	tx := r.db.WithContext(ctx).Model(&model.Store{})

	// 名前またはコードで検索
	if s := strings.TrimSpace(q.Search); s != "" {
		like := "%" + s + "%"
		tx = tx.Where("name LIKE ? OR code LIKE ?", like, like)
	}
	if q.IsActive != nil {
		tx = tx.Where("is_active = ?", *q.IsActive)
	}

	if err := tx.Count(&total).Error; err != nil {
		return []model.Store{}, 0, err
	}

	offset := (q.Page - 1) * q.PerPage
	if err := tx.Order("name asc").Offset(offset).Limit(q.PerPage).Find(&stores).Error; err != nil {
		return []model.Store{}, 0, err
	}
	return stores, total, nil
}

func (r *StoreGormRepository) FindByID(ctx context.Context, id int64) (model.Store, error) {
	var s model.Store
	err := r.db.WithContext(ctx).First(&s, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Store{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Store{}, err
	}
	return s, nil
}

func (r *StoreGormRepository) Create(ctx context.Context, s model.Store) (model.Store, error) {
	if err := r.db.WithContext(ctx).Create(&s).Error; err != nil {
		return model.Store{}, err
	}
	return s, nil
}

func (r *StoreGormRepository) Update(ctx context.Context, s model.Store) error {
	res := r.db.WithContext(ctx).Model(&model.Store{}).Where("id = ?", s.ID).Updates(map[string]interface{}{
		"name":       s.Name,
		"code":       s.Code,
		"address":    s.Address,
		"phone":      s.Phone,
		"email":      s.Email,
		"is_active":  s.IsActive,
		"is_default": s.IsDefault,
	})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

func (r *StoreGormRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&model.Store{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

func (r *StoreGormRepository) CodeExists(ctx context.Context, code string, excludeID int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Store{}).
		Where("code = ? AND id <> ?", code, excludeID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// 自分以外のdefaultを落とす
func (r *StoreGormRepository) ClearDefaultExcept(ctx context.Context, excludeID int64) error {
	return r.db.WithContext(ctx).Model(&model.Store{}).
		Where("id <> ? AND is_default = ?", excludeID, true).
		Update("is_default", false).Error
}

func (r *StoreGormRepository) CountDefault(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Store{}).
		Where("is_default = ?", true).
		Count(&count).Error
	return count, err
}

type TaxClassGormRepository struct {
	db *gorm.DB
}

// DI
func NewTaxClassGormRepository(db *gorm.DB) *TaxClassGormRepository {
	return &TaxClassGormRepository{db: db}
}

func (r *TaxClassGormRepository) List(ctx context.Context, q repo.ListQuery) ([]model.TaxClass, int64, error) {
	var taxClasses []model.TaxClass
	var total int64

	tx := r.db.WithContext(ctx).Model(&model.TaxClass{})

	if s := strings.TrimSpace(q.Search); s != "" {
		tx = tx.Where("name LIKE ?", "%"+s+"%")
	}

	if err := tx.Count(&total).Error; err != nil {
		return []model.TaxClass{}, 0, err
	}

	offset := (q.Page - 1) * q.PerPage
	if err := tx.Order("name asc").Offset(offset).Limit(q.PerPage).Find(&taxClasses).Error; err != nil {
		return []model.TaxClass{}, 0, err
	}
	return taxClasses, total, nil
}

func (r *TaxClassGormRepository) FindByID(ctx context.Context, id int64) (model.TaxClass, error) {
	var t model.TaxClass
	err := r.db.WithContext(ctx).First(&t, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.TaxClass{}, repo.ErrNotFound
	}
	if err != nil {
		return model.TaxClass{}, err
	}
	return t, nil
}

func (r *TaxClassGormRepository) Create(ctx context.Context, t model.TaxClass) (model.TaxClass, error) {
	if err := r.db.WithContext(ctx).Create(&t).Error; err != nil {
		return model.TaxClass{}, err
	}
	return t, nil
}

func (r *TaxClassGormRepository) Update(ctx context.Context, t model.TaxClass) error {
	res := r.db.WithContext(ctx).Model(&model.TaxClass{}).Where("id = ?", t.ID).Updates(map[string]interface{}{
		"name":       t.Name,
		"rate":       t.Rate,
		"is_default": t.IsDefault,
	})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

func (r *TaxClassGormRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&model.TaxClass{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

func (r *TaxClassGormRepository) ClearDefaultExcept(ctx context.Context, excludeID int64) error {
	return r.db.WithContext(ctx).Model(&model.TaxClass{}).
		Where("id <> ? AND is_default = ?", excludeID, true).
		Update("is_default", false).Error
}

func (r *TaxClassGormRepository) CountDefault(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.TaxClass{}).
		Where("is_default = ?", true).
		Count(&count).Error
	return count, err
}
