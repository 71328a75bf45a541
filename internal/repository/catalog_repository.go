package repository

import (
	"context"

	"backoffice/internal/domain/model"
)

// 参照テーブル共通の一覧検索
type ListQuery struct {
	Page     int
	PerPage  int
	Search   string
	IsActive *bool
}

type CategoryRepository interface {
	List(ctx context.Context, q ListQuery) ([]model.Category, int64, error)
	FindByID(ctx context.Context, id int64) (model.Category, error)
	FindWithChildren(ctx context.Context, id int64) (model.Category, error)
	Create(ctx context.Context, c model.Category) (model.Category, error)
	Update(ctx context.Context, c model.Category) error
	Delete(ctx context.Context, id int64) error
	SlugExists(ctx context.Context, slug string, excludeID int64) (bool, error)
}

type BrandRepository interface {
	List(ctx context.Context, q ListQuery) ([]model.Brand, int64, error)
	FindByID(ctx context.Context, id int64) (model.Brand, error)
	Create(ctx context.Context, b model.Brand) (model.Brand, error)
	Update(ctx context.Context, b model.Brand) error
	Delete(ctx context.Context, id int64) error
	SlugExists(ctx context.Context, slug string, excludeID int64) (bool, error)
}

type AttributeRepository interface {
	List(ctx context.Context, q ListQuery) ([]model.Attribute, int64, error)
	FindByID(ctx context.Context, id int64) (model.Attribute, error)
	Create(ctx context.Context, a model.Attribute) (model.Attribute, error)
	Update(ctx context.Context, a model.Attribute) error
	Delete(ctx context.Context, id int64) error
	SlugExists(ctx context.Context, slug string, excludeID int64) (bool, error)

	// 値は属性が所有する（属性削除でcascade）
	AddValue(ctx context.Context, v model.AttributeValue) (model.AttributeValue, error)
	FindValue(ctx context.Context, attributeID int64, valueID int64) (model.AttributeValue, error)
	DeleteValue(ctx context.Context, attributeID int64, valueID int64) error
}
