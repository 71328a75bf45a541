package repository

import (
	"context"
	"errors"

	"backoffice/internal/domain/model"
)

var ErrNotFound = errors.New("not found")

// 一覧検索
type ProductListQuery struct {
	Page       int
	PerPage    int
	Search     string
	CategoryID *int64
	BrandID    *int64
	Status     string
	IsActive   *bool
}

// 商品の永続化（保存・取得）だけを約束。
type ProductRepository interface {
	List(ctx context.Context, q ProductListQuery) ([]model.Product, int64, error)
	FindByID(ctx context.Context, id int64) (model.Product, error)

	// 一覧・詳細で返すDTOを明示的なクエリで組み立てる（暗黙のeager loadはしない）
	FindDetail(ctx context.Context, id int64) (model.Product, error)

	Create(ctx context.Context, p model.Product) (model.Product, error)
	Update(ctx context.Context, p model.Product) error
	SoftDelete(ctx context.Context, id int64) error

	SlugExists(ctx context.Context, slug string, excludeID int64) (bool, error)

	// 中間テーブルの貼り替え
	ReplaceCategories(ctx context.Context, productID int64, categoryIDs []int64) error
	ReplaceAttributeValues(ctx context.Context, productID int64, valueIDs []int64) error
}
