package repository

import (
	"context"

	"backoffice/internal/domain/model"
)

// バリアントの永続化。同期処理はusecase側が組み立てる。
type VariantRepository interface {
	ListByProduct(ctx context.Context, productID int64) ([]model.ProductVariant, error)
	FindByID(ctx context.Context, id int64) (model.ProductVariant, error)
	CountByProduct(ctx context.Context, productID int64) (int64, error)

	Create(ctx context.Context, v model.ProductVariant) (model.ProductVariant, error)
	Update(ctx context.Context, v model.ProductVariant) error
	Delete(ctx context.Context, id int64) error

	SKUExists(ctx context.Context, sku string, excludeID int64) (bool, error)
	SetStock(ctx context.Context, id int64, quantity int) error
}

// 商品画像の永続化。バリアント画像は全消し→作り直しで同期する。
type ImageRepository interface {
	Create(ctx context.Context, img model.ProductImage) (model.ProductImage, error)
	DeleteByVariant(ctx context.Context, variantID int64) error
	DeleteProductLevel(ctx context.Context, productID int64) error
}
