package repository

import (
	"context"

	"backoffice/internal/domain/model"
)

// 店舗×バリアントの在庫行
type StoreInventoryRepository interface {
	Find(ctx context.Context, storeID int64, variantID int64) (model.StoreInventory, error)
	ListByVariant(ctx context.Context, variantID int64) ([]model.StoreInventory, error)
	Upsert(ctx context.Context, si model.StoreInventory) (model.StoreInventory, error)
}

// 在庫台帳。追記のみでUpdate/Deleteは約束しない。
type StockMovementRepository interface {
	Create(ctx context.Context, m model.StockMovement) (model.StockMovement, error)
	ListByVariant(ctx context.Context, variantID int64, page int, perPage int) ([]model.StockMovement, int64, error)
	ListByProduct(ctx context.Context, productID int64, page int, perPage int) ([]model.StockMovement, int64, error)
}
