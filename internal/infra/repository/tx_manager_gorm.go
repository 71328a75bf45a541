package repository

import (
	"context"

	repo "backoffice/internal/repository"

	"gorm.io/gorm"
)

type txReposGorm struct {
	products       repo.ProductRepository
	variants       repo.VariantRepository
	images         repo.ImageRepository
	stores         repo.StoreRepository
	taxClasses     repo.TaxClassRepository
	storeInventory repo.StoreInventoryRepository
	stockMovements repo.StockMovementRepository
}

func (r *txReposGorm) Products() repo.ProductRepository              { return r.products }
func (r *txReposGorm) Variants() repo.VariantRepository              { return r.variants }
func (r *txReposGorm) Images() repo.ImageRepository                  { return r.images }
func (r *txReposGorm) Stores() repo.StoreRepository                  { return r.stores }
func (r *txReposGorm) TaxClasses() repo.TaxClassRepository           { return r.taxClasses }
func (r *txReposGorm) StoreInventory() repo.StoreInventoryRepository { return r.storeInventory }
func (r *txReposGorm) StockMovements() repo.StockMovementRepository  { return r.stockMovements }

type TxManagerGorm struct {
	db *gorm.DB
}

func NewTxManagerGorm(db *gorm.DB) *TxManagerGorm {
	return &TxManagerGorm{db: db}
}

func (tm *TxManagerGorm) WithinTx(ctx context.Context, fn func(r repo.TxRepos) error) error {
	return tm.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		//repoはtxを持ったDBで作り直す
		r := &txReposGorm{
			products:       NewProductGormRepository(tx),
			variants:       NewVariantGormRepository(tx),
			images:         NewImageGormRepository(tx),
			stores:         NewStoreGormRepository(tx),
			taxClasses:     NewTaxClassGormRepository(tx),
			storeInventory: NewStoreInventoryGormRepository(tx),
			stockMovements: NewStockMovementGormRepository(tx),
		}
		return fn(r)
	})
}
