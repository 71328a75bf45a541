package repository

import (
	"context"

	"backoffice/internal/domain/model"
)

type StoreRepository interface {
	List(ctx context.Context, q ListQuery) ([]model.Store, int64, error)
	FindByID(ctx context.Context, id int64) (model.Store, error)
	Create(ctx context.Context, s model.Store) (model.Store, error)
	Update(ctx context.Context, s model.Store) error
	Delete(ctx context.Context, id int64) error
	CodeExists(ctx context.Context, code string, excludeID int64) (bool, error)

	// is_defaultの付け替え: 自分以外のdefaultを落とす
	ClearDefaultExcept(ctx context.Context, excludeID int64) error
	CountDefault(ctx context.Context) (int64, error)
}

type TaxClassRepository interface {
	List(ctx context.Context, q ListQuery) ([]model.TaxClass, int64, error)
	FindByID(ctx context.Context, id int64) (model.TaxClass, error)
	Create(ctx context.Context, t model.TaxClass) (model.TaxClass, error)
	Update(ctx context.Context, t model.TaxClass) error
	Delete(ctx context.Context, id int64) error

	ClearDefaultExcept(ctx context.Context, excludeID int64) error
	CountDefault(ctx context.Context) (int64, error)
}
