package repository

import (
	"context"

	"backoffice/internal/domain/model"
)

// Size/Color/Fabric/Fitは形が同じなので約束も同じ形で並べる。

type SizeRepository interface {
	List(ctx context.Context, q ListQuery) ([]model.Size, int64, error)
	FindByID(ctx context.Context, id int64) (model.Size, error)
	Create(ctx context.Context, s model.Size) (model.Size, error)
	Update(ctx context.Context, s model.Size) error
	Delete(ctx context.Context, id int64) error
}

type ColorRepository interface {
	List(ctx context.Context, q ListQuery) ([]model.Color, int64, error)
	FindByID(ctx context.Context, id int64) (model.Color, error)
	Create(ctx context.Context, c model.Color) (model.Color, error)
	Update(ctx context.Context, c model.Color) error
	Delete(ctx context.Context, id int64) error
}

type FabricRepository interface {
	List(ctx context.Context, q ListQuery) ([]model.Fabric, int64, error)
	FindByID(ctx context.Context, id int64) (model.Fabric, error)
	Create(ctx context.Context, f model.Fabric) (model.Fabric, error)
	Update(ctx context.Context, f model.Fabric) error
	Delete(ctx context.Context, id int64) error
}

type FitRepository interface {
	List(ctx context.Context, q ListQuery) ([]model.Fit, int64, error)
	FindByID(ctx context.Context, id int64) (model.Fit, error)
	Create(ctx context.Context, f model.Fit) (model.Fit, error)
	Update(ctx context.Context, f model.Fit) error
	Delete(ctx context.Context, id int64) error
}
