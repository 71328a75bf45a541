package repository

import (
	"context"

	"backoffice/internal/domain/model"
)

type UserListQuery struct {
	Page    int
	PerPage int
	Role    string
	Search  string
}

// 管理ユーザーの永続化
type UserRepository interface {
	List(ctx context.Context, q UserListQuery) ([]model.User, int64, error)
	FindByID(ctx context.Context, id int64) (model.User, error)
	FindByEmail(ctx context.Context, email string) (model.User, error)
	Create(ctx context.Context, u model.User) (model.User, error)
	Update(ctx context.Context, u model.User) error
	Delete(ctx context.Context, id int64) error
	EmailExists(ctx context.Context, email string, excludeID int64) (bool, error)
	TouchLastLogin(ctx context.Context, id int64) error
}

// 顧客の永続化（customer guard用）
type CustomerRepository interface {
	FindByID(ctx context.Context, id int64) (model.Customer, error)
	FindByEmail(ctx context.Context, email string) (model.Customer, error)
	Create(ctx context.Context, c model.Customer) (model.Customer, error)
	EmailExists(ctx context.Context, email string) (bool, error)
}
