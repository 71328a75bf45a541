package usecase_test

import (
	"context"
	"net/http"
	"testing"

	"backoffice/internal/auth"
	"backoffice/internal/domain/model"
	infraRepo "backoffice/internal/infra/repository"
	"backoffice/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// bcryptを回すとテストが遅くなるので平文で持つ
type plainHasher struct{}

func (plainHasher) Hash(plain string) (string, error) {
	return "hashed:" + plain, nil
}

func (plainHasher) Compare(hash string, plain string) error {
	if hash != "hashed:"+plain {
		return auth.ErrInvalidToken
	}
	return nil
}

func newUserUsecase(t *testing.T) (*usecase.UserUsecase, *gorm.DB) {
	t.Helper()
	gormDB := newTestDB(t)
	return usecase.NewUserUsecase(infraRepo.NewUserGormRepository(gormDB), plainHasher{}), gormDB
}

func seedUser(t *testing.T, gormDB *gorm.DB, name string, role model.Role) model.User {
	t.Helper()
	user := model.User{
		Name:         name,
		Email:        name + "@example.com",
		PasswordHash: "hashed:password",
		Role:         role,
		IsActive:     true,
	}
	require.NoError(t, gormDB.Create(&user).Error)
	return user
}

func TestUserCreate_DefaultsToStaff(t *testing.T) {
	uc, gormDB := newUserUsecase(t)
	actor := seedUser(t, gormDB, "boss", model.RoleSuperAdmin)

	created, err := uc.Create(context.Background(), actor, usecase.UserInput{
		Name:     "New Staff",
		Email:    "staff@example.com",
		Password: ptr("password123"),
	})
	require.NoError(t, err)
	assert.Equal(t, model.RoleStaff, created.Role)
	assert.True(t, created.IsActive)
}

func TestUserCreate_SuperAdminNeedsSuperAdmin(t *testing.T) {
	uc, gormDB := newUserUsecase(t)
	admin := seedUser(t, gormDB, "admin", model.RoleAdmin)

	_, err := uc.Create(context.Background(), admin, usecase.UserInput{
		Name:     "Wannabe",
		Email:    "wannabe@example.com",
		Password: ptr("password123"),
		Role:     ptr("super_admin"),
	})
	he, ok := usecase.AsHTTPError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusForbidden, he.Status)
}

func TestUserUpdate_OwnRoleChangeRejected(t *testing.T) {
	uc, gormDB := newUserUsecase(t)
	actor := seedUser(t, gormDB, "boss", model.RoleSuperAdmin)

	_, err := uc.Update(context.Background(), actor, actor.ID, usecase.UserInput{
		Name:  actor.Name,
		Email: actor.Email,
		Role:  ptr("staff"),
	})
	he, ok := usecase.AsHTTPError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusForbidden, he.Status)
}

func TestUserUpdate_SameRoleAllowedOnSelf(t *testing.T) {
	uc, gormDB := newUserUsecase(t)
	actor := seedUser(t, gormDB, "boss", model.RoleSuperAdmin)

	// ロールを変えない自己更新は通る
	updated, err := uc.Update(context.Background(), actor, actor.ID, usecase.UserInput{
		Name:  "Renamed",
		Email: actor.Email,
		Role:  ptr("super_admin"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", updated.Name)
}

func TestUserDelete_SelfRejected(t *testing.T) {
	uc, gormDB := newUserUsecase(t)
	actor := seedUser(t, gormDB, "boss", model.RoleSuperAdmin)

	err := uc.Delete(context.Background(), actor, actor.ID)
	he, ok := usecase.AsHTTPError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusForbidden, he.Status)
}

func TestUserDelete_SuperAdminProtected(t *testing.T) {
	uc, gormDB := newUserUsecase(t)
	admin := seedUser(t, gormDB, "admin", model.RoleAdmin)
	boss := seedUser(t, gormDB, "boss", model.RoleSuperAdmin)

	err := uc.Delete(context.Background(), admin, boss.ID)
	he, ok := usecase.AsHTTPError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusForbidden, he.Status)

	// super_admin同士なら消せる
	other := seedUser(t, gormDB, "other", model.RoleSuperAdmin)
	require.NoError(t, uc.Delete(context.Background(), boss, other.ID))
}

func TestUserCreate_DuplicateEmail(t *testing.T) {
	uc, gormDB := newUserUsecase(t)
	actor := seedUser(t, gormDB, "boss", model.RoleSuperAdmin)

	_, err := uc.Create(context.Background(), actor, usecase.UserInput{
		Name:     "Dup",
		Email:    "boss@example.com",
		Password: ptr("password123"),
	})
	ve, ok := usecase.AsValidationError(err)
	require.True(t, ok)
	assert.Equal(t, "The email has already been taken.", ve.Fields["email"])
}
