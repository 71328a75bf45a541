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

func newAuthUsecase(t *testing.T) (*usecase.AuthUsecase, *gorm.DB) {
	t.Helper()
	gormDB := newTestDB(t)
	uc := usecase.NewAuthUsecase(
		infraRepo.NewUserGormRepository(gormDB),
		infraRepo.NewCustomerGormRepository(gormDB),
		plainHasher{},
		auth.NewTokenIssuer("test-secret"),
	)
	return uc, gormDB
}

func TestAdminLogin(t *testing.T) {
	uc, gormDB := newAuthUsecase(t)
	ctx := context.Background()
	seedUser(t, gormDB, "boss", model.RoleSuperAdmin)

	out, err := uc.AdminLogin(ctx, usecase.LoginInput{
		Email:    "boss@example.com",
		Password: "password",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, out.Session.Token)
	assert.Equal(t, "boss@example.com", out.User.Email)

	// last_loginが更新される
	var reloaded model.User
	require.NoError(t, gormDB.First(&reloaded, out.User.ID).Error)
	assert.NotNil(t, reloaded.LastLoginAt)
}

func TestAdminLogin_WrongPassword(t *testing.T) {
	uc, gormDB := newAuthUsecase(t)
	seedUser(t, gormDB, "boss", model.RoleSuperAdmin)

	_, err := uc.AdminLogin(context.Background(), usecase.LoginInput{
		Email:    "boss@example.com",
		Password: "wrong",
	})
	he, ok := usecase.AsHTTPError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, he.Status)
}

func TestAdminLogin_InactiveUser(t *testing.T) {
	uc, gormDB := newAuthUsecase(t)
	user := seedUser(t, gormDB, "boss", model.RoleSuperAdmin)
	require.NoError(t, gormDB.Model(&user).Update("is_active", false).Error)

	_, err := uc.AdminLogin(context.Background(), usecase.LoginInput{
		Email:    "boss@example.com",
		Password: "password",
	})
	he, ok := usecase.AsHTTPError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, he.Status)
}

func TestCustomerRegisterAndLogin(t *testing.T) {
	uc, _ := newAuthUsecase(t)
	ctx := context.Background()

	out, err := uc.CustomerRegister(ctx, usecase.RegisterInput{
		Name:                 "Jordan",
		Email:                "jordan@example.com",
		Password:             "password123",
		PasswordConfirmation: "password123",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, out.Session.Token)

	login, err := uc.CustomerLogin(ctx, usecase.LoginInput{
		Email:    "jordan@example.com",
		Password: "password123",
	})
	require.NoError(t, err)
	assert.Equal(t, out.Customer.ID, login.Customer.ID)
}

func TestCustomerRegister_Validation(t *testing.T) {
	uc, _ := newAuthUsecase(t)
	ctx := context.Background()

	_, err := uc.CustomerRegister(ctx, usecase.RegisterInput{
		Name:                 "Jordan",
		Email:                "not-an-email",
		Password:             "password123",
		PasswordConfirmation: "password123",
	})
	ve, ok := usecase.AsValidationError(err)
	require.True(t, ok)
	assert.Contains(t, ve.Fields, "email")

	_, err = uc.CustomerRegister(ctx, usecase.RegisterInput{
		Name:                 "Jordan",
		Email:                "jordan@example.com",
		Password:             "password123",
		PasswordConfirmation: "different",
	})
	ve, ok = usecase.AsValidationError(err)
	require.True(t, ok)
	assert.Contains(t, ve.Fields, "password")
}

func TestCustomerRegister_DuplicateEmail(t *testing.T) {
	uc, _ := newAuthUsecase(t)
	ctx := context.Background()

	in := usecase.RegisterInput{
		Name:                 "Jordan",
		Email:                "jordan@example.com",
		Password:             "password123",
		PasswordConfirmation: "password123",
	}
	_, err := uc.CustomerRegister(ctx, in)
	require.NoError(t, err)

	_, err = uc.CustomerRegister(ctx, in)
	ve, ok := usecase.AsValidationError(err)
	require.True(t, ok)
	assert.Equal(t, "The email has already been taken.", ve.Fields["email"])
}
