package middleware_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"backoffice/internal/auth"
	"backoffice/internal/authz"
	"backoffice/internal/domain/model"
	"backoffice/internal/infra/db"
	infraRepo "backoffice/internal/infra/repository"
	"backoffice/internal/middleware"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	gormDB, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.Migrate(gormDB))
	return gormDB
}

func seedUser(t *testing.T, gormDB *gorm.DB, role model.Role, active bool) model.User {
	t.Helper()
	user := model.User{
		Name:         "tester",
		Email:        string(role) + "@example.com",
		PasswordHash: "x",
		Role:         role,
		IsActive:     active,
	}
	require.NoError(t, gormDB.Create(&user).Error)
	return user
}

func doRequest(e *echo.Echo, cookie *http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestAdminGuard(t *testing.T) {
	gormDB := newTestDB(t)
	userRepo := infraRepo.NewUserGormRepository(gormDB)
	tokens := auth.NewTokenIssuer("test-secret")

	e := echo.New()
	e.GET("/protected", func(c echo.Context) error {
		user, ok := middleware.AdminUser(c)
		require.True(t, ok)
		return c.JSON(http.StatusOK, echo.Map{"id": user.ID})
	}, middleware.AdminGuard(tokens, userRepo))

	t.Run("no cookie", func(t *testing.T) {
		rec := doRequest(e, nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("garbage token", func(t *testing.T) {
		rec := doRequest(e, &http.Cookie{Name: auth.CookieAdminSession, Value: "garbage"})
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("valid session", func(t *testing.T) {
		user := seedUser(t, gormDB, model.RoleAdmin, true)
		token, _, err := tokens.Issue(user.ID, auth.GuardAdmin)
		require.NoError(t, err)

		rec := doRequest(e, &http.Cookie{Name: auth.CookieAdminSession, Value: token})
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("inactive user", func(t *testing.T) {
		user := seedUser(t, gormDB, model.RoleStaff, false)
		token, _, err := tokens.Issue(user.ID, auth.GuardAdmin)
		require.NoError(t, err)

		rec := doRequest(e, &http.Cookie{Name: auth.CookieAdminSession, Value: token})
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("customer token rejected", func(t *testing.T) {
		user := seedUser(t, gormDB, model.RoleTailor, true)
		token, _, err := tokens.Issue(user.ID, auth.GuardCustomer)
		require.NoError(t, err)

		rec := doRequest(e, &http.Cookie{Name: auth.CookieAdminSession, Value: token})
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestRequirePermission(t *testing.T) {
	gormDB := newTestDB(t)
	userRepo := infraRepo.NewUserGormRepository(gormDB)
	tokens := auth.NewTokenIssuer("test-secret")
	svc := authz.NewService()

	e := echo.New()
	e.GET("/protected", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	},
		middleware.AdminGuard(tokens, userRepo),
		middleware.RequirePermission(svc, "delete-products"),
	)

	staff := seedUser(t, gormDB, model.RoleStaff, true)
	admin := seedUser(t, gormDB, model.RoleAdmin, true)

	staffToken, _, err := tokens.Issue(staff.ID, auth.GuardAdmin)
	require.NoError(t, err)
	adminToken, _, err := tokens.Issue(admin.ID, auth.GuardAdmin)
	require.NoError(t, err)

	rec := doRequest(e, &http.Cookie{Name: auth.CookieAdminSession, Value: staffToken})
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = doRequest(e, &http.Cookie{Name: auth.CookieAdminSession, Value: adminToken})
	assert.Equal(t, http.StatusOK, rec.Code)
}
