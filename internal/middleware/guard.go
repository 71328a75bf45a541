package middleware

import (
	"net/http"

	"backoffice/internal/auth"
	"backoffice/internal/domain/model"
	repo "backoffice/internal/repository"

	"github.com/labstack/echo/v4"
)

const (
	CtxAdminUserKey   = "admin_user"    // model.User
	CtxCustomerKey    = "customer"      // model.Customer
	CtxAdminUserIDKey = "admin_user_id" // int64
)

// HttpOnly cookieのセッションを検証してプリンシパルをcontextへ載せる。
// 停止済みユーザーは401。
func AdminGuard(tokens *auth.TokenIssuer, users repo.UserRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(auth.CookieAdminSession)
			if err != nil || cookie.Value == "" {
				return c.JSON(http.StatusUnauthorized, errorJSON("Unauthenticated."))
			}

			userID, err := tokens.Parse(cookie.Value, auth.GuardAdmin)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, errorJSON("Unauthenticated."))
			}

			user, err := users.FindByID(c.Request().Context(), userID)
			if err != nil || !user.IsActive {
				return c.JSON(http.StatusUnauthorized, errorJSON("Unauthenticated."))
			}

			c.Set(CtxAdminUserKey, user)
			c.Set(CtxAdminUserIDKey, user.ID)
			return next(c)
		}
	}
}

func CustomerGuard(tokens *auth.TokenIssuer, customers repo.CustomerRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(auth.CookieCustomerSession)
			if err != nil || cookie.Value == "" {
				return c.JSON(http.StatusUnauthorized, errorJSON("Unauthenticated."))
			}

			customerID, err := tokens.Parse(cookie.Value, auth.GuardCustomer)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, errorJSON("Unauthenticated."))
			}

			customer, err := customers.FindByID(c.Request().Context(), customerID)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, errorJSON("Unauthenticated."))
			}

			c.Set(CtxCustomerKey, customer)
			return next(c)
		}
	}
}

// contextからadminプリンシパルを取り出す（guardの後段で使う）
func AdminUser(c echo.Context) (model.User, bool) {
	user, ok := c.Get(CtxAdminUserKey).(model.User)
	return user, ok
}

func CustomerPrincipal(c echo.Context) (model.Customer, bool) {
	customer, ok := c.Get(CtxCustomerKey).(model.Customer)
	return customer, ok
}

type errorResponse struct {
	Message string `json:"message"`
}

func errorJSON(msg string) errorResponse {
	return errorResponse{Message: msg}
}
