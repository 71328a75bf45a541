package middleware

import (
	"net/http"

	"backoffice/internal/authz"

	"github.com/labstack/echo/v4"
)

// ロール名または許可名のいずれか1つを満たせば通す（OR）。
// AdminGuardの後段に置くこと。
func RequirePermission(svc *authz.Service, required ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, ok := AdminUser(c)
			if !ok {
				return c.JSON(http.StatusUnauthorized, errorJSON("Unauthenticated."))
			}

			if !svc.Authorize(&user, required...) {
				return c.JSON(http.StatusForbidden, errorJSON("This action is unauthorized."))
			}

			return next(c)
		}
	}
}
