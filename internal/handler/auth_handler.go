package handler

import (
	"net/http"
	"time"

	"backoffice/internal/auth"
	"backoffice/internal/middleware"
	"backoffice/internal/usecase"

	"github.com/labstack/echo/v4"
)

type AuthHandler struct {
	uc           *usecase.AuthUsecase
	cookieSecure bool
}

// DI
func NewAuthHandler(uc *usecase.AuthUsecase, cookieSecure bool) *AuthHandler {
	return &AuthHandler{uc: uc, cookieSecure: cookieSecure}
}

// HttpOnly cookieでセッションを渡す。JSからは触れない。
func (h *AuthHandler) sessionCookie(name string, token string, expires time.Time) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    token,
		Path:     "/",
		Expires:  expires,
		HttpOnly: true,
		Secure:   h.cookieSecure,
		SameSite: http.SameSiteLaxMode,
	}
}

func (h *AuthHandler) clearCookie(name string) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.cookieSecure,
		SameSite: http.SameSiteLaxMode,
	}
}

// POST /api/admin/login
func (h *AuthHandler) AdminLogin(c echo.Context) error {
	var req usecase.LoginInput
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Message: "invalid body"})
	}

	out, err := h.uc.AdminLogin(c.Request().Context(), req)
	if err != nil {
		return writeError(c, err)
	}

	c.SetCookie(h.sessionCookie(auth.CookieAdminSession, out.Session.Token, out.Session.ExpiresAt))

	return c.JSON(http.StatusOK, echo.Map{
		"message": "Logged in successfully.",
		"user":    out.User,
	})
}

// POST /api/admin/logout
func (h *AuthHandler) AdminLogout(c echo.Context) error {
	c.SetCookie(h.clearCookie(auth.CookieAdminSession))
	return c.JSON(http.StatusOK, MessageResponse{Message: "Logged out successfully."})
}

// GET /api/admin/me
func (h *AuthHandler) AdminMe(c echo.Context) error {
	principal, ok := middleware.AdminUser(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Message: "Unauthenticated."})
	}

	user, err := h.uc.AdminMe(c.Request().Context(), principal.ID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"user": user})
}

// POST /api/customer/login
func (h *AuthHandler) CustomerLogin(c echo.Context) error {
	var req usecase.LoginInput
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Message: "invalid body"})
	}

	out, err := h.uc.CustomerLogin(c.Request().Context(), req)
	if err != nil {
		return writeError(c, err)
	}

	c.SetCookie(h.sessionCookie(auth.CookieCustomerSession, out.Session.Token, out.Session.ExpiresAt))

	return c.JSON(http.StatusOK, echo.Map{
		"message":  "Logged in successfully.",
		"customer": out.Customer,
	})
}

// POST /api/customer/register
func (h *AuthHandler) CustomerRegister(c echo.Context) error {
	var req usecase.RegisterInput
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Message: "invalid body"})
	}

	out, err := h.uc.CustomerRegister(c.Request().Context(), req)
	if err != nil {
		return writeError(c, err)
	}

	c.SetCookie(h.sessionCookie(auth.CookieCustomerSession, out.Session.Token, out.Session.ExpiresAt))

	return c.JSON(http.StatusCreated, echo.Map{
		"message":  "Registered successfully.",
		"customer": out.Customer,
	})
}

// POST /api/customer/logout
func (h *AuthHandler) CustomerLogout(c echo.Context) error {
	c.SetCookie(h.clearCookie(auth.CookieCustomerSession))
	return c.JSON(http.StatusOK, MessageResponse{Message: "Logged out successfully."})
}

// GET /api/customer/me
func (h *AuthHandler) CustomerMe(c echo.Context) error {
	principal, ok := middleware.CustomerPrincipal(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Message: "Unauthenticated."})
	}

	customer, err := h.uc.CustomerMe(c.Request().Context(), principal.ID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"customer": customer})
}
