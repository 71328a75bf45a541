package handler

import (
	"net/http"

	"backoffice/internal/middleware"
	"backoffice/internal/usecase"

	"github.com/labstack/echo/v4"
)

type UserHandler struct {
	uc *usecase.UserUsecase
}

// DI
func NewUserHandler(uc *usecase.UserUsecase) *UserHandler {
	return &UserHandler{uc: uc}
}

// GET /users
func (h *UserHandler) List(c echo.Context) error {
	page := queryInt(c, "page", 1)
	perPage := queryInt(c, "per_page", 15)

	users, total, err := h.uc.List(c.Request().Context(), usecase.ListUsersInput{
		Page:    page,
		PerPage: perPage,
		Role:    c.QueryParam("role"),
		Search:  c.QueryParam("search"),
	})
	if err != nil {
		return writeError(c, err)
	}
	return listJSON(c, users, total, page, perPage)
}

// GET /users/:id
func (h *UserHandler) Get(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Message: "invalid id"})
	}

	user, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"user": user})
}

// POST /users
func (h *UserHandler) Create(c echo.Context) error {
	actor, ok := middleware.AdminUser(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Message: "Unauthenticated."})
	}

	var req usecase.UserInput
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Message: "invalid body"})
	}

	user, err := h.uc.Create(c.Request().Context(), actor, req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, echo.Map{
		"message": "User created successfully.",
		"user":    user,
	})
}

// PUT /users/:id
func (h *UserHandler) Update(c echo.Context) error {
	actor, ok := middleware.AdminUser(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Message: "Unauthenticated."})
	}

	id, err := paramID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Message: "invalid id"})
	}

	var req usecase.UserInput
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Message: "invalid body"})
	}

	user, err := h.uc.Update(c.Request().Context(), actor, id, req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"message": "User updated successfully.",
		"user":    user,
	})
}

// DELETE /users/:id
func (h *UserHandler) Delete(c echo.Context) error {
	actor, ok := middleware.AdminUser(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Message: "Unauthenticated."})
	}

	id, err := paramID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Message: "invalid id"})
	}

	if err := h.uc.Delete(c.Request().Context(), actor, id); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, MessageResponse{Message: "User deleted successfully."})
}
