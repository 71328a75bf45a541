package handler

import (
	"net/http"
	"strconv"

	"backoffice/internal/usecase"

	"github.com/labstack/echo/v4"
)

type ProductHandler struct {
	uc *usecase.ProductUsecase
}

// DI
func NewProductHandler(uc *usecase.ProductUsecase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

func paramID(c echo.Context, name string) (int64, error) {
	return strconv.ParseInt(c.Param(name), 10, 64)
}

func queryInt(c echo.Context, name string, def int) int {
	v := c.QueryParam(name)
	if v == "" {
		return def
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return i
}

func queryInt64Ptr(c echo.Context, name string) *int64 {
	v := c.QueryParam(name)
	if v == "" {
		return nil
	}
	i, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return nil
	}
	return &i
}

func queryBoolPtr(c echo.Context, name string) *bool {
	v := c.QueryParam(name)
	if v == "" {
		return nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return nil
	}
	return &b
}

// GET /products
func (h *ProductHandler) List(c echo.Context) error {
	out, err := h.uc.List(c.Request().Context(), usecase.ListProductsInput{
		Page:       queryInt(c, "page", 1),
		PerPage:    queryInt(c, "per_page", 15),
		Search:     c.QueryParam("search"),
		CategoryID: queryInt64Ptr(c, "category_id"),
		BrandID:    queryInt64Ptr(c, "brand_id"),
		Status:     c.QueryParam("status"),
		IsActive:   queryBoolPtr(c, "is_active"),
	})
	if err != nil {
		return writeError(c, err)
	}
	return listJSON(c, out.Items, out.Total, out.Page, out.PerPage)
}

// GET /products/:id
func (h *ProductHandler) Get(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Message: "invalid id"})
	}

	p, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"product": p})
}

// POST /products
func (h *ProductHandler) Create(c echo.Context) error {
	var req usecase.ProductInput
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Message: "invalid body"})
	}

	p, err := h.uc.Create(c.Request().Context(), req)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"message": "Product created successfully.",
		"product": p,
	})
}

// PUT /products/:id
func (h *ProductHandler) Update(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Message: "invalid id"})
	}

	var req usecase.ProductInput
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Message: "invalid body"})
	}

	p, err := h.uc.Update(c.Request().Context(), id, req)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"message": "Product updated successfully.",
		"product": p,
	})
}

// DELETE /products/:id（ソフトデリート）
func (h *ProductHandler) Delete(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Message: "invalid id"})
	}

	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, MessageResponse{Message: "Product deleted successfully."})
}

// POST /products/:id/variants
func (h *ProductHandler) CreateVariant(c echo.Context) error {
	productID, err := paramID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Message: "invalid id"})
	}

	var req usecase.VariantInput
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Message: "invalid body"})
	}

	v, err := h.uc.CreateVariant(c.Request().Context(), productID, req)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"message": "Variant created successfully.",
		"variant": v,
	})
}

// PUT /products/:id/variants/:variantId
func (h *ProductHandler) UpdateVariant(c echo.Context) error {
	productID, err := paramID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Message: "invalid id"})
	}
	variantID, err := paramID(c, "variantId")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Message: "invalid id"})
	}

	var req usecase.VariantInput
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Message: "invalid body"})
	}

	v, err := h.uc.UpdateVariant(c.Request().Context(), productID, variantID, req)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"message": "Variant updated successfully.",
		"variant": v,
	})
}

// DELETE /products/:id/variants/:variantId
func (h *ProductHandler) DeleteVariant(c echo.Context) error {
	productID, err := paramID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Message: "invalid id"})
	}
	variantID, err := paramID(c, "variantId")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Message: "invalid id"})
	}

	if err := h.uc.DeleteVariant(c.Request().Context(), productID, variantID); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, MessageResponse{Message: "Variant deleted successfully."})
}

// GET /products/:id/movements
func (h *ProductHandler) ListMovements(c echo.Context) error {
	productID, err := paramID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Message: "invalid id"})
	}

	page := queryInt(c, "page", 1)
	perPage := queryInt(c, "per_page", 15)

	movements, total, err := h.uc.ListMovements(c.Request().Context(), productID, page, perPage)
	if err != nil {
		return writeError(c, err)
	}
	return listJSON(c, movements, total, page, perPage)
}
