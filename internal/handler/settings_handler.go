package handler

import (
	"net/http"

	"backoffice/internal/middleware"
	"backoffice/internal/usecase"

	"github.com/labstack/echo/v4"
)

// 店舗・税区分・店舗在庫の管理API

type StoreHandler struct {
	storeUC     *usecase.StoreUsecase
	inventoryUC *usecase.InventoryUsecase
}

func NewStoreHandler(storeUC *usecase.StoreUsecase, inventoryUC *usecase.InventoryUsecase) *StoreHandler {
	return &StoreHandler{storeUC: storeUC, inventoryUC: inventoryUC}
}

func (h *StoreHandler) List(c echo.Context) error {
	in := catalogListInput(c)
	items, total, err := h.storeUC.List(c.Request().Context(), in)
	if err != nil {
		return writeError(c, err)
	}
	return listJSON(c, items, total, in.Page, in.PerPage)
}

func (h *StoreHandler) Get(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Message: "invalid id"})
	}

	store, err := h.storeUC.Get(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"store": store})
}

func (h *StoreHandler) Create(c echo.Context) error {
	var req usecase.StoreInput
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Message: "invalid body"})
	}

	store, err := h.storeUC.Create(c.Request().Context(), req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, echo.Map{
		"message": "Store created successfully.",
		"store":   store,
	})
}

func (h *StoreHandler) Update(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Message: "invalid id"})
	}

	var req usecase.StoreInput
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Message: "invalid body"})
	}

	store, err := h.storeUC.Update(c.Request().Context(), id, req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"message": "Store updated successfully.",
		"store":   store,
	})
}

func (h *StoreHandler) Delete(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Message: "invalid id"})
	}

	if err := h.storeUC.Delete(c.Request().Context(), id); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, MessageResponse{Message: "Store deleted successfully."})
}

// PUT /stores/:id/inventory/:variantId
func (h *StoreHandler) AdjustInventory(c echo.Context) error {
	storeID, err := paramID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Message: "invalid id"})
	}
	variantID, err := paramID(c, "variantId")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Message: "invalid id"})
	}

	var req usecase.AdjustInventoryInput
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Message: "invalid body"})
	}

	// 台帳に操作者を残す
	if user, ok := middleware.AdminUser(c); ok {
		req.UserID = &user.ID
	}

	out, err := h.inventoryUC.Adjust(c.Request().Context(), storeID, variantID, req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"message":   "Inventory updated successfully.",
		"inventory": out.Inventory,
		"movement":  out.Movement,
	})
}

type TaxClassHandler struct {
	uc *usecase.TaxClassUsecase
}

func NewTaxClassHandler(uc *usecase.TaxClassUsecase) *TaxClassHandler {
	return &TaxClassHandler{uc: uc}
}

func (h *TaxClassHandler) List(c echo.Context) error {
	in := catalogListInput(c)
	items, total, err := h.uc.List(c.Request().Context(), in)
	if err != nil {
		return writeError(c, err)
	}
	return listJSON(c, items, total, in.Page, in.PerPage)
}

func (h *TaxClassHandler) Get(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Message: "invalid id"})
	}

	taxClass, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"tax_class": taxClass})
}

func (h *TaxClassHandler) Create(c echo.Context) error {
	var req usecase.TaxClassInput
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Message: "invalid body"})
	}

	taxClass, err := h.uc.Create(c.Request().Context(), req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, echo.Map{
		"message":   "Tax class created successfully.",
		"tax_class": taxClass,
	})
}

func (h *TaxClassHandler) Update(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Message: "invalid id"})
	}

	var req usecase.TaxClassInput
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Message: "invalid body"})
	}

	taxClass, err := h.uc.Update(c.Request().Context(), id, req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"message":   "Tax class updated successfully.",
		"tax_class": taxClass,
	})
}

func (h *TaxClassHandler) Delete(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Message: "invalid id"})
	}

	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, MessageResponse{Message: "Tax class deleted successfully."})
}

// バリアント在庫の参照API

type InventoryHandler struct {
	uc *usecase.InventoryUsecase
}

func NewInventoryHandler(uc *usecase.InventoryUsecase) *InventoryHandler {
	return &InventoryHandler{uc: uc}
}

// GET /variants/:id/inventory
func (h *InventoryHandler) ListByVariant(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Message: "invalid id"})
	}

	rows, err := h.uc.ListByVariant(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"inventory": rows})
}

// GET /variants/:id/movements
func (h *InventoryHandler) ListMovements(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Message: "invalid id"})
	}

	page := queryInt(c, "page", 1)
	perPage := queryInt(c, "per_page", 15)

	movements, total, err := h.uc.ListMovements(c.Request().Context(), id, page, perPage)
	if err != nil {
		return writeError(c, err)
	}
	return listJSON(c, movements, total, page, perPage)
}
