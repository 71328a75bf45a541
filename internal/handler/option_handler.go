package handler

import (
	"net/http"

	"backoffice/internal/usecase"

	"github.com/labstack/echo/v4"
)

// Size/Color/Fabric/Fitの管理API。形が同じなので1ファイルにまとめる。

type SizeHandler struct {
	uc *usecase.SizeUsecase
}

func NewSizeHandler(uc *usecase.SizeUsecase) *SizeHandler {
	return &SizeHandler{uc: uc}
}

func (h *SizeHandler) List(c echo.Context) error {
	in := catalogListInput(c)
	items, total, err := h.uc.List(c.Request().Context(), in)
	if err != nil {
		return writeError(c, err)
	}
	return listJSON(c, items, total, in.Page, in.PerPage)
}

func (h *SizeHandler) Create(c echo.Context) error {
	var req usecase.OptionInput
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Message: "invalid body"})
	}

	size, err := h.uc.Create(c.Request().Context(), req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, echo.Map{
		"message": "Size created successfully.",
		"size":    size,
	})
}

func (h *SizeHandler) Update(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Message: "invalid id"})
	}

	var req usecase.OptionInput
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Message: "invalid body"})
	}

	size, err := h.uc.Update(c.Request().Context(), id, req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"message": "Size updated successfully.",
		"size":    size,
	})
}

func (h *SizeHandler) Delete(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Message: "invalid id"})
	}

	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, MessageResponse{Message: "Size deleted successfully."})
}

type ColorHandler struct {
	uc *usecase.ColorUsecase
}

func NewColorHandler(uc *usecase.ColorUsecase) *ColorHandler {
	return &ColorHandler{uc: uc}
}

func (h *ColorHandler) List(c echo.Context) error {
	in := catalogListInput(c)
	items, total, err := h.uc.List(c.Request().Context(), in)
	if err != nil {
		return writeError(c, err)
	}
	return listJSON(c, items, total, in.Page, in.PerPage)
}

func (h *ColorHandler) Create(c echo.Context) error {
	var req usecase.OptionInput
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Message: "invalid body"})
	}

	color, err := h.uc.Create(c.Request().Context(), req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, echo.Map{
		"message": "Color created successfully.",
		"color":   color,
	})
}

func (h *ColorHandler) Update(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Message: "invalid id"})
	}

	var req usecase.OptionInput
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Message: "invalid body"})
	}

	color, err := h.uc.Update(c.Request().Context(), id, req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"message": "Color updated successfully.",
		"color":   color,
	})
}

func (h *ColorHandler) Delete(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Message: "invalid id"})
	}

	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, MessageResponse{Message: "Color deleted successfully."})
}

type FabricHandler struct {
	uc *usecase.FabricUsecase
}

func NewFabricHandler(uc *usecase.FabricUsecase) *FabricHandler {
	return &FabricHandler{uc: uc}
}

func (h *FabricHandler) List(c echo.Context) error {
	in := catalogListInput(c)
	items, total, err := h.uc.List(c.Request().Context(), in)
	if err != nil {
		return writeError(c, err)
	}
	return listJSON(c, items, total, in.Page, in.PerPage)
}

func (h *FabricHandler) Create(c echo.Context) error {
	var req usecase.OptionInput
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Message: "invalid body"})
	}

	fabric, err := h.uc.Create(c.Request().Context(), req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, echo.Map{
		"message": "Fabric created successfully.",
		"fabric":  fabric,
	})
}

func (h *FabricHandler) Update(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Message: "invalid id"})
	}

	var req usecase.OptionInput
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Message: "invalid body"})
	}

	fabric, err := h.uc.Update(c.Request().Context(), id, req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"message": "Fabric updated successfully.",
		"fabric":  fabric,
	})
}

func (h *FabricHandler) Delete(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Message: "invalid id"})
	}

	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, MessageResponse{Message: "Fabric deleted successfully."})
}

type FitHandler struct {
	uc *usecase.FitUsecase
}

func NewFitHandler(uc *usecase.FitUsecase) *FitHandler {
	return &FitHandler{uc: uc}
}

func (h *FitHandler) List(c echo.Context) error {
	in := catalogListInput(c)
	items, total, err := h.uc.List(c.Request().Context(), in)
	if err != nil {
		return writeError(c, err)
	}
	return listJSON(c, items, total, in.Page, in.PerPage)
}

func (h *FitHandler) Create(c echo.Context) error {
	var req usecase.OptionInput
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Message: "invalid body"})
	}

	fit, err := h.uc.Create(c.Request().Context(), req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, echo.Map{
		"message": "Fit created successfully.",
		"fit":     fit,
	})
}

func (h *FitHandler) Update(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Message: "invalid id"})
	}

	var req usecase.OptionInput
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Message: "invalid body"})
	}

	fit, err := h.uc.Update(c.Request().Context(), id, req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"message": "Fit updated successfully.",
		"fit":     fit,
	})
}

func (h *FitHandler) Delete(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Message: "invalid id"})
	}

	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, MessageResponse{Message: "Fit deleted successfully."})
}
