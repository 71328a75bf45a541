package handler

import (
	"net/http"

	"backoffice/internal/usecase"

	"github.com/labstack/echo/v4"
)

type MessageResponse struct {
	Message string `json:"message"`
}

type ErrorResponse struct {
	Message string            `json:"message"`
	Errors  map[string]string `json:"errors,omitempty"`
}

// 一覧レスポンスの共通形
type ListMeta struct {
	Total    int64 `json:"total"`
	Page     int   `json:"page"`
	PerPage  int   `json:"per_page"`
	LastPage int   `json:"last_page"`
}

type ListResponse struct {
	Data interface{} `json:"data"`
	Meta ListMeta    `json:"meta"`
}

func listJSON(c echo.Context, items interface{}, total int64, page int, perPage int) error {
	lastPage := 1
	if perPage > 0 {
		lastPage = int((total + int64(perPage) - 1) / int64(perPage))
	}
	if lastPage < 1 {
		lastPage = 1
	}

	return c.JSON(http.StatusOK, ListResponse{
		Data: items,
		Meta: ListMeta{Total: total, Page: page, PerPage: perPage, LastPage: lastPage},
	})
}

// usecaseのエラーをHTTPレスポンスへ変換する
func writeError(c echo.Context, err error) error {
	if ve, ok := usecase.AsValidationError(err); ok {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Message: ve.Message,
			Errors:  ve.Fields,
		})
	}
	if he, ok := usecase.AsHTTPError(err); ok {
		return c.JSON(he.Status, ErrorResponse{Message: he.Message})
	}
	return c.JSON(http.StatusInternalServerError, ErrorResponse{Message: "internal error"})
}
