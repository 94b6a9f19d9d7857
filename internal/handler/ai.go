package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/chapterchill/bookstore-service/internal/model"
)

func (h *Handler) BookInsights(c echo.Context) error {
	var req model.InsightRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	insights, err := h.svc.GenerateInsights(c.Request().Context(), req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, map[string]string{"insights": insights})
}

func (h *Handler) Chat(c echo.Context) error {
	var req model.ChatRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	resp, err := h.svc.Chat(c.Request().Context(), actorFrom(c), req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, resp)
}
