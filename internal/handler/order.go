package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/chapterchill/bookstore-service/internal/model"
)

func (h *Handler) CreateOrder(c echo.Context) error {
	var req model.CreateOrderRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	order, err := h.svc.CreateOrder(c.Request().Context(), actorFrom(c), req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, order)
}

func (h *Handler) ListOrders(c echo.Context) error {
	orders, err := h.svc.ListOrders(c.Request().Context(), actorFrom(c))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, orders)
}

func (h *Handler) ListAllOrders(c echo.Context) error {
	orders, err := h.svc.ListAllOrders(c.Request().Context(), actorFrom(c))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, orders)
}

func (h *Handler) GetOrder(c echo.Context) error {
	orderUID, err := pathUID(c, "orderId")
	if err != nil {
		return err
	}
	order, err := h.svc.GetOrder(c.Request().Context(), actorFrom(c), orderUID)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, order)
}

func (h *Handler) CancelOrder(c echo.Context) error {
	orderUID, err := pathUID(c, "orderId")
	if err != nil {
		return err
	}
	order, err := h.svc.CancelOrder(c.Request().Context(), actorFrom(c), orderUID)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, order)
}

func (h *Handler) UpdateOrderStatus(c echo.Context) error {
	orderUID, err := pathUID(c, "orderId")
	if err != nil {
		return err
	}
	var req model.UpdateOrderStatusRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	order, err := h.svc.UpdateOrderStatus(c.Request().Context(), actorFrom(c), orderUID, req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, order)
}

func (h *Handler) DeleteOrder(c echo.Context) error {
	orderUID, err := pathUID(c, "orderId")
	if err != nil {
		return err
	}
	if err := h.svc.DeleteOrder(c.Request().Context(), actorFrom(c), orderUID); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}
