package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/chapterchill/bookstore-service/internal/model"
)

func (h *Handler) RequestLending(c echo.Context) error {
	var req model.CreateLendingRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	lending, err := h.svc.RequestLending(c.Request().Context(), actorFrom(c), req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, lending)
}

func (h *Handler) ListLendings(c echo.Context) error {
	lendings, err := h.svc.ListLendings(c.Request().Context(), actorFrom(c))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, lendings)
}

func (h *Handler) ListAllLendings(c echo.Context) error {
	lendings, err := h.svc.ListAllLendings(c.Request().Context(), actorFrom(c))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, lendings)
}

func (h *Handler) GetLending(c echo.Context) error {
	lendingUID, err := pathUID(c, "lendingId")
	if err != nil {
		return err
	}
	lending, err := h.svc.GetLending(c.Request().Context(), actorFrom(c), lendingUID)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, lending)
}

func (h *Handler) ApproveLending(c echo.Context) error {
	lendingUID, err := pathUID(c, "lendingId")
	if err != nil {
		return err
	}
	lending, err := h.svc.ApproveLending(c.Request().Context(), actorFrom(c), lendingUID)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, lending)
}

func (h *Handler) ReturnLending(c echo.Context) error {
	lendingUID, err := pathUID(c, "lendingId")
	if err != nil {
		return err
	}
	lending, err := h.svc.ReturnLending(c.Request().Context(), actorFrom(c), lendingUID)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, lending)
}

func (h *Handler) CancelLending(c echo.Context) error {
	lendingUID, err := pathUID(c, "lendingId")
	if err != nil {
		return err
	}
	lending, err := h.svc.CancelLending(c.Request().Context(), actorFrom(c), lendingUID)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, lending)
}

func (h *Handler) DeleteLending(c echo.Context) error {
	lendingUID, err := pathUID(c, "lendingId")
	if err != nil {
		return err
	}
	if err := h.svc.DeleteLending(c.Request().Context(), actorFrom(c), lendingUID); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}
