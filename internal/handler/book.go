package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/chapterchill/bookstore-service/internal/model"
)

func (h *Handler) Catalog(c echo.Context) error {
	q := model.CatalogQuery{
		Search: c.QueryParam("search"),
		Genre:  c.QueryParam("genre"),
		Sort:   c.QueryParam("sort"),
	}
	resp, err := h.svc.Catalog(c.Request().Context(), q)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *Handler) GetBook(c echo.Context) error {
	bookUID, err := pathUID(c, "bookId")
	if err != nil {
		return err
	}
	book, err := h.svc.GetBook(c.Request().Context(), bookUID)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"book": book})
}

func (h *Handler) Recommendations(c echo.Context) error {
	bookUID, err := pathUID(c, "bookId")
	if err != nil {
		return err
	}
	books, err := h.svc.Recommendations(c.Request().Context(), bookUID)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"recommendations": books})
}

func (h *Handler) CreateBook(c echo.Context) error {
	var req model.BookUpsertRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	book, err := h.svc.CreateBook(c.Request().Context(), req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, map[string]interface{}{"book": book})
}

func (h *Handler) ReplaceBook(c echo.Context) error {
	bookUID, err := pathUID(c, "bookId")
	if err != nil {
		return err
	}
	var req model.BookUpsertRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	book, err := h.svc.ReplaceBook(c.Request().Context(), bookUID, req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"book": book})
}

func (h *Handler) DeleteBook(c echo.Context) error {
	bookUID, err := pathUID(c, "bookId")
	if err != nil {
		return err
	}
	if err := h.svc.DeleteBook(c.Request().Context(), bookUID); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) AddReview(c echo.Context) error {
	bookUID, err := pathUID(c, "bookId")
	if err != nil {
		return err
	}
	var req model.ReviewRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	book, err := h.svc.AddReview(c.Request().Context(), actorFrom(c), bookUID, req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, map[string]interface{}{"book": book})
}
