package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/chapterchill/bookstore-service/internal/model"
)

func bindAndValidate(c echo.Context, req interface{}) error {
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return nil
}

func (h *Handler) Register(c echo.Context) error {
	var req model.RegisterRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	resp, err := h.svc.Register(c.Request().Context(), req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, resp)
}

func (h *Handler) Login(c echo.Context) error {
	var req model.LoginRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	resp, err := h.svc.Login(c.Request().Context(), req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *Handler) Profile(c echo.Context) error {
	ctx := c.Request().Context()
	user, err := h.svc.Profile(ctx, actorFrom(c))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, user)
}

func (h *Handler) UpdateProfile(c echo.Context) error {
	var req model.UpdateProfileRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	user, err := h.svc.UpdateProfile(c.Request().Context(), actorFrom(c), req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, user)
}

func (h *Handler) Wishlist(c echo.Context) error {
	books, err := h.svc.Wishlist(c.Request().Context(), actorFrom(c))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, books)
}

func (h *Handler) AddToWishlist(c echo.Context) error {
	var req struct {
		BookID string `json:"bookId" validate:"required,uuid"`
	}
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	books, err := h.svc.AddToWishlist(c.Request().Context(), actorFrom(c), req.BookID)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, books)
}

func (h *Handler) RemoveFromWishlist(c echo.Context) error {
	bookUID, err := pathUID(c, "bookId")
	if err != nil {
		return err
	}
	books, err := h.svc.RemoveFromWishlist(c.Request().Context(), actorFrom(c), bookUID)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, books)
}

func (h *Handler) Analytics(c echo.Context) error {
	analytics, err := h.svc.Analytics(c.Request().Context(), actorFrom(c))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, analytics)
}

func (h *Handler) ListUsers(c echo.Context) error {
	users, err := h.svc.ListUsers(c.Request().Context(), actorFrom(c))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, users)
}

func (h *Handler) GetUser(c echo.Context) error {
	userUID, err := pathUID(c, "userId")
	if err != nil {
		return err
	}
	user, err := h.svc.GetUser(c.Request().Context(), actorFrom(c), userUID)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, user)
}

func (h *Handler) UpdateUser(c echo.Context) error {
	userUID, err := pathUID(c, "userId")
	if err != nil {
		return err
	}
	var req model.UpdateUserRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	user, err := h.svc.UpdateUser(c.Request().Context(), actorFrom(c), userUID, req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, user)
}

func (h *Handler) DeleteUser(c echo.Context) error {
	userUID, err := pathUID(c, "userId")
	if err != nil {
		return err
	}
	if err := h.svc.DeleteUser(c.Request().Context(), actorFrom(c), userUID); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}
