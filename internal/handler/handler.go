package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/chapterchill/bookstore-service/internal/errs"
	"github.com/chapterchill/bookstore-service/pkg/auth"
	"github.com/chapterchill/bookstore-service/pkg/circuitbreaker"
	mw "github.com/chapterchill/bookstore-service/pkg/middleware"
	"github.com/chapterchill/bookstore-service/pkg/validate"
)

type Handler struct {
	svc BookstoreService
	log *zap.Logger
}

func New(svc BookstoreService, log *zap.Logger) *Handler {
	return &Handler{
		svc: svc,
		log: log,
	}
}

func (h *Handler) NewRouter() *echo.Echo {
	e := echo.New()
	const (
		baseRPS = 10
		apiRPS  = 100
	)
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		StackSize: 4 << 10, // 4 KB
	}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{http.MethodGet, http.MethodOptions, http.MethodHead, http.MethodPut, http.MethodPatch, http.MethodPost, http.MethodDelete},
		AllowCredentials: true,
	}))

	base := e.Group("", mw.NewRateLimiter(baseRPS))
	base.GET("/manage/health", h.Health)

	e.Validator = validate.NewCustomValidator()
	api := e.Group("/api/v1",
		middleware.RequestLoggerWithConfig(mw.RequestLoggerConfig()),
		middleware.RequestID(),
		mw.NewRateLimiter(apiRPS),
	)

	api.POST("/auth/register", h.Register)
	api.POST("/auth/login", h.Login)
	api.GET("/auth/me", h.Profile, mw.JwtAuthentication)

	api.GET("/users/profile", h.Profile, mw.JwtAuthentication)
	api.PATCH("/users/profile", h.UpdateProfile, mw.JwtAuthentication)

	api.GET("/wishlist", h.Wishlist, mw.JwtAuthentication)
	api.POST("/wishlist", h.AddToWishlist, mw.JwtAuthentication)
	api.DELETE("/wishlist/:bookId", h.RemoveFromWishlist, mw.JwtAuthentication)

	api.GET("/books", h.Catalog)
	api.GET("/books/:bookId", h.GetBook)
	api.GET("/books/:bookId/recommendations", h.Recommendations)
	api.POST("/books", h.CreateBook, mw.JwtAuthentication, adminOnly)
	api.PUT("/books/:bookId", h.ReplaceBook, mw.JwtAuthentication, adminOnly)
	api.DELETE("/books/:bookId", h.DeleteBook, mw.JwtAuthentication, adminOnly)
	api.POST("/books/:bookId/reviews", h.AddReview, mw.JwtAuthentication)

	api.POST("/lendings", h.RequestLending, mw.JwtAuthentication)
	api.GET("/lendings", h.ListLendings, mw.JwtAuthentication)
	api.GET("/lendings/admin/all", h.ListAllLendings, mw.JwtAuthentication)
	api.GET("/lendings/:lendingId", h.GetLending, mw.JwtAuthentication)
	api.PATCH("/lendings/:lendingId/approve", h.ApproveLending, mw.JwtAuthentication)
	api.PATCH("/lendings/:lendingId/return", h.ReturnLending, mw.JwtAuthentication)
	api.PATCH("/lendings/:lendingId/cancel", h.CancelLending, mw.JwtAuthentication)
	api.DELETE("/lendings/:lendingId", h.DeleteLending, mw.JwtAuthentication)

	api.POST("/orders", h.CreateOrder, mw.JwtAuthentication)
	api.GET("/orders", h.ListOrders, mw.JwtAuthentication)
	api.GET("/orders/admin/all", h.ListAllOrders, mw.JwtAuthentication)
	api.GET("/orders/:orderId", h.GetOrder, mw.JwtAuthentication)
	api.PATCH("/orders/:orderId/cancel", h.CancelOrder, mw.JwtAuthentication)
	api.PATCH("/orders/:orderId/status", h.UpdateOrderStatus, mw.JwtAuthentication)
	api.DELETE("/orders/:orderId", h.DeleteOrder, mw.JwtAuthentication)

	api.GET("/admin/analytics", h.Analytics, mw.JwtAuthentication)
	api.GET("/admin/users", h.ListUsers, mw.JwtAuthentication)
	api.GET("/admin/users/:userId", h.GetUser, mw.JwtAuthentication)
	api.PATCH("/admin/users/:userId", h.UpdateUser, mw.JwtAuthentication)
	api.DELETE("/admin/users/:userId", h.DeleteUser, mw.JwtAuthentication)

	api.POST("/ai/book-insights", h.BookInsights)
	api.POST("/ai/chat", h.Chat, mw.OptionalAuth)

	return e
}

func (h *Handler) Health(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

func adminOnly(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		actor, err := auth.ActorFromContext(c.Request().Context())
		if err != nil {
			return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
		}
		if !actor.IsAdmin() {
			return echo.NewHTTPError(http.StatusForbidden, "admin access required")
		}
		return next(c)
	}
}

// actor returns the authenticated caller, or the zero Actor on routes
// where authentication is optional.
func actorFrom(c echo.Context) auth.Actor {
	actor, err := auth.ActorFromContext(c.Request().Context())
	if err != nil {
		return auth.Actor{}
	}
	return actor
}

func pathUID(c echo.Context, name string) (string, error) {
	raw := c.Param(name)
	if _, err := uuid.Parse(raw); err != nil {
		return "", echo.NewHTTPError(http.StatusBadRequest, name+" must be a valid uuid")
	}
	return raw, nil
}

func httpError(err error) *echo.HTTPError {
	code := http.StatusInternalServerError
	switch {
	case errors.Is(err, errs.ErrValidation),
		errors.Is(err, errs.ErrInsufficientStock),
		errors.Is(err, errs.ErrOutOfStock),
		errors.Is(err, errs.ErrTerminalState),
		errors.Is(err, errs.ErrAlreadyProcessed):
		code = http.StatusBadRequest
	case errors.Is(err, errs.ErrInvalidCredentials):
		code = http.StatusUnauthorized
	case errors.Is(err, errs.ErrForbidden):
		code = http.StatusForbidden
	case errors.Is(err, errs.ErrNotFound):
		code = http.StatusNotFound
	case errors.Is(err, errs.ErrEmailTaken),
		errors.Is(err, errs.ErrDuplicateReview):
		code = http.StatusConflict
	case errors.Is(err, circuitbreaker.ErrOpen):
		code = http.StatusServiceUnavailable
	}
	return echo.NewHTTPError(code, err.Error())
}
