package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/time/rate"

	"github.com/chapterchill/bookstore-service/pkg/auth"
	"github.com/chapterchill/bookstore-service/pkg/logger"
)

const (
	AuthorizationHeader = "Authorization"
	bearer              = "Bearer "
)

func parseToken(authorization string) (auth.Actor, error) {
	if !strings.HasPrefix(authorization, bearer) {
		return auth.Actor{}, echo.NewHTTPError(http.StatusUnauthorized, "Invalid Authorization Header")
	}
	tokenStr := strings.TrimPrefix(authorization, bearer)
	claims := new(auth.Claims)

	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		return auth.JWTKey, nil
	})
	if err != nil || !token.Valid {
		return auth.Actor{}, echo.NewHTTPError(http.StatusUnauthorized, "JwtAccessDenied")
	}
	if claims.ExpiresAt != nil && time.Now().After(claims.ExpiresAt.Time) {
		return auth.Actor{}, echo.NewHTTPError(http.StatusUnauthorized, "TokenExpired")
	}

	return auth.Actor{
		UserUID: claims.Profile.UserUID,
		Name:    claims.Profile.Name,
		Role:    claims.Profile.Role,
	}, nil
}

func JwtAuthentication(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authorization := c.Request().Header.Get(AuthorizationHeader)
		if authorization == "" {
			return echo.NewHTTPError(http.StatusUnauthorized, "No Authorization Header")
		}
		actor, err := parseToken(authorization)
		if err != nil {
			return err
		}

		req := c.Request()
		ctx := auth.SetAuthContext(req.Context(), actor)
		c.SetRequest(req.WithContext(ctx))

		return next(c)
	}
}

// OptionalAuth attaches an actor when a valid bearer token is present and
// passes anonymous requests through untouched. A present but invalid token
// is still rejected.
func OptionalAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authorization := c.Request().Header.Get(AuthorizationHeader)
		if authorization == "" {
			return next(c)
		}
		actor, err := parseToken(authorization)
		if err != nil {
			return err
		}

		req := c.Request()
		ctx := auth.SetAuthContext(req.Context(), actor)
		c.SetRequest(req.WithContext(ctx))

		return next(c)
	}
}

func NewRateLimiter(rps rate.Limit) echo.MiddlewareFunc {
	return middleware.RateLimiter(middleware.NewRateLimiterMemoryStore(rps))
}

func RequestLoggerConfig() middleware.RequestLoggerConfig {
	cfg := logger.Log{LogLevel: zapcore.DebugLevel, Sink: ""}
	log := logger.NewLogger(cfg, "echo")
	c := middleware.RequestLoggerConfig{
		LogURI:       true,
		LogStatus:    true,
		HandleError:  true,
		LogError:     true,
		LogLatency:   true,
		LogRequestID: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			level := zapcore.InfoLevel
			if v.Error != nil {
				level = zapcore.ErrorLevel
			}
			log.Log(level, "request",
				zap.String("URI", v.URI),
				zap.String("Method", v.Method),
				zap.Int("status", v.Status),
				zap.Duration("latency", v.Latency),
				zap.Error(v.Error),
				zap.String("request_id", v.RequestID),
			)
			return nil
		},
	}
	return c
}
