package auth

import (
	"context"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/pkg/errors"
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"

	defaultTokenTTL = 7 * 24 * time.Hour
)

// JWTKey signs and verifies access tokens. Overridden from config at startup.
var JWTKey = []byte(envOr("JWT_SECRET", "devsecret"))

func SetKey(key string) {
	if key != "" {
		JWTKey = []byte(key)
	}
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

type Claims struct {
	Profile struct {
		UserUID string `json:"userUid"`
		Name    string `json:"name"`
		Role    string `json:"role"`
	} `json:"profile"`
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// Actor identifies the authenticated caller for capability checks.
type Actor struct {
	UserUID string
	Name    string
	Role    string
}

func (a Actor) IsAdmin() bool {
	return a.Role == RoleAdmin
}

func (a Actor) IsZero() bool {
	return a.UserUID == ""
}

// NewToken issues a signed HS256 token for the given profile.
func NewToken(userUID, name, email, role string) (string, error) {
	claims := &Claims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(defaultTokenTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	claims.Profile.UserUID = userUID
	claims.Profile.Name = name
	claims.Profile.Role = role

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(JWTKey)
}

type ctxKey int

const actorKey ctxKey = iota + 1

func SetAuthContext(ctx context.Context, actor Actor) context.Context {
	return context.WithValue(ctx, actorKey, actor)
}

func ActorFromContext(ctx context.Context) (Actor, error) {
	actor, ok := ctx.Value(actorKey).(Actor)
	if !ok || actor.IsZero() {
		return Actor{}, errors.New("no authenticated actor in context")
	}
	return actor, nil
}
