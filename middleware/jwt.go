// Package middleware holds the JWT token service, the identity-attach
// middleware and the route guards. Authentication (extracting who the
// caller is) runs on every request and never rejects; authorization
// (whether they may do this) is an explicit per-route guard.
package middleware

import (
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/padraicbc/pokedex/apperror"
)

// usernameKey is the echo context key the authenticated identity lives
// under between Authenticate and the guards/handlers.
const usernameKey = "username"

// Claims is the token payload: just the username. No expiry is set and
// there is no revocation list, so a token stays valid until the signing
// key rotates. That matches the behaviour this API has always had.
type Claims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// Issue signs a token asserting username.
func Issue(username string, key []byte) (string, error) {
	claims := &Claims{Username: username}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(key)
}

// Verify parses and checks a token string. The second return value tells
// the caller whether an identity was established; a malformed or badly
// signed token is (nil, false), never an error to propagate.
func Verify(tokenString string, key []byte) (*Claims, bool) {
	claims := &Claims{}
	tkn, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return key, nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil || !tkn.Valid || claims.Username == "" {
		return nil, false
	}
	return claims, true
}

// stripBearer removes a case-insensitive "Bearer " prefix, if present.
func stripBearer(header string) string {
	const prefix = "bearer "
	if len(header) >= len(prefix) && strings.EqualFold(header[:len(prefix)], prefix) {
		return strings.TrimSpace(header[len(prefix):])
	}
	return strings.TrimSpace(header)
}

// Authenticate returns middleware that attaches the verified identity to
// the request context. It never rejects: missing header, malformed token
// and bad signature all continue unauthenticated, leaving the decision to
// the guards.
func Authenticate(key []byte) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get("Authorization")
			if header != "" {
				if claims, ok := Verify(stripBearer(header), key); ok {
					c.Set(usernameKey, claims.Username)
				}
			}
			return next(c)
		}
	}
}

// Identity returns the authenticated username attached by Authenticate,
// or ("", false) for an anonymous request.
func Identity(c echo.Context) (string, bool) {
	username, ok := c.Get(usernameKey).(string)
	return username, ok && username != ""
}

// RequireAuth rejects anonymous requests.
func RequireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if _, ok := Identity(c); !ok {
			return apperror.Unauthorized("unauthorized")
		}
		return next(c)
	}
}

// RequireSameUser rejects requests whose identity does not match the
// :username path parameter. It re-checks presence itself so route
// ordering mistakes fail closed.
func RequireSameUser(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		username, ok := Identity(c)
		if !ok || username != c.Param("username") {
			return apperror.Unauthorized("unauthorized")
		}
		return next(c)
	}
}
