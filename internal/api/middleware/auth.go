package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/bookstore/bookstore-api/internal/core/service"
)

// Context keys populated by Auth for downstream handlers and the Gate.
const (
	CtxUsername = "username"
	CtxRoles    = "roles"
	CtxToken    = "token"
)

// RevocationChecker reports whether a raw token has been revoked.
type RevocationChecker interface {
	IsRevoked(ctx context.Context, token string) (bool, error)
}

// Auth resolves the caller's identity from a bearer token when one is
// present. Requests without an Authorization header pass through anonymous;
// whether anonymity is acceptable for the route is the Gate's decision. A
// header that is present but malformed, invalid, expired, or revoked is
// rejected here with 401.
func Auth(jwtSecret string, revoked RevocationChecker) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return next(c)
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}
			raw := parts[1]

			claims := jwt.MapClaims{}
			tkn, err := jwt.ParseWithClaims(raw, claims, func(token *jwt.Token) (interface{}, error) {
				if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
					return nil, jwt.ErrTokenSignatureInvalid
				}
				return []byte(jwtSecret), nil
			})
			if err != nil || !tkn.Valid {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			if revoked != nil {
				if isRevoked, err := revoked.IsRevoked(c.Request().Context(), raw); err == nil && isRevoked {
					return echo.NewHTTPError(http.StatusUnauthorized, "token revoked")
				}
			}

			username, _ := claims["username"].(string)
			rolesClaim, _ := claims[service.RolesClaim].(string)

			c.Set(CtxUsername, username)
			c.Set(CtxRoles, splitRoles(rolesClaim))
			c.Set(CtxToken, raw)

			return next(c)
		}
	}
}

func splitRoles(claim string) []string {
	if claim == "" {
		return nil
	}
	parts := strings.Split(claim, ",")
	roles := make([]string, 0, len(parts))
	for _, p := range parts {
		if r := strings.TrimSpace(p); r != "" {
			roles = append(roles, r)
		}
	}
	return roles
}
