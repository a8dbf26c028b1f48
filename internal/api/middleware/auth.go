package middleware

import (
	"errors"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/brewhouse/coffee-shop-api/internal/core/domain"
)

// Context keys under which the auth middleware stores the resolved identity.
const (
	ContextUserID = "user_id"
	ContextRole   = "role"
)

// Auth verifies the bearer token and injects the identity (user id, role)
// into the request context. It rejects before any handler logic runs when
// the header is absent, the token malformed, or signature/expiry checks
// fail. Expiry is the only invalidation path; there is no revocation list.
func Auth(jwtSecret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return domain.ErrNotAuthorized
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return domain.ErrNotAuthorized
			}

			claims := jwt.MapClaims{}
			tkn, err := jwt.ParseWithClaims(parts[1], claims, func(token *jwt.Token) (interface{}, error) {
				if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
					return nil, jwt.ErrTokenSignatureInvalid
				}
				return []byte(jwtSecret), nil
			})
			if err != nil {
				if errors.Is(err, jwt.ErrTokenExpired) {
					return domain.ErrTokenExpired
				}
				return domain.ErrTokenInvalid
			}
			if !tkn.Valid {
				return domain.ErrTokenInvalid
			}

			sub, _ := claims["sub"].(string)
			role, _ := claims["role"].(string)
			if sub == "" || !domain.ValidRole(role) {
				return domain.ErrTokenInvalid
			}

			c.Set(ContextUserID, sub)
			c.Set(ContextRole, role)

			return next(c)
		}
	}
}
