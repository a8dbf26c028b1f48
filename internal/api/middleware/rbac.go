package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/brewhouse/coffee-shop-api/internal/core/domain"
)

// RequireRole enforces a fixed role floor on a route. It runs after Auth,
// reading the role claim from context. An identity below the floor fails
// with an authorization error distinct from "not authenticated".
func RequireRole(allowedRoles ...string) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get(ContextRole).(string)
			if _, ok := allowed[role]; !ok {
				return domain.ErrForbidden
			}
			return next(c)
		}
	}
}
