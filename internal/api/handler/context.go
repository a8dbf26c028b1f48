package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/brewhouse/coffee-shop-api/internal/api/middleware"
	"github.com/brewhouse/coffee-shop-api/internal/core/domain"
)

// ctxIdentity extracts the identity injected by the Auth middleware and
// fast-fails before any service call. A missing user id means the
// middleware did not run on this route; treat it as not authenticated
// rather than panicking downstream.
func ctxIdentity(c echo.Context) (userID, role string, err error) {
	userID, _ = c.Get(middleware.ContextUserID).(string)
	if userID == "" {
		return "", "", domain.ErrNotAuthorized
	}
	role, _ = c.Get(middleware.ContextRole).(string)
	return userID, role, nil
}
