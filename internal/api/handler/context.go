package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/shopcore/commerce-api/internal/api/middleware"
	"github.com/shopcore/commerce-api/internal/core/domain"
)

// CurrentUser returns the identity the Auth middleware resolved for this
// request. Its presence proves the middleware ran; absence means a route was
// wired without the auth gate, which is treated as unauthenticated rather
// than panicking.
func CurrentUser(c echo.Context) (*domain.User, error) {
	user, _ := c.Get(middleware.UserContextKey).(*domain.User)
	if user == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication")
	}
	return user, nil
}
