package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/shopcore/commerce-api/internal/core/ports"
	"github.com/shopcore/commerce-api/internal/pkg/token"
)

// UserContextKey is where Auth stores the resolved identity on the request
// context. Downstream code reads it through handler.CurrentUser.
const UserContextKey = "user"

// Auth extracts the bearer token, verifies it, resolves the identity from
// the credential store, and attaches it to the context. Resolving from the
// store (rather than trusting claims) means a deleted account's still-valid
// token is rejected here.
func Auth(issuer *token.Issuer, users ports.UserRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			claims, err := issuer.Verify(parts[1])
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			user, err := users.FindByID(c.Request().Context(), claims.UserID)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			c.Set(UserContextKey, user)
			return next(c)
		}
	}
}
