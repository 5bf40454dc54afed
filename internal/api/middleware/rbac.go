package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/shopcore/commerce-api/internal/api/metrics"
	"github.com/shopcore/commerce-api/internal/core/domain"
)

// RBAC enforces role-based access control on top of Auth. An empty allowed
// set admits any authenticated identity. Denials are verbose on purpose:
// the caller's identity is already proven, so naming the required and
// actual roles leaks nothing.
func RBAC(allowedRoles ...domain.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, _ := c.Get(UserContextKey).(*domain.User)
			if user == nil {
				metrics.AuthzDeniedTotal.WithLabelValues("none").Inc()
				return echo.NewHTTPError(http.StatusForbidden, "no authenticated user")
			}

			if len(allowedRoles) == 0 {
				return next(c)
			}

			if !user.Role.Valid() {
				metrics.AuthzDeniedTotal.WithLabelValues("none").Inc()
				return echo.NewHTTPError(http.StatusForbidden, "user role not found")
			}

			for _, allowed := range allowedRoles {
				if user.Role == allowed {
					return next(c)
				}
			}

			metrics.AuthzDeniedTotal.WithLabelValues(string(user.Role)).Inc()
			return echo.NewHTTPError(http.StatusForbidden, fmt.Sprintf(
				"required roles: %s, user role: %s", joinRoles(allowedRoles), user.Role,
			))
		}
	}
}

func joinRoles(roles []domain.Role) string {
	names := make([]string, len(roles))
	for i, r := range roles {
		names[i] = string(r)
	}
	return strings.Join(names, ", ")
}
