package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// RBAC enforces role-based access control. It must be chained after Auth;
// a missing identity is rejected with 401 as a defensive measure.
func RBAC(allowedRoles ...string) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			identity, ok := Identity(c)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "Authentication required")
			}
			if len(allowed) > 0 {
				if _, ok := allowed[identity.Role]; !ok {
					return echo.NewHTTPError(http.StatusForbidden, "Insufficient permissions to access this resource")
				}
			}
			return next(c)
		}
	}
}
