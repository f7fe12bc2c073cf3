package middleware

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/acquisitions/acquisitions-api/internal/api/metrics"
	"github.com/acquisitions/acquisitions-api/internal/api/session"
	"github.com/acquisitions/acquisitions-api/internal/core/ports"
)

// Protection gates every request through the guard: bot detection, shield
// rules, and role-derived rate limiting. It runs before Auth, so the role
// is derived best-effort from the session cookie; requests without a usable
// session are rate limited as guests.
func Protection(guard ports.Guard, cookies *session.Manager, tokens ports.TokenService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := ports.ProtectionRequest{
				IP:        c.RealIP(),
				Method:    c.Request().Method,
				Path:      c.Request().URL.Path,
				UserAgent: c.Request().UserAgent(),
				Role:      peekRole(c, cookies, tokens),
			}

			decision, err := guard.Check(c.Request().Context(), req)
			if err != nil {
				// propagated so the central error handler logs the cause
				return fmt.Errorf("protection check: %w", err)
			}
			if decision.Allowed {
				return next(c)
			}

			metrics.ProtectionDeniedTotal.WithLabelValues(decision.Reason).Inc()
			switch decision.Reason {
			case ports.ReasonBot:
				return echo.NewHTTPError(http.StatusForbidden, "Access denied for bots")
			case ports.ReasonShield:
				return echo.NewHTTPError(http.StatusForbidden, "Request blocked by security shield")
			default:
				return echo.NewHTTPError(http.StatusForbidden, "Too many requests. Please try again later.")
			}
		}
	}
}

// peekRole decodes the session cookie without failing the request. Invalid
// or absent tokens simply downgrade the caller to the guest limit.
func peekRole(c echo.Context, cookies *session.Manager, tokens ports.TokenService) string {
	if identity, ok := Identity(c); ok {
		return identity.Role
	}
	token, ok := cookies.Get(c)
	if !ok {
		return ""
	}
	identity, err := tokens.Verify(token)
	if err != nil {
		return ""
	}
	return identity.Role
}
