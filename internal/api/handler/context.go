package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/acquisitions/acquisitions-api/internal/api/middleware"
	"github.com/acquisitions/acquisitions-api/internal/core/domain"
)

// ctxIdentity extracts the identity injected by the Auth middleware and
// fast-fails with 401 when it is missing. Routes that reach here without
// authentication are a wiring bug, but the check keeps the failure mode
// deterministic.
func ctxIdentity(c echo.Context) (domain.Identity, error) {
	identity, ok := middleware.Identity(c)
	if !ok {
		return domain.Identity{}, echo.NewHTTPError(http.StatusUnauthorized, "Authentication required")
	}
	return identity, nil
}
