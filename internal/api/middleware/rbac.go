package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/townsquare/community/internal/core/domain"
	"github.com/townsquare/community/internal/core/ports"
)

// RequireRole lets the request through only when the identity injected by
// Auth satisfies role. Must be mounted after Auth.
func RequireRole(gate ports.Gate, role domain.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if err := gate.RequireRole(IdentityFrom(c), role); err != nil {
				return err
			}
			return next(c)
		}
	}
}
