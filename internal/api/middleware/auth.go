package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/townsquare/community/internal/core/domain"
	"github.com/townsquare/community/internal/core/ports"
)

// IdentityKey is the echo.Context key holding the resolved *domain.Identity.
const IdentityKey = "identity"

var errBadAuthorizationHeader = &domain.Error{Kind: domain.KindUnauthenticated, Message: "invalid authorization header"}

// Auth resolves the bearer token through the gate and injects the identity
// into the context. Requests without a resolvable identity never reach next.
func Auth(gate ports.Gate) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
			if authHeader == "" {
				return domain.ErrUnauthenticated
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || strings.TrimSpace(parts[1]) == "" {
				return errBadAuthorizationHeader
			}

			identity, err := gate.Resolve(c.Request().Context(), strings.TrimSpace(parts[1]))
			if err != nil {
				return err
			}

			c.Set(IdentityKey, identity)
			return next(c)
		}
	}
}

// IdentityFrom returns the identity injected by Auth, or nil.
func IdentityFrom(c echo.Context) *domain.Identity {
	identity, _ := c.Get(IdentityKey).(*domain.Identity)
	return identity
}
