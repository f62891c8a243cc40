package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/townsquare/community/internal/api/middleware"
	"github.com/townsquare/community/internal/core/domain"
)

// currentIdentity returns the identity injected by the Auth middleware. Its
// absence means the route was mounted without Auth, which is reported as
// unauthenticated rather than trusted.
func currentIdentity(c echo.Context) (*domain.Identity, error) {
	identity := middleware.IdentityFrom(c)
	if identity == nil || identity.User == nil {
		return nil, domain.ErrUnauthenticated
	}
	return identity, nil
}
