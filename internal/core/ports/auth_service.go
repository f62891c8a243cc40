package ports

import (
	"context"

	"github.com/townsquare/community/internal/core/domain"
)

// RegisterInput carries the fields of a new account.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

// AuthResult is returned by Register and Login.
type AuthResult struct {
	Token string
	User  *domain.User
}

type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*AuthResult, error)
	Login(ctx context.Context, email, password string) (*AuthResult, error)
	Logout(ctx context.Context, identity *domain.Identity) error
}

// Gate resolves request credentials to an identity and decides role access.
type Gate interface {
	// Resolve maps a bearer token to the stored user it names. Fails with
	// domain.KindUnauthenticated when no valid identity can be resolved.
	Resolve(ctx context.Context, token string) (*domain.Identity, error)
	// RequireRole fails with domain.ErrUnauthenticated for a nil identity and
	// domain.ErrForbidden when the identity's role does not satisfy role.
	RequireRole(identity *domain.Identity, role domain.Role) error
}
