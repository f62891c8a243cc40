package ports

import (
	"context"
	"time"

	"github.com/townsquare/community/internal/core/domain"
)

// UserCountFilter narrows a user count. Zero values mean "no constraint".
type UserCountFilter struct {
	Role         domain.Role
	CreatedSince time.Time // created_at >= CreatedSince
}

// UserRepository defines persistence operations for users. Ids that are not
// well-formed store keys behave exactly like unknown ids.
type UserRepository interface {
	// Create inserts a user. Returns domain.ErrEmailTaken on a duplicate email.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	// FindByIDs returns the users that exist among ids, keyed by id.
	FindByIDs(ctx context.Context, ids []string) (map[string]*domain.User, error)
	// List returns every user, newest first.
	List(ctx context.Context) ([]*domain.User, error)
	UpdateProfile(ctx context.Context, id, name, bio string) (*domain.User, error)
	SetRole(ctx context.Context, id string, role domain.Role) (*domain.User, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context, filter UserCountFilter) (int64, error)
}
