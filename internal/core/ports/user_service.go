package ports

import (
	"context"

	"github.com/townsquare/community/internal/core/domain"
)

// ProfileInput carries the editable profile fields.
type ProfileInput struct {
	Name string
	Bio  string
}

type UserService interface {
	GetProfile(ctx context.Context, userID string) (*domain.User, error)
	UpdateProfile(ctx context.Context, userID string, input ProfileInput) (*domain.User, error)
	GetUser(ctx context.Context, userID string) (*domain.User, error)
}
