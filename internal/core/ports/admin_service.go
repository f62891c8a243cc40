package ports

import (
	"context"

	"github.com/townsquare/community/internal/core/domain"
)

// DeleteUserResult reports what a cascading user deletion removed.
type DeleteUserResult struct {
	UserID       string
	PostsDeleted int64
	LikesRemoved int64
}

// AdminService defines the moderation use cases. Every operation takes the
// acting identity and fails with an unauthenticated or forbidden error before
// touching the stores unless that identity holds the admin role.
type AdminService interface {
	ListUsers(ctx context.Context, actor *domain.Identity) ([]*domain.User, error)
	DeleteUser(ctx context.Context, actor *domain.Identity, targetID string) (*DeleteUserResult, error)
	DeletePost(ctx context.Context, actor *domain.Identity, postID string) error
	PromoteUser(ctx context.Context, actor *domain.Identity, targetID string) (*domain.User, error)
	DemoteUser(ctx context.Context, actor *domain.Identity, targetID string) (*domain.User, error)
	Stats(ctx context.Context, actor *domain.Identity) (*domain.Stats, error)
	ListUserPosts(ctx context.Context, actor *domain.Identity, targetID string) ([]*domain.Post, error)
}
