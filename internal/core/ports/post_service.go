package ports

import (
	"context"

	"github.com/townsquare/community/internal/core/domain"
)

// PostService defines the post use cases: public reads, creation and likes.
type PostService interface {
	ListPosts(ctx context.Context) ([]*domain.Post, error)
	// ListPostsByUser returns an empty slice for an unknown (but well-formed) user id.
	ListPostsByUser(ctx context.Context, userID string) ([]*domain.Post, error)
	CreatePost(ctx context.Context, authorID, content string) (*domain.Post, error)
	ToggleLike(ctx context.Context, actorID, postID string) (*domain.LikeResult, error)
	LikeStatus(ctx context.Context, actorID, postID string) (*domain.LikeResult, error)
}
