package ports

import (
	"context"
	"time"

	"github.com/townsquare/community/internal/core/domain"
)

// PostCountFilter narrows a post count. Zero values mean "no constraint".
type PostCountFilter struct {
	CreatedSince time.Time // created_at >= CreatedSince
}

// PostRepository defines persistence operations for posts. Returned posts
// carry AuthorID only; author resolution is the service's job.
type PostRepository interface {
	Create(ctx context.Context, post *domain.Post) (*domain.Post, error)
	FindByID(ctx context.Context, id string) (*domain.Post, error)
	// List returns posts newest first. An empty authorID lists every post.
	List(ctx context.Context, authorID string) ([]*domain.Post, error)

	// ToggleLike flips userID's membership in the post's liker set and
	// recomputes the like count from the set, as one atomic write per post.
	// Returns the post as it is after the write.
	ToggleLike(ctx context.Context, postID, userID string) (*domain.Post, error)

	Delete(ctx context.Context, id string) error
	// DeleteByAuthor removes every post written by authorID and reports how many went.
	DeleteByAuthor(ctx context.Context, authorID string) (int64, error)
	// RemoveLiker drops userID from every liker set and reports how many posts changed.
	RemoveLiker(ctx context.Context, userID string) (int64, error)
	Count(ctx context.Context, filter PostCountFilter) (int64, error)
}
