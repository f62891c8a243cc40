package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/townsquare/community/internal/core/domain"
	"github.com/townsquare/community/internal/core/ports"
)

type PostService struct {
	posts ports.PostRepository
	users ports.UserRepository
	log   zerolog.Logger
	now   func() time.Time
}

func NewPostService(posts ports.PostRepository, users ports.UserRepository, log zerolog.Logger) *PostService {
	return &PostService{posts: posts, users: users, log: log, now: time.Now}
}

func (s *PostService) ListPosts(ctx context.Context) ([]*domain.Post, error) {
	posts, err := s.posts.List(ctx, "")
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	return posts, resolveAuthors(ctx, s.users, posts)
}

func (s *PostService) ListPostsByUser(ctx context.Context, userID string) ([]*domain.Post, error) {
	posts, err := s.posts.List(ctx, userID)
	if err != nil {
		return nil, err
	}
	return posts, resolveAuthors(ctx, s.users, posts)
}

// CreatePost stores a new post with an empty liker set. The content is
// trimmed, and its length is checked in characters.
func (s *PostService) CreatePost(ctx context.Context, authorID, content string) (*domain.Post, error) {
	content = trimText(content)
	if n := textLen(content); n < domain.PostMinLength || n > domain.PostMaxLength {
		return nil, domain.NewValidationError("content must be between 1 and 1000 characters")
	}

	author, err := s.users.FindByID(ctx, authorID)
	if err != nil {
		return nil, err
	}

	post, err := s.posts.Create(ctx, &domain.Post{
		AuthorID:  author.ID,
		Content:   content,
		Likes:     []string{},
		LikeCount: 0,
		CreatedAt: s.now().UTC(),
	})
	if err != nil {
		s.log.Error().Err(err).Str("author_id", author.ID).Msg("failed to create post")
		return nil, fmt.Errorf("create post: %w", err)
	}
	post.Author = domain.AuthorOf(author)

	s.log.Info().Str("post_id", post.ID).Str("author_id", author.ID).Msg("post created")
	return post, nil
}

// ToggleLike flips the actor's like on a post. The flip and the count update
// happen in a single repository write, so concurrent toggles on one post
// never lose an update.
func (s *PostService) ToggleLike(ctx context.Context, actorID, postID string) (*domain.LikeResult, error) {
	post, err := s.posts.ToggleLike(ctx, postID, actorID)
	if err != nil {
		return nil, err
	}
	if err := resolveAuthors(ctx, s.users, []*domain.Post{post}); err != nil {
		return nil, err
	}

	liked := post.LikedBy(actorID)
	s.log.Debug().Str("post_id", post.ID).Str("user_id", actorID).Bool("liked", liked).Int("like_count", post.LikeCount).Msg("like toggled")
	return &domain.LikeResult{Liked: liked, LikeCount: post.LikeCount, Post: post}, nil
}

func (s *PostService) LikeStatus(ctx context.Context, actorID, postID string) (*domain.LikeResult, error) {
	post, err := s.posts.FindByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	return &domain.LikeResult{Liked: post.LikedBy(actorID), LikeCount: post.LikeCount}, nil
}

// resolveAuthors fills in Post.Author with one lookup for the whole slice.
// Posts whose author no longer exists keep only the author id.
func resolveAuthors(ctx context.Context, users ports.UserRepository, posts []*domain.Post) error {
	if len(posts) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(posts))
	ids := make([]string, 0, len(posts))
	for _, p := range posts {
		if _, ok := seen[p.AuthorID]; ok {
			continue
		}
		seen[p.AuthorID] = struct{}{}
		ids = append(ids, p.AuthorID)
	}

	authors, err := users.FindByIDs(ctx, ids)
	if err != nil {
		return fmt.Errorf("resolve authors: %w", err)
	}
	for _, p := range posts {
		if u, ok := authors[p.AuthorID]; ok {
			p.Author = domain.AuthorOf(u)
		} else {
			p.Author = domain.Author{ID: p.AuthorID}
		}
	}
	return nil
}
