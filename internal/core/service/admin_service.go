package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/townsquare/community/internal/core/domain"
	"github.com/townsquare/community/internal/core/ports"
)

type AdminService struct {
	users ports.UserRepository
	posts ports.PostRepository
	tx    ports.Transactor
	log   zerolog.Logger
	now   func() time.Time
}

// NewAdminService wires the moderation use cases. tx may be nil, in which
// case the cascade steps run without a surrounding transaction.
func NewAdminService(users ports.UserRepository, posts ports.PostRepository, tx ports.Transactor, log zerolog.Logger) *AdminService {
	return &AdminService{users: users, posts: posts, tx: tx, log: log, now: time.Now}
}

func (s *AdminService) ListUsers(ctx context.Context, actor *domain.Identity) ([]*domain.User, error) {
	if err := RequireRole(actor, domain.RoleAdmin); err != nil {
		return nil, err
	}
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

// DeleteUser removes a user and everything that references it, in this order:
// the user's posts, the user's likes on other posts, then the user record.
// A failure in an earlier step aborts before the user record is touched, so
// the worst partial state is "posts gone, user still present".
func (s *AdminService) DeleteUser(ctx context.Context, actor *domain.Identity, targetID string) (*ports.DeleteUserResult, error) {
	if err := RequireRole(actor, domain.RoleAdmin); err != nil {
		return nil, err
	}
	if actor.UserID() == targetID {
		return nil, domain.ErrCannotDeleteSelf
	}
	if _, err := s.users.FindByID(ctx, targetID); err != nil {
		return nil, err
	}

	res := &ports.DeleteUserResult{UserID: targetID}
	err := s.withinTransaction(ctx, func(ctx context.Context) error {
		n, err := s.posts.DeleteByAuthor(ctx, targetID)
		if err != nil {
			return fmt.Errorf("delete posts of user %s: %w", targetID, err)
		}
		res.PostsDeleted = n

		m, err := s.posts.RemoveLiker(ctx, targetID)
		if err != nil {
			return fmt.Errorf("remove likes of user %s: %w", targetID, err)
		}
		res.LikesRemoved = m

		if err := s.users.Delete(ctx, targetID); err != nil {
			return fmt.Errorf("delete user %s: %w", targetID, err)
		}
		return nil
	})
	if err != nil {
		s.log.Error().Err(err).Str("user_id", targetID).Str("admin_id", actor.UserID()).Msg("cascading user delete failed")
		return nil, err
	}

	s.log.Info().
		Str("user_id", targetID).
		Str("admin_id", actor.UserID()).
		Int64("posts_deleted", res.PostsDeleted).
		Int64("likes_removed", res.LikesRemoved).
		Msg("user deleted")
	return res, nil
}

// DeletePost removes any post, including the acting admin's own.
func (s *AdminService) DeletePost(ctx context.Context, actor *domain.Identity, postID string) error {
	if err := RequireRole(actor, domain.RoleAdmin); err != nil {
		return err
	}
	if err := s.posts.Delete(ctx, postID); err != nil {
		return err
	}
	s.log.Info().Str("post_id", postID).Str("admin_id", actor.UserID()).Msg("post deleted")
	return nil
}

func (s *AdminService) PromoteUser(ctx context.Context, actor *domain.Identity, targetID string) (*domain.User, error) {
	if err := RequireRole(actor, domain.RoleAdmin); err != nil {
		return nil, err
	}
	target, err := s.users.FindByID(ctx, targetID)
	if err != nil {
		return nil, err
	}
	if target.Role == domain.RoleAdmin {
		return nil, domain.ErrAlreadyAdmin
	}
	return s.setRole(ctx, actor, target.ID, domain.RoleAdmin)
}

func (s *AdminService) DemoteUser(ctx context.Context, actor *domain.Identity, targetID string) (*domain.User, error) {
	if err := RequireRole(actor, domain.RoleAdmin); err != nil {
		return nil, err
	}
	if actor.UserID() == targetID {
		return nil, domain.ErrCannotDemoteSelf
	}
	target, err := s.users.FindByID(ctx, targetID)
	if err != nil {
		return nil, err
	}
	if target.Role != domain.RoleAdmin {
		return nil, domain.ErrNotAdmin
	}
	return s.setRole(ctx, actor, target.ID, domain.RoleUser)
}

func (s *AdminService) setRole(ctx context.Context, actor *domain.Identity, targetID string, role domain.Role) (*domain.User, error) {
	user, err := s.users.SetRole(ctx, targetID, role)
	if err != nil {
		return nil, err
	}
	s.log.Info().Str("user_id", targetID).Str("admin_id", actor.UserID()).Str("role", string(role)).Msg("role changed")
	return user, nil
}

// Stats counts everything at call time; nothing is cached between calls.
// The recent window is inclusive of its lower bound.
func (s *AdminService) Stats(ctx context.Context, actor *domain.Identity) (*domain.Stats, error) {
	if err := RequireRole(actor, domain.RoleAdmin); err != nil {
		return nil, err
	}
	since := s.now().UTC().Add(-domain.RecentWindow)

	var (
		st  domain.Stats
		err error
	)
	if st.TotalUsers, err = s.users.Count(ctx, ports.UserCountFilter{}); err != nil {
		return nil, fmt.Errorf("count users: %w", err)
	}
	if st.TotalPosts, err = s.posts.Count(ctx, ports.PostCountFilter{}); err != nil {
		return nil, fmt.Errorf("count posts: %w", err)
	}
	if st.TotalAdmins, err = s.users.Count(ctx, ports.UserCountFilter{Role: domain.RoleAdmin}); err != nil {
		return nil, fmt.Errorf("count admins: %w", err)
	}
	if st.RecentUsers, err = s.users.Count(ctx, ports.UserCountFilter{CreatedSince: since}); err != nil {
		return nil, fmt.Errorf("count recent users: %w", err)
	}
	if st.RecentPosts, err = s.posts.Count(ctx, ports.PostCountFilter{CreatedSince: since}); err != nil {
		return nil, fmt.Errorf("count recent posts: %w", err)
	}
	return &st, nil
}

// ListUserPosts does not distinguish an unknown user from one with no posts.
func (s *AdminService) ListUserPosts(ctx context.Context, actor *domain.Identity, targetID string) ([]*domain.Post, error) {
	if err := RequireRole(actor, domain.RoleAdmin); err != nil {
		return nil, err
	}
	posts, err := s.posts.List(ctx, targetID)
	if err != nil {
		return nil, err
	}
	return posts, resolveAuthors(ctx, s.users, posts)
}

func (s *AdminService) withinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if s.tx == nil {
		return fn(ctx)
	}
	return s.tx.WithinTransaction(ctx, fn)
}
