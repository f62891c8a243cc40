package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/townsquare/community/internal/core/domain"
	"github.com/townsquare/community/internal/core/ports"
)

type UserService struct {
	repo ports.UserRepository
	log  zerolog.Logger
}

func NewUserService(repo ports.UserRepository, log zerolog.Logger) *UserService {
	return &UserService{repo: repo, log: log}
}

func (s *UserService) GetProfile(ctx context.Context, userID string) (*domain.User, error) {
	return s.repo.FindByID(ctx, userID)
}

// UpdateProfile replaces name and bio. Concurrent edits are last-write-wins.
func (s *UserService) UpdateProfile(ctx context.Context, userID string, in ports.ProfileInput) (*domain.User, error) {
	name := trimText(in.Name)
	bio := trimText(in.Bio)

	if textLen(name) < domain.NameMinLength {
		return nil, domain.NewValidationError("name must be at least 2 characters")
	}
	if textLen(bio) > domain.BioMaxLength {
		return nil, domain.NewValidationError("bio must be at most 500 characters")
	}

	user, err := s.repo.UpdateProfile(ctx, userID, name, bio)
	if err != nil {
		return nil, err
	}
	s.log.Info().Str("user_id", user.ID).Msg("profile updated")
	return user, nil
}

func (s *UserService) GetUser(ctx context.Context, userID string) (*domain.User, error) {
	return s.repo.FindByID(ctx, userID)
}
