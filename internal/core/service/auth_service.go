package service

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/townsquare/community/internal/core/domain"
	"github.com/townsquare/community/internal/core/ports"
)

// dummyPasswordHash is compared against when the email is unknown so a failed
// login costs the same whether or not the account exists.
var dummyPasswordHash = sync.OnceValue(func() []byte {
	hash, err := bcrypt.GenerateFromPassword([]byte("dummy-password"), bcrypt.DefaultCost)
	if err != nil {
		panic(fmt.Sprintf("hash dummy password: %v", err))
	}
	return hash
})

// AuthService implements registration, login and logout.
type AuthService struct {
	repo       ports.UserRepository
	tokens     *TokenManager
	revoker    ports.TokenRevoker
	adminEmail string
	log        zerolog.Logger
	now        func() time.Time
	compare    func(hash, password []byte) error
}

// NewAuthService builds the service. A registration whose email equals
// bootstrapAdminEmail is given the admin role; leave it empty to disable that.
func NewAuthService(repo ports.UserRepository, tokens *TokenManager, revoker ports.TokenRevoker, bootstrapAdminEmail string, log zerolog.Logger) *AuthService {
	return &AuthService{
		repo:       repo,
		tokens:     tokens,
		revoker:    revoker,
		adminEmail: normalizeEmail(bootstrapAdminEmail),
		log:        log,
		now:        time.Now,
		compare:    bcrypt.CompareHashAndPassword,
	}
}

func (s *AuthService) Register(ctx context.Context, in ports.RegisterInput) (*ports.AuthResult, error) {
	name := trimText(in.Name)
	email := normalizeEmail(in.Email)

	if textLen(name) < domain.NameMinLength {
		return nil, domain.NewValidationError("name must be at least 2 characters")
	}
	if addr, err := mail.ParseAddress(email); err != nil || addr.Address != email {
		return nil, domain.NewValidationError("email must be a valid email address")
	}
	if len(in.Password) < domain.PasswordMinLength {
		return nil, domain.NewValidationError("password must be at least 6 characters")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	role := domain.RoleUser
	if s.adminEmail != "" && email == s.adminEmail {
		role = domain.RoleAdmin
	}

	user, err := s.repo.Create(ctx, &domain.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
		CreatedAt:    s.now().UTC(),
	})
	if err != nil {
		return nil, err
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}

	s.log.Info().Str("user_id", user.ID).Str("role", string(user.Role)).Msg("user registered")
	return &ports.AuthResult{Token: token, User: user}, nil
}

// Login never tells the caller whether the email exists.
func (s *AuthService) Login(ctx context.Context, email, password string) (*ports.AuthResult, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			_ = s.compare(dummyPasswordHash(), []byte(password))
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if s.compare([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}
	return &ports.AuthResult{Token: token, User: user}, nil
}

// Logout revokes the caller's token for the rest of its lifetime.
func (s *AuthService) Logout(ctx context.Context, identity *domain.Identity) error {
	if identity == nil || identity.User == nil {
		return domain.ErrUnauthenticated
	}
	if s.revoker == nil || identity.TokenID == "" {
		return nil
	}
	ttl := identity.ExpiresAt.Sub(s.now())
	if ttl <= 0 {
		return nil
	}
	if err := s.revoker.Revoke(ctx, identity.TokenID, ttl); err != nil {
		return fmt.Errorf("revoke token: %w", err)
	}
	s.log.Info().Str("user_id", identity.UserID()).Msg("user logged out")
	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
