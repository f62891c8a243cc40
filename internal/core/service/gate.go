package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/townsquare/community/internal/core/domain"
	"github.com/townsquare/community/internal/core/ports"
)

// Gate implements ports.Gate. The role decision always uses the stored user,
// so promotions and demotions apply to tokens issued before them.
type Gate struct {
	tokens  *TokenManager
	users   ports.UserRepository
	revoker ports.TokenRevoker
	log     zerolog.Logger
}

// NewGate wires the gate. revoker may be nil, in which case logout has no
// server-side effect.
func NewGate(tokens *TokenManager, users ports.UserRepository, revoker ports.TokenRevoker, log zerolog.Logger) *Gate {
	return &Gate{tokens: tokens, users: users, revoker: revoker, log: log}
}

func (g *Gate) Resolve(ctx context.Context, token string) (*domain.Identity, error) {
	if token == "" {
		return nil, domain.ErrUnauthenticated
	}
	claims, err := g.tokens.Parse(token)
	if err != nil {
		return nil, err
	}

	if g.revoker != nil {
		revoked, err := g.revoker.IsRevoked(ctx, claims.ID)
		switch {
		case err != nil:
			g.log.Warn().Err(err).Str("token_id", claims.ID).Msg("revocation check failed, accepting token")
		case revoked:
			return nil, domain.ErrTokenRevoked
		}
	}

	user, err := g.users.FindByID(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			// The account was deleted after the token was issued.
			return nil, domain.ErrUnauthenticated
		}
		return nil, fmt.Errorf("resolve identity: %w", err)
	}

	var expiresAt time.Time
	if claims.ExpiresAt != nil {
		expiresAt = claims.ExpiresAt.Time
	}
	return &domain.Identity{User: user, TokenID: claims.ID, ExpiresAt: expiresAt}, nil
}

func (g *Gate) RequireRole(identity *domain.Identity, role domain.Role) error {
	return RequireRole(identity, role)
}

// RequireRole is the pure role decision shared by the gate and the services.
func RequireRole(identity *domain.Identity, role domain.Role) error {
	if identity == nil || identity.User == nil {
		return domain.ErrUnauthenticated
	}
	if !identity.Role().Satisfies(role) {
		return domain.ErrForbidden
	}
	return nil
}
