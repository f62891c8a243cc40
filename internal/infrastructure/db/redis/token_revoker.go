package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// TokenRevoker implements ports.TokenRevoker backed by Redis.
// Key format: revoked:<token_id>, expiring when the token itself would.
type TokenRevoker struct {
	client *redis.Client
}

func NewTokenRevoker(client *redis.Client) *TokenRevoker {
	return &TokenRevoker{client: client}
}

// Revoke records tokenID as revoked for ttl. A non-positive ttl means the
// token has already expired and there is nothing to remember.
func (r *TokenRevoker) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	if err := r.client.Set(ctx, key(tokenID), "1", ttl).Err(); err != nil {
		return fmt.Errorf("revoke token: %w", err)
	}
	return nil
}

func (r *TokenRevoker) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	n, err := r.client.Exists(ctx, key(tokenID)).Result()
	if err != nil {
		return false, fmt.Errorf("revocation check: %w", err)
	}
	return n > 0, nil
}

func key(tokenID string) string {
	return "revoked:" + tokenID
}
