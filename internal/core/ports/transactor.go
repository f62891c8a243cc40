package ports

import (
	"context"
	"time"
)

// Transactor runs fn inside a store transaction when the store supports one.
// Stores without transactions run fn directly; callers must order their steps
// so that a partial failure leaves an acceptable state.
type Transactor interface {
	WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// TokenRevoker remembers revoked token ids until their natural expiry.
type TokenRevoker interface {
	Revoke(ctx context.Context, tokenID string, ttl time.Duration) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}
