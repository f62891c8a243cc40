package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/townsquare/community/internal/core/domain"
)

func TestGate_Resolve(t *testing.T) {
	users := newStubUserRepo()
	alice := seedUser(users, "alice", domain.RoleUser, time.Now())
	tokens := NewTokenManager("secret", time.Hour)
	revoker := newStubRevoker()
	gate := NewGate(tokens, users, revoker, discardLogger)

	token, err := tokens.Issue(alice)
	require.NoError(t, err)

	t.Run("valid token resolves stored user", func(t *testing.T) {
		id, err := gate.Resolve(context.Background(), token)
		require.NoError(t, err)
		require.Equal(t, alice.ID, id.UserID())
		require.NotEmpty(t, id.TokenID)
		require.True(t, id.ExpiresAt.After(time.Now()))
	})

	t.Run("stored role wins over token claim", func(t *testing.T) {
		_, _ = users.SetRole(context.Background(), alice.ID, domain.RoleAdmin)
		defer func() { _, _ = users.SetRole(context.Background(), alice.ID, domain.RoleUser) }()

		id, err := gate.Resolve(context.Background(), token)
		require.NoError(t, err)
		require.Equal(t, domain.RoleAdmin, id.Role())
	})

	t.Run("empty token", func(t *testing.T) {
		_, err := gate.Resolve(context.Background(), "")
		require.ErrorIs(t, err, domain.ErrUnauthenticated)
	})

	t.Run("garbage token", func(t *testing.T) {
		_, err := gate.Resolve(context.Background(), "not-a-token")
		require.True(t, domain.IsKind(err, domain.KindUnauthenticated))
	})

	t.Run("wrong secret", func(t *testing.T) {
		other, err := NewTokenManager("other", time.Hour).Issue(alice)
		require.NoError(t, err)
		_, err = gate.Resolve(context.Background(), other)
		require.True(t, domain.IsKind(err, domain.KindUnauthenticated))
	})

	t.Run("expired token", func(t *testing.T) {
		old := NewTokenManager("secret", time.Minute)
		old.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
		expired, err := old.Issue(alice)
		require.NoError(t, err)
		_, err = gate.Resolve(context.Background(), expired)
		require.True(t, domain.IsKind(err, domain.KindUnauthenticated))
	})

	t.Run("revoked token", func(t *testing.T) {
		claims, err := tokens.Parse(token)
		require.NoError(t, err)
		revoker.revoked[claims.ID] = time.Hour
		defer delete(revoker.revoked, claims.ID)

		_, err = gate.Resolve(context.Background(), token)
		require.ErrorIs(t, err, domain.ErrTokenRevoked)
	})

	t.Run("revocation store down accepts token", func(t *testing.T) {
		revoker.err = errStore
		defer func() { revoker.err = nil }()

		_, err := gate.Resolve(context.Background(), token)
		require.NoError(t, err)
	})

	t.Run("deleted user is unauthenticated", func(t *testing.T) {
		bob := seedUser(users, "bob", domain.RoleUser, time.Now())
		bobToken, err := tokens.Issue(bob)
		require.NoError(t, err)
		require.NoError(t, users.Delete(context.Background(), bob.ID))

		_, err = gate.Resolve(context.Background(), bobToken)
		require.ErrorIs(t, err, domain.ErrUnauthenticated)
	})
}

func TestRequireRole(t *testing.T) {
	user := &domain.Identity{User: &domain.User{ID: "u", Role: domain.RoleUser}}
	admin := &domain.Identity{User: &domain.User{ID: "a", Role: domain.RoleAdmin}}

	require.ErrorIs(t, RequireRole(nil, domain.RoleUser), domain.ErrUnauthenticated)
	require.ErrorIs(t, RequireRole(&domain.Identity{}, domain.RoleUser), domain.ErrUnauthenticated)
	require.NoError(t, RequireRole(user, domain.RoleUser))
	require.ErrorIs(t, RequireRole(user, domain.RoleAdmin), domain.ErrForbidden)
	require.NoError(t, RequireRole(admin, domain.RoleUser))
	require.NoError(t, RequireRole(admin, domain.RoleAdmin))
}
