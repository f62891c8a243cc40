package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/townsquare/community/internal/core/domain"
	"github.com/townsquare/community/internal/core/ports"
)

func TestUserService_UpdateProfile(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, discardLogger)
	alice := seedUser(repo, "alice", domain.RoleUser, time.Now())

	updated, err := svc.UpdateProfile(context.Background(), alice.ID, ports.ProfileInput{Name: " Alice L. ", Bio: " likes <i>go</i> & AT&amp;T "})
	require.NoError(t, err)
	require.Equal(t, "Alice L.", updated.Name)
	require.Equal(t, "likes <i>go</i> & AT&amp;T", updated.Bio)
	require.Equal(t, alice.Email, updated.Email)
	require.Equal(t, domain.RoleUser, updated.Role)
}

func TestUserService_UpdateProfile_Validation(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, discardLogger)
	alice := seedUser(repo, "alice", domain.RoleUser, time.Now())

	_, err := svc.UpdateProfile(context.Background(), alice.ID, ports.ProfileInput{Name: "A"})
	require.True(t, domain.IsKind(err, domain.KindValidation))

	_, err = svc.UpdateProfile(context.Background(), alice.ID, ports.ProfileInput{Name: "Alice", Bio: strings.Repeat("b", 501)})
	require.True(t, domain.IsKind(err, domain.KindValidation))

	_, err = svc.UpdateProfile(context.Background(), alice.ID, ports.ProfileInput{Name: "Alice", Bio: "<b>" + strings.Repeat("b", 494) + "</b>"})
	require.True(t, domain.IsKind(err, domain.KindValidation))

	_, err = svc.UpdateProfile(context.Background(), alice.ID, ports.ProfileInput{Name: "Alice", Bio: strings.Repeat("b", 500)})
	require.NoError(t, err)

	stored, _ := repo.FindByID(context.Background(), alice.ID)
	require.Equal(t, "Alice", stored.Name)
}

func TestUserService_GetUser_NotFound(t *testing.T) {
	svc := NewUserService(newStubUserRepo(), discardLogger)

	_, err := svc.GetUser(context.Background(), "missing")
	require.ErrorIs(t, err, domain.ErrUserNotFound)
}
