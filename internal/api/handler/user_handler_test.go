package handler

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/townsquare/community/internal/core/domain"
	"github.com/townsquare/community/internal/core/ports"
)

type stubUserService struct {
	getProfileFn    func(ctx context.Context, userID string) (*domain.User, error)
	updateProfileFn func(ctx context.Context, userID string, in ports.ProfileInput) (*domain.User, error)
	getUserFn       func(ctx context.Context, userID string) (*domain.User, error)
}

func (s *stubUserService) GetProfile(ctx context.Context, userID string) (*domain.User, error) {
	return s.getProfileFn(ctx, userID)
}

func (s *stubUserService) UpdateProfile(ctx context.Context, userID string, in ports.ProfileInput) (*domain.User, error) {
	return s.updateProfileFn(ctx, userID, in)
}

func (s *stubUserService) GetUser(ctx context.Context, userID string) (*domain.User, error) {
	return s.getUserFn(ctx, userID)
}

func TestUserHandler_Profile(t *testing.T) {
	stub := &stubUserService{
		getProfileFn: func(ctx context.Context, userID string) (*domain.User, error) {
			return &domain.User{ID: userID, Name: "Alice", Bio: "hi", Role: domain.RoleUser}, nil
		},
	}
	c, rec := newTestContext(http.MethodGet, "/api/users/profile", "")
	withIdentity(c, userHex, domain.RoleUser)

	if err := NewUserHandler(stub).Profile(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	resp := decode(t, rec)
	if resp["id"] != userHex || resp["bio"] != "hi" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestUserHandler_UpdateProfile(t *testing.T) {
	stub := &stubUserService{
		updateProfileFn: func(ctx context.Context, userID string, in ports.ProfileInput) (*domain.User, error) {
			if userID != userHex || in.Name != "Alicia" || in.Bio != "new bio" {
				t.Fatalf("unexpected args: %s %+v", userID, in)
			}
			return &domain.User{ID: userID, Name: in.Name, Bio: in.Bio, Role: domain.RoleUser}, nil
		},
	}
	c, rec := newTestContext(http.MethodPut, "/api/users/profile", `{"name":"Alicia","bio":"new bio"}`)
	withIdentity(c, userHex, domain.RoleUser)

	if err := NewUserHandler(stub).UpdateProfile(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if resp := decode(t, rec); resp["name"] != "Alicia" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestUserHandler_UpdateProfile_MissingName(t *testing.T) {
	stub := &stubUserService{
		updateProfileFn: func(ctx context.Context, userID string, in ports.ProfileInput) (*domain.User, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	c, _ := newTestContext(http.MethodPut, "/api/users/profile", `{"bio":"x"}`)
	withIdentity(c, userHex, domain.RoleUser)

	err := NewUserHandler(stub).UpdateProfile(c)
	if domain.KindOf(err) != domain.KindValidation || err.Error() != "name is required" {
		t.Fatalf("expected name validation error, got %v", err)
	}
}

func TestUserHandler_Get(t *testing.T) {
	stub := &stubUserService{
		getUserFn: func(ctx context.Context, userID string) (*domain.User, error) {
			if userID == userHex {
				return &domain.User{ID: userID, Name: "Alice", Role: domain.RoleUser}, nil
			}
			return nil, domain.ErrUserNotFound
		},
	}
	h := NewUserHandler(stub)

	c, rec := newTestContext(http.MethodGet, "/", "", "id", userHex)
	if err := h.Get(c); err != nil || rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d %v", rec.Code, err)
	}

	for _, id := range []string{adminHex, "xyz"} {
		c, _ = newTestContext(http.MethodGet, "/", "", "id", id)
		if err := h.Get(c); !errors.Is(err, domain.ErrUserNotFound) {
			t.Fatalf("id %s: expected user not found, got %v", id, err)
		}
	}
}
