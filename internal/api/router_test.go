package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	"github.com/townsquare/community/internal/api/handler"
	"github.com/townsquare/community/internal/core/domain"
	"github.com/townsquare/community/internal/core/ports"
	"github.com/townsquare/community/internal/core/service"
)

type stubGate struct{}

func (stubGate) Resolve(ctx context.Context, token string) (*domain.Identity, error) {
	switch token {
	case "user-token":
		return &domain.Identity{User: &domain.User{ID: "64b7f0c2a1b2c3d4e5f60719", Role: domain.RoleUser}}, nil
	case "admin-token":
		return &domain.Identity{User: &domain.User{ID: "64b7f0c2a1b2c3d4e5f6071a", Role: domain.RoleAdmin}}, nil
	}
	return nil, domain.ErrUnauthenticated
}

func (stubGate) RequireRole(identity *domain.Identity, role domain.Role) error {
	return service.RequireRole(identity, role)
}

type stubPosts struct{ ports.PostService }

func (stubPosts) ListPosts(ctx context.Context) ([]*domain.Post, error) { return nil, nil }

func (stubPosts) ListPostsByUser(ctx context.Context, userID string) ([]*domain.Post, error) {
	return nil, nil
}

type stubAdmin struct{ ports.AdminService }

func (stubAdmin) Stats(ctx context.Context, actor *domain.Identity) (*domain.Stats, error) {
	if err := service.RequireRole(actor, domain.RoleAdmin); err != nil {
		return nil, err
	}
	return &domain.Stats{TotalUsers: 1}, nil
}

func newTestRouter() http.Handler {
	reg := prometheus.NewRegistry()
	return NewRouter(
		Services{Gate: stubGate{}, Posts: stubPosts{}, Admin: stubAdmin{}},
		Options{
			Log:        zerolog.Nop(),
			Registerer: reg,
			Gatherer:   reg,
			Checks:     map[string]handler.Check{"mongodb": func(ctx context.Context) error { return nil }},
		},
	)
}

func TestRouter_Routes(t *testing.T) {
	router := newTestRouter()

	tests := []struct {
		name     string
		method   string
		path     string
		token    string
		wantCode int
		wantKind string
	}{
		{name: "liveness", method: http.MethodGet, path: "/health", wantCode: http.StatusOK},
		{name: "readiness", method: http.MethodGet, path: "/health/ready", wantCode: http.StatusOK},
		{name: "metrics", method: http.MethodGet, path: "/metrics", wantCode: http.StatusOK},
		{name: "public posts", method: http.MethodGet, path: "/api/posts", wantCode: http.StatusOK},
		{name: "malformed user id", method: http.MethodGet, path: "/api/posts/user/not-an-id", wantCode: http.StatusNotFound, wantKind: "not_found"},
		{name: "create needs auth", method: http.MethodPost, path: "/api/posts", wantCode: http.StatusUnauthorized, wantKind: "unauthenticated"},
		{name: "bad token", method: http.MethodGet, path: "/api/users/profile", token: "forged", wantCode: http.StatusUnauthorized, wantKind: "unauthenticated"},
		{name: "admin without token", method: http.MethodGet, path: "/api/admin/stats", wantCode: http.StatusUnauthorized, wantKind: "unauthenticated"},
		{name: "admin as user", method: http.MethodGet, path: "/api/admin/stats", token: "user-token", wantCode: http.StatusForbidden, wantKind: "forbidden"},
		{name: "admin as admin", method: http.MethodGet, path: "/api/admin/stats", token: "admin-token", wantCode: http.StatusOK},
		{name: "unknown route", method: http.MethodGet, path: "/api/nope", wantCode: http.StatusNotFound, wantKind: "not_found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			if tt.token != "" {
				req.Header.Set("Authorization", "Bearer "+tt.token)
			}
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			if rec.Code != tt.wantCode {
				t.Fatalf("expected %d, got %d: %s", tt.wantCode, rec.Code, rec.Body.String())
			}
			if tt.wantKind == "" {
				return
			}
			var body map[string]string
			if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
				t.Fatalf("invalid json: %v", err)
			}
			if body["kind"] != tt.wantKind {
				t.Fatalf("expected kind %s, got %+v", tt.wantKind, body)
			}
		})
	}
}

func TestRouter_BodyLimit(t *testing.T) {
	reg := prometheus.NewRegistry()
	router := NewRouter(Services{Gate: stubGate{}}, Options{Log: zerolog.Nop(), Registerer: reg, Gatherer: reg, BodyLimit: "1K"})

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(`{"email":"`+strings.Repeat("a", 2048)+`"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusRequestEntityTooLarge {
		t.Fatalf("expected 413, got %d", rec.Code)
	}
}
