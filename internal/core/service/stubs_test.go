package service

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sort"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/townsquare/community/internal/core/domain"
	"github.com/townsquare/community/internal/core/ports"
)

// ---------------------------------------------------------------------------
// In-memory stub repositories
// ---------------------------------------------------------------------------

var discardLogger = zerolog.Nop()

type stubUserRepo struct {
	mu      sync.Mutex
	users   map[string]*domain.User
	seq     int
	deleted []string
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == user.Email {
			return nil, domain.ErrEmailTaken
		}
	}
	c := cloneUser(user)
	if c.ID == "" {
		r.seq++
		c.ID = fmt.Sprintf("u%d", r.seq)
	}
	r.users[c.ID] = c
	return cloneUser(c), nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(u), nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByIDs(_ context.Context, ids []string) (map[string]*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make(map[string]*domain.User, len(ids))
	for _, id := range ids {
		if u, ok := r.users[id]; ok {
			out[id] = cloneUser(u)
		}
	}
	return out, nil
}

func (r *stubUserRepo) List(_ context.Context) ([]*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*domain.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, cloneUser(u))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *stubUserRepo) UpdateProfile(_ context.Context, id, name, bio string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	u.Name, u.Bio = name, bio
	return cloneUser(u), nil
}

func (r *stubUserRepo) SetRole(_ context.Context, id string, role domain.Role) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	u.Role = role
	return cloneUser(u), nil
}

func (r *stubUserRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[id]; !ok {
		return domain.ErrUserNotFound
	}
	delete(r.users, id)
	r.deleted = append(r.deleted, id)
	return nil
}

func (r *stubUserRepo) Count(_ context.Context, f ports.UserCountFilter) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for _, u := range r.users {
		if f.Role != "" && u.Role != f.Role {
			continue
		}
		if !f.CreatedSince.IsZero() && u.CreatedAt.Before(f.CreatedSince) {
			continue
		}
		n++
	}
	return n, nil
}

type stubPostRepo struct {
	mu    sync.Mutex
	posts map[string]*domain.Post
	seq   int

	deleteByAuthorErr error
	removeLikerErr    error
	calls             []string // order of cascade-relevant calls
}

func newStubPostRepo() *stubPostRepo {
	return &stubPostRepo{posts: make(map[string]*domain.Post)}
}

func clonePost(p *domain.Post) *domain.Post {
	c := *p
	c.Likes = slices.Clone(p.Likes)
	return &c
}

func (r *stubPostRepo) Create(_ context.Context, post *domain.Post) (*domain.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c := clonePost(post)
	r.seq++
	c.ID = fmt.Sprintf("p%d", r.seq)
	r.posts[c.ID] = c
	return clonePost(c), nil
}

func (r *stubPostRepo) FindByID(_ context.Context, id string) (*domain.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.posts[id]
	if !ok {
		return nil, domain.ErrPostNotFound
	}
	return clonePost(p), nil
}

func (r *stubPostRepo) List(_ context.Context, authorID string) ([]*domain.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []*domain.Post{}
	for _, p := range r.posts {
		if authorID != "" && p.AuthorID != authorID {
			continue
		}
		out = append(out, clonePost(p))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

// ToggleLike mirrors the single-document atomic update of the real store.
func (r *stubPostRepo) ToggleLike(_ context.Context, postID, userID string) (*domain.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.posts[postID]
	if !ok {
		return nil, domain.ErrPostNotFound
	}
	if i := slices.Index(p.Likes, userID); i >= 0 {
		p.Likes = slices.Delete(p.Likes, i, i+1)
	} else {
		p.Likes = append(p.Likes, userID)
	}
	p.LikeCount = len(p.Likes)
	return clonePost(p), nil
}

func (r *stubPostRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.posts[id]; !ok {
		return domain.ErrPostNotFound
	}
	delete(r.posts, id)
	return nil
}

func (r *stubPostRepo) DeleteByAuthor(_ context.Context, authorID string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, "delete_by_author")
	if r.deleteByAuthorErr != nil {
		return 0, r.deleteByAuthorErr
	}
	var n int64
	for id, p := range r.posts {
		if p.AuthorID == authorID {
			delete(r.posts, id)
			n++
		}
	}
	return n, nil
}

func (r *stubPostRepo) RemoveLiker(_ context.Context, userID string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, "remove_liker")
	if r.removeLikerErr != nil {
		return 0, r.removeLikerErr
	}
	var n int64
	for _, p := range r.posts {
		if i := slices.Index(p.Likes, userID); i >= 0 {
			p.Likes = slices.Delete(p.Likes, i, i+1)
			p.LikeCount = len(p.Likes)
			n++
		}
	}
	return n, nil
}

func (r *stubPostRepo) Count(_ context.Context, f ports.PostCountFilter) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for _, p := range r.posts {
		if !f.CreatedSince.IsZero() && p.CreatedAt.Before(f.CreatedSince) {
			continue
		}
		n++
	}
	return n, nil
}

type stubRevoker struct {
	revoked map[string]time.Duration
	err     error
}

func newStubRevoker() *stubRevoker {
	return &stubRevoker{revoked: make(map[string]time.Duration)}
}

func (r *stubRevoker) Revoke(_ context.Context, tokenID string, ttl time.Duration) error {
	if r.err != nil {
		return r.err
	}
	r.revoked[tokenID] = ttl
	return nil
}

func (r *stubRevoker) IsRevoked(_ context.Context, tokenID string) (bool, error) {
	if r.err != nil {
		return false, r.err
	}
	_, ok := r.revoked[tokenID]
	return ok, nil
}

type stubTx struct {
	calls int
}

func (t *stubTx) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	t.calls++
	return fn(ctx)
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

var errStore = errors.New("store unavailable")

func seedUser(repo *stubUserRepo, name string, role domain.Role, createdAt time.Time) *domain.User {
	u, err := repo.Create(context.Background(), &domain.User{
		Name:      name,
		Email:     name + "@example.com",
		Role:      role,
		CreatedAt: createdAt,
	})
	if err != nil {
		panic(err)
	}
	return u
}

func seedPost(repo *stubPostRepo, authorID, content string, createdAt time.Time) *domain.Post {
	p, err := repo.Create(context.Background(), &domain.Post{
		AuthorID:  authorID,
		Content:   content,
		Likes:     []string{},
		CreatedAt: createdAt,
	})
	if err != nil {
		panic(err)
	}
	return p
}

func identityOf(u *domain.User) *domain.Identity {
	return &domain.Identity{User: u, TokenID: "tok-" + u.ID, ExpiresAt: time.Now().Add(time.Hour)}
}
