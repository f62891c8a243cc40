package domain

import "time"

// Identity is the resolved caller of a request: the stored user the token
// points at, plus the token facts needed to revoke it.
type Identity struct {
	User      *User
	TokenID   string
	ExpiresAt time.Time
}

// UserID returns the caller's user id, or "" for a nil identity.
func (i *Identity) UserID() string {
	if i == nil || i.User == nil {
		return ""
	}
	return i.User.ID
}

// Role returns the caller's stored role, or "" for a nil identity.
func (i *Identity) Role() Role {
	if i == nil || i.User == nil {
		return ""
	}
	return i.User.Role
}
