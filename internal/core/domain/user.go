package domain

import "time"

// Role is the coarse permission tier of a user.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAdmin
}

// Satisfies reports whether a holder of r may perform an operation that
// requires the given role. Admins can do everything a user can.
func (r Role) Satisfies(required Role) bool {
	switch required {
	case RoleUser:
		return r.Valid()
	case RoleAdmin:
		return r == RoleAdmin
	default:
		return false
	}
}

const (
	NameMinLength     = 2
	BioMaxLength      = 500
	PasswordMinLength = 6
)

// User models a registered member of the community.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	Bio          string
	Role         Role
	CreatedAt    time.Time
}

// IsAdmin reports whether the user holds the admin role.
func (u *User) IsAdmin() bool { return u != nil && u.Role == RoleAdmin }

// Author is the resolved, credential-free view of a post's author.
type Author struct {
	ID    string
	Name  string
	Email string
}

// AuthorOf projects a user onto the fields a post may expose.
func AuthorOf(u *User) Author {
	return Author{ID: u.ID, Name: u.Name, Email: u.Email}
}
