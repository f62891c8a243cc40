package domain

import (
	"slices"
	"time"
)

const (
	PostMinLength = 1
	PostMaxLength = 1000
)

// Post is a short text entry written by one user. LikeCount always equals
// len(Likes); stores derive the count from the set in the same write.
type Post struct {
	ID        string
	AuthorID  string
	Author    Author
	Content   string
	Likes     []string
	LikeCount int
	CreatedAt time.Time
}

// LikedBy reports whether userID is in the post's liker set.
func (p *Post) LikedBy(userID string) bool {
	return slices.Contains(p.Likes, userID)
}

// LikeResult is the outcome of a like toggle.
type LikeResult struct {
	Liked     bool
	LikeCount int
	Post      *Post
}

// Stats is the platform-wide aggregate shown on the admin console.
type Stats struct {
	TotalUsers  int64
	TotalPosts  int64
	TotalAdmins int64
	RecentUsers int64
	RecentPosts int64
}

// RecentWindow is the trailing window used for the "recent" counters.
const RecentWindow = 30 * 24 * time.Hour
