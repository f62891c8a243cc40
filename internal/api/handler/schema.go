package handler

import "time"

// --- Requests ---

type registerRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type createPostRequest struct {
	Content string `json:"content" validate:"required"`
}

type updateProfileRequest struct {
	Name string `json:"name" validate:"required"`
	Bio  string `json:"bio"`
}

// --- Responses ---

// ErrorResponse is the envelope of every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind"`
}

type messageResponse struct {
	Message string `json:"message"`
}

// userResponse is the public view of a user. It never carries the credential.
type userResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Bio       string    `json:"bio"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

type authResponse struct {
	Token string       `json:"token"`
	User  userResponse `json:"user"`
}

type authorResponse struct {
	ID    string `json:"_id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type postResponse struct {
	ID        string         `json:"_id"`
	Author    authorResponse `json:"author"`
	Content   string         `json:"content"`
	Likes     []string       `json:"likes"`
	LikeCount int            `json:"likeCount"`
	CreatedAt time.Time      `json:"createdAt"`
}

type toggleLikeResponse struct {
	ID        string       `json:"_id"`
	IsLiked   bool         `json:"isLiked"`
	LikeCount int          `json:"likeCount"`
	Post      postResponse `json:"post"`
}

type likeStatusResponse struct {
	IsLiked   bool `json:"isLiked"`
	LikeCount int  `json:"likeCount"`
}

type deleteUserResponse struct {
	Message      string `json:"message"`
	PostsDeleted int64  `json:"postsDeleted"`
	LikesRemoved int64  `json:"likesRemoved"`
}

type roleChangeResponse struct {
	Message string       `json:"message"`
	User    userResponse `json:"user"`
}

type statsResponse struct {
	TotalUsers  int64 `json:"totalUsers"`
	TotalPosts  int64 `json:"totalPosts"`
	TotalAdmins int64 `json:"totalAdmins"`
	RecentUsers int64 `json:"recentUsers"`
	RecentPosts int64 `json:"recentPosts"`
}
