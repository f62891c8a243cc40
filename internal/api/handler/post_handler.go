package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/townsquare/community/internal/api/metrics"
	"github.com/townsquare/community/internal/core/domain"
	"github.com/townsquare/community/internal/core/ports"
)

// PostHandler handles HTTP requests for posts and likes.
type PostHandler struct {
	service ports.PostService
}

func NewPostHandler(service ports.PostService) *PostHandler {
	return &PostHandler{service: service}
}

// List handles GET /api/posts.
//
// @Summary      List all posts, newest first
// @Tags         posts
// @Produce      json
// @Success      200  {array}   postResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /api/posts [get]
func (h *PostHandler) List(c echo.Context) error {
	posts, err := h.service.ListPosts(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toPostResponses(posts))
}

// Create handles POST /api/posts.
//
// @Summary      Create a post
// @Tags         posts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createPostRequest  true  "Post body (1-1000 characters)"
// @Success      201   {object}  postResponse
// @Failure      400   {object}  ErrorResponse
// @Failure      401   {object}  ErrorResponse
// @Router       /api/posts [post]
func (h *PostHandler) Create(c echo.Context) error {
	identity, err := currentIdentity(c)
	if err != nil {
		return err
	}

	var req createPostRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	post, err := h.service.CreatePost(c.Request().Context(), identity.UserID(), req.Content)
	if err != nil {
		return err
	}

	metrics.PostsCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, toPostResponse(post))
}

// ListByUser handles GET /api/posts/user/:userId.
//
// @Summary      List a user's posts, newest first
// @Tags         posts
// @Produce      json
// @Param        userId  path      string  true  "User id"
// @Success      200     {array}   postResponse
// @Failure      404     {object}  ErrorResponse
// @Router       /api/posts/user/{userId} [get]
func (h *PostHandler) ListByUser(c echo.Context) error {
	userID, err := pathID(c, "userId", domain.ErrUserNotFound)
	if err != nil {
		return err
	}

	posts, err := h.service.ListPostsByUser(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toPostResponses(posts))
}

// ToggleLike handles POST /api/posts/:id/like.
//
// @Summary      Like or unlike a post
// @Tags         posts
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Post id"
// @Success      200  {object}  toggleLikeResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /api/posts/{id}/like [post]
func (h *PostHandler) ToggleLike(c echo.Context) error {
	identity, err := currentIdentity(c)
	if err != nil {
		return err
	}
	postID, err := pathID(c, "id", domain.ErrPostNotFound)
	if err != nil {
		return err
	}

	res, err := h.service.ToggleLike(c.Request().Context(), identity.UserID(), postID)
	if err != nil {
		return err
	}

	action := "unlike"
	if res.Liked {
		action = "like"
	}
	metrics.LikesToggledTotal.WithLabelValues(action).Inc()

	return c.JSON(http.StatusOK, toggleLikeResponse{
		ID:        res.Post.ID,
		IsLiked:   res.Liked,
		LikeCount: res.LikeCount,
		Post:      toPostResponse(res.Post),
	})
}

// LikeStatus handles GET /api/posts/:id/like-status.
//
// @Summary      Whether the caller likes a post
// @Tags         posts
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Post id"
// @Success      200  {object}  likeStatusResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /api/posts/{id}/like-status [get]
func (h *PostHandler) LikeStatus(c echo.Context) error {
	identity, err := currentIdentity(c)
	if err != nil {
		return err
	}
	postID, err := pathID(c, "id", domain.ErrPostNotFound)
	if err != nil {
		return err
	}

	res, err := h.service.LikeStatus(c.Request().Context(), identity.UserID(), postID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, likeStatusResponse{IsLiked: res.Liked, LikeCount: res.LikeCount})
}
