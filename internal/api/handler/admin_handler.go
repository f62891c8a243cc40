package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/townsquare/community/internal/api/metrics"
	"github.com/townsquare/community/internal/api/middleware"
	"github.com/townsquare/community/internal/core/domain"
	"github.com/townsquare/community/internal/core/ports"
)

// AdminHandler serves the moderation console. It is mounted behind Auth and
// RequireRole(admin); the service repeats the admin check on the identity.
type AdminHandler struct {
	service ports.AdminService
}

func NewAdminHandler(service ports.AdminService) *AdminHandler {
	return &AdminHandler{service: service}
}

// ListUsers handles GET /api/admin/users.
//
// @Summary      List every user, newest first
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   userResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      403  {object}  ErrorResponse
// @Router       /api/admin/users [get]
func (h *AdminHandler) ListUsers(c echo.Context) error {
	users, err := h.service.ListUsers(c.Request().Context(), middleware.IdentityFrom(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toUserResponses(users))
}

// DeleteUser handles DELETE /api/admin/users/:userId.
//
// @Summary      Delete a user together with their posts and likes
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        userId  path      string  true  "User id"
// @Success      200     {object}  deleteUserResponse
// @Failure      400     {object}  ErrorResponse
// @Failure      403     {object}  ErrorResponse
// @Failure      404     {object}  ErrorResponse
// @Router       /api/admin/users/{userId} [delete]
func (h *AdminHandler) DeleteUser(c echo.Context) error {
	userID, err := pathID(c, "userId", domain.ErrUserNotFound)
	if err != nil {
		return err
	}

	res, err := h.service.DeleteUser(c.Request().Context(), middleware.IdentityFrom(c), userID)
	if err != nil {
		return err
	}

	metrics.UsersDeletedTotal.Inc()
	metrics.CascadePostsDeletedTotal.Add(float64(res.PostsDeleted))

	return c.JSON(http.StatusOK, deleteUserResponse{
		Message:      "user and their posts deleted successfully",
		PostsDeleted: res.PostsDeleted,
		LikesRemoved: res.LikesRemoved,
	})
}

// DeletePost handles DELETE /api/admin/posts/:postId.
//
// @Summary      Delete any post
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        postId  path      string  true  "Post id"
// @Success      200     {object}  messageResponse
// @Failure      403     {object}  ErrorResponse
// @Failure      404     {object}  ErrorResponse
// @Router       /api/admin/posts/{postId} [delete]
func (h *AdminHandler) DeletePost(c echo.Context) error {
	postID, err := pathID(c, "postId", domain.ErrPostNotFound)
	if err != nil {
		return err
	}

	if err := h.service.DeletePost(c.Request().Context(), middleware.IdentityFrom(c), postID); err != nil {
		return err
	}

	metrics.PostsModeratedTotal.Inc()
	return c.JSON(http.StatusOK, messageResponse{Message: "post deleted successfully"})
}

// Stats handles GET /api/admin/stats.
//
// @Summary      Platform statistics
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  statsResponse
// @Failure      403  {object}  ErrorResponse
// @Router       /api/admin/stats [get]
func (h *AdminHandler) Stats(c echo.Context) error {
	stats, err := h.service.Stats(c.Request().Context(), middleware.IdentityFrom(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, statsResponse{
		TotalUsers:  stats.TotalUsers,
		TotalPosts:  stats.TotalPosts,
		TotalAdmins: stats.TotalAdmins,
		RecentUsers: stats.RecentUsers,
		RecentPosts: stats.RecentPosts,
	})
}

// Promote handles PUT /api/admin/users/:userId/promote.
//
// @Summary      Grant the admin role
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        userId  path      string  true  "User id"
// @Success      200     {object}  roleChangeResponse
// @Failure      400     {object}  ErrorResponse
// @Failure      403     {object}  ErrorResponse
// @Failure      404     {object}  ErrorResponse
// @Router       /api/admin/users/{userId}/promote [put]
func (h *AdminHandler) Promote(c echo.Context) error {
	userID, err := pathID(c, "userId", domain.ErrUserNotFound)
	if err != nil {
		return err
	}

	user, err := h.service.PromoteUser(c.Request().Context(), middleware.IdentityFrom(c), userID)
	if err != nil {
		return err
	}

	metrics.RoleChangesTotal.WithLabelValues("promote").Inc()
	return c.JSON(http.StatusOK, roleChangeResponse{
		Message: "user promoted to admin successfully",
		User:    toUserResponse(user),
	})
}

// Demote handles PUT /api/admin/users/:userId/demote.
//
// @Summary      Revoke the admin role
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        userId  path      string  true  "User id"
// @Success      200     {object}  roleChangeResponse
// @Failure      400     {object}  ErrorResponse
// @Failure      403     {object}  ErrorResponse
// @Failure      404     {object}  ErrorResponse
// @Router       /api/admin/users/{userId}/demote [put]
func (h *AdminHandler) Demote(c echo.Context) error {
	userID, err := pathID(c, "userId", domain.ErrUserNotFound)
	if err != nil {
		return err
	}

	user, err := h.service.DemoteUser(c.Request().Context(), middleware.IdentityFrom(c), userID)
	if err != nil {
		return err
	}

	metrics.RoleChangesTotal.WithLabelValues("demote").Inc()
	return c.JSON(http.StatusOK, roleChangeResponse{
		Message: "admin demoted to user successfully",
		User:    toUserResponse(user),
	})
}

// UserPosts handles GET /api/admin/users/:userId/posts.
//
// @Summary      A user's posts, newest first
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        userId  path      string  true  "User id"
// @Success      200     {array}   postResponse
// @Failure      403     {object}  ErrorResponse
// @Failure      404     {object}  ErrorResponse
// @Router       /api/admin/users/{userId}/posts [get]
func (h *AdminHandler) UserPosts(c echo.Context) error {
	userID, err := pathID(c, "userId", domain.ErrUserNotFound)
	if err != nil {
		return err
	}

	posts, err := h.service.ListUserPosts(c.Request().Context(), middleware.IdentityFrom(c), userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toPostResponses(posts))
}
