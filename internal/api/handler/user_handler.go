package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/townsquare/community/internal/core/domain"
	"github.com/townsquare/community/internal/core/ports"
)

type UserHandler struct {
	service ports.UserService
}

func NewUserHandler(service ports.UserService) *UserHandler {
	return &UserHandler{service: service}
}

// Profile handles GET /api/users/profile.
//
// @Summary      Current user's profile
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  userResponse
// @Failure      401  {object}  ErrorResponse
// @Router       /api/users/profile [get]
func (h *UserHandler) Profile(c echo.Context) error {
	identity, err := currentIdentity(c)
	if err != nil {
		return err
	}

	user, err := h.service.GetProfile(c.Request().Context(), identity.UserID())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toUserResponse(user))
}

// UpdateProfile handles PUT /api/users/profile.
//
// @Summary      Update the current user's name and biography
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      updateProfileRequest  true  "Name (>=2) and bio (<=500)"
// @Success      200   {object}  userResponse
// @Failure      400   {object}  ErrorResponse
// @Failure      401   {object}  ErrorResponse
// @Router       /api/users/profile [put]
func (h *UserHandler) UpdateProfile(c echo.Context) error {
	identity, err := currentIdentity(c)
	if err != nil {
		return err
	}

	var req updateProfileRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	user, err := h.service.UpdateProfile(c.Request().Context(), identity.UserID(), ports.ProfileInput{
		Name: req.Name,
		Bio:  req.Bio,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toUserResponse(user))
}

// Get handles GET /api/users/:id.
//
// @Summary      Public profile of a user
// @Tags         users
// @Produce      json
// @Param        id   path      string  true  "User id"
// @Success      200  {object}  userResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /api/users/{id} [get]
func (h *UserHandler) Get(c echo.Context) error {
	userID, err := pathID(c, "id", domain.ErrUserNotFound)
	if err != nil {
		return err
	}

	user, err := h.service.GetUser(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toUserResponse(user))
}
