package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/townsquare/community/internal/api/metrics"
	"github.com/townsquare/community/internal/core/domain"
	"github.com/townsquare/community/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Register creates a new user account and signs it in.
//
// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Account details"
// @Success      201   {object}  authResponse
// @Failure      400   {object}  ErrorResponse
// @Failure      409   {object}  ErrorResponse
// @Failure      500   {object}  ErrorResponse
// @Router       /api/auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	res, err := h.authService.Register(c.Request().Context(), ports.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	metrics.AuthAttemptsTotal.WithLabelValues("register", resultLabel(err)).Inc()
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, authResponse{Token: res.Token, User: toUserResponse(res.User)})
}

// Login authenticates a user and returns a bearer token.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  authResponse
// @Failure      400   {object}  ErrorResponse
// @Failure      401   {object}  ErrorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	res, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	metrics.AuthAttemptsTotal.WithLabelValues("login", resultLabel(err)).Inc()
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, authResponse{Token: res.Token, User: toUserResponse(res.User)})
}

// Logout revokes the presented token.
//
// @Summary      Logout
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  messageResponse
// @Failure      401  {object}  ErrorResponse
// @Router       /api/auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	identity, err := currentIdentity(c)
	if err != nil {
		return err
	}

	err = h.authService.Logout(c.Request().Context(), identity)
	metrics.AuthAttemptsTotal.WithLabelValues("logout", resultLabel(err)).Inc()
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, messageResponse{Message: "logged out"})
}

func resultLabel(err error) string {
	if err == nil {
		return "ok"
	}
	return string(domain.KindOf(err))
}
