// Package handler contains the HTTP handlers for the application.
package handler

import (
	"net/http"

	"todoapp/internal/delivery/http/middleware"
	"todoapp/internal/delivery/http/response"
	"todoapp/internal/delivery/http/validator"
	"todoapp/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AuthHandler holds dependencies for identity-related handlers.
type AuthHandler struct {
	uc usecase.AuthUsecase
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(uc usecase.AuthUsecase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

type registerRequest struct {
	Username        string `json:"username" validate:"required,min=3,max=20,username"`
	Email           string `json:"email" validate:"required,email,max=50"`
	Password        string `json:"password" validate:"required,min=8,strong_password"`
	ConfirmPassword string `json:"confirmPassword" validate:"required"`
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Register handles the user registration request. Expected failures come
// back as a failed result body with every message listed, not as a bare
// error string.
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, usecase.FailedAuthResult("Invalid registration input"))
	}

	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, failedResultFrom(err))
	}

	result, err := h.uc.Register(c.Request().Context(), &usecase.RegisterInput{
		Username:        req.Username,
		Email:           req.Email,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	if !result.Success {
		return c.JSON(http.StatusBadRequest, result)
	}

	return c.JSON(http.StatusOK, result)
}

// Login handles the user login request.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, usecase.FailedAuthResult("Invalid login input"))
	}

	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, failedResultFrom(err))
	}

	result, err := h.uc.Login(c.Request().Context(), &usecase.LoginInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	if !result.Success {
		return c.JSON(http.StatusBadRequest, result)
	}

	return c.JSON(http.StatusOK, result)
}

// Current returns the authenticated user's profile.
func (h *AuthHandler) Current(c echo.Context) error {
	userID, ok := c.Get(middleware.ContextKeyUserID).(uuid.UUID)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	profile, err := h.uc.GetProfile(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, profile)
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}

// failedResultFrom shapes validation failures like any other auth failure so
// clients parse a single result type.
func failedResultFrom(err error) *usecase.AuthResult {
	var vErr *validator.Error
	if errors.As(err, &vErr) {
		return usecase.FailedAuthResult(vErr.Messages...)
	}

	return usecase.FailedAuthResult(err.Error())
}
