// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new user.
type RegisterInput struct {
	Username        string
	Email           string
	Password        string
	ConfirmPassword string
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Username string
	Password string
}

// --- Output DTOs ---

// UserProfile is the outward-facing view of a user. It deliberately has no
// password hash field.
type UserProfile struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

// AuthResult is the outcome of a registration or login attempt. Expected
// failures (taken username, bad credentials) are reported through Errors
// rather than as Go errors, so the caller can surface every message at once.
type AuthResult struct {
	Success bool         `json:"success"`
	Token   string       `json:"token,omitempty"`
	User    *UserProfile `json:"user,omitempty"`
	Errors  []string     `json:"errors,omitempty"`
}

// FailedAuthResult builds a failed result carrying the given messages.
func FailedAuthResult(messages ...string) *AuthResult {
	return &AuthResult{Success: false, Errors: messages}
}

// AuthUsecase defines the interface for identity-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AuthUsecase interface {
	Register(ctx context.Context, input *RegisterInput) (*AuthResult, error)
	Login(ctx context.Context, input *LoginInput) (*AuthResult, error)
	GetProfile(ctx context.Context, userID uuid.UUID) (*UserProfile, error)
}
