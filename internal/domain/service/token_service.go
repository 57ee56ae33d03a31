package service

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"todoapp/internal/domain/entity"
)

// Claims defines the custom claims carried by the bearer tokens.
type Claims struct {
	Username string `json:"name"`
	Email    string `json:"email"`
	jwt.RegisteredClaims
}

// UserID parses the subject claim back into the authenticated user's id.
func (c *Claims) UserID() (uuid.UUID, error) {
	return uuid.Parse(c.Subject)
}

// TokenService defines the interface for issuing and validating bearer tokens.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// Generate creates a signed token encoding the user's identity and the
	// configured validity window.
	Generate(user *entity.User) (string, error)

	// Validate checks the signature, validity window, issuer and audience of
	// a token string and returns its claims. Any failure is a rejection; no
	// partial identity is ever returned.
	Validate(tokenString string) (*Claims, error)
}
