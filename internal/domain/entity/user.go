// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User represents a registered account. Identity fields are immutable after
// creation; PasswordHash is opaque to every layer except the password hasher
// and must never be serialized into responses or logs.
type User struct {
	ID           uuid.UUID // Immutable identity of the account.
	Username     string    // Unique login name, 3-20 chars of [a-zA-Z0-9_-].
	Email        string    // Unique contact address, at most 50 chars.
	PasswordHash string    // Opaque bcrypt digest of the password.
	CreatedAt    time.Time // Set once at registration.
}
