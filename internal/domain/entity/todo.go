package entity

import (
	"time"

	"github.com/google/uuid"
)

// TodoItem is a single task owned by exactly one user. The owner is recorded
// as a plain foreign-key id; relationships are resolved through explicit
// store lookups, never embedded object graphs.
//
// Invariant: CompletedAt is non-nil if and only if Status is Completed.
type TodoItem struct {
	ID          uuid.UUID
	Title       string // Required, at most 40 chars.
	Description string // Optional, at most 500 chars; empty string when absent.
	DueDate     time.Time
	CreatedAt   time.Time  // Set once at creation.
	CompletedAt *time.Time // Set when Status becomes Completed, cleared otherwise.
	Status      TodoStatus
	Priority    TodoPriority
	UserID      uuid.UUID // Owner; immutable after creation.
}
