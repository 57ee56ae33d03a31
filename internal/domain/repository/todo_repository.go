package repository

import (
	"context"
	"errors"
	"time"

	"todoapp/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrTodoNotFound is a domain-specific error returned when a todo item is not found.
var ErrTodoNotFound = errors.New("todo item not found")

// TodoFilter is a conjunction of optional predicates applied to a listing.
// Nil fields are skipped; the remaining predicates are ANDed together.
type TodoFilter struct {
	Status    *entity.TodoStatus
	Priority  *entity.TodoPriority
	DueBefore *time.Time // Matches items with DueDate <= DueBefore.
}

// TodoRepository defines the standard operations for task persistence.
type TodoRepository interface {
	// FindByID retrieves a single todo item by its unique ID, regardless of
	// owner. Ownership decisions belong to the application layer.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.TodoItem, error)

	// FindByFilter retrieves the owner's todo items matching the filter,
	// ordered ascending by due date.
	FindByFilter(ctx context.Context, userID uuid.UUID, filter *TodoFilter) ([]*entity.TodoItem, error)

	// Create persists a new todo item to the storage.
	Create(ctx context.Context, todo *entity.TodoItem) error

	// Update modifies an existing todo item in the storage.
	Update(ctx context.Context, todo *entity.TodoItem) error

	// Delete removes a todo item by its ID.
	Delete(ctx context.Context, id uuid.UUID) error
}
