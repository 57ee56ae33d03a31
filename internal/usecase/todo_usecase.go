package usecase

import (
	"context"
	"time"

	"todoapp/internal/domain/entity"
	"todoapp/internal/domain/repository"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// CreateTodoInput defines the data a client may supply when creating a todo.
// There is deliberately no id, status or timestamp field: creation always
// starts a todo as NotStarted, owned by the requester, created now.
type CreateTodoInput struct {
	Title       string
	Description string
	DueDate     time.Time
	Priority    entity.TodoPriority
}

// UpdateTodoInput defines the full set of mutable fields for an update.
type UpdateTodoInput struct {
	ID          uuid.UUID
	Title       string
	Description string
	DueDate     time.Time
	Priority    entity.TodoPriority
	Status      entity.TodoStatus
}

// TodoUsecase defines the interface for owner-scoped task operations.
// Every method takes the authenticated requester's id explicitly; ownership
// is never inferred from the entity itself.
type TodoUsecase interface {
	// List returns the requester's todos matching the filter, ordered
	// ascending by due date.
	List(ctx context.Context, requesterID uuid.UUID, filter *repository.TodoFilter) ([]*entity.TodoItem, error)

	// Get returns the todo only when it exists and belongs to the requester;
	// otherwise it reports not-found, hiding other users' todos on read.
	Get(ctx context.Context, id, requesterID uuid.UUID) (*entity.TodoItem, error)

	// Create stores a new todo owned by the requester with status forced to
	// NotStarted.
	Create(ctx context.Context, input *CreateTodoInput, requesterID uuid.UUID) (*entity.TodoItem, error)

	// Update applies the input to an existing todo after the ownership check.
	Update(ctx context.Context, input *UpdateTodoInput, requesterID uuid.UUID) error

	// Delete removes an existing todo after the ownership check.
	Delete(ctx context.Context, id, requesterID uuid.UUID) error
}
