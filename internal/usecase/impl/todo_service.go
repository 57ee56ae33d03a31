package impl

import (
	"context"
	"log/slog"
	"time"

	"todoapp/internal/domain/entity"
	domainerrors "todoapp/internal/domain/errors"
	"todoapp/internal/domain/repository"
	"todoapp/internal/errors"
	"todoapp/internal/usecase"

	"github.com/google/uuid"
)

// todoService implements the usecase.TodoUsecase interface.
type todoService struct {
	todoRepo repository.TodoRepository
	logger   *slog.Logger
}

// NewTodoService is the constructor for todoService.
func NewTodoService(todoRepo repository.TodoRepository, logger *slog.Logger) usecase.TodoUsecase {
	return &todoService{
		todoRepo: todoRepo,
		logger:   logger,
	}
}

// List returns the requester's todos matching the filter.
func (s *todoService) List(ctx context.Context, requesterID uuid.UUID, filter *repository.TodoFilter) ([]*entity.TodoItem, error) {
	todos, err := s.todoRepo.FindByFilter(ctx, requesterID, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list todos")
	}

	return todos, nil
}

// Get returns the todo when it exists and belongs to the requester. A todo
// owned by someone else is reported as not found, so reads never reveal
// whether a given id exists for another user.
func (s *todoService) Get(ctx context.Context, id, requesterID uuid.UUID) (*entity.TodoItem, error) {
	todo, err := s.todoRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrTodoNotFound) {
			return nil, domainerrors.ErrTodoNotFound
		}

		return nil, errors.Wrap(err, "failed to load todo")
	}

	if todo.UserID != requesterID {
		return nil, domainerrors.ErrTodoNotFound
	}

	return todo, nil
}

// Create stores a new todo owned by the requester. Status always starts as
// NotStarted and CompletedAt empty, whatever the client sent.
func (s *todoService) Create(ctx context.Context, input *usecase.CreateTodoInput, requesterID uuid.UUID) (*entity.TodoItem, error) {
	todo := &entity.TodoItem{
		Title:       input.Title,
		Description: input.Description,
		DueDate:     input.DueDate,
		CreatedAt:   time.Now().UTC(),
		CompletedAt: nil,
		Status:      entity.StatusNotStarted,
		Priority:    input.Priority,
		UserID:      requesterID,
	}

	if err := s.todoRepo.Create(ctx, todo); err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "todo created",
		slog.String("todoID", todo.ID.String()),
		slog.String("userID", requesterID.String()))

	return todo, nil
}

// Update applies the input to an existing todo. Unlike Get, an existing todo
// owned by someone else is rejected with an ownership error rather than
// not-found, mirroring the read/write split of the permission model.
func (s *todoService) Update(ctx context.Context, input *usecase.UpdateTodoInput, requesterID uuid.UUID) error {
	todo, err := s.todoRepo.FindByID(ctx, input.ID)
	if err != nil {
		if errors.Is(err, repository.ErrTodoNotFound) {
			return domainerrors.ErrTodoNotFound
		}

		return errors.Wrap(err, "failed to load todo for update")
	}

	if todo.UserID != requesterID {
		return domainerrors.ErrTodoOwnershipViolation
	}

	applyStatusChange(todo, input.Status)

	todo.Title = input.Title
	todo.Description = input.Description
	todo.DueDate = input.DueDate
	todo.Priority = input.Priority

	if err := s.todoRepo.Update(ctx, todo); err != nil {
		return err
	}

	s.logger.InfoContext(ctx, "todo updated",
		slog.String("todoID", todo.ID.String()),
		slog.String("userID", requesterID.String()))

	return nil
}

// Delete removes an existing todo after the ownership check.
func (s *todoService) Delete(ctx context.Context, id, requesterID uuid.UUID) error {
	todo, err := s.todoRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrTodoNotFound) {
			return domainerrors.ErrTodoNotFound
		}

		return errors.Wrap(err, "failed to load todo for delete")
	}

	if todo.UserID != requesterID {
		return domainerrors.ErrTodoOwnershipViolation
	}

	if err := s.todoRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrTodoNotFound) {
			return domainerrors.ErrTodoNotFound
		}

		return err
	}

	s.logger.InfoContext(ctx, "todo deleted",
		slog.String("todoID", id.String()),
		slog.String("userID", requesterID.String()))

	return nil
}

// applyStatusChange moves the todo to the new status and keeps CompletedAt in
// step: entering Completed stamps it, leaving Completed clears it, and a
// no-op status write leaves the original completion time untouched.
func applyStatusChange(todo *entity.TodoItem, newStatus entity.TodoStatus) {
	if todo.Status == newStatus {
		return
	}

	if newStatus == entity.StatusCompleted {
		now := time.Now().UTC()
		todo.CompletedAt = &now
	} else {
		todo.CompletedAt = nil
	}

	todo.Status = newStatus
}
