package impl

import (
	"context"
	"testing"
	"time"

	"todoapp/internal/domain/entity"
	domainerrors "todoapp/internal/domain/errors"
	"todoapp/internal/domain/repository"
	"todoapp/internal/errors"
	"todoapp/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTodoFixture() (usecase.TodoUsecase, *mockTodoRepository) {
	todoRepo := new(mockTodoRepository)
	svc := NewTodoService(todoRepo, testLogger())

	return svc, todoRepo
}

func ownedTodo(ownerID uuid.UUID) *entity.TodoItem {
	return &entity.TodoItem{
		ID:          uuid.New(),
		Title:       "Buy groceries",
		Description: "Milk and bread",
		DueDate:     time.Now().Add(24 * time.Hour),
		CreatedAt:   time.Now().Add(-time.Hour),
		Status:      entity.StatusNotStarted,
		Priority:    entity.PriorityMedium,
		UserID:      ownerID,
	}
}

func TestTodoServiceCreateForcesNotStarted(t *testing.T) {
	t.Parallel()

	svc, todoRepo := newTodoFixture()
	ownerID := uuid.New()

	todoRepo.On("Create", mock.Anything, mock.MatchedBy(func(todo *entity.TodoItem) bool {
		return todo.Status == entity.StatusNotStarted &&
			todo.CompletedAt == nil &&
			todo.UserID == ownerID
	})).Return(nil)

	input := &usecase.CreateTodoInput{
		Title:    "Buy groceries",
		DueDate:  time.Now().Add(24 * time.Hour),
		Priority: entity.PriorityHigh,
	}

	todo, err := svc.Create(context.Background(), input, ownerID)
	require.NoError(t, err)

	assert.Equal(t, entity.StatusNotStarted, todo.Status)
	assert.Nil(t, todo.CompletedAt)
	assert.Equal(t, ownerID, todo.UserID)
	assert.Equal(t, entity.PriorityHigh, todo.Priority)
	assert.False(t, todo.CreatedAt.IsZero())
	todoRepo.AssertExpectations(t)
}

func TestTodoServiceGetForeignTodoReportsNotFound(t *testing.T) {
	t.Parallel()

	svc, todoRepo := newTodoFixture()
	alice := uuid.New()
	bob := uuid.New()

	todo := ownedTodo(alice)
	todoRepo.On("FindByID", mock.Anything, todo.ID).Return(todo, nil)

	got, err := svc.Get(context.Background(), todo.ID, bob)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrTodoNotFound))
	assert.Nil(t, got)
}

func TestTodoServiceGetOwnTodo(t *testing.T) {
	t.Parallel()

	svc, todoRepo := newTodoFixture()
	alice := uuid.New()

	todo := ownedTodo(alice)
	todoRepo.On("FindByID", mock.Anything, todo.ID).Return(todo, nil)

	got, err := svc.Get(context.Background(), todo.ID, alice)
	require.NoError(t, err)
	assert.Equal(t, todo, got)
}

func TestTodoServiceUpdateForeignTodoReportsOwnershipViolation(t *testing.T) {
	t.Parallel()

	svc, todoRepo := newTodoFixture()
	alice := uuid.New()
	bob := uuid.New()

	todo := ownedTodo(alice)
	todoRepo.On("FindByID", mock.Anything, todo.ID).Return(todo, nil)

	input := &usecase.UpdateTodoInput{
		ID:       todo.ID,
		Title:    "hijacked",
		DueDate:  todo.DueDate,
		Priority: todo.Priority,
		Status:   todo.Status,
	}

	err := svc.Update(context.Background(), input, bob)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrTodoOwnershipViolation))
	todoRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestTodoServiceUpdateMissingTodoReportsNotFound(t *testing.T) {
	t.Parallel()

	svc, todoRepo := newTodoFixture()
	id := uuid.New()

	todoRepo.On("FindByID", mock.Anything, id).Return(nil, repository.ErrTodoNotFound)

	err := svc.Update(context.Background(), &usecase.UpdateTodoInput{ID: id}, uuid.New())
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrTodoNotFound))
}

func TestTodoServiceUpdateCompletionStampsTime(t *testing.T) {
	t.Parallel()

	svc, todoRepo := newTodoFixture()
	alice := uuid.New()

	todo := ownedTodo(alice)
	todoRepo.On("FindByID", mock.Anything, todo.ID).Return(todo, nil)

	var saved *entity.TodoItem
	todoRepo.On("Update", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		saved = args.Get(1).(*entity.TodoItem)
	}).Return(nil)

	input := &usecase.UpdateTodoInput{
		ID:       todo.ID,
		Title:    todo.Title,
		DueDate:  todo.DueDate,
		Priority: todo.Priority,
		Status:   entity.StatusCompleted,
	}

	require.NoError(t, svc.Update(context.Background(), input, alice))

	require.NotNil(t, saved)
	assert.Equal(t, entity.StatusCompleted, saved.Status)
	require.NotNil(t, saved.CompletedAt)
	assert.WithinDuration(t, time.Now(), *saved.CompletedAt, 5*time.Second)
}

func TestTodoServiceUpdateReopeningClearsCompletedAt(t *testing.T) {
	t.Parallel()

	svc, todoRepo := newTodoFixture()
	alice := uuid.New()

	completedAt := time.Now().Add(-time.Hour)
	todo := ownedTodo(alice)
	todo.Status = entity.StatusCompleted
	todo.CompletedAt = &completedAt

	todoRepo.On("FindByID", mock.Anything, todo.ID).Return(todo, nil)

	var saved *entity.TodoItem
	todoRepo.On("Update", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		saved = args.Get(1).(*entity.TodoItem)
	}).Return(nil)

	input := &usecase.UpdateTodoInput{
		ID:       todo.ID,
		Title:    todo.Title,
		DueDate:  todo.DueDate,
		Priority: todo.Priority,
		Status:   entity.StatusInProgress,
	}

	require.NoError(t, svc.Update(context.Background(), input, alice))

	require.NotNil(t, saved)
	assert.Equal(t, entity.StatusInProgress, saved.Status)
	assert.Nil(t, saved.CompletedAt)
}

func TestTodoServiceUpdateSameStatusKeepsCompletedAt(t *testing.T) {
	t.Parallel()

	svc, todoRepo := newTodoFixture()
	alice := uuid.New()

	completedAt := time.Now().Add(-time.Hour)
	todo := ownedTodo(alice)
	todo.Status = entity.StatusCompleted
	todo.CompletedAt = &completedAt

	todoRepo.On("FindByID", mock.Anything, todo.ID).Return(todo, nil)

	var saved *entity.TodoItem
	todoRepo.On("Update", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		saved = args.Get(1).(*entity.TodoItem)
	}).Return(nil)

	input := &usecase.UpdateTodoInput{
		ID:       todo.ID,
		Title:    "renamed",
		DueDate:  todo.DueDate,
		Priority: todo.Priority,
		Status:   entity.StatusCompleted,
	}

	require.NoError(t, svc.Update(context.Background(), input, alice))

	require.NotNil(t, saved)
	require.NotNil(t, saved.CompletedAt)
	assert.Equal(t, completedAt, *saved.CompletedAt)
	assert.Equal(t, "renamed", saved.Title)
}

func TestTodoServiceDeleteForeignTodoReportsOwnershipViolation(t *testing.T) {
	t.Parallel()

	svc, todoRepo := newTodoFixture()
	alice := uuid.New()
	bob := uuid.New()

	todo := ownedTodo(alice)
	todoRepo.On("FindByID", mock.Anything, todo.ID).Return(todo, nil)

	err := svc.Delete(context.Background(), todo.ID, bob)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrTodoOwnershipViolation))
	todoRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestTodoServiceDeleteOwnTodo(t *testing.T) {
	t.Parallel()

	svc, todoRepo := newTodoFixture()
	alice := uuid.New()

	todo := ownedTodo(alice)
	todoRepo.On("FindByID", mock.Anything, todo.ID).Return(todo, nil)
	todoRepo.On("Delete", mock.Anything, todo.ID).Return(nil)

	require.NoError(t, svc.Delete(context.Background(), todo.ID, alice))
	todoRepo.AssertExpectations(t)
}

func TestTodoServiceListPassesFilterThrough(t *testing.T) {
	t.Parallel()

	svc, todoRepo := newTodoFixture()
	alice := uuid.New()

	status := entity.StatusInProgress
	dueBefore := time.Now().Add(48 * time.Hour)
	filter := &repository.TodoFilter{Status: &status, DueBefore: &dueBefore}

	expected := []*entity.TodoItem{ownedTodo(alice)}
	todoRepo.On("FindByFilter", mock.Anything, alice, filter).Return(expected, nil)

	todos, err := svc.List(context.Background(), alice, filter)
	require.NoError(t, err)
	assert.Equal(t, expected, todos)
	todoRepo.AssertExpectations(t)
}
