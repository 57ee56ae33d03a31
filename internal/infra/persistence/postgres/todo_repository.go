package postgres

import (
	"context"

	"todoapp/internal/domain/entity"
	domainerrors "todoapp/internal/domain/errors"
	"todoapp/internal/domain/repository"
	"todoapp/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// todoRepository implements the repository.TodoRepository interface using GORM.
type todoRepository struct {
	db *gorm.DB
}

// NewTodoRepository is the constructor for todoRepository.
func NewTodoRepository(db *gorm.DB) repository.TodoRepository {
	return &todoRepository{db: db}
}

// FindByID retrieves a single todo item by its unique ID, regardless of owner.
func (repo *todoRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.TodoItem, error) {
	var todoM model.TodoModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&todoM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrTodoNotFound
		}

		return nil, errors.Wrap(err, "failed to find todo by id")
	}

	return toTodoDomain(&todoM), nil
}

// FindByFilter retrieves the owner's todo items matching the filter, ordered
// ascending by due date. Nil predicates are skipped; the rest are ANDed.
func (repo *todoRepository) FindByFilter(ctx context.Context, userID uuid.UUID, filter *repository.TodoFilter) ([]*entity.TodoItem, error) {
	query := repo.db.WithContext(ctx).Where("user_id = ?", userID)

	if filter != nil {
		if filter.Status != nil {
			query = query.Where("status = ?", int16(*filter.Status))
		}
		if filter.Priority != nil {
			query = query.Where("priority = ?", int16(*filter.Priority))
		}
		if filter.DueBefore != nil {
			query = query.Where("due_date <= ?", *filter.DueBefore)
		}
	}

	var todoMs []model.TodoModel
	if err := query.Order("due_date ASC").Find(&todoMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list todos")
	}

	todos := make([]*entity.TodoItem, 0, len(todoMs))
	for i := range todoMs {
		todos = append(todos, toTodoDomain(&todoMs[i]))
	}

	return todos, nil
}

// Create persists a new todo item.
func (repo *todoRepository) Create(ctx context.Context, todo *entity.TodoItem) error {
	todoM := fromTodoDomain(todo)
	if todoM.ID == uuid.Nil {
		todoM.ID = uuid.New()
	}

	if err := repo.db.WithContext(ctx).Create(todoM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound.WrapMessage("todo owner does not exist")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create todo")
	}

	todo.ID = todoM.ID
	todo.CreatedAt = todoM.CreatedAt

	return nil
}

// Update modifies an existing todo item. Save writes all columns, including
// the nullable completed_at, so clearing it persists correctly.
func (repo *todoRepository) Update(ctx context.Context, todo *entity.TodoItem) error {
	todoM := fromTodoDomain(todo)

	if err := repo.db.WithContext(ctx).Save(todoM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update todo")
	}

	return nil
}

// Delete removes a todo item by its ID.
func (repo *todoRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.TodoModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete todo")
	}
	if result.RowsAffected == 0 {
		return repository.ErrTodoNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toTodoDomain converts a GORM TodoModel to a domain TodoItem entity.
func toTodoDomain(data *model.TodoModel) *entity.TodoItem {
	if data == nil {
		return nil
	}

	return &entity.TodoItem{
		ID:          data.ID,
		Title:       data.Title,
		Description: data.Description,
		DueDate:     data.DueDate,
		CreatedAt:   data.CreatedAt,
		CompletedAt: data.CompletedAt,
		Status:      entity.TodoStatus(data.Status),
		Priority:    entity.TodoPriority(data.Priority),
		UserID:      data.UserID,
	}
}

// fromTodoDomain converts a domain TodoItem entity to a GORM TodoModel for persistence.
func fromTodoDomain(data *entity.TodoItem) *model.TodoModel {
	if data == nil {
		return nil
	}

	return &model.TodoModel{
		ID:          data.ID,
		Title:       data.Title,
		Description: data.Description,
		DueDate:     data.DueDate,
		CreatedAt:   data.CreatedAt,
		CompletedAt: data.CompletedAt,
		Status:      int16(data.Status),
		Priority:    int16(data.Priority),
		UserID:      data.UserID,
	}
}
