package handler

import (
	"net/http"
	"time"

	"todoapp/internal/delivery/http/middleware"
	"todoapp/internal/delivery/http/response"
	"todoapp/internal/domain/entity"
	"todoapp/internal/domain/repository"
	"todoapp/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// TodoHandler holds dependencies for todo-related handlers.
type TodoHandler struct {
	uc usecase.TodoUsecase
}

// NewTodoHandler is the constructor for TodoHandler, injected by Fx.
func NewTodoHandler(uc usecase.TodoUsecase) *TodoHandler {
	return &TodoHandler{uc: uc}
}

type createTodoRequest struct {
	Title       string              `json:"title" validate:"required,max=40"`
	Description string              `json:"description" validate:"max=500"`
	DueDate     time.Time           `json:"dueDate" validate:"required"`
	Priority    entity.TodoPriority `json:"priority"`
}

type updateTodoRequest struct {
	ID          uuid.UUID           `json:"id"`
	Title       string              `json:"title" validate:"required,max=40"`
	Description string              `json:"description" validate:"max=500"`
	DueDate     time.Time           `json:"dueDate" validate:"required"`
	Priority    entity.TodoPriority `json:"priority"`
	Status      entity.TodoStatus   `json:"status"`
}

// todoResponse is the outward-facing view of a todo item.
type todoResponse struct {
	ID          uuid.UUID           `json:"id"`
	Title       string              `json:"title"`
	Description string              `json:"description"`
	DueDate     time.Time           `json:"dueDate"`
	CreatedAt   time.Time           `json:"createdAt"`
	CompletedAt *time.Time          `json:"completedAt"`
	Status      entity.TodoStatus   `json:"status"`
	Priority    entity.TodoPriority `json:"priority"`
}

// List returns the caller's todos, optionally filtered by status, priority
// and due date through query parameters.
func (h *TodoHandler) List(c echo.Context) error {
	userID, ok := c.Get(middleware.ContextKeyUserID).(uuid.UUID)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	filter, err := parseTodoFilter(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_FILTER", err.Error())
	}

	todos, err := h.uc.List(c.Request().Context(), userID, filter)
	if err != nil {
		return errors.WithStack(err)
	}

	resp := make([]*todoResponse, 0, len(todos))
	for _, todo := range todos {
		resp = append(resp, toTodoResponse(todo))
	}

	return c.JSON(http.StatusOK, resp)
}

// Get returns a single todo owned by the caller.
func (h *TodoHandler) Get(c echo.Context) error {
	userID, ok := c.Get(middleware.ContextKeyUserID).(uuid.UUID)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Todo id must be a valid UUID")
	}

	todo, err := h.uc.Get(c.Request().Context(), id, userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, toTodoResponse(todo))
}

// Create stores a new todo for the caller.
func (h *TodoHandler) Create(c echo.Context) error {
	userID, ok := c.Get(middleware.ContextKeyUserID).(uuid.UUID)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req createTodoRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid todo input")
	}

	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	// Due dates earlier today are still acceptable; only days before today
	// are rejected.
	if req.DueDate.Before(startOfToday()) {
		return response.ValidationFailed(c, []string{"Due date cannot be in the past"})
	}

	todo, err := h.uc.Create(c.Request().Context(), &usecase.CreateTodoInput{
		Title:       req.Title,
		Description: req.Description,
		DueDate:     req.DueDate,
		Priority:    req.Priority,
	}, userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusCreated, toTodoResponse(todo))
}

// Update replaces the mutable fields of a todo. The body id must match the
// path id so a client cannot redirect an update mid-flight.
func (h *TodoHandler) Update(c echo.Context) error {
	userID, ok := c.Get(middleware.ContextKeyUserID).(uuid.UUID)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Todo id must be a valid UUID")
	}

	var req updateTodoRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid todo input")
	}

	if req.ID != id {
		return response.BadRequest(c, "ID_MISMATCH", "Todo id in the body does not match the id in the route")
	}

	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	err = h.uc.Update(c.Request().Context(), &usecase.UpdateTodoInput{
		ID:          req.ID,
		Title:       req.Title,
		Description: req.Description,
		DueDate:     req.DueDate,
		Priority:    req.Priority,
		Status:      req.Status,
	}, userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}

// Delete removes a todo owned by the caller.
func (h *TodoHandler) Delete(c echo.Context) error {
	userID, ok := c.Get(middleware.ContextKeyUserID).(uuid.UUID)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Todo id must be a valid UUID")
	}

	if err := h.uc.Delete(c.Request().Context(), id, userID); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}

func startOfToday() time.Time {
	now := time.Now()

	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
}

// parseTodoFilter reads the optional status, priority and dueDateBefore
// query parameters. Absent parameters leave their predicate nil.
func parseTodoFilter(c echo.Context) (*repository.TodoFilter, error) {
	filter := &repository.TodoFilter{}

	if raw := c.QueryParam("status"); raw != "" {
		status, err := entity.ParseTodoStatus(raw)
		if err != nil {
			return nil, errors.Errorf("invalid status %q", raw)
		}
		filter.Status = &status
	}

	if raw := c.QueryParam("priority"); raw != "" {
		priority, err := entity.ParseTodoPriority(raw)
		if err != nil {
			return nil, errors.Errorf("invalid priority %q", raw)
		}
		filter.Priority = &priority
	}

	if raw := c.QueryParam("dueDateBefore"); raw != "" {
		dueBefore, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return nil, errors.Errorf("invalid dueDateBefore %q, expected RFC 3339", raw)
		}
		filter.DueBefore = &dueBefore
	}

	return filter, nil
}

// toTodoResponse maps a domain todo to its outward-facing shape.
func toTodoResponse(todo *entity.TodoItem) *todoResponse {
	return &todoResponse{
		ID:          todo.ID,
		Title:       todo.Title,
		Description: todo.Description,
		DueDate:     todo.DueDate,
		CreatedAt:   todo.CreatedAt,
		CompletedAt: todo.CompletedAt,
		Status:      todo.Status,
		Priority:    todo.Priority,
	}
}
