package handler_test

import (
	"context"
	"io"
	"log/slog"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"todoapp/config"
	httpmiddleware "todoapp/internal/delivery/http/middleware"
	"todoapp/internal/delivery/http/router"
	"todoapp/internal/delivery/http/router/handler"
	"todoapp/internal/delivery/http/validator"
	"todoapp/internal/domain/entity"
	"todoapp/internal/domain/repository"
	"todoapp/internal/infra/auth"
	"todoapp/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// --- usecase mocks ---

type mockAuthUsecase struct {
	mock.Mock
}

func (m *mockAuthUsecase) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.AuthResult, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*usecase.AuthResult), args.Error(1)
}

func (m *mockAuthUsecase) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.AuthResult, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*usecase.AuthResult), args.Error(1)
}

func (m *mockAuthUsecase) GetProfile(ctx context.Context, userID uuid.UUID) (*usecase.UserProfile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*usecase.UserProfile), args.Error(1)
}

type mockTodoUsecase struct {
	mock.Mock
}

func (m *mockTodoUsecase) List(ctx context.Context, requesterID uuid.UUID, filter *repository.TodoFilter) ([]*entity.TodoItem, error) {
	args := m.Called(ctx, requesterID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.TodoItem), args.Error(1)
}

func (m *mockTodoUsecase) Get(ctx context.Context, id, requesterID uuid.UUID) (*entity.TodoItem, error) {
	args := m.Called(ctx, id, requesterID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.TodoItem), args.Error(1)
}

func (m *mockTodoUsecase) Create(ctx context.Context, input *usecase.CreateTodoInput, requesterID uuid.UUID) (*entity.TodoItem, error) {
	args := m.Called(ctx, input, requesterID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.TodoItem), args.Error(1)
}

func (m *mockTodoUsecase) Update(ctx context.Context, input *usecase.UpdateTodoInput, requesterID uuid.UUID) error {
	args := m.Called(ctx, input, requesterID)

	return args.Error(0)
}

func (m *mockTodoUsecase) Delete(ctx context.Context, id, requesterID uuid.UUID) error {
	args := m.Called(ctx, id, requesterID)

	return args.Error(0)
}

// --- harness ---

type apiFixture struct {
	echo     *echo.Echo
	authUC   *mockAuthUsecase
	todoUC   *mockTodoUsecase
	tokenFor func(t *testing.T, user *entity.User) string
}

// newAPIFixture wires the real router, validator, auth middleware and error
// handler around mocked usecases, with a working token service so requests
// travel the same path they do in production.
func newAPIFixture(t *testing.T) *apiFixture {
	t.Helper()

	cfg := &config.Config{
		JWT: config.JWTConfig{
			Secret:    "test-secret-at-least-32-bytes-long!",
			Issuer:    "todoapp-test",
			Audience:  "todoapp-client",
			ExpiresIn: time.Hour,
		},
	}

	tokenSvc, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	authUC := new(mockAuthUsecase)
	todoUC := new(mockTodoUsecase)

	e := echo.New()
	e.HideBanner = true
	e.Validator = validator.New()
	e.HTTPErrorHandler = httpmiddleware.NewErrorMiddleware(cfg, logger).HandleHTTPError

	r := router.NewRouter(router.RouterParams{
		AuthHandler:    handler.NewAuthHandler(authUC),
		TodoHandler:    handler.NewTodoHandler(todoUC),
		AuthMiddleware: httpmiddleware.NewAuthMiddleware(tokenSvc),
	})
	r.RegisterRoutes(e)

	return &apiFixture{
		echo:   e,
		authUC: authUC,
		todoUC: todoUC,
		tokenFor: func(t *testing.T, user *entity.User) string {
			t.Helper()
			token, err := tokenSvc.Generate(user)
			require.NoError(t, err)

			return token
		},
	}
}

func (f *apiFixture) request(method, target, token, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	f.echo.ServeHTTP(rec, req)

	return rec
}

func testUser(username string) *entity.User {
	return &entity.User{
		ID:       uuid.New(),
		Username: username,
		Email:    username + "@example.com",
	}
}
