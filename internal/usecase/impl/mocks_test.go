package impl

import (
	"context"

	"todoapp/internal/domain/entity"
	"todoapp/internal/domain/repository"
	"todoapp/internal/domain/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// --- repository mocks ---

type mockUserRepository struct {
	mock.Mock
}

func (m *mockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *mockUserRepository) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *mockUserRepository) UsernameExists(ctx context.Context, username string) (bool, error) {
	args := m.Called(ctx, username)

	return args.Bool(0), args.Error(1)
}

func (m *mockUserRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)

	return args.Bool(0), args.Error(1)
}

func (m *mockUserRepository) Create(ctx context.Context, user *entity.User) error {
	args := m.Called(ctx, user)

	return args.Error(0)
}

type mockTodoRepository struct {
	mock.Mock
}

func (m *mockTodoRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.TodoItem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.TodoItem), args.Error(1)
}

func (m *mockTodoRepository) FindByFilter(ctx context.Context, userID uuid.UUID, filter *repository.TodoFilter) ([]*entity.TodoItem, error) {
	args := m.Called(ctx, userID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.TodoItem), args.Error(1)
}

func (m *mockTodoRepository) Create(ctx context.Context, todo *entity.TodoItem) error {
	args := m.Called(ctx, todo)

	return args.Error(0)
}

func (m *mockTodoRepository) Update(ctx context.Context, todo *entity.TodoItem) error {
	args := m.Called(ctx, todo)

	return args.Error(0)
}

func (m *mockTodoRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}

// --- transaction stub ---

// stubTxManager runs the callback directly against the supplied mocks. The
// tests exercise the business rules, not transaction demarcation.
type stubTxManager struct {
	userRepo repository.UserRepository
	todoRepo repository.TodoRepository
}

func (s *stubTxManager) Execute(_ context.Context, fn func(factory repository.RepositoryFactory) error) error {
	return fn(&stubRepoFactory{userRepo: s.userRepo, todoRepo: s.todoRepo})
}

type stubRepoFactory struct {
	userRepo repository.UserRepository
	todoRepo repository.TodoRepository
}

func (f *stubRepoFactory) UserRepo() repository.UserRepository { return f.userRepo }

func (f *stubRepoFactory) TodoRepo() repository.TodoRepository { return f.todoRepo }

// --- service mocks ---

type mockPasswordHasher struct {
	mock.Mock
}

func (m *mockPasswordHasher) Hash(password string) (string, error) {
	args := m.Called(password)

	return args.String(0), args.Error(1)
}

func (m *mockPasswordHasher) Check(password, hash string) bool {
	args := m.Called(password, hash)

	return args.Bool(0)
}

type mockTokenService struct {
	mock.Mock
}

func (m *mockTokenService) Generate(user *entity.User) (string, error) {
	args := m.Called(user)

	return args.String(0), args.Error(1)
}

func (m *mockTokenService) Validate(token string) (*service.Claims, error) {
	args := m.Called(token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*service.Claims), args.Error(1)
}
