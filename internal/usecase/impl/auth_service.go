// Package impl provides the concrete implementations of the usecase interfaces.
package impl

import (
	"context"
	"log/slog"
	"time"

	"todoapp/internal/domain/entity"
	domainerrors "todoapp/internal/domain/errors"
	"todoapp/internal/domain/repository"
	"todoapp/internal/domain/service"
	"todoapp/internal/errors"
	"todoapp/internal/usecase"

	"github.com/google/uuid"
)

// Fixed messages returned to clients on expected registration and login
// failures. Login failures share one message for unknown usernames and wrong
// passwords so responses cannot be used to probe which usernames exist.
const (
	msgPasswordMismatch   = "Passwords do not match"
	msgUsernameTaken      = "Username is already taken"
	msgEmailRegistered    = "Email is already registered"
	msgInvalidCredentials = "Invalid username or password"
)

// Sentinels for the registration pre-checks. They are deliberately distinct
// from the conflict errors the store maps constraint violations to: a
// pre-check hit becomes a failed result (400), while a uniqueness race lost
// at the unique index propagates as a conflict error (409).
var (
	errUsernameTaken   = errors.New("username already taken")
	errEmailRegistered = errors.New("email already registered")
)

// authService implements the usecase.AuthUsecase interface.
type authService struct {
	txManager repository.TransactionManager
	userRepo  repository.UserRepository
	hasher    service.PasswordHasher
	tokenSvc  service.TokenService
	logger    *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(
	txManager repository.TransactionManager,
	userRepo repository.UserRepository,
	hasher service.PasswordHasher,
	tokenSvc service.TokenService,
	logger *slog.Logger,
) usecase.AuthUsecase {
	return &authService{
		txManager: txManager,
		userRepo:  userRepo,
		hasher:    hasher,
		tokenSvc:  tokenSvc,
		logger:    logger,
	}
}

// Register creates a new account and returns a signed token on success.
// Uniqueness checks and the insert run inside one transaction; the unique
// indexes remain the final arbiter if two registrations race.
func (s *authService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.AuthResult, error) {
	if input.Password != input.ConfirmPassword {
		return usecase.FailedAuthResult(msgPasswordMismatch), nil
	}

	var user *entity.User

	err := s.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		userRepo := factory.UserRepo()

		taken, err := userRepo.UsernameExists(ctx, input.Username)
		if err != nil {
			return errors.Wrap(err, "failed to check username availability")
		}
		if taken {
			return errUsernameTaken
		}

		registered, err := userRepo.EmailExists(ctx, input.Email)
		if err != nil {
			return errors.Wrap(err, "failed to check email availability")
		}
		if registered {
			return errEmailRegistered
		}

		hash, err := s.hasher.Hash(input.Password)
		if err != nil {
			return errors.Wrap(err, "failed to hash password")
		}

		user = &entity.User{
			Username:     input.Username,
			Email:        input.Email,
			PasswordHash: hash,
			CreatedAt:    time.Now().UTC(),
		}

		return userRepo.Create(ctx, user)
	})
	if err != nil {
		if errors.Is(err, errUsernameTaken) {
			return usecase.FailedAuthResult(msgUsernameTaken), nil
		}
		if errors.Is(err, errEmailRegistered) {
			return usecase.FailedAuthResult(msgEmailRegistered), nil
		}

		// Anything else, including a uniqueness race lost at the unique
		// index, stays an error so the boundary maps it (409 for conflicts).
		return nil, err
	}

	token, err := s.tokenSvc.Generate(user)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue token after registration")
	}

	s.logger.InfoContext(ctx, "user registered",
		slog.String("userID", user.ID.String()),
		slog.String("username", user.Username))

	return &usecase.AuthResult{
		Success: true,
		Token:   token,
		User:    toUserProfile(user),
	}, nil
}

// Login verifies the credentials and returns a signed token on success.
func (s *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.AuthResult, error) {
	user, err := s.userRepo.FindByUsername(ctx, input.Username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			s.logger.InfoContext(ctx, "login rejected",
				slog.String("username", input.Username),
				slog.String("reason", "unknown username"))

			return invalidCredentialsResult(), nil
		}

		return nil, errors.Wrap(err, "failed to look up user for login")
	}

	if !s.hasher.Check(input.Password, user.PasswordHash) {
		s.logger.InfoContext(ctx, "login rejected",
			slog.String("username", input.Username),
			slog.String("reason", "wrong password"))

		return invalidCredentialsResult(), nil
	}

	token, err := s.tokenSvc.Generate(user)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue token after login")
	}

	s.logger.InfoContext(ctx, "user logged in",
		slog.String("userID", user.ID.String()),
		slog.String("username", user.Username))

	return &usecase.AuthResult{
		Success: true,
		Token:   token,
		User:    toUserProfile(user),
	}, nil
}

// GetProfile returns the profile of the authenticated user.
func (s *authService) GetProfile(ctx context.Context, userID uuid.UUID) (*usecase.UserProfile, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to load user profile")
	}

	return toUserProfile(user), nil
}

// invalidCredentialsResult is the single failure shape for every login
// rejection. Both branches of Login must stay byte-identical to the client.
func invalidCredentialsResult() *usecase.AuthResult {
	return usecase.FailedAuthResult(msgInvalidCredentials)
}

// toUserProfile maps a domain user to its outward-facing profile.
func toUserProfile(user *entity.User) *usecase.UserProfile {
	return &usecase.UserProfile{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
	}
}
