// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	"todoapi/internal/domain/entity"
	domainerrors "todoapi/internal/domain/errors"
	"todoapi/internal/domain/repository"
	"todoapi/internal/domain/service"
	"todoapi/internal/usecase"

	"github.com/pkg/errors"
)

// authService implements the AuthUsecase interface.
type authService struct {
	users        repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(
	users repository.UserRepository,
	hasher service.PasswordHasher,
	tokenService service.TokenService,
	logger *slog.Logger,
) usecase.AuthUsecase {
	return &authService{
		users:        users,
		hasher:       hasher,
		tokenService: tokenService,
		logger:       logger,
	}
}

// Register creates a new account. The username check runs before the email
// check, so a request duplicating both reports the username conflict. The
// store's unique constraints back up these checks: a concurrent identical
// registration that slips past them still comes back as the duplicate
// outcome from the insert, not as a storage failure.
func (srv *authService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	srv.logger.Info("Starting user registration", "username", input.Username)

	taken, err := srv.users.ExistsByUsername(ctx, input.Username)
	if err != nil {
		return nil, errors.Wrap(err, "failed to check username")
	}
	if taken {
		return nil, domainerrors.ErrUsernameTaken.WrapMessage("registration failed")
	}

	taken, err = srv.users.ExistsByEmail(ctx, input.Email)
	if err != nil {
		return nil, errors.Wrap(err, "failed to check email")
	}
	if taken {
		return nil, domainerrors.ErrEmailTaken.WrapMessage("registration failed")
	}

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.logger.Error("Failed to hash password during registration", "error", err)

		return nil, errors.Wrap(err, "failed to hash password during registration")
	}

	newUser := &entity.User{
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: hashedPassword,
	}

	if err := srv.users.Create(ctx, newUser); err != nil {
		srv.logger.Error("Failed to create user", "error", err, "username", input.Username)

		return nil, errors.WithStack(err)
	}

	srv.logger.Debug("User registered successfully", "userID", newUser.ID)

	return &usecase.RegisterOutput{UserID: newUser.ID}, nil
}

// Login verifies credentials and issues a session token. Unknown usernames
// and wrong passwords produce the same failure so the response does not
// reveal which accounts exist.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	srv.logger.Debug("Starting user login", "username", input.Username)

	user, err := srv.users.FindByUsername(ctx, input.Username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.logger.Warn("Login failed", "username", input.Username)

			return nil, domainerrors.ErrInvalidCredentials.WrapMessage("login failed")
		}

		return nil, errors.Wrap(err, "failed to find user by username")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.logger.Warn("Login failed", "username", input.Username)

		return nil, domainerrors.ErrInvalidCredentials.WrapMessage("login failed")
	}

	token, err := srv.tokenService.Issue(user.ID, user.Username)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue token")
	}

	srv.logger.Debug("User logged in successfully", "userID", user.ID)

	return &usecase.LoginOutput{
		Token:    token,
		Username: user.Username,
		UserID:   user.ID,
	}, nil
}
