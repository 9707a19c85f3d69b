// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "passport/internal/delivery/context"
	"passport/internal/domain/entity"
	domainerrors "passport/internal/domain/errors"
	"passport/internal/domain/repository"
	"passport/internal/domain/service"
	"passport/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// accountService implements the AccountUsecase interface. It holds no state
// across requests; every operation is a single synchronous composition of the
// credential store, the password hasher and the token issuer.
type accountService struct {
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// AccountServiceParams holds dependencies for accountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewAccountService is the constructor for accountService. It receives all dependencies as interfaces.
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	return &accountService{
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *accountService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register hashes the password and creates the user. A duplicate username
// surfaces as the domain conflict error; any other store failure is logged
// with its cause and surfaced as a generic registration failure.
func (srv *accountService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	username := canonicalizeUsername(input.Username)
	srv.log(ctx).Debug("Starting user registration", slog.String("username", username))

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}

	newUser := &entity.User{
		Username:     username,
		PasswordHash: hashedPassword,
	}
	if err := srv.userRepo.Create(ctx, newUser); err != nil {
		srv.log(ctx).Warn("Registration failed", slog.String("username", username), slog.Any("error", err))

		if errors.Is(err, domainerrors.ErrUserAlreadyExists) {
			return nil, errors.Wrap(err, "registration failed")
		}

		// The store cause stays in the log; the caller gets a generic failure.
		return nil, errors.Wrap(domainerrors.ErrRegistrationFailed, "registration failed")
	}

	srv.log(ctx).Info("User registered", slog.Int64("userID", newUser.ID))

	return &usecase.RegisterOutput{
		UserID:   newUser.ID,
		Username: newUser.Username,
	}, nil
}

// Login looks up the user, verifies the password, then issues a token — in
// that order. An unknown username and a wrong password are distinct outcomes,
// matching the API contract.
func (srv *accountService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	username := canonicalizeUsername(input.Username)
	srv.log(ctx).Debug("Starting user login", slog.String("username", username))

	user, err := srv.userRepo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.log(ctx).Warn("Login failed", slog.String("username", username), slog.Any("error", err))

			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "login failed")
		}
		srv.log(ctx).Error("Failed to load user for login", slog.String("username", username), slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrLoginFailed, "login failed")
	}

	// Check password outside any store call (bcrypt is CPU-bound).
	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Warn("Login failed", slog.String("username", username), slog.Any("error", domainerrors.ErrInvalidPassword))

		return nil, errors.Wrap(domainerrors.ErrInvalidPassword, "login failed")
	}

	accessToken, err := srv.tokenService.IssueAccessToken(user.ID)
	if err != nil {
		srv.log(ctx).Error("Failed to issue access token", slog.Int64("userID", user.ID), slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrTokenSigningFailed, "login failed")
	}

	srv.log(ctx).Debug("User logged in successfully", slog.Int64("userID", user.ID))

	return &usecase.LoginOutput{AccessToken: accessToken}, nil
}

// DeleteUser removes the user by id. There is deliberately no check on who
// may delete whom; see DESIGN.md for the recorded gap.
func (srv *accountService) DeleteUser(ctx context.Context, input *usecase.DeleteUserInput) (*usecase.DeleteUserOutput, error) {
	deleted, err := srv.userRepo.DeleteByID(ctx, input.UserID)
	if err != nil {
		srv.log(ctx).Error("Failed to delete user", slog.Int64("userID", input.UserID), slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrUserDeletionFailed, "deletion failed")
	}

	srv.log(ctx).Info("User deletion processed", slog.Int64("userID", input.UserID), slog.Int64("deleted", deleted))

	return &usecase.DeleteUserOutput{Deleted: deleted}, nil
}

// canonicalizeUsername normalizes a username before storage or lookup.
// Policy: surrounding whitespace is stripped; comparison stays case-sensitive
// byte equality, so "Alice" and "alice" are distinct accounts.
func canonicalizeUsername(username string) string {
	return strings.TrimSpace(username)
}
