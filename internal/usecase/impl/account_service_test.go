package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"passport/internal/domain/entity"
	domainerrors "passport/internal/domain/errors"
	"passport/internal/domain/repository"
	mockRepo "passport/internal/mocks/repository"
	mockSvc "passport/internal/mocks/service"
	"passport/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// accountServiceFixtures holds all test dependencies for account service tests.
type accountServiceFixtures struct {
	service      usecase.AccountUsecase
	userRepo     *mockRepo.MockUserRepository
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
}

func createTestAccountService(t *testing.T) accountServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewAccountService(AccountServiceParams{
		UserRepo:     userRepo,
		Hasher:       hasher,
		TokenService: tokenService,
		Logger:       logger,
	})

	return accountServiceFixtures{
		service:      service,
		userRepo:     userRepo,
		hasher:       hasher,
		tokenService: tokenService,
	}
}

func TestAccountService_Register_Success(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Username: "alice",
		Password: "s3cr3t",
	}

	fx.hasher.EXPECT().Hash("s3cr3t").Return("hashed_password", nil)
	fx.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(ctx context.Context, user *entity.User) {
			user.ID = 42
		}).
		Return(nil)

	output, err := fx.service.Register(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, int64(42), output.UserID)
	assert.Equal(t, "alice", output.Username)
}

func TestAccountService_Register_TrimsUsername(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Username: "  alice \n",
		Password: "s3cr3t",
	}

	fx.hasher.EXPECT().Hash("s3cr3t").Return("hashed_password", nil)
	fx.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(ctx context.Context, user *entity.User) {
			assert.Equal(t, "alice", user.Username)
			assert.Equal(t, "hashed_password", user.PasswordHash)
		}).
		Return(nil)

	_, err := fx.service.Register(ctx, input)

	require.NoError(t, err)
}

func TestAccountService_Register_DuplicateUsername(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Username: "alice",
		Password: "s3cr3t",
	}

	fx.hasher.EXPECT().Hash("s3cr3t").Return("hashed_password", nil)
	fx.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Return(domainerrors.ErrUserAlreadyExists.WrapMessage("username already exists"))

	output, err := fx.service.Register(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrUserAlreadyExists))
}

func TestAccountService_Register_StoreFailureIsGeneric(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Username: "alice",
		Password: "s3cr3t",
	}

	fx.hasher.EXPECT().Hash("s3cr3t").Return("hashed_password", nil)
	fx.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Return(domainerrors.NewDatabaseExecuteError(errors.New("connection refused"), "failed to create user"))

	output, err := fx.service.Register(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	// The surfaced error is the generic registration failure, without the
	// driver detail.
	assert.True(t, errors.Is(err, domainerrors.ErrRegistrationFailed))
	assert.NotContains(t, domainerrors.ErrRegistrationFailed.Message(), "connection refused")
}

func TestAccountService_Register_HashFailure(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Username: "alice",
		Password: "s3cr3t",
	}

	fx.hasher.EXPECT().Hash("s3cr3t").Return("", errors.New("cost out of range"))

	output, err := fx.service.Register(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrPasswordHashFailed))
}

func TestAccountService_Login_Success(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	input := &usecase.LoginInput{
		Username: "alice",
		Password: "s3cr3t",
	}
	storedUser := &entity.User{
		ID:           42,
		Username:     "alice",
		PasswordHash: "hashed_password",
	}

	fx.userRepo.EXPECT().FindByUsername(ctx, "alice").Return(storedUser, nil)
	fx.hasher.EXPECT().Check("s3cr3t", "hashed_password").Return(true)
	fx.tokenService.EXPECT().IssueAccessToken(int64(42)).Return("signed.jwt.token", nil)

	output, err := fx.service.Login(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "signed.jwt.token", output.AccessToken)
}

func TestAccountService_Login_UserNotFound(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	input := &usecase.LoginInput{
		Username: "nobody",
		Password: "whatever",
	}

	fx.userRepo.EXPECT().FindByUsername(ctx, "nobody").Return(nil, repository.ErrUserNotFound)

	output, err := fx.service.Login(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}

func TestAccountService_Login_InvalidPassword(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	input := &usecase.LoginInput{
		Username: "alice",
		Password: "wrong",
	}
	storedUser := &entity.User{
		ID:           42,
		Username:     "alice",
		PasswordHash: "hashed_password",
	}

	fx.userRepo.EXPECT().FindByUsername(ctx, "alice").Return(storedUser, nil)
	fx.hasher.EXPECT().Check("wrong", "hashed_password").Return(false)

	output, err := fx.service.Login(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	// A wrong password never yields a token and is distinct from not-found.
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidPassword))
	assert.False(t, errors.Is(err, domainerrors.ErrUserNotFound))
}

func TestAccountService_Login_SigningFailure(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	input := &usecase.LoginInput{
		Username: "alice",
		Password: "s3cr3t",
	}
	storedUser := &entity.User{
		ID:           42,
		Username:     "alice",
		PasswordHash: "hashed_password",
	}

	fx.userRepo.EXPECT().FindByUsername(ctx, "alice").Return(storedUser, nil)
	fx.hasher.EXPECT().Check("s3cr3t", "hashed_password").Return(true)
	fx.tokenService.EXPECT().IssueAccessToken(int64(42)).Return("", errors.New("signing failed"))

	output, err := fx.service.Login(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrTokenSigningFailed))
}

func TestAccountService_Login_StoreFailure(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	input := &usecase.LoginInput{
		Username: "alice",
		Password: "s3cr3t",
	}

	fx.userRepo.EXPECT().
		FindByUsername(ctx, "alice").
		Return(nil, errors.New("connection reset"))

	output, err := fx.service.Login(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrLoginFailed))
}

func TestAccountService_DeleteUser_Success(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()

	fx.userRepo.EXPECT().DeleteByID(ctx, int64(42)).Return(1, nil)

	output, err := fx.service.DeleteUser(ctx, &usecase.DeleteUserInput{UserID: 42})

	require.NoError(t, err)
	assert.Equal(t, int64(1), output.Deleted)
}

func TestAccountService_DeleteUser_NonExistentIsNoOp(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()

	fx.userRepo.EXPECT().DeleteByID(ctx, int64(999999)).Return(0, nil)

	output, err := fx.service.DeleteUser(ctx, &usecase.DeleteUserInput{UserID: 999999})

	require.NoError(t, err)
	assert.Equal(t, int64(0), output.Deleted)
}

func TestAccountService_DeleteUser_StoreFailure(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()

	fx.userRepo.EXPECT().
		DeleteByID(ctx, int64(42)).
		Return(0, domainerrors.NewDatabaseExecuteError(errors.New("connection refused"), "failed to delete user"))

	output, err := fx.service.DeleteUser(ctx, &usecase.DeleteUserInput{UserID: 42})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrUserDeletionFailed))
}
