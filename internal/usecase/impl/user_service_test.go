package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"kaelo/config"
	"kaelo/internal/domain/entity"
	domainerrors "kaelo/internal/domain/errors"
	"kaelo/internal/domain/repository"
	mockRepo "kaelo/internal/mocks/repository"
	mockSvc "kaelo/internal/mocks/service"
	"kaelo/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type userFixtures struct {
	txManager        *mockRepo.MockTransactionManager
	userRepo         *mockRepo.MockUserRepository
	refreshTokenRepo *mockRepo.MockRefreshTokenRepository
	hasher           *mockSvc.MockPasswordHasher
	tokenService     *mockSvc.MockTokenService
	service          usecase.UserUsecase
}

func createTestUserService(t *testing.T, cfg *config.Config) *userFixtures {
	f := &userFixtures{
		txManager:        mockRepo.NewMockTransactionManager(t),
		userRepo:         mockRepo.NewMockUserRepository(t),
		refreshTokenRepo: mockRepo.NewMockRefreshTokenRepository(t),
		hasher:           mockSvc.NewMockPasswordHasher(t),
		tokenService:     mockSvc.NewMockTokenService(t),
	}

	f.service = NewUserService(UserServiceParams{
		TxManager:        f.txManager,
		UserRepo:         f.userRepo,
		RefreshTokenRepo: f.refreshTokenRepo,
		Hasher:           f.hasher,
		TokenService:     f.tokenService,
		Config:           cfg,
		Logger:           slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	return f
}

func TestUserService_RegisterUser_NewAccount(t *testing.T) {
	f := createTestUserService(t, nil)

	ctx := context.Background()
	input := &usecase.RegisterUserInput{Name: "Hiker", Email: "hiker@example.com", Password: "Str0ngPass!"}

	f.hasher.EXPECT().Hash(input.Password).Return("hashed-password", nil)
	f.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockAuthRepo := mockRepo.NewMockAuthRepository(t)

			mockFactory.EXPECT().NewUserRepository().Return(mockUserRepo)
			mockFactory.EXPECT().NewAuthRepository().Return(mockAuthRepo)

			mockAuthRepo.EXPECT().
				FindAuthentication(ctx, entity.ProviderTypeEmail, input.Email).
				Return(nil, repository.ErrAuthNotFound)
			mockUserRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.User")).
				Run(func(ctx context.Context, user *entity.User) {
					user.ID = uuid.New()
				}).
				Return(nil)
			mockAuthRepo.EXPECT().
				CreateAuthentication(ctx, mock.AnythingOfType("*entity.Authentication")).
				Run(func(ctx context.Context, auth *entity.Authentication) {
					assert.Equal(t, "hashed-password", auth.PasswordHash)
					assert.Equal(t, input.Email, auth.ProviderUserID)
				}).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	output, err := f.service.RegisterUser(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, input.Name, output.User.Name)
	assert.Equal(t, input.Email, output.User.Email)
	assert.False(t, output.User.IsCreator())
}

func TestUserService_RegisterCreator_AttachToExistingAccount(t *testing.T) {
	f := createTestUserService(t, nil)

	ctx := context.Background()
	userID := uuid.New()
	input := &usecase.RegisterCreatorInput{
		Name: "Creator", Email: "hiker@example.com", Password: "Str0ngPass!", Bio: "常駐北插天山",
	}
	authRecord := &entity.Authentication{
		UserID: userID, Provider: entity.ProviderTypeEmail,
		ProviderUserID: input.Email, PasswordHash: "hashed-password",
	}
	existing := &entity.User{ID: userID, Name: "Hiker", Email: input.Email}

	f.hasher.EXPECT().Check(input.Password, "hashed-password").Return(true)
	f.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockAuthRepo := mockRepo.NewMockAuthRepository(t)

			mockFactory.EXPECT().NewUserRepository().Return(mockUserRepo)
			mockFactory.EXPECT().NewAuthRepository().Return(mockAuthRepo)

			mockAuthRepo.EXPECT().
				FindAuthentication(ctx, entity.ProviderTypeEmail, input.Email).
				Return(authRecord, nil)
			mockUserRepo.EXPECT().FindByID(ctx, userID).Return(existing, nil)
			mockUserRepo.EXPECT().
				Update(ctx, mock.AnythingOfType("*entity.User")).
				Run(func(ctx context.Context, user *entity.User) {
					require.NotNil(t, user.CreatorProfile)
					assert.Equal(t, input.Bio, user.CreatorProfile.Bio)
				}).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	output, err := f.service.RegisterCreator(ctx, input)

	require.NoError(t, err)
	assert.True(t, output.User.IsCreator())
}

func TestUserService_RegisterCreator_ProfileAlreadyExists(t *testing.T) {
	f := createTestUserService(t, nil)

	ctx := context.Background()
	userID := uuid.New()
	input := &usecase.RegisterCreatorInput{Email: "hiker@example.com", Password: "Str0ngPass!"}
	authRecord := &entity.Authentication{UserID: userID, PasswordHash: "hashed-password"}
	existing := &entity.User{ID: userID, CreatorProfile: &entity.CreatorProfile{UserID: userID}}

	f.hasher.EXPECT().Check(input.Password, "hashed-password").Return(true)
	f.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockAuthRepo := mockRepo.NewMockAuthRepository(t)

			mockFactory.EXPECT().NewUserRepository().Return(mockUserRepo)
			mockFactory.EXPECT().NewAuthRepository().Return(mockAuthRepo)

			mockAuthRepo.EXPECT().
				FindAuthentication(ctx, entity.ProviderTypeEmail, input.Email).
				Return(authRecord, nil)
			mockUserRepo.EXPECT().FindByID(ctx, userID).Return(existing, nil)

			_ = fn(mockFactory)
		}).
		Return(domainerrors.ErrUserAlreadyExists)

	output, err := f.service.RegisterCreator(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
}

func TestUserService_Login_Success(t *testing.T) {
	f := createTestUserService(t, nil)

	ctx := context.Background()
	userID := uuid.New()
	input := &usecase.LoginInput{Email: "hiker@example.com", Password: "Str0ngPass!"}
	authRecord := &entity.Authentication{UserID: userID, PasswordHash: "hashed-password"}
	user := &entity.User{ID: userID, Email: input.Email}

	f.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAuthRepo := mockRepo.NewMockAuthRepository(t)

			mockFactory.EXPECT().NewAuthRepository().Return(mockAuthRepo)
			mockAuthRepo.EXPECT().
				FindAuthentication(ctx, entity.ProviderTypeEmail, input.Email).
				Return(authRecord, nil)

			_ = fn(mockFactory)
		}).
		Return(nil)
	f.hasher.EXPECT().Check(input.Password, "hashed-password").Return(true)
	f.userRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)
	f.tokenService.EXPECT().GenerateTokens(userID, []string{"user"}).Return("access-token", "refresh-token", nil)
	f.tokenService.EXPECT().GetRefreshTokenDuration().Return(7 * 24 * time.Hour)
	f.refreshTokenRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.RefreshToken")).
		Run(func(ctx context.Context, token *entity.RefreshToken) {
			assert.Equal(t, hashToken("refresh-token"), token.TokenHash)
		}).
		Return(nil)

	output, err := f.service.Login(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "access-token", output.AccessToken)
	assert.Equal(t, "refresh-token", output.RefreshToken)
	assert.Equal(t, userID, output.User.ID)
}

func TestUserService_Login_SessionCapRevokesExisting(t *testing.T) {
	cfg := &config.Config{Auth: &config.AuthConfig{MaxActiveSessions: 3}}
	f := createTestUserService(t, cfg)

	ctx := context.Background()
	userID := uuid.New()
	input := &usecase.LoginInput{Email: "hiker@example.com", Password: "Str0ngPass!"}
	authRecord := &entity.Authentication{UserID: userID, PasswordHash: "hashed-password"}
	user := &entity.User{ID: userID, Email: input.Email}

	f.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAuthRepo := mockRepo.NewMockAuthRepository(t)

			mockFactory.EXPECT().NewAuthRepository().Return(mockAuthRepo)
			mockAuthRepo.EXPECT().
				FindAuthentication(ctx, entity.ProviderTypeEmail, input.Email).
				Return(authRecord, nil)

			_ = fn(mockFactory)
		}).
		Return(nil)
	f.hasher.EXPECT().Check(input.Password, "hashed-password").Return(true)
	f.userRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)
	f.tokenService.EXPECT().GenerateTokens(userID, []string{"user"}).Return("access-token", "refresh-token", nil)
	f.refreshTokenRepo.EXPECT().CountActiveByUser(ctx, userID).Return(int64(3), nil)
	f.refreshTokenRepo.EXPECT().DeleteByUser(ctx, userID).Return(nil)
	f.tokenService.EXPECT().GetRefreshTokenDuration().Return(7 * 24 * time.Hour)
	f.refreshTokenRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.RefreshToken")).Return(nil)

	output, err := f.service.Login(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "access-token", output.AccessToken)
}

func TestUserService_Login_WrongPassword(t *testing.T) {
	f := createTestUserService(t, nil)

	ctx := context.Background()
	userID := uuid.New()
	input := &usecase.LoginInput{Email: "hiker@example.com", Password: "wrong"}
	authRecord := &entity.Authentication{UserID: userID, PasswordHash: "hashed-password"}

	f.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAuthRepo := mockRepo.NewMockAuthRepository(t)

			mockFactory.EXPECT().NewAuthRepository().Return(mockAuthRepo)
			mockAuthRepo.EXPECT().
				FindAuthentication(ctx, entity.ProviderTypeEmail, input.Email).
				Return(authRecord, nil)

			_ = fn(mockFactory)
		}).
		Return(nil)
	f.hasher.EXPECT().Check(input.Password, "hashed-password").Return(false)

	output, err := f.service.Login(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestUserService_Login_UnknownEmail(t *testing.T) {
	f := createTestUserService(t, nil)

	ctx := context.Background()
	input := &usecase.LoginInput{Email: "nobody@example.com", Password: "Str0ngPass!"}

	f.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAuthRepo := mockRepo.NewMockAuthRepository(t)

			mockFactory.EXPECT().NewAuthRepository().Return(mockAuthRepo)
			mockAuthRepo.EXPECT().
				FindAuthentication(ctx, entity.ProviderTypeEmail, input.Email).
				Return(nil, repository.ErrAuthNotFound)

			_ = fn(mockFactory)
		}).
		Return(domainerrors.ErrInvalidCredentials)

	output, err := f.service.Login(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestUserService_GetProfile_NotFound(t *testing.T) {
	f := createTestUserService(t, nil)

	ctx := context.Background()
	userID := uuid.New()

	f.userRepo.EXPECT().FindByID(ctx, userID).Return(nil, repository.ErrUserNotFound)

	user, err := f.service.GetProfile(ctx, userID)

	require.Error(t, err)
	assert.Nil(t, user)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}
