package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"kaelo/internal/domain/entity"
	domainerrors "kaelo/internal/domain/errors"
	"kaelo/internal/domain/repository"
	"kaelo/internal/domain/service"
	mockRepo "kaelo/internal/mocks/repository"
	mockSvc "kaelo/internal/mocks/service"
	"kaelo/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type sessionFixtures struct {
	userRepo         *mockRepo.MockUserRepository
	refreshTokenRepo *mockRepo.MockRefreshTokenRepository
	tokenService     *mockSvc.MockTokenService
	service          usecase.SessionUsecase
}

func createTestSessionService(t *testing.T) *sessionFixtures {
	f := &sessionFixtures{
		userRepo:         mockRepo.NewMockUserRepository(t),
		refreshTokenRepo: mockRepo.NewMockRefreshTokenRepository(t),
		tokenService:     mockSvc.NewMockTokenService(t),
	}

	f.service = NewSessionService(SessionServiceParams{
		UserRepo:         f.userRepo,
		RefreshTokenRepo: f.refreshTokenRepo,
		TokenService:     f.tokenService,
		Logger:           slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	return f
}

func TestSessionService_RefreshTokens_Success(t *testing.T) {
	f := createTestSessionService(t)

	ctx := context.Background()
	userID := uuid.New()
	oldToken := "old-refresh-token"
	user := &entity.User{ID: userID}
	stored := &entity.RefreshToken{
		ID:        uuid.New(),
		UserID:    userID,
		TokenHash: hashToken(oldToken),
		ExpiresAt: time.Now().Add(time.Hour),
	}

	f.tokenService.EXPECT().ValidateRefreshToken(oldToken).Return(&service.Claims{UserID: userID, Type: "refresh"}, nil)
	f.refreshTokenRepo.EXPECT().FindByTokenHash(ctx, hashToken(oldToken)).Return(stored, nil)
	f.refreshTokenRepo.EXPECT().DeleteByTokenHash(ctx, hashToken(oldToken)).Return(nil)
	f.userRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)
	f.tokenService.EXPECT().GenerateTokens(userID, []string{"user"}).Return("new-access", "new-refresh", nil)
	f.tokenService.EXPECT().GetRefreshTokenDuration().Return(7 * 24 * time.Hour)
	f.refreshTokenRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.RefreshToken")).
		Run(func(ctx context.Context, token *entity.RefreshToken) {
			assert.Equal(t, userID, token.UserID)
			assert.Equal(t, hashToken("new-refresh"), token.TokenHash)
		}).
		Return(nil)

	output, err := f.service.RefreshTokens(ctx, oldToken)

	require.NoError(t, err)
	assert.Equal(t, "new-access", output.AccessToken)
	assert.Equal(t, "new-refresh", output.RefreshToken)
}

func TestSessionService_RefreshTokens_InvalidToken(t *testing.T) {
	f := createTestSessionService(t)

	f.tokenService.EXPECT().ValidateRefreshToken("garbage").Return(nil, errors.New("token is malformed"))

	output, err := f.service.RefreshTokens(context.Background(), "garbage")

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrRefreshTokenInvalid)
}

func TestSessionService_RefreshTokens_RevokedToken(t *testing.T) {
	f := createTestSessionService(t)

	ctx := context.Background()
	userID := uuid.New()
	token := "revoked-refresh-token"

	f.tokenService.EXPECT().ValidateRefreshToken(token).Return(&service.Claims{UserID: userID, Type: "refresh"}, nil)
	f.refreshTokenRepo.EXPECT().FindByTokenHash(ctx, hashToken(token)).Return(nil, repository.ErrRefreshTokenNotFound)

	output, err := f.service.RefreshTokens(ctx, token)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrRefreshTokenInvalid)
}

func TestSessionService_RefreshTokens_UserMismatch(t *testing.T) {
	f := createTestSessionService(t)

	ctx := context.Background()
	token := "stolen-refresh-token"
	stored := &entity.RefreshToken{
		ID:        uuid.New(),
		UserID:    uuid.New(),
		TokenHash: hashToken(token),
		ExpiresAt: time.Now().Add(time.Hour),
	}

	f.tokenService.EXPECT().ValidateRefreshToken(token).Return(&service.Claims{UserID: uuid.New(), Type: "refresh"}, nil)
	f.refreshTokenRepo.EXPECT().FindByTokenHash(ctx, hashToken(token)).Return(stored, nil)

	output, err := f.service.RefreshTokens(ctx, token)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrRefreshTokenInvalid)
}

func TestSessionService_Logout_Success(t *testing.T) {
	f := createTestSessionService(t)

	ctx := context.Background()
	token := "refresh-token"

	f.refreshTokenRepo.EXPECT().DeleteByTokenHash(ctx, hashToken(token)).Return(nil)

	err := f.service.Logout(ctx, token)

	require.NoError(t, err)
}

func TestSessionService_Logout_UnknownTokenIsClean(t *testing.T) {
	f := createTestSessionService(t)

	ctx := context.Background()
	token := "unknown-token"

	f.refreshTokenRepo.EXPECT().DeleteByTokenHash(ctx, hashToken(token)).Return(repository.ErrRefreshTokenNotFound)

	err := f.service.Logout(ctx, token)

	require.NoError(t, err)
}
