package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "kaelo/internal/delivery/context"
	"kaelo/internal/domain/entity"
	domainerrors "kaelo/internal/domain/errors"
	"kaelo/internal/domain/repository"
	"kaelo/internal/domain/service"
	"kaelo/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// sessionService implements the SessionUsecase interface.
type sessionService struct {
	userRepo         repository.UserRepository
	refreshTokenRepo repository.RefreshTokenRepository
	tokenService     service.TokenService
	logger           *slog.Logger
}

// SessionServiceParams holds dependencies for SessionService, injected by Fx.
type SessionServiceParams struct {
	fx.In

	UserRepo         repository.UserRepository
	RefreshTokenRepo repository.RefreshTokenRepository
	TokenService     service.TokenService
	Logger           *slog.Logger
}

// NewSessionService is the constructor for sessionService.
func NewSessionService(params SessionServiceParams) usecase.SessionUsecase {
	return &sessionService{
		userRepo:         params.UserRepo,
		refreshTokenRepo: params.RefreshTokenRepo,
		tokenService:     params.TokenService,
		logger:           params.Logger,
	}
}

func (srv *sessionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RefreshTokens rotates a session. The presented refresh token must be
// cryptographically valid AND still present in storage; rotation deletes
// the old record before the new pair is issued, so each token works once.
func (srv *sessionService) RefreshTokens(ctx context.Context, refreshToken string) (*usecase.RefreshOutput, error) {
	claims, err := srv.tokenService.ValidateRefreshToken(refreshToken)
	if err != nil {
		srv.log(ctx).Warn("Refresh token failed validation", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrRefreshTokenInvalid, "refresh token validation failed")
	}

	tokenHash := hashToken(refreshToken)

	stored, err := srv.refreshTokenRepo.FindByTokenHash(ctx, tokenHash)
	if err != nil {
		if errors.Is(err, repository.ErrRefreshTokenNotFound) {
			srv.log(ctx).Warn("Refresh token not found or expired", slog.Any("userID", claims.UserID))

			return nil, errors.Wrap(domainerrors.ErrRefreshTokenInvalid, "refresh token not found")
		}

		return nil, errors.Wrap(err, "failed to look up refresh token")
	}

	if stored.UserID != claims.UserID {
		srv.log(ctx).Warn("Refresh token user mismatch",
			slog.Any("claimUserID", claims.UserID), slog.Any("storedUserID", stored.UserID))

		return nil, errors.Wrap(domainerrors.ErrRefreshTokenInvalid, "refresh token user mismatch")
	}

	// Revoke before reissue. If a stolen token races the owner, only one
	// of them gets past this delete.
	if err := srv.refreshTokenRepo.DeleteByTokenHash(ctx, tokenHash); err != nil {
		if errors.Is(err, repository.ErrRefreshTokenNotFound) {
			return nil, errors.Wrap(domainerrors.ErrRefreshTokenInvalid, "refresh token already rotated")
		}

		return nil, errors.Wrap(err, "failed to revoke refresh token")
	}

	user, err := srv.userRepo.FindByID(ctx, claims.UserID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load user during refresh")
	}

	accessToken, newRefreshToken, err := srv.tokenService.GenerateTokens(user.ID, entity.RolesOf(user).ToStrings())
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens during refresh")
	}

	newRecord := &entity.RefreshToken{
		UserID:    user.ID,
		TokenHash: hashToken(newRefreshToken),
		ExpiresAt: time.Now().Add(srv.tokenService.GetRefreshTokenDuration()),
	}

	if err := srv.refreshTokenRepo.Create(ctx, newRecord); err != nil {
		return nil, errors.Wrap(err, "failed to store rotated refresh token")
	}

	srv.log(ctx).Debug("Session refreshed", slog.Any("userID", user.ID))

	return &usecase.RefreshOutput{
		AccessToken:  accessToken,
		RefreshToken: newRefreshToken,
	}, nil
}

// Logout invalidates the session identified by the refresh token. An
// already-revoked or unknown token still logs out cleanly.
func (srv *sessionService) Logout(ctx context.Context, refreshToken string) error {
	tokenHash := hashToken(refreshToken)

	if err := srv.refreshTokenRepo.DeleteByTokenHash(ctx, tokenHash); err != nil {
		if errors.Is(err, repository.ErrRefreshTokenNotFound) {
			srv.log(ctx).Debug("Logout with unknown refresh token")

			return nil
		}

		return errors.Wrap(err, "failed to delete refresh token during logout")
	}

	return nil
}
