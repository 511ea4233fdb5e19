package usecase

import "context"

// RefreshOutput returns the rotated token pair.
type RefreshOutput struct {
	AccessToken  string
	RefreshToken string
}

// SessionUsecase defines the interface for session lifecycle operations.
type SessionUsecase interface {
	// RefreshTokens validates a refresh token, rotates it, and returns a new
	// access/refresh pair. The old refresh token is invalidated.
	RefreshTokens(ctx context.Context, refreshToken string) (*RefreshOutput, error)

	// Logout invalidates the session identified by the refresh token.
	Logout(ctx context.Context, refreshToken string) error
}
