// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"kaelo/internal/domain/entity"
	"kaelo/internal/errors"

	"github.com/google/uuid"
)

// ErrAuthNotFound is returned when no authentication record matches.
var ErrAuthNotFound = errors.New("authentication not found")

// AuthRepository defines the operations for credential persistence.
type AuthRepository interface {
	// CreateAuthentication persists a new credential record for a user.
	CreateAuthentication(ctx context.Context, auth *entity.Authentication) error

	// FindAuthentication retrieves a credential by provider and provider user ID.
	FindAuthentication(ctx context.Context, provider, providerUserID string) (*entity.Authentication, error)
}

// ErrRefreshTokenNotFound is returned when a refresh token record is missing.
var ErrRefreshTokenNotFound = errors.New("refresh token not found")

// RefreshTokenRepository defines the operations for session persistence.
type RefreshTokenRepository interface {
	// Create stores a new hashed refresh token.
	Create(ctx context.Context, token *entity.RefreshToken) error

	// FindByTokenHash retrieves a session by the SHA-256 hash of the raw token.
	FindByTokenHash(ctx context.Context, tokenHash string) (*entity.RefreshToken, error)

	// CountActiveByUser counts the user's unexpired sessions.
	CountActiveByUser(ctx context.Context, userID uuid.UUID) (int64, error)

	// DeleteByTokenHash removes a session, e.g. on logout or rotation.
	DeleteByTokenHash(ctx context.Context, tokenHash string) error

	// DeleteByUser removes all sessions belonging to a user.
	DeleteByUser(ctx context.Context, userID uuid.UUID) error
}
