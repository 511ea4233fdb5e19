// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"kaelo/internal/domain/entity"
	"kaelo/internal/errors"

	"github.com/google/uuid"
)

// ErrBusinessNotFound is returned when a business is not found.
var ErrBusinessNotFound = errors.New("business not found")

// BusinessRepository defines the interface for business listings.
// The purchase flows never mutate businesses; writes exist for owner tooling.
type BusinessRepository interface {
	// Create persists a new business listing.
	Create(ctx context.Context, business *entity.Business) error

	// FindByID retrieves a business by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Business, error)

	// ListActive retrieves active businesses, newest first, with paging.
	ListActive(ctx context.Context, offset, limit int) ([]*entity.Business, error)

	// FindNearby performs a PostGIS geographic query for active businesses
	// within radiusMeters of the given coordinate, closest first.
	FindNearby(ctx context.Context, lat, lon, radiusMeters float64) ([]*entity.Business, error)
}
