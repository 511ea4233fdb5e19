package usecase

import (
	"context"

	"kaelo/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

// CreateBusinessInput defines the data required to list a business.
type CreateBusinessInput struct {
	OwnerID            uuid.UUID
	Name               string
	Description        string
	Category           string
	Location           orb.Point
	FullAddress        string
	Hours              []entity.BusinessHours
	MinOrderAmount     float64
	AdvanceNoticeHours int
}

// NearbyBusinessInput defines a geographic business search.
type NearbyBusinessInput struct {
	Lat          float64
	Lon          float64
	RadiusMeters float64
}

// BusinessUsecase defines the interface for business listing operations.
type BusinessUsecase interface {
	// CreateBusiness lists a new business. The owner must carry the
	// business-owner role.
	CreateBusiness(ctx context.Context, input *CreateBusinessInput) (*entity.Business, error)

	// GetBusiness retrieves a single business listing.
	GetBusiness(ctx context.Context, id uuid.UUID) (*entity.Business, error)

	// ListActive returns active businesses, newest first, with paging.
	ListActive(ctx context.Context, offset, limit int) ([]*entity.Business, error)

	// FindNearby returns active businesses within the search radius,
	// closest first.
	FindNearby(ctx context.Context, input *NearbyBusinessInput) ([]*entity.Business, error)
}
