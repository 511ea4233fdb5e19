package impl

import (
	"context"
	"log/slog"

	deliverycontext "kaelo/internal/delivery/context"
	"kaelo/internal/domain/entity"
	domainerrors "kaelo/internal/domain/errors"
	"kaelo/internal/domain/repository"
	"kaelo/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const defaultNearbyRadiusMeters = 5000

// businessService implements the BusinessUsecase interface.
type businessService struct {
	businessRepo repository.BusinessRepository
	userRepo     repository.UserRepository
	logger       *slog.Logger
}

// BusinessServiceParams holds dependencies for BusinessService, injected by Fx.
type BusinessServiceParams struct {
	fx.In

	BusinessRepo repository.BusinessRepository
	UserRepo     repository.UserRepository
	Logger       *slog.Logger
}

// NewBusinessService is the constructor for businessService.
func NewBusinessService(params BusinessServiceParams) usecase.BusinessUsecase {
	return &businessService{
		businessRepo: params.BusinessRepo,
		userRepo:     params.UserRepo,
		logger:       params.Logger,
	}
}

func (srv *businessService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateBusiness lists a new business. The owner must already carry the
// business-owner role.
func (srv *businessService) CreateBusiness(ctx context.Context, input *usecase.CreateBusinessInput) (*entity.Business, error) {
	owner, err := srv.userRepo.FindByID(ctx, input.OwnerID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to load business owner")
	}

	if !owner.IsBusinessOwner() {
		srv.log(ctx).Warn("Business creation without owner role", slog.Any("userID", input.OwnerID))

		return nil, domainerrors.ErrForbidden.WrapMessage("business owner role required")
	}

	business := &entity.Business{
		OwnerID:            input.OwnerID,
		Name:               input.Name,
		Description:        input.Description,
		Category:           input.Category,
		Location:           input.Location,
		FullAddress:        input.FullAddress,
		Hours:              input.Hours,
		MinOrderAmount:     input.MinOrderAmount,
		AdvanceNoticeHours: input.AdvanceNoticeHours,
		IsActive:           true,
	}

	if err := srv.businessRepo.Create(ctx, business); err != nil {
		return nil, errors.Wrap(err, "failed to create business")
	}

	srv.log(ctx).Info("Business created",
		slog.Any("businessID", business.ID), slog.Any("ownerID", business.OwnerID))

	return business, nil
}

// GetBusiness retrieves a single business listing.
func (srv *businessService) GetBusiness(ctx context.Context, id uuid.UUID) (*entity.Business, error) {
	business, err := srv.businessRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrBusinessNotFound) {
			return nil, domainerrors.ErrBusinessNotFound
		}

		return nil, errors.Wrap(err, "failed to load business")
	}

	return business, nil
}

// ListActive returns active businesses, newest first, with paging.
func (srv *businessService) ListActive(ctx context.Context, offset, limit int) ([]*entity.Business, error) {
	if offset < 0 {
		offset = 0
	}
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}

	businesses, err := srv.businessRepo.ListActive(ctx, offset, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list active businesses")
	}

	return businesses, nil
}

// FindNearby returns active businesses within the search radius, closest first.
func (srv *businessService) FindNearby(ctx context.Context, input *usecase.NearbyBusinessInput) ([]*entity.Business, error) {
	if input.Lat < -90 || input.Lat > 90 || input.Lon < -180 || input.Lon > 180 {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("coordinate out of range")
	}

	radius := input.RadiusMeters
	if radius <= 0 {
		radius = defaultNearbyRadiusMeters
	}

	businesses, err := srv.businessRepo.FindNearby(ctx, input.Lat, input.Lon, radius)
	if err != nil {
		return nil, errors.Wrap(err, "failed to search nearby businesses")
	}

	return businesses, nil
}
