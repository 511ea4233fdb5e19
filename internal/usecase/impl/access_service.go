// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "kaelo/internal/delivery/context"
	"kaelo/internal/domain/repository"
	"kaelo/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// accessService implements the AccessUsecase interface.
// Every branch that cannot be proven "allowed" evaluates to "denied": this
// gate protects paid content, so backend trouble must never open it.
type accessService struct {
	routeRepo    repository.RouteRepository
	purchaseRepo repository.PurchaseRepository
	logger       *slog.Logger
}

// AccessServiceParams holds dependencies for AccessService, injected by Fx.
type AccessServiceParams struct {
	fx.In

	RouteRepo    repository.RouteRepository
	PurchaseRepo repository.PurchaseRepository
	Logger       *slog.Logger
}

// NewAccessService is the constructor for accessService.
func NewAccessService(params AccessServiceParams) usecase.AccessUsecase {
	return &accessService{
		routeRepo:    params.RouteRepo,
		purchaseRepo: params.PurchaseRepo,
		logger:       params.Logger,
	}
}

func (srv *accessService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// HasAccess decides, first match wins:
//
//  1. anonymous viewer        -> false
//  2. free route              -> true
//  3. viewer authored it      -> true
//  4. completed purchase row  -> its existence
func (srv *accessService) HasAccess(ctx context.Context, routeID uuid.UUID, viewerID *uuid.UUID) bool {
	if viewerID == nil {
		return false
	}

	route, err := srv.routeRepo.FindByID(ctx, routeID)
	if err != nil {
		srv.log(ctx).Warn("Access check failed to load route, denying",
			slog.Any("routeID", routeID),
			slog.Any("error", err),
		)

		return false
	}

	if route.IsFree {
		return true
	}

	if route.IsOwnedBy(*viewerID) {
		return true
	}

	owned, err := srv.purchaseRepo.ExistsCompleted(ctx, *viewerID, routeID)
	if err != nil {
		srv.log(ctx).Warn("Access check failed to load purchase, denying",
			slog.Any("routeID", routeID),
			slog.Any("userID", *viewerID),
			slog.Any("error", err),
		)

		return false
	}

	return owned
}
