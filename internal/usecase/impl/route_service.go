package impl

import (
	"context"
	"log/slog"

	deliverycontext "kaelo/internal/delivery/context"
	"kaelo/internal/domain/entity"
	domainerrors "kaelo/internal/domain/errors"
	"kaelo/internal/domain/repository"
	"kaelo/internal/domain/service"
	"kaelo/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	defaultListLimit = 20
	maxListLimit     = 100
)

// routeService implements the RouteUsecase interface.
type routeService struct {
	routeRepo     repository.RouteRepository
	waypointRepo  repository.WaypointRepository
	accessUsecase usecase.AccessUsecase
	qrService     service.QRCodeService
	logger        *slog.Logger
}

// RouteServiceParams holds dependencies for RouteService, injected by Fx.
type RouteServiceParams struct {
	fx.In

	RouteRepo     repository.RouteRepository
	WaypointRepo  repository.WaypointRepository
	AccessUsecase usecase.AccessUsecase
	QRService     service.QRCodeService
	Logger        *slog.Logger
}

// NewRouteService is the constructor for routeService.
func NewRouteService(params RouteServiceParams) usecase.RouteUsecase {
	return &routeService{
		routeRepo:     params.RouteRepo,
		waypointRepo:  params.WaypointRepo,
		accessUsecase: params.AccessUsecase,
		qrService:     params.QRService,
		logger:        params.Logger,
	}
}

func (srv *routeService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateRoute creates a new draft route owned by the creator.
func (srv *routeService) CreateRoute(ctx context.Context, input *usecase.CreateRouteInput) (*entity.Route, error) {
	if len(input.Path) < 2 {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("route path needs at least two points")
	}
	if !input.IsFree && input.Price <= 0 {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("paid route needs a positive price")
	}

	route := &entity.Route{
		CreatorID:   input.CreatorID,
		Title:       input.Title,
		Description: input.Description,
		Path:        input.Path,
		StartPoint:  input.Path[0],
		EndPoint:    input.Path[len(input.Path)-1],
		DistanceKm:  input.DistanceKm,
		Difficulty:  input.Difficulty,
		Tags:        input.Tags,
		Price:       input.Price,
		IsFree:      input.IsFree,
		Status:      entity.RouteStatusDraft,
	}
	if route.IsFree {
		route.Price = 0
	}

	if err := srv.routeRepo.Create(ctx, route); err != nil {
		return nil, errors.Wrap(err, "failed to create route")
	}

	srv.log(ctx).Info("Route created",
		slog.Any("routeID", route.ID), slog.Any("creatorID", route.CreatorID))

	return route, nil
}

// UpdateRoute modifies a draft route. Only the owning creator may call it,
// and only while the route is still a draft.
func (srv *routeService) UpdateRoute(ctx context.Context, input *usecase.UpdateRouteInput) (*entity.Route, error) {
	route, err := srv.loadOwnedRoute(ctx, input.RouteID, input.CreatorID)
	if err != nil {
		return nil, err
	}

	if route.Status != entity.RouteStatusDraft {
		return nil, domainerrors.ErrRouteStatusTransition.WrapMessage("only draft routes can be edited")
	}
	if len(input.Path) < 2 {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("route path needs at least two points")
	}
	if !input.IsFree && input.Price <= 0 {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("paid route needs a positive price")
	}

	route.Title = input.Title
	route.Description = input.Description
	route.Path = input.Path
	route.StartPoint = input.Path[0]
	route.EndPoint = input.Path[len(input.Path)-1]
	route.DistanceKm = input.DistanceKm
	route.Difficulty = input.Difficulty
	route.Tags = input.Tags
	route.Price = input.Price
	route.IsFree = input.IsFree
	if route.IsFree {
		route.Price = 0
	}

	if err := srv.routeRepo.Update(ctx, route); err != nil {
		return nil, errors.Wrap(err, "failed to update route")
	}

	return route, nil
}

// SubmitForReview moves a draft route into moderation.
func (srv *routeService) SubmitForReview(ctx context.Context, routeID, creatorID uuid.UUID) error {
	route, err := srv.loadOwnedRoute(ctx, routeID, creatorID)
	if err != nil {
		return err
	}

	return srv.transition(ctx, route, entity.RouteStatusInReview)
}

// Publish approves an in-review route onto the marketplace.
func (srv *routeService) Publish(ctx context.Context, routeID uuid.UUID) error {
	route, err := srv.loadRoute(ctx, routeID)
	if err != nil {
		return err
	}

	return srv.transition(ctx, route, entity.RouteStatusPublished)
}

// Reject turns down an in-review route.
func (srv *routeService) Reject(ctx context.Context, routeID uuid.UUID) error {
	route, err := srv.loadRoute(ctx, routeID)
	if err != nil {
		return err
	}

	return srv.transition(ctx, route, entity.RouteStatusRejected)
}

// Archive withdraws a published route. Only the owning creator may call it.
// Completed purchases keep their access after archiving.
func (srv *routeService) Archive(ctx context.Context, routeID, creatorID uuid.UUID) error {
	route, err := srv.loadOwnedRoute(ctx, routeID, creatorID)
	if err != nil {
		return err
	}

	return srv.transition(ctx, route, entity.RouteStatusArchived)
}

func (srv *routeService) loadRoute(ctx context.Context, routeID uuid.UUID) (*entity.Route, error) {
	route, err := srv.routeRepo.FindByID(ctx, routeID)
	if err != nil {
		if errors.Is(err, repository.ErrRouteNotFound) {
			return nil, domainerrors.ErrRouteNotFound
		}

		return nil, errors.Wrap(err, "failed to load route")
	}

	return route, nil
}

func (srv *routeService) loadOwnedRoute(ctx context.Context, routeID, creatorID uuid.UUID) (*entity.Route, error) {
	route, err := srv.loadRoute(ctx, routeID)
	if err != nil {
		return nil, err
	}

	if !route.IsOwnedBy(creatorID) {
		srv.log(ctx).Warn("Route ownership violation",
			slog.Any("routeID", routeID), slog.Any("callerID", creatorID))

		return nil, domainerrors.ErrRouteOwnershipViolation
	}

	return route, nil
}

func (srv *routeService) transition(ctx context.Context, route *entity.Route, target entity.RouteStatus) error {
	if !route.Status.CanTransitionTo(target) {
		return domainerrors.ErrRouteStatusTransition.WrapMessage(
			"cannot move route from " + route.Status.String() + " to " + target.String())
	}

	if err := srv.routeRepo.UpdateStatus(ctx, route.ID, target); err != nil {
		return errors.Wrap(err, "failed to update route status")
	}

	srv.log(ctx).Info("Route status changed",
		slog.Any("routeID", route.ID),
		slog.String("from", route.Status.String()),
		slog.String("to", target.String()),
	)

	return nil
}

// GetRoute returns the route as the viewer is allowed to see it. Metadata
// is always present; geometry and waypoints are stripped unless the viewer
// has full access. Full reads bump the view counter.
func (srv *routeService) GetRoute(ctx context.Context, routeID uuid.UUID, viewerID *uuid.UUID) (*usecase.RouteDetail, error) {
	route, err := srv.loadRoute(ctx, routeID)
	if err != nil {
		return nil, err
	}

	hasFullAccess := srv.accessUsecase.HasAccess(ctx, routeID, viewerID)

	detail := &usecase.RouteDetail{
		Route:         route,
		HasFullAccess: hasFullAccess,
	}

	if !hasFullAccess {
		route.Path = nil

		return detail, nil
	}

	waypoints, err := srv.waypointRepo.FindByRoute(ctx, routeID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load waypoints")
	}
	detail.Waypoints = waypoints

	// Counter bumps are best-effort and never fail the read.
	if err := srv.routeRepo.IncrementViewCount(ctx, routeID); err != nil {
		srv.log(ctx).Warn("Failed to bump route view count",
			slog.Any("routeID", routeID), slog.Any("error", err))
	}

	return detail, nil
}

// ListPublished returns marketplace listings, newest first.
func (srv *routeService) ListPublished(ctx context.Context, offset, limit int) ([]*entity.Route, error) {
	if offset < 0 {
		offset = 0
	}
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}

	routes, err := srv.routeRepo.ListPublished(ctx, offset, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list published routes")
	}

	return routes, nil
}

// ListByCreator returns all routes authored by the creator.
func (srv *routeService) ListByCreator(ctx context.Context, creatorID uuid.UUID) ([]*entity.Route, error) {
	routes, err := srv.routeRepo.FindByCreator(ctx, creatorID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list routes by creator")
	}

	return routes, nil
}

// AppendWaypoint adds a waypoint to the end of the route's list. Only the
// owning creator may call it; the order index is assigned by storage.
func (srv *routeService) AppendWaypoint(ctx context.Context, input *usecase.AppendWaypointInput) (*entity.Waypoint, error) {
	route, err := srv.loadOwnedRoute(ctx, input.RouteID, input.CreatorID)
	if err != nil {
		return nil, err
	}

	waypoint := &entity.Waypoint{
		RouteID:     route.ID,
		Name:        input.Name,
		Description: input.Description,
		Location:    input.Location,
	}

	if err := srv.waypointRepo.Append(ctx, waypoint); err != nil {
		return nil, errors.Wrap(err, "failed to append waypoint")
	}

	srv.log(ctx).Debug("Waypoint appended",
		slog.Any("routeID", route.ID), slog.Int("orderIndex", waypoint.OrderIndex))

	return waypoint, nil
}

// GenerateShareQR renders a QR code PNG deep-linking to the route. Only
// published routes are shareable.
func (srv *routeService) GenerateShareQR(ctx context.Context, routeID uuid.UUID) ([]byte, error) {
	route, err := srv.loadRoute(ctx, routeID)
	if err != nil {
		return nil, err
	}

	if route.Status != entity.RouteStatusPublished {
		return nil, domainerrors.ErrRouteNotFound.WrapMessage("route is not published")
	}

	png, err := srv.qrService.GenerateRouteShareQR(route.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate share QR code")
	}

	return png, nil
}
