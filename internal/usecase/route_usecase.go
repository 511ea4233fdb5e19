package usecase

import (
	"context"

	"kaelo/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

// --- Input DTOs ---

// CreateRouteInput defines the data required to create a draft route.
type CreateRouteInput struct {
	CreatorID   uuid.UUID
	Title       string
	Description string
	Path        orb.LineString
	DistanceKm  float64
	Difficulty  string
	Tags        []string
	Price       float64
	IsFree      bool
}

// UpdateRouteInput defines the editable fields of a draft route.
type UpdateRouteInput struct {
	RouteID     uuid.UUID
	CreatorID   uuid.UUID
	Title       string
	Description string
	Path        orb.LineString
	DistanceKm  float64
	Difficulty  string
	Tags        []string
	Price       float64
	IsFree      bool
}

// AppendWaypointInput defines the data required to append a waypoint.
type AppendWaypointInput struct {
	RouteID     uuid.UUID
	CreatorID   uuid.UUID
	Name        string
	Description string
	Location    orb.Point
}

// --- Output DTOs ---

// RouteDetail is a route as seen by a specific viewer. Geometry and
// waypoints are present only when the viewer has full access.
type RouteDetail struct {
	Route         *entity.Route
	Waypoints     []*entity.Waypoint
	HasFullAccess bool
}

// RouteUsecase defines the interface for route lifecycle and reading.
type RouteUsecase interface {
	// CreateRoute creates a new draft route owned by the creator.
	CreateRoute(ctx context.Context, input *CreateRouteInput) (*entity.Route, error)

	// UpdateRoute modifies a draft route. Only the owning creator may call it.
	UpdateRoute(ctx context.Context, input *UpdateRouteInput) (*entity.Route, error)

	// SubmitForReview moves a draft route into moderation.
	SubmitForReview(ctx context.Context, routeID, creatorID uuid.UUID) error

	// Publish approves an in-review route onto the marketplace.
	Publish(ctx context.Context, routeID uuid.UUID) error

	// Reject turns down an in-review route.
	Reject(ctx context.Context, routeID uuid.UUID) error

	// Archive withdraws a published route. Only the owning creator may call it.
	Archive(ctx context.Context, routeID, creatorID uuid.UUID) error

	// GetRoute returns the route as the viewer is allowed to see it.
	// Full reads bump the route's view counter.
	GetRoute(ctx context.Context, routeID uuid.UUID, viewerID *uuid.UUID) (*RouteDetail, error)

	// ListPublished returns marketplace listings, newest first.
	ListPublished(ctx context.Context, offset, limit int) ([]*entity.Route, error)

	// ListByCreator returns all routes authored by the creator.
	ListByCreator(ctx context.Context, creatorID uuid.UUID) ([]*entity.Route, error)

	// AppendWaypoint adds a waypoint to the end of the route's list.
	AppendWaypoint(ctx context.Context, input *AppendWaypointInput) (*entity.Waypoint, error)

	// GenerateShareQR renders a QR code PNG deep-linking to the route.
	GenerateShareQR(ctx context.Context, routeID uuid.UUID) ([]byte, error)
}
