// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"kaelo/internal/domain/entity"
	"kaelo/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for route persistence.
var (
	// ErrRouteNotFound is returned when a route is not found.
	ErrRouteNotFound = errors.New("route not found")
	// ErrWaypointNotFound is returned when a waypoint is not found.
	ErrWaypointNotFound = errors.New("waypoint not found")
)

// RouteRepository defines the interface for route-related database operations.
type RouteRepository interface {
	// Create persists a new route in draft state.
	Create(ctx context.Context, route *entity.Route) error

	// FindByID retrieves a route by its unique ID, including its geometry.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Route, error)

	// FindByCreator retrieves all routes authored by a creator, newest first.
	FindByCreator(ctx context.Context, creatorID uuid.UUID) ([]*entity.Route, error)

	// ListPublished retrieves published routes for marketplace browsing,
	// newest first, with offset/limit paging.
	ListPublished(ctx context.Context, offset, limit int) ([]*entity.Route, error)

	// Update modifies a route's metadata and geometry.
	Update(ctx context.Context, route *entity.Route) error

	// UpdateStatus moves a route to a new lifecycle state.
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.RouteStatus) error

	// IncrementPurchaseCount bumps the route's completed-purchase counter.
	IncrementPurchaseCount(ctx context.Context, id uuid.UUID) error

	// IncrementViewCount bumps the route's full-content view counter.
	IncrementViewCount(ctx context.Context, id uuid.UUID) error
}

// WaypointRepository defines the interface for waypoint persistence.
// The waypoint list of a route is append-only.
type WaypointRepository interface {
	// Append adds a waypoint at the end of the route's ordered list and
	// assigns its order index server-side.
	Append(ctx context.Context, waypoint *entity.Waypoint) error

	// FindByRoute retrieves all waypoints of a route ordered by their index.
	FindByRoute(ctx context.Context, routeID uuid.UUID) ([]*entity.Waypoint, error)
}
