package usecase

import (
	"context"

	"github.com/google/uuid"
)

// AccessUsecase decides whether a viewer may see a route's full content.
// The decision is fail closed: any doubt, including lookup failures,
// evaluates to no access.
type AccessUsecase interface {
	// HasAccess reports whether the viewer may read the route's full
	// geometry and waypoints. A nil viewerID means an anonymous request.
	// It never returns an error; failures are logged and count as denial.
	HasAccess(ctx context.Context, routeID uuid.UUID, viewerID *uuid.UUID) bool
}
