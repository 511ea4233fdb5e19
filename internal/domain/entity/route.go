// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

// RouteStatus represents the lifecycle state of a route listing.
type RouteStatus string

const (
	// RouteStatusDraft indicates a route still being authored by its creator.
	RouteStatusDraft RouteStatus = "draft"
	// RouteStatusInReview indicates a route submitted for moderation.
	RouteStatusInReview RouteStatus = "in_review"
	// RouteStatusPublished indicates a route visible on the marketplace.
	RouteStatusPublished RouteStatus = "published"
	// RouteStatusRejected indicates a route turned down by moderation.
	RouteStatusRejected RouteStatus = "rejected"
	// RouteStatusArchived indicates a route withdrawn from the marketplace.
	RouteStatusArchived RouteStatus = "archived"
)

// String returns the string representation of the RouteStatus.
func (s RouteStatus) String() string {
	return string(s)
}

// IsValid checks if the RouteStatus is a valid value.
func (s RouteStatus) IsValid() bool {
	switch s {
	case RouteStatusDraft, RouteStatusInReview, RouteStatusPublished, RouteStatusRejected, RouteStatusArchived:
		return true
	default:
		return false
	}
}

// CanTransitionTo reports whether the lifecycle allows moving to the target state.
// The allowed graph is draft → in_review → published/rejected, and
// published → archived. Rejected routes go back to draft for rework.
func (s RouteStatus) CanTransitionTo(target RouteStatus) bool {
	switch s {
	case RouteStatusDraft:
		return target == RouteStatusInReview
	case RouteStatusInReview:
		return target == RouteStatusPublished || target == RouteStatusRejected
	case RouteStatusPublished:
		return target == RouteStatusArchived
	case RouteStatusRejected:
		return target == RouteStatusDraft
	default:
		return false
	}
}

// Route is a purchasable trail listing: an authored geometry with
// descriptive metadata, a price and aggregate marketplace stats.
type Route struct {
	ID            uuid.UUID      // The Global Unique Identifier (GUID) for the route.
	CreatorID     uuid.UUID      // The ID of the user who authored this route.
	Title         string         // The listing title shown on the marketplace.
	Description   string         // Long-form description of the trail.
	Path          orb.LineString // Ordered longitude/latitude pairs forming the trail geometry.
	StartPoint    orb.Point      // The trailhead coordinate.
	EndPoint      orb.Point      // The trail end coordinate.
	DistanceKm    float64        // Total trail length in kilometers.
	Difficulty    string         // Free-form difficulty label, e.g. "easy", "moderate", "hard".
	Tags          []string       // Search tags attached by the creator.
	Price         float64        // Purchase price. Ignored when IsFree is true.
	IsFree        bool           // Free routes are viewable by everyone without a purchase.
	Status        RouteStatus    // Lifecycle state of the listing.
	PurchaseCount int            // Number of completed purchases of this route.
	ViewCount     int            // Number of full-content views.
	Rating        float64        // Aggregate buyer rating.
	CreatedAt     time.Time      // Timestamp of when this route was created.
	UpdatedAt     time.Time      // Timestamp of the last modification.
}

// IsOwnedBy reports whether the given user authored this route.
func (r *Route) IsOwnedBy(userID uuid.UUID) bool {
	return r != nil && r.CreatorID == userID
}

// Waypoint is an ordered point of interest along a route's path.
// The list is append-only and authored by the route's creator.
type Waypoint struct {
	ID          uuid.UUID // The Global Unique Identifier (GUID) for the waypoint.
	RouteID     uuid.UUID // The route this waypoint belongs to.
	OrderIndex  int       // Position along the route, assigned server-side on append.
	Name        string    // Short name, e.g. "Lookout", "Water source".
	Description string    // Optional details about the point of interest.
	Location    orb.Point // The waypoint coordinate (longitude, latitude).
	CreatedAt   time.Time // Timestamp of when this waypoint was appended.
}
