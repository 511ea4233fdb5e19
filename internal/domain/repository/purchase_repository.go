// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"kaelo/internal/domain/entity"
	"kaelo/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for purchase persistence.
var (
	// ErrPurchaseNotFound is returned when a purchase record is not found.
	ErrPurchaseNotFound = errors.New("purchase not found")
	// ErrDuplicatePurchase is returned when inserting a completed purchase
	// for a (buyer, route) pair that already has one. The storage layer's
	// partial unique index raises this; callers treat it as "already owned",
	// not as a system failure.
	ErrDuplicatePurchase = errors.New("purchase already exists")
)

// PurchaseRepository defines the interface for route purchase persistence.
// Purchase rows are immutable: there are no update or delete operations.
type PurchaseRepository interface {
	// Create inserts a purchase record. A unique-constraint violation on
	// (buyer_id, route_id) for completed rows is surfaced as
	// ErrDuplicatePurchase.
	Create(ctx context.Context, purchase *entity.RoutePurchase) error

	// ExistsCompleted reports whether a completed purchase exists for the
	// given buyer and route.
	ExistsCompleted(ctx context.Context, buyerID, routeID uuid.UUID) (bool, error)

	// FindCompletedByBuyer retrieves a buyer's completed purchases,
	// newest first.
	FindCompletedByBuyer(ctx context.Context, buyerID uuid.UUID) ([]*entity.RoutePurchase, error)

	// FindByBuyerAndRoute retrieves the completed purchase for a
	// (buyer, route) pair, or ErrPurchaseNotFound.
	FindByBuyerAndRoute(ctx context.Context, buyerID, routeID uuid.UUID) (*entity.RoutePurchase, error)
}
