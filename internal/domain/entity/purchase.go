// Package entity contains the core business objects of the project.
package entity

import (
	"math"
	"time"

	"github.com/google/uuid"
)

// PaymentStatus represents the settlement state of a route purchase.
type PaymentStatus string

const (
	// PaymentStatusCompleted indicates a settled purchase that grants access.
	PaymentStatusCompleted PaymentStatus = "completed"
	// PaymentStatusFailed indicates a purchase whose payment was declined.
	PaymentStatusFailed PaymentStatus = "failed"
	// PaymentStatusRefunded indicates a purchase reversed by support tooling.
	PaymentStatusRefunded PaymentStatus = "refunded"
)

// String returns the string representation of the PaymentStatus.
func (s PaymentStatus) String() string {
	return string(s)
}

// IsValid checks if the PaymentStatus is a valid value.
func (s PaymentStatus) IsValid() bool {
	switch s {
	case PaymentStatusCompleted, PaymentStatusFailed, PaymentStatusRefunded:
		return true
	default:
		return false
	}
}

// RoutePurchase is the immutable record of a buyer paying for access to a route.
// At most one completed purchase exists per (buyer, route) pair; the partial
// unique index at the storage layer is the sole guard against concurrent
// double-submission. Rows are never updated or deleted by this service.
type RoutePurchase struct {
	ID              uuid.UUID     // The Global Unique Identifier (GUID) for the purchase.
	BuyerID         uuid.UUID     // The user who paid.
	RouteID         uuid.UUID     // The route that was bought.
	AmountPaid      float64       // The full amount charged to the buyer.
	CreatorEarnings float64       // The creator's share of AmountPaid.
	PlatformFee     float64       // The marketplace's cut of AmountPaid.
	Status          PaymentStatus // Settlement state. Access requires "completed".
	TransactionID   string        // Identifier returned by the payment gateway.
	PurchasedAt     time.Time     // Timestamp of record insertion.
}

// SplitAmount computes the creator/platform split for a purchase amount.
// The fee is rounded to cents once, and the earnings are derived from it, so
// creatorEarnings + platformFee == amount holds exactly. The split is computed
// a single time at purchase-record creation and never recomputed from stored
// fields.
func SplitAmount(amount, feeRate float64) (creatorEarnings, platformFee float64) {
	platformFee = math.Round(amount*feeRate*100) / 100
	creatorEarnings = math.Round((amount-platformFee)*100) / 100

	return creatorEarnings, platformFee
}
