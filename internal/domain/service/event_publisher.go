package service

import (
	"context"
)

// PurchaseEvent represents a completed route purchase, fanned out for async
// consumers (creator earnings dashboards, analytics).
type PurchaseEvent struct {
	RequestID       string  `json:"request_id,omitempty"` // For distributed tracing
	PurchaseID      string  `json:"purchase_id"`
	RouteID         string  `json:"route_id"`
	BuyerID         string  `json:"buyer_id"`
	CreatorID       string  `json:"creator_id"`
	AmountPaid      float64 `json:"amount_paid"`
	CreatorEarnings float64 `json:"creator_earnings"`
	PlatformFee     float64 `json:"platform_fee"`
	TransactionID   string  `json:"transaction_id"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishPurchaseEvent publishes a completed-purchase event for async processing
	PublishPurchaseEvent(ctx context.Context, event *PurchaseEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
