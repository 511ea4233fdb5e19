package usecase

import (
	"context"
	"time"

	"kaelo/internal/domain/service"

	"github.com/google/uuid"
)

// Error codes carried in PurchaseResult for failed purchases. The HTTP layer
// maps them onto the AppError catalog; clients switch on these values.
const (
	PurchaseErrNotAuthenticated = "NOT_AUTHENTICATED"
	PurchaseErrRouteNotFound    = "ROUTE_NOT_FOUND"
	PurchaseErrNotPurchasable   = "ROUTE_NOT_PURCHASABLE"
	PurchaseErrAmountMismatch   = "AMOUNT_MISMATCH"
	PurchaseErrAlreadyPurchased = "ALREADY_PURCHASED"
	PurchaseErrPaymentDeclined  = "PAYMENT_DECLINED"
	PurchaseErrProcessing       = "PROCESSING_ERROR"
)

// PurchaseInput defines the data required to buy a route.
// A nil BuyerID means the request was not authenticated.
type PurchaseInput struct {
	BuyerID    *uuid.UUID
	RouteID    uuid.UUID
	Amount     float64 // Amount the client believes it is paying; re-validated server-side.
	Instrument service.PaymentInstrument
}

// PurchaseResult is the outcome of a purchase attempt. Business failures are
// results with an ErrorCode, not Go errors; only infrastructure breakage
// surfaces as PROCESSING_ERROR.
type PurchaseResult struct {
	Success       bool
	TransactionID string
	ErrorCode     string
	Message       string
}

// PurchaseSummary is one row of a buyer's purchase history.
type PurchaseSummary struct {
	RouteID     uuid.UUID
	RouteTitle  string
	AmountPaid  float64
	PurchasedAt time.Time
}

// PurchaseUsecase records route purchases and reads purchase history.
type PurchaseUsecase interface {
	// Purchase runs the full purchase flow: validation, payment
	// authorization, and transactional recording of the completed purchase.
	Purchase(ctx context.Context, input *PurchaseInput) *PurchaseResult

	// ListPurchases returns the buyer's completed purchases, newest first.
	// A nil buyerID or a storage failure yields an empty slice, never an
	// error; failures are logged.
	ListPurchases(ctx context.Context, buyerID *uuid.UUID) []PurchaseSummary
}
