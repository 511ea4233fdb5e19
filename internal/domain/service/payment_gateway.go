// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

import (
	"context"

	"kaelo/internal/errors"
)

// ErrPaymentDeclined is returned by a gateway when the instrument is refused.
// The simulated gateway never returns it, but the seam must support it so a
// real gateway integration is a drop-in replacement.
var ErrPaymentDeclined = errors.New("payment declined")

// PaymentInstrument carries the buyer-supplied payment details. The service
// never persists these fields; they exist only for the gateway call.
type PaymentInstrument struct {
	CardNumber  string `json:"card_number"`
	ExpiryMonth int    `json:"expiry_month"`
	ExpiryYear  int    `json:"expiry_year"`
	CVV         string `json:"cvv"`
	HolderName  string `json:"holder_name"`
}

// Authorization is the result of a successful gateway authorization.
type Authorization struct {
	TransactionID string // Gateway-assigned identifier for the charge.
}

// PaymentGateway is the narrow seam between the purchase recorder and the
// payment provider. The recorder's transaction-recording logic is identical
// no matter which implementation sits behind this interface.
type PaymentGateway interface {
	// Authorize charges the instrument for the given amount. It returns
	// ErrPaymentDeclined when the provider refuses the charge; any other
	// error is an infrastructure failure.
	Authorize(ctx context.Context, amount float64, instrument PaymentInstrument) (*Authorization, error)
}
