// Package payment provides payment gateway implementations.
package payment

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"time"

	"kaelo/config"
	"kaelo/internal/domain/service"

	"github.com/pkg/errors"
)

// simulatedGateway is a stand-in payment provider for development and staging.
// It waits a configurable processing delay and then authorizes every charge.
// Swapping in a real provider only requires another PaymentGateway
// implementation; the purchase flow does not change.
type simulatedGateway struct {
	delay  time.Duration
	logger *slog.Logger
	now    func() time.Time
}

// NewSimulatedGateway is the constructor for simulatedGateway.
func NewSimulatedGateway(cfg *config.Config, logger *slog.Logger) service.PaymentGateway {
	return &simulatedGateway{
		delay:  cfg.Marketplace.SimDelay(),
		logger: logger,
		now:    time.Now,
	}
}

// Authorize simulates a charge against the instrument. The delay respects
// context cancellation so a dropped request does not hold the worker.
func (g *simulatedGateway) Authorize(ctx context.Context, amount float64, _ service.PaymentInstrument) (*service.Authorization, error) {
	select {
	case <-time.After(g.delay):
	case <-ctx.Done():
		return nil, errors.Wrap(ctx.Err(), "payment authorization interrupted")
	}

	transactionID := fmt.Sprintf("TXN-%d-%04d", g.now().UnixMilli(), rand.IntN(10000))

	g.logger.Info("simulated payment authorized",
		slog.Float64("amount", amount),
		slog.String("transaction_id", transactionID),
	)

	return &service.Authorization{TransactionID: transactionID}, nil
}
