package payment

import (
	"context"
	"log/slog"
	"strings"
	"testing"
	"time"

	"kaelo/config"
	"kaelo/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGateway(delay time.Duration) service.PaymentGateway {
	cfg := &config.Config{
		Marketplace: &config.MarketplaceConfig{PaymentSimDelay: delay},
	}

	return NewSimulatedGateway(cfg, slog.Default())
}

func TestSimulatedGateway_Authorize(t *testing.T) {
	gateway := newTestGateway(time.Millisecond)

	auth, err := gateway.Authorize(context.Background(), 49.90, service.PaymentInstrument{
		CardNumber: "4242424242424242",
		HolderName: "Test Buyer",
	})
	require.NoError(t, err)
	require.NotNil(t, auth)

	assert.True(t, strings.HasPrefix(auth.TransactionID, "TXN-"))
	assert.Len(t, strings.Split(auth.TransactionID, "-"), 3)
}

func TestSimulatedGateway_UniqueTransactionIDs(t *testing.T) {
	gateway := newTestGateway(time.Millisecond)

	seen := make(map[string]bool)
	for range 10 {
		auth, err := gateway.Authorize(context.Background(), 10, service.PaymentInstrument{})
		require.NoError(t, err)
		assert.False(t, seen[auth.TransactionID], "duplicate transaction ID %s", auth.TransactionID)
		seen[auth.TransactionID] = true
	}
}

func TestSimulatedGateway_ContextCancelled(t *testing.T) {
	gateway := newTestGateway(5 * time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	auth, err := gateway.Authorize(ctx, 10, service.PaymentInstrument{})
	assert.Error(t, err)
	assert.Nil(t, auth)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
