package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitAmount(t *testing.T) {
	tests := []struct {
		name         string
		amount       float64
		feeRate      float64
		wantEarnings float64
		wantFee      float64
	}{
		{name: "round amount", amount: 100.0, feeRate: 0.10, wantEarnings: 90.0, wantFee: 10.0},
		{name: "cents amount", amount: 19.99, feeRate: 0.10, wantEarnings: 17.99, wantFee: 2.0},
		{name: "odd cents", amount: 10.05, feeRate: 0.10, wantEarnings: 9.04, wantFee: 1.01},
		{name: "small amount", amount: 0.01, feeRate: 0.10, wantEarnings: 0.01, wantFee: 0.0},
		{name: "zero fee rate", amount: 50.0, feeRate: 0.0, wantEarnings: 50.0, wantFee: 0.0},
		{name: "full fee rate", amount: 50.0, feeRate: 1.0, wantEarnings: 0.0, wantFee: 50.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			earnings, fee := SplitAmount(tt.amount, tt.feeRate)

			assert.InDelta(t, tt.wantEarnings, earnings, 1e-9)
			assert.InDelta(t, tt.wantFee, fee, 1e-9)
			assert.InDelta(t, tt.amount, earnings+fee, 1e-9, "split parts must sum to the amount")
		})
	}
}

func TestPaymentStatus_IsValid(t *testing.T) {
	assert.True(t, PaymentStatusCompleted.IsValid())
	assert.True(t, PaymentStatusFailed.IsValid())
	assert.True(t, PaymentStatusRefunded.IsValid())
	assert.False(t, PaymentStatus("pending").IsValid())
	assert.False(t, PaymentStatus("").IsValid())
}
