package handler

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"kaelo/internal/delivery/http/validator"
	"kaelo/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubPurchaseUsecase returns canned results so the handler's HTTP mapping
// can be exercised without the full purchase flow.
type stubPurchaseUsecase struct {
	result    *usecase.PurchaseResult
	purchases []usecase.PurchaseSummary
	gotInput  *usecase.PurchaseInput
}

func (s *stubPurchaseUsecase) Purchase(ctx context.Context, input *usecase.PurchaseInput) *usecase.PurchaseResult {
	s.gotInput = input

	return s.result
}

func (s *stubPurchaseUsecase) ListPurchases(ctx context.Context, buyerID *uuid.UUID) []usecase.PurchaseSummary {
	return s.purchases
}

func newPurchaseContext(t *testing.T, body string, userID *uuid.UUID) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	e.Validator = validator.New()

	req := httptest.NewRequest(http.MethodPost, "/purchases", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if userID != nil {
		c.Set("userID", *userID)
	}

	return c, rec
}

func purchaseBody(routeID uuid.UUID) string {
	return `{
		"route_id": "` + routeID.String() + `",
		"amount": 49.99,
		"card_number": "4242424242424242",
		"expiry_month": 12,
		"expiry_year": 2030,
		"cvv": "123",
		"holder_name": "WANG XIAOMING"
	}`
}

func TestPurchaseHandler_Purchase_Success(t *testing.T) {
	routeID := uuid.New()
	buyerID := uuid.New()
	stub := &stubPurchaseUsecase{
		result: &usecase.PurchaseResult{Success: true, TransactionID: "TXN-1700000000000-abc123"},
	}
	h := NewPurchaseHandler(stub, slog.New(slog.NewTextHandler(io.Discard, nil)))

	c, rec := newPurchaseContext(t, purchaseBody(routeID), &buyerID)

	require.NoError(t, h.Purchase(c))
	assert.Equal(t, http.StatusCreated, rec.Code)

	require.NotNil(t, stub.gotInput)
	require.NotNil(t, stub.gotInput.BuyerID)
	assert.Equal(t, buyerID, *stub.gotInput.BuyerID)
	assert.Equal(t, routeID, stub.gotInput.RouteID)
	assert.InDelta(t, 49.99, stub.gotInput.Amount, 1e-9)
	assert.Equal(t, "4242424242424242", stub.gotInput.Instrument.CardNumber)
	assert.Contains(t, rec.Body.String(), "TXN-1700000000000-abc123")
}

func TestPurchaseHandler_Purchase_AnonymousPassesNilBuyer(t *testing.T) {
	stub := &stubPurchaseUsecase{
		result: &usecase.PurchaseResult{
			Success:   false,
			ErrorCode: usecase.PurchaseErrNotAuthenticated,
			Message:   "login required",
		},
	}
	h := NewPurchaseHandler(stub, slog.New(slog.NewTextHandler(io.Discard, nil)))

	c, rec := newPurchaseContext(t, purchaseBody(uuid.New()), nil)

	require.NoError(t, h.Purchase(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	require.NotNil(t, stub.gotInput)
	assert.Nil(t, stub.gotInput.BuyerID)
}

func TestPurchaseHandler_Purchase_ErrorCodeStatusMapping(t *testing.T) {
	tests := []struct {
		errorCode  string
		wantStatus int
	}{
		{usecase.PurchaseErrRouteNotFound, http.StatusNotFound},
		{usecase.PurchaseErrNotPurchasable, http.StatusBadRequest},
		{usecase.PurchaseErrAmountMismatch, http.StatusBadRequest},
		{usecase.PurchaseErrAlreadyPurchased, http.StatusConflict},
		{usecase.PurchaseErrPaymentDeclined, http.StatusPaymentRequired},
		{usecase.PurchaseErrProcessing, http.StatusInternalServerError},
	}

	buyerID := uuid.New()
	for _, tt := range tests {
		t.Run(tt.errorCode, func(t *testing.T) {
			stub := &stubPurchaseUsecase{
				result: &usecase.PurchaseResult{Success: false, ErrorCode: tt.errorCode},
			}
			h := NewPurchaseHandler(stub, slog.New(slog.NewTextHandler(io.Discard, nil)))

			c, rec := newPurchaseContext(t, purchaseBody(uuid.New()), &buyerID)

			require.NoError(t, h.Purchase(c))
			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.errorCode)
		})
	}
}

func TestPurchaseHandler_Purchase_RejectsInvalidBody(t *testing.T) {
	stub := &stubPurchaseUsecase{}
	h := NewPurchaseHandler(stub, slog.New(slog.NewTextHandler(io.Discard, nil)))

	// Missing card fields fail validation before the usecase runs.
	body := `{"route_id": "` + uuid.New().String() + `", "amount": 49.99}`
	c, _ := newPurchaseContext(t, body, nil)

	err := h.Purchase(c)
	require.Error(t, err)
	assert.Nil(t, stub.gotInput)
}

func TestPurchaseHandler_ListPurchases_AlwaysSucceeds(t *testing.T) {
	stub := &stubPurchaseUsecase{purchases: []usecase.PurchaseSummary{}}
	h := NewPurchaseHandler(stub, slog.New(slog.NewTextHandler(io.Discard, nil)))

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/purchases", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.ListPurchases(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var envelope struct {
		Success bool              `json:"success"`
		Data    []json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.True(t, envelope.Success)
	assert.Empty(t, envelope.Data)
}
