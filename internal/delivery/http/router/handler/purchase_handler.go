package handler

import (
	"log/slog"
	"net/http"

	"kaelo/internal/delivery/http/response"
	"kaelo/internal/domain/service"
	"kaelo/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// PurchaseHandler holds dependencies for purchase handlers.
type PurchaseHandler struct {
	purchaseUC usecase.PurchaseUsecase
	logger     *slog.Logger
}

// NewPurchaseHandler is the constructor for PurchaseHandler, injected by Fx.
func NewPurchaseHandler(purchaseUC usecase.PurchaseUsecase, logger *slog.Logger) *PurchaseHandler {
	return &PurchaseHandler{
		purchaseUC: purchaseUC,
		logger:     logger,
	}
}

type purchaseRequest struct {
	RouteID     string  `json:"route_id" validate:"required,uuid"`
	Amount      float64 `json:"amount" validate:"required,gt=0"`
	CardNumber  string  `json:"card_number" validate:"required"`
	ExpiryMonth int     `json:"expiry_month" validate:"required,min=1,max=12"`
	ExpiryYear  int     `json:"expiry_year" validate:"required"`
	CVV         string  `json:"cvv" validate:"required"`
	HolderName  string  `json:"holder_name"`
}

// purchaseStatus maps a purchase failure code onto an HTTP status. Unknown
// codes are treated as server-side failures.
func purchaseStatus(errorCode string) int {
	switch errorCode {
	case usecase.PurchaseErrNotAuthenticated:
		return http.StatusUnauthorized
	case usecase.PurchaseErrRouteNotFound:
		return http.StatusNotFound
	case usecase.PurchaseErrNotPurchasable, usecase.PurchaseErrAmountMismatch:
		return http.StatusBadRequest
	case usecase.PurchaseErrAlreadyPurchased:
		return http.StatusConflict
	case usecase.PurchaseErrPaymentDeclined:
		return http.StatusPaymentRequired
	default:
		return http.StatusInternalServerError
	}
}

// Purchase runs the purchase flow and returns the result envelope. Business
// failures keep the result shape so clients can switch on the error code.
func (h *PurchaseHandler) Purchase(c echo.Context) error {
	var req purchaseRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid purchase input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	routeID, err := uuid.Parse(req.RouteID)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid route ID")
	}

	result := h.purchaseUC.Purchase(c.Request().Context(), &usecase.PurchaseInput{
		BuyerID: viewerID(c),
		RouteID: routeID,
		Amount:  req.Amount,
		Instrument: service.PaymentInstrument{
			CardNumber:  req.CardNumber,
			ExpiryMonth: req.ExpiryMonth,
			ExpiryYear:  req.ExpiryYear,
			CVV:         req.CVV,
			HolderName:  req.HolderName,
		},
	})

	if !result.Success {
		return c.JSON(purchaseStatus(result.ErrorCode), response.Response{
			Success: false,
			Code:    purchaseStatus(result.ErrorCode),
			Message: result.Message,
			Data:    result,
			Error: &response.ErrorInfo{
				Code: result.ErrorCode,
			},
		})
	}

	return response.Success(c, http.StatusCreated, result, "Route purchased successfully")
}

// ListPurchases returns the caller's purchase history, newest first. The
// history view degrades to an empty list rather than failing.
func (h *PurchaseHandler) ListPurchases(c echo.Context) error {
	purchases := h.purchaseUC.ListPurchases(c.Request().Context(), viewerID(c))

	return response.Success(c, http.StatusOK, purchases, "Purchases retrieved successfully")
}
