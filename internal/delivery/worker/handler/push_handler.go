// Package handler processes Pub/Sub push deliveries for the worker.
package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"kaelo/config"
	deliverycontext "kaelo/internal/delivery/context"
	"kaelo/internal/domain/constants"
	"kaelo/internal/domain/repository"
	"kaelo/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// PubSubMessage represents the structure of a Pub/Sub push message
type PubSubMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// retryableError wraps an error to indicate it should trigger a Pub/Sub retry
type retryableError struct {
	err error
}

func (e *retryableError) Error() string {
	return fmt.Sprintf("retryable: %v", e.err)
}

func (e *retryableError) Unwrap() error {
	return e.err
}

// newRetryableError wraps an error as retryable
func newRetryableError(err error) error {
	return &retryableError{err: err}
}

// isRetryableError checks if an error is retryable
func isRetryableError(err error) bool {
	var re *retryableError

	return errors.As(err, &re)
}

// PushHandler handles Pub/Sub push messages carrying purchase events. The
// synchronous purchase flow already pushes the sale to the creator; this
// consumer sends the buyer their receipt.
type PushHandler struct {
	verifyPushAuth  bool
	logger          *slog.Logger
	notificationSvc service.NotificationService
	deviceRepo      repository.DeviceRepository
	routeRepo       repository.RouteRepository
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config          *config.Config
	Logger          *slog.Logger
	NotificationSvc service.NotificationService
	DeviceRepo      repository.DeviceRepository
	RouteRepo       repository.RouteRepository
}

// NewPushHandler creates a new Pub/Sub push handler
func NewPushHandler(params PushHandlerParams) *PushHandler {
	// Push requests carry a Google-signed token only for the google
	// provider outside local development.
	verifyPushAuth := params.Config.PubSub != nil &&
		params.Config.PubSub.Provider == constants.PubSubProviderGoogle &&
		params.Config.Env.Env != constants.EnvDevelop

	return &PushHandler{
		verifyPushAuth:  verifyPushAuth,
		logger:          params.Logger,
		notificationSvc: params.NotificationSvc,
		deviceRepo:      params.DeviceRepo,
		routeRepo:       params.RouteRepo,
	}
}

// HandlePush handles incoming Pub/Sub push messages
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	if h.verifyPushAuth {
		if err := verifyPubSubToken(c.Request()); err != nil {
			h.logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var pushMsg PubSubMessage
	if err := c.Bind(&pushMsg); err != nil {
		h.logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	data, err := base64.StdEncoding.DecodeString(pushMsg.Message.Data)
	if err != nil {
		h.logger.Error("[Worker] Failed to decode message data", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	var event service.PurchaseEvent
	if err := json.Unmarshal(data, &event); err != nil {
		h.logger.Error("[Worker] Failed to parse purchase event", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	requestID := h.extractRequestID(ctx, &pushMsg, &event)
	reqLogger := h.logger.With(slog.String("request_id", requestID))

	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)

	reqLogger.Info("[Worker] Processing purchase event",
		slog.String("purchase_id", event.PurchaseID),
		slog.String("route_id", event.RouteID),
		slog.String("buyer_id", event.BuyerID),
	)

	if err := h.sendBuyerReceipt(ctx, &event); err != nil {
		reqLogger.Error("[Worker] Failed to process purchase event",
			slog.String("purchase_id", event.PurchaseID),
			slog.Any("error", err),
			slog.Bool("retryable", isRetryableError(err)),
		)
		// 503 triggers a Pub/Sub redelivery; anything unrecoverable is
		// acknowledged to stop the retry loop.
		if isRetryableError(err) {
			return c.NoContent(http.StatusServiceUnavailable)
		}

		return c.NoContent(http.StatusOK)
	}

	return c.NoContent(http.StatusOK)
}

// extractRequestID extracts request_id from message attributes, event, or generates a new one
func (h *PushHandler) extractRequestID(ctx context.Context, pushMsg *PubSubMessage, event *service.PurchaseEvent) string {
	if requestID, ok := pushMsg.Message.Attributes["request_id"]; ok && requestID != "" {
		return requestID
	}

	if event.RequestID != "" {
		return event.RequestID
	}

	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		return requestID
	}

	return uuid.New().String()
}

// sendBuyerReceipt pushes a purchase receipt to the buyer's active devices.
func (h *PushHandler) sendBuyerReceipt(ctx context.Context, event *service.PurchaseEvent) error {
	if h.notificationSvc == nil {
		return nil
	}

	buyerID, err := uuid.Parse(event.BuyerID)
	if err != nil {
		return errors.WithStack(err)
	}

	devices, err := h.deviceRepo.FindActiveByUser(ctx, buyerID)
	if err != nil {
		return newRetryableError(errors.WithStack(err))
	}
	if len(devices) == 0 {
		deliverycontext.GetLoggerOrDefault(ctx, h.logger).Info("[Worker] Buyer has no active devices",
			slog.String("purchase_id", event.PurchaseID),
		)

		return nil
	}

	tokens := make([]string, 0, len(devices))
	for _, device := range devices {
		tokens = append(tokens, device.FCMToken)
	}

	title, body, data := h.prepareReceiptContent(ctx, event)

	_, _, invalidTokens, err := h.notificationSvc.SendBatchNotification(ctx, tokens, title, body, data)
	if err != nil {
		return newRetryableError(errors.WithStack(err))
	}

	if len(invalidTokens) > 0 {
		if err := h.deviceRepo.Deactivate(ctx, invalidTokens); err != nil {
			deliverycontext.GetLoggerOrDefault(ctx, h.logger).Warn("[Worker] Failed to deactivate invalid tokens",
				slog.Any("error", err),
			)
		}
	}

	return nil
}

// prepareReceiptContent creates the receipt title, body, and data payload.
func (h *PushHandler) prepareReceiptContent(ctx context.Context, event *service.PurchaseEvent) (title, body string, data map[string]string) {
	title = "購買完成"
	body = fmt.Sprintf("您的路線購買已完成，金額 %.2f", event.AmountPaid)

	// The title is decoration; a failed lookup falls back to the generic body.
	if routeID, err := uuid.Parse(event.RouteID); err == nil {
		if route, err := h.routeRepo.FindByID(ctx, routeID); err == nil {
			body = fmt.Sprintf("您已成功購買「%s」，金額 %.2f", route.Title, event.AmountPaid)
		}
	}

	data = map[string]string{
		"type":           "purchase_receipt",
		"purchase_id":    event.PurchaseID,
		"route_id":       event.RouteID,
		"transaction_id": event.TransactionID,
	}

	return title, body, data
}

// verifyPubSubToken verifies the JWT token from Google Pub/Sub push requests
// Reference: https://cloud.google.com/pubsub/docs/push#authenticating_standard_push_requests
func verifyPubSubToken(req *http.Request) error {
	authHeader := req.Header.Get("Authorization")
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	const bearerPrefix = "Bearer "
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return errors.New("invalid authorization header format")
	}
	token := strings.TrimPrefix(authHeader, bearerPrefix)

	// The audience is this push endpoint's URL.
	scheme := "https"
	if req.TLS == nil {
		scheme = "http" // For local development
	}
	audience := fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)

	payload, err := idtoken.Validate(req.Context(), token, audience)
	if err != nil {
		return errors.Wrap(err, "token validation failed")
	}

	if payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("unexpected token issuer: %s", payload.Issuer)
	}

	return nil
}
