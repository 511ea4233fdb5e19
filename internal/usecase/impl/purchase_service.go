package impl

import (
	"context"
	"log/slog"
	"math"

	"kaelo/config"
	deliverycontext "kaelo/internal/delivery/context"
	"kaelo/internal/domain/constants"
	"kaelo/internal/domain/entity"
	domainerrors "kaelo/internal/domain/errors"
	"kaelo/internal/domain/repository"
	"kaelo/internal/domain/service"
	"kaelo/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// purchaseService implements the PurchaseUsecase interface.
//
// The write path never relies on the read-then-write check alone: the
// storage layer's partial unique index on completed (buyer, route) rows is
// the final arbiter when two purchase attempts race.
type purchaseService struct {
	txManager    repository.TransactionManager
	routeRepo    repository.RouteRepository
	purchaseRepo repository.PurchaseRepository
	deviceRepo   repository.DeviceRepository
	gateway      service.PaymentGateway
	publisher    service.EventPublisher
	notifier     service.NotificationService
	feeRate      float64
	logger       *slog.Logger
}

// PurchaseServiceParams holds dependencies for PurchaseService, injected by Fx.
type PurchaseServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	RouteRepo    repository.RouteRepository
	PurchaseRepo repository.PurchaseRepository
	DeviceRepo   repository.DeviceRepository
	Gateway      service.PaymentGateway
	Publisher    service.EventPublisher
	Notifier     service.NotificationService
	Config       *config.Config
	Logger       *slog.Logger
}

// NewPurchaseService is the constructor for purchaseService.
func NewPurchaseService(params PurchaseServiceParams) usecase.PurchaseUsecase {
	feeRate := constants.DefaultPlatformFeeRate
	if params.Config != nil {
		feeRate = params.Config.Marketplace.FeeRate()
	}

	return &purchaseService{
		txManager:    params.TxManager,
		routeRepo:    params.RouteRepo,
		purchaseRepo: params.PurchaseRepo,
		deviceRepo:   params.DeviceRepo,
		gateway:      params.Gateway,
		publisher:    params.Publisher,
		notifier:     params.Notifier,
		feeRate:      feeRate,
		logger:       params.Logger,
	}
}

func (srv *purchaseService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// failure builds a non-success result from a catalog error.
func failure(code string, appErr domainerrors.AppError) *usecase.PurchaseResult {
	return &usecase.PurchaseResult{
		Success:   false,
		ErrorCode: code,
		Message:   appErr.Message(),
	}
}

// sameCents reports whether two amounts are equal at cent precision.
func sameCents(a, b float64) bool {
	return math.Round(a*100) == math.Round(b*100)
}

// Purchase runs the full purchase flow. Business failures come back as
// results with an ErrorCode; the returned result is never nil.
func (srv *purchaseService) Purchase(ctx context.Context, input *usecase.PurchaseInput) *usecase.PurchaseResult {
	// 1. Identity. No side effects for anonymous callers.
	if input.BuyerID == nil {
		return failure(usecase.PurchaseErrNotAuthenticated, domainerrors.ErrNotAuthenticated)
	}
	buyerID := *input.BuyerID

	// 2. Load the authoritative route.
	route, err := srv.routeRepo.FindByID(ctx, input.RouteID)
	if err != nil {
		if errors.Is(err, repository.ErrRouteNotFound) {
			return failure(usecase.PurchaseErrRouteNotFound, domainerrors.ErrRouteNotFound)
		}
		srv.log(ctx).Error("Purchase failed to load route",
			slog.Any("routeID", input.RouteID), slog.Any("error", err))

		return failure(usecase.PurchaseErrProcessing, domainerrors.ErrPurchaseProcessing)
	}

	// 3. Only published, paid, non-owned routes are purchasable.
	if route.Status != entity.RouteStatusPublished || route.IsFree || route.IsOwnedBy(buyerID) {
		return failure(usecase.PurchaseErrNotPurchasable, domainerrors.ErrRouteNotPurchasable)
	}

	// The client-submitted amount must match the current price. The stored
	// record always uses the server-side price, never the submitted value.
	if !sameCents(input.Amount, route.Price) {
		srv.log(ctx).Warn("Purchase amount mismatch",
			slog.Any("routeID", route.ID),
			slog.Float64("submitted", input.Amount),
			slog.Float64("price", route.Price),
		)

		return failure(usecase.PurchaseErrAmountMismatch, domainerrors.ErrAmountMismatch)
	}

	// 4. Short-circuit on an existing completed purchase. This is a
	// courtesy check; the unique index below is the real guard.
	owned, err := srv.purchaseRepo.ExistsCompleted(ctx, buyerID, route.ID)
	if err != nil {
		srv.log(ctx).Error("Purchase failed to check ownership",
			slog.Any("routeID", route.ID), slog.Any("error", err))

		return failure(usecase.PurchaseErrProcessing, domainerrors.ErrPurchaseProcessing)
	}
	if owned {
		return failure(usecase.PurchaseErrAlreadyPurchased, domainerrors.ErrAlreadyPurchased)
	}

	// 5. Authorize the charge before touching storage.
	authorization, err := srv.gateway.Authorize(ctx, route.Price, input.Instrument)
	if err != nil {
		if errors.Is(err, service.ErrPaymentDeclined) {
			return failure(usecase.PurchaseErrPaymentDeclined, domainerrors.ErrPaymentDeclined)
		}
		srv.log(ctx).Error("Purchase payment authorization failed",
			slog.Any("routeID", route.ID), slog.Any("error", err))

		return failure(usecase.PurchaseErrProcessing, domainerrors.ErrPurchaseProcessing)
	}

	// 6. Compute the split once; the stored fields are never recomputed.
	creatorEarnings, platformFee := entity.SplitAmount(route.Price, srv.feeRate)

	purchase := &entity.RoutePurchase{
		BuyerID:         buyerID,
		RouteID:         route.ID,
		AmountPaid:      route.Price,
		CreatorEarnings: creatorEarnings,
		PlatformFee:     platformFee,
		Status:          entity.PaymentStatusCompleted,
		TransactionID:   authorization.TransactionID,
	}

	// Record the purchase, bump the route counter and credit the creator
	// in one transaction.
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.NewPurchaseRepository().Create(ctx, purchase); err != nil {
			return err
		}
		if err := repoFactory.NewRouteRepository().IncrementPurchaseCount(ctx, route.ID); err != nil {
			return err
		}

		return repoFactory.NewUserRepository().AddCreatorEarnings(ctx, route.CreatorID, creatorEarnings)
	})
	if err != nil {
		// 7. A racing request won the unique index; the buyer owns the
		// route either way.
		if errors.Is(err, repository.ErrDuplicatePurchase) {
			return failure(usecase.PurchaseErrAlreadyPurchased, domainerrors.ErrAlreadyPurchased)
		}

		// 8. Anything else is infrastructure breakage. Logged, no retry.
		srv.log(ctx).Error("Purchase transaction failed",
			slog.Any("routeID", route.ID),
			slog.Any("buyerID", buyerID),
			slog.Any("error", err),
		)

		return failure(usecase.PurchaseErrProcessing, domainerrors.ErrPurchaseProcessing)
	}

	srv.log(ctx).Info("Route purchased",
		slog.Any("purchaseID", purchase.ID),
		slog.Any("routeID", route.ID),
		slog.Any("buyerID", buyerID),
		slog.Float64("amount", purchase.AmountPaid),
		slog.String("transactionID", purchase.TransactionID),
	)

	// 9. Fan-out is best-effort and must never fail the purchase.
	srv.publishPurchaseEvent(ctx, purchase, route)
	srv.notifyCreator(ctx, purchase, route)

	return &usecase.PurchaseResult{
		Success:       true,
		TransactionID: purchase.TransactionID,
	}
}

func (srv *purchaseService) publishPurchaseEvent(ctx context.Context, purchase *entity.RoutePurchase, route *entity.Route) {
	event := &service.PurchaseEvent{
		RequestID:       deliverycontext.GetRequestIDFromContext(ctx),
		PurchaseID:      purchase.ID.String(),
		RouteID:         route.ID.String(),
		BuyerID:         purchase.BuyerID.String(),
		CreatorID:       route.CreatorID.String(),
		AmountPaid:      purchase.AmountPaid,
		CreatorEarnings: purchase.CreatorEarnings,
		PlatformFee:     purchase.PlatformFee,
		TransactionID:   purchase.TransactionID,
	}

	if err := srv.publisher.PublishPurchaseEvent(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish purchase event",
			slog.Any("purchaseID", purchase.ID), slog.Any("error", err))
	}
}

func (srv *purchaseService) notifyCreator(ctx context.Context, purchase *entity.RoutePurchase, route *entity.Route) {
	// Push delivery is optional; without Firebase configured there is nothing to send.
	if srv.notifier == nil {
		return
	}

	devices, err := srv.deviceRepo.FindActiveByUser(ctx, route.CreatorID)
	if err != nil {
		srv.log(ctx).Warn("Failed to load creator devices for purchase push",
			slog.Any("creatorID", route.CreatorID), slog.Any("error", err))

		return
	}
	if len(devices) == 0 {
		return
	}

	tokens := make([]string, 0, len(devices))
	for _, device := range devices {
		tokens = append(tokens, device.FCMToken)
	}

	data := map[string]string{
		"type":     "route_purchased",
		"route_id": route.ID.String(),
	}

	_, _, invalidTokens, err := srv.notifier.SendBatchNotification(
		ctx, tokens, "路線售出", "您的路線「"+route.Title+"」剛剛售出一份", data)
	if err != nil {
		srv.log(ctx).Warn("Failed to push purchase notification",
			slog.Any("creatorID", route.CreatorID), slog.Any("error", err))

		return
	}

	if len(invalidTokens) > 0 {
		if err := srv.deviceRepo.Deactivate(ctx, invalidTokens); err != nil {
			srv.log(ctx).Warn("Failed to deactivate invalid device tokens", slog.Any("error", err))
		}
	}
}

// ListPurchases returns the buyer's completed purchases, newest first.
// This powers a non-critical history view, so failures degrade to an empty
// list instead of an error.
func (srv *purchaseService) ListPurchases(ctx context.Context, buyerID *uuid.UUID) []usecase.PurchaseSummary {
	if buyerID == nil {
		return []usecase.PurchaseSummary{}
	}

	purchases, err := srv.purchaseRepo.FindCompletedByBuyer(ctx, *buyerID)
	if err != nil {
		srv.log(ctx).Warn("Failed to list purchases, returning empty history",
			slog.Any("buyerID", *buyerID), slog.Any("error", err))

		return []usecase.PurchaseSummary{}
	}

	summaries := make([]usecase.PurchaseSummary, 0, len(purchases))
	for _, purchase := range purchases {
		summary := usecase.PurchaseSummary{
			RouteID:     purchase.RouteID,
			AmountPaid:  purchase.AmountPaid,
			PurchasedAt: purchase.PurchasedAt,
		}

		// Titles are decoration here; a missing route must not break history.
		if route, err := srv.routeRepo.FindByID(ctx, purchase.RouteID); err == nil {
			summary.RouteTitle = route.Title
		} else {
			srv.log(ctx).Warn("Failed to load route title for purchase history",
				slog.Any("routeID", purchase.RouteID), slog.Any("error", err))
		}

		summaries = append(summaries, summary)
	}

	return summaries
}
