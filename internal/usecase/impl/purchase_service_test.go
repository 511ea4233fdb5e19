package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"kaelo/internal/domain/entity"
	"kaelo/internal/domain/repository"
	"kaelo/internal/domain/service"
	mockRepo "kaelo/internal/mocks/repository"
	mockSvc "kaelo/internal/mocks/service"
	"kaelo/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type purchaseFixtures struct {
	txManager    *mockRepo.MockTransactionManager
	routeRepo    *mockRepo.MockRouteRepository
	purchaseRepo *mockRepo.MockPurchaseRepository
	deviceRepo   *mockRepo.MockDeviceRepository
	gateway      *mockSvc.MockPaymentGateway
	publisher    *mockSvc.MockEventPublisher
	notifier     *mockSvc.MockNotificationService
	service      usecase.PurchaseUsecase
}

func createTestPurchaseService(t *testing.T) *purchaseFixtures {
	f := &purchaseFixtures{
		txManager:    mockRepo.NewMockTransactionManager(t),
		routeRepo:    mockRepo.NewMockRouteRepository(t),
		purchaseRepo: mockRepo.NewMockPurchaseRepository(t),
		deviceRepo:   mockRepo.NewMockDeviceRepository(t),
		gateway:      mockSvc.NewMockPaymentGateway(t),
		publisher:    mockSvc.NewMockEventPublisher(t),
		notifier:     mockSvc.NewMockNotificationService(t),
	}

	f.service = NewPurchaseService(PurchaseServiceParams{
		TxManager:    f.txManager,
		RouteRepo:    f.routeRepo,
		PurchaseRepo: f.purchaseRepo,
		DeviceRepo:   f.deviceRepo,
		Gateway:      f.gateway,
		Publisher:    f.publisher,
		Notifier:     f.notifier,
		Logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	return f
}

func publishedRoute(creatorID uuid.UUID, price float64) *entity.Route {
	return &entity.Route{
		ID:        uuid.New(),
		CreatorID: creatorID,
		Title:     "稜線縱走",
		Price:     price,
		Status:    entity.RouteStatusPublished,
	}
}

func TestPurchaseService_Purchase_Success(t *testing.T) {
	f := createTestPurchaseService(t)

	ctx := context.Background()
	buyerID := uuid.New()
	creatorID := uuid.New()
	route := publishedRoute(creatorID, 100.0)

	f.routeRepo.EXPECT().FindByID(ctx, route.ID).Return(route, nil)
	f.purchaseRepo.EXPECT().ExistsCompleted(ctx, buyerID, route.ID).Return(false, nil)
	f.gateway.EXPECT().
		Authorize(ctx, 100.0, mock.AnythingOfType("service.PaymentInstrument")).
		Return(&service.Authorization{TransactionID: "TXN-1724400000000-0042"}, nil)

	var recorded *entity.RoutePurchase
	f.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockPurchaseRepo := mockRepo.NewMockPurchaseRepository(t)
			mockRouteRepo := mockRepo.NewMockRouteRepository(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().NewPurchaseRepository().Return(mockPurchaseRepo)
			mockFactory.EXPECT().NewRouteRepository().Return(mockRouteRepo)
			mockFactory.EXPECT().NewUserRepository().Return(mockUserRepo)

			mockPurchaseRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.RoutePurchase")).
				Run(func(ctx context.Context, purchase *entity.RoutePurchase) {
					recorded = purchase
				}).
				Return(nil)
			mockRouteRepo.EXPECT().IncrementPurchaseCount(ctx, route.ID).Return(nil)
			mockUserRepo.EXPECT().AddCreatorEarnings(ctx, creatorID, 90.0).Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	f.publisher.EXPECT().
		PublishPurchaseEvent(ctx, mock.AnythingOfType("*service.PurchaseEvent")).
		Return(nil)
	f.deviceRepo.EXPECT().FindActiveByUser(ctx, creatorID).Return(nil, nil)

	result := f.service.Purchase(ctx, &usecase.PurchaseInput{
		BuyerID: &buyerID,
		RouteID: route.ID,
		Amount:  100.0,
	})

	require.NotNil(t, result)
	assert.True(t, result.Success)
	assert.Equal(t, "TXN-1724400000000-0042", result.TransactionID)
	assert.Empty(t, result.ErrorCode)

	require.NotNil(t, recorded)
	assert.Equal(t, buyerID, recorded.BuyerID)
	assert.Equal(t, route.ID, recorded.RouteID)
	assert.InDelta(t, 100.0, recorded.AmountPaid, 1e-9)
	assert.InDelta(t, 90.0, recorded.CreatorEarnings, 1e-9)
	assert.InDelta(t, 10.0, recorded.PlatformFee, 1e-9)
	assert.InDelta(t, recorded.AmountPaid, recorded.CreatorEarnings+recorded.PlatformFee, 1e-9)
	assert.Equal(t, entity.PaymentStatusCompleted, recorded.Status)
}

func TestPurchaseService_Purchase_Unauthenticated(t *testing.T) {
	f := createTestPurchaseService(t)

	result := f.service.Purchase(context.Background(), &usecase.PurchaseInput{
		BuyerID: nil,
		RouteID: uuid.New(),
		Amount:  100.0,
	})

	require.NotNil(t, result)
	assert.False(t, result.Success)
	assert.Equal(t, usecase.PurchaseErrNotAuthenticated, result.ErrorCode)
}

func TestPurchaseService_Purchase_RouteNotFound(t *testing.T) {
	f := createTestPurchaseService(t)

	ctx := context.Background()
	buyerID := uuid.New()
	routeID := uuid.New()

	f.routeRepo.EXPECT().FindByID(ctx, routeID).Return(nil, repository.ErrRouteNotFound)

	result := f.service.Purchase(ctx, &usecase.PurchaseInput{
		BuyerID: &buyerID,
		RouteID: routeID,
		Amount:  100.0,
	})

	assert.False(t, result.Success)
	assert.Equal(t, usecase.PurchaseErrRouteNotFound, result.ErrorCode)
}

func TestPurchaseService_Purchase_NotPurchasable(t *testing.T) {
	buyerID := uuid.New()

	tests := []struct {
		name  string
		route *entity.Route
	}{
		{
			name:  "free route",
			route: &entity.Route{ID: uuid.New(), CreatorID: uuid.New(), IsFree: true, Status: entity.RouteStatusPublished},
		},
		{
			name:  "own route",
			route: &entity.Route{ID: uuid.New(), CreatorID: buyerID, Price: 100.0, Status: entity.RouteStatusPublished},
		},
		{
			name:  "draft route",
			route: &entity.Route{ID: uuid.New(), CreatorID: uuid.New(), Price: 100.0, Status: entity.RouteStatusDraft},
		},
		{
			name:  "archived route",
			route: &entity.Route{ID: uuid.New(), CreatorID: uuid.New(), Price: 100.0, Status: entity.RouteStatusArchived},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := createTestPurchaseService(t)
			ctx := context.Background()

			f.routeRepo.EXPECT().FindByID(ctx, tt.route.ID).Return(tt.route, nil)

			result := f.service.Purchase(ctx, &usecase.PurchaseInput{
				BuyerID: &buyerID,
				RouteID: tt.route.ID,
				Amount:  100.0,
			})

			assert.False(t, result.Success)
			assert.Equal(t, usecase.PurchaseErrNotPurchasable, result.ErrorCode)
		})
	}
}

func TestPurchaseService_Purchase_AmountMismatch(t *testing.T) {
	f := createTestPurchaseService(t)

	ctx := context.Background()
	buyerID := uuid.New()
	route := publishedRoute(uuid.New(), 100.0)

	f.routeRepo.EXPECT().FindByID(ctx, route.ID).Return(route, nil)

	// Stale client price. No charge is attempted.
	result := f.service.Purchase(ctx, &usecase.PurchaseInput{
		BuyerID: &buyerID,
		RouteID: route.ID,
		Amount:  89.99,
	})

	assert.False(t, result.Success)
	assert.Equal(t, usecase.PurchaseErrAmountMismatch, result.ErrorCode)
}

func TestPurchaseService_Purchase_AlreadyOwned(t *testing.T) {
	f := createTestPurchaseService(t)

	ctx := context.Background()
	buyerID := uuid.New()
	route := publishedRoute(uuid.New(), 100.0)

	f.routeRepo.EXPECT().FindByID(ctx, route.ID).Return(route, nil)
	f.purchaseRepo.EXPECT().ExistsCompleted(ctx, buyerID, route.ID).Return(true, nil)

	result := f.service.Purchase(ctx, &usecase.PurchaseInput{
		BuyerID: &buyerID,
		RouteID: route.ID,
		Amount:  100.0,
	})

	assert.False(t, result.Success)
	assert.Equal(t, usecase.PurchaseErrAlreadyPurchased, result.ErrorCode)
}

func TestPurchaseService_Purchase_DuplicateLosesRace(t *testing.T) {
	f := createTestPurchaseService(t)

	ctx := context.Background()
	buyerID := uuid.New()
	route := publishedRoute(uuid.New(), 100.0)

	f.routeRepo.EXPECT().FindByID(ctx, route.ID).Return(route, nil)
	f.purchaseRepo.EXPECT().ExistsCompleted(ctx, buyerID, route.ID).Return(false, nil)
	f.gateway.EXPECT().
		Authorize(ctx, 100.0, mock.AnythingOfType("service.PaymentInstrument")).
		Return(&service.Authorization{TransactionID: "TXN-1724400000000-0001"}, nil)

	// A concurrent request inserted its completed row first; the unique
	// index rejects this one.
	f.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Return(repository.ErrDuplicatePurchase)

	result := f.service.Purchase(ctx, &usecase.PurchaseInput{
		BuyerID: &buyerID,
		RouteID: route.ID,
		Amount:  100.0,
	})

	assert.False(t, result.Success)
	assert.Equal(t, usecase.PurchaseErrAlreadyPurchased, result.ErrorCode)
}

func TestPurchaseService_Purchase_PaymentDeclined(t *testing.T) {
	f := createTestPurchaseService(t)

	ctx := context.Background()
	buyerID := uuid.New()
	route := publishedRoute(uuid.New(), 100.0)

	f.routeRepo.EXPECT().FindByID(ctx, route.ID).Return(route, nil)
	f.purchaseRepo.EXPECT().ExistsCompleted(ctx, buyerID, route.ID).Return(false, nil)
	f.gateway.EXPECT().
		Authorize(ctx, 100.0, mock.AnythingOfType("service.PaymentInstrument")).
		Return(nil, service.ErrPaymentDeclined)

	result := f.service.Purchase(ctx, &usecase.PurchaseInput{
		BuyerID: &buyerID,
		RouteID: route.ID,
		Amount:  100.0,
	})

	assert.False(t, result.Success)
	assert.Equal(t, usecase.PurchaseErrPaymentDeclined, result.ErrorCode)
}

func TestPurchaseService_Purchase_TransactionFailure(t *testing.T) {
	f := createTestPurchaseService(t)

	ctx := context.Background()
	buyerID := uuid.New()
	route := publishedRoute(uuid.New(), 100.0)

	f.routeRepo.EXPECT().FindByID(ctx, route.ID).Return(route, nil)
	f.purchaseRepo.EXPECT().ExistsCompleted(ctx, buyerID, route.ID).Return(false, nil)
	f.gateway.EXPECT().
		Authorize(ctx, 100.0, mock.AnythingOfType("service.PaymentInstrument")).
		Return(&service.Authorization{TransactionID: "TXN-1724400000000-0002"}, nil)
	f.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Return(errors.New("connection reset"))

	result := f.service.Purchase(ctx, &usecase.PurchaseInput{
		BuyerID: &buyerID,
		RouteID: route.ID,
		Amount:  100.0,
	})

	assert.False(t, result.Success)
	assert.Equal(t, usecase.PurchaseErrProcessing, result.ErrorCode)
}

func TestPurchaseService_ListPurchases_Anonymous(t *testing.T) {
	f := createTestPurchaseService(t)

	summaries := f.service.ListPurchases(context.Background(), nil)

	assert.NotNil(t, summaries)
	assert.Empty(t, summaries)
}

func TestPurchaseService_ListPurchases_Success(t *testing.T) {
	f := createTestPurchaseService(t)

	ctx := context.Background()
	buyerID := uuid.New()
	route := publishedRoute(uuid.New(), 100.0)
	purchases := []*entity.RoutePurchase{
		{
			ID:          uuid.New(),
			BuyerID:     buyerID,
			RouteID:     route.ID,
			AmountPaid:  100.0,
			Status:      entity.PaymentStatusCompleted,
			PurchasedAt: time.Now(),
		},
	}

	f.purchaseRepo.EXPECT().FindCompletedByBuyer(ctx, buyerID).Return(purchases, nil)
	f.routeRepo.EXPECT().FindByID(ctx, route.ID).Return(route, nil)

	summaries := f.service.ListPurchases(ctx, &buyerID)

	require.Len(t, summaries, 1)
	assert.Equal(t, route.ID, summaries[0].RouteID)
	assert.Equal(t, route.Title, summaries[0].RouteTitle)
	assert.InDelta(t, 100.0, summaries[0].AmountPaid, 1e-9)
}

func TestPurchaseService_ListPurchases_RepositoryErrorReturnsEmpty(t *testing.T) {
	f := createTestPurchaseService(t)

	ctx := context.Background()
	buyerID := uuid.New()

	f.purchaseRepo.EXPECT().FindCompletedByBuyer(ctx, buyerID).Return(nil, errors.New("connection reset"))

	summaries := f.service.ListPurchases(ctx, &buyerID)

	assert.NotNil(t, summaries)
	assert.Empty(t, summaries)
}
