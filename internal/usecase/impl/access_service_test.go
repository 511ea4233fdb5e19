package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"kaelo/internal/domain/entity"
	mockRepo "kaelo/internal/mocks/repository"
	"kaelo/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func newTestAccessService(t *testing.T) (usecase.AccessUsecase, *mockRepo.MockRouteRepository, *mockRepo.MockPurchaseRepository) {
	routeRepo := mockRepo.NewMockRouteRepository(t)
	purchaseRepo := mockRepo.NewMockPurchaseRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewAccessService(AccessServiceParams{
		RouteRepo:    routeRepo,
		PurchaseRepo: purchaseRepo,
		Logger:       logger,
	})

	return service, routeRepo, purchaseRepo
}

func TestAccessService_HasAccess_AnonymousDenied(t *testing.T) {
	service, _, _ := newTestAccessService(t)

	granted := service.HasAccess(context.Background(), uuid.New(), nil)

	assert.False(t, granted)
}

func TestAccessService_HasAccess_FreeRouteAllowed(t *testing.T) {
	service, routeRepo, _ := newTestAccessService(t)

	ctx := context.Background()
	routeID := uuid.New()
	viewerID := uuid.New()
	route := &entity.Route{ID: routeID, CreatorID: uuid.New(), IsFree: true, Status: entity.RouteStatusPublished}

	routeRepo.EXPECT().FindByID(ctx, routeID).Return(route, nil)

	granted := service.HasAccess(ctx, routeID, &viewerID)

	assert.True(t, granted)
}

func TestAccessService_HasAccess_CreatorAllowed(t *testing.T) {
	service, routeRepo, _ := newTestAccessService(t)

	ctx := context.Background()
	routeID := uuid.New()
	creatorID := uuid.New()
	route := &entity.Route{ID: routeID, CreatorID: creatorID, Price: 49.99, Status: entity.RouteStatusPublished}

	routeRepo.EXPECT().FindByID(ctx, routeID).Return(route, nil)

	granted := service.HasAccess(ctx, routeID, &creatorID)

	assert.True(t, granted)
}

func TestAccessService_HasAccess_PaidRouteRequiresPurchase(t *testing.T) {
	service, routeRepo, purchaseRepo := newTestAccessService(t)

	ctx := context.Background()
	routeID := uuid.New()
	viewerID := uuid.New()
	route := &entity.Route{ID: routeID, CreatorID: uuid.New(), Price: 49.99, Status: entity.RouteStatusPublished}

	routeRepo.EXPECT().FindByID(ctx, routeID).Return(route, nil).Times(2)
	purchaseRepo.EXPECT().ExistsCompleted(ctx, viewerID, routeID).Return(false, nil).Once()
	purchaseRepo.EXPECT().ExistsCompleted(ctx, viewerID, routeID).Return(true, nil).Once()

	assert.False(t, service.HasAccess(ctx, routeID, &viewerID))
	assert.True(t, service.HasAccess(ctx, routeID, &viewerID))
}

func TestAccessService_HasAccess_RouteLookupErrorDenies(t *testing.T) {
	service, routeRepo, _ := newTestAccessService(t)

	ctx := context.Background()
	routeID := uuid.New()
	viewerID := uuid.New()

	routeRepo.EXPECT().FindByID(ctx, routeID).Return(nil, errors.New("connection reset"))

	granted := service.HasAccess(ctx, routeID, &viewerID)

	assert.False(t, granted)
}

func TestAccessService_HasAccess_PurchaseLookupErrorDenies(t *testing.T) {
	service, routeRepo, purchaseRepo := newTestAccessService(t)

	ctx := context.Background()
	routeID := uuid.New()
	viewerID := uuid.New()
	route := &entity.Route{ID: routeID, CreatorID: uuid.New(), Price: 49.99, Status: entity.RouteStatusPublished}

	routeRepo.EXPECT().FindByID(ctx, routeID).Return(route, nil)
	purchaseRepo.EXPECT().ExistsCompleted(ctx, viewerID, routeID).Return(false, errors.New("connection reset"))

	granted := service.HasAccess(ctx, routeID, &viewerID)

	assert.False(t, granted)
}
