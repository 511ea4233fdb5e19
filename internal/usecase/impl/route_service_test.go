package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"kaelo/internal/domain/entity"
	domainerrors "kaelo/internal/domain/errors"
	mockRepo "kaelo/internal/mocks/repository"
	mockSvc "kaelo/internal/mocks/service"
	"kaelo/internal/usecase"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type routeFixtures struct {
	routeRepo    *mockRepo.MockRouteRepository
	waypointRepo *mockRepo.MockWaypointRepository
	purchaseRepo *mockRepo.MockPurchaseRepository
	qrService    *mockSvc.MockQRCodeService
	service      usecase.RouteUsecase
}

func createTestRouteService(t *testing.T) *routeFixtures {
	f := &routeFixtures{
		routeRepo:    mockRepo.NewMockRouteRepository(t),
		waypointRepo: mockRepo.NewMockWaypointRepository(t),
		purchaseRepo: mockRepo.NewMockPurchaseRepository(t),
		qrService:    mockSvc.NewMockQRCodeService(t),
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	access := NewAccessService(AccessServiceParams{
		RouteRepo:    f.routeRepo,
		PurchaseRepo: f.purchaseRepo,
		Logger:       logger,
	})

	f.service = NewRouteService(RouteServiceParams{
		RouteRepo:     f.routeRepo,
		WaypointRepo:  f.waypointRepo,
		AccessUsecase: access,
		QRService:     f.qrService,
		Logger:        logger,
	})

	return f
}

func testPath() orb.LineString {
	return orb.LineString{{121.55, 25.03}, {121.56, 25.04}, {121.57, 25.05}}
}

func TestRouteService_CreateRoute_Success(t *testing.T) {
	f := createTestRouteService(t)

	ctx := context.Background()
	creatorID := uuid.New()

	f.routeRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Route")).
		Run(func(ctx context.Context, route *entity.Route) {
			route.ID = uuid.New()
		}).
		Return(nil)

	route, err := f.service.CreateRoute(ctx, &usecase.CreateRouteInput{
		CreatorID:  creatorID,
		Title:      "瑞芳茶壺山",
		Path:       testPath(),
		DistanceKm: 5.2,
		Difficulty: "moderate",
		Price:      49.99,
	})

	require.NoError(t, err)
	assert.Equal(t, entity.RouteStatusDraft, route.Status)
	assert.Equal(t, creatorID, route.CreatorID)
	assert.Equal(t, testPath()[0], route.StartPoint)
	assert.Equal(t, testPath()[2], route.EndPoint)
}

func TestRouteService_CreateRoute_Validation(t *testing.T) {
	f := createTestRouteService(t)

	ctx := context.Background()

	_, err := f.service.CreateRoute(ctx, &usecase.CreateRouteInput{
		CreatorID: uuid.New(),
		Path:      orb.LineString{{121.55, 25.03}},
		Price:     49.99,
	})
	require.Error(t, err)

	_, err = f.service.CreateRoute(ctx, &usecase.CreateRouteInput{
		CreatorID: uuid.New(),
		Path:      testPath(),
		Price:     0,
		IsFree:    false,
	})
	require.Error(t, err)
}

func TestRouteService_UpdateRoute_OnlyOwnerAndDraft(t *testing.T) {
	f := createTestRouteService(t)

	ctx := context.Background()
	creatorID := uuid.New()
	route := &entity.Route{ID: uuid.New(), CreatorID: creatorID, Status: entity.RouteStatusPublished, Price: 10}

	f.routeRepo.EXPECT().FindByID(ctx, route.ID).Return(route, nil).Times(2)

	stranger := uuid.New()
	_, err := f.service.UpdateRoute(ctx, &usecase.UpdateRouteInput{
		RouteID: route.ID, CreatorID: stranger, Path: testPath(), Price: 10,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrRouteOwnershipViolation)

	_, err = f.service.UpdateRoute(ctx, &usecase.UpdateRouteInput{
		RouteID: route.ID, CreatorID: creatorID, Path: testPath(), Price: 10,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrRouteStatusTransition)
}

func TestRouteService_Lifecycle_Transitions(t *testing.T) {
	f := createTestRouteService(t)

	ctx := context.Background()
	creatorID := uuid.New()
	routeID := uuid.New()

	draft := &entity.Route{ID: routeID, CreatorID: creatorID, Status: entity.RouteStatusDraft, Price: 10}
	f.routeRepo.EXPECT().FindByID(ctx, routeID).Return(draft, nil).Once()
	f.routeRepo.EXPECT().UpdateStatus(ctx, routeID, entity.RouteStatusInReview).Return(nil).Once()
	require.NoError(t, f.service.SubmitForReview(ctx, routeID, creatorID))

	inReview := &entity.Route{ID: routeID, CreatorID: creatorID, Status: entity.RouteStatusInReview, Price: 10}
	f.routeRepo.EXPECT().FindByID(ctx, routeID).Return(inReview, nil).Once()
	f.routeRepo.EXPECT().UpdateStatus(ctx, routeID, entity.RouteStatusPublished).Return(nil).Once()
	require.NoError(t, f.service.Publish(ctx, routeID))

	published := &entity.Route{ID: routeID, CreatorID: creatorID, Status: entity.RouteStatusPublished, Price: 10}
	f.routeRepo.EXPECT().FindByID(ctx, routeID).Return(published, nil).Once()
	f.routeRepo.EXPECT().UpdateStatus(ctx, routeID, entity.RouteStatusArchived).Return(nil).Once()
	require.NoError(t, f.service.Archive(ctx, routeID, creatorID))
}

func TestRouteService_Lifecycle_IllegalTransition(t *testing.T) {
	f := createTestRouteService(t)

	ctx := context.Background()
	routeID := uuid.New()
	draft := &entity.Route{ID: routeID, CreatorID: uuid.New(), Status: entity.RouteStatusDraft, Price: 10}

	f.routeRepo.EXPECT().FindByID(ctx, routeID).Return(draft, nil)

	err := f.service.Publish(ctx, routeID)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrRouteStatusTransition)
}

func TestRouteService_GetRoute_FullAccessForOwner(t *testing.T) {
	f := createTestRouteService(t)

	ctx := context.Background()
	creatorID := uuid.New()
	route := &entity.Route{
		ID: uuid.New(), CreatorID: creatorID, Price: 49.99,
		Status: entity.RouteStatusPublished, Path: testPath(),
	}
	waypoints := []*entity.Waypoint{{ID: uuid.New(), RouteID: route.ID, OrderIndex: 0, Name: "登山口"}}

	// Loaded once for the read and once by the access check.
	f.routeRepo.EXPECT().FindByID(ctx, route.ID).Return(route, nil).Times(2)
	f.waypointRepo.EXPECT().FindByRoute(ctx, route.ID).Return(waypoints, nil)
	f.routeRepo.EXPECT().IncrementViewCount(ctx, route.ID).Return(nil)

	detail, err := f.service.GetRoute(ctx, route.ID, &creatorID)

	require.NoError(t, err)
	assert.True(t, detail.HasFullAccess)
	assert.NotEmpty(t, detail.Route.Path)
	assert.Len(t, detail.Waypoints, 1)
}

func TestRouteService_GetRoute_MetadataOnlyWithoutAccess(t *testing.T) {
	f := createTestRouteService(t)

	ctx := context.Background()
	viewerID := uuid.New()
	route := &entity.Route{
		ID: uuid.New(), CreatorID: uuid.New(), Price: 49.99,
		Status: entity.RouteStatusPublished, Path: testPath(),
	}

	f.routeRepo.EXPECT().FindByID(ctx, route.ID).Return(route, nil).Times(2)
	f.purchaseRepo.EXPECT().ExistsCompleted(ctx, viewerID, route.ID).Return(false, nil)

	detail, err := f.service.GetRoute(ctx, route.ID, &viewerID)

	require.NoError(t, err)
	assert.False(t, detail.HasFullAccess)
	assert.Empty(t, detail.Route.Path)
	assert.Empty(t, detail.Waypoints)
	assert.Equal(t, route.ID, detail.Route.ID)
}

func TestRouteService_AppendWaypoint_OwnerOnly(t *testing.T) {
	f := createTestRouteService(t)

	ctx := context.Background()
	creatorID := uuid.New()
	route := &entity.Route{ID: uuid.New(), CreatorID: creatorID, Status: entity.RouteStatusDraft, Price: 10}

	f.routeRepo.EXPECT().FindByID(ctx, route.ID).Return(route, nil).Times(2)
	f.waypointRepo.EXPECT().
		Append(ctx, mock.AnythingOfType("*entity.Waypoint")).
		Run(func(ctx context.Context, waypoint *entity.Waypoint) {
			waypoint.OrderIndex = 0
		}).
		Return(nil)

	waypoint, err := f.service.AppendWaypoint(ctx, &usecase.AppendWaypointInput{
		RouteID:   route.ID,
		CreatorID: creatorID,
		Name:      "觀景台",
		Location:  orb.Point{121.56, 25.04},
	})
	require.NoError(t, err)
	assert.Equal(t, route.ID, waypoint.RouteID)

	_, err = f.service.AppendWaypoint(ctx, &usecase.AppendWaypointInput{
		RouteID:   route.ID,
		CreatorID: uuid.New(),
		Name:      "觀景台",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrRouteOwnershipViolation)
}

func TestRouteService_GenerateShareQR_PublishedOnly(t *testing.T) {
	f := createTestRouteService(t)

	ctx := context.Background()
	published := &entity.Route{ID: uuid.New(), CreatorID: uuid.New(), Status: entity.RouteStatusPublished, Price: 10}
	draft := &entity.Route{ID: uuid.New(), CreatorID: uuid.New(), Status: entity.RouteStatusDraft, Price: 10}

	f.routeRepo.EXPECT().FindByID(ctx, published.ID).Return(published, nil)
	f.qrService.EXPECT().GenerateRouteShareQR(published.ID).Return([]byte{0x89, 0x50, 0x4E, 0x47}, nil)

	png, err := f.service.GenerateShareQR(ctx, published.ID)
	require.NoError(t, err)
	assert.NotEmpty(t, png)

	f.routeRepo.EXPECT().FindByID(ctx, draft.ID).Return(draft, nil)

	_, err = f.service.GenerateShareQR(ctx, draft.ID)
	require.Error(t, err)
}
