package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"kaelo/internal/domain/entity"
	domainerrors "kaelo/internal/domain/errors"
	mockRepo "kaelo/internal/mocks/repository"
	"kaelo/internal/usecase"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestBusinessService(t *testing.T) (usecase.BusinessUsecase, *mockRepo.MockBusinessRepository, *mockRepo.MockUserRepository) {
	businessRepo := mockRepo.NewMockBusinessRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)

	service := NewBusinessService(BusinessServiceParams{
		BusinessRepo: businessRepo,
		UserRepo:     userRepo,
		Logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	return service, businessRepo, userRepo
}

func TestBusinessService_CreateBusiness_Success(t *testing.T) {
	service, businessRepo, userRepo := createTestBusinessService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	owner := &entity.User{
		ID:                   ownerID,
		BusinessOwnerProfile: &entity.BusinessOwnerProfile{UserID: ownerID, CompanyName: "山腳小舖"},
	}

	userRepo.EXPECT().FindByID(ctx, ownerID).Return(owner, nil)
	businessRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Business")).
		Run(func(ctx context.Context, business *entity.Business) {
			business.ID = uuid.New()
		}).
		Return(nil)

	business, err := service.CreateBusiness(ctx, &usecase.CreateBusinessInput{
		OwnerID:  ownerID,
		Name:     "山腳小舖",
		Category: "restaurant",
		Location: orb.Point{121.56, 25.04},
	})

	require.NoError(t, err)
	assert.True(t, business.IsActive)
	assert.Equal(t, ownerID, business.OwnerID)
}

func TestBusinessService_CreateBusiness_RequiresOwnerRole(t *testing.T) {
	service, _, userRepo := createTestBusinessService(t)

	ctx := context.Background()
	userID := uuid.New()
	plainUser := &entity.User{ID: userID}

	userRepo.EXPECT().FindByID(ctx, userID).Return(plainUser, nil)

	business, err := service.CreateBusiness(ctx, &usecase.CreateBusinessInput{OwnerID: userID, Name: "山腳小舖"})

	require.Error(t, err)
	assert.Nil(t, business)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestBusinessService_FindNearby_Defaults(t *testing.T) {
	service, businessRepo, _ := createTestBusinessService(t)

	ctx := context.Background()
	results := []*entity.Business{{ID: uuid.New(), Name: "山腳小舖", IsActive: true}}

	businessRepo.EXPECT().
		FindNearby(ctx, 25.04, 121.56, float64(defaultNearbyRadiusMeters)).
		Return(results, nil)

	businesses, err := service.FindNearby(ctx, &usecase.NearbyBusinessInput{Lat: 25.04, Lon: 121.56})

	require.NoError(t, err)
	assert.Len(t, businesses, 1)
}

func TestBusinessService_FindNearby_RejectsBadCoordinates(t *testing.T) {
	service, _, _ := createTestBusinessService(t)

	_, err := service.FindNearby(context.Background(), &usecase.NearbyBusinessInput{Lat: 91, Lon: 0})
	require.Error(t, err)

	_, err = service.FindNearby(context.Background(), &usecase.NearbyBusinessInput{Lat: 0, Lon: -181})
	require.Error(t, err)
}
