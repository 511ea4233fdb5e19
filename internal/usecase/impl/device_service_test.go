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
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestDeviceService(t *testing.T) (usecase.DeviceUsecase, *mockRepo.MockDeviceRepository) {
	deviceRepo := mockRepo.NewMockDeviceRepository(t)

	service := NewDeviceService(DeviceServiceParams{
		DeviceRepo: deviceRepo,
		Logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	return service, deviceRepo
}

func TestDeviceService_RegisterDevice_Success(t *testing.T) {
	service, deviceRepo := createTestDeviceService(t)

	ctx := context.Background()
	userID := uuid.New()

	deviceRepo.EXPECT().
		Upsert(ctx, mock.AnythingOfType("*entity.UserDevice")).
		Run(func(ctx context.Context, device *entity.UserDevice) {
			device.ID = uuid.New()
			device.IsActive = true
		}).
		Return(nil)

	device, err := service.RegisterDevice(ctx, &usecase.RegisterDeviceInput{
		UserID:   userID,
		DeviceID: "pixel-8a",
		FCMToken: "fcm-token-value",
		Platform: "android",
	})

	require.NoError(t, err)
	assert.Equal(t, userID, device.UserID)
	assert.Equal(t, "pixel-8a", device.DeviceID)
}

func TestDeviceService_RegisterDevice_RepositoryError(t *testing.T) {
	service, deviceRepo := createTestDeviceService(t)

	ctx := context.Background()

	deviceRepo.EXPECT().
		Upsert(ctx, mock.AnythingOfType("*entity.UserDevice")).
		Return(errors.New("connection reset"))

	device, err := service.RegisterDevice(ctx, &usecase.RegisterDeviceInput{
		UserID:   uuid.New(),
		DeviceID: "pixel-8a",
		FCMToken: "fcm-token-value",
		Platform: "android",
	})

	require.Error(t, err)
	assert.Nil(t, device)
}
