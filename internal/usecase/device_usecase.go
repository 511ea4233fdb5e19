package usecase

import (
	"context"

	"kaelo/internal/domain/entity"

	"github.com/google/uuid"
)

// RegisterDeviceInput defines the data required to register a device for push.
type RegisterDeviceInput struct {
	UserID   uuid.UUID
	DeviceID string
	FCMToken string
	Platform string
}

// DeviceUsecase defines the interface for push-notification device management.
type DeviceUsecase interface {
	// RegisterDevice registers the device or refreshes its FCM token.
	RegisterDevice(ctx context.Context, input *RegisterDeviceInput) (*entity.UserDevice, error)
}
