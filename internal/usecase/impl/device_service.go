package impl

import (
	"context"
	"log/slog"

	deliverycontext "kaelo/internal/delivery/context"
	"kaelo/internal/domain/entity"
	"kaelo/internal/domain/repository"
	"kaelo/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// deviceService implements the DeviceUsecase interface.
type deviceService struct {
	deviceRepo repository.DeviceRepository
	logger     *slog.Logger
}

// DeviceServiceParams holds dependencies for DeviceService, injected by Fx.
type DeviceServiceParams struct {
	fx.In

	DeviceRepo repository.DeviceRepository
	Logger     *slog.Logger
}

// NewDeviceService is the constructor for deviceService.
func NewDeviceService(params DeviceServiceParams) usecase.DeviceUsecase {
	return &deviceService{
		deviceRepo: params.DeviceRepo,
		logger:     params.Logger,
	}
}

// RegisterDevice registers the device or refreshes its FCM token.
func (srv *deviceService) RegisterDevice(ctx context.Context, input *usecase.RegisterDeviceInput) (*entity.UserDevice, error) {
	device := &entity.UserDevice{
		UserID:   input.UserID,
		DeviceID: input.DeviceID,
		FCMToken: input.FCMToken,
		Platform: input.Platform,
	}

	if err := srv.deviceRepo.Upsert(ctx, device); err != nil {
		return nil, errors.Wrap(err, "failed to register device")
	}

	deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Debug("Device registered",
		slog.Any("userID", input.UserID),
		slog.String("platform", input.Platform),
	)

	return device, nil
}
