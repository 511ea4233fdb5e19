package handler

import (
	"log/slog"
	"net/http"

	"kaelo/internal/delivery/http/response"
	"kaelo/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// DeviceHandler holds dependencies for push device handlers.
type DeviceHandler struct {
	deviceUC usecase.DeviceUsecase
	logger   *slog.Logger
}

// NewDeviceHandler is the constructor for DeviceHandler, injected by Fx.
func NewDeviceHandler(deviceUC usecase.DeviceUsecase, logger *slog.Logger) *DeviceHandler {
	return &DeviceHandler{
		deviceUC: deviceUC,
		logger:   logger,
	}
}

type registerDeviceRequest struct {
	DeviceID string `json:"device_id" validate:"required"`
	FCMToken string `json:"fcm_token" validate:"required"`
	Platform string `json:"platform" validate:"required,oneof=ios android web"`
}

// RegisterDevice registers the caller's device or refreshes its FCM token.
func (h *DeviceHandler) RegisterDevice(c echo.Context) error {
	userID, err := requireUserID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	var req registerDeviceRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid device input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	device, err := h.deviceUC.RegisterDevice(c.Request().Context(), &usecase.RegisterDeviceInput{
		UserID:   userID,
		DeviceID: req.DeviceID,
		FCMToken: req.FCMToken,
		Platform: req.Platform,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, device, "Device registered successfully")
}
