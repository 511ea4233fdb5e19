// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"kaelo/internal/domain/entity"
	"kaelo/internal/errors"

	"github.com/google/uuid"
)

// ErrDeviceNotFound is returned when a device record is not found.
var ErrDeviceNotFound = errors.New("device not found")

// DeviceRepository defines the operations for push-notification device persistence.
type DeviceRepository interface {
	// Upsert registers a device or refreshes the FCM token of an existing
	// one, keyed by (user_id, device_id).
	Upsert(ctx context.Context, device *entity.UserDevice) error

	// FindActiveByUser retrieves all active devices for a specific user.
	FindActiveByUser(ctx context.Context, userID uuid.UUID) ([]*entity.UserDevice, error)

	// Deactivate marks devices with the given FCM tokens inactive, e.g.
	// after the push provider reports them invalid.
	Deactivate(ctx context.Context, fcmTokens []string) error
}
