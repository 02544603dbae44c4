// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"medlink/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for device persistence.
var (
	// ErrDeviceNotFound is returned when a device is not found.
	ErrDeviceNotFound = errors.New("device not found")
	// ErrDuplicateDevice is returned when trying to create a device that already exists.
	ErrDuplicateDevice = errors.New("device already exists")
)

// DeviceRepository stores the push devices of patients and doctors.
type DeviceRepository interface {
	// CreateDevice persists a new device for a user.
	CreateDevice(ctx context.Context, device *entity.UserDevice) error

	// FindDeviceByID retrieves a device by its unique ID.
	FindDeviceByID(ctx context.Context, id uuid.UUID) (*entity.UserDevice, error)

	// FindByUserDeviceID looks a device up by its owner and the client's own device identifier,
	// active or not. Returns ErrDeviceNotFound when the user never registered it.
	FindByUserDeviceID(ctx context.Context, userID uuid.UUID, clientDeviceID string) (*entity.UserDevice, error)

	// FindActiveDevicesByUser retrieves all active devices for a specific user.
	FindActiveDevicesByUser(ctx context.Context, userID uuid.UUID) ([]*entity.UserDevice, error)

	// UpdateFCMToken updates the FCM token for a specific device and reactivates it.
	UpdateFCMToken(ctx context.Context, deviceID uuid.UUID, fcmToken string) error

	// DeleteDevice removes a device by its ID.
	DeleteDevice(ctx context.Context, id uuid.UUID) error

	// DeleteByFCMTokens removes every device holding one of the tokens. The push worker
	// calls it with the tokens FCM reported unregistered.
	DeleteByFCMTokens(ctx context.Context, fcmTokens []string) (int64, error)
}
