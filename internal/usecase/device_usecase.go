package usecase

import (
	"context"

	"medlink/internal/domain/entity"

	"github.com/google/uuid"
)

// DeviceRegistration is what a signed-in client reports so notification pushes can reach it.
type DeviceRegistration struct {
	FCMToken string
	DeviceID string // client-chosen, stable across app restarts
	Platform string // ios, android or web, any case
}

// DeviceUsecase manages the push devices of the calling patient or doctor.
// Every operation is scoped to userID; touching another account's device
// fails with DEVICE_OWNERSHIP_VIOLATION.
type DeviceUsecase interface {
	// RegisterDevice adds the device, or rotates the token when DeviceID is already known for the user.
	RegisterDevice(ctx context.Context, userID uuid.UUID, registration *DeviceRegistration) (*entity.UserDevice, error)

	UpdateFCMToken(ctx context.Context, userID uuid.UUID, deviceID uuid.UUID, fcmToken string) error

	// GetUserDevices lists the devices that currently receive pushes.
	GetUserDevices(ctx context.Context, userID uuid.UUID) ([]*entity.UserDevice, error)

	// DeactivateDevice signs a device out of pushes.
	DeactivateDevice(ctx context.Context, userID, deviceID uuid.UUID) error
}
