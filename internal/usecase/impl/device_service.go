package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "medlink/internal/delivery/context"
	"medlink/internal/domain/entity"
	domainerrors "medlink/internal/domain/errors"
	"medlink/internal/domain/repository"
	"medlink/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type deviceService struct {
	deviceRepo repository.DeviceRepository
	now        func() time.Time
	logger     *slog.Logger
}

// DeviceServiceParams holds dependencies for DeviceService, injected by Fx.
type DeviceServiceParams struct {
	fx.In

	DeviceRepo repository.DeviceRepository
	Logger     *slog.Logger
}

// NewDeviceService creates a new device service instance
func NewDeviceService(params DeviceServiceParams) usecase.DeviceUsecase {
	return &deviceService{
		deviceRepo: params.DeviceRepo,
		now:        time.Now,
		logger:     params.Logger,
	}
}

func (s *deviceService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

func validateRegistration(registration *usecase.DeviceRegistration) (entity.DevicePlatform, error) {
	if strings.TrimSpace(registration.FCMToken) == "" {
		return "", domainerrors.ErrValidationFailed.WithDetails("fcm_token is required")
	}
	if strings.TrimSpace(registration.DeviceID) == "" {
		return "", domainerrors.ErrValidationFailed.WithDetails("device_id is required")
	}
	platform, ok := entity.ParseDevicePlatform(registration.Platform)
	if !ok {
		return "", domainerrors.ErrValidationFailed.WithDetails("platform must be one of ios, android, web")
	}

	return platform, nil
}

// RegisterDevice adds a push device for the caller, or rotates the token of one
// they registered before under the same client device ID.
func (s *deviceService) RegisterDevice(ctx context.Context, userID uuid.UUID, registration *usecase.DeviceRegistration) (*entity.UserDevice, error) {
	platform, err := validateRegistration(registration)
	if err != nil {
		return nil, err
	}

	existing, err := s.deviceRepo.FindByUserDeviceID(ctx, userID, registration.DeviceID)
	switch {
	case err == nil:
		if err := s.deviceRepo.UpdateFCMToken(ctx, existing.ID, registration.FCMToken); err != nil {
			return nil, errors.Wrap(err, "failed to rotate FCM token")
		}

		refreshed, err := s.deviceRepo.FindDeviceByID(ctx, existing.ID)
		if err != nil {
			return nil, errors.Wrap(err, "failed to reload device")
		}

		return refreshed, nil
	case !errors.Is(err, repository.ErrDeviceNotFound):
		return nil, errors.Wrap(err, "failed to look up device")
	}

	now := s.now().UTC()
	device := &entity.UserDevice{
		ID:        uuid.Must(uuid.NewV7()),
		UserID:    userID,
		FCMToken:  registration.FCMToken,
		DeviceID:  registration.DeviceID,
		Platform:  string(platform),
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.deviceRepo.CreateDevice(ctx, device); err != nil {
		return nil, errors.Wrap(err, "failed to create device")
	}

	s.log(ctx).Info("Device registered",
		slog.String("user_id", userID.String()),
		slog.String("platform", device.Platform),
	)

	return device, nil
}

// UpdateFCMToken replaces the token of a device owned by the user
func (s *deviceService) UpdateFCMToken(ctx context.Context, userID uuid.UUID, deviceID uuid.UUID, fcmToken string) error {
	if strings.TrimSpace(fcmToken) == "" {
		return domainerrors.ErrValidationFailed.WithDetails("fcm_token is required")
	}

	if _, err := s.findOwnedDevice(ctx, userID, deviceID); err != nil {
		return err
	}

	if err := s.deviceRepo.UpdateFCMToken(ctx, deviceID, fcmToken); err != nil {
		return errors.Wrap(err, "failed to update FCM token")
	}

	return nil
}

// GetUserDevices retrieves all active devices for a user
func (s *deviceService) GetUserDevices(ctx context.Context, userID uuid.UUID) ([]*entity.UserDevice, error) {
	devices, err := s.deviceRepo.FindActiveDevicesByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find active devices by user")
	}

	return devices, nil
}

// DeactivateDevice removes a device owned by the user
func (s *deviceService) DeactivateDevice(ctx context.Context, userID, deviceID uuid.UUID) error {
	if _, err := s.findOwnedDevice(ctx, userID, deviceID); err != nil {
		return err
	}

	if err := s.deviceRepo.DeleteDevice(ctx, deviceID); err != nil {
		if errors.Is(err, repository.ErrDeviceNotFound) {
			return domainerrors.ErrDeviceNotFound
		}

		return errors.Wrap(err, "failed to delete device")
	}

	return nil
}

func (s *deviceService) findOwnedDevice(ctx context.Context, userID, deviceID uuid.UUID) (*entity.UserDevice, error) {
	device, err := s.deviceRepo.FindDeviceByID(ctx, deviceID)
	if err != nil {
		if errors.Is(err, repository.ErrDeviceNotFound) {
			return nil, domainerrors.ErrDeviceNotFound
		}

		return nil, errors.Wrap(err, "failed to find device by ID")
	}

	if !device.OwnedBy(userID) {
		return nil, domainerrors.ErrDeviceOwnershipViolation
	}

	return device, nil
}
