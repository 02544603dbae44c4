package impl

import (
	"context"
	"log/slog"

	deliverycontext "medlink/internal/delivery/context"
	"medlink/internal/domain/entity"
	"medlink/internal/domain/repository"
	"medlink/internal/domain/service"
	"medlink/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// pushBatchSize matches the FCM multicast limit.
const pushBatchSize = 500

type pushDeliveryService struct {
	deviceRepo repository.DeviceRepository
	pushSvc    service.PushService
	logger     *slog.Logger
}

// PushDeliveryServiceParams holds dependencies for the push delivery service, injected by Fx.
type PushDeliveryServiceParams struct {
	fx.In

	DeviceRepo repository.DeviceRepository
	PushSvc    service.PushService
	Logger     *slog.Logger
}

// NewPushDeliveryService creates the service the push worker runs for every event.
func NewPushDeliveryService(params PushDeliveryServiceParams) usecase.PushDeliveryUsecase {
	return &pushDeliveryService{
		deviceRepo: params.DeviceRepo,
		pushSvc:    params.PushSvc,
		logger:     params.Logger,
	}
}

func (s *pushDeliveryService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// Deliver sends the event to every active device of the recipient and removes
// devices whose tokens FCM reports as invalid. Only a failed device lookup is
// returned as an error; send failures are counted in the result.
func (s *pushDeliveryService) Deliver(ctx context.Context, event *entity.NotificationEvent) (*usecase.DeliveryResult, error) {
	if event == nil || event.UserID == uuid.Nil || event.NotificationID == uuid.Nil {
		return nil, errors.Wrap(usecase.ErrInvalidEvent, "event is missing notification or user id")
	}

	devices, err := s.deviceRepo.FindActiveDevicesByUser(ctx, event.UserID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find active devices")
	}

	result := &usecase.DeliveryResult{DeviceCount: len(devices)}
	if len(devices) == 0 {
		s.log(ctx).Info("[Worker] No devices registered for recipient",
			slog.String("notification_id", event.NotificationID.String()),
		)

		return result, nil
	}

	tokens := make([]string, 0, len(devices))
	for _, device := range devices {
		tokens = append(tokens, device.FCMToken)
	}

	title := event.Title
	if title == "" {
		title = "MedLink"
	}
	data := map[string]string{
		"notification_id": event.NotificationID.String(),
		"type":            string(event.Type),
	}

	var invalidTokens []string
	for idx := 0; idx < len(tokens); idx += pushBatchSize {
		end := min(idx+pushBatchSize, len(tokens))
		batch := tokens[idx:end]

		successCount, failureCount, batchInvalid, sendErr := s.pushSvc.SendBatchNotification(ctx, batch, title, event.Message, data)
		if sendErr != nil {
			s.log(ctx).Error("[Worker] Failed to send batch",
				slog.Int("batch_start", idx),
				slog.Int("batch_size", len(batch)),
				slog.Any("error", sendErr),
			)
			result.FailureCount += len(batch)

			continue
		}

		result.SuccessCount += successCount
		result.FailureCount += failureCount
		invalidTokens = append(invalidTokens, batchInvalid...)
	}

	if len(invalidTokens) > 0 {
		removed, err := s.deviceRepo.DeleteByFCMTokens(ctx, invalidTokens)
		if err != nil {
			s.log(ctx).Warn("[Worker] Failed to delete devices with invalid tokens",
				slog.Int("invalid_tokens", len(invalidTokens)),
				slog.Any("error", err),
			)
		}
		result.RemovedDevices = removed
	}

	s.log(ctx).Info("[Worker] Notification sending completed",
		slog.String("notification_id", event.NotificationID.String()),
		slog.Int("total_sent", result.SuccessCount),
		slog.Int("total_failed", result.FailureCount),
		slog.Int64("removed_devices", result.RemovedDevices),
	)

	return result, nil
}
