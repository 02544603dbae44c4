package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "medlink/internal/delivery/context"
	"medlink/internal/domain/entity"
	"medlink/internal/domain/repository"
	"medlink/internal/domain/service"
	"medlink/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type notifierService struct {
	notificationRepo repository.NotificationRepository
	publisher        service.EventPublisher
	now              func() time.Time
	logger           *slog.Logger
}

// NotifierParams holds dependencies for the Notifier, injected by Fx.
type NotifierParams struct {
	fx.In

	NotificationRepo repository.NotificationRepository
	Publisher        service.EventPublisher
	Logger           *slog.Logger
}

// NewNotifier creates the fan-out service used after messages, appointments and reminders are written.
func NewNotifier(params NotifierParams) usecase.Notifier {
	return &notifierService{
		notificationRepo: params.NotificationRepo,
		publisher:        params.Publisher,
		now:              time.Now,
		logger:           params.Logger,
	}
}

func (s *notifierService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// Notify inserts the notification unless one already exists for the same source
// event and recipient, in which case the stored row is returned and nothing is
// published. Publishing is best effort.
func (s *notifierService) Notify(ctx context.Context, input *usecase.NotifyInput) (*entity.Notification, error) {
	notification := &entity.Notification{
		ID:         uuid.Must(uuid.NewV7()),
		UserID:     input.RecipientID,
		Type:       input.Type,
		Title:      input.Title,
		Message:    input.Message,
		SourceType: input.SourceType,
		SourceID:   input.SourceID,
		CreatedAt:  s.now().UTC(),
	}

	created, err := s.notificationRepo.Create(ctx, notification)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create notification")
	}

	if !created {
		existing, err := s.notificationRepo.FindBySource(ctx, input.SourceType, input.SourceID, input.RecipientID)
		if err != nil {
			return nil, errors.Wrap(err, "failed to load existing notification")
		}

		s.log(ctx).Debug("Notification already recorded for source",
			slog.String("source_type", input.SourceType),
			slog.String("source_id", input.SourceID.String()),
		)

		return existing, nil
	}

	event := &entity.NotificationEvent{
		NotificationID: notification.ID,
		UserID:         notification.UserID,
		Type:           notification.Type,
		Title:          notification.Title,
		Message:        notification.Message,
		CreatedAt:      notification.CreatedAt,
		RequestID:      deliverycontext.GetRequestIDFromContext(ctx),
	}
	if err := s.publisher.PublishNotificationEvent(ctx, event); err != nil {
		s.log(ctx).Warn("Failed to publish notification event",
			slog.String("notification_id", notification.ID.String()),
			slog.Any("error", err),
		)
	}

	return notification, nil
}
