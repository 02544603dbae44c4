package impl

import (
	"context"
	"log/slog"

	deliverycontext "medlink/internal/delivery/context"
	"medlink/internal/domain/constants"
	"medlink/internal/domain/entity"
	"medlink/internal/domain/repository"
	"medlink/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type notificationService struct {
	notificationRepo repository.NotificationRepository
	messageRepo      repository.MessageRepository
	logger           *slog.Logger
}

// NotificationServiceParams holds dependencies for NotificationService, injected by Fx.
type NotificationServiceParams struct {
	fx.In

	NotificationRepo repository.NotificationRepository
	MessageRepo      repository.MessageRepository
	Logger           *slog.Logger
}

// NewNotificationService creates a new notification service instance
func NewNotificationService(params NotificationServiceParams) usecase.NotificationUsecase {
	return &notificationService{
		notificationRepo: params.NotificationRepo,
		messageRepo:      params.MessageRepo,
		logger:           params.Logger,
	}
}

func (s *notificationService) ListNotifications(ctx context.Context, userID uuid.UUID) ([]*entity.Notification, error) {
	notifications, err := s.notificationRepo.ListByUser(ctx, userID, constants.NotificationListLimit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list notifications")
	}

	return notifications, nil
}

func (s *notificationService) UnreadCount(ctx context.Context, userID uuid.UUID) (int64, error) {
	unreadNotifications, err := s.notificationRepo.CountUnread(ctx, userID)
	if err != nil {
		return 0, errors.Wrap(err, "failed to count unread notifications")
	}

	unreadMessages, err := s.messageRepo.CountUnreadForUser(ctx, userID)
	if err != nil {
		return 0, errors.Wrap(err, "failed to count unread messages")
	}

	return unreadNotifications + unreadMessages, nil
}

func (s *notificationService) MarkAllRead(ctx context.Context, userID uuid.UUID) (int64, error) {
	updated, err := s.notificationRepo.MarkAllRead(ctx, userID)
	if err != nil {
		return 0, errors.Wrap(err, "failed to mark notifications read")
	}

	deliverycontext.GetLoggerOrDefault(ctx, s.logger).Debug("Notifications marked read",
		slog.String("user_id", userID.String()),
		slog.Int64("updated", updated),
	)

	return updated, nil
}
