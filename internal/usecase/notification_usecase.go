package usecase

import (
	"context"

	"medlink/internal/domain/entity"

	"github.com/google/uuid"
)

// NotifyInput describes a notification produced by a primary write.
// SourceType and SourceID name that write so the notification can be re-driven safely.
type NotifyInput struct {
	RecipientID uuid.UUID
	Type        entity.NotificationType
	Title       string
	Message     string
	SourceType  string
	SourceID    uuid.UUID
}

// Notifier fans a primary write out to the recipient's notification feed.
type Notifier interface {
	// Notify stores the notification once per source event and publishes it for push delivery.
	Notify(ctx context.Context, input *NotifyInput) (*entity.Notification, error)
}

// NotificationUsecase defines the recipient-facing notification operations.
type NotificationUsecase interface {
	ListNotifications(ctx context.Context, userID uuid.UUID) ([]*entity.Notification, error)

	// UnreadCount adds unread notifications and unread incoming messages.
	UnreadCount(ctx context.Context, userID uuid.UUID) (int64, error)

	MarkAllRead(ctx context.Context, userID uuid.UUID) (int64, error)
}
