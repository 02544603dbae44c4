// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"medlink/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrNotificationNotFound is returned when a notification is not found.
var ErrNotificationNotFound = errors.New("notification not found")

// NotificationRepository defines the interface for notification-related database operations.
type NotificationRepository interface {
	// Create persists a notification unless one already exists for the same
	// (source_type, source_id, user_id). It reports whether a row was inserted.
	Create(ctx context.Context, notification *entity.Notification) (bool, error)

	// FindBySource loads the notification produced by an event for a recipient.
	FindBySource(ctx context.Context, sourceType string, sourceID, userID uuid.UUID) (*entity.Notification, error)

	// ListByUser returns the newest notifications of a user.
	ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.Notification, error)

	// CountUnread counts unread notifications of a user.
	CountUnread(ctx context.Context, userID uuid.UUID) (int64, error)

	// MarkAllRead flags every notification of a user as read.
	MarkAllRead(ctx context.Context, userID uuid.UUID) (int64, error)
}
