package service

import (
	"context"

	"medlink/internal/domain/entity"
)

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishNotificationEvent publishes a notification event for async delivery to devices
	PublishNotificationEvent(ctx context.Context, event *entity.NotificationEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
