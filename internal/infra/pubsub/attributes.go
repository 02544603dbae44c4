package pubsub

import (
	"medlink/internal/domain/entity"
)

// eventAttributes builds the message attributes used for filtering and tracing.
func eventAttributes(event *entity.NotificationEvent) map[string]string {
	attributes := map[string]string{
		"notification_id": event.NotificationID.String(),
		"user_id":         event.UserID.String(),
		"type":            string(event.Type),
	}
	if event.RequestID != "" {
		attributes["request_id"] = event.RequestID
	}

	return attributes
}
