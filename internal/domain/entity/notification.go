// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// NotificationType tags what produced a notification.
type NotificationType string

const (
	NotificationTypeMessage     NotificationType = "MESSAGE"
	NotificationTypeReminder    NotificationType = "REMINDER"
	NotificationTypeAppointment NotificationType = "APPOINTMENT"
)

// Notification is an in-app notice for a single recipient, created as a side
// effect of a message, appointment or reminder write.
// (SourceType, SourceID, UserID) identifies the event that produced it.
type Notification struct {
	ID         uuid.UUID        `json:"id"`
	UserID     uuid.UUID        `json:"user_id"` // Recipient.
	Type       NotificationType `json:"type"`
	Title      string           `json:"title,omitempty"`
	Message    string           `json:"message"`
	IsRead     bool             `json:"is_read"`
	SourceType string           `json:"source_type"`
	SourceID   uuid.UUID        `json:"source_id"`
	CreatedAt  time.Time        `json:"created_at"`
}

// NotificationEvent is published after a notification row exists so the push
// worker can deliver it to the recipient's devices.
type NotificationEvent struct {
	NotificationID uuid.UUID        `json:"notification_id"`
	UserID         uuid.UUID        `json:"user_id"`
	Type           NotificationType `json:"type"`
	Title          string           `json:"title"`
	Message        string           `json:"message"`
	CreatedAt      time.Time        `json:"created_at"`
	RequestID      string           `json:"request_id,omitempty"`
}
