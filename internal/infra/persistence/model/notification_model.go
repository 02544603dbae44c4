package model

import (
	"time"

	"github.com/google/uuid"
)

// NotificationModel mirrors the 'notifications' table.
// One row per (source_type, source_id, user_id) keeps fan-out re-drivable.
type NotificationModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID     uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_notifications_source,priority:3"`
	Type       string    `gorm:"type:varchar(20);not null"`
	Title      string    `gorm:"type:varchar(255)"`
	Message    string    `gorm:"type:text;not null"`
	IsRead     bool      `gorm:"not null;default:false"`
	SourceType string    `gorm:"type:varchar(30);not null;uniqueIndex:idx_notifications_source,priority:1"`
	SourceID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_notifications_source,priority:2"`
	CreatedAt  time.Time `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (NotificationModel) TableName() string {
	return "notifications"
}
