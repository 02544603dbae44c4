package model

import (
	"time"

	"github.com/google/uuid"
)

// ConversationModel mirrors the 'conversations' table.
// (participant_low, participant_high) is the canonical pair and is unique.
type ConversationModel struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	ParticipantLow  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_conversations_pair,priority:1"`
	ParticipantHigh uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_conversations_pair,priority:2"`
	CreatedAt       time.Time
	UpdatedAt       time.Time `gorm:"index"`

	Participants []ConversationParticipantModel `gorm:"foreignKey:ConversationID;constraint:OnDelete:CASCADE"`
	Messages     []MessageModel                 `gorm:"foreignKey:ConversationID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (ConversationModel) TableName() string {
	return "conversations"
}

// ConversationParticipantModel mirrors the 'conversation_participants' join table.
type ConversationParticipantModel struct {
	ConversationID uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID         uuid.UUID `gorm:"type:uuid;primaryKey;index"`
	CreatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (ConversationParticipantModel) TableName() string {
	return "conversation_participants"
}

// MessageModel mirrors the 'messages' table.
type MessageModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	ConversationID uuid.UUID `gorm:"type:uuid;not null;index:idx_messages_conversation_created,priority:1"`
	SenderID       uuid.UUID `gorm:"type:uuid;not null"`
	Text           string    `gorm:"type:text;not null"`
	IsRead         bool      `gorm:"not null;default:false"`
	CreatedAt      time.Time `gorm:"index:idx_messages_conversation_created,priority:2"`
}

// TableName explicitly sets the table name for GORM.
func (MessageModel) TableName() string {
	return "messages"
}
