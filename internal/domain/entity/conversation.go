package entity

import (
	"time"

	"github.com/google/uuid"
)

// Conversation is a two-party channel. The pair is stored in canonical order
// so at most one conversation exists per unordered pair of users.
type Conversation struct {
	ID              uuid.UUID
	ParticipantLow  uuid.UUID
	ParticipantHigh uuid.UUID
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// CanonicalPair orders two user ids by their string form.
func CanonicalPair(a, b uuid.UUID) (low, high uuid.UUID) {
	if a.String() <= b.String() {
		return a, b
	}

	return b, a
}

// Counterpart returns the other participant, or uuid.Nil when userID is not one of them.
func (c *Conversation) Counterpart(userID uuid.UUID) uuid.UUID {
	switch userID {
	case c.ParticipantLow:
		return c.ParticipantHigh
	case c.ParticipantHigh:
		return c.ParticipantLow
	default:
		return uuid.Nil
	}
}

// HasParticipant reports whether userID belongs to the conversation.
func (c *Conversation) HasParticipant(userID uuid.UUID) bool {
	return userID == c.ParticipantLow || userID == c.ParticipantHigh
}

// Message belongs to exactly one conversation.
type Message struct {
	ID             uuid.UUID `json:"id"`
	ConversationID uuid.UUID `json:"conversation_id"`
	SenderID       uuid.UUID `json:"sender_id"`
	Text           string    `json:"text"`
	IsRead         bool      `json:"is_read"`
	CreatedAt      time.Time `json:"created_at"`
}

// ConversationSummary is one row of a user's conversation list.
type ConversationSummary struct {
	Conversation *Conversation
	Counterpart  *Identity
	LastMessage  *Message // nil when the conversation is empty
	UnreadCount  int64
}
