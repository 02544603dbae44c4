package repository

import (
	"context"
	"errors"
	"time"

	"medlink/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for messaging persistence.
var (
	// ErrConversationNotFound is returned when a conversation is not found.
	ErrConversationNotFound = errors.New("conversation not found")
	// ErrMessageNotFound is returned when a conversation has no matching message.
	ErrMessageNotFound = errors.New("message not found")
)

// ConversationRepository persists two-party conversations and their participant rows.
type ConversationRepository interface {
	// CreateIfAbsent inserts the conversation unless one already exists for its
	// canonical pair. It reports whether a row was inserted.
	CreateIfAbsent(ctx context.Context, conversation *entity.Conversation) (bool, error)

	// FindByPair loads the conversation of a canonical pair.
	FindByPair(ctx context.Context, low, high uuid.UUID) (*entity.Conversation, error)

	// AddParticipants links users to a conversation, ignoring links that already exist.
	AddParticipants(ctx context.Context, conversationID uuid.UUID, userIDs ...uuid.UUID) error

	// FindByID retrieves a conversation by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Conversation, error)

	// IsParticipant reports whether the user is linked to the conversation.
	IsParticipant(ctx context.Context, conversationID, userID uuid.UUID) (bool, error)

	// ListByUser returns the user's conversations, most recently updated first.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Conversation, error)

	// Touch sets updated_at of the conversation.
	Touch(ctx context.Context, id uuid.UUID, at time.Time) error
}

// MessageRepository persists conversation messages.
type MessageRepository interface {
	// Create persists a new message.
	Create(ctx context.Context, message *entity.Message) error

	// ListByConversation returns all messages of a conversation, oldest first.
	ListByConversation(ctx context.Context, conversationID uuid.UUID) ([]*entity.Message, error)

	// LatestByConversation returns the newest message, or ErrMessageNotFound.
	LatestByConversation(ctx context.Context, conversationID uuid.UUID) (*entity.Message, error)

	// CountUnreadFrom counts unread messages sent by senderID in the conversation.
	CountUnreadFrom(ctx context.Context, conversationID, senderID uuid.UUID) (int64, error)

	// MarkReadIncoming flags every message not sent by readerID as read.
	MarkReadIncoming(ctx context.Context, conversationID, readerID uuid.UUID) (int64, error)

	// CountUnreadForUser counts unread messages addressed to the user across all conversations.
	CountUnreadForUser(ctx context.Context, userID uuid.UUID) (int64, error)
}
