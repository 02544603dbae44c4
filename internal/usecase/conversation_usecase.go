package usecase

import (
	"context"

	"medlink/internal/domain/entity"

	"github.com/google/uuid"
)

// ConversationUsecase covers conversation bootstrap and messaging between doctors and patients.
type ConversationUsecase interface {
	// ListConversations makes sure a conversation exists between the caller and
	// every user of the complementary role, then lists the caller's conversations.
	ListConversations(ctx context.Context, caller *entity.Identity) ([]*entity.ConversationSummary, error)

	// GetMessages returns the thread in chronological order and marks incoming messages read.
	GetMessages(ctx context.Context, caller *entity.Identity, conversationID uuid.UUID) ([]*entity.Message, error)

	SendMessage(ctx context.Context, caller *entity.Identity, conversationID uuid.UUID, text string) (*entity.Message, error)
}
