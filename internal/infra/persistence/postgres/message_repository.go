package postgres

import (
	"context"

	"medlink/internal/domain/entity"
	domainerrors "medlink/internal/domain/errors"
	"medlink/internal/domain/repository"
	"medlink/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// messageRepository implements the repository.MessageRepository interface.
type messageRepository struct {
	db *gorm.DB
}

// NewMessageRepository is the constructor for messageRepository.
func NewMessageRepository(db *gorm.DB) repository.MessageRepository {
	return &messageRepository{
		db: db,
	}
}

// Create persists a new message.
func (repo *messageRepository) Create(ctx context.Context, message *entity.Message) error {
	messageM := fromMessageDomain(message)

	if err := repo.db.WithContext(ctx).Create(messageM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrConversationNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create message")
	}

	message.CreatedAt = messageM.CreatedAt

	return nil
}

// ListByConversation returns every message of the conversation in ascending time order.
func (repo *messageRepository) ListByConversation(ctx context.Context, conversationID uuid.UUID) ([]*entity.Message, error) {
	var messageModels []*model.MessageModel

	if err := repo.db.WithContext(ctx).
		Where("conversation_id = ?", conversationID).
		Order("created_at ASC").
		Order("id ASC").
		Find(&messageModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list messages")
	}

	messages := make([]*entity.Message, 0, len(messageModels))
	for _, messageM := range messageModels {
		messages = append(messages, toMessageDomain(messageM))
	}

	return messages, nil
}

// LatestByConversation returns the newest message of the conversation.
func (repo *messageRepository) LatestByConversation(ctx context.Context, conversationID uuid.UUID) (*entity.Message, error) {
	var messageM model.MessageModel

	if err := repo.db.WithContext(ctx).
		Where("conversation_id = ?", conversationID).
		Order("created_at DESC").
		Order("id DESC").
		First(&messageM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrMessageNotFound
		}

		return nil, errors.Wrap(err, "failed to find latest message")
	}

	return toMessageDomain(&messageM), nil
}

// CountUnreadFrom counts unread messages sent by senderID in the conversation.
func (repo *messageRepository) CountUnreadFrom(ctx context.Context, conversationID, senderID uuid.UUID) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.MessageModel{}).
		Where("conversation_id = ? AND sender_id = ? AND is_read = ?", conversationID, senderID, false).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count unread messages")
	}

	return count, nil
}

// MarkReadIncoming flags the reader's incoming messages in the conversation as read.
func (repo *messageRepository) MarkReadIncoming(ctx context.Context, conversationID, readerID uuid.UUID) (int64, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.MessageModel{}).
		Where("conversation_id = ? AND sender_id <> ? AND is_read = ?", conversationID, readerID, false).
		Update("is_read", true)

	if result.Error != nil {
		return 0, domainerrors.NewDatabaseExecuteError(result.Error, "failed to mark messages read")
	}

	return result.RowsAffected, nil
}

// CountUnreadForUser counts unread messages sent to the user in any of their conversations.
func (repo *messageRepository) CountUnreadForUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64

	participations := repo.db.
		Model(&model.ConversationParticipantModel{}).
		Select("conversation_id").
		Where("user_id = ?", userID)

	if err := repo.db.WithContext(ctx).
		Model(&model.MessageModel{}).
		Where("conversation_id IN (?) AND sender_id <> ? AND is_read = ?", participations, userID, false).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count unread messages for user")
	}

	return count, nil
}

// --- Mapper Functions ---

func toMessageDomain(data *model.MessageModel) *entity.Message {
	if data == nil {
		return nil
	}

	return &entity.Message{
		ID:             data.ID,
		ConversationID: data.ConversationID,
		SenderID:       data.SenderID,
		Text:           data.Text,
		IsRead:         data.IsRead,
		CreatedAt:      data.CreatedAt,
	}
}

func fromMessageDomain(data *entity.Message) *model.MessageModel {
	if data == nil {
		return nil
	}

	return &model.MessageModel{
		ID:             data.ID,
		ConversationID: data.ConversationID,
		SenderID:       data.SenderID,
		Text:           data.Text,
		IsRead:         data.IsRead,
		CreatedAt:      data.CreatedAt,
	}
}
