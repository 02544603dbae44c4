package postgres

import (
	"context"
	"time"

	"medlink/internal/domain/entity"
	domainerrors "medlink/internal/domain/errors"
	"medlink/internal/domain/repository"
	"medlink/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/plugin/dbresolver"
)

// conversationRepository implements the repository.ConversationRepository interface.
type conversationRepository struct {
	db *gorm.DB
}

// NewConversationRepository is the constructor for conversationRepository.
func NewConversationRepository(db *gorm.DB) repository.ConversationRepository {
	return &conversationRepository{
		db: db,
	}
}

// CreateIfAbsent inserts the conversation with ON CONFLICT DO NOTHING on the canonical pair.
func (repo *conversationRepository) CreateIfAbsent(ctx context.Context, conversation *entity.Conversation) (bool, error) {
	convM := fromConversationDomain(conversation)

	result := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Omit(clause.Associations).
		Create(convM)
	if result.Error != nil {
		return false, domainerrors.NewDatabaseExecuteError(result.Error, "failed to create conversation")
	}

	return result.RowsAffected > 0, nil
}

// FindByPair loads the conversation of a canonical pair from the primary,
// so a row inserted a moment ago is always visible.
func (repo *conversationRepository) FindByPair(ctx context.Context, low, high uuid.UUID) (*entity.Conversation, error) {
	var convM model.ConversationModel

	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Where("participant_low = ? AND participant_high = ?", low, high).
		First(&convM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrConversationNotFound
		}

		return nil, errors.Wrap(err, "failed to find conversation by pair")
	}

	return toConversationDomain(&convM), nil
}

// AddParticipants links users to a conversation, skipping existing links.
func (repo *conversationRepository) AddParticipants(ctx context.Context, conversationID uuid.UUID, userIDs ...uuid.UUID) error {
	if len(userIDs) == 0 {
		return nil
	}

	rows := make([]*model.ConversationParticipantModel, 0, len(userIDs))
	for _, userID := range userIDs {
		rows = append(rows, &model.ConversationParticipantModel{
			ConversationID: conversationID,
			UserID:         userID,
		})
	}

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&rows).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrConversationNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to add conversation participants")
	}

	return nil
}

// FindByID retrieves a conversation by its unique ID.
func (repo *conversationRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Conversation, error) {
	var convM model.ConversationModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&convM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrConversationNotFound
		}

		return nil, errors.Wrap(err, "failed to find conversation by id")
	}

	return toConversationDomain(&convM), nil
}

// IsParticipant checks the participant join table.
func (repo *conversationRepository) IsParticipant(ctx context.Context, conversationID, userID uuid.UUID) (bool, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.ConversationParticipantModel{}).
		Where("conversation_id = ? AND user_id = ?", conversationID, userID).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check conversation participant")
	}

	return count > 0, nil
}

// ListByUser returns the user's conversations ordered by updated_at descending.
func (repo *conversationRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Conversation, error) {
	var convModels []*model.ConversationModel

	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Joins("JOIN conversation_participants cp ON cp.conversation_id = conversations.id").
		Where("cp.user_id = ?", userID).
		Order("conversations.updated_at DESC").
		Order("conversations.id ASC").
		Find(&convModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list conversations by user")
	}

	conversations := make([]*entity.Conversation, 0, len(convModels))
	for _, convM := range convModels {
		conversations = append(conversations, toConversationDomain(convM))
	}

	return conversations, nil
}

// Touch sets updated_at so the conversation sorts to the top of both participants' lists.
func (repo *conversationRepository) Touch(ctx context.Context, id uuid.UUID, at time.Time) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ConversationModel{}).
		Where("id = ?", id).
		Update("updated_at", at)

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to touch conversation")
	}

	if result.RowsAffected == 0 {
		return repository.ErrConversationNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toConversationDomain(data *model.ConversationModel) *entity.Conversation {
	if data == nil {
		return nil
	}

	return &entity.Conversation{
		ID:              data.ID,
		ParticipantLow:  data.ParticipantLow,
		ParticipantHigh: data.ParticipantHigh,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}

func fromConversationDomain(data *entity.Conversation) *model.ConversationModel {
	if data == nil {
		return nil
	}

	return &model.ConversationModel{
		ID:              data.ID,
		ParticipantLow:  data.ParticipantLow,
		ParticipantHigh: data.ParticipantHigh,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}
