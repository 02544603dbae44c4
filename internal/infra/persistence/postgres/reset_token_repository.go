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
)

// resetTokenRepository implements the repository.ResetTokenRepository interface.
type resetTokenRepository struct {
	db *gorm.DB
}

// NewResetTokenRepository is the constructor for resetTokenRepository.
func NewResetTokenRepository(db *gorm.DB) repository.ResetTokenRepository {
	return &resetTokenRepository{
		db: db,
	}
}

// Create persists a new reset token.
func (repo *resetTokenRepository) Create(ctx context.Context, token *entity.ResetToken) error {
	tokenM := fromResetTokenDomain(token)

	if err := repo.db.WithContext(ctx).Create(tokenM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUserNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create reset token")
	}

	token.CreatedAt = tokenM.CreatedAt

	return nil
}

// FindActiveByUserID returns tokens that have not expired at now, oldest first.
func (repo *resetTokenRepository) FindActiveByUserID(ctx context.Context, userID uuid.UUID, now time.Time) ([]*entity.ResetToken, error) {
	var tokenModels []*model.ResetTokenModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND expires_at > ?", userID, now).
		Order("created_at ASC").
		Order("id ASC").
		Find(&tokenModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find active reset tokens")
	}

	tokens := make([]*entity.ResetToken, 0, len(tokenModels))
	for _, tokenM := range tokenModels {
		tokens = append(tokens, toResetTokenDomain(tokenM))
	}

	return tokens, nil
}

// DeleteByUserID removes every reset token of the user.
func (repo *resetTokenRepository) DeleteByUserID(ctx context.Context, userID uuid.UUID) (int64, error) {
	result := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&model.ResetTokenModel{})

	if result.Error != nil {
		return 0, domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete reset tokens")
	}

	return result.RowsAffected, nil
}

// --- Mapper Functions ---

func toResetTokenDomain(data *model.ResetTokenModel) *entity.ResetToken {
	if data == nil {
		return nil
	}

	return &entity.ResetToken{
		ID:        data.ID,
		UserID:    data.UserID,
		TokenHash: data.TokenHash,
		ExpiresAt: data.ExpiresAt,
		CreatedAt: data.CreatedAt,
	}
}

func fromResetTokenDomain(data *entity.ResetToken) *model.ResetTokenModel {
	if data == nil {
		return nil
	}

	return &model.ResetTokenModel{
		ID:        data.ID,
		UserID:    data.UserID,
		TokenHash: data.TokenHash,
		ExpiresAt: data.ExpiresAt,
		CreatedAt: data.CreatedAt,
	}
}
