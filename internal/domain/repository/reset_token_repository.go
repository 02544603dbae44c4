package repository

import (
	"context"
	"time"

	"medlink/internal/domain/entity"

	"github.com/google/uuid"
)

// ResetTokenRepository stores outstanding password-reset tokens.
type ResetTokenRepository interface {
	// Create persists a new token.
	Create(ctx context.Context, token *entity.ResetToken) error

	// FindActiveByUserID returns the user's tokens with expires_at after now, oldest first.
	FindActiveByUserID(ctx context.Context, userID uuid.UUID, now time.Time) ([]*entity.ResetToken, error)

	// DeleteByUserID removes every token of the user, expired or not.
	DeleteByUserID(ctx context.Context, userID uuid.UUID) (int64, error)
}
