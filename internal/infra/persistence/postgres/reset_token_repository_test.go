package postgres

import (
	"testing"
	"time"

	"medlink/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResetTokenRepository_ActiveAndDelete(t *testing.T) {
	db := newTestDB(t)
	repo := NewResetTokenRepository(db)
	ctx := t.Context()

	user := seedUser(t, db, "Pat", entity.RolePatient)
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	expired := &entity.ResetToken{ID: uuid.Must(uuid.NewV7()), UserID: user.ID, TokenHash: "a", ExpiresAt: now.Add(-time.Minute), CreatedAt: now.Add(-2 * time.Hour)}
	older := &entity.ResetToken{ID: uuid.Must(uuid.NewV7()), UserID: user.ID, TokenHash: "b", ExpiresAt: now.Add(30 * time.Minute), CreatedAt: now.Add(-30 * time.Minute)}
	newer := &entity.ResetToken{ID: uuid.Must(uuid.NewV7()), UserID: user.ID, TokenHash: "c", ExpiresAt: now.Add(time.Hour), CreatedAt: now}
	for _, token := range []*entity.ResetToken{newer, expired, older} {
		require.NoError(t, repo.Create(ctx, token))
	}

	active, err := repo.FindActiveByUserID(ctx, user.ID, now)
	require.NoError(t, err)
	require.Len(t, active, 2)
	assert.Equal(t, "b", active[0].TokenHash)
	assert.Equal(t, "c", active[1].TokenHash)

	deleted, err := repo.DeleteByUserID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(3), deleted)

	active, err = repo.FindActiveByUserID(ctx, user.ID, now)
	require.NoError(t, err)
	assert.Empty(t, active)
}
