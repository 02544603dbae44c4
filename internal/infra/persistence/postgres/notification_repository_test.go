package postgres

import (
	"testing"
	"time"

	"medlink/internal/domain/constants"
	"medlink/internal/domain/entity"
	"medlink/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotificationRepository_IdempotentOnSource(t *testing.T) {
	db := newTestDB(t)
	repo := NewNotificationRepository(db)
	ctx := t.Context()

	patient := seedUser(t, db, "Pat", entity.RolePatient)
	sourceID := uuid.Must(uuid.NewV7())
	now := time.Now().UTC().Truncate(time.Second)

	build := func() *entity.Notification {
		return &entity.Notification{
			ID:         uuid.Must(uuid.NewV7()),
			UserID:     patient.ID,
			Type:       entity.NotificationTypeMessage,
			Title:      "New Message",
			Message:    "New message from Dr. Grey",
			SourceType: constants.SourceTypeMessage,
			SourceID:   sourceID,
			CreatedAt:  now,
		}
	}

	first := build()
	created, err := repo.Create(ctx, first)
	require.NoError(t, err)
	assert.True(t, created)

	created, err = repo.Create(ctx, build())
	require.NoError(t, err)
	assert.False(t, created)

	found, err := repo.FindBySource(ctx, constants.SourceTypeMessage, sourceID, patient.ID)
	require.NoError(t, err)
	assert.Equal(t, first.ID, found.ID)

	_, err = repo.FindBySource(ctx, constants.SourceTypeReminder, sourceID, patient.ID)
	assert.ErrorIs(t, err, repository.ErrNotificationNotFound)
}

func TestNotificationRepository_ListCountMarkRead(t *testing.T) {
	db := newTestDB(t)
	repo := NewNotificationRepository(db)
	ctx := t.Context()

	patient := seedUser(t, db, "Pat", entity.RolePatient)
	other := seedUser(t, db, "Sam", entity.RolePatient)
	base := time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC)

	for i := range 3 {
		_, err := repo.Create(ctx, &entity.Notification{
			ID:         uuid.Must(uuid.NewV7()),
			UserID:     patient.ID,
			Type:       entity.NotificationTypeReminder,
			Message:    "reminder",
			SourceType: constants.SourceTypeReminder,
			SourceID:   uuid.Must(uuid.NewV7()),
			CreatedAt:  base.Add(time.Duration(i) * time.Minute),
		})
		require.NoError(t, err)
	}
	_, err := repo.Create(ctx, &entity.Notification{
		ID:         uuid.Must(uuid.NewV7()),
		UserID:     other.ID,
		Type:       entity.NotificationTypeReminder,
		Message:    "not yours",
		SourceType: constants.SourceTypeReminder,
		SourceID:   uuid.Must(uuid.NewV7()),
		CreatedAt:  base,
	})
	require.NoError(t, err)

	list, err := repo.ListByUser(ctx, patient.ID, 2)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.True(t, list[0].CreatedAt.After(list[1].CreatedAt))

	count, err := repo.CountUnread(ctx, patient.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)

	marked, err := repo.MarkAllRead(ctx, patient.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(3), marked)

	count, err = repo.CountUnread(ctx, patient.ID)
	require.NoError(t, err)
	assert.Zero(t, count)

	count, err = repo.CountUnread(ctx, other.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}
