package postgres

import (
	"testing"
	"time"

	"medlink/internal/domain/entity"
	"medlink/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newConversation(a, b uuid.UUID, at time.Time) *entity.Conversation {
	low, high := entity.CanonicalPair(a, b)

	return &entity.Conversation{
		ID:              uuid.Must(uuid.NewV7()),
		ParticipantLow:  low,
		ParticipantHigh: high,
		CreatedAt:       at,
		UpdatedAt:       at,
	}
}

func TestConversationRepository_CreateIfAbsentIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	repo := NewConversationRepository(db)
	ctx := t.Context()

	doctor := seedUser(t, db, "Dr. Grey", entity.RoleDoctor)
	patient := seedUser(t, db, "Pat", entity.RolePatient)
	now := time.Now().UTC().Truncate(time.Second)

	first := newConversation(doctor.ID, patient.ID, now)
	created, err := repo.CreateIfAbsent(ctx, first)
	require.NoError(t, err)
	assert.True(t, created)

	second := newConversation(patient.ID, doctor.ID, now)
	created, err = repo.CreateIfAbsent(ctx, second)
	require.NoError(t, err)
	assert.False(t, created)

	found, err := repo.FindByPair(ctx, first.ParticipantLow, first.ParticipantHigh)
	require.NoError(t, err)
	assert.Equal(t, first.ID, found.ID)

	var count int64
	require.NoError(t, db.Table("conversations").Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestConversationRepository_ParticipantsAndListing(t *testing.T) {
	db := newTestDB(t)
	repo := NewConversationRepository(db)
	ctx := t.Context()

	doctor := seedUser(t, db, "Dr. Grey", entity.RoleDoctor)
	p1 := seedUser(t, db, "Pat", entity.RolePatient)
	p2 := seedUser(t, db, "Sam", entity.RolePatient)
	base := time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC)

	c1 := newConversation(doctor.ID, p1.ID, base)
	c2 := newConversation(doctor.ID, p2.ID, base.Add(time.Minute))
	for _, c := range []*entity.Conversation{c1, c2} {
		_, err := repo.CreateIfAbsent(ctx, c)
		require.NoError(t, err)
		require.NoError(t, repo.AddParticipants(ctx, c.ID, c.ParticipantLow, c.ParticipantHigh))
		// Repeating the links is harmless.
		require.NoError(t, repo.AddParticipants(ctx, c.ID, c.ParticipantLow, c.ParticipantHigh))
	}

	ok, err := repo.IsParticipant(ctx, c1.ID, p1.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.IsParticipant(ctx, c1.ID, p2.ID)
	require.NoError(t, err)
	assert.False(t, ok)

	list, err := repo.ListByUser(ctx, doctor.ID)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, c2.ID, list[0].ID)
	assert.Equal(t, c1.ID, list[1].ID)

	require.NoError(t, repo.Touch(ctx, c1.ID, base.Add(time.Hour)))
	list, err = repo.ListByUser(ctx, doctor.ID)
	require.NoError(t, err)
	assert.Equal(t, c1.ID, list[0].ID)

	list, err = repo.ListByUser(ctx, p2.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, c2.ID, list[0].ID)

	assert.ErrorIs(t, repo.Touch(ctx, uuid.New(), base), repository.ErrConversationNotFound)
	_, err = repo.FindByID(ctx, uuid.New())
	assert.ErrorIs(t, err, repository.ErrConversationNotFound)
}

func TestMessageRepository_UnreadFlow(t *testing.T) {
	db := newTestDB(t)
	convRepo := NewConversationRepository(db)
	msgRepo := NewMessageRepository(db)
	ctx := t.Context()

	doctor := seedUser(t, db, "Dr. Grey", entity.RoleDoctor)
	patient := seedUser(t, db, "Pat", entity.RolePatient)
	base := time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC)

	conv := newConversation(doctor.ID, patient.ID, base)
	_, err := convRepo.CreateIfAbsent(ctx, conv)
	require.NoError(t, err)
	require.NoError(t, convRepo.AddParticipants(ctx, conv.ID, doctor.ID, patient.ID))

	_, err = msgRepo.LatestByConversation(ctx, conv.ID)
	assert.ErrorIs(t, err, repository.ErrMessageNotFound)

	texts := []struct {
		sender uuid.UUID
		text   string
	}{
		{sender: patient.ID, text: "hello"},
		{sender: patient.ID, text: "are you there?"},
		{sender: doctor.ID, text: "yes"},
	}
	for i, m := range texts {
		require.NoError(t, msgRepo.Create(ctx, &entity.Message{
			ID:             uuid.Must(uuid.NewV7()),
			ConversationID: conv.ID,
			SenderID:       m.sender,
			Text:           m.text,
			CreatedAt:      base.Add(time.Duration(i) * time.Minute),
		}))
	}

	latest, err := msgRepo.LatestByConversation(ctx, conv.ID)
	require.NoError(t, err)
	assert.Equal(t, "yes", latest.Text)

	unread, err := msgRepo.CountUnreadFrom(ctx, conv.ID, patient.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), unread)

	total, err := msgRepo.CountUnreadForUser(ctx, doctor.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)

	marked, err := msgRepo.MarkReadIncoming(ctx, conv.ID, doctor.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), marked)

	unread, err = msgRepo.CountUnreadFrom(ctx, conv.ID, patient.ID)
	require.NoError(t, err)
	assert.Zero(t, unread)

	total, err = msgRepo.CountUnreadForUser(ctx, patient.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)

	messages, err := msgRepo.ListByConversation(ctx, conv.ID)
	require.NoError(t, err)
	require.Len(t, messages, 3)
	assert.Equal(t, "hello", messages[0].Text)
	assert.True(t, messages[0].IsRead)
	assert.False(t, messages[2].IsRead)
}
