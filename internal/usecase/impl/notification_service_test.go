package impl

import (
	"context"
	"testing"

	"medlink/internal/domain/constants"
	"medlink/internal/domain/entity"
	mockRepo "medlink/internal/mocks/repository"
	"medlink/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestNotificationService(t *testing.T) (usecase.NotificationUsecase, *mockRepo.MockNotificationRepository, *mockRepo.MockMessageRepository) {
	notificationRepo := mockRepo.NewMockNotificationRepository(t)
	messageRepo := mockRepo.NewMockMessageRepository(t)

	service := NewNotificationService(NotificationServiceParams{
		NotificationRepo: notificationRepo,
		MessageRepo:      messageRepo,
		Logger:           newDiscardLogger(),
	})

	return service, notificationRepo, messageRepo
}

func TestNotificationService_ListNotifications_UsesLimit(t *testing.T) {
	service, notificationRepo, _ := createTestNotificationService(t)
	ctx := context.Background()
	userID := uuid.New()
	expected := []*entity.Notification{{ID: uuid.New(), UserID: userID}}

	notificationRepo.EXPECT().ListByUser(ctx, userID, constants.NotificationListLimit).Return(expected, nil)

	notifications, err := service.ListNotifications(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, expected, notifications)
}

func TestNotificationService_UnreadCount_SumsNotificationsAndMessages(t *testing.T) {
	service, notificationRepo, messageRepo := createTestNotificationService(t)
	ctx := context.Background()
	userID := uuid.New()

	notificationRepo.EXPECT().CountUnread(ctx, userID).Return(int64(2), nil)
	messageRepo.EXPECT().CountUnreadForUser(ctx, userID).Return(int64(3), nil)

	count, err := service.UnreadCount(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, int64(5), count)
}

func TestNotificationService_UnreadCount_Error(t *testing.T) {
	service, notificationRepo, _ := createTestNotificationService(t)
	ctx := context.Background()
	userID := uuid.New()

	notificationRepo.EXPECT().CountUnread(ctx, userID).Return(int64(0), errors.New("db down"))

	_, err := service.UnreadCount(ctx, userID)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to count unread notifications")
}

func TestNotificationService_MarkAllRead(t *testing.T) {
	service, notificationRepo, _ := createTestNotificationService(t)
	ctx := context.Background()
	userID := uuid.New()

	notificationRepo.EXPECT().MarkAllRead(ctx, userID).Return(int64(4), nil)

	updated, err := service.MarkAllRead(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, int64(4), updated)
}
