package impl

import (
	"context"
	"net/http"
	"testing"
	"time"

	"medlink/internal/domain/constants"
	"medlink/internal/domain/entity"
	"medlink/internal/domain/repository"
	mockRepo "medlink/internal/mocks/repository"
	mockSvc "medlink/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type conversationServiceFixtures struct {
	service          *conversationService
	txManager        *mockRepo.MockTransactionManager
	userRepo         *mockRepo.MockUserRepository
	conversationRepo *mockRepo.MockConversationRepository
	messageRepo      *mockRepo.MockMessageRepository
	notificationRepo *mockRepo.MockNotificationRepository
	publisher        *mockSvc.MockEventPublisher
	now              time.Time
}

func createTestConversationService(t *testing.T) conversationServiceFixtures {
	fixtures := conversationServiceFixtures{
		txManager:        mockRepo.NewMockTransactionManager(t),
		userRepo:         mockRepo.NewMockUserRepository(t),
		conversationRepo: mockRepo.NewMockConversationRepository(t),
		messageRepo:      mockRepo.NewMockMessageRepository(t),
		notificationRepo: mockRepo.NewMockNotificationRepository(t),
		publisher:        mockSvc.NewMockEventPublisher(t),
		now:              time.Date(2026, 5, 2, 14, 0, 0, 0, time.UTC),
	}

	notifier := NewNotifier(NotifierParams{
		NotificationRepo: fixtures.notificationRepo,
		Publisher:        fixtures.publisher,
		Logger:           newDiscardLogger(),
	})

	svc := NewConversationService(ConversationServiceParams{
		TxManager:        fixtures.txManager,
		UserRepo:         fixtures.userRepo,
		ConversationRepo: fixtures.conversationRepo,
		MessageRepo:      fixtures.messageRepo,
		Notifier:         notifier,
		Logger:           newDiscardLogger(),
	}).(*conversationService)
	svc.now = func() time.Time { return fixtures.now }
	fixtures.service = svc

	return fixtures
}

func TestConversationService_ListConversations_BootstrapsCounterparts(t *testing.T) {
	f := createTestConversationService(t)
	ctx := context.Background()

	patient := &entity.Identity{ID: uuid.New(), Name: "Pat", Role: entity.RolePatient}
	doctorA := &entity.User{ID: uuid.New(), Name: "Dr A", Role: entity.RoleDoctor}
	doctorB := &entity.User{ID: uuid.New(), Name: "Dr B", Role: entity.RoleDoctor}

	lowA, highA := entity.CanonicalPair(patient.ID, doctorA.ID)
	lowB, highB := entity.CanonicalPair(patient.ID, doctorB.ID)
	convA := &entity.Conversation{ID: uuid.New(), ParticipantLow: lowA, ParticipantHigh: highA}
	convB := &entity.Conversation{ID: uuid.New(), ParticipantLow: lowB, ParticipantHigh: highB}

	f.userRepo.EXPECT().FindByRole(ctx, entity.RoleDoctor).Return([]*entity.User{doctorA, doctorB}, nil)

	// First pair is new, second already exists.
	expectTransaction(t, f.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		txConvRepo := mockRepo.NewMockConversationRepository(t)
		factory.EXPECT().NewConversationRepository().Return(txConvRepo)
		txConvRepo.EXPECT().CreateIfAbsent(ctx, mock.MatchedBy(func(c *entity.Conversation) bool {
			return c.ParticipantLow == lowA && c.ParticipantHigh == highA
		})).Return(true, nil)
		txConvRepo.EXPECT().FindByPair(ctx, lowA, highA).Return(convA, nil)
		txConvRepo.EXPECT().AddParticipants(ctx, convA.ID, lowA, highA).Return(nil)
	})
	expectTransaction(t, f.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		txConvRepo := mockRepo.NewMockConversationRepository(t)
		factory.EXPECT().NewConversationRepository().Return(txConvRepo)
		txConvRepo.EXPECT().CreateIfAbsent(ctx, mock.MatchedBy(func(c *entity.Conversation) bool {
			return c.ParticipantLow == lowB && c.ParticipantHigh == highB
		})).Return(false, nil)
	})

	lastMessage := &entity.Message{ID: uuid.New(), ConversationID: convB.ID, SenderID: doctorB.ID, Text: "hello"}
	f.conversationRepo.EXPECT().ListByUser(ctx, patient.ID).Return([]*entity.Conversation{convB, convA}, nil)
	f.messageRepo.EXPECT().LatestByConversation(ctx, convB.ID).Return(lastMessage, nil)
	f.messageRepo.EXPECT().CountUnreadFrom(ctx, convB.ID, doctorB.ID).Return(int64(1), nil)
	f.messageRepo.EXPECT().LatestByConversation(ctx, convA.ID).Return(nil, repository.ErrMessageNotFound)
	f.messageRepo.EXPECT().CountUnreadFrom(ctx, convA.ID, doctorA.ID).Return(int64(0), nil)

	summaries, err := f.service.ListConversations(ctx, patient)
	require.NoError(t, err)
	require.Len(t, summaries, 2)

	assert.Equal(t, convB.ID, summaries[0].Conversation.ID)
	assert.Equal(t, "Dr B", summaries[0].Counterpart.Name)
	assert.Equal(t, lastMessage, summaries[0].LastMessage)
	assert.Equal(t, int64(1), summaries[0].UnreadCount)

	assert.Equal(t, "Dr A", summaries[1].Counterpart.Name)
	assert.Nil(t, summaries[1].LastMessage)
}

func TestConversationService_GetMessages_MarksIncomingRead(t *testing.T) {
	f := createTestConversationService(t)
	ctx := context.Background()

	caller := &entity.Identity{ID: uuid.New(), Role: entity.RoleDoctor}
	conv := &entity.Conversation{ID: uuid.New(), ParticipantLow: caller.ID, ParticipantHigh: uuid.New()}
	messages := []*entity.Message{{ID: uuid.New(), ConversationID: conv.ID, Text: "hi"}}

	f.conversationRepo.EXPECT().FindByID(ctx, conv.ID).Return(conv, nil)
	f.conversationRepo.EXPECT().IsParticipant(ctx, conv.ID, caller.ID).Return(true, nil)
	f.messageRepo.EXPECT().MarkReadIncoming(ctx, conv.ID, caller.ID).Return(int64(1), nil)
	f.messageRepo.EXPECT().ListByConversation(ctx, conv.ID).Return(messages, nil)

	got, err := f.service.GetMessages(ctx, caller, conv.ID)
	require.NoError(t, err)
	assert.Equal(t, messages, got)
}

func TestConversationService_GetMessages_AccessErrors(t *testing.T) {
	t.Run("unknown conversation", func(t *testing.T) {
		f := createTestConversationService(t)
		ctx := context.Background()
		convID := uuid.New()

		f.conversationRepo.EXPECT().FindByID(ctx, convID).Return(nil, repository.ErrConversationNotFound)

		_, err := f.service.GetMessages(ctx, &entity.Identity{ID: uuid.New()}, convID)
		appErr := requireAppError(t, err, "CONVERSATION_NOT_FOUND")
		assert.Equal(t, http.StatusNotFound, appErr.HTTPCode())
	})

	t.Run("not a participant", func(t *testing.T) {
		f := createTestConversationService(t)
		ctx := context.Background()
		caller := &entity.Identity{ID: uuid.New()}
		conv := &entity.Conversation{ID: uuid.New(), ParticipantLow: uuid.New(), ParticipantHigh: uuid.New()}

		f.conversationRepo.EXPECT().FindByID(ctx, conv.ID).Return(conv, nil)
		f.conversationRepo.EXPECT().IsParticipant(ctx, conv.ID, caller.ID).Return(false, nil)

		_, err := f.service.GetMessages(ctx, caller, conv.ID)
		appErr := requireAppError(t, err, "NOT_A_PARTICIPANT")
		assert.Equal(t, http.StatusForbidden, appErr.HTTPCode())
	})
}

func TestConversationService_SendMessage_NotifiesCounterpart(t *testing.T) {
	f := createTestConversationService(t)
	ctx := context.Background()

	caller := &entity.Identity{ID: uuid.New(), Name: "Pat", Role: entity.RolePatient}
	recipientID := uuid.New()
	conv := &entity.Conversation{ID: uuid.New(), ParticipantLow: caller.ID, ParticipantHigh: recipientID}

	f.conversationRepo.EXPECT().FindByID(ctx, conv.ID).Return(conv, nil)
	f.conversationRepo.EXPECT().IsParticipant(ctx, conv.ID, caller.ID).Return(true, nil)
	f.expectSendTransaction(t, ctx, conv.ID)

	var notification *entity.Notification
	f.notificationRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Notification")).
		Run(func(_ context.Context, n *entity.Notification) { notification = n }).
		Return(true, nil)
	f.publisher.EXPECT().PublishNotificationEvent(ctx, mock.AnythingOfType("*entity.NotificationEvent")).Return(nil)

	message, err := f.service.SendMessage(ctx, caller, conv.ID, "  how are you?  ")
	require.NoError(t, err)
	assert.Equal(t, "how are you?", message.Text)
	assert.Equal(t, caller.ID, message.SenderID)
	assert.Equal(t, f.now, message.CreatedAt)

	require.NotNil(t, notification)
	assert.Equal(t, recipientID, notification.UserID)
	assert.Equal(t, entity.NotificationTypeMessage, notification.Type)
	assert.Equal(t, "New message from Pat", notification.Message)
	assert.Equal(t, constants.SourceTypeMessage, notification.SourceType)
	assert.Equal(t, message.ID, notification.SourceID)
}

func TestConversationService_SendMessage_EmptyText(t *testing.T) {
	f := createTestConversationService(t)

	_, err := f.service.SendMessage(context.Background(), &entity.Identity{ID: uuid.New()}, uuid.New(), "   ")
	requireAppError(t, err, "VALIDATION_FAILED")
}

func TestConversationService_SendMessage_NotificationFailureIsReported(t *testing.T) {
	f := createTestConversationService(t)
	ctx := context.Background()

	caller := &entity.Identity{ID: uuid.New(), Name: "Pat"}
	conv := &entity.Conversation{ID: uuid.New(), ParticipantLow: caller.ID, ParticipantHigh: uuid.New()}

	f.conversationRepo.EXPECT().FindByID(ctx, conv.ID).Return(conv, nil)
	f.conversationRepo.EXPECT().IsParticipant(ctx, conv.ID, caller.ID).Return(true, nil)
	f.expectSendTransaction(t, ctx, conv.ID)
	f.notificationRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Notification")).
		Return(false, errors.New("connection reset"))

	_, err := f.service.SendMessage(ctx, caller, conv.ID, "hello")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection reset")
}

// expectSendTransaction runs the send transaction against the fixture repositories.
func (f conversationServiceFixtures) expectSendTransaction(t *testing.T, ctx context.Context, conversationID uuid.UUID) {
	expectTransaction(t, f.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		factory.EXPECT().NewMessageRepository().Return(f.messageRepo)
		f.messageRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Message")).Return(nil)
		factory.EXPECT().NewConversationRepository().Return(f.conversationRepo)
		f.conversationRepo.EXPECT().Touch(ctx, conversationID, f.now).Return(nil)
	})
}

func TestConversationService_SendMessage_TouchFailureAbortsTransaction(t *testing.T) {
	f := createTestConversationService(t)
	ctx := context.Background()

	caller := &entity.Identity{ID: uuid.New(), Name: "Pat"}
	conv := &entity.Conversation{ID: uuid.New(), ParticipantLow: caller.ID, ParticipantHigh: uuid.New()}

	f.conversationRepo.EXPECT().FindByID(ctx, conv.ID).Return(conv, nil)
	f.conversationRepo.EXPECT().IsParticipant(ctx, conv.ID, caller.ID).Return(true, nil)

	var txErr error
	f.txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			factory.EXPECT().NewMessageRepository().Return(f.messageRepo)
			f.messageRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Message")).Return(nil)
			factory.EXPECT().NewConversationRepository().Return(f.conversationRepo)
			f.conversationRepo.EXPECT().Touch(ctx, conv.ID, f.now).Return(errors.New("db down"))

			txErr = fn(factory)

			return txErr
		}).
		Once()

	message, err := f.service.SendMessage(ctx, caller, conv.ID, "hello")
	require.Error(t, err)
	assert.Nil(t, message)
	require.Error(t, txErr, "the transaction callback must fail so the message insert is rolled back")
	assert.Contains(t, err.Error(), "db down")
	f.notificationRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	f.publisher.AssertNotCalled(t, "PublishNotificationEvent", mock.Anything, mock.Anything)
}
