package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	deliverycontext "medlink/internal/delivery/context"
	"medlink/internal/domain/constants"
	"medlink/internal/domain/entity"
	domainerrors "medlink/internal/domain/errors"
	"medlink/internal/domain/repository"
	"medlink/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type conversationService struct {
	txManager        repository.TransactionManager
	userRepo         repository.UserRepository
	conversationRepo repository.ConversationRepository
	messageRepo      repository.MessageRepository
	notifier         usecase.Notifier
	now              func() time.Time
	logger           *slog.Logger
}

// ConversationServiceParams holds dependencies for ConversationService, injected by Fx.
type ConversationServiceParams struct {
	fx.In

	TxManager        repository.TransactionManager
	UserRepo         repository.UserRepository
	ConversationRepo repository.ConversationRepository
	MessageRepo      repository.MessageRepository
	Notifier         usecase.Notifier
	Logger           *slog.Logger
}

// NewConversationService creates a new conversation service instance
func NewConversationService(params ConversationServiceParams) usecase.ConversationUsecase {
	return &conversationService{
		txManager:        params.TxManager,
		userRepo:         params.UserRepo,
		conversationRepo: params.ConversationRepo,
		messageRepo:      params.MessageRepo,
		notifier:         params.Notifier,
		now:              time.Now,
		logger:           params.Logger,
	}
}

func (s *conversationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// ListConversations bootstraps a conversation with every counterpart and lists the caller's conversations.
func (s *conversationService) ListConversations(ctx context.Context, caller *entity.Identity) ([]*entity.ConversationSummary, error) {
	counterparts, err := s.userRepo.FindByRole(ctx, caller.Role.Counterpart())
	if err != nil {
		return nil, errors.Wrap(err, "failed to list counterparts")
	}

	identities := make(map[uuid.UUID]*entity.Identity, len(counterparts))
	created := 0
	for _, counterpart := range counterparts {
		identities[counterpart.ID] = counterpart.Identity()

		isNew, err := s.getOrCreate(ctx, caller.ID, counterpart.ID)
		if err != nil {
			return nil, err
		}
		if isNew {
			created++
		}
	}

	if created > 0 {
		s.log(ctx).Info("Bootstrapped conversations",
			slog.String("user_id", caller.ID.String()),
			slog.Int("created", created),
		)
	}

	conversations, err := s.conversationRepo.ListByUser(ctx, caller.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list conversations")
	}

	summaries := make([]*entity.ConversationSummary, 0, len(conversations))
	for _, conv := range conversations {
		summary, err := s.summarize(ctx, caller.ID, conv, identities)
		if err != nil {
			return nil, err
		}
		if summary != nil {
			summaries = append(summaries, summary)
		}
	}

	return summaries, nil
}

// getOrCreate makes sure exactly one conversation exists for the unordered pair.
// The unique pair key turns concurrent first contacts into a no-op insert.
func (s *conversationService) getOrCreate(ctx context.Context, userA, userB uuid.UUID) (bool, error) {
	low, high := entity.CanonicalPair(userA, userB)
	now := s.now().UTC()
	created := false

	err := s.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		conversationRepo := repoFactory.NewConversationRepository()

		inserted, err := conversationRepo.CreateIfAbsent(ctx, &entity.Conversation{
			ID:              uuid.Must(uuid.NewV7()),
			ParticipantLow:  low,
			ParticipantHigh: high,
			CreatedAt:       now,
			UpdatedAt:       now,
		})
		if err != nil {
			return errors.Wrap(err, "failed to create conversation")
		}
		if !inserted {
			return nil
		}

		conv, err := conversationRepo.FindByPair(ctx, low, high)
		if err != nil {
			return errors.Wrap(err, "failed to load created conversation")
		}

		if err := conversationRepo.AddParticipants(ctx, conv.ID, low, high); err != nil {
			return errors.Wrap(err, "failed to add conversation participants")
		}
		created = true

		return nil
	})
	if err != nil {
		return false, errors.Wrap(err, "failed to execute conversation bootstrap transaction")
	}

	return created, nil
}

func (s *conversationService) summarize(ctx context.Context, callerID uuid.UUID, conv *entity.Conversation, identities map[uuid.UUID]*entity.Identity) (*entity.ConversationSummary, error) {
	counterpartID := conv.Counterpart(callerID)
	if counterpartID == uuid.Nil {
		return nil, nil
	}

	counterpart, ok := identities[counterpartID]
	if !ok {
		user, err := s.userRepo.FindByID(ctx, counterpartID)
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, nil
		}
		if err != nil {
			return nil, errors.Wrap(err, "failed to load conversation counterpart")
		}
		counterpart = user.Identity()
	}

	summary := &entity.ConversationSummary{
		Conversation: conv,
		Counterpart:  counterpart,
	}

	latest, err := s.messageRepo.LatestByConversation(ctx, conv.ID)
	switch {
	case err == nil:
		summary.LastMessage = latest
	case !errors.Is(err, repository.ErrMessageNotFound):
		return nil, errors.Wrap(err, "failed to load latest message")
	}

	summary.UnreadCount, err = s.messageRepo.CountUnreadFrom(ctx, conv.ID, counterpartID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count unread messages")
	}

	return summary, nil
}

// authorize loads the conversation and checks the caller belongs to it.
func (s *conversationService) authorize(ctx context.Context, caller *entity.Identity, conversationID uuid.UUID) (*entity.Conversation, error) {
	conv, err := s.conversationRepo.FindByID(ctx, conversationID)
	if err != nil {
		if errors.Is(err, repository.ErrConversationNotFound) {
			return nil, domainerrors.ErrConversationNotFound
		}

		return nil, errors.Wrap(err, "failed to find conversation")
	}

	isParticipant, err := s.conversationRepo.IsParticipant(ctx, conversationID, caller.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to check conversation participant")
	}
	if !isParticipant {
		s.log(ctx).Warn("Conversation access denied",
			slog.String("conversation_id", conversationID.String()),
			slog.String("user_id", caller.ID.String()),
		)

		return nil, domainerrors.ErrNotAParticipant
	}

	return conv, nil
}

// GetMessages marks the caller's incoming messages read and returns the thread.
func (s *conversationService) GetMessages(ctx context.Context, caller *entity.Identity, conversationID uuid.UUID) ([]*entity.Message, error) {
	if _, err := s.authorize(ctx, caller, conversationID); err != nil {
		return nil, err
	}

	if _, err := s.messageRepo.MarkReadIncoming(ctx, conversationID, caller.ID); err != nil {
		return nil, errors.Wrap(err, "failed to mark messages read")
	}

	messages, err := s.messageRepo.ListByConversation(ctx, conversationID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list messages")
	}

	return messages, nil
}

// SendMessage stores the message, bumps the conversation and notifies the counterpart.
func (s *conversationService) SendMessage(ctx context.Context, caller *entity.Identity, conversationID uuid.UUID, text string) (*entity.Message, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("text is required")
	}

	conv, err := s.authorize(ctx, caller, conversationID)
	if err != nil {
		return nil, err
	}

	now := s.now().UTC()
	message := &entity.Message{
		ID:             uuid.Must(uuid.NewV7()),
		ConversationID: conv.ID,
		SenderID:       caller.ID,
		Text:           text,
		CreatedAt:      now,
	}

	err = s.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.NewMessageRepository().Create(ctx, message); err != nil {
			return errors.Wrap(err, "failed to create message")
		}
		if err := repoFactory.NewConversationRepository().Touch(ctx, conv.ID, now); err != nil {
			return errors.Wrap(err, "failed to update conversation")
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute send message transaction")
	}

	recipientID := conv.Counterpart(caller.ID)
	if recipientID == uuid.Nil {
		return message, nil
	}

	senderName := caller.Name
	if senderName == "" {
		senderName = "User"
	}

	if _, err := s.notifier.Notify(ctx, &usecase.NotifyInput{
		RecipientID: recipientID,
		Type:        entity.NotificationTypeMessage,
		Title:       "New message",
		Message:     fmt.Sprintf("New message from %s", senderName),
		SourceType:  constants.SourceTypeMessage,
		SourceID:    message.ID,
	}); err != nil {
		return nil, errors.Wrap(err, "message sent but notification failed")
	}

	return message, nil
}
