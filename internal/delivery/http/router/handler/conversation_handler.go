package handler

import (
	"log/slog"

	"medlink/internal/delivery/http/response"
	"medlink/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ConversationHandler serves the conversation list and message threads.
type ConversationHandler struct {
	uc     usecase.ConversationUsecase
	logger *slog.Logger
}

// NewConversationHandler is the constructor for ConversationHandler.
func NewConversationHandler(uc usecase.ConversationUsecase, logger *slog.Logger) *ConversationHandler {
	return &ConversationHandler{
		uc:     uc,
		logger: logger,
	}
}

// SendMessageRequest is the body of POST /api/conversations/:id/messages.
type SendMessageRequest struct {
	Text string `json:"text" validate:"required"`
}

// ListConversations bootstraps missing conversations and lists the caller's.
func (h *ConversationHandler) ListConversations(c echo.Context) error {
	identity, err := caller(c)
	if err != nil {
		return err
	}

	summaries, err := h.uc.ListConversations(c.Request().Context(), identity)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, newConversationViews(summaries), "Conversations retrieved successfully")
}

// GetMessages returns a thread and marks the caller's incoming messages read.
func (h *ConversationHandler) GetMessages(c echo.Context) error {
	identity, err := caller(c)
	if err != nil {
		return err
	}
	conversationID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	messages, err := h.uc.GetMessages(c.Request().Context(), identity, conversationID)
	if err != nil {
		return errors.WithStack(err)
	}

	views := make([]*messageView, 0, len(messages))
	for _, message := range messages {
		views = append(views, newMessageView(message))
	}

	return response.OK(c, views, "Messages retrieved successfully")
}

// SendMessage posts a message and notifies the other participant.
func (h *ConversationHandler) SendMessage(c echo.Context) error {
	identity, err := caller(c)
	if err != nil {
		return err
	}
	conversationID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req SendMessageRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	message, err := h.uc.SendMessage(c.Request().Context(), identity, conversationID, req.Text)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Created(c, newMessageView(message), "Message sent successfully")
}
