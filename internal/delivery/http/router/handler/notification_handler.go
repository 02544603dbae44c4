package handler

import (
	"log/slog"

	"medlink/internal/delivery/http/response"
	"medlink/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// NotificationHandler holds dependencies for notification-related handlers
type NotificationHandler struct {
	uc     usecase.NotificationUsecase
	logger *slog.Logger
}

// NewNotificationHandler is the constructor for NotificationHandler
func NewNotificationHandler(uc usecase.NotificationUsecase, logger *slog.Logger) *NotificationHandler {
	return &NotificationHandler{
		uc:     uc,
		logger: logger,
	}
}

type unreadCountResponse struct {
	Count int64 `json:"count"`
}

type markReadResponse struct {
	Success bool  `json:"success"`
	Updated int64 `json:"updated"`
}

// ListNotifications returns the caller's latest notifications.
func (h *NotificationHandler) ListNotifications(c echo.Context) error {
	identity, err := caller(c)
	if err != nil {
		return err
	}

	notifications, err := h.uc.ListNotifications(c.Request().Context(), identity.ID)
	if err != nil {
		return errors.WithStack(err)
	}

	views := make([]*notificationView, 0, len(notifications))
	for _, notification := range notifications {
		views = append(views, &notificationView{
			ID:        notification.ID,
			Type:      notification.Type,
			Title:     notification.Title,
			Message:   notification.Message,
			IsRead:    notification.IsRead,
			CreatedAt: notification.CreatedAt,
		})
	}

	return response.OK(c, views, "Notifications retrieved successfully")
}

// UnreadCount returns the badge count of unread notifications and messages.
func (h *NotificationHandler) UnreadCount(c echo.Context) error {
	identity, err := caller(c)
	if err != nil {
		return err
	}

	count, err := h.uc.UnreadCount(c.Request().Context(), identity.ID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, &unreadCountResponse{Count: count}, "Unread count retrieved successfully")
}

// MarkAllRead marks every notification of the caller read.
func (h *NotificationHandler) MarkAllRead(c echo.Context) error {
	identity, err := caller(c)
	if err != nil {
		return err
	}

	updated, err := h.uc.MarkAllRead(c.Request().Context(), identity.ID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, &markReadResponse{Success: true, Updated: updated}, "Notifications marked as read")
}
