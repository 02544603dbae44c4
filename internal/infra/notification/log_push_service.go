package notification

import (
	"context"
	"log/slog"

	"medlink/internal/domain/service"
)

// logPushService reports every push as delivered and only logs it.
type logPushService struct {
	logger *slog.Logger
}

// NewLogPushService creates a push service for environments without FCM.
func NewLogPushService(logger *slog.Logger) service.PushService {
	return &logPushService{logger: logger}
}

func (s *logPushService) SendSingleNotification(ctx context.Context, token, title, body string, data map[string]string) error {
	s.logger.InfoContext(ctx, "[LogPush] Notification",
		slog.String("token", token),
		slog.String("title", title),
		slog.String("body", body),
		slog.Any("data", data),
	)

	return nil
}

func (s *logPushService) SendBatchNotification(ctx context.Context, tokens []string, title, body string, data map[string]string) (int, int, []string, error) {
	s.logger.InfoContext(ctx, "[LogPush] Batch notification",
		slog.Int("token_count", len(tokens)),
		slog.String("title", title),
		slog.String("body", body),
		slog.Any("data", data),
	)

	return len(tokens), 0, []string{}, nil
}
