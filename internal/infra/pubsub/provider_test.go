package pubsub

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"medlink/config"
	"medlink/internal/domain/constants"
	"medlink/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func sampleEvent() *entity.NotificationEvent {
	return &entity.NotificationEvent{
		NotificationID: uuid.Must(uuid.NewV7()),
		UserID:         uuid.Must(uuid.NewV7()),
		Type:           entity.NotificationTypeMessage,
		Title:          "New message",
		Message:        "Dr. House: hello",
		CreatedAt:      time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
		RequestID:      "req-1",
	}
}

func TestLocalHTTPPublisher_PostsPushEnvelope(t *testing.T) {
	event := sampleEvent()

	var received PubSubPushMessage
	var requestID string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, discardLogger())
	require.NoError(t, publisher.PublishNotificationEvent(t.Context(), event))

	assert.Equal(t, "req-1", requestID)
	assert.Equal(t, event.NotificationID.String(), received.Message.MessageID)
	assert.Equal(t, event.UserID.String(), received.Message.Attributes["user_id"])
	assert.Equal(t, "MESSAGE", received.Message.Attributes["type"])

	decoded, err := received.DecodeEvent()
	require.NoError(t, err)
	assert.Equal(t, event.NotificationID, decoded.NotificationID)
	assert.Equal(t, event.UserID, decoded.UserID)
	assert.Equal(t, event.Message, decoded.Message)
	assert.True(t, event.CreatedAt.Equal(decoded.CreatedAt))
	require.NoError(t, publisher.Close())
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, discardLogger())
	err := publisher.PublishNotificationEvent(t.Context(), sampleEvent())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "500")
}

func TestPushMessage_DecodeEvent_FallsBackToAttributeRequestID(t *testing.T) {
	event := sampleEvent()
	event.RequestID = ""
	msg, err := NewPushMessage(event, time.Now())
	require.NoError(t, err)
	msg.Message.Attributes["request_id"] = "from-attr"

	decoded, err := msg.DecodeEvent()
	require.NoError(t, err)
	assert.Equal(t, "from-attr", decoded.RequestID)
}

func TestPushMessage_DecodeEvent_InvalidPayload(t *testing.T) {
	msg := &PubSubPushMessage{}
	msg.Message.Data = "%%%"
	_, err := msg.DecodeEvent()
	require.Error(t, err)

	msg.Message.Data = "bm90IGpzb24=" // "not json"
	_, err = msg.DecodeEvent()
	require.Error(t, err)
}

func TestNewEventPublisher(t *testing.T) {
	tests := []struct {
		name     string
		cfg      *config.PubSubConfig
		wantType any
		wantErr  bool
	}{
		{name: "unset provider", cfg: &config.PubSubConfig{}, wantType: &noopPublisher{}},
		{name: "noop provider", cfg: &config.PubSubConfig{Provider: constants.PubSubProviderNoop}, wantType: &noopPublisher{}},
		{name: "local provider", cfg: &config.PubSubConfig{Provider: constants.PubSubProviderLocal, LocalEndpoint: "http://localhost:1/push"}, wantType: &localHTTPPublisher{}},
		{name: "local without endpoint", cfg: &config.PubSubConfig{Provider: constants.PubSubProviderLocal}, wantErr: true},
		{name: "google without project", cfg: &config.PubSubConfig{Provider: constants.PubSubProviderGoogle, TopicID: "t"}, wantErr: true},
		{name: "google without topic", cfg: &config.PubSubConfig{Provider: constants.PubSubProviderGoogle, ProjectID: "p"}, wantErr: true},
		{name: "unknown provider", cfg: &config.PubSubConfig{Provider: "kafka"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lc := fxtest.NewLifecycle(t)
			publisher, err := NewEventPublisher(PublisherParams{
				Lc:     lc,
				Ctx:    t.Context(),
				Config: &config.Config{PubSub: tt.cfg},
				Logger: discardLogger(),
			})
			if tt.wantErr {
				require.Error(t, err)

				return
			}
			require.NoError(t, err)
			assert.IsType(t, tt.wantType, publisher)
			if _, ok := publisher.(*noopPublisher); ok {
				assert.NoError(t, publisher.PublishNotificationEvent(t.Context(), sampleEvent()))
			}
		})
	}
}
