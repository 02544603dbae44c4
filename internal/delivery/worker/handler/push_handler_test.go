package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"medlink/config"
	deliverycontext "medlink/internal/delivery/context"
	"medlink/internal/domain/constants"
	"medlink/internal/domain/entity"
	"medlink/internal/infra/pubsub"
	"medlink/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/idtoken"
)

type fakeDelivery struct {
	err       error
	events    []*entity.NotificationEvent
	requestID string
}

func (f *fakeDelivery) Deliver(ctx context.Context, event *entity.NotificationEvent) (*usecase.DeliveryResult, error) {
	f.events = append(f.events, event)
	f.requestID = deliverycontext.GetRequestIDFromContext(ctx)
	if f.err != nil {
		return nil, f.err
	}

	return &usecase.DeliveryResult{DeviceCount: 1, SuccessCount: 1}, nil
}

func newTestHandler(delivery usecase.PushDeliveryUsecase, cfg *config.Config) *PushHandler {
	if cfg == nil {
		cfg = &config.Config{}
	}

	return NewPushHandler(PushHandlerParams{
		Config:     cfg,
		Logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
		DeliveryUC: delivery,
	})
}

func sampleEvent() *entity.NotificationEvent {
	return &entity.NotificationEvent{
		NotificationID: uuid.New(),
		UserID:         uuid.New(),
		Type:           entity.NotificationTypeMessage,
		Title:          "New message",
		Message:        "New message from Dr. Who",
		CreatedAt:      time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC),
	}
}

func pushBody(t *testing.T, event *entity.NotificationEvent) []byte {
	t.Helper()

	msg, err := pubsub.NewPushMessage(event, time.Now())
	require.NoError(t, err)
	body, err := json.Marshal(msg)
	require.NoError(t, err)

	return body
}

func servePush(h *PushHandler, body []byte, header http.Header) *httptest.ResponseRecorder {
	e := echo.New()
	e.POST("/push", h.HandlePush)

	req := httptest.NewRequest(http.MethodPost, "/push", bytes.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	for key, values := range header {
		for _, value := range values {
			req.Header.Add(key, value)
		}
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func TestHandlePush_DeliversEvent(t *testing.T) {
	delivery := &fakeDelivery{}
	event := sampleEvent()
	event.RequestID = "req-from-api"

	rec := servePush(newTestHandler(delivery, nil), pushBody(t, event), nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, delivery.events, 1)
	assert.Equal(t, event.NotificationID, delivery.events[0].NotificationID)
	assert.Equal(t, event.UserID, delivery.events[0].UserID)
	assert.Equal(t, "req-from-api", delivery.requestID)
}

func TestHandlePush_MalformedPayloadIsAcknowledgedWithBadRequest(t *testing.T) {
	delivery := &fakeDelivery{}
	body := []byte(`{"message":{"data":"%%%not-base64","messageId":"1"}}`)

	rec := servePush(newTestHandler(delivery, nil), body, nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, delivery.events)
}

func TestHandlePush_InvalidEventIsNotRetried(t *testing.T) {
	delivery := &fakeDelivery{err: errors.Wrap(usecase.ErrInvalidEvent, "missing user id")}

	rec := servePush(newTestHandler(delivery, nil), pushBody(t, sampleEvent()), nil)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHandlePush_TransientFailureAsksForRedelivery(t *testing.T) {
	delivery := &fakeDelivery{err: errors.New("connection refused")}

	rec := servePush(newTestHandler(delivery, nil), pushBody(t, sampleEvent()), nil)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func googleConfig() *config.Config {
	cfg := &config.Config{
		PubSub: &config.PubSubConfig{
			Provider:     constants.PubSubProviderGoogle,
			PushAudience: "https://worker.medlink.test/push",
		},
	}
	cfg.Env.Env = constants.EnvProduction

	return cfg
}

func TestHandlePush_RejectsMissingTokenWhenVerifying(t *testing.T) {
	delivery := &fakeDelivery{}
	h := newTestHandler(delivery, googleConfig())

	rec := servePush(h, pushBody(t, sampleEvent()), nil)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Empty(t, delivery.events)
}

func TestHandlePush_AcceptsGoogleSignedToken(t *testing.T) {
	delivery := &fakeDelivery{}
	h := newTestHandler(delivery, googleConfig())

	var gotToken, gotAudience string
	h.validateToken = func(_ context.Context, token, audience string) (*idtoken.Payload, error) {
		gotToken, gotAudience = token, audience

		return &idtoken.Payload{Issuer: "https://accounts.google.com", Claims: map[string]any{"email_verified": true}}, nil
	}

	header := http.Header{}
	header.Set(echo.HeaderAuthorization, "Bearer signed-token")
	rec := servePush(h, pushBody(t, sampleEvent()), header)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "signed-token", gotToken)
	assert.Equal(t, "https://worker.medlink.test/push", gotAudience)
	assert.Len(t, delivery.events, 1)
}

func TestHandlePush_RejectsForeignIssuer(t *testing.T) {
	delivery := &fakeDelivery{}
	h := newTestHandler(delivery, googleConfig())
	h.validateToken = func(context.Context, string, string) (*idtoken.Payload, error) {
		return &idtoken.Payload{Issuer: "https://evil.example"}, nil
	}

	header := http.Header{}
	header.Set(echo.HeaderAuthorization, "Bearer signed-token")
	rec := servePush(h, pushBody(t, sampleEvent()), header)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Empty(t, delivery.events)
}

func TestHandlePush_SkipsVerificationInDevelop(t *testing.T) {
	cfg := googleConfig()
	cfg.Env.Env = constants.EnvDevelop
	delivery := &fakeDelivery{}

	rec := servePush(newTestHandler(delivery, cfg), pushBody(t, sampleEvent()), nil)

	assert.Equal(t, http.StatusOK, rec.Code)
}
