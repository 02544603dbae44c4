package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"sync"
	"testing"
	"time"

	"medlink/config"
	httpmiddleware "medlink/internal/delivery/http/middleware"
	"medlink/internal/delivery/http/response"
	"medlink/internal/delivery/http/router"
	"medlink/internal/delivery/http/router/handler"
	"medlink/internal/domain/entity"
	"medlink/internal/infra/auth"
	"medlink/internal/infra/persistence/postgres"
	"medlink/internal/infra/qrcode"
	"medlink/internal/infra/storage"
	"medlink/internal/usecase/impl"

	"github.com/glebarez/sqlite"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/memblob"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type capturedSecrets struct {
	mu      sync.Mutex
	secrets map[string]string
}

func (d *capturedSecrets) DeliverResetSecret(_ context.Context, email, secret string, _ time.Time) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.secrets[email] = secret

	return nil
}

func (d *capturedSecrets) latest(email string) string {
	d.mu.Lock()
	defer d.mu.Unlock()

	return d.secrets[email]
}

type capturingPublisher struct {
	mu     sync.Mutex
	events []*entity.NotificationEvent
}

func (p *capturingPublisher) PublishNotificationEvent(_ context.Context, event *entity.NotificationEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)

	return nil
}

func (p *capturingPublisher) Close() error { return nil }

type testAPI struct {
	t         *testing.T
	echo      *echo.Echo
	db        *gorm.DB
	secrets   *capturedSecrets
	publisher *capturingPublisher
}

type envelope struct {
	Success bool                `json:"success"`
	Code    int                 `json:"code"`
	Message string              `json:"message"`
	Data    json.RawMessage     `json:"data"`
	Error   *response.ErrorInfo `json:"error"`
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?_pragma=foreign_keys(1)"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	require.NoError(t, postgres.AutoMigrate(db))

	cfg := &config.Config{
		Auth:           &config.AuthConfig{BcryptCost: 4, TokenTTL: time.Hour, ResetTokenTTL: time.Hour},
		PasswordPolicy: &config.PasswordPolicyConfig{MinLength: 6, MaxLength: 72},
		Storage:        &config.StorageConfig{PublicBaseURL: "http://medlink.test/api/avatars", MaxAvatarBytes: 1 << 20},
		QRCode:         &config.QRCodeConfig{Size: 128, ErrorCorrectionLevel: "M"},
	}
	cfg.SecretKey.Access = "integration-secret"
	cfg.HTTP.MaxRequestBodySize = "100KB"

	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	userRepo := postgres.NewUserRepository(db)
	messageRepo := postgres.NewMessageRepository(db)
	notificationRepo := postgres.NewNotificationRepository(db)
	txManager := postgres.NewTransactionManager(db)

	tokenSvc, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { _ = bucket.Close() })

	secrets := &capturedSecrets{secrets: map[string]string{}}
	publisher := &capturingPublisher{}

	notifier := impl.NewNotifier(impl.NotifierParams{
		NotificationRepo: notificationRepo,
		Publisher:        publisher,
		Logger:           log,
	})
	authUC := impl.NewAuthService(impl.AuthServiceParams{
		TxManager:      txManager,
		UserRepo:       userRepo,
		ResetTokenRepo: postgres.NewResetTokenRepository(db),
		Hasher:         auth.NewBcryptHasher(cfg),
		TokenService:   tokenSvc,
		SecretGen:      auth.NewSecretGenerator(),
		SecretDelivery: secrets,
		Config:         cfg,
		Logger:         log,
	})

	routerParams := router.RouterParams{
		Config:         cfg,
		AuthMiddleware: httpmiddleware.NewAuthMiddleware(authUC),
		AuthHandler:    handler.NewAuthHandler(authUC, log),
		ConversationHandler: handler.NewConversationHandler(impl.NewConversationService(impl.ConversationServiceParams{
			TxManager:        txManager,
			UserRepo:         userRepo,
			ConversationRepo: postgres.NewConversationRepository(db),
			MessageRepo:      messageRepo,
			Notifier:         notifier,
			Logger:           log,
		}), log),
		NotificationHandler: handler.NewNotificationHandler(impl.NewNotificationService(impl.NotificationServiceParams{
			NotificationRepo: notificationRepo,
			MessageRepo:      messageRepo,
			Logger:           log,
		}), log),
		AppointmentHandler: handler.NewAppointmentHandler(impl.NewAppointmentService(impl.AppointmentServiceParams{
			AppointmentRepo: postgres.NewAppointmentRepository(db),
			UserRepo:        userRepo,
			Notifier:        notifier,
			Logger:          log,
		}), log),
		ReminderHandler: handler.NewReminderHandler(impl.NewReminderService(impl.ReminderServiceParams{
			ReminderRepo: postgres.NewReminderRepository(db),
			UserRepo:     userRepo,
			Notifier:     notifier,
			Logger:       log,
		}), log),
		ProfileHandler: handler.NewProfileHandler(impl.NewProfileService(impl.ProfileServiceParams{
			TxManager: txManager,
			UserRepo:  userRepo,
			Storage:   storage.NewBucketStorage(bucket, cfg.Storage.PublicBaseURL),
			QRCodeSvc: qrcode.NewQRCodeServiceFromConfig(cfg),
			Config:    cfg,
			Logger:    log,
		}), log),
		DeviceHandler: handler.NewDeviceHandler(handler.DeviceHandlerParams{
			DeviceUC: impl.NewDeviceService(impl.DeviceServiceParams{
				DeviceRepo: postgres.NewDeviceRepository(db),
				Logger:     log,
			}),
			Logger: log,
		}),
		HealthHandler: handler.NewHealthHandler(db, log),
	}

	return &testAPI{
		t:         t,
		echo:      NewEcho(cfg, log, routerParams),
		db:        db,
		secrets:   secrets,
		publisher: publisher,
	}
}

func (api *testAPI) do(method, path, token string, body any) *httptest.ResponseRecorder {
	api.t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(api.t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	api.echo.ServeHTTP(rec, req)

	return rec
}

// call performs the request, checks the status and decodes the envelope data into out.
func (api *testAPI) call(method, path, token string, body any, wantStatus int, out any) *envelope {
	api.t.Helper()

	rec := api.do(method, path, token, body)
	require.Equal(api.t, wantStatus, rec.Code, rec.Body.String())

	var env envelope
	require.NoError(api.t, json.Unmarshal(rec.Body.Bytes(), &env))
	if out != nil {
		require.NoError(api.t, json.Unmarshal(env.Data, out))
	}

	return &env
}

type userPayload struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Role   string `json:"role"`
	Avatar string `json:"avatar"`
}

type session struct {
	Token string      `json:"token"`
	User  userPayload `json:"user"`
}

func (api *testAPI) registerAndLogin(name, email, role, specialty string) *session {
	api.t.Helper()

	api.call(http.MethodPost, "/api/auth/register", "", map[string]string{
		"name": name, "email": email, "password": "secret123", "role": role, "specialty": specialty,
	}, http.StatusCreated, nil)

	var out session
	api.call(http.MethodPost, "/api/auth/login", "", map[string]string{
		"email": email, "password": "secret123",
	}, http.StatusOK, &out)

	return &out
}

type conversationPayload struct {
	ID          string      `json:"id"`
	Participant userPayload `json:"participant"`
	LastMessage string      `json:"lastMessage"`
	UnreadCount int64       `json:"unreadCount"`
}

func TestAPI_Health(t *testing.T) {
	api := newTestAPI(t)

	api.call(http.MethodGet, "/health", "", nil, http.StatusOK, nil)
}

func TestAPI_RegisterLoginAndMe(t *testing.T) {
	api := newTestAPI(t)

	var registered struct {
		Message string      `json:"message"`
		User    userPayload `json:"user"`
	}
	api.call(http.MethodPost, "/api/auth/register", "", map[string]string{
		"name": "Dr. House", "email": "  House@Clinic.io ", "password": "secret123", "role": "DOCTOR",
	}, http.StatusCreated, &registered)
	assert.Equal(t, "User created successfully. Please log in.", registered.Message)
	assert.Equal(t, "DOCTOR", registered.User.Role)

	var login session
	api.call(http.MethodPost, "/api/auth/login", "", map[string]string{
		"email": " HOUSE@clinic.io ", "password": "secret123",
	}, http.StatusOK, &login)
	require.NotEmpty(t, login.Token)
	assert.Equal(t, registered.User.ID, login.User.ID)

	var me userPayload
	api.call(http.MethodGet, "/api/auth/me", login.Token, nil, http.StatusOK, &me)
	assert.Equal(t, registered.User.ID, me.ID)
	assert.Equal(t, "DOCTOR", me.Role)

	env := api.call(http.MethodPost, "/api/auth/register", "", map[string]string{
		"name": "Impostor", "email": "house@clinic.io", "password": "secret123",
	}, http.StatusConflict, nil)
	assert.Equal(t, "EMAIL_EXISTS", env.Error.Code)
}

func TestAPI_RegisterValidation(t *testing.T) {
	api := newTestAPI(t)

	env := api.call(http.MethodPost, "/api/auth/register", "", map[string]string{
		"email": "not-an-email", "password": "secret123",
	}, http.StatusBadRequest, nil)
	assert.False(t, env.Success)
	assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
	assert.Contains(t, env.Error.Details, "name is required")
}

func TestAPI_LoginFailuresAreIndistinguishable(t *testing.T) {
	api := newTestAPI(t)
	api.registerAndLogin("Pat", "pat@example.com", "PATIENT", "")

	wrongPassword := api.call(http.MethodPost, "/api/auth/login", "", map[string]string{
		"email": "pat@example.com", "password": "nope-nope",
	}, http.StatusUnauthorized, nil)
	unknownEmail := api.call(http.MethodPost, "/api/auth/login", "", map[string]string{
		"email": "ghost@example.com", "password": "nope-nope",
	}, http.StatusUnauthorized, nil)

	assert.Equal(t, "INVALID_CREDENTIALS", wrongPassword.Error.Code)
	assert.Equal(t, wrongPassword.Error, unknownEmail.Error)
	assert.Equal(t, wrongPassword.Message, unknownEmail.Message)
}

func TestAPI_SessionGate(t *testing.T) {
	api := newTestAPI(t)

	env := api.call(http.MethodGet, "/api/auth/me", "", nil, http.StatusUnauthorized, nil)
	assert.Equal(t, "NO_TOKEN", env.Error.Code)

	env = api.call(http.MethodGet, "/api/conversations", "garbage", nil, http.StatusUnauthorized, nil)
	assert.Equal(t, "INVALID_TOKEN", env.Error.Code)
}

func TestAPI_PasswordResetIsSingleUse(t *testing.T) {
	api := newTestAPI(t)
	api.registerAndLogin("Pat", "pat@example.com", "PATIENT", "")

	var forgot struct {
		Message string `json:"message"`
	}
	api.call(http.MethodPost, "/api/auth/forgot-password", "", map[string]string{"email": "pat@example.com"}, http.StatusOK, &forgot)
	assert.Equal(t, "Password reset email sent", forgot.Message)
	secret := api.secrets.latest("pat@example.com")
	require.NotEmpty(t, secret)

	reset := map[string]string{"email": "pat@example.com", "token": secret, "newPassword": "brand-new-pw"}
	api.call(http.MethodPost, "/api/auth/reset-password", "", reset, http.StatusOK, nil)

	env := api.call(http.MethodPost, "/api/auth/reset-password", "", reset, http.StatusBadRequest, nil)
	assert.Equal(t, "INVALID_RESET_TOKEN", env.Error.Code)

	api.call(http.MethodPost, "/api/auth/login", "", map[string]string{
		"email": "pat@example.com", "password": "brand-new-pw",
	}, http.StatusOK, nil)
	api.call(http.MethodPost, "/api/auth/login", "", map[string]string{
		"email": "pat@example.com", "password": "secret123",
	}, http.StatusUnauthorized, nil)

	env = api.call(http.MethodPost, "/api/auth/forgot-password", "", map[string]string{"email": "ghost@example.com"}, http.StatusNotFound, nil)
	assert.Equal(t, "USER_NOT_FOUND", env.Error.Code)
}

func TestAPI_ConversationFlow(t *testing.T) {
	api := newTestAPI(t)
	doctor := api.registerAndLogin("Dr. Grey", "grey@clinic.io", "DOCTOR", "Surgery")
	patient := api.registerAndLogin("Pat", "pat@example.com", "PATIENT", "")
	outsider := api.registerAndLogin("Olive", "olive@example.com", "PATIENT", "")

	var first, second []conversationPayload
	api.call(http.MethodGet, "/api/conversations", patient.Token, nil, http.StatusOK, &first)
	api.call(http.MethodGet, "/api/conversations", patient.Token, nil, http.StatusOK, &second)
	require.Len(t, first, 1)
	require.Len(t, second, 1)
	assert.Equal(t, first[0].ID, second[0].ID)
	assert.Equal(t, doctor.User.ID, first[0].Participant.ID)
	assert.Equal(t, "Start a conversation", first[0].LastMessage)

	conversationID := first[0].ID
	messagesPath := "/api/conversations/" + conversationID + "/messages"

	env := api.call(http.MethodPost, messagesPath, outsider.Token, map[string]string{"text": "hi"}, http.StatusForbidden, nil)
	assert.Equal(t, "NOT_A_PARTICIPANT", env.Error.Code)

	var sent struct {
		ID       string `json:"id"`
		SenderID string `json:"senderId"`
		Text     string `json:"text"`
	}
	api.call(http.MethodPost, messagesPath, patient.Token, map[string]string{"text": "Hello doctor"}, http.StatusCreated, &sent)
	assert.Equal(t, patient.User.ID, sent.SenderID)

	var doctorView []conversationPayload
	api.call(http.MethodGet, "/api/conversations", doctor.Token, nil, http.StatusOK, &doctorView)
	require.Len(t, doctorView, 2)
	var withPatient *conversationPayload
	for i := range doctorView {
		if doctorView[i].ID == conversationID {
			withPatient = &doctorView[i]
		}
	}
	require.NotNil(t, withPatient)
	assert.Equal(t, int64(1), withPatient.UnreadCount)
	assert.Equal(t, "Hello doctor", withPatient.LastMessage)

	var count struct {
		Count int64 `json:"count"`
	}
	api.call(http.MethodGet, "/api/notifications/count", doctor.Token, nil, http.StatusOK, &count)
	assert.Equal(t, int64(2), count.Count)

	var notifications []struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	}
	api.call(http.MethodGet, "/api/notifications", doctor.Token, nil, http.StatusOK, &notifications)
	require.Len(t, notifications, 1)
	assert.Equal(t, "MESSAGE", notifications[0].Type)
	assert.Equal(t, "New message from Pat", notifications[0].Message)
	require.Len(t, api.publisher.events, 1)

	var thread []struct {
		Text   string `json:"text"`
		IsRead bool   `json:"isRead"`
	}
	api.call(http.MethodGet, messagesPath, doctor.Token, nil, http.StatusOK, &thread)
	require.Len(t, thread, 1)
	assert.True(t, thread[0].IsRead)

	api.call(http.MethodGet, "/api/conversations", doctor.Token, nil, http.StatusOK, &doctorView)
	for _, conv := range doctorView {
		assert.Equal(t, int64(0), conv.UnreadCount)
	}

	api.call(http.MethodPut, "/api/notifications/read", doctor.Token, nil, http.StatusOK, nil)
	api.call(http.MethodGet, "/api/notifications/count", doctor.Token, nil, http.StatusOK, &count)
	assert.Equal(t, int64(0), count.Count)
}

func TestAPI_AppointmentsAndReminders(t *testing.T) {
	api := newTestAPI(t)
	doctor := api.registerAndLogin("Dr. Grey", "grey@clinic.io", "DOCTOR", "")
	patient := api.registerAndLogin("Pat", "pat@example.com", "PATIENT", "")

	env := api.call(http.MethodPost, "/api/appointments", patient.Token, map[string]string{
		"patientId": patient.User.ID, "date": "2025-03-01", "time": "09:30",
	}, http.StatusForbidden, nil)
	assert.Equal(t, "DOCTOR_ONLY", env.Error.Code)

	var created struct {
		ID     string `json:"id"`
		Type   string `json:"type"`
		Status string `json:"status"`
	}
	api.call(http.MethodPost, "/api/appointments", doctor.Token, map[string]string{
		"patientId": patient.User.ID, "date": "2025-03-01", "time": "09:30",
	}, http.StatusCreated, &created)
	assert.Equal(t, "In-Person", created.Type)
	assert.Equal(t, "Scheduled", created.Status)

	env = api.call(http.MethodPost, "/api/appointments", doctor.Token, map[string]string{
		"patientId": patient.User.ID, "date": "03/01/2025", "time": "09:30",
	}, http.StatusBadRequest, nil)
	assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)

	var listed []struct {
		ID          string `json:"id"`
		PatientName string `json:"patientName"`
		DoctorName  string `json:"doctorName"`
	}
	api.call(http.MethodGet, "/api/appointments", patient.Token, nil, http.StatusOK, &listed)
	require.Len(t, listed, 1)
	assert.Equal(t, "Dr. Grey", listed[0].DoctorName)
	assert.Equal(t, "Pat", listed[0].PatientName)

	statusPath := "/api/appointments/" + created.ID + "/status"
	api.call(http.MethodPatch, statusPath, patient.Token, map[string]string{"status": "Cancelled"}, http.StatusForbidden, nil)
	var updated struct {
		Status string `json:"status"`
	}
	api.call(http.MethodPatch, statusPath, doctor.Token, map[string]string{"status": "Confirmed"}, http.StatusOK, &updated)
	assert.Equal(t, "Confirmed", updated.Status)

	env = api.call(http.MethodPost, "/api/reminders", patient.Token, map[string]string{
		"patientId": patient.User.ID, "medicationName": "Aspirin",
	}, http.StatusForbidden, nil)
	assert.Equal(t, "Only doctors can create reminders", env.Error.Details)

	api.call(http.MethodPost, "/api/reminders", doctor.Token, map[string]string{
		"patientId": patient.User.ID, "medicationName": "Aspirin", "dosage": "100mg", "frequency": "daily",
	}, http.StatusCreated, nil)

	var reminders []struct {
		MedicationName string `json:"medicationName"`
	}
	api.call(http.MethodGet, "/api/reminders", patient.Token, nil, http.StatusOK, &reminders)
	require.Len(t, reminders, 1)
	assert.Equal(t, "Aspirin", reminders[0].MedicationName)

	var notifications []struct {
		Type    string `json:"type"`
		Title   string `json:"title"`
		Message string `json:"message"`
	}
	api.call(http.MethodGet, "/api/notifications", patient.Token, nil, http.StatusOK, &notifications)
	require.Len(t, notifications, 2)
	types := []string{notifications[0].Type, notifications[1].Type}
	assert.ElementsMatch(t, []string{"APPOINTMENT", "REMINDER"}, types)
}

func TestAPI_Profiles(t *testing.T) {
	api := newTestAPI(t)
	doctor := api.registerAndLogin("Dr. Grey", "grey@clinic.io", "DOCTOR", "Cardiology")
	patient := api.registerAndLogin("Pat", "pat@example.com", "PATIENT", "")

	var doctorProfile struct {
		Personal struct {
			Name  string `json:"name"`
			Email string `json:"email"`
		} `json:"personal"`
		Professional struct {
			Specialty       string `json:"specialty"`
			ExperienceYears int    `json:"experienceYears"`
		} `json:"professional"`
		Clinic struct {
			Name string `json:"name"`
		} `json:"clinic"`
	}
	api.call(http.MethodGet, "/api/profiles/doctor", doctor.Token, nil, http.StatusOK, &doctorProfile)
	assert.Equal(t, "Cardiology", doctorProfile.Professional.Specialty)
	assert.Equal(t, "grey@clinic.io", doctorProfile.Personal.Email)

	var updated struct {
		Message string `json:"message"`
	}
	api.call(http.MethodPut, "/api/profiles/doctor", doctor.Token, map[string]any{
		"professional": map[string]any{"experienceYears": 12},
		"clinic":       map[string]any{"name": "Seattle Grace"},
	}, http.StatusOK, &updated)
	assert.Equal(t, "Profile updated successfully", updated.Message)

	api.call(http.MethodGet, "/api/profiles/doctor", doctor.Token, nil, http.StatusOK, &doctorProfile)
	assert.Equal(t, 12, doctorProfile.Professional.ExperienceYears)
	assert.Equal(t, "Seattle Grace", doctorProfile.Clinic.Name)
	assert.Equal(t, "Cardiology", doctorProfile.Professional.Specialty)

	env := api.call(http.MethodPut, "/api/profiles/doctor", doctor.Token, map[string]any{
		"personal": map[string]any{"email": "pat@example.com"},
	}, http.StatusConflict, nil)
	assert.Equal(t, "EMAIL_EXISTS", env.Error.Code)

	api.call(http.MethodGet, "/api/profiles/doctor", patient.Token, nil, http.StatusForbidden, nil)

	api.call(http.MethodPut, "/api/profiles/patient", patient.Token, map[string]any{
		"personal": map[string]any{"phone": "555-0101", "dob": "1990-04-02"},
		"medical":  map[string]any{"allergies": "Penicillin", "conditions": "Asthma"},
	}, http.StatusOK, nil)

	var patientProfile struct {
		Personal struct {
			Phone string `json:"phone"`
			DOB   string `json:"dob"`
		} `json:"personal"`
		Medical struct {
			Allergies  string `json:"allergies"`
			Conditions string `json:"conditions"`
		} `json:"medical"`
	}
	api.call(http.MethodGet, "/api/profiles/patient", patient.Token, nil, http.StatusOK, &patientProfile)
	assert.Equal(t, "555-0101", patientProfile.Personal.Phone)
	assert.Equal(t, "1990-04-02", patientProfile.Personal.DOB)
	assert.Equal(t, "Penicillin", patientProfile.Medical.Allergies)
	assert.Equal(t, "Asthma", patientProfile.Medical.Conditions)

	var directory []struct {
		ID    string `json:"id"`
		Email string `json:"email"`
		Phone string `json:"phone"`
	}
	api.call(http.MethodGet, "/api/doctor/patients", doctor.Token, nil, http.StatusOK, &directory)
	require.Len(t, directory, 1)
	assert.Equal(t, patient.User.ID, directory[0].ID)
	assert.Equal(t, "555-0101", directory[0].Phone)

	api.call(http.MethodGet, "/api/doctor/patients", patient.Token, nil, http.StatusForbidden, nil)
}

var pngHeader = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

func TestAPI_DoctorQRCode(t *testing.T) {
	api := newTestAPI(t)
	doctor := api.registerAndLogin("Dr. Grey", "grey@clinic.io", "DOCTOR", "")
	patient := api.registerAndLogin("Pat", "pat@example.com", "PATIENT", "")

	rec := api.do(http.MethodGet, "/api/profiles/doctor/qrcode", doctor.Token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.True(t, bytes.HasPrefix(rec.Body.Bytes(), pngHeader))

	rec = api.do(http.MethodGet, "/api/profiles/doctor/qrcode", patient.Token, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestAPI_AvatarUploadAndServe(t *testing.T) {
	api := newTestAPI(t)
	patient := api.registerAndLogin("Pat", "pat@example.com", "PATIENT", "")

	image := append(append([]byte{}, pngHeader...), bytes.Repeat([]byte{0x01}, 512)...)

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	partHeader := textproto.MIMEHeader{}
	partHeader.Set("Content-Disposition", `form-data; name="avatar"; filename="me.png"`)
	partHeader.Set("Content-Type", "image/png")
	part, err := writer.CreatePart(partHeader)
	require.NoError(t, err)
	_, err = part.Write(image)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPut, router.AvatarUploadPath, &body)
	req.Header.Set(echo.HeaderContentType, writer.FormDataContentType())
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+patient.Token)
	rec := httptest.NewRecorder()
	api.echo.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	var identity userPayload
	require.NoError(t, json.Unmarshal(env.Data, &identity))
	require.True(t, strings.HasPrefix(identity.Avatar, "http://medlink.test/api/avatars/"))

	key := identity.Avatar[strings.LastIndex(identity.Avatar, "/")+1:]
	served := api.do(http.MethodGet, "/api/avatars/"+key, "", nil)
	require.Equal(t, http.StatusOK, served.Code)
	assert.Equal(t, "image/png", served.Header().Get(echo.HeaderContentType))
	assert.Equal(t, image, served.Body.Bytes())

	var me userPayload
	api.call(http.MethodGet, "/api/auth/me", patient.Token, nil, http.StatusOK, &me)
	assert.Equal(t, identity.Avatar, me.Avatar)

	missing := api.call(http.MethodGet, "/api/avatars/does-not-exist.png", "", nil, http.StatusNotFound, nil)
	assert.Equal(t, "AVATAR_NOT_FOUND", missing.Error.Code)
}

func TestAPI_Devices(t *testing.T) {
	api := newTestAPI(t)
	patient := api.registerAndLogin("Pat", "pat@example.com", "PATIENT", "")
	other := api.registerAndLogin("Olive", "olive@example.com", "PATIENT", "")

	var device struct {
		ID       string `json:"id"`
		Platform string `json:"platform"`
	}
	api.call(http.MethodPost, "/api/devices", patient.Token, map[string]string{
		"fcmToken": "token-1", "deviceId": "pixel-8", "platform": "Android",
	}, http.StatusCreated, &device)
	assert.Equal(t, "android", device.Platform)

	var devices []struct {
		ID string `json:"id"`
	}
	api.call(http.MethodGet, "/api/devices", patient.Token, nil, http.StatusOK, &devices)
	require.Len(t, devices, 1)

	api.call(http.MethodPut, "/api/devices/"+device.ID+"/token", patient.Token, map[string]string{"fcmToken": "token-2"}, http.StatusOK, nil)

	env := api.call(http.MethodDelete, "/api/devices/"+device.ID, other.Token, nil, http.StatusForbidden, nil)
	assert.Equal(t, "DEVICE_OWNERSHIP_VIOLATION", env.Error.Code)

	api.call(http.MethodDelete, "/api/devices/"+device.ID, patient.Token, nil, http.StatusOK, nil)
	api.call(http.MethodGet, "/api/devices", patient.Token, nil, http.StatusOK, &devices)
	assert.Empty(t, devices)
}

func TestAPI_UnknownRoute(t *testing.T) {
	api := newTestAPI(t)

	env := api.call(http.MethodGet, "/nope", "", nil, http.StatusNotFound, nil)
	assert.Equal(t, "NOT_FOUND", env.Error.Code)
}
