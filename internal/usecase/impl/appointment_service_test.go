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
	"medlink/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type appointmentServiceFixtures struct {
	service          *appointmentService
	appointmentRepo  *mockRepo.MockAppointmentRepository
	userRepo         *mockRepo.MockUserRepository
	notificationRepo *mockRepo.MockNotificationRepository
	publisher        *mockSvc.MockEventPublisher
	now              time.Time
}

func createTestAppointmentService(t *testing.T) appointmentServiceFixtures {
	fixtures := appointmentServiceFixtures{
		appointmentRepo:  mockRepo.NewMockAppointmentRepository(t),
		userRepo:         mockRepo.NewMockUserRepository(t),
		notificationRepo: mockRepo.NewMockNotificationRepository(t),
		publisher:        mockSvc.NewMockEventPublisher(t),
		now:              time.Date(2026, 6, 1, 8, 0, 0, 0, time.UTC),
	}

	svc := NewAppointmentService(AppointmentServiceParams{
		AppointmentRepo: fixtures.appointmentRepo,
		UserRepo:        fixtures.userRepo,
		Notifier: NewNotifier(NotifierParams{
			NotificationRepo: fixtures.notificationRepo,
			Publisher:        fixtures.publisher,
			Logger:           newDiscardLogger(),
		}),
		Logger: newDiscardLogger(),
	}).(*appointmentService)
	svc.now = func() time.Time { return fixtures.now }
	fixtures.service = svc

	return fixtures
}

func TestAppointmentService_CreateAppointment_NotifiesPatient(t *testing.T) {
	f := createTestAppointmentService(t)
	ctx := context.Background()

	doctor := &entity.Identity{ID: uuid.New(), Name: "House", Role: entity.RoleDoctor}
	patient := &entity.User{ID: uuid.New(), Name: "Pat", Role: entity.RolePatient}

	f.userRepo.EXPECT().FindByID(ctx, patient.ID).Return(patient, nil)
	f.appointmentRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Appointment")).Return(nil)

	var notification *entity.Notification
	f.notificationRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Notification")).
		Run(func(_ context.Context, n *entity.Notification) { notification = n }).
		Return(true, nil)
	f.publisher.EXPECT().PublishNotificationEvent(ctx, mock.Anything).Return(nil)

	appointment, err := f.service.CreateAppointment(ctx, doctor, &usecase.CreateAppointmentInput{
		PatientID: patient.ID,
		Date:      "2026-06-10",
		Time:      "09:30",
	})
	require.NoError(t, err)

	assert.Equal(t, doctor.ID, appointment.DoctorID)
	assert.Equal(t, patient.ID, appointment.PatientID)
	assert.Equal(t, entity.AppointmentStatusScheduled, appointment.Status)
	assert.Equal(t, entity.DefaultAppointmentType, appointment.Type)
	assert.Equal(t, "Pat", appointment.Patient.Name)

	require.NotNil(t, notification)
	assert.Equal(t, patient.ID, notification.UserID)
	assert.Equal(t, entity.NotificationTypeAppointment, notification.Type)
	assert.Equal(t, constants.SourceTypeAppointment, notification.SourceType)
	assert.Equal(t, appointment.ID, notification.SourceID)
	assert.Equal(t, "New appointment scheduled for 2026-06-10 at 09:30 (In-Person)", notification.Message)
}

func TestAppointmentService_CreateAppointment_Rejections(t *testing.T) {
	doctor := &entity.Identity{ID: uuid.New(), Role: entity.RoleDoctor}

	tests := []struct {
		name   string
		caller *entity.Identity
		input  usecase.CreateAppointmentInput
		code   string
	}{
		{
			name:   "patient caller",
			caller: &entity.Identity{ID: uuid.New(), Role: entity.RolePatient},
			input:  usecase.CreateAppointmentInput{Date: "2026-06-10", Time: "09:30"},
			code:   "DOCTOR_ONLY",
		},
		{
			name:   "bad date",
			caller: doctor,
			input:  usecase.CreateAppointmentInput{Date: "10/06/2026", Time: "09:30"},
			code:   "VALIDATION_FAILED",
		},
		{
			name:   "bad time",
			caller: doctor,
			input:  usecase.CreateAppointmentInput{Date: "2026-06-10", Time: "9.30am"},
			code:   "VALIDATION_FAILED",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := createTestAppointmentService(t)

			_, err := f.service.CreateAppointment(context.Background(), tt.caller, &tt.input)
			requireAppError(t, err, tt.code)
		})
	}
}

func TestAppointmentService_CreateAppointment_PatientLookup(t *testing.T) {
	doctor := &entity.Identity{ID: uuid.New(), Role: entity.RoleDoctor}

	t.Run("unknown patient", func(t *testing.T) {
		f := createTestAppointmentService(t)
		ctx := context.Background()
		patientID := uuid.New()
		f.userRepo.EXPECT().FindByID(ctx, patientID).Return(nil, repository.ErrUserNotFound)

		_, err := f.service.CreateAppointment(ctx, doctor, &usecase.CreateAppointmentInput{PatientID: patientID, Date: "2026-06-10", Time: "09:30"})
		appErr := requireAppError(t, err, "USER_NOT_FOUND")
		assert.Equal(t, http.StatusNotFound, appErr.HTTPCode())
	})

	t.Run("target is a doctor", func(t *testing.T) {
		f := createTestAppointmentService(t)
		ctx := context.Background()
		other := &entity.User{ID: uuid.New(), Role: entity.RoleDoctor}
		f.userRepo.EXPECT().FindByID(ctx, other.ID).Return(other, nil)

		_, err := f.service.CreateAppointment(ctx, doctor, &usecase.CreateAppointmentInput{PatientID: other.ID, Date: "2026-06-10", Time: "09:30"})
		requireAppError(t, err, "INVALID_INPUT")
	})
}

func TestAppointmentService_ListAppointments_ByRole(t *testing.T) {
	f := createTestAppointmentService(t)
	ctx := context.Background()
	doctor := &entity.Identity{ID: uuid.New(), Role: entity.RoleDoctor}
	patient := &entity.Identity{ID: uuid.New(), Role: entity.RolePatient}

	f.appointmentRepo.EXPECT().ListByDoctor(ctx, doctor.ID).Return([]*entity.Appointment{{ID: uuid.New()}}, nil)
	f.appointmentRepo.EXPECT().ListByPatient(ctx, patient.ID).Return([]*entity.Appointment{}, nil)

	doctorList, err := f.service.ListAppointments(ctx, doctor)
	require.NoError(t, err)
	assert.Len(t, doctorList, 1)

	patientList, err := f.service.ListAppointments(ctx, patient)
	require.NoError(t, err)
	assert.Empty(t, patientList)
}

func TestAppointmentService_UpdateStatus(t *testing.T) {
	doctor := &entity.Identity{ID: uuid.New(), Role: entity.RoleDoctor}

	t.Run("owner confirms", func(t *testing.T) {
		f := createTestAppointmentService(t)
		ctx := context.Background()
		appointment := &entity.Appointment{ID: uuid.New(), DoctorID: doctor.ID, Status: entity.AppointmentStatusScheduled}

		f.appointmentRepo.EXPECT().FindByID(ctx, appointment.ID).Return(appointment, nil)
		f.appointmentRepo.EXPECT().UpdateStatus(ctx, appointment.ID, entity.AppointmentStatusConfirmed).Return(nil)

		updated, err := f.service.UpdateStatus(ctx, doctor, appointment.ID, entity.AppointmentStatusConfirmed)
		require.NoError(t, err)
		assert.Equal(t, entity.AppointmentStatusConfirmed, updated.Status)
	})

	t.Run("other doctor", func(t *testing.T) {
		f := createTestAppointmentService(t)
		ctx := context.Background()
		appointment := &entity.Appointment{ID: uuid.New(), DoctorID: uuid.New()}
		f.appointmentRepo.EXPECT().FindByID(ctx, appointment.ID).Return(appointment, nil)

		_, err := f.service.UpdateStatus(ctx, doctor, appointment.ID, entity.AppointmentStatusCancelled)
		requireAppError(t, err, "FORBIDDEN")
	})

	t.Run("unknown status", func(t *testing.T) {
		f := createTestAppointmentService(t)

		_, err := f.service.UpdateStatus(context.Background(), doctor, uuid.New(), entity.AppointmentStatus("Postponed"))
		requireAppError(t, err, "VALIDATION_FAILED")
	})

	t.Run("missing appointment", func(t *testing.T) {
		f := createTestAppointmentService(t)
		ctx := context.Background()
		id := uuid.New()
		f.appointmentRepo.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrAppointmentNotFound)

		_, err := f.service.UpdateStatus(ctx, doctor, id, entity.AppointmentStatusCompleted)
		requireAppError(t, err, "APPOINTMENT_NOT_FOUND")
	})
}
