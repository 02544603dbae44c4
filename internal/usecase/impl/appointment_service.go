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

const (
	appointmentDateLayout = "2006-01-02"
	appointmentTimeLayout = "15:04"
)

type appointmentService struct {
	appointmentRepo repository.AppointmentRepository
	userRepo        repository.UserRepository
	notifier        usecase.Notifier
	now             func() time.Time
	logger          *slog.Logger
}

// AppointmentServiceParams holds dependencies for AppointmentService, injected by Fx.
type AppointmentServiceParams struct {
	fx.In

	AppointmentRepo repository.AppointmentRepository
	UserRepo        repository.UserRepository
	Notifier        usecase.Notifier
	Logger          *slog.Logger
}

// NewAppointmentService creates a new appointment service instance
func NewAppointmentService(params AppointmentServiceParams) usecase.AppointmentUsecase {
	return &appointmentService{
		appointmentRepo: params.AppointmentRepo,
		userRepo:        params.UserRepo,
		notifier:        params.Notifier,
		now:             time.Now,
		logger:          params.Logger,
	}
}

func (s *appointmentService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// ListAppointments returns the doctor's or the patient's appointments, earliest first.
func (s *appointmentService) ListAppointments(ctx context.Context, caller *entity.Identity) ([]*entity.Appointment, error) {
	var (
		appointments []*entity.Appointment
		err          error
	)
	if caller.Role == entity.RoleDoctor {
		appointments, err = s.appointmentRepo.ListByDoctor(ctx, caller.ID)
	} else {
		appointments, err = s.appointmentRepo.ListByPatient(ctx, caller.ID)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to list appointments")
	}

	return appointments, nil
}

// CreateAppointment books an appointment for one of the doctor's patients and notifies the patient.
func (s *appointmentService) CreateAppointment(ctx context.Context, caller *entity.Identity, input *usecase.CreateAppointmentInput) (*entity.Appointment, error) {
	if caller.Role != entity.RoleDoctor {
		return nil, domainerrors.ErrDoctorOnly
	}

	date := strings.TrimSpace(input.Date)
	if _, err := time.Parse(appointmentDateLayout, date); err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("date must be YYYY-MM-DD")
	}
	clock := strings.TrimSpace(input.Time)
	if _, err := time.Parse(appointmentTimeLayout, clock); err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("time must be HH:mm")
	}

	patient, err := loadPatient(ctx, s.userRepo, input.PatientID)
	if err != nil {
		return nil, err
	}

	appointmentType := strings.TrimSpace(input.Type)
	if appointmentType == "" {
		appointmentType = entity.DefaultAppointmentType
	}

	now := s.now().UTC()
	appointment := &entity.Appointment{
		ID:        uuid.Must(uuid.NewV7()),
		DoctorID:  caller.ID,
		PatientID: patient.ID,
		Date:      date,
		Time:      clock,
		Type:      appointmentType,
		Status:    entity.AppointmentStatusScheduled,
		Notes:     input.Notes,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.appointmentRepo.Create(ctx, appointment); err != nil {
		return nil, errors.Wrap(err, "failed to create appointment")
	}
	appointment.Doctor = caller
	appointment.Patient = patient.Identity()

	s.log(ctx).Info("Appointment created",
		slog.String("appointment_id", appointment.ID.String()),
		slog.String("patient_id", patient.ID.String()),
	)

	if _, err := s.notifier.Notify(ctx, &usecase.NotifyInput{
		RecipientID: patient.ID,
		Type:        entity.NotificationTypeAppointment,
		Title:       "New Appointment",
		Message:     fmt.Sprintf("New appointment scheduled for %s at %s (%s)", date, clock, appointmentType),
		SourceType:  constants.SourceTypeAppointment,
		SourceID:    appointment.ID,
	}); err != nil {
		return nil, errors.Wrap(err, "appointment created but notification failed")
	}

	return appointment, nil
}

// UpdateStatus lets the owning doctor move an appointment through its lifecycle.
func (s *appointmentService) UpdateStatus(ctx context.Context, caller *entity.Identity, appointmentID uuid.UUID, status entity.AppointmentStatus) (*entity.Appointment, error) {
	if caller.Role != entity.RoleDoctor {
		return nil, domainerrors.ErrDoctorOnly
	}
	if !status.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown appointment status")
	}

	appointment, err := s.appointmentRepo.FindByID(ctx, appointmentID)
	if err != nil {
		if errors.Is(err, repository.ErrAppointmentNotFound) {
			return nil, domainerrors.ErrAppointmentNotFound
		}

		return nil, errors.Wrap(err, "failed to find appointment")
	}
	if appointment.DoctorID != caller.ID {
		return nil, domainerrors.ErrForbidden.WithDetails("appointment belongs to another doctor")
	}

	if err := s.appointmentRepo.UpdateStatus(ctx, appointmentID, status); err != nil {
		if errors.Is(err, repository.ErrAppointmentNotFound) {
			return nil, domainerrors.ErrAppointmentNotFound
		}

		return nil, errors.Wrap(err, "failed to update appointment status")
	}

	appointment.Status = status

	return appointment, nil
}

// loadPatient resolves the patient a doctor is acting on.
func loadPatient(ctx context.Context, userRepo repository.UserRepository, patientID uuid.UUID) (*entity.User, error) {
	patient, err := userRepo.FindByID(ctx, patientID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound.WrapMessage("patient not found")
		}

		return nil, errors.Wrap(err, "failed to find patient")
	}
	if patient.Role != entity.RolePatient {
		return nil, domainerrors.ErrInvalidInput.WithDetails("patientId does not belong to a patient")
	}

	return patient, nil
}
