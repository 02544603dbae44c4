package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"medlink/internal/domain/constants"
	"medlink/internal/domain/entity"
	domainerrors "medlink/internal/domain/errors"
	"medlink/internal/domain/repository"
	"medlink/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type reminderService struct {
	reminderRepo repository.ReminderRepository
	userRepo     repository.UserRepository
	notifier     usecase.Notifier
	now          func() time.Time
	logger       *slog.Logger
}

// ReminderServiceParams holds dependencies for ReminderService, injected by Fx.
type ReminderServiceParams struct {
	fx.In

	ReminderRepo repository.ReminderRepository
	UserRepo     repository.UserRepository
	Notifier     usecase.Notifier
	Logger       *slog.Logger
}

// NewReminderService creates a new reminder service instance
func NewReminderService(params ReminderServiceParams) usecase.ReminderUsecase {
	return &reminderService{
		reminderRepo: params.ReminderRepo,
		userRepo:     params.UserRepo,
		notifier:     params.Notifier,
		now:          time.Now,
		logger:       params.Logger,
	}
}

// ListReminders returns reminders a doctor created, or those assigned to a patient, newest first.
func (s *reminderService) ListReminders(ctx context.Context, caller *entity.Identity) ([]*entity.MedicationReminder, error) {
	var (
		reminders []*entity.MedicationReminder
		err       error
	)
	if caller.Role == entity.RoleDoctor {
		reminders, err = s.reminderRepo.ListByDoctor(ctx, caller.ID)
	} else {
		reminders, err = s.reminderRepo.ListByPatient(ctx, caller.ID)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to list reminders")
	}

	return reminders, nil
}

// CreateReminder stores a medication reminder starting now and notifies the patient.
func (s *reminderService) CreateReminder(ctx context.Context, caller *entity.Identity, input *usecase.CreateReminderInput) (*entity.MedicationReminder, error) {
	if caller.Role != entity.RoleDoctor {
		return nil, domainerrors.ErrDoctorOnly.WithDetails("Only doctors can create reminders")
	}

	medication := strings.TrimSpace(input.MedicationName)
	if medication == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("medicationName is required")
	}

	patient, err := loadPatient(ctx, s.userRepo, input.PatientID)
	if err != nil {
		return nil, err
	}

	now := s.now().UTC()
	reminder := &entity.MedicationReminder{
		ID:             uuid.Must(uuid.NewV7()),
		DoctorID:       caller.ID,
		PatientID:      patient.ID,
		MedicationName: medication,
		Dosage:         input.Dosage,
		Frequency:      input.Frequency,
		Instructions:   input.Instructions,
		StartDate:      now,
		CreatedAt:      now,
	}

	if err := s.reminderRepo.Create(ctx, reminder); err != nil {
		return nil, errors.Wrap(err, "failed to create reminder")
	}
	reminder.Doctor = caller
	reminder.Patient = patient.Identity()

	s.logger.InfoContext(ctx, "Reminder created",
		slog.String("reminder_id", reminder.ID.String()),
		slog.String("patient_id", patient.ID.String()),
	)

	if _, err := s.notifier.Notify(ctx, &usecase.NotifyInput{
		RecipientID: patient.ID,
		Type:        entity.NotificationTypeReminder,
		Title:       "New Medication Reminder",
		Message:     fmt.Sprintf("Dr. %s added a reminder for %s", caller.Name, medication),
		SourceType:  constants.SourceTypeReminder,
		SourceID:    reminder.ID,
	}); err != nil {
		return nil, errors.Wrap(err, "reminder created but notification failed")
	}

	return reminder, nil
}
