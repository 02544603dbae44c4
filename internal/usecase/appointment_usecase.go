package usecase

import (
	"context"

	"medlink/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateAppointmentInput defines the data a doctor supplies to book an appointment.
type CreateAppointmentInput struct {
	PatientID uuid.UUID
	Date      string // YYYY-MM-DD
	Time      string // HH:mm
	Type      string
	Notes     string
}

// CreateReminderInput defines the data a doctor supplies for a medication reminder.
type CreateReminderInput struct {
	PatientID      uuid.UUID
	MedicationName string
	Dosage         string
	Frequency      string
	Instructions   string
}

// AppointmentUsecase defines appointment booking and listing.
type AppointmentUsecase interface {
	ListAppointments(ctx context.Context, caller *entity.Identity) ([]*entity.Appointment, error)
	CreateAppointment(ctx context.Context, caller *entity.Identity, input *CreateAppointmentInput) (*entity.Appointment, error)
	UpdateStatus(ctx context.Context, caller *entity.Identity, appointmentID uuid.UUID, status entity.AppointmentStatus) (*entity.Appointment, error)
}

// ReminderUsecase defines medication reminder management.
type ReminderUsecase interface {
	ListReminders(ctx context.Context, caller *entity.Identity) ([]*entity.MedicationReminder, error)
	CreateReminder(ctx context.Context, caller *entity.Identity, input *CreateReminderInput) (*entity.MedicationReminder, error)
}
