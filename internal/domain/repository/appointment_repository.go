package repository

import (
	"context"
	"errors"

	"medlink/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrAppointmentNotFound is returned when an appointment is not found.
var ErrAppointmentNotFound = errors.New("appointment not found")

// AppointmentRepository persists appointments.
type AppointmentRepository interface {
	Create(ctx context.Context, appointment *entity.Appointment) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Appointment, error)

	// ListByDoctor and ListByPatient return appointments ordered by date then time,
	// with both participants' identities populated.
	ListByDoctor(ctx context.Context, doctorID uuid.UUID) ([]*entity.Appointment, error)
	ListByPatient(ctx context.Context, patientID uuid.UUID) ([]*entity.Appointment, error)

	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.AppointmentStatus) error
}

// ReminderRepository persists medication reminders.
type ReminderRepository interface {
	Create(ctx context.Context, reminder *entity.MedicationReminder) error

	// ListByDoctor and ListByPatient return reminders newest first with identities populated.
	ListByDoctor(ctx context.Context, doctorID uuid.UUID) ([]*entity.MedicationReminder, error)
	ListByPatient(ctx context.Context, patientID uuid.UUID) ([]*entity.MedicationReminder, error)
}
