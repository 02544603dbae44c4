package entity

import (
	"time"

	"github.com/google/uuid"
)

// AppointmentStatus is the lifecycle state of an appointment.
type AppointmentStatus string

const (
	AppointmentStatusScheduled AppointmentStatus = "Scheduled"
	AppointmentStatusConfirmed AppointmentStatus = "Confirmed"
	AppointmentStatusCompleted AppointmentStatus = "Completed"
	AppointmentStatusCancelled AppointmentStatus = "Cancelled"
	AppointmentStatusPending   AppointmentStatus = "PENDING"
)

// IsValid checks if the status is one of the known values.
func (s AppointmentStatus) IsValid() bool {
	switch s {
	case AppointmentStatusScheduled, AppointmentStatusConfirmed, AppointmentStatusCompleted,
		AppointmentStatusCancelled, AppointmentStatusPending:
		return true
	default:
		return false
	}
}

// DefaultAppointmentType is used when the doctor does not name one.
const DefaultAppointmentType = "In-Person"

// Appointment is booked by a doctor for a patient.
// Date is YYYY-MM-DD and Time is HH:mm, both in the clinic's local time.
type Appointment struct {
	ID        uuid.UUID
	DoctorID  uuid.UUID
	PatientID uuid.UUID
	Date      string
	Time      string
	Type      string
	Status    AppointmentStatus
	Notes     string
	Doctor    *Identity // populated on list
	Patient   *Identity // populated on list
	CreatedAt time.Time
	UpdatedAt time.Time
}

// MedicationReminder is a prescription note a doctor assigns to a patient.
type MedicationReminder struct {
	ID             uuid.UUID
	DoctorID       uuid.UUID
	PatientID      uuid.UUID
	MedicationName string
	Dosage         string
	Frequency      string
	Instructions   string
	StartDate      time.Time
	EndDate        *time.Time
	Doctor         *Identity // populated on list
	Patient        *Identity // populated on list
	CreatedAt      time.Time
}
