package model

import (
	"time"

	"github.com/google/uuid"
)

// AppointmentModel mirrors the 'appointments' table.
type AppointmentModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	DoctorID  uuid.UUID `gorm:"type:uuid;not null;index"`
	PatientID uuid.UUID `gorm:"type:uuid;not null;index"`
	Date      string    `gorm:"column:appointment_date;type:varchar(10);not null"`
	Time      string    `gorm:"column:appointment_time;type:varchar(5);not null"`
	Type      string    `gorm:"type:varchar(50);not null"`
	Status    string    `gorm:"type:varchar(20);not null"`
	Notes     string    `gorm:"type:text"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Doctor  *UserModel `gorm:"foreignKey:DoctorID;constraint:OnDelete:CASCADE"`
	Patient *UserModel `gorm:"foreignKey:PatientID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (AppointmentModel) TableName() string {
	return "appointments"
}

// MedicationReminderModel mirrors the 'medication_reminders' table.
type MedicationReminderModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	DoctorID       uuid.UUID `gorm:"type:uuid;not null;index"`
	PatientID      uuid.UUID `gorm:"type:uuid;not null;index"`
	MedicationName string    `gorm:"type:varchar(255);not null"`
	Dosage         string    `gorm:"type:varchar(100);not null"`
	Frequency      string    `gorm:"type:varchar(100);not null"`
	Instructions   string    `gorm:"type:text"`
	StartDate      time.Time `gorm:"not null"`
	EndDate        *time.Time
	CreatedAt      time.Time

	Doctor  *UserModel `gorm:"foreignKey:DoctorID;constraint:OnDelete:CASCADE"`
	Patient *UserModel `gorm:"foreignKey:PatientID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (MedicationReminderModel) TableName() string {
	return "medication_reminders"
}
