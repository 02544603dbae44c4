package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. IDs are UUIDv7 generated by the application.
type UserModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email        string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	Name         string    `gorm:"type:varchar(100);not null"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	Role         string    `gorm:"type:varchar(20);not null;index"`
	AvatarURL    string    `gorm:"type:varchar(512)"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	DoctorProfile  *DoctorProfileModel  `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	PatientProfile *PatientProfileModel `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	ResetTokens    []ResetTokenModel    `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// DoctorProfileModel mirrors the 'doctor_profiles' table. UserID references users.id (UUID).
type DoctorProfileModel struct {
	UserID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Specialty       string    `gorm:"type:varchar(100);not null"`
	LicenseNumber   string    `gorm:"type:varchar(100)"`
	ExperienceYears int
	ClinicName      string `gorm:"type:varchar(255)"`
	ClinicAddress   string `gorm:"type:text"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (DoctorProfileModel) TableName() string {
	return "doctor_profiles"
}

// PatientProfileModel mirrors the 'patient_profiles' table. UserID references users.id (UUID).
type PatientProfileModel struct {
	UserID            uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Phone             string     `gorm:"type:varchar(50)"`
	DateOfBirth       *time.Time `gorm:"column:dob"`
	EmergencyContact  string     `gorm:"type:varchar(255)"`
	MedicalHistory    string     `gorm:"type:text"`
	Allergies         string     `gorm:"type:text"`
	ChronicConditions string     `gorm:"type:text"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// TableName explicitly sets the table name for GORM.
func (PatientProfileModel) TableName() string {
	return "patient_profiles"
}

// ResetTokenModel mirrors the 'reset_tokens' table. Rows go away with their user.
type ResetTokenModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	TokenHash string    `gorm:"type:varchar(255);not null"`
	ExpiresAt time.Time `gorm:"not null;index"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (ResetTokenModel) TableName() string {
	return "reset_tokens"
}
