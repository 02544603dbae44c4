package usecase

import (
	"context"
	"time"

	"medlink/internal/domain/entity"
)

// PersonalInput updates the account fields shared by both roles. Nil fields are left unchanged.
type PersonalInput struct {
	Name  *string
	Email *string
}

// UpdateDoctorProfileInput updates a doctor's account and professional data.
type UpdateDoctorProfileInput struct {
	Personal        *PersonalInput
	Specialty       *string
	LicenseNumber   *string
	ExperienceYears *int
	ClinicName      *string
	ClinicAddress   *string
}

// UpdatePatientProfileInput updates a patient's account and medical data.
type UpdatePatientProfileInput struct {
	Personal          *PersonalInput
	Phone             *string
	DateOfBirth       *time.Time
	EmergencyContact  *string
	MedicalHistory    *string
	Allergies         *string
	ChronicConditions *string
}

// AvatarUpload is an uploaded image file.
type AvatarUpload struct {
	Filename    string
	ContentType string
	Data        []byte
}

// Avatar is a stored avatar image.
type Avatar struct {
	ContentType string
	Data        []byte
}

// ProfileUsecase defines role profile management and the doctor-facing directory.
type ProfileUsecase interface {
	GetDoctorProfile(ctx context.Context, caller *entity.Identity) (*entity.User, error)
	UpdateDoctorProfile(ctx context.Context, caller *entity.Identity, input *UpdateDoctorProfileInput) (*entity.User, error)
	GetPatientProfile(ctx context.Context, caller *entity.Identity) (*entity.User, error)
	UpdatePatientProfile(ctx context.Context, caller *entity.Identity, input *UpdatePatientProfileInput) (*entity.User, error)

	UploadAvatar(ctx context.Context, caller *entity.Identity, upload *AvatarUpload) (*entity.Identity, error)
	GetAvatar(ctx context.Context, key string) (*Avatar, error)

	// DoctorContactQR renders a PNG QR code patients scan to reach the doctor.
	DoctorContactQR(ctx context.Context, caller *entity.Identity) ([]byte, error)

	// ListPatients is the patient directory shown to doctors.
	ListPatients(ctx context.Context, caller *entity.Identity) ([]*entity.User, error)
}
