// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// DefaultSpecialty is assigned to doctors who register without naming one.
const DefaultSpecialty = "General Practitioner"

// User is the core entity in the system, representing a single account holder,
// either a patient or a doctor.
type User struct {
	ID             uuid.UUID       // The Global Unique Identifier (GUID) for the user.
	Email          string          // Normalized (trimmed, lowercased) login email, unique across users.
	Name           string          // The user's display name.
	PasswordHash   string          // bcrypt digest of the password. Never leaves the service layer.
	Role           Role            // PATIENT or DOCTOR.
	AvatarURL      string          // Public URL of the uploaded avatar, empty when none.
	DoctorProfile  *DoctorProfile  // Set only for doctors.
	PatientProfile *PatientProfile // Set only for patients.
	CreatedAt      time.Time       // Timestamp of when this user account was created.
	UpdatedAt      time.Time       // Timestamp of the last modification to this user's data.
}

// Identity returns the safe projection of the user.
func (u *User) Identity() *Identity {
	return &Identity{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role,
		AvatarURL: u.AvatarURL,
	}
}

// Identity is what the session gate attaches to an authenticated request.
// It never carries credentials.
type Identity struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      Role      `json:"role"`
	AvatarURL string    `json:"avatar,omitempty"`
}

// DoctorProfile holds data specific to the doctor role.
type DoctorProfile struct {
	UserID          uuid.UUID // Foreign Key that links this profile to a core User entity.
	Specialty       string
	LicenseNumber   string
	ExperienceYears int
	ClinicName      string
	ClinicAddress   string
	UpdatedAt       time.Time
}

// PatientProfile holds data specific to the patient role.
type PatientProfile struct {
	UserID            uuid.UUID // Foreign Key that links this profile to a core User entity.
	Phone             string
	DateOfBirth       *time.Time
	EmergencyContact  string
	MedicalHistory    string
	Allergies         string
	ChronicConditions string
	UpdatedAt         time.Time
}
