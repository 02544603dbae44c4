// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"medlink/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for user persistence.
var (
	// ErrUserNotFound is returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")
	// ErrProfileNotFound is returned when the role profile of a user is missing.
	ErrProfileNotFound = errors.New("profile not found")
)

// UserRepository defines the standard operations for user persistence.
// The application layer will depend on this interface, not the concrete implementation.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves a single user by their normalized email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByRole lists every user of the given role with the role profile loaded, ordered by name.
	FindByRole(ctx context.Context, role entity.Role) ([]*entity.User, error)

	// Create persists a new user together with whichever profile is set on it.
	Create(ctx context.Context, user *entity.User) error

	// Update modifies the name, email and avatar of an existing user.
	Update(ctx context.Context, user *entity.User) error

	// UpdatePassword replaces the stored password digest.
	UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error
}

// ProfileRepository covers the role-specific profile rows.
type ProfileRepository interface {
	FindDoctorProfile(ctx context.Context, userID uuid.UUID) (*entity.DoctorProfile, error)
	UpdateDoctorProfile(ctx context.Context, profile *entity.DoctorProfile) error
	FindPatientProfile(ctx context.Context, userID uuid.UUID) (*entity.PatientProfile, error)
	UpdatePatientProfile(ctx context.Context, profile *entity.PatientProfile) error
}
