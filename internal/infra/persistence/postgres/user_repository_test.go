package postgres

import (
	"testing"
	"time"

	"medlink/internal/domain/entity"
	domainerrors "medlink/internal/domain/errors"
	"medlink/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepository_CreateWithProfile(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	ctx := t.Context()

	doctor := seedUser(t, db, "Dr. House", entity.RoleDoctor)

	found, err := repo.FindByEmail(ctx, doctor.Email)
	require.NoError(t, err)
	assert.Equal(t, doctor.ID, found.ID)
	assert.Equal(t, entity.RoleDoctor, found.Role)
	require.NotNil(t, found.DoctorProfile)
	assert.Equal(t, entity.DefaultSpecialty, found.DoctorProfile.Specialty)
	assert.Nil(t, found.PatientProfile)

	profile, err := NewProfileRepository(db).FindDoctorProfile(ctx, doctor.ID)
	require.NoError(t, err)
	assert.Equal(t, doctor.ID, profile.UserID)
}

func TestUserRepository_DuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)

	first := seedUser(t, db, "Alice", entity.RolePatient)
	dup := &entity.User{
		ID:             uuid.Must(uuid.NewV7()),
		Email:          first.Email,
		Name:           "Alice Again",
		PasswordHash:   "hash",
		Role:           entity.RolePatient,
		PatientProfile: &entity.PatientProfile{},
	}

	err := repo.Create(t.Context(), dup)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrEmailExists)

	var count int64
	require.NoError(t, db.Table("patient_profiles").Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestUserRepository_FindByIDNotFound(t *testing.T) {
	db := newTestDB(t)

	_, err := NewUserRepository(db).FindByID(t.Context(), uuid.New())
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}

func TestUserRepository_FindByRole(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)

	seedUser(t, db, "Zed", entity.RolePatient)
	seedUser(t, db, "Amy", entity.RolePatient)
	seedUser(t, db, "Dr. Who", entity.RoleDoctor)

	patients, err := repo.FindByRole(t.Context(), entity.RolePatient)
	require.NoError(t, err)
	require.Len(t, patients, 2)
	assert.Equal(t, "Amy", patients[0].Name)
	assert.Equal(t, "Zed", patients[1].Name)
	assert.NotNil(t, patients[0].PatientProfile)
}

func TestUserRepository_UpdateAndPassword(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	ctx := t.Context()

	user := seedUser(t, db, "Bob", entity.RolePatient)
	other := seedUser(t, db, "Carol", entity.RolePatient)

	user.Name = "Robert"
	user.AvatarURL = "http://cdn/avatars/bob.png"
	user.UpdatedAt = time.Now().UTC()
	require.NoError(t, repo.Update(ctx, user))

	user.Email = other.Email
	assert.ErrorIs(t, repo.Update(ctx, user), domainerrors.ErrEmailExists)

	require.NoError(t, repo.UpdatePassword(ctx, user.ID, "new-hash"))
	assert.ErrorIs(t, repo.UpdatePassword(ctx, uuid.New(), "x"), repository.ErrUserNotFound)

	found, err := repo.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Robert", found.Name)
	assert.Equal(t, "http://cdn/avatars/bob.png", found.AvatarURL)
	assert.Equal(t, "new-hash", found.PasswordHash)
}

func TestProfileRepository_UpdatePatient(t *testing.T) {
	db := newTestDB(t)
	repo := NewProfileRepository(db)
	ctx := t.Context()

	patient := seedUser(t, db, "Pat", entity.RolePatient)
	dob := time.Date(1990, 5, 17, 0, 0, 0, 0, time.UTC)

	require.NoError(t, repo.UpdatePatientProfile(ctx, &entity.PatientProfile{
		UserID:      patient.ID,
		Phone:       "555-0100",
		DateOfBirth: &dob,
		Allergies:   "penicillin",
		UpdatedAt:   time.Now().UTC(),
	}))

	profile, err := repo.FindPatientProfile(ctx, patient.ID)
	require.NoError(t, err)
	assert.Equal(t, "555-0100", profile.Phone)
	assert.Equal(t, "penicillin", profile.Allergies)
	require.NotNil(t, profile.DateOfBirth)
	assert.True(t, dob.Equal(*profile.DateOfBirth))

	_, err = repo.FindDoctorProfile(ctx, patient.ID)
	assert.ErrorIs(t, err, repository.ErrProfileNotFound)
}
