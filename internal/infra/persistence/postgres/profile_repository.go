package postgres

import (
	"context"

	"medlink/internal/domain/entity"
	domainerrors "medlink/internal/domain/errors"
	"medlink/internal/domain/repository"
	"medlink/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// profileRepository implements the repository.ProfileRepository interface.
type profileRepository struct {
	db *gorm.DB
}

// NewProfileRepository is the constructor for profileRepository.
func NewProfileRepository(db *gorm.DB) repository.ProfileRepository {
	return &profileRepository{
		db: db,
	}
}

// FindDoctorProfile retrieves the doctor profile of a user.
func (repo *profileRepository) FindDoctorProfile(ctx context.Context, userID uuid.UUID) (*entity.DoctorProfile, error) {
	var profileM model.DoctorProfileModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&profileM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to find doctor profile")
	}

	return toDoctorProfileDomain(&profileM), nil
}

// UpdateDoctorProfile overwrites the editable doctor profile fields.
func (repo *profileRepository) UpdateDoctorProfile(ctx context.Context, profile *entity.DoctorProfile) error {
	result := repo.db.WithContext(ctx).
		Model(&model.DoctorProfileModel{}).
		Where("user_id = ?", profile.UserID).
		Updates(map[string]any{
			"specialty":        profile.Specialty,
			"license_number":   profile.LicenseNumber,
			"experience_years": profile.ExperienceYears,
			"clinic_name":      profile.ClinicName,
			"clinic_address":   profile.ClinicAddress,
			"updated_at":       profile.UpdatedAt,
		})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update doctor profile")
	}

	if result.RowsAffected == 0 {
		return repository.ErrProfileNotFound
	}

	return nil
}

// FindPatientProfile retrieves the patient profile of a user.
func (repo *profileRepository) FindPatientProfile(ctx context.Context, userID uuid.UUID) (*entity.PatientProfile, error) {
	var profileM model.PatientProfileModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&profileM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to find patient profile")
	}

	return toPatientProfileDomain(&profileM), nil
}

// UpdatePatientProfile overwrites the editable patient profile fields.
func (repo *profileRepository) UpdatePatientProfile(ctx context.Context, profile *entity.PatientProfile) error {
	result := repo.db.WithContext(ctx).
		Model(&model.PatientProfileModel{}).
		Where("user_id = ?", profile.UserID).
		Updates(map[string]any{
			"phone":              profile.Phone,
			"dob":                profile.DateOfBirth,
			"emergency_contact":  profile.EmergencyContact,
			"medical_history":    profile.MedicalHistory,
			"allergies":          profile.Allergies,
			"chronic_conditions": profile.ChronicConditions,
			"updated_at":         profile.UpdatedAt,
		})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update patient profile")
	}

	if result.RowsAffected == 0 {
		return repository.ErrProfileNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toDoctorProfileDomain(data *model.DoctorProfileModel) *entity.DoctorProfile {
	if data == nil {
		return nil
	}

	return &entity.DoctorProfile{
		UserID:          data.UserID,
		Specialty:       data.Specialty,
		LicenseNumber:   data.LicenseNumber,
		ExperienceYears: data.ExperienceYears,
		ClinicName:      data.ClinicName,
		ClinicAddress:   data.ClinicAddress,
		UpdatedAt:       data.UpdatedAt,
	}
}

func fromDoctorProfileDomain(data *entity.DoctorProfile) *model.DoctorProfileModel {
	if data == nil {
		return nil
	}

	return &model.DoctorProfileModel{
		UserID:          data.UserID,
		Specialty:       data.Specialty,
		LicenseNumber:   data.LicenseNumber,
		ExperienceYears: data.ExperienceYears,
		ClinicName:      data.ClinicName,
		ClinicAddress:   data.ClinicAddress,
		UpdatedAt:       data.UpdatedAt,
	}
}

func toPatientProfileDomain(data *model.PatientProfileModel) *entity.PatientProfile {
	if data == nil {
		return nil
	}

	return &entity.PatientProfile{
		UserID:            data.UserID,
		Phone:             data.Phone,
		DateOfBirth:       data.DateOfBirth,
		EmergencyContact:  data.EmergencyContact,
		MedicalHistory:    data.MedicalHistory,
		Allergies:         data.Allergies,
		ChronicConditions: data.ChronicConditions,
		UpdatedAt:         data.UpdatedAt,
	}
}

func fromPatientProfileDomain(data *entity.PatientProfile) *model.PatientProfileModel {
	if data == nil {
		return nil
	}

	return &model.PatientProfileModel{
		UserID:            data.UserID,
		Phone:             data.Phone,
		DateOfBirth:       data.DateOfBirth,
		EmergencyContact:  data.EmergencyContact,
		MedicalHistory:    data.MedicalHistory,
		Allergies:         data.Allergies,
		ChronicConditions: data.ChronicConditions,
		UpdatedAt:         data.UpdatedAt,
	}
}
