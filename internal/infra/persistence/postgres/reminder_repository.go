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
	"gorm.io/gorm/clause"
)

// reminderRepository implements the repository.ReminderRepository interface.
type reminderRepository struct {
	db *gorm.DB
}

// NewReminderRepository is the constructor for reminderRepository.
func NewReminderRepository(db *gorm.DB) repository.ReminderRepository {
	return &reminderRepository{
		db: db,
	}
}

// Create persists a new medication reminder.
func (repo *reminderRepository) Create(ctx context.Context, reminder *entity.MedicationReminder) error {
	reminderM := fromReminderDomain(reminder)

	if err := repo.db.WithContext(ctx).Omit(clause.Associations).Create(reminderM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUserNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create medication reminder")
	}

	reminder.CreatedAt = reminderM.CreatedAt

	return nil
}

// ListByDoctor returns reminders written by the doctor, newest first.
func (repo *reminderRepository) ListByDoctor(ctx context.Context, doctorID uuid.UUID) ([]*entity.MedicationReminder, error) {
	return repo.list(ctx, "doctor_id = ?", doctorID)
}

// ListByPatient returns reminders assigned to the patient, newest first.
func (repo *reminderRepository) ListByPatient(ctx context.Context, patientID uuid.UUID) ([]*entity.MedicationReminder, error) {
	return repo.list(ctx, "patient_id = ?", patientID)
}

func (repo *reminderRepository) list(ctx context.Context, where string, userID uuid.UUID) ([]*entity.MedicationReminder, error) {
	var reminderModels []*model.MedicationReminderModel

	if err := repo.db.WithContext(ctx).
		Preload("Doctor").
		Preload("Patient").
		Where(where, userID).
		Order("created_at DESC").
		Order("id DESC").
		Find(&reminderModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list medication reminders")
	}

	reminders := make([]*entity.MedicationReminder, 0, len(reminderModels))
	for _, reminderM := range reminderModels {
		reminders = append(reminders, toReminderDomain(reminderM))
	}

	return reminders, nil
}

// --- Mapper Functions ---

func toReminderDomain(data *model.MedicationReminderModel) *entity.MedicationReminder {
	if data == nil {
		return nil
	}

	return &entity.MedicationReminder{
		ID:             data.ID,
		DoctorID:       data.DoctorID,
		PatientID:      data.PatientID,
		MedicationName: data.MedicationName,
		Dosage:         data.Dosage,
		Frequency:      data.Frequency,
		Instructions:   data.Instructions,
		StartDate:      data.StartDate,
		EndDate:        data.EndDate,
		Doctor:         toIdentityDomain(data.Doctor),
		Patient:        toIdentityDomain(data.Patient),
		CreatedAt:      data.CreatedAt,
	}
}

func fromReminderDomain(data *entity.MedicationReminder) *model.MedicationReminderModel {
	if data == nil {
		return nil
	}

	return &model.MedicationReminderModel{
		ID:             data.ID,
		DoctorID:       data.DoctorID,
		PatientID:      data.PatientID,
		MedicationName: data.MedicationName,
		Dosage:         data.Dosage,
		Frequency:      data.Frequency,
		Instructions:   data.Instructions,
		StartDate:      data.StartDate,
		EndDate:        data.EndDate,
		CreatedAt:      data.CreatedAt,
	}
}
