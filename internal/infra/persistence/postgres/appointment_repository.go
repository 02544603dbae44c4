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

// appointmentRepository implements the repository.AppointmentRepository interface.
type appointmentRepository struct {
	db *gorm.DB
}

// NewAppointmentRepository is the constructor for appointmentRepository.
func NewAppointmentRepository(db *gorm.DB) repository.AppointmentRepository {
	return &appointmentRepository{
		db: db,
	}
}

// Create persists a new appointment.
func (repo *appointmentRepository) Create(ctx context.Context, appointment *entity.Appointment) error {
	appointmentM := fromAppointmentDomain(appointment)

	if err := repo.db.WithContext(ctx).Omit(clause.Associations).Create(appointmentM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUserNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create appointment")
	}

	appointment.CreatedAt = appointmentM.CreatedAt
	appointment.UpdatedAt = appointmentM.UpdatedAt

	return nil
}

// FindByID retrieves an appointment by its unique ID.
func (repo *appointmentRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Appointment, error) {
	var appointmentM model.AppointmentModel

	if err := repo.db.WithContext(ctx).
		Preload("Doctor").
		Preload("Patient").
		Where("id = ?", id).
		First(&appointmentM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAppointmentNotFound
		}

		return nil, errors.Wrap(err, "failed to find appointment by id")
	}

	return toAppointmentDomain(&appointmentM), nil
}

// ListByDoctor returns the doctor's appointments by date and time.
func (repo *appointmentRepository) ListByDoctor(ctx context.Context, doctorID uuid.UUID) ([]*entity.Appointment, error) {
	return repo.list(ctx, "doctor_id = ?", doctorID)
}

// ListByPatient returns the patient's appointments by date and time.
func (repo *appointmentRepository) ListByPatient(ctx context.Context, patientID uuid.UUID) ([]*entity.Appointment, error) {
	return repo.list(ctx, "patient_id = ?", patientID)
}

func (repo *appointmentRepository) list(ctx context.Context, where string, userID uuid.UUID) ([]*entity.Appointment, error) {
	var appointmentModels []*model.AppointmentModel

	if err := repo.db.WithContext(ctx).
		Preload("Doctor").
		Preload("Patient").
		Where(where, userID).
		Order("appointment_date ASC").
		Order("appointment_time ASC").
		Find(&appointmentModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list appointments")
	}

	appointments := make([]*entity.Appointment, 0, len(appointmentModels))
	for _, appointmentM := range appointmentModels {
		appointments = append(appointments, toAppointmentDomain(appointmentM))
	}

	return appointments, nil
}

// UpdateStatus changes the status of an appointment.
func (repo *appointmentRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.AppointmentStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.AppointmentModel{}).
		Where("id = ?", id).
		Update("status", string(status))

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update appointment status")
	}

	if result.RowsAffected == 0 {
		return repository.ErrAppointmentNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toAppointmentDomain(data *model.AppointmentModel) *entity.Appointment {
	if data == nil {
		return nil
	}

	return &entity.Appointment{
		ID:        data.ID,
		DoctorID:  data.DoctorID,
		PatientID: data.PatientID,
		Date:      data.Date,
		Time:      data.Time,
		Type:      data.Type,
		Status:    entity.AppointmentStatus(data.Status),
		Notes:     data.Notes,
		Doctor:    toIdentityDomain(data.Doctor),
		Patient:   toIdentityDomain(data.Patient),
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func fromAppointmentDomain(data *entity.Appointment) *model.AppointmentModel {
	if data == nil {
		return nil
	}

	return &model.AppointmentModel{
		ID:        data.ID,
		DoctorID:  data.DoctorID,
		PatientID: data.PatientID,
		Date:      data.Date,
		Time:      data.Time,
		Type:      data.Type,
		Status:    string(data.Status),
		Notes:     data.Notes,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
