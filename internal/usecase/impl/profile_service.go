package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"medlink/config"
	deliverycontext "medlink/internal/delivery/context"
	"medlink/internal/domain/entity"
	domainerrors "medlink/internal/domain/errors"
	"medlink/internal/domain/repository"
	"medlink/internal/domain/service"
	"medlink/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const defaultMaxAvatarBytes = 2 << 20

// avatarExtensions maps accepted avatar content types to object key extensions.
var avatarExtensions = map[string]string{
	"image/png":  ".png",
	"image/jpeg": ".jpg",
}

// profileService implements the ProfileUsecase interface.
type profileService struct {
	txManager      repository.TransactionManager
	userRepo       repository.UserRepository
	storage        service.BlobStorage
	qrCodeSvc      service.QRCodeService
	maxAvatarBytes int64
	now            func() time.Time
	logger         *slog.Logger
}

// ProfileServiceParams holds dependencies for ProfileService, injected by Fx.
type ProfileServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	UserRepo  repository.UserRepository
	Storage   service.BlobStorage
	QRCodeSvc service.QRCodeService
	Config    *config.Config
	Logger    *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(params ProfileServiceParams) usecase.ProfileUsecase {
	maxAvatarBytes := int64(defaultMaxAvatarBytes)
	if params.Config != nil && params.Config.Storage != nil && params.Config.Storage.MaxAvatarBytes > 0 {
		maxAvatarBytes = params.Config.Storage.MaxAvatarBytes
	}

	return &profileService{
		txManager:      params.TxManager,
		userRepo:       params.UserRepo,
		storage:        params.Storage,
		qrCodeSvc:      params.QRCodeSvc,
		maxAvatarBytes: maxAvatarBytes,
		now:            time.Now,
		logger:         params.Logger,
	}
}

func (srv *profileService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetDoctorProfile returns the doctor with its professional profile.
func (srv *profileService) GetDoctorProfile(ctx context.Context, caller *entity.Identity) (*entity.User, error) {
	if caller.Role != entity.RoleDoctor {
		return nil, domainerrors.ErrForbidden.WithDetails("doctor profile requires the DOCTOR role")
	}

	user, err := srv.findUser(ctx, srv.userRepo, caller.ID)
	if err != nil {
		return nil, err
	}
	if user.DoctorProfile == nil {
		return nil, domainerrors.ErrProfileNotFound
	}

	return user, nil
}

// GetPatientProfile returns the patient with its medical profile.
func (srv *profileService) GetPatientProfile(ctx context.Context, caller *entity.Identity) (*entity.User, error) {
	if caller.Role != entity.RolePatient {
		return nil, domainerrors.ErrForbidden.WithDetails("patient profile requires the PATIENT role")
	}

	user, err := srv.findUser(ctx, srv.userRepo, caller.ID)
	if err != nil {
		return nil, err
	}
	if user.PatientProfile == nil {
		return nil, domainerrors.ErrProfileNotFound
	}

	return user, nil
}

// UpdateDoctorProfile applies the personal and professional changes in one transaction.
func (srv *profileService) UpdateDoctorProfile(ctx context.Context, caller *entity.Identity, input *usecase.UpdateDoctorProfileInput) (*entity.User, error) {
	if caller.Role != entity.RoleDoctor {
		return nil, domainerrors.ErrForbidden.WithDetails("doctor profile requires the DOCTOR role")
	}
	if input.ExperienceYears != nil && *input.ExperienceYears < 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("experienceYears must not be negative")
	}

	srv.log(ctx).Info("Updating doctor profile", slog.Any("userID", caller.ID))

	var updated *entity.User
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()

		user, err := srv.findUser(ctx, userRepo, caller.ID)
		if err != nil {
			return err
		}
		if user.DoctorProfile == nil {
			return domainerrors.ErrProfileNotFound
		}

		now := srv.now().UTC()
		if err := srv.applyPersonal(ctx, userRepo, user, input.Personal, now); err != nil {
			return err
		}

		profile := user.DoctorProfile
		assignString(&profile.Specialty, input.Specialty)
		assignString(&profile.LicenseNumber, input.LicenseNumber)
		assignString(&profile.ClinicName, input.ClinicName)
		assignString(&profile.ClinicAddress, input.ClinicAddress)
		if input.ExperienceYears != nil {
			profile.ExperienceYears = *input.ExperienceYears
		}
		profile.UpdatedAt = now

		if err := repoFactory.NewProfileRepository().UpdateDoctorProfile(ctx, profile); err != nil {
			if errors.Is(err, repository.ErrProfileNotFound) {
				return domainerrors.ErrProfileNotFound
			}

			return errors.Wrap(err, "failed to update doctor profile")
		}
		updated = user

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute doctor profile update transaction")
	}

	return updated, nil
}

// UpdatePatientProfile applies the personal and medical changes in one transaction.
func (srv *profileService) UpdatePatientProfile(ctx context.Context, caller *entity.Identity, input *usecase.UpdatePatientProfileInput) (*entity.User, error) {
	if caller.Role != entity.RolePatient {
		return nil, domainerrors.ErrForbidden.WithDetails("patient profile requires the PATIENT role")
	}

	srv.log(ctx).Info("Updating patient profile", slog.Any("userID", caller.ID))

	var updated *entity.User
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()

		user, err := srv.findUser(ctx, userRepo, caller.ID)
		if err != nil {
			return err
		}
		if user.PatientProfile == nil {
			return domainerrors.ErrProfileNotFound
		}

		now := srv.now().UTC()
		if err := srv.applyPersonal(ctx, userRepo, user, input.Personal, now); err != nil {
			return err
		}

		profile := user.PatientProfile
		assignString(&profile.Phone, input.Phone)
		assignString(&profile.EmergencyContact, input.EmergencyContact)
		assignString(&profile.MedicalHistory, input.MedicalHistory)
		assignString(&profile.Allergies, input.Allergies)
		assignString(&profile.ChronicConditions, input.ChronicConditions)
		if input.DateOfBirth != nil {
			dob := input.DateOfBirth.UTC()
			profile.DateOfBirth = &dob
		}
		profile.UpdatedAt = now

		if err := repoFactory.NewProfileRepository().UpdatePatientProfile(ctx, profile); err != nil {
			if errors.Is(err, repository.ErrProfileNotFound) {
				return domainerrors.ErrProfileNotFound
			}

			return errors.Wrap(err, "failed to update patient profile")
		}
		updated = user

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute patient profile update transaction")
	}

	return updated, nil
}

// applyPersonal updates name and email when present. A taken email surfaces as EMAIL_EXISTS.
func (srv *profileService) applyPersonal(ctx context.Context, userRepo repository.UserRepository, user *entity.User, personal *usecase.PersonalInput, now time.Time) error {
	if personal == nil || (personal.Name == nil && personal.Email == nil) {
		return nil
	}

	if personal.Name != nil {
		name := strings.TrimSpace(*personal.Name)
		if name == "" {
			return domainerrors.ErrValidationFailed.WithDetails("name must not be empty")
		}
		user.Name = name
	}
	if personal.Email != nil {
		email := normalizeEmail(*personal.Email)
		if email == "" {
			return domainerrors.ErrValidationFailed.WithDetails("email must not be empty")
		}
		user.Email = email
	}
	user.UpdatedAt = now

	if err := userRepo.Update(ctx, user); err != nil {
		return errors.Wrap(err, "failed to update personal details")
	}

	return nil
}

func assignString(dst *string, src *string) {
	if src != nil {
		*dst = strings.TrimSpace(*src)
	}
}

func (srv *profileService) findUser(ctx context.Context, userRepo repository.UserRepository, userID uuid.UUID) (*entity.User, error) {
	user, err := userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	return user, nil
}

// UploadAvatar stores the image in the bucket and points the user's avatar at it.
func (srv *profileService) UploadAvatar(ctx context.Context, caller *entity.Identity, upload *usecase.AvatarUpload) (*entity.Identity, error) {
	contentType := strings.ToLower(strings.TrimSpace(strings.Split(upload.ContentType, ";")[0]))
	ext, ok := avatarExtensions[contentType]
	if !ok {
		return nil, domainerrors.ErrValidationFailed.WithDetails("avatar must be a PNG or JPEG image")
	}
	if len(upload.Data) == 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("avatar file is empty")
	}
	if int64(len(upload.Data)) > srv.maxAvatarBytes {
		return nil, domainerrors.ErrValidationFailed.WithDetails(
			fmt.Sprintf("avatar must not exceed %d bytes", srv.maxAvatarBytes))
	}

	user, err := srv.findUser(ctx, srv.userRepo, caller.ID)
	if err != nil {
		return nil, err
	}

	key := fmt.Sprintf("%s-%s%s", user.ID, uuid.Must(uuid.NewV7()), ext)
	url, err := srv.storage.Put(ctx, key, contentType, upload.Data)
	if err != nil {
		return nil, errors.Wrap(err, "failed to store avatar")
	}

	user.AvatarURL = url
	user.UpdatedAt = srv.now().UTC()
	if err := srv.userRepo.Update(ctx, user); err != nil {
		return nil, errors.Wrap(err, "failed to save avatar url")
	}

	srv.log(ctx).Info("Avatar uploaded", slog.Any("userID", user.ID), slog.String("key", key), slog.Int("bytes", len(upload.Data)))

	return user.Identity(), nil
}

// GetAvatar reads a stored avatar by object key.
func (srv *profileService) GetAvatar(ctx context.Context, key string) (*usecase.Avatar, error) {
	if key == "" || strings.Contains(key, "/") || strings.Contains(key, "..") {
		return nil, domainerrors.ErrAvatarNotFound
	}

	data, contentType, err := srv.storage.Get(ctx, key)
	if err != nil {
		if errors.Is(err, service.ErrObjectNotFound) {
			return nil, domainerrors.ErrAvatarNotFound
		}

		return nil, errors.Wrap(err, "failed to read avatar")
	}

	return &usecase.Avatar{ContentType: contentType, Data: data}, nil
}

// DoctorContactQR renders the calling doctor's contact QR code.
func (srv *profileService) DoctorContactQR(ctx context.Context, caller *entity.Identity) ([]byte, error) {
	if caller.Role != entity.RoleDoctor {
		return nil, domainerrors.ErrDoctorOnly
	}

	png, err := srv.qrCodeSvc.GenerateDoctorContactQR(caller.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate doctor contact QR code")
	}

	return png, nil
}

// ListPatients returns every patient with their profile for the doctor directory.
func (srv *profileService) ListPatients(ctx context.Context, caller *entity.Identity) ([]*entity.User, error) {
	if caller.Role != entity.RoleDoctor {
		return nil, domainerrors.ErrDoctorOnly
	}

	patients, err := srv.userRepo.FindByRole(ctx, entity.RolePatient)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list patients")
	}

	return patients, nil
}
