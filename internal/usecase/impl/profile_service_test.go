package impl

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"medlink/config"
	"medlink/internal/domain/entity"
	domainerrors "medlink/internal/domain/errors"
	"medlink/internal/domain/service"
	mockRepo "medlink/internal/mocks/repository"
	mockSvc "medlink/internal/mocks/service"
	"medlink/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type profileServiceFixtures struct {
	service   *profileService
	txManager *mockRepo.MockTransactionManager
	userRepo  *mockRepo.MockUserRepository
	storage   *mockSvc.MockBlobStorage
	qrCodeSvc *mockSvc.MockQRCodeService
	now       time.Time
}

func createTestProfileService(t *testing.T) profileServiceFixtures {
	fixtures := profileServiceFixtures{
		txManager: mockRepo.NewMockTransactionManager(t),
		userRepo:  mockRepo.NewMockUserRepository(t),
		storage:   mockSvc.NewMockBlobStorage(t),
		qrCodeSvc: mockSvc.NewMockQRCodeService(t),
		now:       time.Date(2026, 8, 20, 10, 0, 0, 0, time.UTC),
	}

	svc := NewProfileService(ProfileServiceParams{
		TxManager: fixtures.txManager,
		UserRepo:  fixtures.userRepo,
		Storage:   fixtures.storage,
		QRCodeSvc: fixtures.qrCodeSvc,
		Config:    &config.Config{Storage: &config.StorageConfig{MaxAvatarBytes: 1024}},
		Logger:    newDiscardLogger(),
	}).(*profileService)
	svc.now = func() time.Time { return fixtures.now }
	fixtures.service = svc

	return fixtures
}

func stringPtr(s string) *string { return &s }

func TestProfileService_GetDoctorProfile(t *testing.T) {
	t.Run("doctor with profile", func(t *testing.T) {
		f := createTestProfileService(t)
		ctx := context.Background()
		doctor := &entity.User{ID: uuid.New(), Role: entity.RoleDoctor, DoctorProfile: &entity.DoctorProfile{Specialty: "Cardiology"}}
		f.userRepo.EXPECT().FindByID(ctx, doctor.ID).Return(doctor, nil)

		user, err := f.service.GetDoctorProfile(ctx, doctor.Identity())
		require.NoError(t, err)
		assert.Equal(t, "Cardiology", user.DoctorProfile.Specialty)
	})

	t.Run("missing profile row", func(t *testing.T) {
		f := createTestProfileService(t)
		ctx := context.Background()
		doctor := &entity.User{ID: uuid.New(), Role: entity.RoleDoctor}
		f.userRepo.EXPECT().FindByID(ctx, doctor.ID).Return(doctor, nil)

		_, err := f.service.GetDoctorProfile(ctx, doctor.Identity())
		requireAppError(t, err, "PROFILE_NOT_FOUND")
	})

	t.Run("patient caller", func(t *testing.T) {
		f := createTestProfileService(t)

		_, err := f.service.GetDoctorProfile(context.Background(), &entity.Identity{ID: uuid.New(), Role: entity.RolePatient})
		requireAppError(t, err, "FORBIDDEN")
	})
}

func TestProfileService_UpdateDoctorProfile_PartialUpdate(t *testing.T) {
	f := createTestProfileService(t)
	ctx := context.Background()
	doctor := &entity.User{
		ID:    uuid.New(),
		Name:  "Greg",
		Email: "house@example.com",
		Role:  entity.RoleDoctor,
		DoctorProfile: &entity.DoctorProfile{
			Specialty:  "Diagnostics",
			ClinicName: "PPTH",
		},
	}
	years := 12

	expectTransaction(t, f.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		txUserRepo := mockRepo.NewMockUserRepository(t)
		txProfileRepo := mockRepo.NewMockProfileRepository(t)
		factory.EXPECT().NewUserRepository().Return(txUserRepo)
		factory.EXPECT().NewProfileRepository().Return(txProfileRepo)
		txUserRepo.EXPECT().FindByID(ctx, doctor.ID).Return(doctor, nil)
		txUserRepo.EXPECT().Update(ctx, mock.MatchedBy(func(u *entity.User) bool {
			return u.Name == "Gregory House" && u.Email == "house@example.com"
		})).Return(nil)
		txProfileRepo.EXPECT().UpdateDoctorProfile(ctx, mock.MatchedBy(func(p *entity.DoctorProfile) bool {
			return p.Specialty == "Diagnostics" && p.ExperienceYears == 12 && p.ClinicName == "PPTH"
		})).Return(nil)
	})

	user, err := f.service.UpdateDoctorProfile(ctx, doctor.Identity(), &usecase.UpdateDoctorProfileInput{
		Personal:        &usecase.PersonalInput{Name: stringPtr("Gregory House")},
		ExperienceYears: &years,
	})
	require.NoError(t, err)
	assert.Equal(t, "Gregory House", user.Name)
	assert.Equal(t, f.now, user.DoctorProfile.UpdatedAt)
}

func TestProfileService_UpdateDoctorProfile_EmailTaken(t *testing.T) {
	f := createTestProfileService(t)
	ctx := context.Background()
	doctor := &entity.User{ID: uuid.New(), Role: entity.RoleDoctor, DoctorProfile: &entity.DoctorProfile{}}

	expectTransaction(t, f.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		txUserRepo := mockRepo.NewMockUserRepository(t)
		factory.EXPECT().NewUserRepository().Return(txUserRepo)
		txUserRepo.EXPECT().FindByID(ctx, doctor.ID).Return(doctor, nil)
		txUserRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.User")).
			Return(domainerrors.ErrEmailExists.WrapMessage("email already exists"))
	})

	_, err := f.service.UpdateDoctorProfile(ctx, doctor.Identity(), &usecase.UpdateDoctorProfileInput{
		Personal: &usecase.PersonalInput{Email: stringPtr("taken@example.com")},
	})
	requireAppError(t, err, "EMAIL_EXISTS")
}

func TestProfileService_UpdatePatientProfile(t *testing.T) {
	f := createTestProfileService(t)
	ctx := context.Background()
	patient := &entity.User{ID: uuid.New(), Role: entity.RolePatient, PatientProfile: &entity.PatientProfile{Allergies: "none"}}
	dob := time.Date(1990, 1, 2, 0, 0, 0, 0, time.UTC)

	expectTransaction(t, f.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		txUserRepo := mockRepo.NewMockUserRepository(t)
		txProfileRepo := mockRepo.NewMockProfileRepository(t)
		factory.EXPECT().NewUserRepository().Return(txUserRepo)
		factory.EXPECT().NewProfileRepository().Return(txProfileRepo)
		txUserRepo.EXPECT().FindByID(ctx, patient.ID).Return(patient, nil)
		txProfileRepo.EXPECT().UpdatePatientProfile(ctx, mock.MatchedBy(func(p *entity.PatientProfile) bool {
			return p.Allergies == "penicillin" && p.DateOfBirth != nil && p.DateOfBirth.Equal(dob)
		})).Return(nil)
	})

	user, err := f.service.UpdatePatientProfile(ctx, patient.Identity(), &usecase.UpdatePatientProfileInput{
		Allergies:   stringPtr("penicillin"),
		DateOfBirth: &dob,
	})
	require.NoError(t, err)
	assert.Equal(t, "penicillin", user.PatientProfile.Allergies)
}

func TestProfileService_UploadAvatar(t *testing.T) {
	f := createTestProfileService(t)
	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Name: "Pat", Role: entity.RolePatient}
	data := bytes.Repeat([]byte{0x89}, 64)

	f.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
	f.storage.EXPECT().
		Put(ctx, mock.MatchedBy(func(key string) bool {
			return strings.HasPrefix(key, user.ID.String()+"-") && strings.HasSuffix(key, ".png")
		}), "image/png", data).
		Return("http://localhost:8080/api/avatars/k.png", nil)
	f.userRepo.EXPECT().Update(ctx, mock.MatchedBy(func(u *entity.User) bool {
		return u.AvatarURL == "http://localhost:8080/api/avatars/k.png"
	})).Return(nil)

	identity, err := f.service.UploadAvatar(ctx, user.Identity(), &usecase.AvatarUpload{
		Filename:    "me.png",
		ContentType: "image/png",
		Data:        data,
	})
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080/api/avatars/k.png", identity.AvatarURL)
}

func TestProfileService_UploadAvatar_Rejections(t *testing.T) {
	caller := &entity.Identity{ID: uuid.New(), Role: entity.RolePatient}

	tests := []struct {
		name   string
		upload usecase.AvatarUpload
	}{
		{name: "unsupported type", upload: usecase.AvatarUpload{ContentType: "image/gif", Data: []byte{1}}},
		{name: "empty file", upload: usecase.AvatarUpload{ContentType: "image/jpeg"}},
		{name: "too large", upload: usecase.AvatarUpload{ContentType: "image/jpeg", Data: make([]byte, 1025)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := createTestProfileService(t)

			_, err := f.service.UploadAvatar(context.Background(), caller, &tt.upload)
			requireAppError(t, err, "VALIDATION_FAILED")
		})
	}
}

func TestProfileService_GetAvatar(t *testing.T) {
	t.Run("stored", func(t *testing.T) {
		f := createTestProfileService(t)
		ctx := context.Background()
		f.storage.EXPECT().Get(ctx, "abc.png").Return([]byte("png"), "image/png", nil)

		avatar, err := f.service.GetAvatar(ctx, "abc.png")
		require.NoError(t, err)
		assert.Equal(t, "image/png", avatar.ContentType)
	})

	t.Run("missing", func(t *testing.T) {
		f := createTestProfileService(t)
		ctx := context.Background()
		f.storage.EXPECT().Get(ctx, "gone.png").Return(nil, "", service.ErrObjectNotFound)

		_, err := f.service.GetAvatar(ctx, "gone.png")
		requireAppError(t, err, "AVATAR_NOT_FOUND")
	})

	t.Run("path traversal", func(t *testing.T) {
		f := createTestProfileService(t)

		_, err := f.service.GetAvatar(context.Background(), "../secret")
		requireAppError(t, err, "AVATAR_NOT_FOUND")
	})
}

func TestProfileService_DoctorOnlyOperations(t *testing.T) {
	doctor := &entity.Identity{ID: uuid.New(), Role: entity.RoleDoctor}
	patient := &entity.Identity{ID: uuid.New(), Role: entity.RolePatient}

	t.Run("contact QR", func(t *testing.T) {
		f := createTestProfileService(t)
		f.qrCodeSvc.EXPECT().GenerateDoctorContactQR(doctor.ID).Return([]byte("png"), nil)

		png, err := f.service.DoctorContactQR(context.Background(), doctor)
		require.NoError(t, err)
		assert.Equal(t, []byte("png"), png)

		_, err = f.service.DoctorContactQR(context.Background(), patient)
		requireAppError(t, err, "DOCTOR_ONLY")
	})

	t.Run("patient directory", func(t *testing.T) {
		f := createTestProfileService(t)
		ctx := context.Background()
		patients := []*entity.User{{ID: patient.ID, Role: entity.RolePatient}}
		f.userRepo.EXPECT().FindByRole(ctx, entity.RolePatient).Return(patients, nil)

		got, err := f.service.ListPatients(ctx, doctor)
		require.NoError(t, err)
		assert.Equal(t, patients, got)

		_, err = f.service.ListPatients(ctx, patient)
		requireAppError(t, err, "DOCTOR_ONLY")
	})
}
