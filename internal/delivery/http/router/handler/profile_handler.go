package handler

import (
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"medlink/internal/delivery/http/response"
	domainerrors "medlink/internal/domain/errors"
	"medlink/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AvatarFormField is the multipart field carrying the uploaded image.
const AvatarFormField = "avatar"

// ProfileHandler serves role profiles, avatars, the doctor QR code and the patient directory.
type ProfileHandler struct {
	uc     usecase.ProfileUsecase
	logger *slog.Logger
}

// NewProfileHandler is the constructor for ProfileHandler.
func NewProfileHandler(uc usecase.ProfileUsecase, logger *slog.Logger) *ProfileHandler {
	return &ProfileHandler{
		uc:     uc,
		logger: logger,
	}
}

// PersonalRequest carries the account fields shared by both roles.
type PersonalRequest struct {
	Name  *string `json:"name"`
	Email *string `json:"email" validate:"omitempty,email"`
}

// UpdateDoctorProfileRequest is the body of PUT /api/profiles/doctor.
type UpdateDoctorProfileRequest struct {
	Personal     *PersonalRequest `json:"personal"`
	Professional *struct {
		Specialty       *string `json:"specialty"`
		LicenseNumber   *string `json:"licenseNumber"`
		ExperienceYears *int    `json:"experienceYears" validate:"omitempty,gte=0"`
	} `json:"professional"`
	Clinic *struct {
		Name    *string `json:"name"`
		Address *string `json:"address"`
	} `json:"clinic"`
}

// PatientPersonalRequest adds the patient's contact fields to PersonalRequest.
type PatientPersonalRequest struct {
	PersonalRequest
	Phone *string `json:"phone"`
	DOB   *string `json:"dob" validate:"omitempty,datetime=2006-01-02"`
}

// UpdatePatientProfileRequest is the body of PUT /api/profiles/patient.
type UpdatePatientProfileRequest struct {
	Personal *PatientPersonalRequest `json:"personal"`
	Medical  *struct {
		EmergencyContact *string `json:"emergencyContact"`
		MedicalHistory   *string `json:"medicalHistory"`
		Allergies        *string `json:"allergies"`
		Conditions       *string `json:"conditions"`
	} `json:"medical"`
}

var profileUpdated = &messageResponse{Message: "Profile updated successfully"}

// GetDoctorProfile returns the caller's doctor profile.
func (h *ProfileHandler) GetDoctorProfile(c echo.Context) error {
	identity, err := caller(c)
	if err != nil {
		return err
	}

	user, err := h.uc.GetDoctorProfile(c.Request().Context(), identity)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, newDoctorProfileView(user), "Doctor profile retrieved successfully")
}

// UpdateDoctorProfile applies personal, professional and clinic changes.
func (h *ProfileHandler) UpdateDoctorProfile(c echo.Context) error {
	identity, err := caller(c)
	if err != nil {
		return err
	}

	var req UpdateDoctorProfileRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	input := &usecase.UpdateDoctorProfileInput{Personal: personalInput(req.Personal)}
	if req.Professional != nil {
		input.Specialty = req.Professional.Specialty
		input.LicenseNumber = req.Professional.LicenseNumber
		input.ExperienceYears = req.Professional.ExperienceYears
	}
	if req.Clinic != nil {
		input.ClinicName = req.Clinic.Name
		input.ClinicAddress = req.Clinic.Address
	}

	if _, err := h.uc.UpdateDoctorProfile(c.Request().Context(), identity, input); err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, profileUpdated, "Profile updated successfully")
}

// GetPatientProfile returns the caller's patient profile.
func (h *ProfileHandler) GetPatientProfile(c echo.Context) error {
	identity, err := caller(c)
	if err != nil {
		return err
	}

	user, err := h.uc.GetPatientProfile(c.Request().Context(), identity)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, newPatientProfileView(user), "Patient profile retrieved successfully")
}

// UpdatePatientProfile applies personal and medical changes.
func (h *ProfileHandler) UpdatePatientProfile(c echo.Context) error {
	identity, err := caller(c)
	if err != nil {
		return err
	}

	var req UpdatePatientProfileRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	input := &usecase.UpdatePatientProfileInput{}
	if req.Personal != nil {
		input.Personal = personalInput(&req.Personal.PersonalRequest)
		input.Phone = req.Personal.Phone
		if req.Personal.DOB != nil && *req.Personal.DOB != "" {
			dob, err := time.Parse(dateLayout, *req.Personal.DOB)
			if err != nil {
				return domainerrors.ErrValidationFailed.WithDetails("dob must be YYYY-MM-DD")
			}
			input.DateOfBirth = &dob
		}
	}
	if req.Medical != nil {
		input.EmergencyContact = req.Medical.EmergencyContact
		input.MedicalHistory = req.Medical.MedicalHistory
		input.Allergies = req.Medical.Allergies
		input.ChronicConditions = req.Medical.Conditions
	}

	if _, err := h.uc.UpdatePatientProfile(c.Request().Context(), identity, input); err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, profileUpdated, "Profile updated successfully")
}

func personalInput(req *PersonalRequest) *usecase.PersonalInput {
	if req == nil {
		return nil
	}

	return &usecase.PersonalInput{Name: req.Name, Email: req.Email}
}

// UploadAvatar stores the multipart image and returns the updated identity.
func (h *ProfileHandler) UploadAvatar(c echo.Context) error {
	identity, err := caller(c)
	if err != nil {
		return err
	}

	fileHeader, err := c.FormFile(AvatarFormField)
	if err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("avatar file is required")
	}
	file, err := fileHeader.Open()
	if err != nil {
		return errors.Wrap(err, "failed to open uploaded avatar")
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return errors.Wrap(err, "failed to read uploaded avatar")
	}

	contentType := fileHeader.Header.Get(echo.HeaderContentType)
	if contentType == "" || strings.HasPrefix(contentType, echo.MIMEOctetStream) {
		contentType = http.DetectContentType(data)
	}

	updated, err := h.uc.UploadAvatar(c.Request().Context(), identity, &usecase.AvatarUpload{
		Filename:    fileHeader.Filename,
		ContentType: contentType,
		Data:        data,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, newIdentityView(updated), "Avatar uploaded successfully")
}

// GetAvatar streams a stored avatar.
func (h *ProfileHandler) GetAvatar(c echo.Context) error {
	avatar, err := h.uc.GetAvatar(c.Request().Context(), c.Param("key"))
	if err != nil {
		return errors.WithStack(err)
	}

	// Keys are never reused, so the object can be cached indefinitely.
	c.Response().Header().Set("Cache-Control", "public, max-age=31536000, immutable")

	return c.Blob(http.StatusOK, avatar.ContentType, avatar.Data)
}

// DoctorQRCode returns the caller's contact QR code as a PNG.
func (h *ProfileHandler) DoctorQRCode(c echo.Context) error {
	identity, err := caller(c)
	if err != nil {
		return err
	}

	png, err := h.uc.DoctorContactQR(c.Request().Context(), identity)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// ListPatients returns the patient directory shown to doctors.
func (h *ProfileHandler) ListPatients(c echo.Context) error {
	identity, err := caller(c)
	if err != nil {
		return err
	}

	patients, err := h.uc.ListPatients(c.Request().Context(), identity)
	if err != nil {
		return errors.WithStack(err)
	}

	views := make([]*patientDirectoryView, 0, len(patients))
	for _, patient := range patients {
		views = append(views, newPatientDirectoryView(patient))
	}

	return response.OK(c, views, "Patients retrieved successfully")
}
