package handler

import (
	"time"

	"medlink/internal/domain/entity"

	"github.com/google/uuid"
)

// clockLayout renders message and conversation times as the clients display them.
const clockLayout = "15:04"

const emptyConversationPreview = "Start a conversation"

type identityView struct {
	ID     uuid.UUID   `json:"id"`
	Name   string      `json:"name"`
	Role   entity.Role `json:"role"`
	Avatar string      `json:"avatar"`
}

func newIdentityView(identity *entity.Identity) *identityView {
	if identity == nil {
		return nil
	}

	return &identityView{
		ID:     identity.ID,
		Name:   identity.Name,
		Role:   identity.Role,
		Avatar: identity.AvatarURL,
	}
}

type conversationView struct {
	ID          uuid.UUID     `json:"id"`
	Participant *identityView `json:"participant"`
	LastMessage string        `json:"lastMessage"`
	Time        string        `json:"time"`
	UnreadCount int64         `json:"unreadCount"`
}

func newConversationViews(summaries []*entity.ConversationSummary) []*conversationView {
	views := make([]*conversationView, 0, len(summaries))
	for _, summary := range summaries {
		view := &conversationView{
			ID:          summary.Conversation.ID,
			Participant: newIdentityView(summary.Counterpart),
			LastMessage: emptyConversationPreview,
			UnreadCount: summary.UnreadCount,
		}
		if summary.LastMessage != nil {
			if summary.LastMessage.Text != "" {
				view.LastMessage = summary.LastMessage.Text
			}
			view.Time = summary.LastMessage.CreatedAt.Format(clockLayout)
		}
		views = append(views, view)
	}

	return views
}

type messageView struct {
	ID             uuid.UUID `json:"id"`
	ConversationID uuid.UUID `json:"conversationId"`
	SenderID       uuid.UUID `json:"senderId"`
	Text           string    `json:"text"`
	Time           string    `json:"time"`
	IsRead         bool      `json:"isRead"`
	CreatedAt      time.Time `json:"createdAt"`
}

func newMessageView(message *entity.Message) *messageView {
	return &messageView{
		ID:             message.ID,
		ConversationID: message.ConversationID,
		SenderID:       message.SenderID,
		Text:           message.Text,
		Time:           message.CreatedAt.Format(clockLayout),
		IsRead:         message.IsRead,
		CreatedAt:      message.CreatedAt,
	}
}

type notificationView struct {
	ID        uuid.UUID               `json:"id"`
	Type      entity.NotificationType `json:"type"`
	Title     string                  `json:"title,omitempty"`
	Message   string                  `json:"message"`
	IsRead    bool                    `json:"isRead"`
	CreatedAt time.Time               `json:"createdAt"`
}

type appointmentView struct {
	ID            uuid.UUID                `json:"id"`
	PatientID     uuid.UUID                `json:"patientId"`
	DoctorID      uuid.UUID                `json:"doctorId"`
	PatientName   string                   `json:"patientName"`
	DoctorName    string                   `json:"doctorName"`
	Date          string                   `json:"date"`
	Time          string                   `json:"time"`
	Type          string                   `json:"type"`
	Status        entity.AppointmentStatus `json:"status"`
	Notes         string                   `json:"notes,omitempty"`
	PatientAvatar string                   `json:"patientAvatar"`
}

func newAppointmentView(appointment *entity.Appointment) *appointmentView {
	view := &appointmentView{
		ID:        appointment.ID,
		PatientID: appointment.PatientID,
		DoctorID:  appointment.DoctorID,
		Date:      appointment.Date,
		Time:      appointment.Time,
		Type:      appointment.Type,
		Status:    appointment.Status,
		Notes:     appointment.Notes,
	}
	if appointment.Patient != nil {
		view.PatientName = appointment.Patient.Name
		view.PatientAvatar = appointment.Patient.AvatarURL
	}
	if appointment.Doctor != nil {
		view.DoctorName = appointment.Doctor.Name
	}

	return view
}

type reminderView struct {
	ID             uuid.UUID     `json:"id"`
	DoctorID       uuid.UUID     `json:"doctorId"`
	PatientID      uuid.UUID     `json:"patientId"`
	MedicationName string        `json:"medicationName"`
	Dosage         string        `json:"dosage"`
	Frequency      string        `json:"frequency"`
	Instructions   string        `json:"instructions"`
	StartDate      time.Time     `json:"startDate"`
	EndDate        *time.Time    `json:"endDate"`
	Doctor         *identityView `json:"doctor,omitempty"`
	Patient        *identityView `json:"patient,omitempty"`
	CreatedAt      time.Time     `json:"createdAt"`
}

func newReminderView(reminder *entity.MedicationReminder) *reminderView {
	return &reminderView{
		ID:             reminder.ID,
		DoctorID:       reminder.DoctorID,
		PatientID:      reminder.PatientID,
		MedicationName: reminder.MedicationName,
		Dosage:         reminder.Dosage,
		Frequency:      reminder.Frequency,
		Instructions:   reminder.Instructions,
		StartDate:      reminder.StartDate,
		EndDate:        reminder.EndDate,
		Doctor:         newIdentityView(reminder.Doctor),
		Patient:        newIdentityView(reminder.Patient),
		CreatedAt:      reminder.CreatedAt,
	}
}

type doctorProfileView struct {
	Personal struct {
		Name   string `json:"name"`
		Email  string `json:"email"`
		Avatar string `json:"avatar"`
	} `json:"personal"`
	Professional struct {
		Specialty       string `json:"specialty"`
		LicenseNumber   string `json:"licenseNumber"`
		ExperienceYears int    `json:"experienceYears"`
	} `json:"professional"`
	Clinic struct {
		Name    string `json:"name"`
		Address string `json:"address"`
	} `json:"clinic"`
}

func newDoctorProfileView(user *entity.User) *doctorProfileView {
	view := &doctorProfileView{}
	view.Personal.Name = user.Name
	view.Personal.Email = user.Email
	view.Personal.Avatar = user.AvatarURL
	view.Professional.Specialty = user.DoctorProfile.Specialty
	view.Professional.LicenseNumber = user.DoctorProfile.LicenseNumber
	view.Professional.ExperienceYears = user.DoctorProfile.ExperienceYears
	view.Clinic.Name = user.DoctorProfile.ClinicName
	view.Clinic.Address = user.DoctorProfile.ClinicAddress

	return view
}

// dateLayout is the calendar date format used for dates of birth.
const dateLayout = "2006-01-02"

type patientProfileView struct {
	Personal struct {
		Name   string  `json:"name"`
		Email  string  `json:"email"`
		Avatar string  `json:"avatar"`
		Phone  string  `json:"phone"`
		DOB    *string `json:"dob"`
	} `json:"personal"`
	Medical struct {
		EmergencyContact string `json:"emergencyContact"`
		MedicalHistory   string `json:"medicalHistory"`
		Allergies        string `json:"allergies"`
		Conditions       string `json:"conditions"`
	} `json:"medical"`
}

func newPatientProfileView(user *entity.User) *patientProfileView {
	profile := user.PatientProfile
	view := &patientProfileView{}
	view.Personal.Name = user.Name
	view.Personal.Email = user.Email
	view.Personal.Avatar = user.AvatarURL
	view.Personal.Phone = profile.Phone
	if profile.DateOfBirth != nil {
		dob := profile.DateOfBirth.Format(dateLayout)
		view.Personal.DOB = &dob
	}
	view.Medical.EmergencyContact = profile.EmergencyContact
	view.Medical.MedicalHistory = profile.MedicalHistory
	view.Medical.Allergies = profile.Allergies
	view.Medical.Conditions = profile.ChronicConditions

	return view
}

type patientDirectoryView struct {
	ID     uuid.UUID `json:"id"`
	Name   string    `json:"name"`
	Email  string    `json:"email"`
	Phone  string    `json:"phone"`
	Avatar string    `json:"avatar"`
}

func newPatientDirectoryView(user *entity.User) *patientDirectoryView {
	view := &patientDirectoryView{
		ID:     user.ID,
		Name:   user.Name,
		Email:  user.Email,
		Avatar: user.AvatarURL,
	}
	if user.PatientProfile != nil {
		view.Phone = user.PatientProfile.Phone
	}

	return view
}

type deviceView struct {
	ID        uuid.UUID `json:"id"`
	DeviceID  string    `json:"deviceId"`
	Platform  string    `json:"platform"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func newDeviceView(device *entity.UserDevice) *deviceView {
	return &deviceView{
		ID:        device.ID,
		DeviceID:  device.DeviceID,
		Platform:  device.Platform,
		IsActive:  device.IsActive,
		CreatedAt: device.CreatedAt,
		UpdatedAt: device.UpdatedAt,
	}
}
