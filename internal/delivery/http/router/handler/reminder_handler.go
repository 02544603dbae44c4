package handler

import (
	"log/slog"

	"medlink/internal/delivery/http/response"
	"medlink/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ReminderHandler serves medication reminders.
type ReminderHandler struct {
	uc     usecase.ReminderUsecase
	logger *slog.Logger
}

// NewReminderHandler is the constructor for ReminderHandler.
func NewReminderHandler(uc usecase.ReminderUsecase, logger *slog.Logger) *ReminderHandler {
	return &ReminderHandler{
		uc:     uc,
		logger: logger,
	}
}

// CreateReminderRequest is the body of POST /api/reminders.
type CreateReminderRequest struct {
	PatientID      string `json:"patientId" validate:"required"`
	MedicationName string `json:"medicationName" validate:"required"`
	Dosage         string `json:"dosage"`
	Frequency      string `json:"frequency"`
	Instructions   string `json:"instructions"`
}

// ListReminders returns reminders the doctor created or the patient was given.
func (h *ReminderHandler) ListReminders(c echo.Context) error {
	identity, err := caller(c)
	if err != nil {
		return err
	}

	reminders, err := h.uc.ListReminders(c.Request().Context(), identity)
	if err != nil {
		return errors.WithStack(err)
	}

	views := make([]*reminderView, 0, len(reminders))
	for _, reminder := range reminders {
		views = append(views, newReminderView(reminder))
	}

	return response.OK(c, views, "Reminders retrieved successfully")
}

// CreateReminder assigns a medication reminder to a patient.
func (h *ReminderHandler) CreateReminder(c echo.Context) error {
	identity, err := caller(c)
	if err != nil {
		return err
	}

	var req CreateReminderRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	patientID, err := parseUUID("patientId", req.PatientID)
	if err != nil {
		return err
	}

	reminder, err := h.uc.CreateReminder(c.Request().Context(), identity, &usecase.CreateReminderInput{
		PatientID:      patientID,
		MedicationName: req.MedicationName,
		Dosage:         req.Dosage,
		Frequency:      req.Frequency,
		Instructions:   req.Instructions,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Created(c, newReminderView(reminder), "Reminder created successfully")
}
