package handler

import (
	"log/slog"

	"medlink/internal/delivery/http/response"
	"medlink/internal/domain/entity"
	"medlink/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AppointmentHandler serves appointment booking and listing.
type AppointmentHandler struct {
	uc     usecase.AppointmentUsecase
	logger *slog.Logger
}

// NewAppointmentHandler is the constructor for AppointmentHandler.
func NewAppointmentHandler(uc usecase.AppointmentUsecase, logger *slog.Logger) *AppointmentHandler {
	return &AppointmentHandler{
		uc:     uc,
		logger: logger,
	}
}

// CreateAppointmentRequest is the body of POST /api/appointments.
type CreateAppointmentRequest struct {
	PatientID string `json:"patientId" validate:"required"`
	Date      string `json:"date" validate:"required,datetime=2006-01-02"`
	Time      string `json:"time" validate:"required,datetime=15:04"`
	Type      string `json:"type"`
	Notes     string `json:"notes"`
}

// UpdateAppointmentStatusRequest is the body of PATCH /api/appointments/:id/status.
type UpdateAppointmentStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// ListAppointments returns the caller's appointments, earliest first.
func (h *AppointmentHandler) ListAppointments(c echo.Context) error {
	identity, err := caller(c)
	if err != nil {
		return err
	}

	appointments, err := h.uc.ListAppointments(c.Request().Context(), identity)
	if err != nil {
		return errors.WithStack(err)
	}

	views := make([]*appointmentView, 0, len(appointments))
	for _, appointment := range appointments {
		views = append(views, newAppointmentView(appointment))
	}

	return response.OK(c, views, "Appointments retrieved successfully")
}

// CreateAppointment books an appointment for a patient.
func (h *AppointmentHandler) CreateAppointment(c echo.Context) error {
	identity, err := caller(c)
	if err != nil {
		return err
	}

	var req CreateAppointmentRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	patientID, err := parseUUID("patientId", req.PatientID)
	if err != nil {
		return err
	}

	appointment, err := h.uc.CreateAppointment(c.Request().Context(), identity, &usecase.CreateAppointmentInput{
		PatientID: patientID,
		Date:      req.Date,
		Time:      req.Time,
		Type:      req.Type,
		Notes:     req.Notes,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Created(c, newAppointmentView(appointment), "Appointment created successfully")
}

// UpdateStatus moves an appointment to a new status.
func (h *AppointmentHandler) UpdateStatus(c echo.Context) error {
	identity, err := caller(c)
	if err != nil {
		return err
	}
	appointmentID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req UpdateAppointmentStatusRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	appointment, err := h.uc.UpdateStatus(c.Request().Context(), identity, appointmentID, entity.AppointmentStatus(req.Status))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, newAppointmentView(appointment), "Appointment status updated successfully")
}
