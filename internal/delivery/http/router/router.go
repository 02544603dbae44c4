// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"strconv"

	"medlink/config"
	"medlink/internal/delivery/http/middleware"
	"medlink/internal/delivery/http/router/handler"
	"medlink/internal/domain/entity"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"
)

const (
	// AvatarUploadPath gets its own body limit sized for the image.
	AvatarUploadPath = "/api/profiles/avatar"

	defaultMaxAvatarBytes = 2 << 20
	multipartOverhead     = 64 << 10
)

type RouterParams struct {
	fx.In

	Config              *config.Config
	AuthMiddleware      *middleware.AuthMiddleware
	AuthHandler         *handler.AuthHandler
	ConversationHandler *handler.ConversationHandler
	NotificationHandler *handler.NotificationHandler
	AppointmentHandler  *handler.AppointmentHandler
	ReminderHandler     *handler.ReminderHandler
	ProfileHandler      *handler.ProfileHandler
	DeviceHandler       *handler.DeviceHandler
	HealthHandler       *handler.HealthHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	RouterParams
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{RouterParams: params}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", r.HealthHandler.HealthCheck)

	api := e.Group("/api")

	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", r.AuthHandler.Register)
		authGroup.POST("/login", r.AuthHandler.Login)
		authGroup.POST("/forgot-password", r.AuthHandler.ForgotPassword)
		authGroup.POST("/reset-password", r.AuthHandler.ResetPassword)
		authGroup.GET("/me", r.AuthHandler.Me, r.AuthMiddleware.Authenticate)
	}

	// Avatars are addressed by unguessable keys and embedded by clients as plain image URLs.
	api.GET("/avatars/:key", r.ProfileHandler.GetAvatar)

	protected := api.Group("", r.AuthMiddleware.Authenticate)

	conversations := protected.Group("/conversations")
	{
		conversations.GET("", r.ConversationHandler.ListConversations)
		conversations.GET("/:id/messages", r.ConversationHandler.GetMessages)
		conversations.POST("/:id/messages", r.ConversationHandler.SendMessage)
	}

	notifications := protected.Group("/notifications")
	{
		notifications.GET("", r.NotificationHandler.ListNotifications)
		notifications.GET("/count", r.NotificationHandler.UnreadCount)
		notifications.PUT("/read", r.NotificationHandler.MarkAllRead)
	}

	appointments := protected.Group("/appointments")
	{
		appointments.GET("", r.AppointmentHandler.ListAppointments)
		appointments.POST("", r.AppointmentHandler.CreateAppointment)
		appointments.PATCH("/:id/status", r.AppointmentHandler.UpdateStatus, r.AuthMiddleware.RequireRole(entity.RoleDoctor))
	}

	reminders := protected.Group("/reminders")
	{
		reminders.GET("", r.ReminderHandler.ListReminders)
		reminders.POST("", r.ReminderHandler.CreateReminder)
	}

	profiles := protected.Group("/profiles")
	{
		profiles.GET("/doctor", r.ProfileHandler.GetDoctorProfile)
		profiles.PUT("/doctor", r.ProfileHandler.UpdateDoctorProfile)
		profiles.GET("/doctor/qrcode", r.ProfileHandler.DoctorQRCode)
		profiles.GET("/patient", r.ProfileHandler.GetPatientProfile)
		profiles.PUT("/patient", r.ProfileHandler.UpdatePatientProfile)
	}
	e.PUT(AvatarUploadPath, r.ProfileHandler.UploadAvatar,
		echomiddleware.BodyLimit(r.avatarBodyLimit()),
		r.AuthMiddleware.Authenticate,
	)

	doctor := protected.Group("/doctor", r.AuthMiddleware.RequireRole(entity.RoleDoctor))
	{
		doctor.GET("/patients", r.ProfileHandler.ListPatients)
	}

	devices := protected.Group("/devices")
	{
		devices.POST("", r.DeviceHandler.RegisterDevice)
		devices.GET("", r.DeviceHandler.GetUserDevices)
		devices.PUT("/:id/token", r.DeviceHandler.UpdateFCMToken)
		devices.DELETE("/:id", r.DeviceHandler.DeactivateDevice)
	}
}

// avatarBodyLimit allows the configured image size plus multipart framing, in echo's size notation.
func (r *router) avatarBodyLimit() string {
	maxBytes := int64(defaultMaxAvatarBytes)
	if r.Config != nil && r.Config.Storage != nil && r.Config.Storage.MaxAvatarBytes > 0 {
		maxBytes = r.Config.Storage.MaxAvatarBytes
	}

	return strconv.FormatInt((maxBytes+multipartOverhead)/1024, 10) + "K"
}
