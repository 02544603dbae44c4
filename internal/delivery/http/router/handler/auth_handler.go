package handler

import (
	"log/slog"
	"strings"

	"medlink/internal/delivery/http/response"
	"medlink/internal/domain/entity"
	"medlink/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AuthHandler holds dependencies for registration, login and password recovery.
type AuthHandler struct {
	uc     usecase.AuthUsecase
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(uc usecase.AuthUsecase, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		uc:     uc,
		logger: logger,
	}
}

// RegisterRequest is the body of POST /api/auth/register.
type RegisterRequest struct {
	Name      string `json:"name" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required"`
	Role      string `json:"role" validate:"omitempty,oneof=PATIENT DOCTOR"`
	Specialty string `json:"specialty"`
}

// LoginRequest is the body of POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// ForgotPasswordRequest is the body of POST /api/auth/forgot-password.
type ForgotPasswordRequest struct {
	Email string `json:"email" validate:"required"`
}

// ResetPasswordRequest is the body of POST /api/auth/reset-password.
type ResetPasswordRequest struct {
	Email       string `json:"email" validate:"required"`
	Token       string `json:"token" validate:"required"`
	NewPassword string `json:"newPassword" validate:"required"`
}

// Normalize trims the name and normalizes the email.
func (r *RegisterRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = normalizeEmail(r.Email)
}

func (r *LoginRequest) Normalize() { r.Email = normalizeEmail(r.Email) }

func (r *ForgotPasswordRequest) Normalize() { r.Email = normalizeEmail(r.Email) }

func (r *ResetPasswordRequest) Normalize() {
	r.Email = normalizeEmail(r.Email)
	r.Token = strings.TrimSpace(r.Token)
}

type registerResponse struct {
	Message string        `json:"message"`
	User    *identityView `json:"user"`
}

type loginResponse struct {
	Token string        `json:"token"`
	User  *identityView `json:"user"`
}

type messageResponse struct {
	Message string `json:"message"`
}

// Register handles account creation.
func (h *AuthHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	identity, err := h.uc.Register(c.Request().Context(), &usecase.RegisterInput{
		Name:      req.Name,
		Email:     req.Email,
		Password:  req.Password,
		Role:      entity.Role(req.Role),
		Specialty: req.Specialty,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Created(c, &registerResponse{
		Message: "User created successfully. Please log in.",
		User:    newIdentityView(identity),
	}, "User registered successfully")
}

// Login handles the credential exchange for a bearer token.
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	output, err := h.uc.Login(c.Request().Context(), &usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, &loginResponse{
		Token: output.Token,
		User:  newIdentityView(output.User),
	}, "Login successful")
}

// Me returns the identity resolved by the session gate.
func (h *AuthHandler) Me(c echo.Context) error {
	identity, err := caller(c)
	if err != nil {
		return err
	}

	return response.OK(c, newIdentityView(identity), "Current user retrieved successfully")
}

// ForgotPassword issues a reset secret delivered out of band.
func (h *AuthHandler) ForgotPassword(c echo.Context) error {
	var req ForgotPasswordRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	if err := h.uc.RequestPasswordReset(c.Request().Context(), req.Email); err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, &messageResponse{Message: "Password reset email sent"}, "Password reset requested")
}

// ResetPassword redeems a reset secret and sets the new password.
func (h *AuthHandler) ResetPassword(c echo.Context) error {
	var req ResetPasswordRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	err := h.uc.ResetPassword(c.Request().Context(), &usecase.ResetPasswordInput{
		Email:       req.Email,
		Token:       req.Token,
		NewPassword: req.NewPassword,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, &messageResponse{Message: "Password reset successful"}, "Password reset successful")
}
