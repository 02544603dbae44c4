// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"time"

	"medlink/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new account.
type RegisterInput struct {
	Name      string
	Email     string
	Password  string
	Role      entity.Role // Defaults to PATIENT when empty.
	Specialty string      // Doctors only.
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
}

// ResetPasswordInput carries the secret delivered out-of-band and the new password.
type ResetPasswordInput struct {
	Email       string
	Token       string
	NewPassword string
}

// --- Output DTOs ---

// LoginOutput returns the bearer token issued after a successful login.
type LoginOutput struct {
	Token     string
	ExpiresAt time.Time
	User      *entity.Identity
}

// AuthUsecase defines credential registration, login, session resolution and password recovery.
type AuthUsecase interface {
	Register(ctx context.Context, input *RegisterInput) (*entity.Identity, error)
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)

	// ResolveSession verifies a bearer token and loads the identity it names.
	ResolveSession(ctx context.Context, token string) (*entity.Identity, error)

	RequestPasswordReset(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, input *ResetPasswordInput) error
}
