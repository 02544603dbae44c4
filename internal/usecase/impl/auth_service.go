// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

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

const (
	defaultResetTokenTTL     = time.Hour
	defaultMinPasswordLength = 6
	defaultMaxPasswordLength = 72 // bcrypt ignores anything past 72 bytes
)

// authService implements the AuthUsecase interface.
type authService struct {
	txManager      repository.TransactionManager
	userRepo       repository.UserRepository
	resetTokenRepo repository.ResetTokenRepository
	hasher         service.PasswordHasher
	tokenService   service.TokenService
	secretGen      service.SecretGenerator
	secretDelivery service.ResetSecretDelivery
	resetTokenTTL  time.Duration
	minPassword    int
	maxPassword    int
	now            func() time.Time
	logger         *slog.Logger
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager      repository.TransactionManager
	UserRepo       repository.UserRepository
	ResetTokenRepo repository.ResetTokenRepository
	Hasher         service.PasswordHasher
	TokenService   service.TokenService
	SecretGen      service.SecretGenerator
	SecretDelivery service.ResetSecretDelivery
	Config         *config.Config
	Logger         *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	resetTokenTTL := defaultResetTokenTTL
	minPassword, maxPassword := defaultMinPasswordLength, defaultMaxPasswordLength
	if params.Config != nil {
		if params.Config.Auth != nil && params.Config.Auth.ResetTokenTTL > 0 {
			resetTokenTTL = params.Config.Auth.ResetTokenTTL
		}
		if policy := params.Config.PasswordPolicy; policy != nil {
			if policy.MinLength > 0 {
				minPassword = policy.MinLength
			}
			if policy.MaxLength > 0 {
				maxPassword = policy.MaxLength
			}
		}
	}

	return &authService{
		txManager:      params.TxManager,
		userRepo:       params.UserRepo,
		resetTokenRepo: params.ResetTokenRepo,
		hasher:         params.Hasher,
		tokenService:   params.TokenService,
		secretGen:      params.SecretGen,
		secretDelivery: params.SecretDelivery,
		resetTokenTTL:  resetTokenTTL,
		minPassword:    minPassword,
		maxPassword:    maxPassword,
		now:            time.Now,
		logger:         params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// normalizeEmail trims and lowercases an email so lookups and the unique index agree.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (srv *authService) validatePassword(password string) error {
	if utf8.RuneCountInString(password) < srv.minPassword {
		return domainerrors.ErrValidationFailed.WithDetails(
			fmt.Sprintf("password must be at least %d characters", srv.minPassword))
	}
	if len(password) > srv.maxPassword {
		return domainerrors.ErrValidationFailed.WithDetails(
			fmt.Sprintf("password must be at most %d bytes", srv.maxPassword))
	}

	return nil
}

// Register creates the user and its role profile in one transaction.
func (srv *authService) Register(ctx context.Context, input *usecase.RegisterInput) (*entity.Identity, error) {
	email := normalizeEmail(input.Email)
	name := strings.TrimSpace(input.Name)
	role := input.Role
	if role == "" {
		role = entity.RolePatient
	}

	switch {
	case name == "":
		return nil, domainerrors.ErrValidationFailed.WithDetails("name is required")
	case email == "":
		return nil, domainerrors.ErrValidationFailed.WithDetails("email is required")
	case !role.IsValid():
		return nil, domainerrors.ErrValidationFailed.WithDetails("role must be PATIENT or DOCTOR")
	}
	if err := srv.validatePassword(input.Password); err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Starting registration", slog.String("role", role.String()), slog.String("email", email))

	_, err := srv.userRepo.FindByEmail(ctx, email)
	if err == nil {
		return nil, domainerrors.ErrEmailExists.WrapMessage("email already registered")
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, errors.Wrap(err, "failed to check existing email")
	}

	passwordHash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, domainerrors.ErrPasswordHashFailed.WrapMessage(err.Error())
	}

	newUser := buildNewUser(name, email, passwordHash, role, input.Specialty, srv.now().UTC())

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.NewUserRepository().Create(ctx, newUser)
	})
	if err != nil {
		srv.log(ctx).Warn("Registration transaction failed", slog.String("email", email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute registration transaction")
	}

	srv.log(ctx).Debug("Registration completed", slog.String("role", role.String()), slog.Any("userID", newUser.ID))

	return newUser.Identity(), nil
}

// buildNewUser prepares a user with exactly one profile matching its role.
func buildNewUser(name, email, passwordHash string, role entity.Role, specialty string, now time.Time) *entity.User {
	user := &entity.User{
		ID:           uuid.Must(uuid.NewV7()),
		Email:        email,
		Name:         name,
		PasswordHash: passwordHash,
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if role == entity.RoleDoctor {
		specialty = strings.TrimSpace(specialty)
		if specialty == "" {
			specialty = entity.DefaultSpecialty
		}
		user.DoctorProfile = &entity.DoctorProfile{UserID: user.ID, Specialty: specialty, UpdatedAt: now}
	} else {
		user.PatientProfile = &entity.PatientProfile{UserID: user.ID, UpdatedAt: now}
	}

	return user
}

// Login verifies credentials and issues a bearer token.
// Unknown email and wrong password fail identically.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	email := normalizeEmail(input.Email)

	user, err := srv.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.log(ctx).Info("Login failed", slog.String("email", email))

			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, errors.Wrap(err, "failed to find user for login")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Info("Login failed", slog.String("email", email))

		return nil, domainerrors.ErrInvalidCredentials
	}

	token, err := srv.tokenService.IssueToken(user.ID, user.Role.String())
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue token")
	}

	return &usecase.LoginOutput{
		Token:     token,
		ExpiresAt: srv.now().UTC().Add(srv.tokenService.TokenTTL()),
		User:      user.Identity(),
	}, nil
}

// ResolveSession verifies the token and loads the user it was issued for.
func (srv *authService) ResolveSession(ctx context.Context, token string) (*entity.Identity, error) {
	claims, err := srv.tokenService.ValidateToken(token)
	if err != nil {
		srv.log(ctx).Debug("Token rejected", slog.Any("error", err))

		return nil, err
	}

	user, err := srv.userRepo.FindByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrSessionUserNotFound
		}

		return nil, errors.Wrap(err, "failed to resolve session user")
	}

	return user.Identity(), nil
}

// RequestPasswordReset stores the hash of a fresh secret and hands the plaintext
// to the out-of-band delivery. Earlier secrets stay valid until they expire.
func (srv *authService) RequestPasswordReset(ctx context.Context, email string) error {
	email = normalizeEmail(email)

	user, err := srv.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrUserNotFound
		}

		return errors.Wrap(err, "failed to find user for password reset")
	}

	secret, err := srv.secretGen.Generate()
	if err != nil {
		return errors.Wrap(err, "failed to generate reset secret")
	}

	secretHash, err := srv.hasher.Hash(secret)
	if err != nil {
		return domainerrors.ErrPasswordHashFailed.WrapMessage(err.Error())
	}

	now := srv.now().UTC()
	token := &entity.ResetToken{
		ID:        uuid.Must(uuid.NewV7()),
		UserID:    user.ID,
		TokenHash: secretHash,
		ExpiresAt: now.Add(srv.resetTokenTTL),
		CreatedAt: now,
	}

	if err := srv.resetTokenRepo.Create(ctx, token); err != nil {
		return errors.Wrap(err, "failed to store reset token")
	}

	if err := srv.secretDelivery.DeliverResetSecret(ctx, user.Email, secret, token.ExpiresAt); err != nil {
		return errors.Wrap(err, "failed to deliver reset secret")
	}

	return nil
}

// ResetPassword checks the presented secret against every unexpired token of the
// user, oldest first. On the first match the password is replaced and all of the
// user's tokens are deleted in the same transaction.
func (srv *authService) ResetPassword(ctx context.Context, input *usecase.ResetPasswordInput) error {
	if err := srv.validatePassword(input.NewPassword); err != nil {
		return err
	}

	user, err := srv.userRepo.FindByEmail(ctx, normalizeEmail(input.Email))
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrInvalidResetToken
		}

		return errors.Wrap(err, "failed to find user for password reset")
	}

	candidates, err := srv.resetTokenRepo.FindActiveByUserID(ctx, user.ID, srv.now().UTC())
	if err != nil {
		return errors.Wrap(err, "failed to load reset tokens")
	}

	matched := false
	for _, candidate := range candidates {
		if srv.hasher.Check(input.Token, candidate.TokenHash) {
			matched = true

			break
		}
	}
	if !matched {
		srv.log(ctx).Info("Password reset rejected", slog.Any("userID", user.ID), slog.Int("candidates", len(candidates)))

		return domainerrors.ErrInvalidResetToken
	}

	passwordHash, err := srv.hasher.Hash(input.NewPassword)
	if err != nil {
		return domainerrors.ErrPasswordHashFailed.WrapMessage(err.Error())
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		deleted, err := repoFactory.NewResetTokenRepository().DeleteByUserID(ctx, user.ID)
		if err != nil {
			return errors.Wrap(err, "failed to delete reset tokens")
		}
		// A concurrent reset with the same secret already consumed the tokens.
		if deleted == 0 {
			return domainerrors.ErrInvalidResetToken
		}

		if err := repoFactory.NewUserRepository().UpdatePassword(ctx, user.ID, passwordHash); err != nil {
			return errors.Wrap(err, "failed to update password")
		}

		srv.log(ctx).Info("Password reset completed", slog.Any("userID", user.ID), slog.Int64("tokens_deleted", deleted))

		return nil
	})
	if err != nil {
		return errors.Wrap(err, "failed to execute password reset transaction")
	}

	return nil
}
