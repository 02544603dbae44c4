// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"medlink/config"
	domainerrors "medlink/internal/domain/errors"
	"medlink/internal/domain/service"
	"medlink/internal/errors"
)

const defaultTokenTTL = 7 * 24 * time.Hour

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	secret []byte           // Secret key for signing bearer tokens.
	ttl    time.Duration    // Time-to-live for bearer tokens.
	now    func() time.Time // Clock used for iat/exp and for expiry checks.
}

// NewJWTService is the constructor for jwtService.
// It refuses to build a service without a signing secret.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	ttl := defaultTokenTTL
	if cfg.Auth != nil && cfg.Auth.TokenTTL > 0 {
		ttl = cfg.Auth.TokenTTL
	}

	return newJWTService(cfg.SecretKey.Access, ttl, time.Now)
}

func newJWTService(secret string, ttl time.Duration, now func() time.Time) (*jwtService, error) {
	if secret == "" {
		return nil, errors.New("jwt secret must be provided")
	}

	return &jwtService{
		secret: []byte(secret),
		ttl:    ttl,
		now:    now,
	}, nil
}

// IssueToken signs a token carrying the user id as subject and the role.
func (s *jwtService) IssueToken(userID uuid.UUID, role string) (string, error) {
	issuedAt := s.now()
	claims := jwt.MapClaims{
		"sub":  userID.String(),            // Subject (who the token is for)
		"role": role,                       // Role for stateless authorization
		"iat":  issuedAt.Unix(),            // Issued At
		"exp":  issuedAt.Add(s.ttl).Unix(), // Expiration Time
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign token")
	}

	return signed, nil
}

// ValidateToken parses the token, checks signature, algorithm and expiry, and extracts the claims.
func (s *jwtService) ValidateToken(tokenString string) (*service.Claims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithIssuedAt(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, invalidToken(errors.Wrap(err, "failed to parse token"))
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, invalidToken(errors.New("unexpected token claims"))
	}

	subject, err := mapClaims.GetSubject()
	if err != nil {
		return nil, invalidToken(errors.Wrap(err, "failed to read subject"))
	}
	userID, err := uuid.Parse(subject)
	if err != nil {
		return nil, invalidToken(errors.Wrap(err, "subject is not a user id"))
	}

	role, _ := mapClaims["role"].(string)

	claims := &service.Claims{
		UserID: userID,
		Role:   role,
	}
	if iat, err := mapClaims.GetIssuedAt(); err == nil && iat != nil {
		claims.IssuedAt = iat.Time
	}
	if exp, err := mapClaims.GetExpirationTime(); err == nil && exp != nil {
		claims.ExpiresAt = exp.Time
	}

	return claims, nil
}

// TokenTTL returns the configured lifetime of issued tokens.
func (s *jwtService) TokenTTL() time.Duration {
	return s.ttl
}

func invalidToken(cause error) error {
	return errors.Join(domainerrors.ErrInvalidToken, cause)
}
