package service

import (
	"time"

	"github.com/google/uuid"
)

// Claims is the verified content of a bearer token.
type Claims struct {
	UserID    uuid.UUID
	Role      string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// TokenService defines the interface for generating and validating JWTs.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// IssueToken signs a bearer token for the user carrying its role.
	IssueToken(userID uuid.UUID, role string) (string, error)

	// ValidateToken checks the validity of a token string.
	// Malformed, tampered and expired tokens all fail.
	ValidateToken(tokenString string) (*Claims, error)

	// TokenTTL returns the configured lifetime of issued tokens.
	TokenTTL() time.Duration
}
