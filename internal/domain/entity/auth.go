// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// ResetToken is an outstanding password-reset credential.
// Several may coexist for one user; all of them are removed once any is redeemed.
type ResetToken struct {
	ID        uuid.UUID // The unique ID for this specific reset token record.
	UserID    uuid.UUID // Links this token to the User it belongs to.
	TokenHash string    // bcrypt digest of the secret handed out of band.
	ExpiresAt time.Time // Tokens are only eligible while ExpiresAt is in the future.
	CreatedAt time.Time // Timestamp of when this token was requested.
}

// IsExpired reports whether the token can no longer be redeemed at now.
func (t *ResetToken) IsExpired(now time.Time) bool {
	return !t.ExpiresAt.After(now)
}
