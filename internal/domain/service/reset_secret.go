package service

import (
	"context"
	"time"
)

// SecretGenerator produces the high-entropy secrets handed out for password resets.
type SecretGenerator interface {
	Generate() (string, error)
}

// ResetSecretDelivery hands a plaintext reset secret to its owner out of band.
// The secret never appears in an HTTP response.
type ResetSecretDelivery interface {
	DeliverResetSecret(ctx context.Context, email, secret string, expiresAt time.Time) error
}
