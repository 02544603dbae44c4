package auth

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"log/slog"
	"time"

	"medlink/internal/domain/service"
	"medlink/internal/errors"
)

const resetSecretBytes = 32

type randomSecretGenerator struct{}

// NewSecretGenerator returns a generator of 64-character hex secrets drawn from crypto/rand.
func NewSecretGenerator() service.SecretGenerator {
	return &randomSecretGenerator{}
}

func (g *randomSecretGenerator) Generate() (string, error) {
	buf := make([]byte, resetSecretBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", errors.Wrap(err, "failed to read random bytes")
	}

	return hex.EncodeToString(buf), nil
}

// logSecretDelivery stands in for an email sender: the secret goes to the
// operator log and nowhere else.
type logSecretDelivery struct {
	logger *slog.Logger
}

// NewLogSecretDelivery returns a ResetSecretDelivery that writes the secret to the log.
func NewLogSecretDelivery(logger *slog.Logger) service.ResetSecretDelivery {
	return &logSecretDelivery{logger: logger}
}

func (d *logSecretDelivery) DeliverResetSecret(ctx context.Context, email, secret string, expiresAt time.Time) error {
	d.logger.WarnContext(ctx, "Password reset secret issued (out-of-band delivery)",
		slog.String("email", email),
		slog.String("reset_secret", secret),
		slog.Time("expires_at", expiresAt),
	)

	return nil
}
