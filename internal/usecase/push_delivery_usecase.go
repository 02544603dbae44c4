package usecase

import (
	"context"

	"medlink/internal/domain/entity"

	"github.com/pkg/errors"
)

// DeliveryResult summarises one push delivery attempt.
type DeliveryResult struct {
	DeviceCount    int
	SuccessCount   int
	FailureCount   int
	RemovedDevices int64
}

// PushDeliveryUsecase delivers published notification events to the recipient's devices.
type PushDeliveryUsecase interface {
	Deliver(ctx context.Context, event *entity.NotificationEvent) (*DeliveryResult, error)
}

// ErrInvalidEvent marks an event that can never be delivered, so redelivery is pointless.
var ErrInvalidEvent = errors.New("invalid notification event")
