package shared

import (
	"context"

	"laundromat-api/internal/domain/notification"

	"github.com/google/uuid"
)

// Notifier delivers events to users. Delivery is best effort.
type Notifier interface {
	Notify(ctx context.Context, events ...notification.Event) error
}

// AvailabilityInvalidator drops the cached occupancy of one day for a machine
// and its laundromat after a booking write.
type AvailabilityInvalidator interface {
	Invalidate(ctx context.Context, machineID, laundromatID uuid.UUID, dayKey string) error
}
