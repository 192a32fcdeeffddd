package drivers

import (
	"context"

	"github.com/AnthonyPaton1/taxi-booking-app-sub003/internal/pkg/models"
)

// DriverUC defines the driver administration flows. Each one commits the
// change, invalidates the driver's cached matches and announces the change.
type DriverUC interface {
	ApproveDriver(ctx context.Context, driverID string) error
	RejectDriver(ctx context.Context, driverID string) error
	SuspendDriver(ctx context.Context, driverID string) error
	ReactivateDriver(ctx context.Context, driverID string) error
	DeleteDriver(ctx context.Context, driverID string) error
	UpdateCapabilities(ctx context.Context, driverID string, caps models.DriverCapabilities) (*models.DriverProfile, error)
}
