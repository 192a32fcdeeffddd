package drivers

import (
	"context"

	"github.com/AnthonyPaton1/taxi-booking-app-sub003/internal/pkg/models"
)

// DriverGW publishes driver change events to other services
type DriverGW interface {
	PublishDriverUpdated(ctx context.Context, event models.DriverEvent) error
}

// MatchInvalidator drops a driver's cached matches
type MatchInvalidator interface {
	InvalidateDriver(ctx context.Context, driverID string) error
}
