package drivers

import (
	"context"

	"github.com/AnthonyPaton1/taxi-booking-app-sub003/internal/pkg/models"
)

// DriverRepo defines the driver persistence operations. Mutations return
// models.ErrDriverNotFound when no live driver has the id.
type DriverRepo interface {
	GetDriverProfile(ctx context.Context, driverID string) (*models.DriverProfile, error)
	SetApproval(ctx context.Context, driverID string, approved bool) error
	SetSuspended(ctx context.Context, driverID string, suspended bool) error
	SoftDelete(ctx context.Context, driverID string) error
	UpdateCapabilities(ctx context.Context, driverID string, caps models.DriverCapabilities) (*models.DriverProfile, error)
}
