package match

import (
	"context"

	"github.com/AnthonyPaton1/taxi-booking-app-sub003/internal/pkg/models"
)

// BookingRepo loads open bookings offered to drivers
type BookingRepo interface {
	ListOpenBookings(ctx context.Context, query models.BookingQuery) ([]*models.BookingCandidate, error)
}

// DriverRepo loads the driver profile a match request is for
type DriverRepo interface {
	GetDriverProfile(ctx context.Context, driverID string) (*models.DriverProfile, error)
}
