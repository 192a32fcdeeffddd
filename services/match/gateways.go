package match

import (
	"context"

	"github.com/AnthonyPaton1/taxi-booking-app-sub003/internal/pkg/models"
	"github.com/AnthonyPaton1/taxi-booking-app-sub003/services/match/cache"
)

// MatchCache defines the ranked result cache the use case reads through
type MatchCache interface {
	GetCachedMatches(ctx context.Context, driver *models.DriverProfile, bookings []*models.BookingCandidate) []*models.MatchResult
	Invalidate(ctx context.Context, driverID string) error
	Stats() cache.Stats
}
