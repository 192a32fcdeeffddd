package match

import (
	"context"

	"github.com/AnthonyPaton1/taxi-booking-app-sub003/internal/pkg/models"
	"github.com/AnthonyPaton1/taxi-booking-app-sub003/services/match/cache"
)

// MatchUC defines the interface for match business logic
type MatchUC interface {
	GetDriverMatches(ctx context.Context, driverID string, page models.MatchPage) (*models.MatchList, error)
	InvalidateDriver(ctx context.Context, driverID string) error
	HandleDriverEvent(ctx context.Context, event models.DriverEvent) error
	CacheStats() cache.Stats
}
