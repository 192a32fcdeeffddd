package usecase

import (
	"context"
	"fmt"

	"github.com/AnthonyPaton1/taxi-booking-app-sub003/internal/pkg/logger"
	"github.com/AnthonyPaton1/taxi-booking-app-sub003/internal/pkg/models"
	nrpkg "github.com/AnthonyPaton1/taxi-booking-app-sub003/internal/pkg/newrelic"
	"github.com/AnthonyPaton1/taxi-booking-app-sub003/internal/utils"
	"github.com/AnthonyPaton1/taxi-booking-app-sub003/services/match/cache"
)

const (
	defaultPageLimit = 20
	maxPageLimit     = 100
	defaultPrefetch  = 500
)

// GetDriverMatches returns one page of the bookings driverID can take, best first
func (uc *MatchUC) GetDriverMatches(ctx context.Context, driverID string, page models.MatchPage) (*models.MatchList, error) {
	if driverID == "" {
		return nil, models.ErrInvalidDriverID
	}
	if page.Limit < 0 || page.Offset < 0 {
		return nil, models.ErrInvalidPage
	}
	page.Limit = uc.pageLimit(page.Limit)

	driver, err := nrpkg.WithSegmentAndReturn(ctx, "match.load_driver", func() (*models.DriverProfile, error) {
		return uc.driverRepo.GetDriverProfile(ctx, driverID)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load driver %s: %w", driverID, err)
	}

	list := &models.MatchList{
		DriverID: driverID,
		Limit:    page.Limit,
		Offset:   page.Offset,
		Matches:  []*models.MatchResult{},
	}

	// Ineligible drivers match nothing, so skip the booking query.
	if !driver.HasBase() || !driver.Approved || driver.Suspended {
		logger.DebugCtx(ctx, "Driver cannot be matched",
			logger.DriverID(driverID),
			logger.Bool("has_base", driver.HasBase()),
			logger.Bool("approved", driver.Approved),
			logger.Bool("suspended", driver.Suspended))
		return list, nil
	}

	precision, cells := utils.GeohashCoverage(*driver.BaseLat, *driver.BaseLng, driver.EffectiveRadius())
	query := models.BookingQuery{
		Geohashes:        cells,
		GeohashPrecision: precision,
		PickupAfter:      uc.now(),
		Limit:            uc.prefetchLimit(),
	}

	bookings, err := nrpkg.WithSegmentAndReturn(ctx, "match.load_bookings", func() ([]*models.BookingCandidate, error) {
		return uc.bookingRepo.ListOpenBookings(ctx, query)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load open bookings: %w", err)
	}
	if len(bookings) == query.Limit {
		logger.WarnCtx(ctx, "Open booking prefetch hit its limit",
			logger.DriverID(driverID),
			logger.Int("limit", query.Limit))
	}

	var results []*models.MatchResult
	_ = nrpkg.WithSegment(ctx, "match.rank", func() error {
		results = uc.matchCache.GetCachedMatches(ctx, driver, bookings)
		return nil
	})

	list.Total = len(results)
	list.Matches = paginate(results, page.Offset, page.Limit)

	logger.DebugCtx(ctx, "Driver matches computed",
		logger.DriverID(driverID),
		logger.Int("candidates", len(bookings)),
		logger.Int("eligible", list.Total),
		logger.Uint32("geohash_precision", uint32(precision)))

	return list, nil
}

// InvalidateDriver drops every cached ranking for driverID
func (uc *MatchUC) InvalidateDriver(ctx context.Context, driverID string) error {
	if driverID == "" {
		return models.ErrInvalidDriverID
	}
	return uc.matchCache.Invalidate(ctx, driverID)
}

// HandleDriverEvent invalidates the cache for a driver changed on another replica
func (uc *MatchUC) HandleDriverEvent(ctx context.Context, event models.DriverEvent) error {
	if event.DriverID == "" {
		return models.ErrInvalidDriverID
	}
	if event.Source != "" && event.Source == uc.cfg.App.InstanceID {
		// already invalidated synchronously by the flow that published it
		return nil
	}

	logger.InfoCtx(ctx, "Driver changed, invalidating match cache",
		logger.DriverID(event.DriverID),
		logger.EventType(string(event.Type)),
		logger.String("source", event.Source))

	return uc.InvalidateDriver(ctx, event.DriverID)
}

// CacheStats exposes the match cache counters
func (uc *MatchUC) CacheStats() cache.Stats {
	return uc.matchCache.Stats()
}

func (uc *MatchUC) pageLimit(requested int) int {
	defLimit, maxLimit := uc.cfg.Match.DefaultLimit, uc.cfg.Match.MaxLimit
	if defLimit <= 0 {
		defLimit = defaultPageLimit
	}
	if maxLimit <= 0 {
		maxLimit = maxPageLimit
	}
	if requested == 0 {
		requested = defLimit
	}
	if requested > maxLimit {
		requested = maxLimit
	}
	return requested
}

func (uc *MatchUC) prefetchLimit() int {
	if uc.cfg.Match.PrefetchLimit > 0 {
		return uc.cfg.Match.PrefetchLimit
	}
	return defaultPrefetch
}

func paginate(results []*models.MatchResult, offset, limit int) []*models.MatchResult {
	if offset >= len(results) {
		return []*models.MatchResult{}
	}
	end := offset + limit
	if end > len(results) {
		end = len(results)
	}
	return results[offset:end]
}
