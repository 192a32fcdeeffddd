package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AnthonyPaton1/taxi-booking-app-sub003/internal/pkg/models"
	"github.com/AnthonyPaton1/taxi-booking-app-sub003/services/match/cache"
	"github.com/AnthonyPaton1/taxi-booking-app-sub003/services/match/engine"
	"github.com/AnthonyPaton1/taxi-booking-app-sub003/services/match/mocks"
)

var testNow = time.Date(2024, 3, 14, 9, 0, 0, 0, time.UTC)

func f64(v float64) *float64 { return &v }

func testConfig() *models.Config {
	return &models.Config{
		App: models.AppConfig{InstanceID: "replica-a"},
		Match: models.MatchConfig{
			DefaultLimit:  2,
			MaxLimit:      5,
			PrefetchLimit: 100,
		},
	}
}

func manchesterDriver(hasWAV bool) *models.DriverProfile {
	return &models.DriverProfile{
		ID:             "driver-1",
		Approved:       true,
		HasWAV:         hasWAV,
		BaseLat:        f64(53.4808),
		BaseLng:        f64(-2.2426),
		RadiusMiles:    10,
		Rating:         4.5,
		CompletedRides: 20,
	}
}

func booking(id string, lat, lng float64, wheelchair bool) *models.BookingCandidate {
	return &models.BookingCandidate{
		ID:            id,
		Type:          models.BookingTypeInstant,
		Status:        models.BookingStatusOpen,
		PickupLat:     f64(lat),
		PickupLng:     f64(lng),
		PickupTime:    testNow.Add(2 * time.Hour),
		Accessibility: models.AccessibilityProfile{WheelchairAccess: wheelchair},
		UpdatedAt:     testNow.Add(-time.Hour),
	}
}

func results(ids ...string) []*models.MatchResult {
	out := make([]*models.MatchResult, len(ids))
	for i, id := range ids {
		out[i] = &models.MatchResult{Booking: &models.BookingCandidate{ID: id}, Score: float64(100 - i)}
	}
	return out
}

func matchIDs(list *models.MatchList) []string {
	ids := make([]string, len(list.Matches))
	for i, m := range list.Matches {
		ids[i] = m.Booking.ID
	}
	return ids
}

func newTestUC(t *testing.T) (*MatchUC, *mocks.MockDriverRepo, *mocks.MockBookingRepo, *mocks.MockMatchCache) {
	ctrl := gomock.NewController(t)
	driverRepo := mocks.NewMockDriverRepo(ctrl)
	bookingRepo := mocks.NewMockBookingRepo(ctrl)
	matchCache := mocks.NewMockMatchCache(ctrl)

	uc := NewMatchUC(testConfig(), driverRepo, bookingRepo, matchCache)
	uc.now = func() time.Time { return testNow }
	return uc, driverRepo, bookingRepo, matchCache
}

func TestGetDriverMatches_Success(t *testing.T) {
	uc, driverRepo, bookingRepo, matchCache := newTestUC(t)
	driver := manchesterDriver(true)
	bookings := []*models.BookingCandidate{booking("a", 53.4831, -2.2441, true)}

	driverRepo.EXPECT().GetDriverProfile(gomock.Any(), "driver-1").Return(driver, nil)
	bookingRepo.EXPECT().
		ListOpenBookings(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, q models.BookingQuery) ([]*models.BookingCandidate, error) {
			assert.Equal(t, testNow, q.PickupAfter)
			assert.Equal(t, 100, q.Limit)
			assert.Equal(t, uint(4), q.GeohashPrecision)
			assert.Len(t, q.Geohashes, 9)
			return bookings, nil
		})
	matchCache.EXPECT().GetCachedMatches(gomock.Any(), driver, bookings).Return(results("a"))

	list, err := uc.GetDriverMatches(context.Background(), "driver-1", models.MatchPage{})

	require.NoError(t, err)
	assert.Equal(t, "driver-1", list.DriverID)
	assert.Equal(t, 1, list.Total)
	assert.Equal(t, 2, list.Limit)
	assert.Equal(t, []string{"a"}, matchIDs(list))
}

func TestGetDriverMatches_Pagination(t *testing.T) {
	tests := []struct {
		name      string
		page      models.MatchPage
		wantIDs   []string
		wantLimit int
	}{
		{"default limit", models.MatchPage{}, []string{"a", "b"}, 2},
		{"explicit limit", models.MatchPage{Limit: 3}, []string{"a", "b", "c"}, 3},
		{"limit capped", models.MatchPage{Limit: 50}, []string{"a", "b", "c", "d", "e"}, 5},
		{"offset", models.MatchPage{Limit: 2, Offset: 4}, []string{"e", "f"}, 2},
		{"offset past end", models.MatchPage{Limit: 2, Offset: 10}, []string{}, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, driverRepo, bookingRepo, matchCache := newTestUC(t)
			driverRepo.EXPECT().GetDriverProfile(gomock.Any(), "driver-1").Return(manchesterDriver(true), nil)
			bookingRepo.EXPECT().ListOpenBookings(gomock.Any(), gomock.Any()).Return(nil, nil)
			matchCache.EXPECT().GetCachedMatches(gomock.Any(), gomock.Any(), gomock.Any()).Return(results("a", "b", "c", "d", "e", "f"))

			list, err := uc.GetDriverMatches(context.Background(), "driver-1", tt.page)

			require.NoError(t, err)
			assert.Equal(t, 6, list.Total)
			assert.Equal(t, tt.wantLimit, list.Limit)
			assert.Equal(t, tt.wantIDs, matchIDs(list))
		})
	}
}

func TestGetDriverMatches_InvalidInput(t *testing.T) {
	uc, _, _, _ := newTestUC(t)

	_, err := uc.GetDriverMatches(context.Background(), "", models.MatchPage{})
	assert.ErrorIs(t, err, models.ErrInvalidDriverID)

	_, err = uc.GetDriverMatches(context.Background(), "driver-1", models.MatchPage{Limit: -1})
	assert.ErrorIs(t, err, models.ErrInvalidPage)

	_, err = uc.GetDriverMatches(context.Background(), "driver-1", models.MatchPage{Offset: -1})
	assert.ErrorIs(t, err, models.ErrInvalidPage)
}

func TestGetDriverMatches_DriverNotFound(t *testing.T) {
	uc, driverRepo, _, _ := newTestUC(t)
	driverRepo.EXPECT().GetDriverProfile(gomock.Any(), "ghost").Return(nil, models.ErrDriverNotFound)

	_, err := uc.GetDriverMatches(context.Background(), "ghost", models.MatchPage{})

	assert.ErrorIs(t, err, models.ErrDriverNotFound)
}

func TestGetDriverMatches_UnmatchableDriverSkipsBookings(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(d *models.DriverProfile)
	}{
		{"no base", func(d *models.DriverProfile) { d.BaseLng = nil }},
		{"not approved", func(d *models.DriverProfile) { d.Approved = false }},
		{"suspended", func(d *models.DriverProfile) { d.Suspended = true }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, driverRepo, _, _ := newTestUC(t)
			driver := manchesterDriver(true)
			tt.mutate(driver)
			driverRepo.EXPECT().GetDriverProfile(gomock.Any(), "driver-1").Return(driver, nil)

			list, err := uc.GetDriverMatches(context.Background(), "driver-1", models.MatchPage{})

			require.NoError(t, err)
			assert.Equal(t, 0, list.Total)
			require.NotNil(t, list.Matches)
			assert.Empty(t, list.Matches)
		})
	}
}

func TestGetDriverMatches_BookingRepoError(t *testing.T) {
	uc, driverRepo, bookingRepo, _ := newTestUC(t)
	dbErr := errors.New("connection refused")
	driverRepo.EXPECT().GetDriverProfile(gomock.Any(), "driver-1").Return(manchesterDriver(true), nil)
	bookingRepo.EXPECT().ListOpenBookings(gomock.Any(), gomock.Any()).Return(nil, dbErr)

	_, err := uc.GetDriverMatches(context.Background(), "driver-1", models.MatchPage{})

	assert.ErrorIs(t, err, dbErr)
}

func TestInvalidateDriver(t *testing.T) {
	uc, _, _, matchCache := newTestUC(t)

	matchCache.EXPECT().Invalidate(gomock.Any(), "driver-1").Return(nil)
	assert.NoError(t, uc.InvalidateDriver(context.Background(), "driver-1"))

	assert.ErrorIs(t, uc.InvalidateDriver(context.Background(), ""), models.ErrInvalidDriverID)
}

func TestHandleDriverEvent(t *testing.T) {
	t.Run("invalidates driver", func(t *testing.T) {
		uc, _, _, matchCache := newTestUC(t)
		matchCache.EXPECT().Invalidate(gomock.Any(), "driver-1").Return(nil)

		err := uc.HandleDriverEvent(context.Background(), models.DriverEvent{
			DriverID: "driver-1",
			Type:     models.DriverEventSuspended,
			Source:   "replica-b",
		})
		assert.NoError(t, err)
	})

	t.Run("skips own events", func(t *testing.T) {
		uc, _, _, _ := newTestUC(t)

		err := uc.HandleDriverEvent(context.Background(), models.DriverEvent{
			DriverID: "driver-1",
			Type:     models.DriverEventSuspended,
			Source:   "replica-a",
		})
		assert.NoError(t, err)
	})

	t.Run("propagates invalidation errors", func(t *testing.T) {
		uc, _, _, matchCache := newTestUC(t)
		storeErr := errors.New("redis down")
		matchCache.EXPECT().Invalidate(gomock.Any(), "driver-1").Return(storeErr)

		err := uc.HandleDriverEvent(context.Background(), models.DriverEvent{DriverID: "driver-1"})
		assert.ErrorIs(t, err, storeErr)
	})

	t.Run("requires driver id", func(t *testing.T) {
		uc, _, _, _ := newTestUC(t)
		assert.ErrorIs(t, uc.HandleDriverEvent(context.Background(), models.DriverEvent{}), models.ErrInvalidDriverID)
	})
}

func TestCacheStats(t *testing.T) {
	uc, _, _, matchCache := newTestUC(t)
	matchCache.EXPECT().Stats().Return(cache.Stats{Hits: 3, Misses: 1})

	stats := uc.CacheStats()

	assert.Equal(t, int64(3), stats.Hits)
}

// The remaining tests run the real ranker and cache behind mocked repositories.

func newRankingUC(t *testing.T, driver *models.DriverProfile, bookings []*models.BookingCandidate) (*MatchUC, *cache.MatchCache) {
	ctrl := gomock.NewController(t)
	driverRepo := mocks.NewMockDriverRepo(ctrl)
	bookingRepo := mocks.NewMockBookingRepo(ctrl)
	driverRepo.EXPECT().GetDriverProfile(gomock.Any(), driver.ID).Return(driver, nil).AnyTimes()
	bookingRepo.EXPECT().ListOpenBookings(gomock.Any(), gomock.Any()).Return(bookings, nil).AnyTimes()

	clock := func() time.Time { return testNow }
	ranker := engine.NewRanker(engine.NewScorer(engine.DefaultScoringConfig()), engine.WithClock(clock))
	matchCache := cache.New(cache.NewMemoryStore(0, cache.WithMemoryClock(clock)), ranker, cache.Config{TTL: time.Minute}, cache.WithClock(clock))

	uc := NewMatchUC(testConfig(), driverRepo, bookingRepo, matchCache)
	uc.now = clock
	return uc, matchCache
}

func TestGetDriverMatches_ManchesterScenario(t *testing.T) {
	bookings := []*models.BookingCandidate{
		booking("A", 53.4831, -2.2441, true),
		booking("B", 53.40, -2.50, false),
	}

	t.Run("WAV driver", func(t *testing.T) {
		uc, _ := newRankingUC(t, manchesterDriver(true), bookings)

		list, err := uc.GetDriverMatches(context.Background(), "driver-1", models.MatchPage{})

		require.NoError(t, err)
		require.Equal(t, []string{"A"}, matchIDs(list))
		assert.InDelta(t, 0.2, list.Matches[0].Distance, 0.05)
	})

	t.Run("non-WAV driver", func(t *testing.T) {
		uc, _ := newRankingUC(t, manchesterDriver(false), bookings)

		list, err := uc.GetDriverMatches(context.Background(), "driver-1", models.MatchPage{})

		require.NoError(t, err)
		assert.Empty(t, list.Matches)
		assert.Equal(t, 0, list.Total)
	})
}

func TestGetDriverMatches_InvalidationForcesRecompute(t *testing.T) {
	bookings := make([]*models.BookingCandidate, 0, 5)
	for i := 0; i < 5; i++ {
		bookings = append(bookings, booking(fmt.Sprintf("b-%d", i), 53.48+float64(i)*0.01, -2.24, false))
	}
	uc, matchCache := newRankingUC(t, manchesterDriver(true), bookings)
	ctx := context.Background()

	first, err := uc.GetDriverMatches(ctx, "driver-1", models.MatchPage{Limit: 2})
	require.NoError(t, err)
	second, err := uc.GetDriverMatches(ctx, "driver-1", models.MatchPage{Limit: 2, Offset: 2})
	require.NoError(t, err)

	assert.Equal(t, 5, first.Total)
	assert.Equal(t, []string{"b-0", "b-1"}, matchIDs(first))
	assert.Equal(t, []string{"b-2", "b-3"}, matchIDs(second))
	assert.Equal(t, int64(1), matchCache.Stats().Computations)

	require.NoError(t, uc.InvalidateDriver(ctx, "driver-1"))
	_, err = uc.GetDriverMatches(ctx, "driver-1", models.MatchPage{})
	require.NoError(t, err)

	assert.Equal(t, int64(2), matchCache.Stats().Computations)
}
