package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AnthonyPaton1/taxi-booking-app-sub003/internal/pkg/circuitbreaker"
	"github.com/AnthonyPaton1/taxi-booking-app-sub003/internal/pkg/models"
)

func newTestCache(store Store, clock *testClock, ranker *countingRanker, opts ...Option) *MatchCache {
	opts = append([]Option{WithClock(clock.Now)}, opts...)
	return New(store, ranker, Config{TTL: time.Minute, StoreTimeout: 50 * time.Millisecond}, opts...)
}

func TestGetCachedMatches_HitSkipsRanking(t *testing.T) {
	clock := newTestClock()
	ranker := newCountingRanker(clock)
	c := newTestCache(NewMemoryStore(0, WithMemoryClock(clock.Now)), clock, ranker)
	bookings := testBookings()

	first := c.GetCachedMatches(context.Background(), testDriver(), bookings)
	second := c.GetCachedMatches(context.Background(), testDriver(), bookings)

	assert.Equal(t, int64(1), ranker.calls.Load())
	assert.Equal(t, []string{"booking-a", "booking-b"}, resultIDs(first))
	require.Equal(t, resultIDs(first), resultIDs(second))
	for i := range first {
		assert.Equal(t, first[i].Score, second[i].Score)
		assert.Equal(t, first[i].Distance, second[i].Distance)
		assert.Equal(t, first[i].ScoreBreakdown, second[i].ScoreBreakdown)
		assert.Same(t, first[i].Booking, second[i].Booking)
	}

	stats := c.Stats()
	assert.Equal(t, int64(1), stats.Hits)
	assert.Equal(t, int64(1), stats.Misses)
	assert.Equal(t, int64(1), stats.Computations)
	assert.Equal(t, int64(0), stats.StoreErrors)
}

func TestGetCachedMatches_HitRebindsToCallerBookings(t *testing.T) {
	clock := newTestClock()
	ranker := newCountingRanker(clock)
	c := newTestCache(NewMemoryStore(0, WithMemoryClock(clock.Now)), clock, ranker)

	c.GetCachedMatches(context.Background(), testDriver(), testBookings())

	fresh := copyBookings(testBookings())
	results := c.GetCachedMatches(context.Background(), testDriver(), fresh)

	assert.Equal(t, int64(1), ranker.calls.Load())
	require.Len(t, results, 2)
	assert.Same(t, fresh[0], results[0].Booking)
	assert.Same(t, fresh[1], results[1].Booking)
}

func TestGetCachedMatches_HitDoesNotShareBreakdown(t *testing.T) {
	clock := newTestClock()
	c := newTestCache(NewMemoryStore(0, WithMemoryClock(clock.Now)), clock, newCountingRanker(clock))
	bookings := testBookings()

	first := c.GetCachedMatches(context.Background(), testDriver(), bookings)
	want := first[0].ScoreBreakdown[models.SubScoreDistance]
	first[0].ScoreBreakdown[models.SubScoreDistance] = models.SubScore{Raw: -1}

	second := c.GetCachedMatches(context.Background(), testDriver(), bookings)
	assert.Equal(t, want, second[0].ScoreBreakdown[models.SubScoreDistance])
}

func TestGetCachedMatches_OrderOfBookingsDoesNotMatter(t *testing.T) {
	clock := newTestClock()
	ranker := newCountingRanker(clock)
	c := newTestCache(NewMemoryStore(0, WithMemoryClock(clock.Now)), clock, ranker)
	bookings := testBookings()
	reversed := []*models.BookingCandidate{bookings[2], bookings[1], bookings[0]}

	c.GetCachedMatches(context.Background(), testDriver(), bookings)
	results := c.GetCachedMatches(context.Background(), testDriver(), reversed)

	assert.Equal(t, int64(1), ranker.calls.Load())
	assert.Equal(t, []string{"booking-a", "booking-b"}, resultIDs(results))
}

func TestGetCachedMatches_InvalidateForcesRecompute(t *testing.T) {
	clock := newTestClock()
	ranker := newCountingRanker(clock)
	c := newTestCache(NewMemoryStore(0, WithMemoryClock(clock.Now)), clock, ranker)
	bookings := testBookings()

	c.GetCachedMatches(context.Background(), testDriver(), bookings)
	require.NoError(t, c.Invalidate(context.Background(), "driver-1"))
	c.GetCachedMatches(context.Background(), testDriver(), bookings)

	assert.Equal(t, int64(2), ranker.calls.Load())
}

func TestGetCachedMatches_InputChangesMiss(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(d *models.DriverProfile, b []*models.BookingCandidate) []*models.BookingCandidate
	}{
		{
			name: "booking updated",
			mutate: func(_ *models.DriverProfile, b []*models.BookingCandidate) []*models.BookingCandidate {
				b[1].UpdatedAt = b[1].UpdatedAt.Add(time.Second)
				return b
			},
		},
		{
			name: "booking added",
			mutate: func(_ *models.DriverProfile, b []*models.BookingCandidate) []*models.BookingCandidate {
				return append(b, testBooking("booking-c", 53.49, -2.25))
			},
		},
		{
			name: "booking removed",
			mutate: func(_ *models.DriverProfile, b []*models.BookingCandidate) []*models.BookingCandidate {
				return b[:2]
			},
		},
		{
			name: "driver suspended",
			mutate: func(d *models.DriverProfile, b []*models.BookingCandidate) []*models.BookingCandidate {
				d.Suspended = true
				return b
			},
		},
		{
			name: "driver radius changed",
			mutate: func(d *models.DriverProfile, b []*models.BookingCandidate) []*models.BookingCandidate {
				d.RadiusMiles = 20
				return b
			},
		},
		{
			name: "driver lost WAV",
			mutate: func(d *models.DriverProfile, b []*models.BookingCandidate) []*models.BookingCandidate {
				d.HasWAV = false
				return b
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clock := newTestClock()
			ranker := newCountingRanker(clock)
			c := newTestCache(NewMemoryStore(0, WithMemoryClock(clock.Now)), clock, ranker)

			driver := testDriver()
			bookings := testBookings()
			c.GetCachedMatches(context.Background(), driver, bookings)

			bookings = tt.mutate(driver, bookings)
			c.GetCachedMatches(context.Background(), driver, bookings)

			assert.Equal(t, int64(2), ranker.calls.Load())
		})
	}
}

func TestGetCachedMatches_EmptyDriverIDBypassesStore(t *testing.T) {
	clock := newTestClock()
	ranker := newCountingRanker(clock)
	store := NewMemoryStore(0, WithMemoryClock(clock.Now))
	c := newTestCache(store, clock, ranker)

	driver := testDriver()
	driver.ID = ""
	c.GetCachedMatches(context.Background(), driver, testBookings())
	results := c.GetCachedMatches(context.Background(), driver, testBookings())

	assert.Len(t, results, 2)
	assert.Equal(t, int64(2), ranker.calls.Load())
	assert.Equal(t, 0, store.Len())
	assert.Equal(t, int64(0), c.Stats().Misses)
}

func TestGetCachedMatches_NilDriver(t *testing.T) {
	clock := newTestClock()
	c := newTestCache(NewMemoryStore(0), clock, newCountingRanker(clock))

	results := c.GetCachedMatches(context.Background(), nil, testBookings())

	require.NotNil(t, results)
	assert.Empty(t, results)
}

func TestGetCachedMatches_StoreFailureFailsOpen(t *testing.T) {
	clock := newTestClock()
	ranker := newCountingRanker(clock)
	store := &failingStore{}
	c := newTestCache(store, clock, ranker)

	results := c.GetCachedMatches(context.Background(), testDriver(), testBookings())

	assert.Equal(t, []string{"booking-a", "booking-b"}, resultIDs(results))
	assert.Equal(t, int64(1), store.gets.Load())
	assert.Equal(t, int64(0), store.sets.Load())
	assert.Equal(t, int64(1), c.Stats().StoreErrors)
	assert.Equal(t, int64(1), c.Stats().Computations)
}

func TestGetCachedMatches_OpenBreakerSkipsStore(t *testing.T) {
	clock := newTestClock()
	ranker := newCountingRanker(clock)
	store := &failingStore{}
	breaker := circuitbreaker.New(circuitbreaker.Config{
		Name:             "test-cache",
		Timeout:          time.Minute,
		FailureThreshold: 2,
	}, circuitbreaker.WithClock(clock.Now))
	c := newTestCache(store, clock, ranker, WithBreaker(breaker))

	for i := 0; i < 5; i++ {
		results := c.GetCachedMatches(context.Background(), testDriver(), testBookings())
		assert.Len(t, results, 2)
	}

	assert.Equal(t, int64(2), store.gets.Load())
	assert.Equal(t, int64(5), ranker.calls.Load())
	assert.Equal(t, circuitbreaker.StateOpen, breaker.State())
	assert.Equal(t, "OPEN", c.Stats().Breaker.State)
}

func TestGetCachedMatches_SlowStoreTimesOut(t *testing.T) {
	clock := newTestClock()
	c := New(blockingStore{}, newCountingRanker(clock), Config{TTL: time.Minute, StoreTimeout: 10 * time.Millisecond}, WithClock(clock.Now))

	start := time.Now()
	results := c.GetCachedMatches(context.Background(), testDriver(), testBookings())

	assert.Len(t, results, 2)
	assert.Less(t, time.Since(start), time.Second)
	assert.Equal(t, int64(1), c.Stats().StoreErrors)
}

func TestGetCachedMatches_TTLBoundedByPickupTime(t *testing.T) {
	clock := newTestClock()
	ranker := newCountingRanker(clock)
	c := newTestCache(NewMemoryStore(0, WithMemoryClock(clock.Now)), clock, ranker)

	bookings := testBookings()
	bookings[0].PickupTime = testNow.Add(10 * time.Second)

	c.GetCachedMatches(context.Background(), testDriver(), bookings)
	clock.Advance(5 * time.Second)
	c.GetCachedMatches(context.Background(), testDriver(), bookings)
	assert.Equal(t, int64(1), ranker.calls.Load())

	clock.Advance(6 * time.Second)
	results := c.GetCachedMatches(context.Background(), testDriver(), bookings)
	assert.Equal(t, int64(2), ranker.calls.Load())
	assert.Equal(t, []string{"booking-b"}, resultIDs(results))
}

func TestGetCachedMatches_TTLBoundedByBidDeadline(t *testing.T) {
	clock := newTestClock()
	ranker := newCountingRanker(clock)
	c := newTestCache(NewMemoryStore(0, WithMemoryClock(clock.Now)), clock, ranker)

	bookings := testBookings()
	deadline := testNow.Add(20 * time.Second)
	bookings[1].Type = models.BookingTypeAdvanced
	bookings[1].BidDeadline = &deadline

	c.GetCachedMatches(context.Background(), testDriver(), bookings)
	clock.Advance(21 * time.Second)
	results := c.GetCachedMatches(context.Background(), testDriver(), bookings)

	assert.Equal(t, int64(2), ranker.calls.Load())
	assert.Equal(t, []string{"booking-a"}, resultIDs(results))
}

func TestGetCachedMatches_ConfiguredTTL(t *testing.T) {
	clock := newTestClock()
	ranker := newCountingRanker(clock)
	c := newTestCache(NewMemoryStore(0, WithMemoryClock(clock.Now)), clock, ranker)
	bookings := testBookings()

	c.GetCachedMatches(context.Background(), testDriver(), bookings)
	clock.Advance(time.Minute)
	c.GetCachedMatches(context.Background(), testDriver(), bookings)

	assert.Equal(t, int64(2), ranker.calls.Load())
}

func TestInvalidate(t *testing.T) {
	t.Run("requires driver id", func(t *testing.T) {
		clock := newTestClock()
		c := newTestCache(NewMemoryStore(0), clock, newCountingRanker(clock))
		assert.ErrorIs(t, c.Invalidate(context.Background(), ""), models.ErrInvalidDriverID)
	})

	t.Run("returns store errors", func(t *testing.T) {
		clock := newTestClock()
		store := &failingStore{}
		c := newTestCache(store, clock, newCountingRanker(clock))

		err := c.Invalidate(context.Background(), "driver-1")
		assert.ErrorIs(t, err, errStoreDown)
		assert.Equal(t, int64(1), c.Stats().StoreErrors)
	})

	t.Run("reaches store while breaker is open", func(t *testing.T) {
		clock := newTestClock()
		store := &failingStore{}
		breaker := circuitbreaker.New(circuitbreaker.Config{Name: "test", Timeout: time.Minute, FailureThreshold: 1})
		c := newTestCache(store, clock, newCountingRanker(clock), WithBreaker(breaker))

		c.GetCachedMatches(context.Background(), testDriver(), testBookings())
		require.Equal(t, circuitbreaker.StateOpen, breaker.State())

		_ = c.Invalidate(context.Background(), "driver-1")
		assert.Equal(t, int64(1), store.deletes.Load())
	})

	t.Run("leaves other drivers alone", func(t *testing.T) {
		clock := newTestClock()
		ranker := newCountingRanker(clock)
		c := newTestCache(NewMemoryStore(0, WithMemoryClock(clock.Now)), clock, ranker)

		other := testDriver()
		other.ID = "driver-2"
		c.GetCachedMatches(context.Background(), testDriver(), testBookings())
		c.GetCachedMatches(context.Background(), other, testBookings())

		require.NoError(t, c.Invalidate(context.Background(), "driver-1"))
		c.GetCachedMatches(context.Background(), other, testBookings())

		assert.Equal(t, int64(2), ranker.calls.Load())
	})
}

func TestConfigFromModel(t *testing.T) {
	cfg := ConfigFromModel(models.CacheConfig{TTLSeconds: 30, StoreTimeoutMs: 20})
	assert.Equal(t, 30*time.Second, cfg.TTL)
	assert.Equal(t, 20*time.Millisecond, cfg.StoreTimeout)

	cfg = ConfigFromModel(models.CacheConfig{})
	assert.Equal(t, DefaultTTL, cfg.TTL)
	assert.Equal(t, DefaultStoreTimeout, cfg.StoreTimeout)
}
