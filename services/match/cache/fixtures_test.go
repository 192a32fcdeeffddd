package cache

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/AnthonyPaton1/taxi-booking-app-sub003/internal/pkg/models"
	"github.com/AnthonyPaton1/taxi-booking-app-sub003/services/match/engine"
)

var testNow = time.Date(2024, 3, 14, 9, 0, 0, 0, time.UTC)

type testClock struct {
	mu  sync.Mutex
	now time.Time
}

func newTestClock() *testClock {
	return &testClock{now: testNow}
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *testClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// countingRanker records how often the real ranker runs
type countingRanker struct {
	inner engine.Ranker
	calls atomic.Int64
}

func newCountingRanker(clock *testClock) *countingRanker {
	return &countingRanker{
		inner: engine.NewRanker(engine.NewScorer(engine.DefaultScoringConfig()), engine.WithClock(clock.Now)),
	}
}

func (r *countingRanker) Rank(driver *models.DriverProfile, bookings []*models.BookingCandidate) []*models.MatchResult {
	r.calls.Add(1)
	return r.inner.Rank(driver, bookings)
}

func (r *countingRanker) Signature() string {
	return r.inner.Signature()
}

var errStoreDown = errors.New("store down")

// failingStore fails every call and counts them
type failingStore struct {
	gets    atomic.Int64
	sets    atomic.Int64
	deletes atomic.Int64
}

func (s *failingStore) Get(context.Context, string, string) ([]Entry, bool, error) {
	s.gets.Add(1)
	return nil, false, errStoreDown
}

func (s *failingStore) Set(context.Context, string, string, []Entry, time.Duration) error {
	s.sets.Add(1)
	return errStoreDown
}

func (s *failingStore) DeleteDriver(context.Context, string) error {
	s.deletes.Add(1)
	return errStoreDown
}

// blockingStore waits for the call context to end
type blockingStore struct{}

func (blockingStore) Get(ctx context.Context, _, _ string) ([]Entry, bool, error) {
	<-ctx.Done()
	return nil, false, ctx.Err()
}

func (blockingStore) Set(ctx context.Context, _, _ string, _ []Entry, _ time.Duration) error {
	<-ctx.Done()
	return ctx.Err()
}

func (blockingStore) DeleteDriver(ctx context.Context, _ string) error {
	<-ctx.Done()
	return ctx.Err()
}

func f64(v float64) *float64 { return &v }

func testDriver() *models.DriverProfile {
	return &models.DriverProfile{
		ID:             "driver-1",
		Approved:       true,
		HasWAV:         true,
		BaseLat:        f64(53.4808),
		BaseLng:        f64(-2.2426),
		RadiusMiles:    10,
		Rating:         4.5,
		CompletedRides: 20,
		UpdatedAt:      testNow.Add(-24 * time.Hour),
	}
}

func testBooking(id string, lat, lng float64) *models.BookingCandidate {
	return &models.BookingCandidate{
		ID:         id,
		Type:       models.BookingTypeInstant,
		Status:     models.BookingStatusOpen,
		PickupLat:  f64(lat),
		PickupLng:  f64(lng),
		PickupTime: testNow.Add(3 * time.Hour),
		UpdatedAt:  testNow.Add(-time.Hour),
	}
}

func testBookings() []*models.BookingCandidate {
	return []*models.BookingCandidate{
		testBooking("booking-a", 53.4831, -2.2441),
		testBooking("booking-b", 53.52, -2.2426),
		testBooking("booking-far", 53.6500, -2.4500),
	}
}

func copyBookings(in []*models.BookingCandidate) []*models.BookingCandidate {
	out := make([]*models.BookingCandidate, len(in))
	for i, b := range in {
		c := *b
		out[i] = &c
	}
	return out
}

func resultIDs(results []*models.MatchResult) []string {
	ids := make([]string, len(results))
	for i, r := range results {
		ids[i] = r.Booking.ID
	}
	return ids
}
