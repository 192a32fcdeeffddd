package engine

import (
	"encoding/json"
	"fmt"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AnthonyPaton1/taxi-booking-app-sub003/internal/pkg/models"
	"github.com/AnthonyPaton1/taxi-booking-app-sub003/internal/utils"
)

func newTestRanker() *MatchRanker {
	return NewRanker(NewScorer(DefaultScoringConfig()), WithClock(fixedClock))
}

func TestRank_ManchesterWAVDriver(t *testing.T) {
	a, b := bookingA(), bookingB()

	results := newTestRanker().Rank(manchesterDriver(), []*models.BookingCandidate{a, b})

	require.Len(t, results, 1)
	assert.Same(t, a, results[0].Booking)
	assert.InDelta(t, 0.2, results[0].Distance, 0.05)
	assert.Greater(t, results[0].Score, 0.0)
	assert.Len(t, results[0].ScoreBreakdown, 3)
}

func TestRank_ManchesterNonWAVDriver(t *testing.T) {
	driver := manchesterDriver()
	driver.HasWAV = false

	results := newTestRanker().Rank(driver, []*models.BookingCandidate{bookingA(), bookingB()})

	require.NotNil(t, results)
	assert.Empty(t, results)
}

func TestRank_EmptyInput(t *testing.T) {
	r := newTestRanker()

	results := r.Rank(manchesterDriver(), nil)
	require.NotNil(t, results)
	assert.Empty(t, results)

	results = r.Rank(manchesterDriver(), []*models.BookingCandidate{})
	require.NotNil(t, results)
	assert.Empty(t, results)

	results = r.Rank(nil, []*models.BookingCandidate{bookingA()})
	require.NotNil(t, results)
	assert.Empty(t, results)
}

func TestRank_DriverWithoutBase(t *testing.T) {
	driver := manchesterDriver()
	driver.BaseLat = nil

	results := newTestRanker().Rank(driver, []*models.BookingCandidate{bookingA(), bookingB()})
	assert.Empty(t, results)
}

func TestRank_SkipsMalformedBookings(t *testing.T) {
	a := bookingA()
	noPickup := &models.BookingCandidate{ID: "no-pickup", Status: models.BookingStatusOpen, PickupTime: testNow.Add(time.Hour)}

	results := newTestRanker().Rank(manchesterDriver(), []*models.BookingCandidate{nil, noPickup, a})

	require.Len(t, results, 1)
	assert.Equal(t, "booking-a", results[0].Booking.ID)
}

func TestRank_RadiusBoundaryInclusive(t *testing.T) {
	driver := manchesterDriver()
	b := bookingB()
	exact := utils.DistanceMiles(*driver.BaseLat, *driver.BaseLng, *b.PickupLat, *b.PickupLng)

	driver.RadiusMiles = exact
	results := newTestRanker().Rank(driver, []*models.BookingCandidate{b})
	require.Len(t, results, 1)
	assert.Equal(t, 0.0, results[0].ScoreBreakdown[models.SubScoreDistance].Raw)

	driver.RadiusMiles = exact - 1e-9
	assert.Empty(t, newTestRanker().Rank(driver, []*models.BookingCandidate{b}))
}

func TestRank_NonFiniteRadiusFallsBackToDefault(t *testing.T) {
	for _, radius := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		driver := manchesterDriver()
		driver.RadiusMiles = radius

		london := openBooking("booking-london", 51.5074, -0.1278)

		results := newTestRanker().Rank(driver, []*models.BookingCandidate{bookingA(), london})

		require.Len(t, results, 1, "radius %v", radius)
		assert.Equal(t, "booking-a", results[0].Booking.ID)
		assert.False(t, math.IsNaN(results[0].Score))
		_, err := json.Marshal(results[0])
		assert.NoError(t, err)
	}
}

func TestRank_OrderedByScoreThenDistanceThenID(t *testing.T) {
	// no distance weight, so every booking scores the same and ties fall to distance then id
	scorer := NewScorer(ScoringConfig{Weights: Weights{Reputation: 1}, RatingBlend: 0.7, RidesCap: 50})
	r := NewRanker(scorer, WithClock(fixedClock))

	far := openBooking("far", 53.50, -2.2426)
	nearZ := openBooking("near-z", 53.4831, -2.2441)
	nearA := openBooking("near-a", 53.4831, -2.2441)

	results := r.Rank(manchesterDriver(), []*models.BookingCandidate{far, nearZ, nearA})

	require.Len(t, results, 3)
	assert.Equal(t, results[0].Score, results[2].Score)
	assert.Equal(t, []string{"near-a", "near-z", "far"}, []string{
		results[0].Booking.ID, results[1].Booking.ID, results[2].Booking.ID,
	})
}

func TestRank_HigherScoreFirst(t *testing.T) {
	near := openBooking("near", 53.4831, -2.2441)
	mid := openBooking("mid", 53.52, -2.2426)
	far := openBooking("far", 53.58, -2.2426)

	results := newTestRanker().Rank(manchesterDriver(), []*models.BookingCandidate{far, mid, near})

	require.Len(t, results, 3)
	for i := 1; i < len(results); i++ {
		assert.GreaterOrEqual(t, results[i-1].Score, results[i].Score)
	}
	assert.Equal(t, "near", results[0].Booking.ID)
	assert.Equal(t, "far", results[2].Booking.ID)
}

func TestRank_Deterministic(t *testing.T) {
	r := newTestRanker()
	driver := manchesterDriver()
	bookings := make([]*models.BookingCandidate, 0, 40)
	for i := 0; i < 40; i++ {
		bookings = append(bookings, openBooking(fmt.Sprintf("b-%02d", i), 53.4808+float64(i%7)*0.01, -2.2426+float64(i%5)*0.01))
	}

	first := r.Rank(driver, bookings)
	for i := 0; i < 5; i++ {
		again := r.Rank(driver, bookings)
		require.Len(t, again, len(first))
		for j := range first {
			assert.Equal(t, first[j].Booking.ID, again[j].Booking.ID)
			assert.Equal(t, first[j].Score, again[j].Score)
			assert.Equal(t, first[j].Distance, again[j].Distance)
		}
	}
}

func TestRank_DoesNotMutateInput(t *testing.T) {
	a, b := bookingA(), bookingB()
	aCopy, bCopy := *a, *b
	bookings := []*models.BookingCandidate{b, a}
	driver := manchesterDriver()
	driverCopy := *driver

	newTestRanker().Rank(driver, bookings)

	assert.Equal(t, aCopy, *a)
	assert.Equal(t, bCopy, *b)
	assert.Same(t, b, bookings[0])
	assert.Same(t, a, bookings[1])
	assert.Equal(t, driverCopy, *driver)
}

func TestRank_BidDeadlineUsesClock(t *testing.T) {
	b := openBooking("adv", 53.4831, -2.2441)
	b.Type = models.BookingTypeAdvanced
	deadline := testNow.Add(30 * time.Minute)
	b.BidDeadline = &deadline

	before := NewRanker(NewScorer(DefaultScoringConfig()), WithClock(fixedClock))
	after := NewRanker(NewScorer(DefaultScoringConfig()), WithClock(func() time.Time { return testNow.Add(time.Hour) }))

	assert.Len(t, before.Rank(manchesterDriver(), []*models.BookingCandidate{b}), 1)
	assert.Empty(t, after.Rank(manchesterDriver(), []*models.BookingCandidate{b}))
}

func BenchmarkRank(b *testing.B) {
	r := newTestRanker()
	driver := manchesterDriver()
	bookings := make([]*models.BookingCandidate, 0, 500)
	for i := 0; i < 500; i++ {
		bookings = append(bookings, openBooking(fmt.Sprintf("b-%03d", i), 53.30+float64(i%40)*0.01, -2.45+float64(i%25)*0.02))
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		r.Rank(driver, bookings)
	}
}
