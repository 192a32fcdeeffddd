package engine

import (
	"sort"
	"time"

	"github.com/AnthonyPaton1/taxi-booking-app-sub003/internal/pkg/models"
)

// Ranker filters, scores and orders bookings for one driver
type Ranker interface {
	Rank(driver *models.DriverProfile, bookings []*models.BookingCandidate) []*models.MatchResult
	// Signature changes whenever the same input could rank differently
	Signature() string
}

// MatchRanker is the default Ranker
type MatchRanker struct {
	scorer *Scorer
	now    func() time.Time
}

// RankerOption customises a MatchRanker
type RankerOption func(*MatchRanker)

// WithClock overrides the time source used for deadline checks
func WithClock(now func() time.Time) RankerOption {
	return func(r *MatchRanker) {
		r.now = now
	}
}

// NewRanker creates a ranker around scorer
func NewRanker(scorer *Scorer, opts ...RankerOption) *MatchRanker {
	r := &MatchRanker{scorer: scorer, now: time.Now}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Signature delegates to the scorer
func (r *MatchRanker) Signature() string {
	return r.scorer.Signature()
}

// Rank returns the eligible bookings ordered by score desc, distance asc,
// booking id asc. Inputs are not modified and the result is never nil.
func (r *MatchRanker) Rank(driver *models.DriverProfile, bookings []*models.BookingCandidate) []*models.MatchResult {
	results := make([]*models.MatchResult, 0, len(bookings))
	if driver == nil || len(bookings) == 0 {
		return results
	}

	now := r.now()
	for _, booking := range bookings {
		if booking == nil {
			continue
		}

		distance := PickupDistance(driver, booking)
		if ok, _ := CheckEligibility(driver, booking, distance, now); !ok {
			continue
		}

		score := r.scorer.Score(driver, booking, distance)
		results = append(results, &models.MatchResult{
			Booking:        booking,
			Score:          score.Total,
			Distance:       distance,
			ScoreBreakdown: score.Breakdown,
		})
	}

	SortResults(results)
	return results
}

// SortResults orders results by score desc, distance asc, booking id asc
func SortResults(results []*models.MatchResult) {
	sort.SliceStable(results, func(i, j int) bool {
		a, b := results[i], results[j]
		if a.Score != b.Score {
			return a.Score > b.Score
		}
		if a.Distance != b.Distance {
			return a.Distance < b.Distance
		}
		return a.Booking.ID < b.Booking.ID
	})
}
