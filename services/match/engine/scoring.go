package engine

import (
	"errors"
	"fmt"
	"math"

	"github.com/AnthonyPaton1/taxi-booking-app-sub003/internal/pkg/logger"
	"github.com/AnthonyPaton1/taxi-booking-app-sub003/internal/pkg/models"
)

// Accessibility fit bonuses, on the 0-100 sub-score scale
const (
	wavExactMatchBonus     = 60.0
	wavOverQualifiedBonus  = 15.0
	femaleDriverMatchBonus = 40.0

	maxRating = 5.0
)

var (
	errNegativeWeight = errors.New("weights must not be negative")
	errZeroWeights    = errors.New("at least one weight must be positive")
)

// Weights sets the share of each sub-score in the total.
// They are normalised to sum to 1 before use.
type Weights struct {
	Distance      float64 `json:"distance"`
	Reputation    float64 `json:"reputation"`
	Accessibility float64 `json:"accessibility"`
}

// DefaultWeights keeps distance and reputation dominant with accessibility fit as the tie-breaker
func DefaultWeights() Weights {
	return Weights{Distance: 0.45, Reputation: 0.40, Accessibility: 0.15}
}

// Validate rejects negative or all-zero weights
func (w Weights) Validate() error {
	if w.Distance < 0 || w.Reputation < 0 || w.Accessibility < 0 {
		return errNegativeWeight
	}
	if w.Distance+w.Reputation+w.Accessibility <= 0 {
		return errZeroWeights
	}
	return nil
}

func (w Weights) normalized() Weights {
	sum := w.Distance + w.Reputation + w.Accessibility
	return Weights{
		Distance:      w.Distance / sum,
		Reputation:    w.Reputation / sum,
		Accessibility: w.Accessibility / sum,
	}
}

// ScoringConfig holds the tunable constants of the scorer
type ScoringConfig struct {
	Weights Weights
	// RatingBlend is the share of the reputation sub-score taken from rating; the rest comes from experience
	RatingBlend float64
	// RidesCap is the completed ride count at which the experience bonus saturates
	RidesCap int
}

// DefaultScoringConfig returns the built-in tuning
func DefaultScoringConfig() ScoringConfig {
	return ScoringConfig{
		Weights:     DefaultWeights(),
		RatingBlend: 0.7,
		RidesCap:    50,
	}
}

// ScoringConfigFromModel maps service configuration onto the scorer
func ScoringConfigFromModel(cfg models.MatchConfig) ScoringConfig {
	return ScoringConfig{
		Weights: Weights{
			Distance:      cfg.DistanceWeight,
			Reputation:    cfg.ReputationWeight,
			Accessibility: cfg.AccessibilityWeight,
		},
		RatingBlend: cfg.RatingBlend,
		RidesCap:    cfg.RidesCap,
	}
}

// Score is the total and its named components
type Score struct {
	Total     float64
	Breakdown map[string]models.SubScore
}

// Scorer computes weighted compatibility scores for eligible pairs
type Scorer struct {
	weights     Weights
	ratingBlend float64
	ridesCap    int
}

// NewScorer builds a scorer. Invalid settings fall back to the defaults with a warning.
func NewScorer(cfg ScoringConfig) *Scorer {
	def := DefaultScoringConfig()

	if err := cfg.Weights.Validate(); err != nil {
		logger.Warn("Invalid match weights, using defaults",
			logger.Err(err),
			logger.Float64("distance", cfg.Weights.Distance),
			logger.Float64("reputation", cfg.Weights.Reputation),
			logger.Float64("accessibility", cfg.Weights.Accessibility))
		cfg.Weights = def.Weights
	}
	if cfg.RatingBlend < 0 || cfg.RatingBlend > 1 || math.IsNaN(cfg.RatingBlend) {
		logger.Warn("Invalid rating blend, using default", logger.Float64("rating_blend", cfg.RatingBlend))
		cfg.RatingBlend = def.RatingBlend
	}
	if cfg.RidesCap <= 0 {
		cfg.RidesCap = def.RidesCap
	}

	return &Scorer{
		weights:     cfg.Weights.normalized(),
		ratingBlend: cfg.RatingBlend,
		ridesCap:    cfg.RidesCap,
	}
}

// Weights returns the normalised weights in use
func (s *Scorer) Weights() Weights {
	return s.weights
}

// Signature identifies the scoring tuning; results computed under a different
// signature are not comparable.
func (s *Scorer) Signature() string {
	return fmt.Sprintf("w=%.6f/%.6f/%.6f;blend=%.6f;cap=%d",
		s.weights.Distance, s.weights.Reputation, s.weights.Accessibility, s.ratingBlend, s.ridesCap)
}

// Score computes the weighted score of an eligible pair. distance is in miles.
func (s *Scorer) Score(driver *models.DriverProfile, booking *models.BookingCandidate, distance float64) Score {
	parts := [...]struct {
		name   string
		raw    float64
		weight float64
	}{
		{models.SubScoreDistance, DistanceScore(distance, driver.EffectiveRadius()), s.weights.Distance},
		{models.SubScoreReputation, s.reputationScore(driver.Rating, driver.CompletedRides), s.weights.Reputation},
		{models.SubScoreAccessibility, AccessibilityFit(driver, booking.Accessibility), s.weights.Accessibility},
	}

	// summed in a fixed order so equal inputs give bit-identical totals
	score := Score{Breakdown: make(map[string]models.SubScore, len(parts))}
	for _, p := range parts {
		weighted := p.raw * p.weight
		score.Breakdown[p.name] = models.SubScore{Raw: p.raw, Weight: p.weight, Weighted: weighted}
		score.Total += weighted
	}
	return score
}

// DistanceScore falls off linearly from 100 at the base to 0 at the radius
func DistanceScore(distance, radius float64) float64 {
	if radius <= 0 {
		return 0
	}
	return math.Max(0, 100-(distance/radius)*100)
}

func (s *Scorer) reputationScore(rating float64, completedRides int) float64 {
	if math.IsNaN(rating) {
		rating = 0
	}
	rating = math.Max(0, math.Min(maxRating, rating))
	ratingScore := rating / maxRating * 100

	rides := completedRides
	if rides < 0 {
		rides = 0
	}
	if rides > s.ridesCap {
		rides = s.ridesCap
	}
	experienceScore := float64(rides) * 100 / float64(s.ridesCap)

	return s.ratingBlend*ratingScore + (1-s.ratingBlend)*experienceScore
}

// AccessibilityFit rewards capability matches beyond the hard minimums
func AccessibilityFit(driver *models.DriverProfile, needs models.AccessibilityProfile) float64 {
	fit := 0.0
	switch {
	case needs.WheelchairAccess && driver.HasWAV:
		fit += wavExactMatchBonus
	case !needs.WheelchairAccess && driver.HasWAV:
		fit += wavOverQualifiedBonus
	}
	if needs.FemaleDriverOnly && driver.FemaleDriver {
		fit += femaleDriverMatchBonus
	}
	return math.Min(100, fit)
}
