package cache

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/AnthonyPaton1/taxi-booking-app-sub003/internal/pkg/circuitbreaker"
	"github.com/AnthonyPaton1/taxi-booking-app-sub003/internal/pkg/logger"
	"github.com/AnthonyPaton1/taxi-booking-app-sub003/internal/pkg/models"
	"github.com/AnthonyPaton1/taxi-booking-app-sub003/services/match/engine"
)

const (
	DefaultTTL          = 60 * time.Second
	DefaultStoreTimeout = 50 * time.Millisecond
)

// Config controls entry lifetime and store call budgets
type Config struct {
	TTL          time.Duration
	StoreTimeout time.Duration
}

// ConfigFromModel converts the loaded cache configuration
func ConfigFromModel(cfg models.CacheConfig) Config {
	c := Config{
		TTL:          time.Duration(cfg.TTLSeconds) * time.Second,
		StoreTimeout: time.Duration(cfg.StoreTimeoutMs) * time.Millisecond,
	}
	if c.TTL <= 0 {
		c.TTL = DefaultTTL
	}
	if c.StoreTimeout <= 0 {
		c.StoreTimeout = DefaultStoreTimeout
	}
	return c
}

// Stats is a snapshot of cache counters
type Stats struct {
	Hits         int64                `json:"hits"`
	Misses       int64                `json:"misses"`
	StoreErrors  int64                `json:"store_errors"`
	Computations int64                `json:"computations"`
	Breaker      circuitbreaker.Stats `json:"breaker"`
}

// MatchCache memoizes ranked matches per driver and booking set. Store
// failures never reach the caller: the ranking is computed directly instead.
type MatchCache struct {
	store   Store
	ranker  engine.Ranker
	breaker *circuitbreaker.CircuitBreaker
	cfg     Config
	now     func() time.Time

	hits         atomic.Int64
	misses       atomic.Int64
	storeErrors  atomic.Int64
	computations atomic.Int64
}

// Option customises a MatchCache
type Option func(*MatchCache)

// WithClock overrides the time source used for entry TTLs
func WithClock(now func() time.Time) Option {
	return func(c *MatchCache) {
		c.now = now
	}
}

// WithBreaker replaces the default circuit breaker around store reads and writes
func WithBreaker(cb *circuitbreaker.CircuitBreaker) Option {
	return func(c *MatchCache) {
		c.breaker = cb
	}
}

// New creates a match cache over store
func New(store Store, ranker engine.Ranker, cfg Config, opts ...Option) *MatchCache {
	if cfg.TTL <= 0 {
		cfg.TTL = DefaultTTL
	}
	if cfg.StoreTimeout <= 0 {
		cfg.StoreTimeout = DefaultStoreTimeout
	}

	c := &MatchCache{
		store:  store,
		ranker: ranker,
		cfg:    cfg,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.breaker == nil {
		c.breaker = circuitbreaker.New(circuitbreaker.DefaultConfig("match-cache"))
	}
	return c
}

// GetCachedMatches returns the ranked matches for driver over bookings,
// from the store when an entry for the same inputs exists.
func (c *MatchCache) GetCachedMatches(ctx context.Context, driver *models.DriverProfile, bookings []*models.BookingCandidate) []*models.MatchResult {
	if driver == nil || driver.ID == "" {
		return c.compute(driver, bookings)
	}

	fingerprint := Fingerprint(driver, bookings, c.ranker.Signature())

	entries, found, err := c.load(ctx, driver.ID, fingerprint)
	if err != nil {
		c.storeErrors.Add(1)
		if isUnavailable(err) {
			logger.DebugCtx(ctx, "Match cache skipped, breaker open", logger.DriverID(driver.ID))
		} else {
			logger.WarnCtx(ctx, "Match cache read failed, computing directly",
				logger.DriverID(driver.ID),
				logger.Err(err))
		}
		return c.compute(driver, bookings)
	}

	if found {
		if results, ok := rebind(entries, bookings); ok {
			c.hits.Add(1)
			return results
		}
		logger.WarnCtx(ctx, "Match cache entry references unknown bookings",
			logger.DriverID(driver.ID),
			logger.String("fingerprint", fingerprint))
	}

	c.misses.Add(1)
	results := c.compute(driver, bookings)

	ttl := c.entryTTL(results)
	if ttl <= 0 {
		return results
	}
	if err := c.save(ctx, driver.ID, fingerprint, toEntries(results), ttl); err != nil {
		c.storeErrors.Add(1)
		logger.WarnCtx(ctx, "Match cache write failed",
			logger.DriverID(driver.ID),
			logger.Err(err))
	}
	return results
}

// Invalidate drops every cached entry for driverID. It always reaches the
// store, even while the breaker is open.
func (c *MatchCache) Invalidate(ctx context.Context, driverID string) error {
	if driverID == "" {
		return models.ErrInvalidDriverID
	}

	callCtx, cancel := context.WithTimeout(ctx, c.cfg.StoreTimeout)
	defer cancel()

	if err := c.store.DeleteDriver(callCtx, driverID); err != nil {
		c.storeErrors.Add(1)
		return fmt.Errorf("failed to invalidate match cache for driver %s: %w", driverID, err)
	}

	logger.DebugCtx(ctx, "Match cache invalidated", logger.DriverID(driverID))
	return nil
}

// Stats returns the current counters
func (c *MatchCache) Stats() Stats {
	return Stats{
		Hits:         c.hits.Load(),
		Misses:       c.misses.Load(),
		StoreErrors:  c.storeErrors.Load(),
		Computations: c.computations.Load(),
		Breaker:      c.breaker.Stats(),
	}
}

func (c *MatchCache) compute(driver *models.DriverProfile, bookings []*models.BookingCandidate) []*models.MatchResult {
	c.computations.Add(1)
	return c.ranker.Rank(driver, bookings)
}

func (c *MatchCache) load(ctx context.Context, driverID, fingerprint string) ([]Entry, bool, error) {
	var (
		entries []Entry
		found   bool
	)
	err := c.breaker.Execute(ctx, func(ctx context.Context) error {
		callCtx, cancel := context.WithTimeout(ctx, c.cfg.StoreTimeout)
		defer cancel()

		var err error
		entries, found, err = c.store.Get(callCtx, driverID, fingerprint)
		return err
	})
	return entries, found, err
}

func (c *MatchCache) save(ctx context.Context, driverID, fingerprint string, entries []Entry, ttl time.Duration) error {
	return c.breaker.Execute(ctx, func(ctx context.Context) error {
		callCtx, cancel := context.WithTimeout(ctx, c.cfg.StoreTimeout)
		defer cancel()

		return c.store.Set(callCtx, driverID, fingerprint, entries, ttl)
	})
}

// entryTTL bounds the configured TTL by the first moment a returned booking
// could stop being eligible
func (c *MatchCache) entryTTL(results []*models.MatchResult) time.Duration {
	ttl := c.cfg.TTL
	now := c.now()
	for _, r := range results {
		b := r.Booking
		if !b.PickupTime.IsZero() {
			if d := b.PickupTime.Sub(now); d < ttl {
				ttl = d
			}
		}
		if b.IsAdvanced() && b.BidDeadline != nil {
			if d := b.BidDeadline.Sub(now); d < ttl {
				ttl = d
			}
		}
	}
	return ttl
}

// rebind attaches stored entries to the caller's booking pointers. It
// reports false when an entry names a booking that is not in bookings.
func rebind(entries []Entry, bookings []*models.BookingCandidate) ([]*models.MatchResult, bool) {
	byID := make(map[string]*models.BookingCandidate, len(bookings))
	for _, b := range bookings {
		if b != nil {
			byID[b.ID] = b
		}
	}

	results := make([]*models.MatchResult, 0, len(entries))
	for _, e := range entries {
		b, ok := byID[e.BookingID]
		if !ok {
			return nil, false
		}
		results = append(results, &models.MatchResult{
			Booking:        b,
			Score:          e.Score,
			Distance:       e.Distance,
			ScoreBreakdown: cloneBreakdown(e.Breakdown),
		})
	}
	return results, true
}

// isUnavailable reports whether err came from the breaker rejecting a call
func isUnavailable(err error) bool {
	return errors.Is(err, circuitbreaker.ErrCircuitBreakerOpen) || errors.Is(err, circuitbreaker.ErrTooManyRequests)
}
