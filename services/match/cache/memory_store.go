package cache

import (
	"context"
	"sync"
	"time"
)

type memoryEntry struct {
	entries   []Entry
	expiresAt time.Time
}

// MemoryStore keeps entries in process. It is used for single replica
// deployments and tests.
type MemoryStore struct {
	mu         sync.RWMutex
	drivers    map[string]map[string]memoryEntry // driver id -> fingerprint -> entry
	size       int
	maxEntries int
	now        func() time.Time

	stop     chan struct{}
	stopOnce sync.Once
}

// MemoryOption customises a MemoryStore
type MemoryOption func(*MemoryStore)

// WithMemoryClock overrides the time source used for expiry
func WithMemoryClock(now func() time.Time) MemoryOption {
	return func(s *MemoryStore) {
		s.now = now
	}
}

// NewMemoryStore creates an in-process store holding at most maxEntries
// entries, unbounded when maxEntries <= 0
func NewMemoryStore(maxEntries int, opts ...MemoryOption) *MemoryStore {
	s := &MemoryStore{
		drivers:    make(map[string]map[string]memoryEntry),
		maxEntries: maxEntries,
		now:        time.Now,
		stop:       make(chan struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Get returns a copy of the entry for driverID and fingerprint
func (s *MemoryStore) Get(_ context.Context, driverID, fingerprint string) ([]Entry, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.drivers[driverID][fingerprint]
	if !ok || !s.now().Before(e.expiresAt) {
		return nil, false, nil
	}
	return cloneEntries(e.entries), true, nil
}

// Set stores entries until ttl elapses
func (s *MemoryStore) Set(_ context.Context, driverID, fingerprint string, entries []Entry, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.drivers[driverID][fingerprint]; !exists {
		if s.maxEntries > 0 && s.size >= s.maxEntries {
			s.sweepLocked()
			if s.size >= s.maxEntries {
				s.evictOneLocked(driverID)
			}
		}
		s.size++
	}

	byFingerprint, ok := s.drivers[driverID]
	if !ok {
		byFingerprint = make(map[string]memoryEntry)
		s.drivers[driverID] = byFingerprint
	}

	byFingerprint[fingerprint] = memoryEntry{
		entries:   cloneEntries(entries),
		expiresAt: s.now().Add(ttl),
	}
	return nil
}

// DeleteDriver removes all entries for driverID
func (s *MemoryStore) DeleteDriver(_ context.Context, driverID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.size -= len(s.drivers[driverID])
	delete(s.drivers, driverID)
	return nil
}

// Len returns the number of stored entries, expired ones included
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.size
}

// Sweep removes expired entries
func (s *MemoryStore) Sweep() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sweepLocked()
}

// StartSweeper runs Sweep every interval until Close is called
func (s *MemoryStore) StartSweeper(interval time.Duration) {
	if interval <= 0 {
		return
	}
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				s.Sweep()
			case <-s.stop:
				return
			}
		}
	}()
}

// Close stops the sweeper
func (s *MemoryStore) Close() error {
	s.stopOnce.Do(func() {
		close(s.stop)
	})
	return nil
}

func (s *MemoryStore) sweepLocked() {
	now := s.now()
	for driverID, byFingerprint := range s.drivers {
		for fingerprint, e := range byFingerprint {
			if !now.Before(e.expiresAt) {
				delete(byFingerprint, fingerprint)
				s.size--
			}
		}
		if len(byFingerprint) == 0 {
			delete(s.drivers, driverID)
		}
	}
}

// evictOneLocked drops the entry closest to expiry, preferring drivers
// other than keep
func (s *MemoryStore) evictOneLocked(keep string) {
	var (
		victimDriver, victimFingerprint string
		victimExpiry                    time.Time
		found                           bool
	)
	for pass := 0; pass < 2 && !found; pass++ {
		for driverID, byFingerprint := range s.drivers {
			if pass == 0 && driverID == keep {
				continue
			}
			for fingerprint, e := range byFingerprint {
				if !found || e.expiresAt.Before(victimExpiry) {
					victimDriver, victimFingerprint, victimExpiry = driverID, fingerprint, e.expiresAt
					found = true
				}
			}
		}
	}
	if !found {
		return
	}

	delete(s.drivers[victimDriver], victimFingerprint)
	s.size--
	if len(s.drivers[victimDriver]) == 0 {
		delete(s.drivers, victimDriver)
	}
}
