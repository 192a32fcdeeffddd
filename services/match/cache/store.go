package cache

import (
	"context"
	"time"

	"github.com/AnthonyPaton1/taxi-booking-app-sub003/internal/pkg/models"
)

// Entry is the stored form of one ranked match. Bookings are kept by id and
// re-attached to the caller's candidates on read.
type Entry struct {
	BookingID string                     `json:"booking_id"`
	Score     float64                    `json:"score"`
	Distance  float64                    `json:"distance"`
	Breakdown map[string]models.SubScore `json:"breakdown"`
}

// Store persists ranked results per driver and fingerprint
type Store interface {
	Get(ctx context.Context, driverID, fingerprint string) ([]Entry, bool, error)
	Set(ctx context.Context, driverID, fingerprint string, entries []Entry, ttl time.Duration) error
	// DeleteDriver removes every entry stored for driverID
	DeleteDriver(ctx context.Context, driverID string) error
}

func toEntries(results []*models.MatchResult) []Entry {
	entries := make([]Entry, 0, len(results))
	for _, r := range results {
		entries = append(entries, Entry{
			BookingID: r.Booking.ID,
			Score:     r.Score,
			Distance:  r.Distance,
			Breakdown: cloneBreakdown(r.ScoreBreakdown),
		})
	}
	return entries
}

func cloneBreakdown(in map[string]models.SubScore) map[string]models.SubScore {
	if in == nil {
		return nil
	}
	out := make(map[string]models.SubScore, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}

func cloneEntries(in []Entry) []Entry {
	out := make([]Entry, len(in))
	for i, e := range in {
		out[i] = e
		out[i].Breakdown = cloneBreakdown(e.Breakdown)
	}
	return out
}
