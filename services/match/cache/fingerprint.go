package cache

import (
	"math"
	"sort"
	"strconv"

	"github.com/cespare/xxhash/v2"

	"github.com/AnthonyPaton1/taxi-booking-app-sub003/internal/pkg/models"
)

// Fingerprint hashes everything a ranking depends on: the booking set with
// each booking's last update, the driver's eligibility and scoring inputs,
// and the ranker signature. Booking order does not matter.
func Fingerprint(driver *models.DriverProfile, bookings []*models.BookingCandidate, signature string) string {
	type pair struct {
		id      string
		updated int64
	}
	pairs := make([]pair, 0, len(bookings))
	for _, b := range bookings {
		if b == nil {
			continue
		}
		pairs = append(pairs, pair{id: b.ID, updated: b.UpdatedAt.UnixNano()})
	}
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].id != pairs[j].id {
			return pairs[i].id < pairs[j].id
		}
		return pairs[i].updated < pairs[j].updated
	})

	d := xxhash.New()
	buf := make([]byte, 0, 64)
	write := func(s string) {
		buf = append(buf[:0], s...)
		buf = append(buf, 0)
		_, _ = d.Write(buf)
	}

	write(signature)
	write(driverDigest(driver))
	for _, p := range pairs {
		write(p.id)
		write(strconv.FormatInt(p.updated, 10))
	}

	return strconv.FormatUint(d.Sum64(), 16)
}

func driverDigest(d *models.DriverProfile) string {
	buf := make([]byte, 0, 128)
	buf = append(buf, d.ID...)
	for _, flag := range []bool{d.Approved, d.Suspended, d.HasWAV, d.WAVOnly, d.FemaleDriver} {
		buf = strconv.AppendBool(append(buf, '|'), flag)
	}
	buf = appendCoord(append(buf, '|'), d.BaseLat)
	buf = appendCoord(append(buf, '|'), d.BaseLng)
	buf = strconv.AppendFloat(append(buf, '|'), d.EffectiveRadius(), 'g', -1, 64)
	buf = strconv.AppendFloat(append(buf, '|'), d.Rating, 'g', -1, 64)
	buf = strconv.AppendInt(append(buf, '|'), int64(d.CompletedRides), 10)
	buf = strconv.AppendInt(append(buf, '|'), d.UpdatedAt.UnixNano(), 10)
	return string(buf)
}

func appendCoord(buf []byte, v *float64) []byte {
	if v == nil || math.IsNaN(*v) {
		return append(buf, '-')
	}
	return strconv.AppendFloat(buf, *v, 'g', -1, 64)
}
