package engine

import (
	"time"

	"github.com/AnthonyPaton1/taxi-booking-app-sub003/internal/pkg/models"
)

var testNow = time.Date(2024, 3, 14, 9, 0, 0, 0, time.UTC)

func f64(v float64) *float64 { return &v }

func fixedClock() time.Time { return testNow }

// manchesterDriver is an approved WAV driver based in Manchester city centre
func manchesterDriver() *models.DriverProfile {
	return &models.DriverProfile{
		ID:             "driver-1",
		Approved:       true,
		HasWAV:         true,
		BaseLat:        f64(53.4808),
		BaseLng:        f64(-2.2426),
		RadiusMiles:    10,
		Rating:         4.5,
		CompletedRides: 20,
	}
}

func openBooking(id string, lat, lng float64) *models.BookingCandidate {
	return &models.BookingCandidate{
		ID:         id,
		Type:       models.BookingTypeInstant,
		Status:     models.BookingStatusOpen,
		PickupLat:  f64(lat),
		PickupLng:  f64(lng),
		PickupTime: testNow.Add(2 * time.Hour),
		UpdatedAt:  testNow.Add(-time.Hour),
	}
}

// bookingA is about 0.17 miles from the Manchester base and needs a wheelchair
func bookingA() *models.BookingCandidate {
	b := openBooking("booking-a", 53.4831, -2.2441)
	b.Accessibility.WheelchairAccess = true
	return b
}

// bookingB is about 12 miles from the Manchester base
func bookingB() *models.BookingCandidate {
	return openBooking("booking-b", 53.40, -2.50)
}
