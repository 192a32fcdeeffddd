package engine

import (
	"math"
	"time"

	"github.com/AnthonyPaton1/taxi-booking-app-sub003/internal/pkg/models"
	"github.com/AnthonyPaton1/taxi-booking-app-sub003/internal/utils"
)

// Reason names why a booking was excluded for a driver.
// The empty Reason means the pair is eligible.
type Reason string

const (
	ReasonEligible             Reason = ""
	ReasonDriverNotApproved    Reason = "driver_not_approved"
	ReasonDriverSuspended      Reason = "driver_suspended"
	ReasonDriverNoBase         Reason = "driver_no_base"
	ReasonPickupMissing        Reason = "pickup_missing"
	ReasonBookingNotOpen       Reason = "booking_not_open"
	ReasonPickupPassed         Reason = "pickup_time_passed"
	ReasonWheelchairRequired   Reason = "wheelchair_required"
	ReasonDriverWAVOnly        Reason = "driver_wav_only"
	ReasonFemaleDriverRequired Reason = "female_driver_required"
	ReasonOutsideRadius        Reason = "outside_radius"
	ReasonBidDeadlinePassed    Reason = "bid_deadline_passed"
)

// CheckEligibility applies the hard constraints to a driver/booking pair.
// distance is the base-to-pickup distance in miles, NaN when it could not be
// computed. Malformed input makes the pair ineligible, it never panics.
func CheckEligibility(driver *models.DriverProfile, booking *models.BookingCandidate, distance float64, now time.Time) (bool, Reason) {
	if !driver.Approved {
		return false, ReasonDriverNotApproved
	}
	if driver.Suspended {
		return false, ReasonDriverSuspended
	}
	if !driver.HasBase() || !utils.ValidCoordinates(*driver.BaseLat, *driver.BaseLng) {
		return false, ReasonDriverNoBase
	}
	if !booking.HasPickup() || !utils.ValidCoordinates(*booking.PickupLat, *booking.PickupLng) ||
		math.IsNaN(distance) || math.IsInf(distance, 0) {
		return false, ReasonPickupMissing
	}

	// callers pre-filter these; checked again so stale input cannot leak through
	if !booking.Status.IsOpen() {
		return false, ReasonBookingNotOpen
	}
	if !booking.PickupTime.IsZero() && !booking.PickupTime.After(now) {
		return false, ReasonPickupPassed
	}

	needs := booking.Accessibility
	if needs.WheelchairAccess && !driver.HasWAV {
		return false, ReasonWheelchairRequired
	}
	if driver.WAVOnly && !needs.WheelchairAccess {
		return false, ReasonDriverWAVOnly
	}
	if needs.FemaleDriverOnly && !driver.FemaleDriver {
		return false, ReasonFemaleDriverRequired
	}

	if distance > driver.EffectiveRadius() {
		return false, ReasonOutsideRadius
	}

	if booking.IsAdvanced() && booking.BidDeadline != nil && !booking.BidDeadline.After(now) {
		return false, ReasonBidDeadlinePassed
	}

	return true, ReasonEligible
}

// IsEligible is CheckEligibility without the reason
func IsEligible(driver *models.DriverProfile, booking *models.BookingCandidate, distance float64, now time.Time) bool {
	ok, _ := CheckEligibility(driver, booking, distance, now)
	return ok
}

// PickupDistance returns the miles from the driver's base to the booking's
// pickup, or NaN when either side lacks coordinates.
func PickupDistance(driver *models.DriverProfile, booking *models.BookingCandidate) float64 {
	if !driver.HasBase() || !booking.HasPickup() {
		return math.NaN()
	}
	return utils.DistanceMiles(*driver.BaseLat, *driver.BaseLng, *booking.PickupLat, *booking.PickupLng)
}
