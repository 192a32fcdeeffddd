package models

import "time"

// BookingStatus represents the lifecycle state of a booking
type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "PENDING"
	BookingStatusOpen      BookingStatus = "OPEN"
	BookingStatusBidding   BookingStatus = "BIDDING"
	BookingStatusAccepted  BookingStatus = "ACCEPTED"
	BookingStatusCompleted BookingStatus = "COMPLETED"
	BookingStatusCanceled  BookingStatus = "CANCELED"
)

// OpenBookingStatuses lists the states in which a booking can be offered to drivers
var OpenBookingStatuses = []BookingStatus{
	BookingStatusPending,
	BookingStatusOpen,
	BookingStatusBidding,
}

// IsOpen reports whether the status allows matching
func (s BookingStatus) IsOpen() bool {
	for _, open := range OpenBookingStatuses {
		if s == open {
			return true
		}
	}
	return false
}

// BookingType distinguishes on-demand rides from advanced bookings that take bids
type BookingType string

const (
	BookingTypeInstant  BookingType = "INSTANT"
	BookingTypeAdvanced BookingType = "ADVANCED"
)

// AccessibilityProfile describes the needs of the resident travelling
type AccessibilityProfile struct {
	WheelchairAccess bool `json:"wheelchairAccess" db:"wheelchair_access"`
	FemaleDriverOnly bool `json:"femaleDriverOnly" db:"female_driver_only"`
	CarerPresent     bool `json:"carerPresent" db:"carer_present"`
	AssistanceAnimal bool `json:"assistanceAnimal" db:"assistance_animal"`
	NonVerbal        bool `json:"nonVerbal" db:"non_verbal"`
}

// BookingCandidate is an open booking offered to the matching engine
type BookingCandidate struct {
	ID            string               `json:"id"`
	Type          BookingType          `json:"bookingType"`
	Status        BookingStatus        `json:"status"`
	PickupLat     *float64             `json:"pickupLat"`
	PickupLng     *float64             `json:"pickupLng"`
	PickupTime    time.Time            `json:"pickupTime"`
	BidDeadline   *time.Time           `json:"bidDeadline,omitempty"`
	Accessibility AccessibilityProfile `json:"accessibilityProfile"`
	UpdatedAt     time.Time            `json:"updatedAt"`
}

// HasPickup reports whether both pickup coordinates are present
func (b *BookingCandidate) HasPickup() bool {
	return b.PickupLat != nil && b.PickupLng != nil
}

// IsAdvanced reports whether the booking takes bids before a deadline
func (b *BookingCandidate) IsAdvanced() bool {
	return b.Type == BookingTypeAdvanced
}

// BookingQuery filters the open bookings loaded for a driver
type BookingQuery struct {
	Geohashes        []string
	GeohashPrecision uint
	PickupAfter      time.Time
	Limit            int
}
