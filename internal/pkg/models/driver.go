package models

import (
	"math"
	"time"
)

// DefaultRadiusMiles is used when a driver has not set a travel radius
const DefaultRadiusMiles = 25.0

// DriverProfile is the read-only view of a driver the matching engine works on
type DriverProfile struct {
	ID        string `json:"id" db:"id"`
	Approved  bool   `json:"approved" db:"approved"`
	Suspended bool   `json:"suspended" db:"suspended"`
	HasWAV    bool   `json:"hasWAV" db:"has_wav"`
	WAVOnly   bool   `json:"wavOnly" db:"wav_only"`
	// FemaleDriver marks the driver as female, which qualifies them for
	// bookings that request a female driver.
	FemaleDriver   bool      `json:"femaleDriverOnly" db:"female_driver_only"`
	BaseLat        *float64  `json:"baseLat" db:"base_lat"`
	BaseLng        *float64  `json:"baseLng" db:"base_lng"`
	RadiusMiles    float64   `json:"radiusMiles" db:"radius_miles"`
	Rating         float64   `json:"rating" db:"rating"`
	CompletedRides int       `json:"completedRides" db:"completed_rides"`
	UpdatedAt      time.Time `json:"updatedAt" db:"updated_at"`
}

// HasBase reports whether the driver has both base coordinates set
func (d *DriverProfile) HasBase() bool {
	return d.BaseLat != nil && d.BaseLng != nil
}

// EffectiveRadius returns the travel radius in miles, falling back to
// DefaultRadiusMiles when it is unset, not positive or not finite
func (d *DriverProfile) EffectiveRadius() float64 {
	if !isFinite(d.RadiusMiles) || d.RadiusMiles <= 0 {
		return DefaultRadiusMiles
	}
	return d.RadiusMiles
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// Validate checks the fields the matching service cannot work without
func (d *DriverProfile) Validate() error {
	if d.ID == "" {
		return ErrInvalidDriverID
	}
	return nil
}

// DriverCapabilities carries the driver fields an administrator may change
type DriverCapabilities struct {
	HasWAV       *bool    `json:"hasWAV,omitempty"`
	WAVOnly      *bool    `json:"wavOnly,omitempty"`
	FemaleDriver *bool    `json:"femaleDriverOnly,omitempty"`
	BaseLat      *float64 `json:"baseLat,omitempty"`
	BaseLng      *float64 `json:"baseLng,omitempty"`
	RadiusMiles  *float64 `json:"radiusMiles,omitempty"`
}

// IsEmpty reports whether no field is set
func (c DriverCapabilities) IsEmpty() bool {
	return c.HasWAV == nil && c.WAVOnly == nil && c.FemaleDriver == nil &&
		c.BaseLat == nil && c.BaseLng == nil && c.RadiusMiles == nil
}

// Validate rejects out of range coordinates and radii
func (c DriverCapabilities) Validate() error {
	if c.IsEmpty() {
		return ErrEmptyUpdate
	}
	if (c.BaseLat == nil) != (c.BaseLng == nil) {
		return ErrInvalidLocation
	}
	if c.BaseLat != nil && (!isFinite(*c.BaseLat) || !isFinite(*c.BaseLng) || *c.BaseLat < -90 || *c.BaseLat > 90 || *c.BaseLng < -180 || *c.BaseLng > 180) {
		return ErrInvalidLocation
	}
	if c.RadiusMiles != nil && (!isFinite(*c.RadiusMiles) || *c.RadiusMiles < 0) {
		return ErrInvalidRadius
	}
	return nil
}
