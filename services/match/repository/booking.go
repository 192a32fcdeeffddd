package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/AnthonyPaton1/taxi-booking-app-sub003/internal/pkg/models"
)

// BookingRepo implements the booking repository interface
type BookingRepo struct {
	db *sqlx.DB
}

// NewBookingRepository creates a new booking repository
func NewBookingRepository(db *sqlx.DB) *BookingRepo {
	return &BookingRepo{db: db}
}

// bookingRow is the flat database shape of a booking candidate
type bookingRow struct {
	ID               string          `db:"id"`
	Type             string          `db:"booking_type"`
	Status           string          `db:"status"`
	PickupLat        sql.NullFloat64 `db:"pickup_lat"`
	PickupLng        sql.NullFloat64 `db:"pickup_lng"`
	PickupTime       time.Time       `db:"pickup_time"`
	BidDeadline      sql.NullTime    `db:"bid_deadline"`
	WheelchairAccess bool            `db:"wheelchair_access"`
	FemaleDriverOnly bool            `db:"female_driver_only"`
	CarerPresent     bool            `db:"carer_present"`
	AssistanceAnimal bool            `db:"assistance_animal"`
	NonVerbal        bool            `db:"non_verbal"`
	UpdatedAt        time.Time       `db:"updated_at"`
}

func (r bookingRow) toCandidate() *models.BookingCandidate {
	b := &models.BookingCandidate{
		ID:         r.ID,
		Type:       models.BookingType(r.Type),
		Status:     models.BookingStatus(r.Status),
		PickupTime: r.PickupTime,
		Accessibility: models.AccessibilityProfile{
			WheelchairAccess: r.WheelchairAccess,
			FemaleDriverOnly: r.FemaleDriverOnly,
			CarerPresent:     r.CarerPresent,
			AssistanceAnimal: r.AssistanceAnimal,
			NonVerbal:        r.NonVerbal,
		},
		UpdatedAt: r.UpdatedAt,
	}
	if r.PickupLat.Valid && r.PickupLng.Valid {
		lat, lng := r.PickupLat.Float64, r.PickupLng.Float64
		b.PickupLat, b.PickupLng = &lat, &lng
	}
	if r.BidDeadline.Valid {
		deadline := r.BidDeadline.Time
		b.BidDeadline = &deadline
	}
	return b
}

const listOpenBookingsQuery = `
	SELECT
		b.id, b.booking_type, b.status,
		b.pickup_lat, b.pickup_lng, b.pickup_time, b.bid_deadline,
		b.wheelchair_access, b.female_driver_only, b.carer_present,
		b.assistance_animal, b.non_verbal,
		b.updated_at
	FROM bookings b
	WHERE b.deleted_at IS NULL
		AND b.status = ANY($1)
		AND b.pickup_time > $2
		AND left(b.pickup_geohash, $3) = ANY($4)
	ORDER BY b.pickup_time ASC, b.id ASC
	LIMIT $5
`

// ListOpenBookings loads open, future bookings whose pickup geohash falls in
// one of the query cells
func (r *BookingRepo) ListOpenBookings(ctx context.Context, query models.BookingQuery) ([]*models.BookingCandidate, error) {
	if len(query.Geohashes) == 0 {
		return []*models.BookingCandidate{}, nil
	}

	statuses := make([]string, len(models.OpenBookingStatuses))
	for i, s := range models.OpenBookingStatuses {
		statuses[i] = string(s)
	}

	var rows []bookingRow
	err := r.db.SelectContext(ctx, &rows, listOpenBookingsQuery,
		pq.Array(statuses),
		query.PickupAfter,
		int(query.GeohashPrecision),
		pq.Array(query.Geohashes),
		query.Limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list open bookings: %w", err)
	}

	bookings := make([]*models.BookingCandidate, 0, len(rows))
	for _, row := range rows {
		bookings = append(bookings, row.toCandidate())
	}
	return bookings, nil
}
