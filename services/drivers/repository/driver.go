package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/AnthonyPaton1/taxi-booking-app-sub003/internal/pkg/models"
)

// DriverRepo implements the driver repository interface
type DriverRepo struct {
	db *sqlx.DB
}

// NewDriverRepository creates a new driver repository
func NewDriverRepository(db *sqlx.DB) *DriverRepo {
	return &DriverRepo{db: db}
}

const driverColumns = `
		id, approved, suspended, has_wav, wav_only, female_driver_only,
		base_lat, base_lng, radius_miles, rating, completed_rides, updated_at`

// driverRow is the database shape of a driver profile
type driverRow struct {
	ID             string          `db:"id"`
	Approved       bool            `db:"approved"`
	Suspended      bool            `db:"suspended"`
	HasWAV         bool            `db:"has_wav"`
	WAVOnly        bool            `db:"wav_only"`
	FemaleDriver   bool            `db:"female_driver_only"`
	BaseLat        sql.NullFloat64 `db:"base_lat"`
	BaseLng        sql.NullFloat64 `db:"base_lng"`
	RadiusMiles    sql.NullFloat64 `db:"radius_miles"`
	Rating         sql.NullFloat64 `db:"rating"`
	CompletedRides sql.NullInt64   `db:"completed_rides"`
	UpdatedAt      time.Time       `db:"updated_at"`
}

func (r driverRow) toProfile() *models.DriverProfile {
	d := &models.DriverProfile{
		ID:             r.ID,
		Approved:       r.Approved,
		Suspended:      r.Suspended,
		HasWAV:         r.HasWAV,
		WAVOnly:        r.WAVOnly,
		FemaleDriver:   r.FemaleDriver,
		RadiusMiles:    finiteOrZero(r.RadiusMiles),
		Rating:         finiteOrZero(r.Rating),
		CompletedRides: int(r.CompletedRides.Int64),
		UpdatedAt:      r.UpdatedAt,
	}
	if r.BaseLat.Valid && r.BaseLng.Valid {
		lat, lng := r.BaseLat.Float64, r.BaseLng.Float64
		d.BaseLat, d.BaseLng = &lat, &lng
	}
	return d
}

// finiteOrZero maps NULL, NaN and ±Infinity (all storable in float8) to zero
func finiteOrZero(v sql.NullFloat64) float64 {
	if !v.Valid || math.IsNaN(v.Float64) || math.IsInf(v.Float64, 0) {
		return 0
	}
	return v.Float64
}

// GetDriverProfile loads a live driver by id
func (r *DriverRepo) GetDriverProfile(ctx context.Context, driverID string) (*models.DriverProfile, error) {
	query := `SELECT` + driverColumns + `
		FROM drivers
		WHERE id = $1 AND deleted_at IS NULL`

	var row driverRow
	if err := r.db.GetContext(ctx, &row, query, driverID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrDriverNotFound
		}
		return nil, fmt.Errorf("failed to get driver profile: %w", err)
	}
	return row.toProfile(), nil
}

// SetApproval records an approval decision
func (r *DriverRepo) SetApproval(ctx context.Context, driverID string, approved bool) error {
	query := `
		UPDATE drivers
		SET approved = $2, updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL`

	return r.execOne(ctx, "update driver approval", query, driverID, approved)
}

// SetSuspended suspends or reactivates a driver
func (r *DriverRepo) SetSuspended(ctx context.Context, driverID string, suspended bool) error {
	query := `
		UPDATE drivers
		SET suspended = $2, updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL`

	return r.execOne(ctx, "update driver suspension", query, driverID, suspended)
}

// SoftDelete marks a driver deleted and withdraws approval
func (r *DriverRepo) SoftDelete(ctx context.Context, driverID string) error {
	query := `
		UPDATE drivers
		SET deleted_at = NOW(), approved = FALSE, updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL`

	return r.execOne(ctx, "delete driver", query, driverID)
}

// UpdateCapabilities applies the set fields of caps and returns the updated profile
func (r *DriverRepo) UpdateCapabilities(ctx context.Context, driverID string, caps models.DriverCapabilities) (*models.DriverProfile, error) {
	query := `
		UPDATE drivers
		SET has_wav = COALESCE($2::boolean, has_wav),
			wav_only = COALESCE($3::boolean, wav_only),
			female_driver_only = COALESCE($4::boolean, female_driver_only),
			base_lat = COALESCE($5::float8, base_lat),
			base_lng = COALESCE($6::float8, base_lng),
			radius_miles = COALESCE($7::float8, radius_miles),
			updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL
		RETURNING` + driverColumns

	var row driverRow
	err := r.db.GetContext(ctx, &row, query,
		driverID,
		caps.HasWAV,
		caps.WAVOnly,
		caps.FemaleDriver,
		caps.BaseLat,
		caps.BaseLng,
		caps.RadiusMiles,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrDriverNotFound
		}
		return nil, fmt.Errorf("failed to update driver capabilities: %w", err)
	}
	return row.toProfile(), nil
}

// execOne runs a single-row mutation and maps zero affected rows to ErrDriverNotFound
func (r *DriverRepo) execOne(ctx context.Context, op, query string, args ...interface{}) error {
	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to %s: %w", op, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return models.ErrDriverNotFound
	}
	return nil
}
