package postgres

import (
	"context"
	"database/sql"
	"errors"

	"fleet/internal/domain"
	"fleet/internal/repository"
)

// TripRepository is a PostgreSQL implementation of repository.TripRepository.
type TripRepository struct {
	q Querier
}

// NewTripRepository creates a new PostgreSQL trip repository.
func NewTripRepository(db *sql.DB) *TripRepository {
	return &TripRepository{q: db}
}

// NewTripRepositoryWithTx creates a trip repository using a transaction.
func NewTripRepositoryWithTx(tx *sql.Tx) *TripRepository {
	return &TripRepository{q: tx}
}

const tripColumns = `
	id, driver_id, truck_id, trailer_id, start_location, end_location,
	start_date, end_date, status, fuel_liters, distance_km, remarks, created_at
`

func scanTrip(row interface{ Scan(...any) error }) (*domain.Trip, error) {
	var trip domain.Trip
	err := row.Scan(
		&trip.ID,
		&trip.DriverID,
		&trip.TruckID,
		&trip.TrailerID,
		&trip.StartLocation,
		&trip.EndLocation,
		&trip.StartDate,
		&trip.EndDate,
		&trip.Status,
		&trip.FuelLiters,
		&trip.DistanceKm,
		&trip.Remarks,
		&trip.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &trip, nil
}

// Create persists a new trip.
func (r *TripRepository) Create(ctx context.Context, trip *domain.Trip) error {
	query := `
		INSERT INTO trips (id, driver_id, truck_id, trailer_id, start_location, end_location,
			start_date, end_date, status, fuel_liters, distance_km, remarks, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`

	_, err := r.q.ExecContext(ctx, query,
		trip.ID,
		trip.DriverID,
		trip.TruckID,
		trip.TrailerID,
		trip.StartLocation,
		trip.EndLocation,
		trip.StartDate,
		trip.EndDate,
		trip.Status,
		trip.FuelLiters,
		trip.DistanceKm,
		trip.Remarks,
		trip.CreatedAt,
	)

	return err
}

// GetByID retrieves a trip by ID.
func (r *TripRepository) GetByID(ctx context.Context, id string) (*domain.Trip, error) {
	query := `SELECT ` + tripColumns + ` FROM trips WHERE id = $1`

	trip, err := scanTrip(r.q.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	return trip, nil
}

// GetAll retrieves all trips, newest first.
func (r *TripRepository) GetAll(ctx context.Context) ([]*domain.Trip, error) {
	query := `SELECT ` + tripColumns + ` FROM trips ORDER BY start_date DESC LIMIT 100`
	return r.queryTrips(ctx, query)
}

// GetByDriverID retrieves all trips booked for a driver.
func (r *TripRepository) GetByDriverID(ctx context.Context, driverID string) ([]*domain.Trip, error) {
	query := `SELECT ` + tripColumns + ` FROM trips WHERE driver_id = $1 ORDER BY start_date DESC`
	return r.queryTrips(ctx, query, driverID)
}

// Update updates an existing trip.
func (r *TripRepository) Update(ctx context.Context, trip *domain.Trip) error {
	query := `
		UPDATE trips
		SET driver_id = $1, truck_id = $2, trailer_id = $3, start_location = $4,
			end_location = $5, start_date = $6, end_date = $7, status = $8,
			fuel_liters = $9, distance_km = $10, remarks = $11
		WHERE id = $12
	`

	result, err := r.q.ExecContext(ctx, query,
		trip.DriverID,
		trip.TruckID,
		trip.TrailerID,
		trip.StartLocation,
		trip.EndLocation,
		trip.StartDate,
		trip.EndDate,
		trip.Status,
		trip.FuelLiters,
		trip.DistanceKm,
		trip.Remarks,
		trip.ID,
	)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return repository.ErrNotFound
	}

	return nil
}

// Delete removes a trip.
func (r *TripRepository) Delete(ctx context.Context, id string) error {
	result, err := r.q.ExecContext(ctx, `DELETE FROM trips WHERE id = $1`, id)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return repository.ErrNotFound
	}

	return nil
}

// FindOverlapping returns all non-canceled trips other than excludeID whose
// [start_date, end_date) window overlaps the given half-open window and which
// share a driver, truck or trailer with the proposed booking.
func (r *TripRepository) FindOverlapping(ctx context.Context, res repository.TripResources, window repository.BookingWindow, excludeID string) ([]*domain.Trip, error) {
	query := `
		SELECT ` + tripColumns + `
		FROM trips
		WHERE status != $1
		  AND id != $2
		  AND start_date < $3
		  AND end_date > $4
		  AND (driver_id = $5 OR truck_id = $6 OR trailer_id = $7)
	`

	return r.queryTrips(ctx, query,
		domain.TripStatusCanceled,
		excludeID,
		window.End,
		window.Start,
		res.DriverID,
		res.TruckID,
		res.TrailerID,
	)
}

// GetActiveByVehicleID retrieves an active trip referencing the vehicle as
// truck or trailer. Returns nil if none exists.
func (r *TripRepository) GetActiveByVehicleID(ctx context.Context, vehicleID string) (*domain.Trip, error) {
	query := `
		SELECT ` + tripColumns + `
		FROM trips
		WHERE status = $1 AND (truck_id = $2 OR trailer_id = $2)
		LIMIT 1
	`

	trip, err := scanTrip(r.q.QueryRowContext(ctx, query, domain.TripStatusActive, vehicleID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return trip, nil
}

// CountByStatus returns the number of trips per status.
func (r *TripRepository) CountByStatus(ctx context.Context) (map[domain.TripStatus]int64, error) {
	rows, err := r.q.QueryContext(ctx, `SELECT status, COUNT(*) FROM trips GROUP BY status`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[domain.TripStatus]int64)
	for rows.Next() {
		var status domain.TripStatus
		var count int64
		if err := rows.Scan(&status, &count); err != nil {
			return nil, err
		}
		counts[status] = count
	}

	return counts, rows.Err()
}

// SumDistanceAndFuel returns total distance and fuel across all non-canceled
// trips.
func (r *TripRepository) SumDistanceAndFuel(ctx context.Context) (float64, float64, error) {
	query := `
		SELECT COALESCE(SUM(distance_km), 0), COALESCE(SUM(fuel_liters), 0)
		FROM trips WHERE status != $1
	`

	var distance, fuel float64
	if err := r.q.QueryRowContext(ctx, query, domain.TripStatusCanceled).Scan(&distance, &fuel); err != nil {
		return 0, 0, err
	}

	return distance, fuel, nil
}

func (r *TripRepository) queryTrips(ctx context.Context, query string, args ...any) ([]*domain.Trip, error) {
	rows, err := r.q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var trips []*domain.Trip
	for rows.Next() {
		trip, err := scanTrip(rows)
		if err != nil {
			return nil, err
		}
		trips = append(trips, trip)
	}

	return trips, rows.Err()
}

// Ensure TripRepository implements repository.TripRepository.
var _ repository.TripRepository = (*TripRepository)(nil)
