package repository

import (
	"context"
	"time"

	"fleet/internal/domain"
)

// BookingWindow is a half-open [Start, End) time range used for overlap
// queries. A trip ending exactly at Start does not overlap the window.
type BookingWindow struct {
	Start time.Time
	End   time.Time
}

// TripResources identifies the resources a trip books.
type TripResources struct {
	DriverID  string
	TruckID   string
	TrailerID string
}

// TripRepository defines the persistence operations for trips.
type TripRepository interface {
	// Create persists a new trip.
	Create(ctx context.Context, trip *domain.Trip) error

	// GetByID retrieves a trip by ID.
	GetByID(ctx context.Context, id string) (*domain.Trip, error)

	// GetAll retrieves all trips.
	GetAll(ctx context.Context) ([]*domain.Trip, error)

	// GetByDriverID retrieves all trips booked for a driver.
	GetByDriverID(ctx context.Context, driverID string) ([]*domain.Trip, error)

	// Update updates an existing trip.
	Update(ctx context.Context, trip *domain.Trip) error

	// Delete removes a trip.
	Delete(ctx context.Context, id string) error

	// FindOverlapping returns all non-canceled trips other than excludeID
	// whose window overlaps the given half-open window and which share at
	// least one of the given resources.
	FindOverlapping(ctx context.Context, res TripResources, window BookingWindow, excludeID string) ([]*domain.Trip, error)

	// GetActiveByVehicleID retrieves an active trip referencing the vehicle
	// as truck or trailer. Returns nil if none exists.
	GetActiveByVehicleID(ctx context.Context, vehicleID string) (*domain.Trip, error)

	// CountByStatus returns the number of trips per status.
	CountByStatus(ctx context.Context) (map[domain.TripStatus]int64, error)

	// SumDistanceAndFuel returns total distance (km) and fuel (liters)
	// across all non-canceled trips.
	SumDistanceAndFuel(ctx context.Context) (float64, float64, error)
}
