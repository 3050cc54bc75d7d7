package repository

import (
	"context"

	"fleet/internal/domain"
)

// VehicleRepository defines the persistence operations for vehicles.
type VehicleRepository interface {
	// Create persists a new vehicle.
	Create(ctx context.Context, vehicle *domain.Vehicle) error

	// GetByID retrieves a vehicle by ID.
	GetByID(ctx context.Context, id string) (*domain.Vehicle, error)

	// GetAll retrieves all vehicles.
	GetAll(ctx context.Context) ([]*domain.Vehicle, error)

	// Update updates vehicle master data (plate, brand, model, type).
	Update(ctx context.Context, vehicle *domain.Vehicle) error

	// UpdateStatus sets the vehicle's derived status.
	UpdateStatus(ctx context.Context, id string, status domain.VehicleStatus) error

	// IncrementKm atomically adds deltaKm to the vehicle's odometer.
	// Implementations must perform the increment at the storage layer,
	// never read-modify-write.
	IncrementKm(ctx context.Context, id string, deltaKm float64) error
}
