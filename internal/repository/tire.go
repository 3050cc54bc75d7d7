package repository

import (
	"context"

	"fleet/internal/domain"
)

// TireRepository defines the persistence operations for tires.
type TireRepository interface {
	Create(ctx context.Context, tire *domain.Tire) error
	GetByID(ctx context.Context, id string) (*domain.Tire, error)
	GetByVehicleID(ctx context.Context, vehicleID string) ([]*domain.Tire, error)
	GetAll(ctx context.Context) ([]*domain.Tire, error)
	Update(ctx context.Context, tire *domain.Tire) error
	Delete(ctx context.Context, id string) error
}
