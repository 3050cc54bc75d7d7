package repository

import (
	"context"

	"fleet/internal/domain"
)

// MaintenanceRepository defines the persistence operations for maintenance
// records.
type MaintenanceRepository interface {
	// Create persists a new maintenance record.
	Create(ctx context.Context, m *domain.Maintenance) error

	// GetByID retrieves a maintenance record by ID.
	GetByID(ctx context.Context, id string) (*domain.Maintenance, error)

	// GetAll retrieves all maintenance records.
	GetAll(ctx context.Context) ([]*domain.Maintenance, error)

	// Update updates an existing maintenance record.
	Update(ctx context.Context, m *domain.Maintenance) error

	// Delete removes a maintenance record.
	Delete(ctx context.Context, id string) error

	// CountOpenByVehicleID counts pending and in_progress records for the
	// vehicle.
	CountOpenByVehicleID(ctx context.Context, vehicleID string) (int64, error)

	// CountByStatus returns the number of records per status.
	CountByStatus(ctx context.Context) (map[domain.MaintenanceStatus]int64, error)

	// SumCost returns the total cost across all non-canceled records.
	SumCost(ctx context.Context) (float64, error)
}

// MaintenanceRuleRepository defines the persistence operations for
// maintenance rules (static reference data).
type MaintenanceRuleRepository interface {
	Create(ctx context.Context, rule *domain.MaintenanceRule) error
	GetByID(ctx context.Context, id string) (*domain.MaintenanceRule, error)
	GetAll(ctx context.Context) ([]*domain.MaintenanceRule, error)
	Update(ctx context.Context, rule *domain.MaintenanceRule) error
	Delete(ctx context.Context, id string) error
}
