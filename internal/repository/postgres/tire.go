package postgres

import (
	"context"
	"database/sql"
	"errors"

	"fleet/internal/domain"
	"fleet/internal/repository"
)

// TireRepository is a PostgreSQL implementation of repository.TireRepository.
type TireRepository struct {
	q Querier
}

// NewTireRepository creates a new PostgreSQL tire repository.
func NewTireRepository(db *sql.DB) *TireRepository {
	return &TireRepository{q: db}
}

const tireColumns = `id, vehicle_id, serial_number, position, wear_level, installed_on, created_at`

func scanTire(row interface{ Scan(...any) error }) (*domain.Tire, error) {
	var tire domain.Tire
	err := row.Scan(
		&tire.ID,
		&tire.VehicleID,
		&tire.SerialNumber,
		&tire.Position,
		&tire.WearLevel,
		&tire.InstalledOn,
		&tire.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &tire, nil
}

// Create persists a new tire.
func (r *TireRepository) Create(ctx context.Context, tire *domain.Tire) error {
	query := `
		INSERT INTO tires (id, vehicle_id, serial_number, position, wear_level, installed_on, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.q.ExecContext(ctx, query,
		tire.ID,
		tire.VehicleID,
		tire.SerialNumber,
		tire.Position,
		tire.WearLevel,
		tire.InstalledOn,
		tire.CreatedAt,
	)

	return err
}

// GetByID retrieves a tire by ID.
func (r *TireRepository) GetByID(ctx context.Context, id string) (*domain.Tire, error) {
	query := `SELECT ` + tireColumns + ` FROM tires WHERE id = $1`

	tire, err := scanTire(r.q.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	return tire, nil
}

// GetByVehicleID retrieves all tires mounted on a vehicle.
func (r *TireRepository) GetByVehicleID(ctx context.Context, vehicleID string) ([]*domain.Tire, error) {
	query := `SELECT ` + tireColumns + ` FROM tires WHERE vehicle_id = $1 ORDER BY position`
	return r.queryTires(ctx, query, vehicleID)
}

// GetAll retrieves all tires.
func (r *TireRepository) GetAll(ctx context.Context) ([]*domain.Tire, error) {
	query := `SELECT ` + tireColumns + ` FROM tires ORDER BY vehicle_id, position`
	return r.queryTires(ctx, query)
}

// Update updates an existing tire.
func (r *TireRepository) Update(ctx context.Context, tire *domain.Tire) error {
	query := `
		UPDATE tires
		SET vehicle_id = $1, serial_number = $2, position = $3, wear_level = $4, installed_on = $5
		WHERE id = $6
	`

	result, err := r.q.ExecContext(ctx, query,
		tire.VehicleID,
		tire.SerialNumber,
		tire.Position,
		tire.WearLevel,
		tire.InstalledOn,
		tire.ID,
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

// Delete removes a tire.
func (r *TireRepository) Delete(ctx context.Context, id string) error {
	result, err := r.q.ExecContext(ctx, `DELETE FROM tires WHERE id = $1`, id)
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

func (r *TireRepository) queryTires(ctx context.Context, query string, args ...any) ([]*domain.Tire, error) {
	rows, err := r.q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tires []*domain.Tire
	for rows.Next() {
		tire, err := scanTire(rows)
		if err != nil {
			return nil, err
		}
		tires = append(tires, tire)
	}

	return tires, rows.Err()
}

// Ensure TireRepository implements repository.TireRepository.
var _ repository.TireRepository = (*TireRepository)(nil)
