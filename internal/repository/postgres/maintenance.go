package postgres

import (
	"context"
	"database/sql"
	"errors"

	"fleet/internal/domain"
	"fleet/internal/repository"
)

// MaintenanceRepository is a PostgreSQL implementation of
// repository.MaintenanceRepository.
type MaintenanceRepository struct {
	q Querier
}

// NewMaintenanceRepository creates a new PostgreSQL maintenance repository.
func NewMaintenanceRepository(db *sql.DB) *MaintenanceRepository {
	return &MaintenanceRepository{q: db}
}

// NewMaintenanceRepositoryWithTx creates a maintenance repository using a
// transaction.
func NewMaintenanceRepositoryWithTx(tx *sql.Tx) *MaintenanceRepository {
	return &MaintenanceRepository{q: tx}
}

const maintenanceColumns = `
	id, maintenance_rule_id, vehicle_id, target_type, component, status,
	description, cost, date, km_at_maintenance, created_at
`

func scanMaintenance(row interface{ Scan(...any) error }) (*domain.Maintenance, error) {
	var m domain.Maintenance
	var date sql.NullTime
	err := row.Scan(
		&m.ID,
		&m.MaintenanceRuleID,
		&m.VehicleID,
		&m.TargetType,
		&m.Component,
		&m.Status,
		&m.Description,
		&m.Cost,
		&date,
		&m.KmAtMaintenance,
		&m.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	if date.Valid {
		m.Date = date.Time
	}
	return &m, nil
}

// Create persists a new maintenance record.
func (r *MaintenanceRepository) Create(ctx context.Context, m *domain.Maintenance) error {
	query := `
		INSERT INTO maintenance_records (id, maintenance_rule_id, vehicle_id, target_type,
			component, status, description, cost, date, km_at_maintenance, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	var date sql.NullTime
	if !m.Date.IsZero() {
		date = sql.NullTime{Time: m.Date, Valid: true}
	}

	_, err := r.q.ExecContext(ctx, query,
		m.ID,
		m.MaintenanceRuleID,
		m.VehicleID,
		m.TargetType,
		m.Component,
		m.Status,
		m.Description,
		m.Cost,
		date,
		m.KmAtMaintenance,
		m.CreatedAt,
	)

	return err
}

// GetByID retrieves a maintenance record by ID.
func (r *MaintenanceRepository) GetByID(ctx context.Context, id string) (*domain.Maintenance, error) {
	query := `SELECT ` + maintenanceColumns + ` FROM maintenance_records WHERE id = $1`

	m, err := scanMaintenance(r.q.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	return m, nil
}

// GetAll retrieves all maintenance records, newest first.
func (r *MaintenanceRepository) GetAll(ctx context.Context) ([]*domain.Maintenance, error) {
	query := `SELECT ` + maintenanceColumns + ` FROM maintenance_records ORDER BY created_at DESC LIMIT 100`

	rows, err := r.q.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []*domain.Maintenance
	for rows.Next() {
		m, err := scanMaintenance(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, m)
	}

	return records, rows.Err()
}

// Update updates an existing maintenance record.
func (r *MaintenanceRepository) Update(ctx context.Context, m *domain.Maintenance) error {
	query := `
		UPDATE maintenance_records
		SET maintenance_rule_id = $1, vehicle_id = $2, target_type = $3, component = $4,
			status = $5, description = $6, cost = $7, date = $8, km_at_maintenance = $9
		WHERE id = $10
	`

	var date sql.NullTime
	if !m.Date.IsZero() {
		date = sql.NullTime{Time: m.Date, Valid: true}
	}

	result, err := r.q.ExecContext(ctx, query,
		m.MaintenanceRuleID,
		m.VehicleID,
		m.TargetType,
		m.Component,
		m.Status,
		m.Description,
		m.Cost,
		date,
		m.KmAtMaintenance,
		m.ID,
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

// Delete removes a maintenance record.
func (r *MaintenanceRepository) Delete(ctx context.Context, id string) error {
	result, err := r.q.ExecContext(ctx, `DELETE FROM maintenance_records WHERE id = $1`, id)
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

// CountOpenByVehicleID counts pending and in_progress records for the vehicle.
func (r *MaintenanceRepository) CountOpenByVehicleID(ctx context.Context, vehicleID string) (int64, error) {
	query := `
		SELECT COUNT(*) FROM maintenance_records
		WHERE vehicle_id = $1 AND status IN ($2, $3)
	`

	var count int64
	err := r.q.QueryRowContext(ctx, query,
		vehicleID,
		domain.MaintenanceStatusPending,
		domain.MaintenanceStatusInProgress,
	).Scan(&count)
	if err != nil {
		return 0, err
	}

	return count, nil
}

// CountByStatus returns the number of maintenance records per status.
func (r *MaintenanceRepository) CountByStatus(ctx context.Context) (map[domain.MaintenanceStatus]int64, error) {
	rows, err := r.q.QueryContext(ctx, `SELECT status, COUNT(*) FROM maintenance_records GROUP BY status`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[domain.MaintenanceStatus]int64)
	for rows.Next() {
		var status domain.MaintenanceStatus
		var count int64
		if err := rows.Scan(&status, &count); err != nil {
			return nil, err
		}
		counts[status] = count
	}

	return counts, rows.Err()
}

// SumCost returns the total cost across all non-canceled records.
func (r *MaintenanceRepository) SumCost(ctx context.Context) (float64, error) {
	query := `SELECT COALESCE(SUM(cost), 0) FROM maintenance_records WHERE status != $1`

	var total float64
	if err := r.q.QueryRowContext(ctx, query, domain.MaintenanceStatusCanceled).Scan(&total); err != nil {
		return 0, err
	}

	return total, nil
}

// Ensure MaintenanceRepository implements repository.MaintenanceRepository.
var _ repository.MaintenanceRepository = (*MaintenanceRepository)(nil)
