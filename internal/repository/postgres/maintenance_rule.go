package postgres

import (
	"context"
	"database/sql"
	"errors"

	"fleet/internal/domain"
	"fleet/internal/repository"
)

// MaintenanceRuleRepository is a PostgreSQL implementation of
// repository.MaintenanceRuleRepository.
type MaintenanceRuleRepository struct {
	q Querier
}

// NewMaintenanceRuleRepository creates a new PostgreSQL maintenance rule
// repository.
func NewMaintenanceRuleRepository(db *sql.DB) *MaintenanceRuleRepository {
	return &MaintenanceRuleRepository{q: db}
}

const ruleColumns = `id, type, recommended_km, recommended_months, description, is_active, created_at`

func scanRule(row interface{ Scan(...any) error }) (*domain.MaintenanceRule, error) {
	var rule domain.MaintenanceRule
	err := row.Scan(
		&rule.ID,
		&rule.Type,
		&rule.RecommendedKm,
		&rule.RecommendedMonths,
		&rule.Description,
		&rule.IsActive,
		&rule.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &rule, nil
}

// Create persists a new maintenance rule.
func (r *MaintenanceRuleRepository) Create(ctx context.Context, rule *domain.MaintenanceRule) error {
	query := `
		INSERT INTO maintenance_rules (id, type, recommended_km, recommended_months, description, is_active, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.q.ExecContext(ctx, query,
		rule.ID,
		rule.Type,
		rule.RecommendedKm,
		rule.RecommendedMonths,
		rule.Description,
		rule.IsActive,
		rule.CreatedAt,
	)

	return err
}

// GetByID retrieves a maintenance rule by ID.
func (r *MaintenanceRuleRepository) GetByID(ctx context.Context, id string) (*domain.MaintenanceRule, error) {
	query := `SELECT ` + ruleColumns + ` FROM maintenance_rules WHERE id = $1`

	rule, err := scanRule(r.q.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	return rule, nil
}

// GetAll retrieves all maintenance rules.
func (r *MaintenanceRuleRepository) GetAll(ctx context.Context) ([]*domain.MaintenanceRule, error) {
	query := `SELECT ` + ruleColumns + ` FROM maintenance_rules ORDER BY type`

	rows, err := r.q.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rules []*domain.MaintenanceRule
	for rows.Next() {
		rule, err := scanRule(rows)
		if err != nil {
			return nil, err
		}
		rules = append(rules, rule)
	}

	return rules, rows.Err()
}

// Update updates an existing maintenance rule.
func (r *MaintenanceRuleRepository) Update(ctx context.Context, rule *domain.MaintenanceRule) error {
	query := `
		UPDATE maintenance_rules
		SET type = $1, recommended_km = $2, recommended_months = $3, description = $4, is_active = $5
		WHERE id = $6
	`

	result, err := r.q.ExecContext(ctx, query,
		rule.Type,
		rule.RecommendedKm,
		rule.RecommendedMonths,
		rule.Description,
		rule.IsActive,
		rule.ID,
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

// Delete removes a maintenance rule.
func (r *MaintenanceRuleRepository) Delete(ctx context.Context, id string) error {
	result, err := r.q.ExecContext(ctx, `DELETE FROM maintenance_rules WHERE id = $1`, id)
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

// Ensure MaintenanceRuleRepository implements
// repository.MaintenanceRuleRepository.
var _ repository.MaintenanceRuleRepository = (*MaintenanceRuleRepository)(nil)
