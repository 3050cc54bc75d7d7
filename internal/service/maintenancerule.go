package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"fleet/internal/domain"
	"fleet/internal/repository"
)

// MaintenanceRuleService manages the recurring maintenance recommendations
// that maintenance records are opened against.
type MaintenanceRuleService struct {
	ruleRepo repository.MaintenanceRuleRepository
}

// NewMaintenanceRuleService creates a new MaintenanceRuleService.
func NewMaintenanceRuleService(ruleRepo repository.MaintenanceRuleRepository) *MaintenanceRuleService {
	return &MaintenanceRuleService{ruleRepo: ruleRepo}
}

// CreateRuleRequest contains the parameters for creating a maintenance rule.
type CreateRuleRequest struct {
	Type              string
	RecommendedKm     float64
	RecommendedMonths int
	Description       string
}

// CreateRule adds a new maintenance rule, active by default.
func (s *MaintenanceRuleService) CreateRule(ctx context.Context, req CreateRuleRequest) (*domain.MaintenanceRule, error) {
	if req.Type == "" {
		return nil, ErrMissingFields
	}

	rule := &domain.MaintenanceRule{
		ID:                uuid.New().String(),
		Type:              req.Type,
		RecommendedKm:     req.RecommendedKm,
		RecommendedMonths: req.RecommendedMonths,
		Description:       req.Description,
		IsActive:          true,
		CreatedAt:         time.Now(),
	}

	if err := s.ruleRepo.Create(ctx, rule); err != nil {
		return nil, err
	}

	return rule, nil
}

// GetRule retrieves a maintenance rule by ID.
func (s *MaintenanceRuleService) GetRule(ctx context.Context, id string) (*domain.MaintenanceRule, error) {
	return s.ruleRepo.GetByID(ctx, id)
}

// GetAllRules retrieves all maintenance rules.
func (s *MaintenanceRuleService) GetAllRules(ctx context.Context) ([]*domain.MaintenanceRule, error) {
	return s.ruleRepo.GetAll(ctx)
}

// UpdateRule updates a maintenance rule.
func (s *MaintenanceRuleService) UpdateRule(ctx context.Context, rule *domain.MaintenanceRule) error {
	return s.ruleRepo.Update(ctx, rule)
}

// DeleteRule removes a maintenance rule.
func (s *MaintenanceRuleService) DeleteRule(ctx context.Context, id string) error {
	return s.ruleRepo.Delete(ctx, id)
}
