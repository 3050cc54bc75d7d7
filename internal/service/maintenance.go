package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"fleet/internal/domain"
	"fleet/internal/repository"
)

// MaintenanceService owns the maintenance state machine. Every status change
// re-triggers status reconciliation for the referenced vehicle.
type MaintenanceService struct {
	maintenanceRepo repository.MaintenanceRepository
	statusService   *VehicleStatusService
	notifier        *NotificationService
}

// NewMaintenanceService creates a new MaintenanceService.
func NewMaintenanceService(
	maintenanceRepo repository.MaintenanceRepository,
	statusService *VehicleStatusService,
	notifier *NotificationService,
) *MaintenanceService {
	return &MaintenanceService{
		maintenanceRepo: maintenanceRepo,
		statusService:   statusService,
		notifier:        notifier,
	}
}

// CreateMaintenanceRequest contains the parameters for opening a
// maintenance record.
type CreateMaintenanceRequest struct {
	MaintenanceRuleID string
	VehicleID         string
	TargetType        string
	Component         string
	Description       string
	Cost              float64
	Date              time.Time
	KmAtMaintenance   float64
}

// CreateMaintenance opens a maintenance record in pending state. The
// referenced vehicle is forced into maintenance status: reconciliation runs
// right after the insert, and with an open record the maintenance tier
// always wins, regardless of any active trip.
func (s *MaintenanceService) CreateMaintenance(ctx context.Context, req CreateMaintenanceRequest) (*domain.Maintenance, error) {
	if req.MaintenanceRuleID == "" || req.VehicleID == "" || req.TargetType == "" || req.Component == "" {
		return nil, ErrMissingFields
	}

	m := &domain.Maintenance{
		ID:                uuid.New().String(),
		MaintenanceRuleID: req.MaintenanceRuleID,
		VehicleID:         req.VehicleID,
		TargetType:        req.TargetType,
		Component:         req.Component,
		Status:            domain.MaintenanceStatusPending,
		Description:       req.Description,
		Cost:              req.Cost,
		Date:              req.Date,
		KmAtMaintenance:   req.KmAtMaintenance,
		CreatedAt:         time.Now(),
	}

	if err := s.maintenanceRepo.Create(ctx, m); err != nil {
		return nil, err
	}

	if s.statusService != nil {
		if err := s.statusService.Reconcile(ctx, m.VehicleID); err != nil {
			return nil, err
		}
	}

	if s.notifier != nil {
		_ = s.notifier.NotifyMaintenanceOpened(ctx, m)
	}

	return m, nil
}

// UpdateMaintenanceStatus moves a maintenance record to a new status and
// reconciles the vehicle.
func (s *MaintenanceService) UpdateMaintenanceStatus(ctx context.Context, id string, status domain.MaintenanceStatus) (*domain.Maintenance, error) {
	m, err := s.maintenanceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !domain.ValidMaintenanceStatus(status) {
		return nil, ErrInvalidStatus
	}
	if !domain.CanTransitionMaintenance(m.Status, status) {
		return nil, ErrInvalidTransition
	}

	m.Status = status
	if err := s.maintenanceRepo.Update(ctx, m); err != nil {
		return nil, err
	}

	if s.statusService != nil {
		if err := s.statusService.Reconcile(ctx, m.VehicleID); err != nil {
			return nil, err
		}
	}

	if s.notifier != nil && !status.IsOpen() {
		_ = s.notifier.NotifyMaintenanceClosed(ctx, m)
	}

	return m, nil
}

// GetMaintenance retrieves a maintenance record by ID.
func (s *MaintenanceService) GetMaintenance(ctx context.Context, id string) (*domain.Maintenance, error) {
	return s.maintenanceRepo.GetByID(ctx, id)
}

// GetAllMaintenance retrieves all maintenance records.
func (s *MaintenanceService) GetAllMaintenance(ctx context.Context) ([]*domain.Maintenance, error) {
	return s.maintenanceRepo.GetAll(ctx)
}

// DeleteMaintenance removes a maintenance record and reconciles the vehicle,
// since deleting an open record may release it from the shop.
func (s *MaintenanceService) DeleteMaintenance(ctx context.Context, id string) error {
	m, err := s.maintenanceRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.maintenanceRepo.Delete(ctx, id); err != nil {
		return err
	}

	if s.statusService != nil {
		return s.statusService.Reconcile(ctx, m.VehicleID)
	}

	return nil
}
