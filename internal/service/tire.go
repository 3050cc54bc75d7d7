package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"fleet/internal/domain"
	"fleet/internal/repository"
)

// TireService handles tire inventory. Tires are tracked per vehicle so
// maintenance records can reference worn positions.
type TireService struct {
	tireRepo    repository.TireRepository
	vehicleRepo repository.VehicleRepository
}

// NewTireService creates a new TireService.
func NewTireService(tireRepo repository.TireRepository, vehicleRepo repository.VehicleRepository) *TireService {
	return &TireService{tireRepo: tireRepo, vehicleRepo: vehicleRepo}
}

// InstallTireRequest contains the parameters for installing a tire.
type InstallTireRequest struct {
	VehicleID    string
	SerialNumber string
	Position     string
	WearLevel    string
}

// InstallTire records a tire mounted on a vehicle.
func (s *TireService) InstallTire(ctx context.Context, req InstallTireRequest) (*domain.Tire, error) {
	if req.VehicleID == "" || req.SerialNumber == "" || req.Position == "" {
		return nil, ErrMissingFields
	}

	vehicle, err := s.vehicleRepo.GetByID(ctx, req.VehicleID)
	if err != nil {
		return nil, err
	}

	tire := &domain.Tire{
		ID:           uuid.New().String(),
		VehicleID:    req.VehicleID,
		SerialNumber: req.SerialNumber,
		Position:     req.Position,
		WearLevel:    req.WearLevel,
		InstalledOn:  vehicle.Type,
		CreatedAt:    time.Now(),
	}

	if err := s.tireRepo.Create(ctx, tire); err != nil {
		return nil, err
	}

	return tire, nil
}

// GetTire retrieves a tire by ID.
func (s *TireService) GetTire(ctx context.Context, id string) (*domain.Tire, error) {
	return s.tireRepo.GetByID(ctx, id)
}

// GetTiresByVehicle retrieves all tires mounted on a vehicle.
func (s *TireService) GetTiresByVehicle(ctx context.Context, vehicleID string) ([]*domain.Tire, error) {
	return s.tireRepo.GetByVehicleID(ctx, vehicleID)
}

// GetAllTires retrieves all tires.
func (s *TireService) GetAllTires(ctx context.Context) ([]*domain.Tire, error) {
	return s.tireRepo.GetAll(ctx)
}

// UpdateTire updates a tire's position or wear level.
func (s *TireService) UpdateTire(ctx context.Context, tire *domain.Tire) error {
	return s.tireRepo.Update(ctx, tire)
}

// RemoveTire removes a tire from the inventory.
func (s *TireService) RemoveTire(ctx context.Context, id string) error {
	return s.tireRepo.Delete(ctx, id)
}
