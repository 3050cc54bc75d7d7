package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"fleet/internal/domain"
	"fleet/internal/redis"
	"fleet/internal/repository"
)

// VehicleService handles vehicle master data, tracking and cache-aside
// reads. Vehicle status and odometer are not touched here; those belong to
// the projector and the trip lifecycle.
type VehicleService struct {
	vehicleRepo   repository.VehicleRepository
	locationStore redis.LocationStoreInterface
	cacheStore    *redis.CacheStore
}

// NewVehicleService creates a new VehicleService. locationStore and
// cacheStore may be nil.
func NewVehicleService(
	vehicleRepo repository.VehicleRepository,
	locationStore redis.LocationStoreInterface,
	cacheStore *redis.CacheStore,
) *VehicleService {
	return &VehicleService{
		vehicleRepo:   vehicleRepo,
		locationStore: locationStore,
		cacheStore:    cacheStore,
	}
}

// RegisterVehicleRequest contains the parameters for registering a vehicle.
type RegisterVehicleRequest struct {
	PlateNumber string
	Brand       string
	Model       string
	Type        domain.VehicleType
	CurrentKm   float64
}

// RegisterVehicle adds a vehicle to the fleet in available status.
func (s *VehicleService) RegisterVehicle(ctx context.Context, req RegisterVehicleRequest) (*domain.Vehicle, error) {
	if req.PlateNumber == "" {
		return nil, ErrMissingFields
	}
	if req.Type != domain.VehicleTypeTruck && req.Type != domain.VehicleTypeTrailer {
		return nil, ErrInvalidVehicleType
	}

	vehicle := &domain.Vehicle{
		ID:          uuid.New().String(),
		PlateNumber: req.PlateNumber,
		Brand:       req.Brand,
		Model:       req.Model,
		Type:        req.Type,
		CurrentKm:   req.CurrentKm,
		Status:      domain.VehicleStatusAvailable,
		CreatedAt:   time.Now(),
	}

	if err := s.vehicleRepo.Create(ctx, vehicle); err != nil {
		return nil, err
	}

	return vehicle, nil
}

// GetVehicle retrieves a vehicle, trying the cache first.
func (s *VehicleService) GetVehicle(ctx context.Context, id string) (*domain.Vehicle, error) {
	if s.cacheStore != nil {
		cached, err := s.cacheStore.GetVehicle(ctx, id)
		if err == nil && cached != nil {
			return &domain.Vehicle{
				ID:          cached.ID,
				PlateNumber: cached.PlateNumber,
				Brand:       cached.Brand,
				Model:       cached.Model,
				Type:        domain.VehicleType(cached.Type),
				CurrentKm:   cached.CurrentKm,
				Status:      domain.VehicleStatus(cached.Status),
				CreatedAt:   cached.CreatedAt,
			}, nil
		}
		// Cache errors fall through to the database.
	}

	vehicle, err := s.vehicleRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if s.cacheStore != nil {
		_ = s.cacheStore.SetVehicle(ctx, &redis.CachedVehicle{
			ID:          vehicle.ID,
			PlateNumber: vehicle.PlateNumber,
			Brand:       vehicle.Brand,
			Model:       vehicle.Model,
			Type:        string(vehicle.Type),
			CurrentKm:   vehicle.CurrentKm,
			Status:      string(vehicle.Status),
			CreatedAt:   vehicle.CreatedAt,
		})
	}

	return vehicle, nil
}

// GetAllVehicles retrieves all vehicles.
func (s *VehicleService) GetAllVehicles(ctx context.Context) ([]*domain.Vehicle, error) {
	return s.vehicleRepo.GetAll(ctx)
}

// UpdateVehicle updates vehicle master data and invalidates the cache.
func (s *VehicleService) UpdateVehicle(ctx context.Context, vehicle *domain.Vehicle) error {
	if err := s.vehicleRepo.Update(ctx, vehicle); err != nil {
		return err
	}

	if s.cacheStore != nil {
		_ = s.cacheStore.InvalidateVehicle(ctx, vehicle.ID)
	}

	return nil
}

// UpdateLocation records a vehicle's tracking position.
func (s *VehicleService) UpdateLocation(ctx context.Context, id string, lat, lng float64) error {
	// Reject positions for unknown vehicles.
	if _, err := s.vehicleRepo.GetByID(ctx, id); err != nil {
		return err
	}

	if s.locationStore == nil {
		return nil
	}
	return s.locationStore.UpdateLocation(ctx, id, lat, lng)
}

// FindNearbyVehicles returns vehicle positions within radiusKm of the given
// point, closest first.
func (s *VehicleService) FindNearbyVehicles(ctx context.Context, lat, lng, radiusKm float64) ([]redis.VehicleLocation, error) {
	if s.locationStore == nil {
		return nil, nil
	}
	return s.locationStore.FindNearbyVehicles(ctx, lat, lng, radiusKm)
}
