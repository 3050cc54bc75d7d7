package service

import (
	"context"
	"time"

	"fleet/internal/domain"
	"fleet/internal/redis"
	"fleet/internal/repository"
)

const (
	vehicleLockTTL   = 5 * time.Second
	vehicleLockRetry = 50 * time.Millisecond
	vehicleLockTries = 20
)

// VehicleStatusService projects a vehicle's derived status from the trips
// and maintenance records that reference it. It is the only writer of
// vehicle status in the core: trip and maintenance transitions call
// Reconcile instead of writing the status themselves.
type VehicleStatusService struct {
	vehicleRepo     repository.VehicleRepository
	tripRepo        repository.TripRepository
	maintenanceRepo repository.MaintenanceRepository
	lockStore       redis.LockStoreInterface
	cacheStore      *redis.CacheStore
}

// NewVehicleStatusService creates a new VehicleStatusService. lockStore and
// cacheStore may be nil (tests, degraded mode without Redis).
func NewVehicleStatusService(
	vehicleRepo repository.VehicleRepository,
	tripRepo repository.TripRepository,
	maintenanceRepo repository.MaintenanceRepository,
	lockStore redis.LockStoreInterface,
	cacheStore *redis.CacheStore,
) *VehicleStatusService {
	return &VehicleStatusService{
		vehicleRepo:     vehicleRepo,
		tripRepo:        tripRepo,
		maintenanceRepo: maintenanceRepo,
		lockStore:       lockStore,
		cacheStore:      cacheStore,
	}
}

// Reconcile recomputes and persists the vehicle's status from current
// database state. Idempotent. Priority, in order:
//
//  1. any open maintenance record -> maintenance
//  2. any active trip referencing the vehicle -> active
//  3. otherwise -> inactive
//
// A vehicle in the shop is never shown as drivable, even if an active trip
// still references it.
func (s *VehicleStatusService) Reconcile(ctx context.Context, vehicleID string) error {
	if s.lockStore != nil {
		if err := s.acquireLock(ctx, vehicleID); err != nil {
			return err
		}
		defer func() { _ = s.lockStore.ReleaseVehicleLock(ctx, vehicleID) }()
	}

	status, err := s.project(ctx, vehicleID)
	if err != nil {
		return err
	}

	if err := s.vehicleRepo.UpdateStatus(ctx, vehicleID, status); err != nil {
		return err
	}

	if s.cacheStore != nil {
		_ = s.cacheStore.InvalidateVehicle(ctx, vehicleID)
	}

	return nil
}

// project computes the status without writing it.
func (s *VehicleStatusService) project(ctx context.Context, vehicleID string) (domain.VehicleStatus, error) {
	openCount, err := s.maintenanceRepo.CountOpenByVehicleID(ctx, vehicleID)
	if err != nil {
		return "", err
	}
	if openCount > 0 {
		return domain.VehicleStatusMaintenance, nil
	}

	activeTrip, err := s.tripRepo.GetActiveByVehicleID(ctx, vehicleID)
	if err != nil {
		return "", err
	}
	if activeTrip != nil {
		return domain.VehicleStatusActive, nil
	}

	return domain.VehicleStatusInactive, nil
}

// acquireLock serializes reconciliation per vehicle: a trip transition and a
// maintenance transition may reconcile the same vehicle concurrently.
func (s *VehicleStatusService) acquireLock(ctx context.Context, vehicleID string) error {
	for i := 0; i < vehicleLockTries; i++ {
		ok, err := s.lockStore.AcquireVehicleLock(ctx, vehicleID, vehicleLockTTL)
		if err != nil {
			return err
		}
		if ok {
			return nil
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(vehicleLockRetry):
		}
	}

	// Lock holder exceeded the TTL budget; proceed anyway. The projection is
	// idempotent and last-writer-wins on a fresh read is acceptable here.
	return nil
}
