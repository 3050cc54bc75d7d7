package tests

import (
	"context"
	"testing"
	"time"

	"fleet/internal/domain"
	"fleet/internal/service"
)

// ──────────────────────────────────────────────
// VEHICLE STATUS PROJECTION
// ──────────────────────────────────────────────

func newProjectorEnv() (*MockVehicleRepository, *MockTripRepository, *MockMaintenanceRepository, *MockLockStore, *service.VehicleStatusService) {
	vehicleRepo := NewMockVehicleRepository()
	tripRepo := NewMockTripRepository()
	maintenanceRepo := NewMockMaintenanceRepository()
	lockStore := NewMockLockStore()
	statusService := service.NewVehicleStatusService(vehicleRepo, tripRepo, maintenanceRepo, lockStore, nil)
	return vehicleRepo, tripRepo, maintenanceRepo, lockStore, statusService
}

func TestReconcile_MaintenanceBeatsActiveTrip(t *testing.T) {
	t.Parallel()

	vehicleRepo, tripRepo, maintenanceRepo, _, statusService := newProjectorEnv()

	vehicleRepo.AddVehicle(&domain.Vehicle{
		ID:     "truck-1",
		Type:   domain.VehicleTypeTruck,
		Status: domain.VehicleStatusActive,
	})
	tripRepo.AddTrip(&domain.Trip{
		ID:      "trip-1",
		TruckID: "truck-1",
		Status:  domain.TripStatusActive,
	})
	maintenanceRepo.AddMaintenance(&domain.Maintenance{
		ID:        "mnt-1",
		VehicleID: "truck-1",
		Status:    domain.MaintenanceStatusPending,
	})

	if err := statusService.Reconcile(context.Background(), "truck-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Open maintenance outranks the active trip.
	if got := vehicleRepo.GetVehicle("truck-1").Status; got != domain.VehicleStatusMaintenance {
		t.Errorf("expected maintenance status, got %s", got)
	}
}

func TestReconcile_ActiveTripProjectsActive(t *testing.T) {
	t.Parallel()

	vehicleRepo, tripRepo, _, _, statusService := newProjectorEnv()

	vehicleRepo.AddVehicle(&domain.Vehicle{
		ID:     "trailer-1",
		Type:   domain.VehicleTypeTrailer,
		Status: domain.VehicleStatusAvailable,
	})
	tripRepo.AddTrip(&domain.Trip{
		ID:        "trip-1",
		TrailerID: "trailer-1",
		Status:    domain.TripStatusActive,
	})

	if err := statusService.Reconcile(context.Background(), "trailer-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := vehicleRepo.GetVehicle("trailer-1").Status; got != domain.VehicleStatusActive {
		t.Errorf("expected active status, got %s", got)
	}
}

func TestReconcile_IdleVehicleProjectsInactive(t *testing.T) {
	t.Parallel()

	vehicleRepo, tripRepo, _, _, statusService := newProjectorEnv()

	vehicleRepo.AddVehicle(&domain.Vehicle{
		ID:     "truck-1",
		Type:   domain.VehicleTypeTruck,
		Status: domain.VehicleStatusActive,
	})
	// Pending and done trips do not hold the vehicle.
	tripRepo.AddTrip(&domain.Trip{
		ID:      "trip-1",
		TruckID: "truck-1",
		Status:  domain.TripStatusPending,
	})
	tripRepo.AddTrip(&domain.Trip{
		ID:      "trip-2",
		TruckID: "truck-1",
		Status:  domain.TripStatusDone,
	})

	if err := statusService.Reconcile(context.Background(), "truck-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := vehicleRepo.GetVehicle("truck-1").Status; got != domain.VehicleStatusInactive {
		t.Errorf("expected inactive status, got %s", got)
	}
}

func TestReconcile_ClosedMaintenanceReleasesVehicle(t *testing.T) {
	t.Parallel()

	vehicleRepo, _, maintenanceRepo, _, statusService := newProjectorEnv()

	vehicleRepo.AddVehicle(&domain.Vehicle{
		ID:     "truck-1",
		Type:   domain.VehicleTypeTruck,
		Status: domain.VehicleStatusMaintenance,
	})
	maintenanceRepo.AddMaintenance(&domain.Maintenance{
		ID:        "mnt-1",
		VehicleID: "truck-1",
		Status:    domain.MaintenanceStatusDone,
	})
	maintenanceRepo.AddMaintenance(&domain.Maintenance{
		ID:        "mnt-2",
		VehicleID: "truck-1",
		Status:    domain.MaintenanceStatusCanceled,
	})

	if err := statusService.Reconcile(context.Background(), "truck-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := vehicleRepo.GetVehicle("truck-1").Status; got != domain.VehicleStatusInactive {
		t.Errorf("expected inactive status, got %s", got)
	}
}

func TestReconcile_AcquiresAndReleasesLock(t *testing.T) {
	t.Parallel()

	vehicleRepo, _, _, lockStore, statusService := newProjectorEnv()

	vehicleRepo.AddVehicle(&domain.Vehicle{
		ID:     "truck-1",
		Type:   domain.VehicleTypeTruck,
		Status: domain.VehicleStatusAvailable,
	})

	if err := statusService.Reconcile(context.Background(), "truck-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if lockStore.AcquireCallCount != 1 {
		t.Errorf("expected 1 lock acquire, got %d", lockStore.AcquireCallCount)
	}
	if lockStore.ReleaseCallCount != 1 {
		t.Errorf("expected 1 lock release, got %d", lockStore.ReleaseCallCount)
	}
}

func TestReconcile_IsIdempotent(t *testing.T) {
	t.Parallel()

	vehicleRepo, tripRepo, _, _, statusService := newProjectorEnv()

	vehicleRepo.AddVehicle(&domain.Vehicle{
		ID:     "truck-1",
		Type:   domain.VehicleTypeTruck,
		Status: domain.VehicleStatusAvailable,
	})
	tripRepo.AddTrip(&domain.Trip{
		ID:      "trip-1",
		TruckID: "truck-1",
		Status:  domain.TripStatusActive,
	})

	for i := 0; i < 3; i++ {
		if err := statusService.Reconcile(context.Background(), "truck-1"); err != nil {
			t.Fatalf("reconcile %d failed: %v", i, err)
		}
		if got := vehicleRepo.GetVehicle("truck-1").Status; got != domain.VehicleStatusActive {
			t.Fatalf("reconcile %d: expected active status, got %s", i, got)
		}
	}
}

func TestReconcile_ConcurrentCallsConverge(t *testing.T) {
	t.Parallel()

	vehicleRepo, tripRepo, _, _, statusService := newProjectorEnv()

	vehicleRepo.AddVehicle(&domain.Vehicle{
		ID:     "truck-1",
		Type:   domain.VehicleTypeTruck,
		Status: domain.VehicleStatusAvailable,
	})
	tripRepo.AddTrip(&domain.Trip{
		ID:      "trip-1",
		TruckID: "truck-1",
		Status:  domain.TripStatusActive,
	})

	done := make(chan error, 4)
	for i := 0; i < 4; i++ {
		go func() {
			done <- statusService.Reconcile(context.Background(), "truck-1")
		}()
	}
	for i := 0; i < 4; i++ {
		select {
		case err := <-done:
			if err != nil {
				t.Fatalf("concurrent reconcile failed: %v", err)
			}
		case <-time.After(5 * time.Second):
			t.Fatal("reconcile did not finish")
		}
	}

	if got := vehicleRepo.GetVehicle("truck-1").Status; got != domain.VehicleStatusActive {
		t.Errorf("expected active status, got %s", got)
	}
}
