package tests

import (
	"context"
	"errors"
	"testing"

	"fleet/internal/domain"
	"fleet/internal/service"
)

// ──────────────────────────────────────────────
// MAINTENANCE LIFECYCLE
// ──────────────────────────────────────────────

type maintenanceEnv struct {
	vehicleRepo        *MockVehicleRepository
	tripRepo           *MockTripRepository
	maintenanceRepo    *MockMaintenanceRepository
	maintenanceService *service.MaintenanceService
}

func newMaintenanceEnv() *maintenanceEnv {
	vehicleRepo := NewMockVehicleRepository()
	tripRepo := NewMockTripRepository()
	maintenanceRepo := NewMockMaintenanceRepository()
	lockStore := NewMockLockStore()

	statusService := service.NewVehicleStatusService(vehicleRepo, tripRepo, maintenanceRepo, lockStore, nil)
	maintenanceService := service.NewMaintenanceService(maintenanceRepo, statusService, service.NewNotificationService())

	return &maintenanceEnv{
		vehicleRepo:        vehicleRepo,
		tripRepo:           tripRepo,
		maintenanceRepo:    maintenanceRepo,
		maintenanceService: maintenanceService,
	}
}

func TestMaintenanceCreate_ForcesVehicleIntoShop(t *testing.T) {
	t.Parallel()

	env := newMaintenanceEnv()
	env.vehicleRepo.AddVehicle(&domain.Vehicle{
		ID:     "truck-1",
		Type:   domain.VehicleTypeTruck,
		Status: domain.VehicleStatusActive,
	})
	// Vehicle is mid-trip.
	env.tripRepo.AddTrip(&domain.Trip{
		ID:      "trip-1",
		TruckID: "truck-1",
		Status:  domain.TripStatusActive,
	})

	m, err := env.maintenanceService.CreateMaintenance(context.Background(), service.CreateMaintenanceRequest{
		MaintenanceRuleID: "rule-1",
		VehicleID:         "truck-1",
		TargetType:        "truck",
		Component:         "brakes",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.Status != domain.MaintenanceStatusPending {
		t.Errorf("expected pending status, got %s", m.Status)
	}

	// Maintenance wins over the active trip.
	if got := env.vehicleRepo.GetVehicle("truck-1").Status; got != domain.VehicleStatusMaintenance {
		t.Errorf("expected maintenance status, got %s", got)
	}
}

func TestMaintenanceCreate_RejectsMissingFields(t *testing.T) {
	t.Parallel()

	env := newMaintenanceEnv()
	_, err := env.maintenanceService.CreateMaintenance(context.Background(), service.CreateMaintenanceRequest{
		VehicleID: "truck-1",
		Component: "brakes",
	})
	if !errors.Is(err, service.ErrMissingFields) {
		t.Fatalf("expected ErrMissingFields, got %v", err)
	}
}

func TestMaintenanceUpdate_FollowsTransitionTable(t *testing.T) {
	t.Parallel()

	env := newMaintenanceEnv()
	env.vehicleRepo.AddVehicle(&domain.Vehicle{
		ID:     "truck-1",
		Type:   domain.VehicleTypeTruck,
		Status: domain.VehicleStatusMaintenance,
	})
	env.maintenanceRepo.AddMaintenance(&domain.Maintenance{
		ID:        "mnt-1",
		VehicleID: "truck-1",
		Status:    domain.MaintenanceStatusPending,
	})

	// pending -> done skips in_progress.
	_, err := env.maintenanceService.UpdateMaintenanceStatus(context.Background(), "mnt-1", domain.MaintenanceStatusDone)
	if !errors.Is(err, service.ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}

	// pending -> in_progress -> done is the legal path.
	if _, err := env.maintenanceService.UpdateMaintenanceStatus(context.Background(), "mnt-1", domain.MaintenanceStatusInProgress); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	m, err := env.maintenanceService.UpdateMaintenanceStatus(context.Background(), "mnt-1", domain.MaintenanceStatusDone)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.Status != domain.MaintenanceStatusDone {
		t.Errorf("expected done status, got %s", m.Status)
	}

	// done is terminal.
	_, err = env.maintenanceService.UpdateMaintenanceStatus(context.Background(), "mnt-1", domain.MaintenanceStatusPending)
	if !errors.Is(err, service.ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition from done, got %v", err)
	}
}

func TestMaintenanceUpdate_RejectsUnknownStatus(t *testing.T) {
	t.Parallel()

	env := newMaintenanceEnv()
	env.maintenanceRepo.AddMaintenance(&domain.Maintenance{
		ID:        "mnt-1",
		VehicleID: "truck-1",
		Status:    domain.MaintenanceStatusPending,
	})

	_, err := env.maintenanceService.UpdateMaintenanceStatus(context.Background(), "mnt-1", "repaired")
	if !errors.Is(err, service.ErrInvalidStatus) {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}
}

func TestMaintenanceClose_RevealsActiveTrip(t *testing.T) {
	t.Parallel()

	env := newMaintenanceEnv()
	env.vehicleRepo.AddVehicle(&domain.Vehicle{
		ID:     "truck-1",
		Type:   domain.VehicleTypeTruck,
		Status: domain.VehicleStatusMaintenance,
	})
	env.tripRepo.AddTrip(&domain.Trip{
		ID:      "trip-1",
		TruckID: "truck-1",
		Status:  domain.TripStatusActive,
	})
	env.maintenanceRepo.AddMaintenance(&domain.Maintenance{
		ID:        "mnt-1",
		VehicleID: "truck-1",
		Status:    domain.MaintenanceStatusInProgress,
	})

	if _, err := env.maintenanceService.UpdateMaintenanceStatus(context.Background(), "mnt-1", domain.MaintenanceStatusDone); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// With the shop record closed the active trip shows through again.
	if got := env.vehicleRepo.GetVehicle("truck-1").Status; got != domain.VehicleStatusActive {
		t.Errorf("expected active status, got %s", got)
	}
}

func TestMaintenanceCancel_ReleasesIdleVehicle(t *testing.T) {
	t.Parallel()

	env := newMaintenanceEnv()
	env.vehicleRepo.AddVehicle(&domain.Vehicle{
		ID:     "truck-1",
		Type:   domain.VehicleTypeTruck,
		Status: domain.VehicleStatusMaintenance,
	})
	env.maintenanceRepo.AddMaintenance(&domain.Maintenance{
		ID:        "mnt-1",
		VehicleID: "truck-1",
		Status:    domain.MaintenanceStatusPending,
	})

	if _, err := env.maintenanceService.UpdateMaintenanceStatus(context.Background(), "mnt-1", domain.MaintenanceStatusCanceled); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := env.vehicleRepo.GetVehicle("truck-1").Status; got != domain.VehicleStatusInactive {
		t.Errorf("expected inactive status, got %s", got)
	}
}

func TestMaintenanceDelete_ReconcilesVehicle(t *testing.T) {
	t.Parallel()

	env := newMaintenanceEnv()
	env.vehicleRepo.AddVehicle(&domain.Vehicle{
		ID:     "truck-1",
		Type:   domain.VehicleTypeTruck,
		Status: domain.VehicleStatusMaintenance,
	})
	env.maintenanceRepo.AddMaintenance(&domain.Maintenance{
		ID:        "mnt-1",
		VehicleID: "truck-1",
		Status:    domain.MaintenanceStatusPending,
	})

	if err := env.maintenanceService.DeleteMaintenance(context.Background(), "mnt-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := env.vehicleRepo.GetVehicle("truck-1").Status; got != domain.VehicleStatusInactive {
		t.Errorf("expected inactive status, got %s", got)
	}
}
