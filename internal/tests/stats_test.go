package tests

import (
	"context"
	"errors"
	"testing"

	"fleet/internal/domain"
	"fleet/internal/service"
)

// ──────────────────────────────────────────────
// FLEET STATS AND DRIVER REGISTRATION
// ──────────────────────────────────────────────

func TestStats_TripAggregates(t *testing.T) {
	t.Parallel()

	tripRepo := NewMockTripRepository()
	maintenanceRepo := NewMockMaintenanceRepository()
	statsService := service.NewStatsService(tripRepo, maintenanceRepo)

	tripRepo.AddTrip(&domain.Trip{ID: "t1", Status: domain.TripStatusDone, DistanceKm: 500, FuelLiters: 120})
	tripRepo.AddTrip(&domain.Trip{ID: "t2", Status: domain.TripStatusActive, DistanceKm: 300, FuelLiters: 80})
	// Canceled trips are excluded from totals but counted per status.
	tripRepo.AddTrip(&domain.Trip{ID: "t3", Status: domain.TripStatusCanceled, DistanceKm: 900, FuelLiters: 200})

	stats, err := statsService.GetTripStats(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if stats.Total != 3 {
		t.Errorf("expected 3 trips, got %d", stats.Total)
	}
	if stats.ByStatus[domain.TripStatusDone] != 1 {
		t.Errorf("expected 1 done trip, got %d", stats.ByStatus[domain.TripStatusDone])
	}
	if stats.TotalDistanceKm != 800 {
		t.Errorf("expected total distance 800, got %v", stats.TotalDistanceKm)
	}
	if stats.TotalFuelLiters != 200 {
		t.Errorf("expected total fuel 200, got %v", stats.TotalFuelLiters)
	}
}

func TestStats_MaintenanceAggregates(t *testing.T) {
	t.Parallel()

	tripRepo := NewMockTripRepository()
	maintenanceRepo := NewMockMaintenanceRepository()
	statsService := service.NewStatsService(tripRepo, maintenanceRepo)

	maintenanceRepo.AddMaintenance(&domain.Maintenance{ID: "m1", Status: domain.MaintenanceStatusDone, Cost: 1500})
	maintenanceRepo.AddMaintenance(&domain.Maintenance{ID: "m2", Status: domain.MaintenanceStatusPending, Cost: 400})
	maintenanceRepo.AddMaintenance(&domain.Maintenance{ID: "m3", Status: domain.MaintenanceStatusCanceled, Cost: 9000})

	stats, err := statsService.GetMaintenanceStats(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if stats.Total != 3 {
		t.Errorf("expected 3 records, got %d", stats.Total)
	}
	if stats.TotalCost != 1900 {
		t.Errorf("expected total cost 1900, got %v", stats.TotalCost)
	}
}

func TestDriverRegister_RejectsDuplicatePhone(t *testing.T) {
	t.Parallel()

	driverRepo := NewMockDriverRepository()
	driverService := service.NewDriverService(driverRepo)

	driverRepo.AddDriver(&domain.Driver{
		ID:    "driver-1",
		Phone: "+48123456789",
	})

	_, err := driverService.RegisterDriver(context.Background(), service.RegisterDriverRequest{
		FirstName: "Jan",
		LastName:  "Kowalski",
		Phone:     "+48123456789",
	})
	if !errors.Is(err, service.ErrDriverExists) {
		t.Fatalf("expected ErrDriverExists, got %v", err)
	}
}

func TestDriverRegister_RequiresCoreFields(t *testing.T) {
	t.Parallel()

	driverRepo := NewMockDriverRepository()
	driverService := service.NewDriverService(driverRepo)

	_, err := driverService.RegisterDriver(context.Background(), service.RegisterDriverRequest{
		FirstName: "Jan",
	})
	if !errors.Is(err, service.ErrMissingFields) {
		t.Fatalf("expected ErrMissingFields, got %v", err)
	}
}
