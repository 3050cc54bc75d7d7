package tests

import (
	"context"
	"errors"
	"testing"
	"time"

	"fleet/internal/domain"
	"fleet/internal/service"
)

// ──────────────────────────────────────────────
// TRIP LIFECYCLE
// ──────────────────────────────────────────────

// tripEnv wires a TripService against in-memory repositories. The nil db
// handle makes the service run without transactions.
type tripEnv struct {
	tripRepo        *MockTripRepository
	vehicleRepo     *MockVehicleRepository
	maintenanceRepo *MockMaintenanceRepository
	driverRepo      *MockDriverRepository
	lockStore       *MockLockStore
	statusService   *service.VehicleStatusService
	tripService     *service.TripService
}

func newTripEnv() *tripEnv {
	tripRepo := NewMockTripRepository()
	vehicleRepo := NewMockVehicleRepository()
	maintenanceRepo := NewMockMaintenanceRepository()
	driverRepo := NewMockDriverRepository()
	lockStore := NewMockLockStore()

	statusService := service.NewVehicleStatusService(vehicleRepo, tripRepo, maintenanceRepo, lockStore, nil)
	tripService := service.NewTripService(nil, tripRepo, vehicleRepo, driverRepo, statusService, service.NewNotificationService())

	return &tripEnv{
		tripRepo:        tripRepo,
		vehicleRepo:     vehicleRepo,
		maintenanceRepo: maintenanceRepo,
		driverRepo:      driverRepo,
		lockStore:       lockStore,
		statusService:   statusService,
		tripService:     tripService,
	}
}

// addVehicles seeds a truck and trailer pair with the given odometer values.
func (env *tripEnv) addVehicles(truckKm, trailerKm float64) {
	env.vehicleRepo.AddVehicle(&domain.Vehicle{
		ID:          "truck-1",
		PlateNumber: "TRK-001",
		Type:        domain.VehicleTypeTruck,
		CurrentKm:   truckKm,
		Status:      domain.VehicleStatusAvailable,
	})
	env.vehicleRepo.AddVehicle(&domain.Vehicle{
		ID:          "trailer-1",
		PlateNumber: "TRL-001",
		Type:        domain.VehicleTypeTrailer,
		CurrentKm:   trailerKm,
		Status:      domain.VehicleStatusAvailable,
	})
}

// addActivatableTrip stores a pending trip whose window spans time.Now so it
// can be activated.
func (env *tripEnv) addActivatableTrip(id string, distanceKm float64) {
	env.tripRepo.AddTrip(&domain.Trip{
		ID:         id,
		DriverID:   "driver-1",
		TruckID:    "truck-1",
		TrailerID:  "trailer-1",
		StartDate:  time.Now().Add(-time.Hour),
		EndDate:    time.Now().Add(time.Hour),
		Status:     domain.TripStatusPending,
		DistanceKm: distanceKm,
	})
}

func activeStatus() *domain.TripStatus {
	s := domain.TripStatusActive
	return &s
}

func TestTripCreate_DefaultsToPending(t *testing.T) {
	t.Parallel()

	env := newTripEnv()
	trip, err := env.tripService.CreateTrip(context.Background(), service.CreateTripRequest{
		DriverID:   "driver-1",
		TruckID:    "truck-1",
		TrailerID:  "trailer-1",
		StartDate:  day(10, 8),
		EndDate:    day(12, 8),
		DistanceKm: 250,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if trip.Status != domain.TripStatusPending {
		t.Errorf("expected pending status, got %s", trip.Status)
	}
	if trip.ID == "" {
		t.Error("expected generated trip ID")
	}
}

func TestTripCreate_RejectsMissingFields(t *testing.T) {
	t.Parallel()

	env := newTripEnv()
	_, err := env.tripService.CreateTrip(context.Background(), service.CreateTripRequest{
		DriverID:   "driver-1",
		TruckID:    "",
		TrailerID:  "trailer-1",
		StartDate:  day(10, 8),
		EndDate:    day(12, 8),
		DistanceKm: 250,
	})
	if !errors.Is(err, service.ErrMissingFields) {
		t.Fatalf("expected ErrMissingFields, got %v", err)
	}

	// Zero distance counts as missing.
	_, err = env.tripService.CreateTrip(context.Background(), service.CreateTripRequest{
		DriverID:  "driver-1",
		TruckID:   "truck-1",
		TrailerID: "trailer-1",
		StartDate: day(10, 8),
		EndDate:   day(12, 8),
	})
	if !errors.Is(err, service.ErrMissingFields) {
		t.Fatalf("expected ErrMissingFields for zero distance, got %v", err)
	}
}

func TestTripCreate_RejectsInvalidDateRange(t *testing.T) {
	t.Parallel()

	env := newTripEnv()
	_, err := env.tripService.CreateTrip(context.Background(), service.CreateTripRequest{
		DriverID:   "driver-1",
		TruckID:    "truck-1",
		TrailerID:  "trailer-1",
		StartDate:  day(12, 8),
		EndDate:    day(12, 8),
		DistanceKm: 250,
	})
	if !errors.Is(err, service.ErrInvalidDateRange) {
		t.Fatalf("expected ErrInvalidDateRange, got %v", err)
	}
}

func TestTripUpdate_DoneTripIsLocked(t *testing.T) {
	t.Parallel()

	env := newTripEnv()
	env.tripRepo.AddTrip(&domain.Trip{
		ID:        "trip-1",
		DriverID:  "driver-1",
		TruckID:   "truck-1",
		TrailerID: "trailer-1",
		StartDate: day(10, 8),
		EndDate:   day(12, 8),
		Status:    domain.TripStatusDone,
	})

	remarks := "late delivery"
	_, err := env.tripService.UpdateTrip(context.Background(), "trip-1", service.UpdateTripRequest{
		Remarks: &remarks,
	})
	if !errors.Is(err, service.ErrTripLocked) {
		t.Fatalf("expected ErrTripLocked, got %v", err)
	}
}

func TestTripUpdate_ActiveTripCannotSwapResources(t *testing.T) {
	t.Parallel()

	env := newTripEnv()
	env.tripRepo.AddTrip(&domain.Trip{
		ID:        "trip-1",
		DriverID:  "driver-1",
		TruckID:   "truck-1",
		TrailerID: "trailer-1",
		StartDate: day(10, 8),
		EndDate:   day(12, 8),
		Status:    domain.TripStatusActive,
	})

	otherTruck := "truck-2"
	_, err := env.tripService.UpdateTrip(context.Background(), "trip-1", service.UpdateTripRequest{
		TruckID: &otherTruck,
	})
	if !errors.Is(err, service.ErrResourceChangeWhileActive) {
		t.Fatalf("expected ErrResourceChangeWhileActive, got %v", err)
	}
}

func TestTripUpdate_RejectsInvalidTransition(t *testing.T) {
	t.Parallel()

	env := newTripEnv()
	env.tripRepo.AddTrip(&domain.Trip{
		ID:        "trip-1",
		DriverID:  "driver-1",
		TruckID:   "truck-1",
		TrailerID: "trailer-1",
		StartDate: day(10, 8),
		EndDate:   day(12, 8),
		Status:    domain.TripStatusPending,
	})

	// pending -> done skips active.
	done := domain.TripStatusDone
	_, err := env.tripService.UpdateTrip(context.Background(), "trip-1", service.UpdateTripRequest{
		Status: &done,
	})
	if !errors.Is(err, service.ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}
}

func TestTripUpdate_ActivationOutsideWindowRejected(t *testing.T) {
	t.Parallel()

	env := newTripEnv()
	env.addVehicles(1000, 500)
	// Window entirely in the future.
	env.tripRepo.AddTrip(&domain.Trip{
		ID:         "trip-1",
		DriverID:   "driver-1",
		TruckID:    "truck-1",
		TrailerID:  "trailer-1",
		StartDate:  time.Now().Add(24 * time.Hour),
		EndDate:    time.Now().Add(48 * time.Hour),
		Status:     domain.TripStatusPending,
		DistanceKm: 500,
	})

	_, err := env.tripService.UpdateTrip(context.Background(), "trip-1", service.UpdateTripRequest{
		Status: activeStatus(),
	})
	if !errors.Is(err, service.ErrInvalidActivationTime) {
		t.Fatalf("expected ErrInvalidActivationTime, got %v", err)
	}

	// Odometers untouched.
	if got := env.vehicleRepo.GetVehicle("truck-1").CurrentKm; got != 1000 {
		t.Errorf("expected truck odometer 1000, got %v", got)
	}
}

func TestTripUpdate_ActivationCreditsOdometers(t *testing.T) {
	t.Parallel()

	env := newTripEnv()
	env.addVehicles(1000, 500)
	env.addActivatableTrip("trip-1", 500)

	trip, err := env.tripService.UpdateTrip(context.Background(), "trip-1", service.UpdateTripRequest{
		Status: activeStatus(),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if trip.Status != domain.TripStatusActive {
		t.Errorf("expected active status, got %s", trip.Status)
	}

	if got := env.vehicleRepo.GetVehicle("truck-1").CurrentKm; got != 1500 {
		t.Errorf("expected truck odometer 1500, got %v", got)
	}
	if got := env.vehicleRepo.GetVehicle("trailer-1").CurrentKm; got != 1000 {
		t.Errorf("expected trailer odometer 1000, got %v", got)
	}

	// Reconciliation ran for both vehicles and projected active.
	if got := env.vehicleRepo.GetVehicle("truck-1").Status; got != domain.VehicleStatusActive {
		t.Errorf("expected truck status active, got %s", got)
	}
	if got := env.vehicleRepo.GetVehicle("trailer-1").Status; got != domain.VehicleStatusActive {
		t.Errorf("expected trailer status active, got %s", got)
	}
}

func TestTripUpdate_DistanceRevisionAppliesDelta(t *testing.T) {
	t.Parallel()

	env := newTripEnv()
	env.addVehicles(1000, 500)
	env.addActivatableTrip("trip-1", 500)

	if _, err := env.tripService.UpdateTrip(context.Background(), "trip-1", service.UpdateTripRequest{
		Status: activeStatus(),
	}); err != nil {
		t.Fatalf("activation failed: %v", err)
	}

	// Revise distance 500 -> 700 while active: odometers move by +200, not
	// by another +700.
	revised := 700.0
	trip, err := env.tripService.UpdateTrip(context.Background(), "trip-1", service.UpdateTripRequest{
		DistanceKm: &revised,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if trip.DistanceKm != 700 {
		t.Errorf("expected distance 700, got %v", trip.DistanceKm)
	}

	if got := env.vehicleRepo.GetVehicle("truck-1").CurrentKm; got != 1700 {
		t.Errorf("expected truck odometer 1700, got %v", got)
	}
	if got := env.vehicleRepo.GetVehicle("trailer-1").CurrentKm; got != 1200 {
		t.Errorf("expected trailer odometer 1200, got %v", got)
	}
}

func TestTripUpdate_CompletionReleasesVehicles(t *testing.T) {
	t.Parallel()

	env := newTripEnv()
	env.addVehicles(1000, 500)
	env.addActivatableTrip("trip-1", 500)

	if _, err := env.tripService.UpdateTrip(context.Background(), "trip-1", service.UpdateTripRequest{
		Status: activeStatus(),
	}); err != nil {
		t.Fatalf("activation failed: %v", err)
	}

	done := domain.TripStatusDone
	trip, err := env.tripService.UpdateTrip(context.Background(), "trip-1", service.UpdateTripRequest{
		Status: &done,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if trip.Status != domain.TripStatusDone {
		t.Errorf("expected done status, got %s", trip.Status)
	}

	// No open maintenance, no active trip: projector lands on inactive.
	if got := env.vehicleRepo.GetVehicle("truck-1").Status; got != domain.VehicleStatusInactive {
		t.Errorf("expected truck status inactive, got %s", got)
	}
	if got := env.vehicleRepo.GetVehicle("trailer-1").Status; got != domain.VehicleStatusInactive {
		t.Errorf("expected trailer status inactive, got %s", got)
	}

	// Odometers keep the credited distance.
	if got := env.vehicleRepo.GetVehicle("truck-1").CurrentKm; got != 1500 {
		t.Errorf("expected truck odometer 1500, got %v", got)
	}
}

func TestTripUpdate_CancellationReleasesVehicles(t *testing.T) {
	t.Parallel()

	env := newTripEnv()
	env.addVehicles(1000, 500)
	env.addActivatableTrip("trip-1", 500)

	if _, err := env.tripService.UpdateTrip(context.Background(), "trip-1", service.UpdateTripRequest{
		Status: activeStatus(),
	}); err != nil {
		t.Fatalf("activation failed: %v", err)
	}

	canceled := domain.TripStatusCanceled
	if _, err := env.tripService.UpdateTrip(context.Background(), "trip-1", service.UpdateTripRequest{
		Status: &canceled,
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := env.vehicleRepo.GetVehicle("truck-1").Status; got != domain.VehicleStatusInactive {
		t.Errorf("expected truck status inactive, got %s", got)
	}
}

func TestTripDelete_ReconcilesVehicles(t *testing.T) {
	t.Parallel()

	env := newTripEnv()
	env.addVehicles(1000, 500)
	env.addActivatableTrip("trip-1", 500)

	if _, err := env.tripService.UpdateTrip(context.Background(), "trip-1", service.UpdateTripRequest{
		Status: activeStatus(),
	}); err != nil {
		t.Fatalf("activation failed: %v", err)
	}

	if err := env.tripService.DeleteTrip(context.Background(), "trip-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// The deleted trip no longer holds the vehicles active.
	if got := env.vehicleRepo.GetVehicle("truck-1").Status; got != domain.VehicleStatusInactive {
		t.Errorf("expected truck status inactive, got %s", got)
	}
}

func TestTripsByDriver_RequiresDriverID(t *testing.T) {
	t.Parallel()

	env := newTripEnv()
	_, err := env.tripService.GetTripsByDriver(context.Background(), "")
	if !errors.Is(err, service.ErrMissingDriverID) {
		t.Fatalf("expected ErrMissingDriverID, got %v", err)
	}
}
