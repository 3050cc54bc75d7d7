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
// BOOKING CONFLICT DETECTION
// ──────────────────────────────────────────────

func day(d int, hour int) time.Time {
	return time.Date(2024, time.March, d, hour, 0, 0, 0, time.UTC)
}

func TestConflict_OverlappingTruckRejected(t *testing.T) {
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

	// Different driver and trailer, same truck, overlapping window.
	_, err := env.tripService.CreateTrip(context.Background(), service.CreateTripRequest{
		DriverID:   "driver-2",
		TruckID:    "truck-1",
		TrailerID:  "trailer-2",
		StartDate:  day(11, 8),
		EndDate:    day(13, 8),
		DistanceKm: 100,
	})
	if !errors.Is(err, service.ErrBookingConflict) {
		t.Fatalf("expected ErrBookingConflict, got %v", err)
	}
}

func TestConflict_OverlappingDriverRejected(t *testing.T) {
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

	_, err := env.tripService.CreateTrip(context.Background(), service.CreateTripRequest{
		DriverID:   "driver-1",
		TruckID:    "truck-2",
		TrailerID:  "trailer-2",
		StartDate:  day(11, 8),
		EndDate:    day(13, 8),
		DistanceKm: 100,
	})
	if !errors.Is(err, service.ErrBookingConflict) {
		t.Fatalf("expected ErrBookingConflict, got %v", err)
	}
}

func TestConflict_TouchingWindowsAllowed(t *testing.T) {
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

	// New trip starts exactly when the stored one ends. Half-open windows:
	// no overlap.
	trip, err := env.tripService.CreateTrip(context.Background(), service.CreateTripRequest{
		DriverID:   "driver-1",
		TruckID:    "truck-1",
		TrailerID:  "trailer-1",
		StartDate:  day(12, 8),
		EndDate:    day(14, 8),
		DistanceKm: 100,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if trip.Status != domain.TripStatusPending {
		t.Errorf("expected pending status, got %s", trip.Status)
	}
}

func TestConflict_CanceledTripsIgnored(t *testing.T) {
	t.Parallel()

	env := newTripEnv()
	env.tripRepo.AddTrip(&domain.Trip{
		ID:        "trip-1",
		DriverID:  "driver-1",
		TruckID:   "truck-1",
		TrailerID: "trailer-1",
		StartDate: day(10, 8),
		EndDate:   day(12, 8),
		Status:    domain.TripStatusCanceled,
	})

	_, err := env.tripService.CreateTrip(context.Background(), service.CreateTripRequest{
		DriverID:   "driver-1",
		TruckID:    "truck-1",
		TrailerID:  "trailer-1",
		StartDate:  day(10, 8),
		EndDate:    day(12, 8),
		DistanceKm: 100,
	})
	if err != nil {
		t.Fatalf("canceled trips must not block bookings: %v", err)
	}
}

func TestConflict_UpdateExcludesOwnTrip(t *testing.T) {
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

	// Shifting the window of a trip must not collide with itself.
	newEnd := day(13, 8)
	trip, err := env.tripService.UpdateTrip(context.Background(), "trip-1", service.UpdateTripRequest{
		EndDate: &newEnd,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !trip.EndDate.Equal(newEnd) {
		t.Errorf("expected end date %v, got %v", newEnd, trip.EndDate)
	}
}

func TestConflict_UpdateIntoOccupiedWindowRejected(t *testing.T) {
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
	env.tripRepo.AddTrip(&domain.Trip{
		ID:        "trip-2",
		DriverID:  "driver-1",
		TruckID:   "truck-1",
		TrailerID: "trailer-1",
		StartDate: day(14, 8),
		EndDate:   day(16, 8),
		Status:    domain.TripStatusPending,
	})

	// Move trip-2 on top of trip-1.
	newStart := day(11, 8)
	newEnd := day(13, 8)
	_, err := env.tripService.UpdateTrip(context.Background(), "trip-2", service.UpdateTripRequest{
		StartDate: &newStart,
		EndDate:   &newEnd,
	})
	if !errors.Is(err, service.ErrBookingConflict) {
		t.Fatalf("expected ErrBookingConflict, got %v", err)
	}
}

func TestConflict_DisjointResourcesAllowed(t *testing.T) {
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

	// Same window, fully disjoint resources.
	_, err := env.tripService.CreateTrip(context.Background(), service.CreateTripRequest{
		DriverID:   "driver-2",
		TruckID:    "truck-2",
		TrailerID:  "trailer-2",
		StartDate:  day(10, 8),
		EndDate:    day(12, 8),
		DistanceKm: 100,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
