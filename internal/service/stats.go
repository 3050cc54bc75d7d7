package service

import (
	"context"

	"fleet/internal/domain"
	"fleet/internal/repository"
)

// TripStats holds fleet-wide trip aggregates for the dashboard.
type TripStats struct {
	Total           int64
	ByStatus        map[domain.TripStatus]int64
	TotalDistanceKm float64
	TotalFuelLiters float64
}

// MaintenanceStats holds fleet-wide maintenance aggregates for the dashboard.
type MaintenanceStats struct {
	Total     int64
	ByStatus  map[domain.MaintenanceStatus]int64
	TotalCost float64
}

// StatsService computes fleet statistics. Aggregation happens in the
// repositories; this service only assembles the result.
type StatsService struct {
	tripRepo        repository.TripRepository
	maintenanceRepo repository.MaintenanceRepository
}

// NewStatsService creates a new StatsService.
func NewStatsService(tripRepo repository.TripRepository, maintenanceRepo repository.MaintenanceRepository) *StatsService {
	return &StatsService{tripRepo: tripRepo, maintenanceRepo: maintenanceRepo}
}

// GetTripStats returns trip counts per status and fleet distance/fuel totals.
func (s *StatsService) GetTripStats(ctx context.Context) (*TripStats, error) {
	counts, err := s.tripRepo.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}

	distance, fuel, err := s.tripRepo.SumDistanceAndFuel(ctx)
	if err != nil {
		return nil, err
	}

	stats := &TripStats{
		ByStatus:        counts,
		TotalDistanceKm: distance,
		TotalFuelLiters: fuel,
	}
	for _, c := range counts {
		stats.Total += c
	}

	return stats, nil
}

// GetMaintenanceStats returns maintenance counts per status and total cost.
func (s *StatsService) GetMaintenanceStats(ctx context.Context) (*MaintenanceStats, error) {
	counts, err := s.maintenanceRepo.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}

	cost, err := s.maintenanceRepo.SumCost(ctx)
	if err != nil {
		return nil, err
	}

	stats := &MaintenanceStats{
		ByStatus:  counts,
		TotalCost: cost,
	}
	for _, c := range counts {
		stats.Total += c
	}

	return stats, nil
}
