package service

import (
	"context"

	"fleet/internal/repository"
)

// ConflictChecker detects double-bookings of trip resources.
//
// Two bookings conflict when their half-open [start, end) windows overlap
// and they share a driver, truck or trailer. Touching endpoints are not a
// conflict: a trip ending at T and one starting at T may share resources.
type ConflictChecker struct {
	tripRepo repository.TripRepository
}

// NewConflictChecker creates a new ConflictChecker.
func NewConflictChecker(tripRepo repository.TripRepository) *ConflictChecker {
	return &ConflictChecker{tripRepo: tripRepo}
}

// FindConflicts returns the IDs of all non-canceled trips other than
// excludeTripID that overlap the proposed window and share at least one
// resource. An empty result means the booking is safe. No side effects.
func (c *ConflictChecker) FindConflicts(ctx context.Context, res repository.TripResources, window repository.BookingWindow, excludeTripID string) ([]string, error) {
	trips, err := c.tripRepo.FindOverlapping(ctx, res, window, excludeTripID)
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(trips))
	for _, t := range trips {
		ids = append(ids, t.ID)
	}

	return ids, nil
}
