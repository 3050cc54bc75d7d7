package domain

import "time"

// TripStatus represents the current status of a trip.
type TripStatus string

const (
	TripStatusPending  TripStatus = "pending"
	TripStatusActive   TripStatus = "active"
	TripStatusDone     TripStatus = "done"
	TripStatusCanceled TripStatus = "canceled"
)

// tripTransitions defines the allowed trip status transitions.
// done and canceled are terminal.
var tripTransitions = map[TripStatus][]TripStatus{
	TripStatusPending:  {TripStatusActive, TripStatusCanceled},
	TripStatusActive:   {TripStatusDone, TripStatusCanceled},
	TripStatusDone:     {},
	TripStatusCanceled: {},
}

// CanTransitionTrip reports whether from -> to is an allowed trip status
// transition. A no-op transition (from == to) is always allowed.
func CanTransitionTrip(from, to TripStatus) bool {
	if from == to {
		return true
	}
	for _, s := range tripTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// ValidTripStatus reports whether s is a known trip status value.
func ValidTripStatus(s TripStatus) bool {
	_, ok := tripTransitions[s]
	return ok
}

// IsTerminal reports whether the status admits no further transitions.
func (s TripStatus) IsTerminal() bool {
	return s == TripStatusDone || s == TripStatusCanceled
}

// Trip represents a scheduled or running haul booking a driver, a truck and
// a trailer for the [StartDate, EndDate) window.
//
// Invariant: for any two non-canceled trips sharing a driver, truck or
// trailer, their windows must not overlap. Once done, a trip is locked;
// while active, its resource references are frozen.
type Trip struct {
	ID            string
	DriverID      string
	TruckID       string
	TrailerID     string
	StartLocation string
	EndLocation   string
	StartDate     time.Time
	EndDate       time.Time
	Status        TripStatus
	FuelLiters    float64
	DistanceKm    float64
	Remarks       string
	CreatedAt     time.Time
}

// References reports whether the trip books the given vehicle as its truck
// or trailer.
func (t *Trip) References(vehicleID string) bool {
	return t.TruckID == vehicleID || t.TrailerID == vehicleID
}
