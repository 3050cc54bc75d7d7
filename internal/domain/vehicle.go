package domain

import "time"

// VehicleStatus represents the derived availability status of a vehicle.
type VehicleStatus string

const (
	VehicleStatusActive      VehicleStatus = "active"
	VehicleStatusAvailable   VehicleStatus = "available"
	VehicleStatusMaintenance VehicleStatus = "maintenance"
	VehicleStatusInactive    VehicleStatus = "inactive"
)

// VehicleType distinguishes trucks from trailers.
type VehicleType string

const (
	VehicleTypeTruck   VehicleType = "truck"
	VehicleTypeTrailer VehicleType = "trailer"
)

// Vehicle represents a truck or trailer in the fleet.
//
// Status is a projection over the trips and maintenance records that
// reference the vehicle; the core never lets callers write it directly.
// CurrentKm is a cumulative odometer and only ever moves through atomic
// increments.
type Vehicle struct {
	ID          string
	PlateNumber string
	Brand       string
	Model       string
	Type        VehicleType
	CurrentKm   float64
	Status      VehicleStatus
	CreatedAt   time.Time
}

// ValidVehicleStatus reports whether s is a known vehicle status value.
func ValidVehicleStatus(s VehicleStatus) bool {
	switch s {
	case VehicleStatusActive, VehicleStatusAvailable, VehicleStatusMaintenance, VehicleStatusInactive:
		return true
	}
	return false
}
