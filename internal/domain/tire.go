package domain

import "time"

// Tire represents a tire mounted on a fleet vehicle.
type Tire struct {
	ID           string
	VehicleID    string
	SerialNumber string
	Position     string
	WearLevel    string
	InstalledOn  VehicleType
	CreatedAt    time.Time
}
