package domain

import "time"

// Driver represents a driver in the fleet.
type Driver struct {
	ID            string
	FirstName     string
	LastName      string
	Phone         string
	LicenseNumber string
	CreatedAt     time.Time
}
