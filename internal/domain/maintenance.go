package domain

import "time"

// MaintenanceStatus represents the current status of a maintenance record.
type MaintenanceStatus string

const (
	MaintenanceStatusPending    MaintenanceStatus = "pending"
	MaintenanceStatusInProgress MaintenanceStatus = "in_progress"
	MaintenanceStatusDone       MaintenanceStatus = "done"
	MaintenanceStatusCanceled   MaintenanceStatus = "canceled"
)

// maintenanceTransitions defines the allowed maintenance status transitions.
// Any non-terminal state may be canceled; done and canceled are terminal.
var maintenanceTransitions = map[MaintenanceStatus][]MaintenanceStatus{
	MaintenanceStatusPending:    {MaintenanceStatusInProgress, MaintenanceStatusCanceled},
	MaintenanceStatusInProgress: {MaintenanceStatusDone, MaintenanceStatusCanceled},
	MaintenanceStatusDone:       {},
	MaintenanceStatusCanceled:   {},
}

// CanTransitionMaintenance reports whether from -> to is an allowed
// maintenance status transition. A no-op transition is always allowed.
func CanTransitionMaintenance(from, to MaintenanceStatus) bool {
	if from == to {
		return true
	}
	for _, s := range maintenanceTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// ValidMaintenanceStatus reports whether s is a known maintenance status value.
func ValidMaintenanceStatus(s MaintenanceStatus) bool {
	_, ok := maintenanceTransitions[s]
	return ok
}

// IsOpen reports whether the record still keeps its vehicle in the shop.
func (s MaintenanceStatus) IsOpen() bool {
	return s == MaintenanceStatusPending || s == MaintenanceStatusInProgress
}

// Maintenance represents a single maintenance intervention on a vehicle.
// A vehicle with any open (pending or in_progress) record is unavailable
// regardless of trip bookings.
type Maintenance struct {
	ID                string
	MaintenanceRuleID string
	VehicleID         string
	TargetType        string
	Component         string
	Status            MaintenanceStatus
	Description       string
	Cost              float64
	Date              time.Time
	KmAtMaintenance   float64
	CreatedAt         time.Time
}

// MaintenanceRule is static reference data describing a recurring
// maintenance recommendation (oil, filter, tire, brake).
type MaintenanceRule struct {
	ID                string
	Type              string
	RecommendedKm     float64
	RecommendedMonths int
	Description       string
	IsActive          bool
	CreatedAt         time.Time
}
