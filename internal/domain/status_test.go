package domain

import "testing"

func TestCanTransitionTrip(t *testing.T) {
	allowed := [][2]TripStatus{
		{TripStatusPending, TripStatusActive},
		{TripStatusPending, TripStatusCanceled},
		{TripStatusActive, TripStatusDone},
		{TripStatusActive, TripStatusCanceled},
		{TripStatusActive, TripStatusActive}, // no-op
	}
	for _, tc := range allowed {
		if !CanTransitionTrip(tc[0], tc[1]) {
			t.Errorf("expected %s -> %s allowed", tc[0], tc[1])
		}
	}

	denied := [][2]TripStatus{
		{TripStatusPending, TripStatusDone}, // must pass through active
		{TripStatusDone, TripStatusActive},
		{TripStatusDone, TripStatusPending},
		{TripStatusCanceled, TripStatusActive},
		{TripStatusCanceled, TripStatusDone},
		{TripStatusActive, TripStatusPending},
	}
	for _, tc := range denied {
		if CanTransitionTrip(tc[0], tc[1]) {
			t.Errorf("expected %s -> %s denied", tc[0], tc[1])
		}
	}
}

func TestCanTransitionMaintenance(t *testing.T) {
	if !CanTransitionMaintenance(MaintenanceStatusPending, MaintenanceStatusInProgress) {
		t.Error("expected pending -> in_progress allowed")
	}
	if !CanTransitionMaintenance(MaintenanceStatusInProgress, MaintenanceStatusDone) {
		t.Error("expected in_progress -> done allowed")
	}
	if !CanTransitionMaintenance(MaintenanceStatusPending, MaintenanceStatusCanceled) {
		t.Error("expected pending -> canceled allowed")
	}
	if CanTransitionMaintenance(MaintenanceStatusPending, MaintenanceStatusDone) {
		t.Error("expected pending -> done denied")
	}
	if CanTransitionMaintenance(MaintenanceStatusDone, MaintenanceStatusInProgress) {
		t.Error("expected done terminal")
	}
	if CanTransitionMaintenance(MaintenanceStatusCanceled, MaintenanceStatusPending) {
		t.Error("expected canceled terminal")
	}
}

func TestMaintenanceStatusIsOpen(t *testing.T) {
	if !MaintenanceStatusPending.IsOpen() || !MaintenanceStatusInProgress.IsOpen() {
		t.Error("pending and in_progress are open states")
	}
	if MaintenanceStatusDone.IsOpen() || MaintenanceStatusCanceled.IsOpen() {
		t.Error("done and canceled are not open states")
	}
}
