package service

import "errors"

var (
	// ErrMissingFields is returned when a create request omits required fields.
	ErrMissingFields = errors.New("missing required fields")

	// ErrInvalidDateRange is returned when a trip's end date is not after its start date.
	ErrInvalidDateRange = errors.New("end date must be after start date")

	// ErrInvalidStatus is returned when a request carries an unknown status value.
	ErrInvalidStatus = errors.New("invalid status value")

	// ErrBookingConflict is returned when a driver, truck or trailer is already
	// booked on an overlapping trip.
	ErrBookingConflict = errors.New("driver, truck or trailer already booked during this period")

	// ErrTripLocked is returned when mutating a trip that is done.
	ErrTripLocked = errors.New("trip is done and locked")

	// ErrInvalidTransition is returned when a status change is not allowed by
	// the transition table.
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrResourceChangeWhileActive is returned when a patch tries to swap the
	// driver, truck or trailer of an active trip.
	ErrResourceChangeWhileActive = errors.New("cannot change driver, truck or trailer while trip is active")

	// ErrInvalidActivationTime is returned when activating a trip outside its
	// booked window.
	ErrInvalidActivationTime = errors.New("trip can only be activated within its booked window")

	// ErrMissingDriverID is returned when a driver ID is required but empty.
	ErrMissingDriverID = errors.New("driver id is required")

	// ErrInvalidVehicleType is returned when a vehicle type is neither truck
	// nor trailer.
	ErrInvalidVehicleType = errors.New("vehicle type must be truck or trailer")

	// ErrDriverExists is returned when registering a driver with a phone
	// number that is already on file.
	ErrDriverExists = errors.New("driver with this phone number already exists")
)
