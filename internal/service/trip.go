package service

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"fleet/internal/domain"
	"fleet/internal/repository"
	"fleet/internal/repository/postgres"
)

// TripService owns the trip state machine: it validates transitions, runs
// conflict checks and issues the vehicle side effects (odometer increments,
// status reconciliation).
type TripService struct {
	db            *sql.DB
	tripRepo      repository.TripRepository
	vehicleRepo   repository.VehicleRepository
	driverRepo    repository.DriverRepository
	statusService *VehicleStatusService
	notifier      *NotificationService
}

// NewTripService creates a new TripService. db may be nil, in which case
// operations run against the injected repositories without a transaction
// (tests use this with in-memory repositories).
func NewTripService(
	db *sql.DB,
	tripRepo repository.TripRepository,
	vehicleRepo repository.VehicleRepository,
	driverRepo repository.DriverRepository,
	statusService *VehicleStatusService,
	notifier *NotificationService,
) *TripService {
	return &TripService{
		db:            db,
		tripRepo:      tripRepo,
		vehicleRepo:   vehicleRepo,
		driverRepo:    driverRepo,
		statusService: statusService,
		notifier:      notifier,
	}
}

// CreateTripRequest contains the parameters for creating a trip.
type CreateTripRequest struct {
	DriverID      string
	TruckID       string
	TrailerID     string
	StartLocation string
	EndLocation   string
	StartDate     time.Time
	EndDate       time.Time
	Status        domain.TripStatus // optional; defaults to pending
	FuelLiters    float64
	DistanceKm    float64
	Remarks       string
}

// UpdateTripRequest is a partial update; nil fields keep their current value.
type UpdateTripRequest struct {
	DriverID      *string
	TruckID       *string
	TrailerID     *string
	StartLocation *string
	EndLocation   *string
	StartDate     *time.Time
	EndDate       *time.Time
	Status        *domain.TripStatus
	FuelLiters    *float64
	DistanceKm    *float64
	Remarks       *string
}

func (r *UpdateTripRequest) touchesResources() bool {
	return r.DriverID != nil || r.TruckID != nil || r.TrailerID != nil
}

func (r *UpdateTripRequest) touchesDates() bool {
	return r.StartDate != nil || r.EndDate != nil
}

// CreateTrip validates the booking, runs the conflict check and persists the
// trip. No vehicle side effects happen at creation; the odometer and vehicle
// status only move when the trip is activated through UpdateTrip.
func (s *TripService) CreateTrip(ctx context.Context, req CreateTripRequest) (trip *domain.Trip, err error) {
	if req.DriverID == "" || req.TruckID == "" || req.TrailerID == "" ||
		req.StartDate.IsZero() || req.EndDate.IsZero() || req.DistanceKm <= 0 {
		return nil, ErrMissingFields
	}

	if !req.EndDate.After(req.StartDate) {
		return nil, ErrInvalidDateRange
	}

	status := req.Status
	if status == "" {
		status = domain.TripStatusPending
	}
	if !domain.ValidTripStatus(status) {
		return nil, ErrInvalidStatus
	}

	// Conflict check and insert run in one serializable transaction so two
	// concurrent bookings cannot both pass the overlap check.
	tx, err := s.beginTx(ctx)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil && tx != nil {
			_ = tx.Rollback()
		}
	}()

	tripRepo := s.scopedTripRepo(tx)

	checker := NewConflictChecker(tripRepo)
	conflicts, err := checker.FindConflicts(ctx,
		repository.TripResources{DriverID: req.DriverID, TruckID: req.TruckID, TrailerID: req.TrailerID},
		repository.BookingWindow{Start: req.StartDate, End: req.EndDate},
		"",
	)
	if err != nil {
		return nil, err
	}
	if len(conflicts) > 0 {
		return nil, ErrBookingConflict
	}

	trip = &domain.Trip{
		ID:            uuid.New().String(),
		DriverID:      req.DriverID,
		TruckID:       req.TruckID,
		TrailerID:     req.TrailerID,
		StartLocation: req.StartLocation,
		EndLocation:   req.EndLocation,
		StartDate:     req.StartDate,
		EndDate:       req.EndDate,
		Status:        status,
		FuelLiters:    req.FuelLiters,
		DistanceKm:    req.DistanceKm,
		Remarks:       req.Remarks,
		CreatedAt:     time.Now(),
	}

	if err = tripRepo.Create(ctx, trip); err != nil {
		return nil, err
	}

	if tx != nil {
		if err = tx.Commit(); err != nil {
			return nil, err
		}
	}

	return trip, nil
}

// UpdateTrip applies a partial update to a trip, enforcing the trip state
// machine and issuing vehicle side effects:
//
//   - done trips are locked, for any patch content
//   - active trips cannot swap driver, truck or trailer
//   - date or resource changes re-run the conflict check (excluding the trip)
//   - activation requires now to lie within [start, end] and credits both
//     vehicles' odometers with the trip distance
//   - a distance revision while active applies the delta, never the full value
//   - after any status change both vehicles are reconciled
func (s *TripService) UpdateTrip(ctx context.Context, id string, req UpdateTripRequest) (trip *domain.Trip, err error) {
	tx, err := s.beginTx(ctx)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil && tx != nil {
			_ = tx.Rollback()
		}
	}()

	tripRepo := s.scopedTripRepo(tx)
	vehicleRepo := s.scopedVehicleRepo(tx)

	trip, err = tripRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if trip.Status == domain.TripStatusDone {
		return nil, ErrTripLocked
	}

	if trip.Status == domain.TripStatusActive && req.touchesResources() {
		return nil, ErrResourceChangeWhileActive
	}

	// Resolve the effective booking window.
	start := trip.StartDate
	if req.StartDate != nil {
		start = *req.StartDate
	}
	end := trip.EndDate
	if req.EndDate != nil {
		end = *req.EndDate
	}
	if !end.After(start) {
		return nil, ErrInvalidDateRange
	}

	// Resolve the effective resource set.
	res := repository.TripResources{
		DriverID:  trip.DriverID,
		TruckID:   trip.TruckID,
		TrailerID: trip.TrailerID,
	}
	if req.DriverID != nil {
		res.DriverID = *req.DriverID
	}
	if req.TruckID != nil {
		res.TruckID = *req.TruckID
	}
	if req.TrailerID != nil {
		res.TrailerID = *req.TrailerID
	}

	if req.touchesDates() || req.touchesResources() {
		checker := NewConflictChecker(tripRepo)
		conflicts, cErr := checker.FindConflicts(ctx, res,
			repository.BookingWindow{Start: start, End: end}, trip.ID)
		if cErr != nil {
			err = cErr
			return nil, err
		}
		if len(conflicts) > 0 {
			return nil, ErrBookingConflict
		}
	}

	prevStatus := trip.Status
	newStatus := prevStatus
	if req.Status != nil {
		newStatus = *req.Status
		if !domain.ValidTripStatus(newStatus) {
			return nil, ErrInvalidStatus
		}
		if !domain.CanTransitionTrip(prevStatus, newStatus) {
			return nil, ErrInvalidTransition
		}
	}

	activating := prevStatus != domain.TripStatusActive && newStatus == domain.TripStatusActive

	if activating {
		now := time.Now()
		if now.Before(start) || now.After(end) {
			return nil, ErrInvalidActivationTime
		}

		// Credit the full trip distance to both vehicles. The increments
		// are atomic at the storage layer so concurrent trips never lose
		// odometer updates.
		distance := trip.DistanceKm
		if req.DistanceKm != nil {
			distance = *req.DistanceKm
		}
		if err = vehicleRepo.IncrementKm(ctx, res.TruckID, distance); err != nil {
			return nil, err
		}
		if err = vehicleRepo.IncrementKm(ctx, res.TrailerID, distance); err != nil {
			return nil, err
		}
	} else if prevStatus == domain.TripStatusActive && req.DistanceKm != nil && *req.DistanceKm != trip.DistanceKm {
		// Distance revision on a running trip: the odometers already hold
		// the old distance, so apply only the delta.
		delta := *req.DistanceKm - trip.DistanceKm
		if err = vehicleRepo.IncrementKm(ctx, trip.TruckID, delta); err != nil {
			return nil, err
		}
		if err = vehicleRepo.IncrementKm(ctx, trip.TrailerID, delta); err != nil {
			return nil, err
		}
	}

	// Apply the patch and persist.
	trip.DriverID = res.DriverID
	trip.TruckID = res.TruckID
	trip.TrailerID = res.TrailerID
	trip.StartDate = start
	trip.EndDate = end
	trip.Status = newStatus
	if req.StartLocation != nil {
		trip.StartLocation = *req.StartLocation
	}
	if req.EndLocation != nil {
		trip.EndLocation = *req.EndLocation
	}
	if req.FuelLiters != nil {
		trip.FuelLiters = *req.FuelLiters
	}
	if req.DistanceKm != nil {
		trip.DistanceKm = *req.DistanceKm
	}
	if req.Remarks != nil {
		trip.Remarks = *req.Remarks
	}

	if err = tripRepo.Update(ctx, trip); err != nil {
		return nil, err
	}

	if tx != nil {
		if err = tx.Commit(); err != nil {
			return nil, err
		}
	}

	// Reconcile vehicle status after commit. The projector is the sole
	// writer of vehicle status, so activation and release both go through
	// it rather than poking active/available directly.
	if newStatus != prevStatus && s.statusService != nil {
		if rErr := s.statusService.Reconcile(ctx, trip.TruckID); rErr != nil {
			err = rErr
			return nil, err
		}
		if rErr := s.statusService.Reconcile(ctx, trip.TrailerID); rErr != nil {
			err = rErr
			return nil, err
		}
	}

	if s.notifier != nil && newStatus != prevStatus {
		switch newStatus {
		case domain.TripStatusActive:
			_ = s.notifier.NotifyTripActivated(ctx, trip)
		case domain.TripStatusDone:
			_ = s.notifier.NotifyTripCompleted(ctx, trip)
		case domain.TripStatusCanceled:
			_ = s.notifier.NotifyTripCanceled(ctx, trip)
		}
	}

	return trip, nil
}

// GetTrip retrieves a trip by ID.
func (s *TripService) GetTrip(ctx context.Context, id string) (*domain.Trip, error) {
	return s.tripRepo.GetByID(ctx, id)
}

// GetAllTrips retrieves all trips.
func (s *TripService) GetAllTrips(ctx context.Context) ([]*domain.Trip, error) {
	return s.tripRepo.GetAll(ctx)
}

// GetTripsByDriver retrieves all trips booked for a driver.
func (s *TripService) GetTripsByDriver(ctx context.Context, driverID string) ([]*domain.Trip, error) {
	if driverID == "" {
		return nil, ErrMissingDriverID
	}
	return s.tripRepo.GetByDriverID(ctx, driverID)
}

// DeleteTrip removes a trip and reconciles its vehicles, in case the trip
// was holding them active.
func (s *TripService) DeleteTrip(ctx context.Context, id string) error {
	trip, err := s.tripRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.tripRepo.Delete(ctx, id); err != nil {
		return err
	}

	if s.statusService != nil {
		if err := s.statusService.Reconcile(ctx, trip.TruckID); err != nil {
			return err
		}
		if err := s.statusService.Reconcile(ctx, trip.TrailerID); err != nil {
			return err
		}
	}

	return nil
}

// beginTx opens a serializable transaction, or returns nil when the service
// runs without a database handle.
func (s *TripService) beginTx(ctx context.Context) (*sql.Tx, error) {
	if s.db == nil {
		return nil, nil
	}
	return s.db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable})
}

func (s *TripService) scopedTripRepo(tx *sql.Tx) repository.TripRepository {
	if tx == nil {
		return s.tripRepo
	}
	return postgres.NewTripRepositoryWithTx(tx)
}

func (s *TripService) scopedVehicleRepo(tx *sql.Tx) repository.VehicleRepository {
	if tx == nil {
		return s.vehicleRepo
	}
	return postgres.NewVehicleRepositoryWithTx(tx)
}
