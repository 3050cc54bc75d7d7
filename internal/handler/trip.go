package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"fleet/internal/domain"
	"fleet/internal/service"
)

// TripHandler handles HTTP requests for trips.
type TripHandler struct {
	tripService *service.TripService
}

// NewTripHandler creates a new TripHandler.
func NewTripHandler(tripService *service.TripService) *TripHandler {
	return &TripHandler{tripService: tripService}
}

// CreateTripRequest is the HTTP request body for creating a trip.
type CreateTripRequest struct {
	DriverID      string    `json:"driver_id"`
	TruckID       string    `json:"truck_id"`
	TrailerID     string    `json:"trailer_id"`
	StartLocation string    `json:"start_location"`
	EndLocation   string    `json:"end_location"`
	StartDate     time.Time `json:"start_date"`
	EndDate       time.Time `json:"end_date"`
	Status        string    `json:"status"`
	FuelLiters    float64   `json:"fuel_liters"`
	DistanceKm    float64   `json:"distance_km"`
	Remarks       string    `json:"remarks"`
}

// UpdateTripRequest is the HTTP request body for updating a trip. Absent
// fields keep their current values.
type UpdateTripRequest struct {
	DriverID      *string    `json:"driver_id"`
	TruckID       *string    `json:"truck_id"`
	TrailerID     *string    `json:"trailer_id"`
	StartLocation *string    `json:"start_location"`
	EndLocation   *string    `json:"end_location"`
	StartDate     *time.Time `json:"start_date"`
	EndDate       *time.Time `json:"end_date"`
	Status        *string    `json:"status"`
	FuelLiters    *float64   `json:"fuel_liters"`
	DistanceKm    *float64   `json:"distance_km"`
	Remarks       *string    `json:"remarks"`
}

// TripResponse is the HTTP response for trip operations.
type TripResponse struct {
	ID            string  `json:"id"`
	DriverID      string  `json:"driver_id"`
	TruckID       string  `json:"truck_id"`
	TrailerID     string  `json:"trailer_id"`
	StartLocation string  `json:"start_location"`
	EndLocation   string  `json:"end_location"`
	StartDate     string  `json:"start_date"`
	EndDate       string  `json:"end_date"`
	Status        string  `json:"status"`
	FuelLiters    float64 `json:"fuel_liters"`
	DistanceKm    float64 `json:"distance_km"`
	Remarks       string  `json:"remarks,omitempty"`
}

func toTripResponse(trip *domain.Trip) TripResponse {
	return TripResponse{
		ID:            trip.ID,
		DriverID:      trip.DriverID,
		TruckID:       trip.TruckID,
		TrailerID:     trip.TrailerID,
		StartLocation: trip.StartLocation,
		EndLocation:   trip.EndLocation,
		StartDate:     trip.StartDate.Format(time.RFC3339),
		EndDate:       trip.EndDate.Format(time.RFC3339),
		Status:        string(trip.Status),
		FuelLiters:    trip.FuelLiters,
		DistanceKm:    trip.DistanceKm,
		Remarks:       trip.Remarks,
	}
}

// CreateTrip handles POST /v1/trips
func (h *TripHandler) CreateTrip(c *gin.Context) {
	var req CreateTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	trip, err := h.tripService.CreateTrip(c.Request.Context(), service.CreateTripRequest{
		DriverID:      req.DriverID,
		TruckID:       req.TruckID,
		TrailerID:     req.TrailerID,
		StartLocation: req.StartLocation,
		EndLocation:   req.EndLocation,
		StartDate:     req.StartDate,
		EndDate:       req.EndDate,
		Status:        domain.TripStatus(req.Status),
		FuelLiters:    req.FuelLiters,
		DistanceKm:    req.DistanceKm,
		Remarks:       req.Remarks,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusCreated, toTripResponse(trip))
}

// UpdateTrip handles PUT /v1/trips/:id
func (h *TripHandler) UpdateTrip(c *gin.Context) {
	var req UpdateTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	var status *domain.TripStatus
	if req.Status != nil {
		s := domain.TripStatus(*req.Status)
		status = &s
	}

	trip, err := h.tripService.UpdateTrip(c.Request.Context(), c.Param("id"), service.UpdateTripRequest{
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
	})
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, toTripResponse(trip))
}

// GetTrip handles GET /v1/trips/:id
func (h *TripHandler) GetTrip(c *gin.Context) {
	trip, err := h.tripService.GetTrip(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, toTripResponse(trip))
}

// GetAll handles GET /v1/trips
func (h *TripHandler) GetAll(c *gin.Context) {
	trips, err := h.tripService.GetAllTrips(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	response := make([]TripResponse, 0, len(trips))
	for _, trip := range trips {
		response = append(response, toTripResponse(trip))
	}

	c.JSON(http.StatusOK, response)
}

// GetByDriver handles GET /v1/drivers/:id/trips
func (h *TripHandler) GetByDriver(c *gin.Context) {
	trips, err := h.tripService.GetTripsByDriver(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	response := make([]TripResponse, 0, len(trips))
	for _, trip := range trips {
		response = append(response, toTripResponse(trip))
	}

	c.JSON(http.StatusOK, response)
}

// DeleteTrip handles DELETE /v1/trips/:id
func (h *TripHandler) DeleteTrip(c *gin.Context) {
	if err := h.tripService.DeleteTrip(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
