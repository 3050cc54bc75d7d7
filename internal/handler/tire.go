package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fleet/internal/domain"
	"fleet/internal/service"
)

// TireHandler handles HTTP requests for tires.
type TireHandler struct {
	tireService *service.TireService
}

// NewTireHandler creates a new TireHandler.
func NewTireHandler(tireService *service.TireService) *TireHandler {
	return &TireHandler{tireService: tireService}
}

// InstallTireRequest is the HTTP request body for installing a tire.
type InstallTireRequest struct {
	VehicleID    string `json:"vehicle_id"`
	SerialNumber string `json:"serial_number"`
	Position     string `json:"position"`
	WearLevel    string `json:"wear_level"`
}

// UpdateTireRequest is the HTTP request body for updating a tire.
type UpdateTireRequest struct {
	Position  string `json:"position"`
	WearLevel string `json:"wear_level"`
}

// TireResponse is the HTTP response for tire operations.
type TireResponse struct {
	ID           string `json:"id"`
	VehicleID    string `json:"vehicle_id"`
	SerialNumber string `json:"serial_number"`
	Position     string `json:"position"`
	WearLevel    string `json:"wear_level,omitempty"`
	InstalledOn  string `json:"installed_on"`
}

func toTireResponse(tire *domain.Tire) TireResponse {
	return TireResponse{
		ID:           tire.ID,
		VehicleID:    tire.VehicleID,
		SerialNumber: tire.SerialNumber,
		Position:     tire.Position,
		WearLevel:    tire.WearLevel,
		InstalledOn:  string(tire.InstalledOn),
	}
}

// InstallTire handles POST /v1/tires
func (h *TireHandler) InstallTire(c *gin.Context) {
	var req InstallTireRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	tire, err := h.tireService.InstallTire(c.Request.Context(), service.InstallTireRequest{
		VehicleID:    req.VehicleID,
		SerialNumber: req.SerialNumber,
		Position:     req.Position,
		WearLevel:    req.WearLevel,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusCreated, toTireResponse(tire))
}

// GetTire handles GET /v1/tires/:id
func (h *TireHandler) GetTire(c *gin.Context) {
	tire, err := h.tireService.GetTire(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, toTireResponse(tire))
}

// GetAll handles GET /v1/tires
func (h *TireHandler) GetAll(c *gin.Context) {
	tires, err := h.tireService.GetAllTires(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	response := make([]TireResponse, 0, len(tires))
	for _, tire := range tires {
		response = append(response, toTireResponse(tire))
	}

	c.JSON(http.StatusOK, response)
}

// GetByVehicle handles GET /v1/vehicles/:id/tires
func (h *TireHandler) GetByVehicle(c *gin.Context) {
	tires, err := h.tireService.GetTiresByVehicle(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	response := make([]TireResponse, 0, len(tires))
	for _, tire := range tires {
		response = append(response, toTireResponse(tire))
	}

	c.JSON(http.StatusOK, response)
}

// UpdateTire handles PUT /v1/tires/:id
func (h *TireHandler) UpdateTire(c *gin.Context) {
	var req UpdateTireRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	tire, err := h.tireService.GetTire(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	if req.Position != "" {
		tire.Position = req.Position
	}
	if req.WearLevel != "" {
		tire.WearLevel = req.WearLevel
	}

	if err := h.tireService.UpdateTire(c.Request.Context(), tire); err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, toTireResponse(tire))
}

// RemoveTire handles DELETE /v1/tires/:id
func (h *TireHandler) RemoveTire(c *gin.Context) {
	if err := h.tireService.RemoveTire(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
