package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"fleet/internal/domain"
	"fleet/internal/service"
)

// MaintenanceHandler handles HTTP requests for maintenance records.
type MaintenanceHandler struct {
	maintenanceService *service.MaintenanceService
}

// NewMaintenanceHandler creates a new MaintenanceHandler.
func NewMaintenanceHandler(maintenanceService *service.MaintenanceService) *MaintenanceHandler {
	return &MaintenanceHandler{maintenanceService: maintenanceService}
}

// CreateMaintenanceRequest is the HTTP request body for opening a
// maintenance record.
type CreateMaintenanceRequest struct {
	MaintenanceRuleID string    `json:"maintenance_rule_id"`
	VehicleID         string    `json:"vehicle_id"`
	TargetType        string    `json:"target_type"`
	Component         string    `json:"component"`
	Description       string    `json:"description"`
	Cost              float64   `json:"cost"`
	Date              time.Time `json:"date"`
	KmAtMaintenance   float64   `json:"km_at_maintenance"`
}

// UpdateMaintenanceRequest is the HTTP request body for a maintenance
// status change.
type UpdateMaintenanceRequest struct {
	Status string `json:"status"`
}

// MaintenanceResponse is the HTTP response for maintenance operations.
type MaintenanceResponse struct {
	ID                string  `json:"id"`
	MaintenanceRuleID string  `json:"maintenance_rule_id"`
	VehicleID         string  `json:"vehicle_id"`
	TargetType        string  `json:"target_type"`
	Component         string  `json:"component"`
	Status            string  `json:"status"`
	Description       string  `json:"description,omitempty"`
	Cost              float64 `json:"cost"`
	Date              string  `json:"date,omitempty"`
	KmAtMaintenance   float64 `json:"km_at_maintenance"`
}

func toMaintenanceResponse(m *domain.Maintenance) MaintenanceResponse {
	response := MaintenanceResponse{
		ID:                m.ID,
		MaintenanceRuleID: m.MaintenanceRuleID,
		VehicleID:         m.VehicleID,
		TargetType:        m.TargetType,
		Component:         m.Component,
		Status:            string(m.Status),
		Description:       m.Description,
		Cost:              m.Cost,
		KmAtMaintenance:   m.KmAtMaintenance,
	}
	if !m.Date.IsZero() {
		response.Date = m.Date.Format(time.RFC3339)
	}
	return response
}

// CreateMaintenance handles POST /v1/maintenance
func (h *MaintenanceHandler) CreateMaintenance(c *gin.Context) {
	var req CreateMaintenanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	m, err := h.maintenanceService.CreateMaintenance(c.Request.Context(), service.CreateMaintenanceRequest{
		MaintenanceRuleID: req.MaintenanceRuleID,
		VehicleID:         req.VehicleID,
		TargetType:        req.TargetType,
		Component:         req.Component,
		Description:       req.Description,
		Cost:              req.Cost,
		Date:              req.Date,
		KmAtMaintenance:   req.KmAtMaintenance,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusCreated, toMaintenanceResponse(m))
}

// UpdateMaintenance handles PUT /v1/maintenance/:id
func (h *MaintenanceHandler) UpdateMaintenance(c *gin.Context) {
	var req UpdateMaintenanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	m, err := h.maintenanceService.UpdateMaintenanceStatus(c.Request.Context(), c.Param("id"), domain.MaintenanceStatus(req.Status))
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, toMaintenanceResponse(m))
}

// GetMaintenance handles GET /v1/maintenance/:id
func (h *MaintenanceHandler) GetMaintenance(c *gin.Context) {
	m, err := h.maintenanceService.GetMaintenance(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, toMaintenanceResponse(m))
}

// GetAll handles GET /v1/maintenance
func (h *MaintenanceHandler) GetAll(c *gin.Context) {
	records, err := h.maintenanceService.GetAllMaintenance(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	response := make([]MaintenanceResponse, 0, len(records))
	for _, m := range records {
		response = append(response, toMaintenanceResponse(m))
	}

	c.JSON(http.StatusOK, response)
}

// DeleteMaintenance handles DELETE /v1/maintenance/:id
func (h *MaintenanceHandler) DeleteMaintenance(c *gin.Context) {
	if err := h.maintenanceService.DeleteMaintenance(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
