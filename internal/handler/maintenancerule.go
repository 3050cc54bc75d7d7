package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fleet/internal/domain"
	"fleet/internal/service"
)

// MaintenanceRuleHandler handles HTTP requests for maintenance rules.
type MaintenanceRuleHandler struct {
	ruleService *service.MaintenanceRuleService
}

// NewMaintenanceRuleHandler creates a new MaintenanceRuleHandler.
func NewMaintenanceRuleHandler(ruleService *service.MaintenanceRuleService) *MaintenanceRuleHandler {
	return &MaintenanceRuleHandler{ruleService: ruleService}
}

// CreateRuleRequest is the HTTP request body for creating a maintenance rule.
type CreateRuleRequest struct {
	Type              string  `json:"type"`
	RecommendedKm     float64 `json:"recommended_km"`
	RecommendedMonths int     `json:"recommended_months"`
	Description       string  `json:"description"`
}

// UpdateRuleRequest is the HTTP request body for updating a maintenance rule.
type UpdateRuleRequest struct {
	RecommendedKm     *float64 `json:"recommended_km"`
	RecommendedMonths *int     `json:"recommended_months"`
	Description       *string  `json:"description"`
	IsActive          *bool    `json:"is_active"`
}

// RuleResponse is the HTTP response for maintenance rule operations.
type RuleResponse struct {
	ID                string  `json:"id"`
	Type              string  `json:"type"`
	RecommendedKm     float64 `json:"recommended_km"`
	RecommendedMonths int     `json:"recommended_months"`
	Description       string  `json:"description,omitempty"`
	IsActive          bool    `json:"is_active"`
}

func toRuleResponse(rule *domain.MaintenanceRule) RuleResponse {
	return RuleResponse{
		ID:                rule.ID,
		Type:              rule.Type,
		RecommendedKm:     rule.RecommendedKm,
		RecommendedMonths: rule.RecommendedMonths,
		Description:       rule.Description,
		IsActive:          rule.IsActive,
	}
}

// CreateRule handles POST /v1/maintenance-rules
func (h *MaintenanceRuleHandler) CreateRule(c *gin.Context) {
	var req CreateRuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	rule, err := h.ruleService.CreateRule(c.Request.Context(), service.CreateRuleRequest{
		Type:              req.Type,
		RecommendedKm:     req.RecommendedKm,
		RecommendedMonths: req.RecommendedMonths,
		Description:       req.Description,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusCreated, toRuleResponse(rule))
}

// GetRule handles GET /v1/maintenance-rules/:id
func (h *MaintenanceRuleHandler) GetRule(c *gin.Context) {
	rule, err := h.ruleService.GetRule(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, toRuleResponse(rule))
}

// GetAll handles GET /v1/maintenance-rules
func (h *MaintenanceRuleHandler) GetAll(c *gin.Context) {
	rules, err := h.ruleService.GetAllRules(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	response := make([]RuleResponse, 0, len(rules))
	for _, rule := range rules {
		response = append(response, toRuleResponse(rule))
	}

	c.JSON(http.StatusOK, response)
}

// UpdateRule handles PUT /v1/maintenance-rules/:id
func (h *MaintenanceRuleHandler) UpdateRule(c *gin.Context) {
	var req UpdateRuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	rule, err := h.ruleService.GetRule(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	if req.RecommendedKm != nil {
		rule.RecommendedKm = *req.RecommendedKm
	}
	if req.RecommendedMonths != nil {
		rule.RecommendedMonths = *req.RecommendedMonths
	}
	if req.Description != nil {
		rule.Description = *req.Description
	}
	if req.IsActive != nil {
		rule.IsActive = *req.IsActive
	}

	if err := h.ruleService.UpdateRule(c.Request.Context(), rule); err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, toRuleResponse(rule))
}

// DeleteRule handles DELETE /v1/maintenance-rules/:id
func (h *MaintenanceRuleHandler) DeleteRule(c *gin.Context) {
	if err := h.ruleService.DeleteRule(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
