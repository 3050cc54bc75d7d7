package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fleet/internal/service"
)

// StatsHandler handles HTTP requests for fleet statistics.
type StatsHandler struct {
	statsService *service.StatsService
}

// NewStatsHandler creates a new StatsHandler.
func NewStatsHandler(statsService *service.StatsService) *StatsHandler {
	return &StatsHandler{statsService: statsService}
}

// TripStatsResponse is the HTTP response for trip statistics.
type TripStatsResponse struct {
	Total           int64            `json:"total"`
	ByStatus        map[string]int64 `json:"by_status"`
	TotalDistanceKm float64          `json:"total_distance_km"`
	TotalFuelLiters float64          `json:"total_fuel_liters"`
}

// MaintenanceStatsResponse is the HTTP response for maintenance statistics.
type MaintenanceStatsResponse struct {
	Total     int64            `json:"total"`
	ByStatus  map[string]int64 `json:"by_status"`
	TotalCost float64          `json:"total_cost"`
}

// GetTripStats handles GET /v1/stats/trips
func (h *StatsHandler) GetTripStats(c *gin.Context) {
	stats, err := h.statsService.GetTripStats(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	byStatus := make(map[string]int64, len(stats.ByStatus))
	for status, count := range stats.ByStatus {
		byStatus[string(status)] = count
	}

	c.JSON(http.StatusOK, TripStatsResponse{
		Total:           stats.Total,
		ByStatus:        byStatus,
		TotalDistanceKm: stats.TotalDistanceKm,
		TotalFuelLiters: stats.TotalFuelLiters,
	})
}

// GetMaintenanceStats handles GET /v1/stats/maintenance
func (h *StatsHandler) GetMaintenanceStats(c *gin.Context) {
	stats, err := h.statsService.GetMaintenanceStats(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	byStatus := make(map[string]int64, len(stats.ByStatus))
	for status, count := range stats.ByStatus {
		byStatus[string(status)] = count
	}

	c.JSON(http.StatusOK, MaintenanceStatsResponse{
		Total:     stats.Total,
		ByStatus:  byStatus,
		TotalCost: stats.TotalCost,
	})
}
