package app

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/newrelic/go-agent/v3/integrations/nrgin"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/redis/go-redis/v9"

	"fleet/internal/handler"
	"fleet/internal/middleware"
)

// RouterDeps contains all dependencies needed for the router.
type RouterDeps struct {
	VehicleHandler     *handler.VehicleHandler
	TripHandler        *handler.TripHandler
	DriverHandler      *handler.DriverHandler
	MaintenanceHandler *handler.MaintenanceHandler
	RuleHandler        *handler.MaintenanceRuleHandler
	TireHandler        *handler.TireHandler
	StatsHandler       *handler.StatsHandler
	RedisClient        *redis.Client
	NewRelicApp        *newrelic.Application
}

// NewRouter creates a new Gin router with all routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	router := gin.New()

	// Global middleware.
	router.Use(gin.Recovery())
	router.Use(gin.Logger())
	router.Use(cors.Default())

	// Add New Relic middleware if enabled.
	if deps.NewRelicApp != nil {
		router.Use(nrgin.Middleware(deps.NewRelicApp))
	}

	router.Use(middleware.Idempotency(deps.RedisClient))

	// Health check.
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// API v1 routes.
	v1 := router.Group("/v1")
	{
		// Vehicle routes.
		vehicles := v1.Group("/vehicles")
		{
			vehicles.POST("", deps.VehicleHandler.RegisterVehicle)
			vehicles.GET("", deps.VehicleHandler.GetAll)
			vehicles.GET("/nearby", deps.VehicleHandler.FindNearby)
			vehicles.GET("/:id", deps.VehicleHandler.GetVehicle)
			vehicles.PUT("/:id", deps.VehicleHandler.UpdateVehicle)
			vehicles.PUT("/:id/location", deps.VehicleHandler.UpdateLocation)
			vehicles.GET("/:id/tires", deps.TireHandler.GetByVehicle)
		}

		// Trip routes.
		trips := v1.Group("/trips")
		{
			trips.POST("", deps.TripHandler.CreateTrip)
			trips.GET("", deps.TripHandler.GetAll)
			trips.GET("/:id", deps.TripHandler.GetTrip)
			trips.PUT("/:id", deps.TripHandler.UpdateTrip)
			trips.DELETE("/:id", deps.TripHandler.DeleteTrip)
		}

		// Driver routes.
		drivers := v1.Group("/drivers")
		{
			drivers.POST("", deps.DriverHandler.RegisterDriver)
			drivers.GET("", deps.DriverHandler.GetAll)
			drivers.GET("/:id", deps.DriverHandler.GetDriver)
			drivers.GET("/:id/trips", deps.TripHandler.GetByDriver)
		}

		// Maintenance routes.
		maintenance := v1.Group("/maintenance")
		{
			maintenance.POST("", deps.MaintenanceHandler.CreateMaintenance)
			maintenance.GET("", deps.MaintenanceHandler.GetAll)
			maintenance.GET("/:id", deps.MaintenanceHandler.GetMaintenance)
			maintenance.PUT("/:id", deps.MaintenanceHandler.UpdateMaintenance)
			maintenance.DELETE("/:id", deps.MaintenanceHandler.DeleteMaintenance)
		}

		// Maintenance rule routes.
		rules := v1.Group("/maintenance-rules")
		{
			rules.POST("", deps.RuleHandler.CreateRule)
			rules.GET("", deps.RuleHandler.GetAll)
			rules.GET("/:id", deps.RuleHandler.GetRule)
			rules.PUT("/:id", deps.RuleHandler.UpdateRule)
			rules.DELETE("/:id", deps.RuleHandler.DeleteRule)
		}

		// Tire routes.
		tires := v1.Group("/tires")
		{
			tires.POST("", deps.TireHandler.InstallTire)
			tires.GET("", deps.TireHandler.GetAll)
			tires.GET("/:id", deps.TireHandler.GetTire)
			tires.PUT("/:id", deps.TireHandler.UpdateTire)
			tires.DELETE("/:id", deps.TireHandler.RemoveTire)
		}

		// Stats routes.
		stats := v1.Group("/stats")
		{
			stats.GET("/trips", deps.StatsHandler.GetTripStats)
			stats.GET("/maintenance", deps.StatsHandler.GetMaintenanceStats)
		}
	}

	return router
}
