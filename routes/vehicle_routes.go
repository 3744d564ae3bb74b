package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/ines300405/luxury-wheels/internal/handlers"
)

// SetupVehicleRoutes sets up routes for fleet management
func SetupVehicleRoutes(r *gin.RouterGroup, vehicleHandler *handlers.VehicleHandler) {
	vehicles := r.Group("/vehicles")
	{
		vehicles.POST("", vehicleHandler.CreateVehicle)
		vehicles.GET("", vehicleHandler.ListVehicles)
		vehicles.GET("/by-plate", vehicleHandler.GetVehicleByPlate)
		vehicles.GET("/maintenance-due", vehicleHandler.ListMaintenanceDue)
		vehicles.GET("/:id", vehicleHandler.GetVehicle)
		vehicles.PUT("/:id", vehicleHandler.UpdateVehicle)
		vehicles.DELETE("/:id", vehicleHandler.DeleteVehicle)
		vehicles.PUT("/:id/maintenance", vehicleHandler.MarkMaintenance)
		vehicles.POST("/:id/image", vehicleHandler.UploadImage)
	}
}
