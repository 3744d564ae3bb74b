package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/ines300405/luxury-wheels/internal/handlers"
)

// SetupDashboardRoutes sets up routes for the overview aggregates
func SetupDashboardRoutes(r *gin.RouterGroup, dashboardHandler *handlers.DashboardHandler) {
	dashboard := r.Group("/dashboard")
	{
		dashboard.GET("/summary", dashboardHandler.GetSummary)
		dashboard.GET("/reservations-by-month", dashboardHandler.GetReservationsByMonth)
	}
}

// SetupExportRoutes sets up the CSV export endpoints
func SetupExportRoutes(r *gin.RouterGroup, exportHandler *handlers.ExportHandler) {
	r.GET("/clients/export", exportHandler.ExportClients)
	r.GET("/vehicles/export", exportHandler.ExportVehicles)
	r.GET("/reservations/export", exportHandler.ExportReservations)
	r.GET("/payments/export", exportHandler.ExportPayments)
	r.GET("/payment-methods/export", exportHandler.ExportPaymentMethods)
}
