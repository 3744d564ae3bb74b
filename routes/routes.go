package routes

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ines300405/luxury-wheels/internal/config"
	"github.com/ines300405/luxury-wheels/internal/handlers"
	"github.com/ines300405/luxury-wheels/internal/middleware"
	"github.com/ines300405/luxury-wheels/pkg/logger"
)

// Handlers groups everything the router mounts.
type Handlers struct {
	Client        *handlers.ClientHandler
	Vehicle       *handlers.VehicleHandler
	Reservation   *handlers.ReservationHandler
	Payment       *handlers.PaymentHandler
	PaymentMethod *handlers.PaymentMethodHandler
	Dashboard     *handlers.DashboardHandler
	Export        *handlers.ExportHandler
}

// SetupRouter assembles the gin engine with middleware and all route groups.
func SetupRouter(cfg *config.Config, log *logger.Logger, h *Handlers) *gin.Engine {
	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(middleware.RecoveryMiddleware(log))
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware(log))
	router.Use(middleware.CORSMiddleware(cfg.App.CORSAllowedOrigins))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "ok",
			"version":   cfg.App.Version,
			"timestamp": time.Now().UTC(),
		})
	})

	v1 := router.Group("/api/v1")
	{
		SetupClientRoutes(v1, h.Client)
		SetupVehicleRoutes(v1, h.Vehicle)
		SetupReservationRoutes(v1, h.Reservation)
		SetupPaymentRoutes(v1, h.Payment, h.PaymentMethod)
		SetupDashboardRoutes(v1, h.Dashboard)
		SetupExportRoutes(v1, h.Export)
	}

	return router
}
