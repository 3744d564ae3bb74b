package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/ines300405/luxury-wheels/internal/handlers"
)

// SetupReservationRoutes sets up routes for reservation management
func SetupReservationRoutes(r *gin.RouterGroup, reservationHandler *handlers.ReservationHandler) {
	reservations := r.Group("/reservations")
	{
		reservations.POST("", reservationHandler.CreateReservation)
		reservations.GET("", reservationHandler.ListReservations)
		reservations.GET("/:id", reservationHandler.GetReservation)
		reservations.PUT("/:id", reservationHandler.UpdateReservation)
		reservations.DELETE("/:id", reservationHandler.DeleteReservation)
		reservations.GET("/:id/payments", reservationHandler.ListReservationPayments)
	}
}
