package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/ines300405/luxury-wheels/internal/handlers"
)

// SetupPaymentRoutes sets up routes for payments and payment methods
func SetupPaymentRoutes(r *gin.RouterGroup, paymentHandler *handlers.PaymentHandler, methodHandler *handlers.PaymentMethodHandler) {
	payments := r.Group("/payments")
	{
		payments.POST("", paymentHandler.CreatePayment)
		payments.GET("", paymentHandler.ListPayments)
		payments.GET("/:id", paymentHandler.GetPayment)
		payments.PUT("/:id", paymentHandler.UpdatePayment)
		payments.DELETE("/:id", paymentHandler.DeletePayment)
	}

	methods := r.Group("/payment-methods")
	{
		methods.POST("", methodHandler.CreatePaymentMethod)
		methods.GET("", methodHandler.ListPaymentMethods)
		methods.GET("/:id", methodHandler.GetPaymentMethod)
		methods.PUT("/:id", methodHandler.UpdatePaymentMethod)
		methods.DELETE("/:id", methodHandler.DeletePaymentMethod)
	}
}
