package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/ines300405/luxury-wheels/internal/handlers"
)

// SetupClientRoutes sets up routes for client management
func SetupClientRoutes(r *gin.RouterGroup, clientHandler *handlers.ClientHandler) {
	clients := r.Group("/clients")
	{
		clients.POST("", clientHandler.CreateClient)
		clients.GET("", clientHandler.ListClients)
		clients.GET("/by-email", clientHandler.GetClientByEmail)
		clients.GET("/:id", clientHandler.GetClient)
		clients.PUT("/:id", clientHandler.UpdateClient)
		clients.DELETE("/:id", clientHandler.DeleteClient)
	}
}
