package api

import (
	"net/http"

	"fitcoach/fitness-platform/internal/service"

	"github.com/gin-gonic/gin"
)

// SetupRoutes wires all handlers onto the router. Protected routes sit
// behind AuthMiddleware, which resolves the bearer token to a Trainer
// before any handler runs.
func SetupRoutes(
	router *gin.Engine,
	authService service.AuthService,
	trainerService service.TrainerService,
	clientService service.ClientService,
) {
	authHandler := NewAuthHandler(authService)
	trainerHandler := NewTrainerHandler(authService, trainerService)
	clientHandler := NewClientHandler(clientService)

	router.Use(RequestIDMiddleware())

	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "fitness platform API is running"})
	})

	// Public routes
	router.POST("/trainers", trainerHandler.Register)
	router.GET("/trainers", trainerHandler.List)
	router.POST("/auth/login", authHandler.Login)

	// Protected routes
	protected := router.Group("")
	protected.Use(AuthMiddleware(authService))
	{
		protected.GET("/profile", trainerHandler.Profile)

		clientGroup := protected.Group("/clients")
		{
			clientGroup.POST("", clientHandler.Create)
			clientGroup.GET("", clientHandler.List)
			clientGroup.GET("/:id", clientHandler.Get)
			clientGroup.PUT("/:id", clientHandler.Update)
			clientGroup.DELETE("/:id", clientHandler.Delete)
		}
	}
}
