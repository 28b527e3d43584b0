package routes

import (
	"devconnect_backend/internal/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers the full HTTP API under /api.
func RegisterRoutes(ginRouter *gin.Engine, appHandlers *handlers.AppHandlers) {
	api := ginRouter.Group("/api")
	{
		appHandlers.AuthHandler.RegisterRoutes(api)
		appHandlers.ProfileHandler.RegisterRoutes(api)
		appHandlers.PostHandler.RegisterRoutes(api)
	}
}
