package analytics

import (
	"github.com/BluezConcepts/API-backend/internal/shared/config"
	"github.com/BluezConcepts/API-backend/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(rg *gin.RouterGroup, controller *Controller, cfg *config.Config) {
	auth := middleware.JWTAuthWithConfig(cfg)

	rg.GET("/owner/analytics", auth, middleware.RequireOwner(), controller.GetOwnerDashboard)
	rg.GET("/users/analytics", auth, controller.GetPersonalAnalytics)
}
