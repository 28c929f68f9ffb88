package spots

import (
	"github.com/BluezConcepts/API-backend/internal/shared/config"
	"github.com/BluezConcepts/API-backend/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

type Router struct {
	controller *Controller
	config     *config.Config
}

func NewRouter(controller *Controller, cfg *config.Config) *Router {
	return &Router{controller: controller, config: cfg}
}

func (r *Router) SetupRoutes(rg *gin.RouterGroup) {
	auth := middleware.JWTAuthWithConfig(r.config)

	// Public catalog
	rg.GET("/campingspots", r.controller.ListSpots)
	rg.GET("/campingspots/:id", r.controller.GetSpot)
	rg.GET("/featured-campingspots", r.controller.GetFeatured)
	rg.GET("/campingspots/:id/unavailability", r.controller.GetUnavailability)
	rg.GET("/campingspots/:id/reviews", r.controller.GetReviews)

	rg.POST("/campingspots/:id/reviews", auth, r.controller.AddReview)

	owner := rg.Group("/owner/campingspots")
	owner.Use(auth, middleware.RequireOwner())
	{
		owner.GET("", r.controller.GetOwnerSpots)
		owner.POST("", r.controller.CreateSpot)
		owner.PUT("/:id", r.controller.UpdateSpot)
		owner.DELETE("/:id", r.controller.DeleteSpot)
		owner.POST("/:id/images", r.controller.AddImage)
		owner.POST("/:id/unavailability", r.controller.AddUnavailability)
		owner.DELETE("/:id/unavailability/:windowId", r.controller.RemoveUnavailability)
	}
}
