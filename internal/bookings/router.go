package bookings

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
	return &Router{
		controller: controller,
		config:     cfg,
	}
}

// SetupRoutes registers guest and owner booking routes
func (r *Router) SetupRoutes(rg *gin.RouterGroup) {
	auth := middleware.JWTAuthWithConfig(r.config)

	guest := rg.Group("")
	guest.Use(auth)
	{
		guest.POST("/bookings", r.controller.CreateBooking)
		guest.POST("/my-bookings", r.controller.CreateLegacyBooking)
		guest.GET("/bookings/:id", r.controller.GetBooking)
		guest.GET("/users/bookings", r.controller.GetUserBookings)
	}

	owner := rg.Group("/owner")
	owner.Use(auth, middleware.RequireOwner())
	{
		owner.GET("/campingspots/:id/bookings", r.controller.GetSpotBookings)
		owner.POST("/bookings/:id/accept", r.controller.AcceptBooking)
		owner.POST("/bookings/:id/decline", r.controller.DeclineBooking)
	}
}
