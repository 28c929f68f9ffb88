package auth

import (
	"github.com/BluezConcepts/API-backend/internal/shared/config"
	"github.com/BluezConcepts/API-backend/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

// Router handles auth-related routes
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

// SetupRoutes registers all auth routes
func (authRouter *Router) SetupRoutes(rg *gin.RouterGroup) {
	requireAuth := middleware.JWTAuthWithConfig(authRouter.config)

	auth := rg.Group("/auth")
	{
		auth.POST("/register", authRouter.controller.Register)
		auth.POST("/login", authRouter.controller.Login)
		auth.POST("/refresh", authRouter.controller.RefreshToken)
		auth.POST("/logout", authRouter.controller.Logout)

		auth.GET("/me", requireAuth, authRouter.controller.GetMe)
		auth.PUT("/change-password", requireAuth, authRouter.controller.ChangePassword)
	}

	profile := rg.Group("/profile")
	profile.Use(requireAuth)
	{
		profile.PUT("/password", authRouter.controller.ChangePassword)
	}
}
