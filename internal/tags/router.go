package tags

import (
	"github.com/gin-gonic/gin"
)

func SetupRoutes(rg *gin.RouterGroup, controller *Controller) {
	rg.GET("/tags", controller.GetTags)           // GET /api/v1/tags
	rg.GET("/amenities", controller.GetAmenities) // GET /api/v1/amenities
}
