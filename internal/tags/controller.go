package tags

import (
	"net/http"

	"github.com/BluezConcepts/API-backend/internal/shared/utils/response"
	"github.com/BluezConcepts/API-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

type Controller struct {
	service Service
}

func NewController(service Service) *Controller {
	return &Controller{service: service}
}

// GetTags handles GET /tags
func (ctrl *Controller) GetTags(c *gin.Context) {
	list, err := ctrl.service.GetTags(c.Request.Context())
	if err != nil {
		logger.GetDefault().LogHTTPError(c, err, http.StatusInternalServerError)
		response.RespondError(c, http.StatusInternalServerError, "Failed to retrieve tags", nil)
		return
	}
	response.RespondSuccess(c, http.StatusOK, "Tags retrieved successfully", list)
}

// GetAmenities handles GET /amenities
func (ctrl *Controller) GetAmenities(c *gin.Context) {
	list, err := ctrl.service.GetAmenities(c.Request.Context())
	if err != nil {
		logger.GetDefault().LogHTTPError(c, err, http.StatusInternalServerError)
		response.RespondError(c, http.StatusInternalServerError, "Failed to retrieve amenities", nil)
		return
	}
	response.RespondSuccess(c, http.StatusOK, "Amenities retrieved successfully", list)
}
