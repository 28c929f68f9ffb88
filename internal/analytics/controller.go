package analytics

import (
	"net/http"
	"strconv"

	"github.com/BluezConcepts/API-backend/internal/shared/middleware"
	"github.com/BluezConcepts/API-backend/internal/shared/utils/response"
	"github.com/BluezConcepts/API-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

type Controller struct {
	service Service
	log     *logger.Logger
}

func NewController(service Service) *Controller {
	return &Controller{service: service, log: logger.GetDefault()}
}

// GetOwnerDashboard handles GET /owner/analytics?days=30
func (ctrl *Controller) GetOwnerDashboard(c *gin.Context) {
	ownerID, ok := middleware.GetUserID(c)
	if !ok {
		response.RespondError(c, http.StatusUnauthorized, "User not authenticated", nil)
		return
	}

	days := 0
	if raw := c.Query("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			response.RespondError(c, http.StatusBadRequest, "days must be a positive integer", nil)
			return
		}
		days = parsed
	}

	dashboard, err := ctrl.service.GetOwnerDashboard(c.Request.Context(), ownerID, days)
	if err != nil {
		ctrl.log.LogHTTPError(c, err, http.StatusInternalServerError)
		response.RespondError(c, http.StatusInternalServerError, "Failed to load analytics", nil)
		return
	}
	response.RespondSuccess(c, http.StatusOK, "Owner analytics retrieved successfully", dashboard)
}

// GetPersonalAnalytics handles GET /users/analytics
func (ctrl *Controller) GetPersonalAnalytics(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.RespondError(c, http.StatusUnauthorized, "User not authenticated", nil)
		return
	}

	result, err := ctrl.service.GetPersonalAnalytics(c.Request.Context(), userID)
	if err != nil {
		ctrl.log.LogHTTPError(c, err, http.StatusInternalServerError)
		response.RespondError(c, http.StatusInternalServerError, "Failed to load analytics", nil)
		return
	}
	response.RespondSuccess(c, http.StatusOK, "Personal analytics retrieved successfully", result)
}
