package spots

import (
	"errors"
	"net/http"

	"github.com/BluezConcepts/API-backend/internal/shared/middleware"
	"github.com/BluezConcepts/API-backend/internal/shared/utils/response"
	"github.com/BluezConcepts/API-backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Controller struct {
	service Service
	log     *logger.Logger
}

func NewController(service Service) *Controller {
	return &Controller{service: service, log: logger.GetDefault()}
}

// ListSpots handles GET /campingspots
func (ctrl *Controller) ListSpots(c *gin.Context) {
	var query SpotListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.RespondError(c, http.StatusBadRequest, "Invalid query parameters", err.Error())
		return
	}

	result, err := ctrl.service.ListSpots(c.Request.Context(), query)
	if err != nil {
		ctrl.handleError(c, err)
		return
	}
	response.RespondSuccess(c, http.StatusOK, "Camping spots retrieved successfully", result)
}

// GetSpot handles GET /campingspots/:id
func (ctrl *Controller) GetSpot(c *gin.Context) {
	spotID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	spot, err := ctrl.service.GetSpot(c.Request.Context(), spotID)
	if err != nil {
		ctrl.handleError(c, err)
		return
	}
	response.RespondSuccess(c, http.StatusOK, "Camping spot retrieved successfully", spot)
}

// GetFeatured handles GET /featured-campingspots
func (ctrl *Controller) GetFeatured(c *gin.Context) {
	list, err := ctrl.service.GetFeatured(c.Request.Context())
	if err != nil {
		ctrl.handleError(c, err)
		return
	}
	response.RespondSuccess(c, http.StatusOK, "Featured camping spots retrieved successfully", list)
}

func (ctrl *Controller) GetOwnerSpots(c *gin.Context) {
	ownerID, ok := currentUser(c)
	if !ok {
		return
	}

	list, err := ctrl.service.GetOwnerSpots(c.Request.Context(), ownerID)
	if err != nil {
		ctrl.handleError(c, err)
		return
	}
	response.RespondSuccess(c, http.StatusOK, "Camping spots retrieved successfully", list)
}

func (ctrl *Controller) CreateSpot(c *gin.Context) {
	ownerID, ok := currentUser(c)
	if !ok {
		return
	}

	var req CreateSpotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	spot, err := ctrl.service.CreateSpot(c.Request.Context(), ownerID, &req)
	if err != nil {
		ctrl.handleError(c, err)
		return
	}
	response.RespondSuccess(c, http.StatusCreated, "Camping spot created successfully", spot)
}

func (ctrl *Controller) UpdateSpot(c *gin.Context) {
	ownerID, ok := currentUser(c)
	if !ok {
		return
	}
	spotID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req UpdateSpotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	spot, err := ctrl.service.UpdateSpot(c.Request.Context(), ownerID, spotID, &req)
	if err != nil {
		ctrl.handleError(c, err)
		return
	}
	response.RespondSuccess(c, http.StatusOK, "Camping spot updated successfully", spot)
}

func (ctrl *Controller) DeleteSpot(c *gin.Context) {
	ownerID, ok := currentUser(c)
	if !ok {
		return
	}
	spotID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := ctrl.service.DeleteSpot(c.Request.Context(), ownerID, spotID); err != nil {
		ctrl.handleError(c, err)
		return
	}
	response.RespondSuccess(c, http.StatusOK, "Camping spot deleted successfully", nil)
}

func (ctrl *Controller) AddImage(c *gin.Context) {
	ownerID, ok := currentUser(c)
	if !ok {
		return
	}
	spotID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req AddImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	image, err := ctrl.service.AddImage(c.Request.Context(), ownerID, spotID, &req)
	if err != nil {
		ctrl.handleError(c, err)
		return
	}
	response.RespondSuccess(c, http.StatusCreated, "Image added successfully", image)
}

// GetUnavailability handles GET /campingspots/:id/unavailability
func (ctrl *Controller) GetUnavailability(c *gin.Context) {
	spotID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	list, err := ctrl.service.GetUnavailability(c.Request.Context(), spotID)
	if err != nil {
		ctrl.handleError(c, err)
		return
	}
	response.RespondSuccess(c, http.StatusOK, "Unavailability retrieved successfully", list)
}

func (ctrl *Controller) AddUnavailability(c *gin.Context) {
	ownerID, ok := currentUser(c)
	if !ok {
		return
	}
	spotID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req CreateUnavailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	window, err := ctrl.service.AddUnavailability(c.Request.Context(), ownerID, spotID, &req)
	if err != nil {
		ctrl.handleError(c, err)
		return
	}
	response.RespondSuccess(c, http.StatusCreated, "Unavailability window created", window)
}

func (ctrl *Controller) RemoveUnavailability(c *gin.Context) {
	ownerID, ok := currentUser(c)
	if !ok {
		return
	}
	spotID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	windowID, ok := parseIDParam(c, "windowId")
	if !ok {
		return
	}

	if err := ctrl.service.RemoveUnavailability(c.Request.Context(), ownerID, spotID, windowID); err != nil {
		ctrl.handleError(c, err)
		return
	}
	response.RespondSuccess(c, http.StatusOK, "Unavailability window removed", nil)
}

func (ctrl *Controller) GetReviews(c *gin.Context) {
	spotID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	list, err := ctrl.service.GetReviews(c.Request.Context(), spotID)
	if err != nil {
		ctrl.handleError(c, err)
		return
	}
	response.RespondSuccess(c, http.StatusOK, "Reviews retrieved successfully", list)
}

func (ctrl *Controller) AddReview(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	spotID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	review, err := ctrl.service.AddReview(c.Request.Context(), userID, spotID, &req)
	if err != nil {
		ctrl.handleError(c, err)
		return
	}
	response.RespondSuccess(c, http.StatusCreated, "Review added successfully", review)
}

func (ctrl *Controller) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrSpotNotFound):
		response.RespondError(c, http.StatusNotFound, "Camping spot not found", nil)
	case errors.Is(err, ErrWindowNotFound):
		response.RespondError(c, http.StatusNotFound, "Unavailability window not found", nil)
	case errors.Is(err, ErrNotSpotOwner):
		response.RespondError(c, http.StatusForbidden, err.Error(), nil)
	case errors.Is(err, ErrInvalidWindow), errors.Is(err, ErrInvalidPrice), errors.Is(err, ErrInvalidRating):
		response.RespondError(c, http.StatusBadRequest, err.Error(), nil)
	case errors.Is(err, ErrWindowConflict), errors.Is(err, ErrSpotHasActiveBookings):
		response.RespondError(c, http.StatusConflict, err.Error(), nil)
	default:
		ctrl.log.LogHTTPError(c, err, http.StatusInternalServerError)
		response.RespondError(c, http.StatusInternalServerError, "Internal server error", nil)
	}
}

func currentUser(c *gin.Context) (uuid.UUID, bool) {
	id, ok := middleware.GetUserID(c)
	if !ok {
		response.RespondError(c, http.StatusUnauthorized, "User not authenticated", nil)
	}
	return id, ok
}

func parseIDParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "Invalid "+name+" format", nil)
		return uuid.Nil, false
	}
	return id, true
}
