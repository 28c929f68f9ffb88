package bookings

import (
	"errors"
	"net/http"

	"github.com/BluezConcepts/API-backend/internal/shared/middleware"
	"github.com/BluezConcepts/API-backend/internal/shared/utils/response"
	"github.com/BluezConcepts/API-backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type Controller struct {
	service   Service
	validator *validator.Validate
	log       *logger.Logger
}

func NewController(service Service) *Controller {
	return &Controller{
		service:   service,
		validator: validator.New(),
		log:       logger.GetDefault(),
	}
}

// CreateBooking handles POST /bookings
func (ctrl *Controller) CreateBooking(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.RespondError(c, http.StatusUnauthorized, "User not authenticated", nil)
		return
	}

	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}
	if err := ctrl.validator.Struct(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "Validation failed", err.Error())
		return
	}

	ctrl.create(c, userID, &req)
}

// CreateLegacyBooking handles POST /my-bookings
func (ctrl *Controller) CreateLegacyBooking(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.RespondError(c, http.StatusUnauthorized, "User not authenticated", nil)
		return
	}

	var req LegacyBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}
	if err := ctrl.validator.Struct(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "Validation failed", err.Error())
		return
	}

	ctrl.create(c, userID, req.ToCreateRequest())
}

func (ctrl *Controller) create(c *gin.Context, userID uuid.UUID, req *CreateBookingRequest) {
	booking, err := ctrl.service.CreateBooking(c.Request.Context(), userID, req)
	if err != nil {
		ctrl.handleError(c, err)
		return
	}

	response.RespondSuccess(c, http.StatusCreated, "Booking request created", ToBookingResponse(booking))
}

// GetBooking handles GET /bookings/:id
func (ctrl *Controller) GetBooking(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.RespondError(c, http.StatusUnauthorized, "User not authenticated", nil)
		return
	}
	bookingID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	booking, err := ctrl.service.GetBookingForUser(c.Request.Context(), bookingID, userID)
	if err != nil {
		ctrl.handleError(c, err)
		return
	}

	response.RespondSuccess(c, http.StatusOK, "Booking retrieved successfully", ToBookingResponse(booking))
}

// GetUserBookings handles GET /users/bookings
func (ctrl *Controller) GetUserBookings(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.RespondError(c, http.StatusUnauthorized, "User not authenticated", nil)
		return
	}

	list, err := ctrl.service.ListBookingsForUser(c.Request.Context(), userID)
	if err != nil {
		ctrl.handleError(c, err)
		return
	}

	response.RespondSuccess(c, http.StatusOK, "Bookings retrieved successfully", ToBookingListResponse(list))
}

// GetSpotBookings handles GET /owner/campingspots/:id/bookings
func (ctrl *Controller) GetSpotBookings(c *gin.Context) {
	ownerID, ok := middleware.GetUserID(c)
	if !ok {
		response.RespondError(c, http.StatusUnauthorized, "User not authenticated", nil)
		return
	}
	spotID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	list, err := ctrl.service.ListBookingsForOwnedSpot(c.Request.Context(), ownerID, spotID)
	if err != nil {
		ctrl.handleError(c, err)
		return
	}

	response.RespondSuccess(c, http.StatusOK, "Bookings retrieved successfully", ToBookingListResponse(list))
}

func (ctrl *Controller) AcceptBooking(c *gin.Context) {
	ctrl.decide(c, StatusAccepted, "Booking accepted")
}

func (ctrl *Controller) DeclineBooking(c *gin.Context) {
	ctrl.decide(c, StatusDeclined, "Booking declined")
}

func (ctrl *Controller) decide(c *gin.Context, to Status, message string) {
	ownerID, ok := middleware.GetUserID(c)
	if !ok {
		response.RespondError(c, http.StatusUnauthorized, "User not authenticated", nil)
		return
	}
	bookingID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	booking, err := ctrl.service.DecideAsOwner(c.Request.Context(), ownerID, bookingID, to)
	if err != nil {
		ctrl.handleError(c, err)
		return
	}

	response.RespondSuccess(c, http.StatusOK, message, ToBookingResponse(booking))
}

func (ctrl *Controller) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrInvalidRange):
		response.RespondError(c, http.StatusBadRequest, "Invalid date range", err.Error())
	case errors.Is(err, ErrInvalidGuestCount):
		response.RespondError(c, http.StatusBadRequest, "Invalid guest count", err.Error())
	case errors.Is(err, ErrSpotNotFound):
		response.RespondError(c, http.StatusNotFound, "Camping spot not found", nil)
	case errors.Is(err, ErrBookingNotFound):
		response.RespondError(c, http.StatusNotFound, "Booking not found", nil)
	case errors.Is(err, ErrForbidden):
		response.RespondError(c, http.StatusForbidden, "Not allowed to access this booking", nil)
	case errors.Is(err, ErrCapacityExceeded):
		response.RespondError(c, http.StatusUnprocessableEntity, "Guest count exceeds spot capacity", nil)
	case errors.Is(err, ErrInvalidRate):
		response.RespondError(c, http.StatusUnprocessableEntity, "Camping spot has no valid nightly rate", nil)
	case errors.Is(err, ErrSlotUnavailable):
		response.RespondError(c, http.StatusConflict, "Camping spot is not available for the requested dates", nil)
	case errors.Is(err, ErrInvalidTransition):
		response.RespondError(c, http.StatusConflict, "Booking has already been decided", nil)
	default:
		ctrl.log.LogHTTPError(c, err, http.StatusInternalServerError)
		response.RespondError(c, http.StatusInternalServerError, "Internal server error", nil)
	}
}

func parseIDParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "Invalid "+name+" format", nil)
		return uuid.Nil, false
	}
	return id, true
}
