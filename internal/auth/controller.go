package auth

import (
	"errors"
	"net/http"

	"github.com/BluezConcepts/API-backend/internal/shared/middleware"
	"github.com/BluezConcepts/API-backend/internal/shared/utils/response"
	"github.com/BluezConcepts/API-backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

type Controller struct {
	service   Service
	validator *validator.Validate
}

func NewController(service Service) *Controller {
	return &Controller{
		service:   service,
		validator: validator.New(),
	}
}

// bind decodes and validates a JSON body, writing the 400 itself
func (c *Controller) bind(ctx *gin.Context, req interface{}) bool {
	if err := ctx.ShouldBindJSON(req); err != nil {
		response.RespondError(ctx, http.StatusBadRequest, "Invalid request body", err.Error())
		return false
	}
	if err := c.validator.Struct(req); err != nil {
		response.RespondError(ctx, http.StatusBadRequest, "Validation failed", err.Error())
		return false
	}
	return true
}

func (c *Controller) Register(ctx *gin.Context) {
	var req RegisterRequest
	if !c.bind(ctx, &req) {
		return
	}

	resp, err := c.service.Register(ctx.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, ErrUserAlreadyExists):
			response.RespondError(ctx, http.StatusConflict, "User with this email already exists", nil)
		default:
			logger.GetDefault().LogHTTPError(ctx, err, http.StatusInternalServerError)
			response.RespondError(ctx, http.StatusInternalServerError, "Failed to register user", nil)
		}
		return
	}

	response.RespondSuccess(ctx, http.StatusCreated, "User registered successfully", resp)
}

func (c *Controller) Login(ctx *gin.Context) {
	var req LoginRequest
	if !c.bind(ctx, &req) {
		return
	}

	resp, err := c.service.Login(ctx.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidCredentials):
			response.RespondError(ctx, http.StatusUnauthorized, "Invalid email or password", nil)
		default:
			logger.GetDefault().LogHTTPError(ctx, err, http.StatusInternalServerError)
			response.RespondError(ctx, http.StatusInternalServerError, "Failed to login", nil)
		}
		return
	}

	response.RespondSuccess(ctx, http.StatusOK, "Login successful", resp)
}

func (c *Controller) RefreshToken(ctx *gin.Context) {
	var req RefreshTokenRequest
	if !c.bind(ctx, &req) {
		return
	}

	tokenPair, err := c.service.RefreshToken(ctx.Request.Context(), req.RefreshToken)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidToken):
			response.RespondError(ctx, http.StatusUnauthorized, "Invalid or expired refresh token", nil)
		case errors.Is(err, ErrUserNotFound):
			response.RespondError(ctx, http.StatusUnauthorized, "User not found", nil)
		default:
			response.RespondError(ctx, http.StatusInternalServerError, "Failed to refresh token", nil)
		}
		return
	}

	response.RespondSuccess(ctx, http.StatusOK, "Token refreshed successfully", tokenPair)
}

// Logout is stateless, clients drop their tokens
func (c *Controller) Logout(ctx *gin.Context) {
	var req LogoutRequest
	_ = ctx.ShouldBindJSON(&req)

	response.RespondSuccess(ctx, http.StatusOK, "Logged out successfully", nil)
}

func (c *Controller) ChangePassword(ctx *gin.Context) {
	userID, ok := middleware.GetUserID(ctx)
	if !ok {
		response.RespondError(ctx, http.StatusUnauthorized, "User not authenticated", nil)
		return
	}

	var req ChangePasswordRequest
	if !c.bind(ctx, &req) {
		return
	}

	err := c.service.ChangePassword(ctx.Request.Context(), userID, &req)
	if err != nil {
		switch {
		case errors.Is(err, ErrIncorrectPassword):
			response.RespondError(ctx, http.StatusBadRequest, "Current password is incorrect", nil)
		case errors.Is(err, ErrUserNotFound):
			response.RespondError(ctx, http.StatusNotFound, "User not found", nil)
		default:
			logger.GetDefault().LogHTTPError(ctx, err, http.StatusInternalServerError)
			response.RespondError(ctx, http.StatusInternalServerError, "Failed to change password", nil)
		}
		return
	}

	response.RespondSuccess(ctx, http.StatusOK, "Password changed successfully", nil)
}

func (c *Controller) GetMe(ctx *gin.Context) {
	userID, ok := middleware.GetUserID(ctx)
	if !ok {
		response.RespondError(ctx, http.StatusUnauthorized, "User not authenticated", nil)
		return
	}

	profile, err := c.service.GetProfile(ctx.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			response.RespondError(ctx, http.StatusNotFound, "User not found", nil)
			return
		}
		logger.GetDefault().LogHTTPError(ctx, err, http.StatusInternalServerError)
		response.RespondError(ctx, http.StatusInternalServerError, "Failed to load profile", nil)
		return
	}

	response.RespondSuccess(ctx, http.StatusOK, "User data retrieved successfully", profile)
}
