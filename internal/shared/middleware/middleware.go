package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/BluezConcepts/API-backend/internal/shared/config"
	"github.com/BluezConcepts/API-backend/internal/shared/utils/response"
	"github.com/BluezConcepts/API-backend/internal/users"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

// Context keys set by the auth middleware
const (
	ContextUserID    = "user_id"
	ContextUserEmail = "user_email"
	ContextUserRole  = "user_role"
)

var errMissingBearer = errors.New("authorization header format must be Bearer {token}")

// JWTAuth creates a JWT authentication middleware from the environment config
func JWTAuth() gin.HandlerFunc {
	return JWTAuthWithConfig(config.Load())
}

// JWTAuthWithConfig rejects requests without a valid access token
func JWTAuthWithConfig(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.AbortWithError(c, http.StatusUnauthorized, "Authorization header is required")
			return
		}

		claims, err := parseAccessToken(authHeader, cfg.JWT.Secret)
		if err != nil {
			if errors.Is(err, errMissingBearer) {
				response.AbortWithError(c, http.StatusUnauthorized, err.Error())
				return
			}
			response.AbortWithError(c, http.StatusUnauthorized, "invalid or expired token")
			return
		}

		setClaims(c, claims)
		c.Next()
	}
}

// OptionalAuthWithConfig populates the user context when a valid token is present
func OptionalAuthWithConfig(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		if authHeader := c.GetHeader("Authorization"); authHeader != "" {
			if claims, err := parseAccessToken(authHeader, cfg.JWT.Secret); err == nil {
				setClaims(c, claims)
			}
		}
		c.Next()
	}
}

// RequireRole middleware checks if user has required role
func RequireRole(requiredRole string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userRole, exists := c.Get(ContextUserRole)
		if !exists {
			response.AbortWithError(c, http.StatusUnauthorized, "user role not found in context")
			return
		}

		if role, _ := userRole.(string); role != requiredRole {
			response.AbortWithError(c, http.StatusForbidden, "Insufficient permissions")
			return
		}
		c.Next()
	}
}

// RequireOwner restricts a route to camping spot owners
func RequireOwner() gin.HandlerFunc {
	return RequireRole(string(users.RoleOwner))
}

// GetUserID returns the authenticated user's id from the gin context
func GetUserID(c *gin.Context) (uuid.UUID, bool) {
	raw, exists := c.Get(ContextUserID)
	if !exists {
		return uuid.Nil, false
	}
	str, ok := raw.(string)
	if !ok {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(str)
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

func parseAccessToken(authHeader, secret string) (jwt.MapClaims, error) {
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return nil, errMissingBearer
	}

	token, err := jwt.Parse(parts[1], func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return nil, jwt.ErrSignatureInvalid
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, jwt.ErrInvalidKeyType
	}
	if tokenType, ok := claims["type"]; !ok || tokenType != "access" {
		return nil, errors.New("invalid token type")
	}
	return claims, nil
}

func setClaims(c *gin.Context, claims jwt.MapClaims) {
	c.Set(ContextUserID, claims["user_id"])
	c.Set(ContextUserEmail, claims["email"])
	c.Set(ContextUserRole, claims["role"])
}
