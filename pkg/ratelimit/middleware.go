package ratelimit

import (
	"net"
	"net/http"
	"strconv"
	"strings"

	"github.com/BluezConcepts/API-backend/internal/shared/utils/response"
	"github.com/BluezConcepts/API-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

// Middleware enforces the limiter on every request, keyed by client IP and route class
func Middleware(rateLimiter *RateLimiter) gin.HandlerFunc {
	log := logger.GetDefault()

	return func(c *gin.Context) {
		clientIP := getClientIP(c)
		limitType := getRateLimitType(c.FullPath())

		result, err := rateLimiter.IsAllowed(c.Request.Context(), clientIP, limitType)
		if err != nil {
			log.WithError(err).ErrorContext(c.Request.Context(), "rate limit check failed")
			response.AbortWithError(c, http.StatusInternalServerError, "Rate limit check failed")
			return
		}

		c.Header("X-RateLimit-Limit", strconv.Itoa(result.Limit))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(result.Remaining))
		c.Header("X-RateLimit-Reset", strconv.FormatInt(result.ResetTime, 10))

		if !result.Allowed {
			log.LogRateLimitExceeded(c.Request.Context(), clientIP, c.FullPath())
			response.RespondError(c, http.StatusTooManyRequests, "Rate limit exceeded", map[string]interface{}{
				"limit":      result.Limit,
				"reset_time": result.ResetTime,
			})
			c.Abort()
			return
		}

		c.Next()
	}
}

func getRateLimitType(path string) RateLimitType {
	switch {
	case strings.HasPrefix(path, "/health"),
		strings.HasPrefix(path, "/ping"),
		strings.HasPrefix(path, "/status"),
		strings.HasPrefix(path, "/metrics"):
		return RateLimitTypeHealth

	case strings.Contains(path, "/auth/"),
		strings.Contains(path, "/profile/"):
		return RateLimitTypeAuth

	case strings.Contains(path, "/owner/"):
		return RateLimitTypeOwner

	case strings.Contains(path, "/bookings"):
		return RateLimitTypeBooking

	case strings.Contains(path, "/campingspots"),
		strings.Contains(path, "/tags"),
		strings.Contains(path, "/amenities"):
		return RateLimitTypePublic

	default:
		return RateLimitTypeDefault
	}
}

// getClientIP prefers proxy headers and falls back to the socket address
func getClientIP(c *gin.Context) string {
	if xff := c.GetHeader("X-Forwarded-For"); xff != "" {
		ip := strings.TrimSpace(strings.Split(xff, ",")[0])
		if net.ParseIP(ip) != nil {
			return ip
		}
	}

	if xRealIP := c.GetHeader("X-Real-IP"); xRealIP != "" && net.ParseIP(xRealIP) != nil {
		return xRealIP
	}

	ip, _, err := net.SplitHostPort(c.Request.RemoteAddr)
	if err != nil {
		return c.Request.RemoteAddr
	}
	return ip
}
