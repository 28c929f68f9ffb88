// api/routes/router.go
package routes

import (
	"net/http"
	"time"

	"github.com/BluezConcepts/API-backend/internal/analytics"
	"github.com/BluezConcepts/API-backend/internal/auth"
	"github.com/BluezConcepts/API-backend/internal/bookings"
	"github.com/BluezConcepts/API-backend/internal/shared/config"
	"github.com/BluezConcepts/API-backend/internal/shared/database"
	"github.com/BluezConcepts/API-backend/internal/spots"
	"github.com/BluezConcepts/API-backend/internal/tags"
	"github.com/BluezConcepts/API-backend/pkg/cache"

	"github.com/gin-gonic/gin"
)

const serviceName = "campspots-api"

// Router holds all route dependencies
type Router struct {
	config    *config.Config
	db        *database.DB
	cache     cache.Service
	publisher bookings.EventPublisher
	metrics   bookings.Recorder

	tagService tags.Service
	spotRepo   spots.Repository
}

// NewRouter creates a new router instance. publisher and metrics may be nil.
func NewRouter(cfg *config.Config, db *database.DB, publisher bookings.EventPublisher, metrics bookings.Recorder) *Router {
	return &Router{
		config:    cfg,
		db:        db,
		cache:     cache.NewService(db.Redis),
		publisher: publisher,
		metrics:   metrics,
	}
}

// SetupRoutes configures all application routes
func (r *Router) SetupRoutes(engine *gin.Engine) {
	r.setupHealthRoutes(engine)

	api := engine.Group(r.config.GetAPIBasePath())
	{
		r.setupAuthRoutes(api)

		// tags before spots, spots before bookings
		r.setupTagRoutes(api)
		r.setupSpotRoutes(api)
		r.setupBookingRoutes(api)
		r.setupAnalyticsRoutes(api)
	}
}

// setupHealthRoutes sets up health check and system status routes
func (r *Router) setupHealthRoutes(engine *gin.Engine) {
	engine.GET("/health", func(c *gin.Context) {
		if err := r.db.HealthCheck(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":    "unhealthy",
				"error":     err.Error(),
				"timestamp": time.Now(),
				"service":   serviceName,
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"timestamp": time.Now(),
			"service":   serviceName,
		})
	})

	engine.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
			"version": r.config.APIVersion,
		})
	})

	engine.GET("/status", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":      "operational",
			"api_version": r.config.APIVersion,
			"kafka":       r.config.Kafka.Enabled,
			"timestamp":   time.Now(),
		})
	})
}

func (r *Router) setupAuthRoutes(rg *gin.RouterGroup) {
	authRepo := auth.NewRepository(r.db.PostgreSQL)
	authService := auth.NewService(authRepo, r.cache, r.config)
	authController := auth.NewController(authService)

	auth.NewRouter(authController, r.config).SetupRoutes(rg)
}

func (r *Router) setupTagRoutes(rg *gin.RouterGroup) {
	tagRepo := tags.NewRepository(r.db.PostgreSQL)
	r.tagService = tags.NewService(tagRepo, r.cache)

	tags.SetupRoutes(rg, tags.NewController(r.tagService))
}

func (r *Router) setupSpotRoutes(rg *gin.RouterGroup) {
	r.spotRepo = spots.NewRepository(r.db.PostgreSQL)
	readModel := spots.NewReadModel(r.db.Reads)

	spotService := spots.NewService(r.spotRepo, readModel, r.tagService, r.cache, r.config.Booking)
	spotController := spots.NewController(spotService)

	spots.NewRouter(spotController, r.config).SetupRoutes(rg)
}

func (r *Router) setupBookingRoutes(rg *gin.RouterGroup) {
	bookingRepo := bookings.NewRepository(r.db.PostgreSQL)
	catalog := spots.NewCatalogAdapter(r.spotRepo)

	bookingService := bookings.NewService(bookingRepo, catalog, r.publisher, r.metrics, r.config.Booking.Currency)
	bookingController := bookings.NewController(bookingService)

	bookings.NewRouter(bookingController, r.config).SetupRoutes(rg)
}

func (r *Router) setupAnalyticsRoutes(rg *gin.RouterGroup) {
	analyticsRepo := analytics.NewRepository(r.db.Reads)
	analyticsService := analytics.NewService(analyticsRepo, r.cache, r.config.Booking.Currency)

	analytics.SetupRoutes(rg, analytics.NewController(analyticsService), r.config)
}
