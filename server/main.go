package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"syscall"
	"time"

	"github.com/BluezConcepts/API-backend/api/routes"
	_ "github.com/BluezConcepts/API-backend/docs"
	"github.com/BluezConcepts/API-backend/internal/auth"
	"github.com/BluezConcepts/API-backend/internal/notifications"
	"github.com/BluezConcepts/API-backend/internal/shared/config"
	"github.com/BluezConcepts/API-backend/internal/shared/database"
	"github.com/BluezConcepts/API-backend/internal/shared/utils/response"
	"github.com/BluezConcepts/API-backend/pkg/logger"
	"github.com/BluezConcepts/API-backend/pkg/metrics"
	"github.com/BluezConcepts/API-backend/pkg/ratelimit"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/oklog/run"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	appLogger := logger.GetDefault()

	if err := godotenv.Load(); err != nil {
		if os.Getenv("GIN_MODE") == "release" || os.Getenv("DOCKER_CONTAINER") == "true" {
			appLogger.Info("Production environment: using container environment variables")
		} else {
			appLogger.Info("No .env file found, using system environment variables")
		}
	} else {
		appLogger.Info("Development environment: loaded .env file")
	}

	cfg := config.Load()
	gin.SetMode(cfg.GinMode)

	// rebuild after the mode is known so the handler format matches
	appLogger = logger.New()
	logger.SetDefault(appLogger)

	initCtx, cancelInit := context.WithTimeout(context.Background(), 30*time.Second)
	db, err := database.InitDB(initCtx, cfg)
	cancelInit()
	if err != nil {
		appLogger.Error("failed to initialize databases", slog.Any("error", err))
		os.Exit(1)
	}
	defer db.Close()

	m := metrics.New()

	publisher, err := notifications.NewPublisher(cfg.Kafka, auth.NewUserServiceAdapter(auth.NewRepository(db.PostgreSQL)))
	if err != nil {
		appLogger.Error("Failed to create booking event producer, events will not be published", slog.Any("error", err))
		publisher = notifications.NoopPublisher{}
	}
	defer func() {
		if err := publisher.Close(); err != nil {
			appLogger.Error("Error closing booking event producer", slog.Any("error", err))
		}
	}()

	var rateLimiter *ratelimit.RateLimiter
	if cfg.RateLimit.Enabled {
		rateLimiter = ratelimit.NewRateLimiter(db.Redis, &ratelimit.Config{
			Enabled:         cfg.RateLimit.Enabled,
			WindowDuration:  cfg.RateLimit.WindowDuration,
			DefaultRequests: cfg.RateLimit.DefaultRequests,
			PublicRequests:  cfg.RateLimit.PublicRequests,
			AuthRequests:    cfg.RateLimit.AuthRequests,
			BookingRequests: cfg.RateLimit.BookingRequests,
			OwnerRequests:   cfg.RateLimit.OwnerRequests,
			HealthRequests:  cfg.RateLimit.HealthRequests,
			WhitelistedIPs:  cfg.RateLimit.WhitelistedIPs,
		})
		appLogger.Info("Rate limiter initialized",
			slog.Duration("window", cfg.RateLimit.WindowDuration),
			slog.Int("default_requests", cfg.RateLimit.DefaultRequests),
		)
	} else {
		appLogger.Info("Rate limiting disabled")
	}

	router := setupRouter(cfg, db, m, publisher, rateLimiter)

	srv := &http.Server{
		Addr:           cfg.GetServerAddress(),
		Handler:        router,
		ReadTimeout:    cfg.ReadTimeout,
		WriteTimeout:   cfg.WriteTimeout,
		IdleTimeout:    cfg.IdleTimeout,
		MaxHeaderBytes: cfg.MaxHeaderBytes,
	}

	g := &run.Group{}
	g.Add(func() error {
		appLogger.Info("Server running",
			slog.String("address", cfg.GetServerAddress()),
			slog.String("health_check", fmt.Sprintf("http://localhost:%s/health", cfg.Port)),
			slog.String("api_base", cfg.GetAPIBasePath()),
			slog.String("version", Version),
			slog.String("commit", GitCommit),
			slog.Bool("kafka", cfg.Kafka.Enabled),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}, func(error) {
		ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			appLogger.Error("Forced shutdown", slog.Any("error", err))
		}
	})

	if cfg.Kafka.ConsumerEnabled {
		consumer, err := notifications.NewBookingEventConsumer(
			notifications.DefaultConsumerConfig(cfg.Kafka),
			notifications.NewLogNotifier(appLogger),
		)
		if err != nil {
			appLogger.Error("Failed to start notification consumer", slog.Any("error", err))
		} else {
			consumerCtx, cancelConsumer := context.WithCancel(context.Background())
			g.Add(func() error {
				appLogger.Info("Notification consumer started", slog.String("group", cfg.Kafka.GroupID))
				return consumer.Run(consumerCtx)
			}, func(error) {
				cancelConsumer()
				if err := consumer.Close(); err != nil {
					appLogger.Error("Error closing notification consumer", slog.Any("error", err))
				}
			})
		}
	}

	g.Add(run.SignalHandler(context.Background(), syscall.SIGINT, syscall.SIGTERM))

	err = g.Run()
	appLogger.Info("Server exited", slog.Any("reason", err))
}

func setupRouter(cfg *config.Config, db *database.DB, m *metrics.Metrics, publisher notifications.Publisher, rateLimiter *ratelimit.RateLimiter) *gin.Engine {
	engine := gin.New()
	appLogger := logger.GetDefault()

	engine.Use(
		RequestLoggerMiddleware(appLogger),
		m.Middleware(),
		gin.CustomRecovery(func(c *gin.Context, recovered any) {
			m.PanicRecovered()
			appLogger.ErrorContext(c.Request.Context(), "panic recovered",
				slog.Any("panic", recovered), slog.String("path", c.Request.URL.Path))
			response.AbortWithError(c, http.StatusInternalServerError, "Internal server error")
		}),
	)

	engine.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORS.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "X-RateLimit-Limit", "X-RateLimit-Remaining", "X-RateLimit-Reset"},
		AllowCredentials: true,
		MaxAge:           cfg.CORS.MaxAge,
	}))

	if rateLimiter != nil {
		engine.Use(ratelimit.Middleware(rateLimiter))
	}

	engine.GET("/metrics", gin.WrapH(m.Handler()))
	if !cfg.IsProduction() {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	routes.NewRouter(cfg, db, publisher, m).SetupRoutes(engine)

	return engine
}

func RequestLoggerMiddleware(l *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		l.LogHTTPRequest(c, time.Since(start))
	}
}
