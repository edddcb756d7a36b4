package routes

import (
	"time"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"

	"jobboard-utils/internal/api/handlers"
	"jobboard-utils/internal/api/middleware"
	"jobboard-utils/internal/config"
	"jobboard-utils/internal/diagnostics"
	"jobboard-utils/internal/ingest"
	"jobboard-utils/internal/source"
	"jobboard-utils/internal/store"
)

// SetupRoutes configures all API routes
func SetupRoutes(e *echo.Echo, cfg *config.Config, jobStore *store.JobStore, pipeline *ingest.Pipeline, fetcher *source.Fetcher, recorder *diagnostics.RedisRecorder) {
	// Global middleware
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.Recover())
	e.Use(middleware.CORSConfig())
	e.Use(middleware.RequestValidation(cfg.Ingest.MaxUploadSize))
	e.Use(middleware.TimeoutConfig(cfg.Server.ReadTimeout))

	// Health check routes
	health := e.Group("/health")
	{
		health.GET("", handlers.HealthHandler)
		health.GET("/ready", handlers.ReadinessHandler(jobStore))
		health.GET("/live", handlers.LivenessHandler)
	}

	// Status route
	e.GET("/status", handlers.StatusHandler(jobStore))

	// Manual refreshes are rate limited; the limiter state lives for the
	// life of the route table.
	refreshLimiter := rate.NewLimiter(rate.Every(time.Hour/time.Duration(max(cfg.Source.RefreshPerHour, 1))), 1)

	// API v1 routes
	v1 := e.Group("/api/v1")
	{
		jobs := v1.Group("/jobs")
		{
			jobs.GET("", handlers.ListJobsHandler(jobStore))
			jobs.GET("/:id", handlers.GetJobHandler(jobStore))
			jobs.POST("/upload", handlers.UploadHandler(cfg, pipeline))
			jobs.POST("/refresh", handlers.RefreshHandler(fetcher, pipeline, jobStore, refreshLimiter))
		}

		if recorder != nil {
			diag := v1.Group("/diagnostics")
			{
				diag.GET("/rejections", handlers.RecentRejectionsHandler(recorder))
			}
		}
	}

	// Root route
	e.GET("/", func(c echo.Context) error {
		return c.JSON(200, map[string]string{
			"service": "Job Board Ingestion Service",
			"version": "1.0.0",
			"status":  "running",
		})
	})
}
