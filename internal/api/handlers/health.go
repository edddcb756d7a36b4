package handlers

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"jobboard-utils/internal/store"
	"jobboard-utils/pkg/models"
)

var startTime = time.Now()

// HealthHandler handles health check requests
func HealthHandler(c echo.Context) error {
	response := models.HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now(),
		Version:   "1.0.0",
		Uptime:    time.Since(startTime),
		Checks: map[string]string{
			"api": "ok",
		},
	}

	return c.JSON(http.StatusOK, response)
}

// ReadinessHandler reports ready once a job list has been published
func ReadinessHandler(jobStore *store.JobStore) echo.HandlerFunc {
	return func(c echo.Context) error {
		status := "ready"
		jobsCheck := "ok"
		code := http.StatusOK

		if jobStore.Len() == 0 {
			status = "not_ready"
			jobsCheck = "no jobs published"
			code = http.StatusServiceUnavailable
		}

		return c.JSON(code, models.HealthResponse{
			Status:    status,
			Timestamp: time.Now(),
			Version:   "1.0.0",
			Uptime:    time.Since(startTime),
			Checks: map[string]string{
				"api":  "ok",
				"jobs": jobsCheck,
			},
		})
	}
}

// LivenessHandler handles liveness probe requests
func LivenessHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, models.HealthResponse{
		Status:    "alive",
		Timestamp: time.Now(),
		Version:   "1.0.0",
		Uptime:    time.Since(startTime),
	})
}

// StatusHandler provides detailed service status
func StatusHandler(jobStore *store.JobStore) echo.HandlerFunc {
	return func(c echo.Context) error {
		_, publishedAt := jobStore.Snapshot()

		checks := map[string]string{
			"api":  "operational",
			"jobs": "operational",
		}
		if jobStore.Len() == 0 {
			checks["jobs"] = "empty"
		} else {
			checks["last_published"] = publishedAt.Format(time.RFC3339)
		}

		return c.JSON(http.StatusOK, models.HealthResponse{
			Status:    "operational",
			Timestamp: time.Now(),
			Version:   "1.0.0",
			Uptime:    time.Since(startTime),
			Checks:    checks,
		})
	}
}
