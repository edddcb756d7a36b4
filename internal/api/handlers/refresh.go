package handlers

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"

	"jobboard-utils/internal/ingest"
	"jobboard-utils/internal/logging"
	"jobboard-utils/internal/source"
	"jobboard-utils/internal/store"
	"jobboard-utils/pkg/models"
	"jobboard-utils/pkg/utils"
)

// RefreshHandler re-fetches the canonical spreadsheet and republishes the
// job list. No retries: a failed fetch or parse is reported once and the
// next refresh request starts over.
func RefreshHandler(fetcher *source.Fetcher, pipeline *ingest.Pipeline, jobStore *store.JobStore, limiter *rate.Limiter) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := requestID(c)
		logger := logging.GetGlobalLogger().WithField("request_id", requestID)

		if !limiter.Allow() {
			return errorJSON(c, "refresh_rate_limited", &utils.CustomError{
				Code:    http.StatusTooManyRequests,
				Message: "Too many refresh requests, try again later",
			})
		}

		logger.Info("Source refresh requested", map[string]interface{}{"url": fetcher.URL()})

		data, err := fetcher.Fetch(c.Request().Context())
		if err != nil {
			logger.Error("Source fetch failed", map[string]interface{}{"error": err.Error()})
			return errorJSON(c, "source_unavailable", utils.NewSourceUnavailableError(err.Error()))
		}

		result, err := pipeline.Run(c.Request().Context(), data)
		if err != nil {
			logger.Error("Source ingestion failed", map[string]interface{}{"error": err.Error()})
			return errorJSON(c, ingestErrorCode(err), utils.NewIngestError(err.Error()))
		}

		jobStore.Publish(result.Jobs)

		logger.Info("Job list republished", map[string]interface{}{
			"accepted": len(result.Jobs),
			"rejected": len(result.Rejections),
		})

		return c.JSON(http.StatusOK, models.RefreshResponse{
			Success:       true,
			AcceptedCount: len(result.Jobs),
			RejectedCount: len(result.Rejections),
			RequestID:     requestID,
			Timestamp:     time.Now(),
		})
	}
}
