package handlers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"jobboard-utils/internal/diagnostics"
	"jobboard-utils/pkg/utils"
)

// RecentRejectionsHandler serves the capped rejection history for
// operators debugging a spreadsheet that keeps losing rows
func RecentRejectionsHandler(recorder *diagnostics.RedisRecorder) echo.HandlerFunc {
	return func(c echo.Context) error {
		limit := 50
		if raw := c.QueryParam("limit"); raw != "" {
			if n, err := strconv.Atoi(raw); err == nil && n > 0 {
				limit = n
			}
		}

		rejections, err := recorder.Recent(c.Request().Context(), limit)
		if err != nil {
			return errorJSON(c, "diagnostics_unavailable",
				utils.NewInternalServerError("Failed to read rejection history"))
		}

		return c.JSON(http.StatusOK, map[string]interface{}{
			"rejections": rejections,
			"total":      len(rejections),
		})
	}
}
