package middleware

import (
	"net/http"
	"time"

	"jobboard-utils/pkg/models"
	"jobboard-utils/pkg/utils"

	"github.com/labstack/echo/v4"
)

// RequestValidation middleware tags every request with an ID and rejects
// oversized uploads before they are read.
func RequestValidation(maxUploadSize int64) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			requestID := utils.GenerateRequestID()
			c.Set("request_id", requestID)
			c.Response().Header().Set("X-Request-ID", requestID)

			if c.Request().Method == http.MethodPost {
				contentLength := c.Request().ContentLength
				if contentLength > maxUploadSize {
					return c.JSON(http.StatusRequestEntityTooLarge, models.ErrorResponse{
						Error:     "request_too_large",
						Message:   "Request body too large",
						RequestID: requestID,
						Timestamp: time.Now(),
					})
				}
			}

			return next(c)
		}
	}
}
