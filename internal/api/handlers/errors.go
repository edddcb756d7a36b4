package handlers

import (
	"errors"
	"time"

	"github.com/labstack/echo/v4"

	"jobboard-utils/internal/ingest"
	"jobboard-utils/pkg/models"
	"jobboard-utils/pkg/utils"
)

// errorJSON renders a CustomError as the standard error envelope. The code
// is the machine-readable slug the UI switches on; the CustomError carries
// the HTTP status and human-readable message.
func errorJSON(c echo.Context, code string, cerr *utils.CustomError) error {
	return c.JSON(cerr.Code, models.ErrorResponse{
		Error:     code,
		Message:   cerr.Error(),
		RequestID: requestID(c),
		Timestamp: time.Now(),
	})
}

// ingestErrorCode maps the ingest error taxonomy onto response error codes
func ingestErrorCode(err error) string {
	switch {
	case errors.Is(err, ingest.ErrNotSpreadsheet):
		return "decode_failed"
	case errors.Is(err, ingest.ErrEmptyWorkbook):
		return "empty_workbook"
	case errors.Is(err, ingest.ErrNoValidRows):
		return "no_valid_rows"
	default:
		return "ingest_failed"
	}
}

// requestID returns the request ID set by the validation middleware,
// minting one for handlers invoked outside the middleware chain.
func requestID(c echo.Context) string {
	if id, ok := c.Get("request_id").(string); ok && id != "" {
		return id
	}
	return utils.GenerateRequestID()
}
