package handlers

import (
	"io"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"jobboard-utils/internal/config"
	"jobboard-utils/internal/ingest"
	"jobboard-utils/internal/logging"
	"jobboard-utils/pkg/models"
	"jobboard-utils/pkg/utils"
)

// UploadHandler parses an uploaded spreadsheet and returns an ingest
// report. The parsed jobs are echoed back for preview only; nothing is
// stored server-side.
func UploadHandler(cfg *config.Config, pipeline *ingest.Pipeline) echo.HandlerFunc {
	return func(c echo.Context) error {
		startTime := time.Now()
		requestID := requestID(c)
		logger := logging.GetGlobalLogger().WithField("request_id", requestID)

		logger.Info("Spreadsheet upload received")

		fileHeader, err := c.FormFile("file")
		if err != nil {
			logger.Warn("Upload request missing file part", map[string]interface{}{"error": err.Error()})
			return errorJSON(c, "invalid_request",
				utils.NewBadRequestError("Expected a spreadsheet file in the \"file\" form field"))
		}

		// Extension hint only; the decoder decides whether the content parses
		ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
		if ext != ".xlsx" && ext != ".xls" {
			return errorJSON(c, "unsupported_file_type",
				utils.NewValidationError("only .xlsx and .xls files are accepted"))
		}

		if fileHeader.Size > cfg.Ingest.MaxUploadSize {
			return errorJSON(c, "file_too_large", &utils.CustomError{
				Code:    http.StatusRequestEntityTooLarge,
				Message: "Uploaded spreadsheet exceeds the size limit",
			})
		}

		file, err := fileHeader.Open()
		if err != nil {
			logger.Error("Failed to open uploaded file", map[string]interface{}{"error": err.Error()})
			return errorJSON(c, "upload_read_failed",
				utils.NewInternalServerError("Failed to read the uploaded file"))
		}
		defer file.Close()

		data, err := io.ReadAll(file)
		if err != nil {
			logger.Error("Failed to read uploaded file", map[string]interface{}{"error": err.Error()})
			return errorJSON(c, "upload_read_failed",
				utils.NewInternalServerError("Failed to read the uploaded file"))
		}

		result, err := pipeline.Run(c.Request().Context(), data)
		if err != nil {
			logger.Warn("Upload ingestion failed", map[string]interface{}{"error": err.Error()})
			return errorJSON(c, ingestErrorCode(err), utils.NewIngestError(err.Error()))
		}

		rejections := result.Rejections
		if len(rejections) > cfg.Ingest.MaxRejections {
			rejections = rejections[:cfg.Ingest.MaxRejections]
		}

		logger.WithFields(map[string]interface{}{
			"source_rows":     result.SourceRows,
			"accepted":        len(result.Jobs),
			"rejected":        len(result.Rejections),
			"processing_time": utils.FormatDuration(time.Since(startTime)),
		}).Info("Upload ingestion completed")

		return c.JSON(http.StatusOK, models.IngestReport{
			Success:       true,
			SourceRows:    result.SourceRows,
			AcceptedCount: len(result.Jobs),
			RejectedCount: len(result.Rejections),
			Jobs:          result.Jobs,
			Rejections:    rejections,
			RequestID:     requestID,
			Timestamp:     time.Now(),
		})
	}
}
