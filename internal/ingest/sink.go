package ingest

import (
	"context"

	"jobboard-utils/internal/logging"
	"jobboard-utils/pkg/models"
)

// RejectionSink receives rejected rows for diagnostics. Sinks must not
// fail the batch; recording errors are their own problem to report.
type RejectionSink interface {
	Record(ctx context.Context, rejection models.Rejection)
}

// LoggerSink reports rejections through the structured logger
type LoggerSink struct {
	logger logging.Logger
}

// NewLoggerSink creates a logger-backed rejection sink
func NewLoggerSink(logger logging.Logger) *LoggerSink {
	return &LoggerSink{logger: logger}
}

// Record logs one rejection with its row context
func (s *LoggerSink) Record(ctx context.Context, rejection models.Rejection) {
	s.logger.WithContext(ctx).Warn("Row rejected during ingestion", map[string]interface{}{
		"row_number": rejection.RowNumber,
		"reason":     rejection.Reason,
		"row_id":     rejection.Row["id"],
	})
}
