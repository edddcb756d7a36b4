package ingest

import (
	"context"

	"jobboard-utils/internal/logging"
	"jobboard-utils/pkg/models"
)

// Result is the outcome of one ingestion pass
type Result struct {
	Jobs       []models.Job
	Rejections []models.Rejection
	SourceRows int
}

// Pipeline runs the decode-validate pass over a spreadsheet buffer.
// Each run is independent; the pipeline holds no per-run state.
type Pipeline struct {
	validator *Validator
	sinks     []RejectionSink
	logger    logging.Logger
}

// NewPipeline creates an ingestion pipeline reporting rejections to the given sinks
func NewPipeline(logger logging.Logger, sinks ...RejectionSink) *Pipeline {
	return &Pipeline{
		validator: NewValidator(),
		sinks:     sinks,
		logger:    logger,
	}
}

// Run decodes the buffer and validates every row, preserving source order.
// Rejected rows are reported to the sinks and dropped. Returns
// ErrNotSpreadsheet or ErrEmptyWorkbook when decoding fails, and
// ErrNoValidRows when decoding succeeded but zero rows survived.
func (p *Pipeline) Run(ctx context.Context, data []byte) (*Result, error) {
	rows, err := Decode(data)
	if err != nil {
		return nil, err
	}

	result := &Result{SourceRows: len(rows)}
	for i, row := range rows {
		outcome := p.validator.ValidateRow(row, i+1)
		if outcome.Accepted() {
			result.Jobs = append(result.Jobs, *outcome.Job)
			continue
		}

		result.Rejections = append(result.Rejections, *outcome.Rejection)
		for _, sink := range p.sinks {
			sink.Record(ctx, *outcome.Rejection)
		}
	}

	p.logger.Info("Ingestion pass completed", map[string]interface{}{
		"source_rows": result.SourceRows,
		"accepted":    len(result.Jobs),
		"rejected":    len(result.Rejections),
	})

	if len(result.Jobs) == 0 {
		return nil, ErrNoValidRows
	}

	return result, nil
}
