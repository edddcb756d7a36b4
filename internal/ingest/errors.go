package ingest

import "errors"

// Batch-level failures surfaced to the caller. Row-level problems never
// propagate; they become Rejections and the batch continues.
var (
	// ErrNotSpreadsheet means the byte buffer is not a parseable workbook.
	ErrNotSpreadsheet = errors.New("not a parseable spreadsheet")

	// ErrEmptyWorkbook means the workbook parsed but contains zero sheets.
	ErrEmptyWorkbook = errors.New("workbook contains no sheets")

	// ErrNoValidRows means decoding succeeded but every row was rejected.
	ErrNoValidRows = errors.New("no rows survived validation")
)
