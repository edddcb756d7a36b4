package ingest

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"jobboard-utils/pkg/models"
)

// Decode converts spreadsheet bytes into the ordered raw rows of the first
// sheet, keyed by normalized header names. Row content is not validated
// here; that is the validator's job.
func Decode(data []byte) ([]models.RawRow, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotSpreadsheet, err)
	}
	defer f.Close()

	sheet, err := firstSheet(f.GetSheetList())
	if err != nil {
		return nil, err
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotSpreadsheet, err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	headers := make([]string, len(rows[0]))
	for i, cell := range rows[0] {
		headers[i] = NormalizeHeader(cell)
	}

	var rawRows []models.RawRow
	for _, row := range rows[1:] {
		if !populated(row) {
			continue
		}
		raw := make(models.RawRow, len(headers))
		for i, header := range headers {
			if header == "" {
				continue
			}
			if i < len(row) {
				raw[header] = row[i]
			} else {
				raw[header] = ""
			}
		}
		rawRows = append(rawRows, raw)
	}

	return rawRows, nil
}

// firstSheet picks the workbook's first sheet by position.
func firstSheet(sheets []string) (string, error) {
	if len(sheets) == 0 {
		return "", ErrEmptyWorkbook
	}
	return sheets[0], nil
}

func populated(row []string) bool {
	for _, cell := range row {
		if cell != "" {
			return true
		}
	}
	return false
}
