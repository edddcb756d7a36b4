package ingest

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"jobboard-utils/pkg/models"
	"jobboard-utils/pkg/utils"
)

// Outcome is the result of validating one raw row: exactly one of Job or
// Rejection is set.
type Outcome struct {
	Job       *models.Job
	Rejection *models.Rejection
}

// Accepted reports whether the row produced a Job
func (o Outcome) Accepted() bool {
	return o.Job != nil
}

// Validator normalizes raw spreadsheet rows into Job records
type Validator struct {
	now func() time.Time
}

// NewValidator creates a validator that stamps fallback dates with the wall clock
func NewValidator() *Validator {
	return &Validator{now: time.Now}
}

// ValidateRow converts one raw row into a Job or a Rejection. rowNumber is
// the 1-based data row index used in diagnostics. A panic during coercion
// is recovered and reported as a rejection so one malformed row never
// aborts the batch.
func (v *Validator) ValidateRow(row models.RawRow, rowNumber int) (outcome Outcome) {
	defer func() {
		if r := recover(); r != nil {
			outcome = reject(row, rowNumber, fmt.Sprintf("unexpected row shape: %v", r))
		}
	}()

	for _, required := range []string{colID, colTitle, colCompany} {
		if row[required] == "" {
			return reject(row, rowNumber, fmt.Sprintf("missing required field %q", required))
		}
	}

	job := &models.Job{
		ID:             row[colID],
		Title:          row[colTitle],
		Company:        row[colCompany],
		Location:       row[colLocation],
		Type:           jobType(row[colType]),
		Description:    row[colDescription],
		Requirements:   splitRequirements(row[colRequirements]),
		PostedDate:     v.postedDate(row[colPostedDate]),
		ApplicationURL: utils.GetStringOrDefault(row[colApplicationURL], "#"),
		CompanyLogo:    utils.GetStringOrDefault(row[colCompanyLogo], models.DefaultCompanyLogo),
		Salary: models.Salary{
			Min:      salaryAmount(row[colSalaryMin]),
			Max:      salaryAmount(row[colSalaryMax]),
			Currency: utils.GetStringOrDefault(row[colSalaryCurrency], "USD"),
		},
	}

	return Outcome{Job: job}
}

func reject(row models.RawRow, rowNumber int, reason string) Outcome {
	return Outcome{Rejection: &models.Rejection{
		RowNumber: rowNumber,
		Reason:    reason,
		Row:       row,
	}}
}

// jobType carries the cell value verbatim, defaulting absent values to
// FULL_TIME. Values outside the known set are intentionally not rejected.
func jobType(value string) string {
	if value == "" {
		return models.JobTypeFullTime
	}
	return value
}

// splitRequirements splits a multi-line requirements cell into its lines,
// dropping empty segments and preserving order.
func splitRequirements(value string) []string {
	var requirements []string
	for _, line := range strings.Split(value, "\n") {
		line = strings.TrimRight(line, "\r")
		if line != "" {
			requirements = append(requirements, line)
		}
	}
	return requirements
}

// postedDate accepts a cell only when it parses as a calendar date,
// otherwise it falls back to today in YYYY-MM-DD form.
func (v *Validator) postedDate(value string) string {
	if value != "" {
		if _, err := time.Parse("2006-01-02", value); err == nil {
			return value
		}
		if t, err := time.Parse(time.RFC3339, value); err == nil {
			return t.Format("2006-01-02")
		}
	}
	return v.now().Format("2006-01-02")
}

// salaryAmount parses a base-10 integer; anything unparseable yields 0.
func salaryAmount(value string) int {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0
	}
	return n
}
