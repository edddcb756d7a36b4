package ingest

import "strings"

// Canonical column names expected by the validator. Earlier spreadsheets in
// circulation used capitalized variants (ID, Title, SalaryMin, ...), so
// headers are matched case-insensitively and folded onto these names.
const (
	colID             = "id"
	colTitle          = "title"
	colCompany        = "company"
	colLocation       = "location"
	colType           = "type"
	colDescription    = "description"
	colRequirements   = "requirements"
	colSalaryMin      = "salaryMin"
	colSalaryMax      = "salaryMax"
	colSalaryCurrency = "salaryCurrency"
	colPostedDate     = "postedDate"
	colApplicationURL = "applicationUrl"
	colCompanyLogo    = "companyLogo"
)

var canonicalColumns = []string{
	colID, colTitle, colCompany, colLocation, colType, colDescription,
	colRequirements, colSalaryMin, colSalaryMax, colSalaryCurrency,
	colPostedDate, colApplicationURL, colCompanyLogo,
}

var columnsByFold = func() map[string]string {
	m := make(map[string]string, len(canonicalColumns))
	for _, name := range canonicalColumns {
		m[strings.ToLower(name)] = name
	}
	return m
}()

// NormalizeHeader maps a header cell onto its canonical column name.
// Unknown headers are returned trimmed but otherwise verbatim, so extra
// columns survive into the RawRow without being mistaken for known fields.
func NormalizeHeader(header string) string {
	trimmed := strings.TrimSpace(header)
	if canonical, ok := columnsByFold[strings.ToLower(trimmed)]; ok {
		return canonical
	}
	return trimmed
}
