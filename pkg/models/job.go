package models

// Job type values the board understands. The Type field is not restricted
// to this set; unknown values from the spreadsheet are carried verbatim.
const (
	JobTypeFullTime  = "FULL_TIME"
	JobTypePartTime  = "PART_TIME"
	JobTypeContract  = "CONTRACT"
	JobTypeFreelance = "FREELANCE"
)

// DefaultCompanyLogo is used when a posting carries no logo URL.
const DefaultCompanyLogo = "https://via.placeholder.com/100x100?text=Logo"

// RawRow is one spreadsheet data row keyed by header name, prior to any
// validation. Cell values arrive as whatever text the sheet yields.
type RawRow map[string]string

// Job represents one validated job posting as served to the board UI
type Job struct {
	ID             string   `json:"id"`
	Title          string   `json:"title"`
	Company        string   `json:"company"`
	Location       string   `json:"location"`
	Type           string   `json:"type"`
	Description    string   `json:"description"`
	Requirements   []string `json:"requirements"`
	Salary         Salary   `json:"salary"`
	PostedDate     string   `json:"postedDate"`
	ApplicationURL string   `json:"applicationUrl"`
	CompanyLogo    string   `json:"companyLogo"`
}

// Salary represents the salary information for a job posting
type Salary struct {
	Min      int    `json:"min"`
	Max      int    `json:"max"`
	Currency string `json:"currency"`
}

// Rejection records a row that failed validation, kept for diagnostics only.
// RowNumber is the 1-based data row index, header row excluded.
type Rejection struct {
	RowNumber int    `json:"row_number"`
	Reason    string `json:"reason"`
	Row       RawRow `json:"row"`
}
