package ingest

import "testing"

func TestNormalizeHeader(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"id", "id"},
		{"ID", "id"},
		{"Title", "title"},
		{"SalaryMin", "salaryMin"},
		{"salarymin", "salaryMin"},
		{"ApplicationUrl", "applicationUrl"},
		{"PostedDate", "postedDate"},
		{" company ", "company"},
		{"Notes", "Notes"}, // unknown headers survive verbatim
	}

	for _, tt := range tests {
		if got := NormalizeHeader(tt.in); got != tt.want {
			t.Errorf("NormalizeHeader(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
