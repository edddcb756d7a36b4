package models

// ListJobsRequest captures the query parameters accepted by the job listing endpoint
type ListJobsRequest struct {
	Type     string `query:"type" validate:"omitempty,max=64"`
	Company  string `query:"company" validate:"omitempty,max=128"`
	Location string `query:"location" validate:"omitempty,max=128"`
}
