package models

import "time"

// IngestReport summarizes one upload parse: how many rows made it through
// validation and why the rest were dropped. The parsed jobs are echoed back
// for preview; nothing is stored server-side.
type IngestReport struct {
	Success       bool        `json:"success"`
	SourceRows    int         `json:"source_rows"`
	AcceptedCount int         `json:"accepted_count"`
	RejectedCount int         `json:"rejected_count"`
	Jobs          []Job       `json:"jobs"`
	Rejections    []Rejection `json:"rejections,omitempty"`
	RequestID     string      `json:"request_id"`
	Timestamp     time.Time   `json:"timestamp"`
}

// JobListResponse is the payload served to the browsing UI
type JobListResponse struct {
	Jobs        []Job     `json:"jobs"`
	Total       int       `json:"total"`
	PublishedAt time.Time `json:"published_at"`
}

// RefreshResponse reports the outcome of a source refresh
type RefreshResponse struct {
	Success       bool      `json:"success"`
	AcceptedCount int       `json:"accepted_count"`
	RejectedCount int       `json:"rejected_count"`
	RequestID     string    `json:"request_id"`
	Timestamp     time.Time `json:"timestamp"`
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status    string            `json:"status"`
	Timestamp time.Time         `json:"timestamp"`
	Version   string            `json:"version"`
	Uptime    time.Duration     `json:"uptime"`
	Checks    map[string]string `json:"checks,omitempty"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error     string    `json:"error"`
	Message   string    `json:"message"`
	RequestID string    `json:"request_id"`
	Timestamp time.Time `json:"timestamp"`
}
