package store

import (
	"sync"
	"time"

	"jobboard-utils/pkg/models"
)

// JobStore holds the currently published job list in memory. Each
// successful source ingestion replaces the whole snapshot; nothing is
// persisted across restarts.
type JobStore struct {
	mu          sync.RWMutex
	jobs        []models.Job
	publishedAt time.Time
}

// NewJobStore creates an empty job store
func NewJobStore() *JobStore {
	return &JobStore{}
}

// Publish replaces the current snapshot with a fresh job list
func (s *JobStore) Publish(jobs []models.Job) {
	copied := make([]models.Job, len(jobs))
	copy(copied, jobs)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.jobs = copied
	s.publishedAt = time.Now()
}

// Snapshot returns the published jobs in source order
func (s *JobStore) Snapshot() ([]models.Job, time.Time) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	jobs := make([]models.Job, len(s.jobs))
	copy(jobs, s.jobs)
	return jobs, s.publishedAt
}

// Get looks up one job by ID
func (s *JobStore) Get(id string) (models.Job, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, job := range s.jobs {
		if job.ID == id {
			return job, true
		}
	}
	return models.Job{}, false
}

// Len returns the number of published jobs
func (s *JobStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.jobs)
}
