package store

import (
	"testing"

	"jobboard-utils/pkg/models"
)

func TestPublishAndSnapshot(t *testing.T) {
	s := NewJobStore()

	jobs, publishedAt := s.Snapshot()
	if len(jobs) != 0 || !publishedAt.IsZero() {
		t.Fatalf("fresh store should be empty, got %d jobs", len(jobs))
	}

	s.Publish([]models.Job{{ID: "1", Title: "Engineer"}, {ID: "2", Title: "Designer"}})

	jobs, publishedAt = s.Snapshot()
	if len(jobs) != 2 || publishedAt.IsZero() {
		t.Fatalf("expected 2 published jobs, got %d", len(jobs))
	}
	if jobs[0].ID != "1" || jobs[1].ID != "2" {
		t.Fatalf("order not preserved: %+v", jobs)
	}

	// Republish replaces the whole snapshot
	s.Publish([]models.Job{{ID: "3"}})
	jobs, _ = s.Snapshot()
	if len(jobs) != 1 || jobs[0].ID != "3" {
		t.Fatalf("republish should replace snapshot: %+v", jobs)
	}
}

func TestGet(t *testing.T) {
	s := NewJobStore()
	s.Publish([]models.Job{{ID: "a"}, {ID: "b"}})

	if job, ok := s.Get("b"); !ok || job.ID != "b" {
		t.Fatalf("expected job b, got %+v ok=%v", job, ok)
	}
	if _, ok := s.Get("missing"); ok {
		t.Fatal("lookup of unknown ID should fail")
	}
}

func TestSnapshotIsolation(t *testing.T) {
	s := NewJobStore()
	source := []models.Job{{ID: "1", Title: "Engineer"}}
	s.Publish(source)

	source[0].Title = "mutated"
	jobs, _ := s.Snapshot()
	if jobs[0].Title != "Engineer" {
		t.Fatal("published snapshot should not alias the caller's slice")
	}

	jobs[0].Title = "also mutated"
	again, _ := s.Snapshot()
	if again[0].Title != "Engineer" {
		t.Fatal("snapshot should not alias the store's slice")
	}
}
