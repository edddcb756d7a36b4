package logging

import (
	"sync"
	"testing"

	"jobboard-utils/internal/logging/types"
)

// captureAdapter collects entries for assertions
type captureAdapter struct {
	mu      sync.Mutex
	entries []*types.LogEntry
}

func (a *captureAdapter) Write(entry *types.LogEntry) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.entries = append(a.entries, entry)
	return nil
}

func (a *captureAdapter) Close() error { return nil }
func (a *captureAdapter) Name() string { return "capture" }

func (a *captureAdapter) count() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.entries)
}

func TestLogLevelFiltering(t *testing.T) {
	logger := NewMultiLogger()
	capture := &captureAdapter{}
	if err := logger.AddAdapter(capture); err != nil {
		t.Fatalf("AddAdapter error: %v", err)
	}

	logger.SetLevel(WarnLevel)
	logger.Debug("dropped")
	logger.Info("dropped")
	logger.Warn("kept")
	logger.Error("kept")

	if capture.count() != 2 {
		t.Fatalf("expected 2 entries, got %d", capture.count())
	}

	logger.SetLevel(DebugLevel)
	logger.Debug("now kept")
	if capture.count() != 3 {
		t.Fatalf("lowered level should admit debug, got %d entries", capture.count())
	}
}

func TestWithFieldsMerge(t *testing.T) {
	logger := NewMultiLogger()
	capture := &captureAdapter{}
	logger.AddAdapter(capture)

	logger.WithField("request_id", "abc").WithFields(map[string]interface{}{
		"rows": 3,
	}).Info("done", map[string]interface{}{"accepted": 2})

	if capture.count() != 1 {
		t.Fatalf("expected 1 entry, got %d", capture.count())
	}

	fields := capture.entries[0].Fields
	if fields["request_id"] != "abc" || fields["rows"] != 3 || fields["accepted"] != 2 {
		t.Fatalf("fields not merged: %+v", fields)
	}
}

// SetLevel and Log race when the level read happens outside the lock; both
// sides must hold the mutex.
func TestConcurrentSetLevelAndLog(t *testing.T) {
	logger := NewMultiLogger()
	logger.AddAdapter(&captureAdapter{})

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				logger.SetLevel(WarnLevel)
				logger.SetLevel(InfoLevel)
			}
		}()
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				logger.Info("message")
			}
		}()
	}
	wg.Wait()
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		in   string
		want LogLevel
	}{
		{"debug", DebugLevel},
		{"INFO", InfoLevel},
		{"warn", WarnLevel},
		{"warning", WarnLevel},
		{"error", ErrorLevel},
		{"fatal", FatalLevel},
		{"nonsense", InfoLevel},
		{"", InfoLevel},
	}

	for _, tt := range tests {
		if got := ParseLogLevel(tt.in); got != tt.want {
			t.Errorf("ParseLogLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
