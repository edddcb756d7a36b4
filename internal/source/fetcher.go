package source

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"jobboard-utils/internal/config"
	"jobboard-utils/internal/logging"
)

// Fetcher retrieves the canonical job spreadsheet over HTTP. A failed
// fetch is reported once; retrying is up to the caller's next request.
type Fetcher struct {
	client *http.Client
	url    string
	logger logging.Logger
}

// NewFetcher creates a fetcher for the configured source URL
func NewFetcher(cfg *config.Config, logger logging.Logger) *Fetcher {
	return &Fetcher{
		client: &http.Client{Timeout: cfg.Source.Timeout},
		url:    cfg.Source.URL,
		logger: logger,
	}
}

// URL returns the configured source location
func (f *Fetcher) URL() string {
	return f.url
}

// Fetch downloads the spreadsheet bytes from the configured source
func (f *Fetcher) Fetch(ctx context.Context) ([]byte, error) {
	if f.url == "" {
		return nil, fmt.Errorf("no source URL configured")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build source request: %w", err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch source spreadsheet: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("source returned status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read source body: %w", err)
	}

	f.logger.Debug("Fetched source spreadsheet", map[string]interface{}{
		"url":   f.url,
		"bytes": len(data),
	})

	return data, nil
}
