package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig error: %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("default port = %d, want 8080", cfg.Server.Port)
	}
	if cfg.Ingest.MaxUploadSize != 5*1024*1024 {
		t.Errorf("default max upload = %d", cfg.Ingest.MaxUploadSize)
	}
	if cfg.Source.RefreshPerHour != 60 {
		t.Errorf("default refresh per hour = %d", cfg.Source.RefreshPerHour)
	}
	if cfg.Diagnostics.Enabled {
		t.Error("diagnostics should default to disabled")
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("default log level = %s", cfg.Logging.Level)
	}
}

func TestLoadConfigFromYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	content := `
server:
  port: 9090
ingest:
  max_rejections: 10
source:
  url: https://example.com/jobs.xlsx
  timeout: 10s
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig error: %v", err)
	}

	if cfg.Server.Port != 9090 {
		t.Errorf("port = %d, want 9090", cfg.Server.Port)
	}
	if cfg.Ingest.MaxRejections != 10 {
		t.Errorf("max rejections = %d, want 10", cfg.Ingest.MaxRejections)
	}
	if cfg.Source.URL != "https://example.com/jobs.xlsx" {
		t.Errorf("source url = %s", cfg.Source.URL)
	}
	if cfg.Source.Timeout != 10*time.Second {
		t.Errorf("source timeout = %v", cfg.Source.Timeout)
	}
	// Untouched sections keep their defaults
	if cfg.Server.ReadTimeout != 30*time.Second {
		t.Errorf("read timeout = %v, want 30s", cfg.Server.ReadTimeout)
	}
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	t.Setenv("PORT", "7070")
	t.Setenv("SOURCE_URL", "https://jobs.example.com/list.xlsx")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("DIAGNOSTICS_ENABLED", "true")

	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig error: %v", err)
	}

	if cfg.Server.Port != 7070 {
		t.Errorf("port = %d, want 7070", cfg.Server.Port)
	}
	if cfg.Source.URL != "https://jobs.example.com/list.xlsx" {
		t.Errorf("source url = %s", cfg.Source.URL)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("log level = %s", cfg.Logging.Level)
	}
	if !cfg.Diagnostics.Enabled {
		t.Error("diagnostics should be enabled via env")
	}
}

func TestLoadConfigUnresolvedPlaceholders(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	// Placeholders without a matching environment value must not clobber
	// the coded defaults.
	content := `
source:
  url: ${UNSET_SOURCE_URL_FOR_TEST}
redis:
  url: ${UNSET_REDIS_URL_FOR_TEST}
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig error: %v", err)
	}

	if cfg.Source.URL != "" {
		t.Errorf("unresolved source url should fall back to default, got %q", cfg.Source.URL)
	}
	if cfg.Redis.URL != "redis://localhost:6379" {
		t.Errorf("unresolved redis url should fall back to default, got %q", cfg.Redis.URL)
	}

	// With the variable set, the expansion wins
	t.Setenv("SET_REDIS_URL_FOR_TEST", "redis://cache.internal:6379")
	if err := os.WriteFile(path, []byte("redis:\n  url: ${SET_REDIS_URL_FOR_TEST}\n"), 0644); err != nil {
		t.Fatalf("failed to rewrite config file: %v", err)
	}

	cfg, err = LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig error: %v", err)
	}
	if cfg.Redis.URL != "redis://cache.internal:6379" {
		t.Errorf("expanded redis url = %q", cfg.Redis.URL)
	}
}

func TestExpandEnvVars(t *testing.T) {
	t.Setenv("JOBS_SOURCE", "https://bucket.example/jobs.xlsx")

	expanded := expandEnvVars("url: ${JOBS_SOURCE}")
	if expanded != "url: https://bucket.example/jobs.xlsx" {
		t.Errorf("unexpected expansion: %s", expanded)
	}

	// Unset variables are left alone
	unchanged := expandEnvVars("url: ${NOT_SET_ANYWHERE}")
	if unchanged != "url: ${NOT_SET_ANYWHERE}" {
		t.Errorf("unset var should be preserved: %s", unchanged)
	}
}
