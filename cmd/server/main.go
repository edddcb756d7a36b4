package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"

	"jobboard-utils/internal/api/routes"
	"jobboard-utils/internal/config"
	"jobboard-utils/internal/diagnostics"
	"jobboard-utils/internal/ingest"
	"jobboard-utils/internal/logging"
	"jobboard-utils/internal/source"
	"jobboard-utils/internal/store"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig("configs/config.yaml")
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logging
	if err := logging.InitializeLogging(cfg); err != nil {
		log.Fatalf("Failed to initialize logging: %v", err)
	}
	logger := logging.GetGlobalLogger()
	logger.Info("Starting Job Board Ingestion Service")

	// Rejections always go to the log; Redis diagnostics are opt-in
	sinks := []ingest.RejectionSink{ingest.NewLoggerSink(logger)}

	var recorder *diagnostics.RedisRecorder
	if cfg.Diagnostics.Enabled {
		recorder = diagnostics.NewRedisRecorder(cfg)

		pingCtx, cancel := context.WithTimeout(context.Background(), cfg.Redis.Timeout)
		if err := recorder.Ping(pingCtx); err != nil {
			logger.Warn("Redis diagnostics unavailable, continuing with log-only rejections", map[string]interface{}{
				"error": err.Error(),
			})
			recorder.Close()
			recorder = nil
		} else {
			sinks = append(sinks, recorder)
			defer recorder.Close()
		}
		cancel()
	}

	pipeline := ingest.NewPipeline(logger, sinks...)
	jobStore := store.NewJobStore()
	fetcher := source.NewFetcher(cfg, logger)

	// Publish an initial job list from the canonical source
	if cfg.Ingest.FetchOnStartup && cfg.Source.URL != "" {
		publishFromSource(cfg, fetcher, pipeline, jobStore, logger)
	}

	// Initialize Echo
	e := echo.New()
	e.HideBanner = true

	routes.SetupRoutes(e, cfg, jobStore, pipeline, fetcher, recorder)

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		logger.Info("Shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := e.Shutdown(shutdownCtx); err != nil {
			logger.Error("Error shutting down server", map[string]interface{}{"error": err.Error()})
		}

		if err := logging.CloseLogging(); err != nil {
			fmt.Fprintf(os.Stderr, "error closing logging: %v\n", err)
		}

		logger.Info("Server shutdown complete")
	}()

	// Start server
	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.WithField("address", address).Info("Server starting")

	if err := e.Start(address); err != nil {
		logger.Fatal("Server failed to start", map[string]interface{}{"error": err.Error()})
	}
}

// publishFromSource runs one fetch-and-ingest pass at startup. Failure is
// logged and the service starts with an empty board; the refresh endpoint
// can publish later.
func publishFromSource(cfg *config.Config, fetcher *source.Fetcher, pipeline *ingest.Pipeline, jobStore *store.JobStore, logger logging.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Source.Timeout)
	defer cancel()

	data, err := fetcher.Fetch(ctx)
	if err != nil {
		logger.Warn("Startup source fetch failed", map[string]interface{}{"error": err.Error()})
		return
	}

	result, err := pipeline.Run(ctx, data)
	if err != nil {
		logger.Warn("Startup source ingestion failed", map[string]interface{}{"error": err.Error()})
		return
	}

	jobStore.Publish(result.Jobs)
	logger.Info("Published initial job list", map[string]interface{}{
		"accepted": len(result.Jobs),
		"rejected": len(result.Rejections),
	})
}
