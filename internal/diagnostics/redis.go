package diagnostics

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"jobboard-utils/internal/config"
	"jobboard-utils/internal/logging"
	"jobboard-utils/pkg/models"
)

const rejectionKey = "jobboard:rejections"

// RedisRecorder keeps a capped history of rejected rows in Redis so
// operators can inspect why spreadsheet rows were dropped. Only rejection
// diagnostics are stored; accepted job data never touches Redis.
type RedisRecorder struct {
	client     *redis.Client
	maxEntries int
	logger     logging.Logger
}

// NewRedisRecorder creates a Redis-backed rejection recorder
func NewRedisRecorder(cfg *config.Config) *RedisRecorder {
	opts, err := redis.ParseURL(cfg.Redis.URL)
	if err != nil {
		// Fallback to default configuration
		opts = &redis.Options{
			Addr:     "localhost:6379",
			Password: "",
			DB:       0,
		}
	}
	if cfg.Redis.Password != "" {
		opts.Password = cfg.Redis.Password
	}
	opts.DB = cfg.Redis.DB

	opts.DialTimeout = cfg.Redis.Timeout
	opts.ReadTimeout = 3 * time.Second
	opts.WriteTimeout = 3 * time.Second

	return &RedisRecorder{
		client:     redis.NewClient(opts),
		maxEntries: cfg.Diagnostics.MaxEntries,
		logger:     logging.GetGlobalLogger(),
	}
}

// Ping tests the Redis connection
func (r *RedisRecorder) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

// Close closes the Redis connection
func (r *RedisRecorder) Close() error {
	return r.client.Close()
}

// Record appends one rejection to the capped history. Errors are logged
// and swallowed; diagnostics must never fail an ingestion pass.
func (r *RedisRecorder) Record(ctx context.Context, rejection models.Rejection) {
	data, err := json.Marshal(rejection)
	if err != nil {
		r.logger.WithContext(ctx).Error("Failed to marshal rejection", map[string]interface{}{
			"row_number": rejection.RowNumber,
			"error":      err.Error(),
		})
		return
	}

	pipe := r.client.TxPipeline()
	pipe.LPush(ctx, rejectionKey, data)
	pipe.LTrim(ctx, rejectionKey, 0, int64(r.maxEntries-1))
	if _, err := pipe.Exec(ctx); err != nil {
		r.logger.WithContext(ctx).Error("Failed to record rejection", map[string]interface{}{
			"row_number": rejection.RowNumber,
			"error":      err.Error(),
		})
	}
}

// Recent returns up to limit most recent rejections, newest first
func (r *RedisRecorder) Recent(ctx context.Context, limit int) ([]models.Rejection, error) {
	if limit <= 0 || limit > r.maxEntries {
		limit = r.maxEntries
	}

	entries, err := r.client.LRange(ctx, rejectionKey, 0, int64(limit-1)).Result()
	if err != nil {
		return nil, err
	}

	rejections := make([]models.Rejection, 0, len(entries))
	for _, entry := range entries {
		var rejection models.Rejection
		if err := json.Unmarshal([]byte(entry), &rejection); err != nil {
			r.logger.Warn("Skipping unreadable rejection entry", map[string]interface{}{
				"error": err.Error(),
			})
			continue
		}
		rejections = append(rejections, rejection)
	}

	return rejections, nil
}
