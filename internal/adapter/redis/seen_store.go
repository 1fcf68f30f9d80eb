// Package redis implements the storage ports on top of go-redis.
package redis

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"portal-ads/internal/config/configs"
)

// NewClient connects to the Redis described by cfg and verifies the
// connection with a ping.
func NewClient(ctx context.Context, cfg configs.Redis) (*goredis.Client, error) {
	opt, err := goredis.ParseURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("invalid redis url: %w", err)
	}
	if cfg.DB >= 0 {
		opt.DB = cfg.DB
	}

	rc := goredis.NewClient(opt)
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err = rc.Ping(pingCtx).Err(); err != nil {
		_ = rc.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	return rc, nil
}

// MonitorHealth pings client every interval until ctx is done and logs
// failures.
func MonitorHealth(ctx context.Context, client goredis.UniversalClient, interval time.Duration, logger *slog.Logger) {
	if interval <= 0 {
		interval = 30 * time.Second
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
			if err := client.Ping(pingCtx).Err(); err != nil {
				logger.Warn("redis healthcheck failed", slog.Any("error", err))
			}
			cancel()
		}
	}
}

// SeenStore implements port.SeenStore with plain string keys.
type SeenStore struct {
	rc goredis.UniversalClient
}

func NewSeenStore(rc goredis.UniversalClient) *SeenStore {
	return &SeenStore{rc: rc}
}

func (s *SeenStore) Get(ctx context.Context, key string) (string, bool, error) {
	v, err := s.rc.Get(ctx, key).Result()
	if errors.Is(err, goredis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return v, true, nil
}

// Set stores value under key. A non-positive ttl never expires.
func (s *SeenStore) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	if ttl < 0 {
		ttl = 0
	}
	return s.rc.Set(ctx, key, value, ttl).Err()
}
