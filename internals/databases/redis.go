package database

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/redis/go-redis/v9/maintnotifications"

	"capacitajun_backend/internals/helpers/logger"
)

// ConnectRedis returns nil, nil when redisURL is empty; callers fall back to
// in-process implementations.
func ConnectRedis(redisURL string) (*redis.Client, error) {
	if redisURL == "" {
		logger.Log.Info("REDIS_URL not set, using in-memory cache and broker")
		return nil, nil
	}
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}
	// Redis 7 does not know maint_notifications.
	opts.MaintNotificationsConfig = &maintnotifications.Config{
		Mode: maintnotifications.ModeDisabled,
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	logger.Log.Info("redis connected")
	return client, nil
}
