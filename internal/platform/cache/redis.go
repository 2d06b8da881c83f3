package cache

import (
	"context"
	"errors"
	"fmt"
	"time"
	"training_board/internal/platform/config"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const keyPrefix = "training_board:dataset:"

func ConnectRedis(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	if _, err := rdb.Ping(ctx).Result(); err != nil {
		rdb.Close()
		return nil, fmt.Errorf("could not connect to Redis at %s: %w", cfg.RedisAddr, err)
	}
	logger.Info("connected to redis", zap.String("addr", cfg.RedisAddr))
	return rdb, nil
}

// DatasetCache stores raw dataset documents in Redis keyed by source name.
type DatasetCache struct {
	rdb *redis.Client
}

func NewDatasetCache(rdb *redis.Client) *DatasetCache {
	return &DatasetCache{rdb: rdb}
}

func (c *DatasetCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	data, err := c.rdb.Get(ctx, keyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("DatasetCache.Get: %w", err)
	}
	return data, true, nil
}

func (c *DatasetCache) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	if err := c.rdb.Set(ctx, keyPrefix+key, data, ttl).Err(); err != nil {
		return fmt.Errorf("DatasetCache.Set: %w", err)
	}
	return nil
}
