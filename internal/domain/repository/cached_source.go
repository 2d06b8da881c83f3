package repository

import (
	"context"
	"time"

	"go.uber.org/zap"
)

type DatasetCache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
}

type cachedDatasetSource struct {
	next   DatasetSource
	cache  DatasetCache
	ttl    time.Duration
	logger *zap.Logger
}

// NewCachedDatasetSource puts a read-through cache in front of next. Cache
// errors are logged and fall through to the wrapped source.
func NewCachedDatasetSource(next DatasetSource, cache DatasetCache, ttl time.Duration, logger *zap.Logger) DatasetSource {
	return &cachedDatasetSource{next: next, cache: cache, ttl: ttl, logger: logger}
}

func (s *cachedDatasetSource) Name() string { return s.next.Name() }

func (s *cachedDatasetSource) Fetch(ctx context.Context) ([]byte, error) {
	key := s.next.Name()
	data, ok, err := s.cache.Get(ctx, key)
	if err != nil {
		s.logger.Warn("dataset cache read failed", zap.String("source", key), zap.Error(err))
	} else if ok {
		return data, nil
	}

	data, err = s.next.Fetch(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.cache.Set(ctx, key, data, s.ttl); err != nil {
		s.logger.Warn("dataset cache write failed", zap.String("source", key), zap.Error(err))
	}
	return data, nil
}
